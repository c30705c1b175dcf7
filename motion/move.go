package motion

import "math"

// move blends horizontal velocity toward the input target and returns the
// facing flip in degrees.
func (c *Controller) move(dt, acceleration, deceleration float64, input Vec2, run bool) float64 {
	s := &c.state
	p := &c.params

	if input.IsZero() {
		s.MoveVelocity = s.MoveVelocity.Lerp(Vec2{}, deceleration*dt)
		if math.Abs(s.MoveVelocity.X) <= p.IdleThreshold {
			s.Locomotion = LocomotionIdle
		}
		return 0
	}

	flip := c.turnCheck(input)

	speed := p.MaxWalkSpeed
	if run {
		speed = p.MaxRunSpeed
	}
	target := Vec2{X: input.X * speed}
	s.MoveVelocity = s.MoveVelocity.Lerp(target, acceleration*dt)
	// walking and running share one animation
	s.Locomotion = LocomotionRun
	return flip
}

func (c *Controller) turnCheck(input Vec2) float64 {
	s := &c.state
	switch {
	case s.FacingRight && input.X < 0:
		s.FacingRight = false
		return -180
	case !s.FacingRight && input.X > 0:
		s.FacingRight = true
		return 180
	}
	return 0
}
