package motion

import "github.com/milk9111/platformer/common"

const (
	// MaxRiseSpeed caps upward velocity regardless of tuning.
	MaxRiseSpeed = 50.0
	// apexReleaseVelocity nudges the actor out of the apex hang.
	apexReleaseVelocity = -0.01
)

func (c *Controller) countTimers(dt float64) {
	s := &c.state
	s.JumpBufferTimer -= dt
	if !s.Grounded {
		s.CoyoteTimer -= dt
	} else {
		s.CoyoteTimer = c.params.JumpCoyoteTime
	}
}

func (c *Controller) jumpChecks(in Input) {
	s := &c.state
	p := &c.params

	if in.JumpPressed {
		s.JumpBufferTimer = p.JumpBufferTime
		s.JumpReleasedDuringBuffer = false
	}

	if in.JumpReleased {
		if s.JumpBufferTimer > 0 {
			s.JumpReleasedDuringBuffer = true
		}
		if s.IsJumping() && s.VerticalVelocity > 0 {
			if s.PastApexThreshold {
				s.PastApexThreshold = false
				s.startFastFall()
				s.FastFallTime = p.TimeForUpwardsCancel
				s.VerticalVelocity = 0
			} else {
				s.startFastFall()
				s.FastFallReleaseSpeed = s.VerticalVelocity
			}
		}
	}

	buffered := s.JumpBufferTimer > 0
	switch {
	case buffered && !s.IsJumping() && (s.Grounded || s.CoyoteTimer > 0):
		c.initiateJump(1)
		if s.JumpReleasedDuringBuffer {
			s.startFastFall()
			s.FastFallReleaseSpeed = s.VerticalVelocity
		}
	case buffered && s.IsJumping() && s.JumpsUsed < p.NumberOfJumpsAllowed:
		s.stopFastFall()
		c.initiateJump(1)
	case buffered && s.IsFalling() && s.JumpsUsed < p.NumberOfJumpsAllowed-1:
		// The coyote jump was never taken, so it is charged here as well.
		c.initiateJump(2)
		s.stopFastFall()
	}

	if (s.IsJumping() || s.IsFalling()) && s.Grounded && s.VerticalVelocity <= 0 {
		c.land()
	}
	s.settle()
}

func (c *Controller) initiateJump(jumps int) {
	s := &c.state
	if !s.IsJumping() {
		s.Phase = PhaseAscending
	}
	s.JumpBufferTimer = 0
	s.JumpsUsed += jumps
	s.VerticalVelocity = c.params.InitialJumpVelocity
	s.settle()
}

func (c *Controller) land() {
	s := &c.state
	s.Phase = PhaseGrounded
	s.FastFallTime = 0
	s.PastApexThreshold = false
	s.JumpsUsed = 0
	s.VerticalVelocity = c.params.WorldGravity
}

// jump advances vertical velocity by one physics step.
func (c *Controller) jump(dt float64) {
	s := &c.state
	p := &c.params
	releaseGravity := p.Gravity * p.GravityOnReleaseMultiplier

	if s.IsJumping() {
		if s.BumpedHead && !s.IsFastFalling() {
			s.startFastFall()
			s.FastFallTime = 0
			s.FastFallReleaseSpeed = 0
			s.VerticalVelocity = min(s.VerticalVelocity, 0)
		}

		if s.VerticalVelocity >= 0 {
			s.ApexPoint = common.InverseLerp(p.InitialJumpVelocity, 0, s.VerticalVelocity)
			if s.ApexPoint > p.ApexThreshold {
				if !s.PastApexThreshold {
					s.PastApexThreshold = true
					s.TimePastApexThreshold = 0
				}
				s.TimePastApexThreshold += dt
				if s.TimePastApexThreshold < p.ApexHangTime {
					s.VerticalVelocity = 0
				} else {
					s.VerticalVelocity = apexReleaseVelocity
				}
			} else {
				s.VerticalVelocity += p.Gravity * dt
				s.PastApexThreshold = false
			}
		} else if !s.IsFastFalling() {
			s.VerticalVelocity += releaseGravity * dt
		}
	}

	if s.IsFastFalling() {
		if s.FastFallTime >= p.TimeForUpwardsCancel {
			s.VerticalVelocity += releaseGravity * dt
		} else {
			s.VerticalVelocity = common.LerpClamped(s.FastFallReleaseSpeed, 0, s.FastFallTime/p.TimeForUpwardsCancel)
		}
		s.FastFallTime += dt
	}

	if !s.Grounded && !s.IsJumping() {
		s.Phase = PhaseFalling
		s.VerticalVelocity += p.Gravity * dt
	}

	s.VerticalVelocity = common.Clamp(s.VerticalVelocity, -p.MaxFallSpeed, MaxRiseSpeed)
	s.settle()
}
