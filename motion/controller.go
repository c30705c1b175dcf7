package motion

// Input is the pre-debounced input for one actor.
type Input struct {
	Move         Vec2
	JumpPressed  bool
	JumpReleased bool
	RunHeld      bool
}

// Output is what one physics step hands to the outside world.
type Output struct {
	// Velocity is the linear velocity for the integrator.
	Velocity    Vec2
	Locomotion  Locomotion
	FacingRight bool
	// Flip is the rotation about the vertical axis applied this step in
	// degrees: 0, 180 when turning right or -180 when turning left.
	Flip      float64
	DebugRays []DebugRay
}

// Authority reports whether this instance owns the simulation of its actor.
type Authority interface {
	IsAuthoritative() bool
}

// AuthorityFunc adapts a function to Authority.
type AuthorityFunc func() bool

func (f AuthorityFunc) IsAuthoritative() bool {
	return f == nil || f()
}

// Controller runs the motion model for one actor. Frame must be called once
// per rendered frame and FixedStep once per physics step, frame first.
type Controller struct {
	params    Parameters
	state     State
	authority Authority
}

// NewController creates a controller facing right and at rest. A nil
// authority always runs.
func NewController(params Parameters, authority Authority) *Controller {
	return &Controller{
		params:    params,
		state:     State{FacingRight: true},
		authority: authority,
	}
}

func (c *Controller) Parameters() Parameters {
	return c.params
}

// SetParameters swaps the tuning profile. The state is kept.
func (c *Controller) SetParameters(p Parameters) {
	c.params = p
}

// State returns a copy of the current motion state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Authoritative() bool {
	return c.authority == nil || c.authority.IsAuthoritative()
}

// Frame counts down the jump timers and handles jump input edges.
func (c *Controller) Frame(dt float64, in Input) {
	if !c.Authoritative() {
		return
	}
	c.countTimers(dt)
	c.jumpChecks(in)
}

// FixedStep probes for ground and ceiling, advances the vertical state
// machine and blends horizontal movement. The bool is false when the
// controller is not authoritative and did nothing.
func (c *Controller) FixedStep(dt float64, col Colliders, prober Prober, in Input) (Output, bool) {
	if !c.Authoritative() {
		return Output{}, false
	}

	rays := c.collisionChecks(col, prober)
	c.jump(dt)

	var flip float64
	if c.state.Grounded {
		flip = c.move(dt, c.params.GroundAcceleration, c.params.GroundDeceleration, in.Move, in.RunHeld)
	} else {
		flip = c.move(dt, c.params.AirAcceleration, c.params.AirDeceleration, in.Move, in.RunHeld)
	}

	return Output{
		Velocity:    Vec2{X: c.state.MoveVelocity.X, Y: c.state.VerticalVelocity},
		Locomotion:  c.state.Locomotion,
		FacingRight: c.state.FacingRight,
		Flip:        flip,
		DebugRays:   rays,
	}, true
}
