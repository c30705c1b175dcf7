package motion

// Phase is the vertical motion phase of an actor.
type Phase uint8

const (
	// PhaseGrounded is resting on the ground layer, not jumping or falling.
	PhaseGrounded Phase = iota
	// PhaseFalling is airborne without having jumped.
	PhaseFalling
	PhaseAscending
	// PhaseApexHang is a jump past the apex threshold, gravity suspended.
	PhaseApexHang
	PhaseDescending
	// PhaseFastFalling is a jump cut short by release or a head bump.
	PhaseFastFalling
)

func (p Phase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseFalling:
		return "falling"
	case PhaseAscending:
		return "ascending"
	case PhaseApexHang:
		return "apex_hang"
	case PhaseDescending:
		return "descending"
	case PhaseFastFalling:
		return "fast_falling"
	default:
		return "unknown"
	}
}

// Jumping reports whether the phase belongs to a jump.
func (p Phase) Jumping() bool {
	switch p {
	case PhaseAscending, PhaseApexHang, PhaseDescending, PhaseFastFalling:
		return true
	default:
		return false
	}
}

// Locomotion is the animation selection handed to the animation player.
type Locomotion uint8

const (
	LocomotionIdle Locomotion = iota
	LocomotionRun
)

func (l Locomotion) String() string {
	if l == LocomotionRun {
		return "run"
	}
	return "idle"
}

// State is the mutable motion state of one actor.
type State struct {
	MoveVelocity     Vec2
	VerticalVelocity float64
	FacingRight      bool
	Locomotion       Locomotion

	Grounded   bool
	BumpedHead bool

	Phase Phase

	FastFallTime         float64
	FastFallReleaseSpeed float64
	JumpsUsed            int

	ApexPoint             float64
	PastApexThreshold     bool
	TimePastApexThreshold float64

	JumpBufferTimer          float64
	JumpReleasedDuringBuffer bool

	CoyoteTimer float64
}

func (s State) IsJumping() bool {
	return s.Phase.Jumping()
}

func (s State) IsFastFalling() bool {
	return s.Phase == PhaseFastFalling
}

// IsFalling covers free falls and the descending half of a jump cut.
func (s State) IsFalling() bool {
	return s.Phase == PhaseFalling || (s.Phase == PhaseFastFalling && s.VerticalVelocity < 0)
}

func (s *State) startFastFall() {
	s.Phase = PhaseFastFalling
}

func (s *State) stopFastFall() {
	if s.Phase == PhaseFastFalling {
		s.Phase = s.jumpPhase()
	}
}

// jumpPhase is the uncut jump phase for the current velocity.
func (s State) jumpPhase() Phase {
	switch {
	case s.VerticalVelocity < 0:
		return PhaseDescending
	case s.PastApexThreshold:
		return PhaseApexHang
	default:
		return PhaseAscending
	}
}

// settle refreshes the ascending/apex/descending split after velocity changes.
func (s *State) settle() {
	switch s.Phase {
	case PhaseAscending, PhaseApexHang, PhaseDescending:
		s.Phase = s.jumpPhase()
	}
}
