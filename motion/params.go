package motion

// Parameters is the tuning profile a Controller reads from. Durations are in
// seconds, speeds in units per second and accelerations are blend rates per
// second. Gravity and WorldGravity are signed; negative points down.
type Parameters struct {
	MaxWalkSpeed       float64
	MaxRunSpeed        float64
	GroundAcceleration float64
	GroundDeceleration float64
	AirAcceleration    float64
	AirDeceleration    float64
	IdleThreshold      float64

	Gravity                    float64
	GravityOnReleaseMultiplier float64
	InitialJumpVelocity        float64
	MaxFallSpeed               float64
	WorldGravity               float64
	NumberOfJumpsAllowed       int

	// ApexThreshold is the fraction of the ascent after which the hang starts.
	ApexThreshold float64
	ApexHangTime  float64

	TimeForUpwardsCancel float64
	JumpBufferTime       float64
	JumpCoyoteTime       float64

	GroundDetectionRayLength float64
	HeadDetectionRayLength   float64
	// HeadWidth scales the feet width for the head probe.
	HeadWidth   float64
	GroundLayer uint32

	DebugShowIsGroundedBox bool
	DebugShowHeadBumpBox   bool
}

// DefaultParameters is a profile tuned for one-unit tiles.
func DefaultParameters() Parameters {
	gravity, jumpVelocity := JumpPhysics(6.5, 1.054, 0.35)
	return Parameters{
		MaxWalkSpeed:       12.5,
		MaxRunSpeed:        20,
		GroundAcceleration: 5,
		GroundDeceleration: 20,
		AirAcceleration:    5,
		AirDeceleration:    5,
		IdleThreshold:      0.1,

		Gravity:                    gravity,
		GravityOnReleaseMultiplier: 2,
		InitialJumpVelocity:        jumpVelocity,
		MaxFallSpeed:               26,
		WorldGravity:               -9.81,
		NumberOfJumpsAllowed:       2,

		ApexThreshold: 0.97,
		ApexHangTime:  0.075,

		TimeForUpwardsCancel: 0.027,
		JumpBufferTime:       0.125,
		JumpCoyoteTime:       0.1,

		GroundDetectionRayLength: 0.02,
		HeadDetectionRayLength:   0.02,
		HeadWidth:                0.75,
		GroundLayer:              1,
	}
}

// JumpPhysics derives gravity and the initial jump velocity that reach
// height*compensation after timeToApex seconds.
func JumpPhysics(height, compensation, timeToApex float64) (gravity, initialVelocity float64) {
	if timeToApex <= 0 {
		return 0, 0
	}
	adjusted := height * compensation
	gravity = -(2 * adjusted) / (timeToApex * timeToApex)
	initialVelocity = -gravity * timeToApex
	return gravity, initialVelocity
}
