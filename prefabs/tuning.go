package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/platformer/motion"
	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

// MotionSpec is the YAML form of a motion tuning profile. Speeds are in
// units per second, times in seconds.
//
// When jump_height and time_till_jump_apex are set, gravity and
// initial_jump_velocity are derived from them and any explicit values are
// ignored.
type MotionSpec struct {
	MaxWalkSpeed       float64 `yaml:"max_walk_speed"`
	MaxRunSpeed        float64 `yaml:"max_run_speed"`
	GroundAcceleration float64 `yaml:"ground_acceleration"`
	GroundDeceleration float64 `yaml:"ground_deceleration"`
	AirAcceleration    float64 `yaml:"air_acceleration"`
	AirDeceleration    float64 `yaml:"air_deceleration"`
	IdleThreshold      float64 `yaml:"idle_threshold"`

	JumpHeight                   float64 `yaml:"jump_height"`
	JumpHeightCompensationFactor float64 `yaml:"jump_height_compensation_factor"`
	TimeTillJumpApex             float64 `yaml:"time_till_jump_apex"`
	Gravity                      float64 `yaml:"gravity"`
	InitialJumpVelocity          float64 `yaml:"initial_jump_velocity"`
	GravityOnReleaseMultiplier   float64 `yaml:"gravity_on_release_multiplier"`
	MaxFallSpeed                 float64 `yaml:"max_fall_speed"`
	WorldGravity                 float64 `yaml:"world_gravity"`
	NumberOfJumpsAllowed         int     `yaml:"number_of_jumps_allowed"`
	ApexThreshold                float64 `yaml:"apex_threshold"`
	ApexHangTime                 float64 `yaml:"apex_hang_time"`

	TimeForUpwardsCancel float64 `yaml:"time_for_upwards_cancel"`
	JumpBufferTime       float64 `yaml:"jump_buffer_time"`
	JumpCoyoteTime       float64 `yaml:"jump_coyote_time"`

	GroundDetectionRayLength float64 `yaml:"ground_detection_ray_length"`
	HeadDetectionRayLength   float64 `yaml:"head_detection_ray_length"`
	HeadWidth                float64 `yaml:"head_width"`
	GroundLayer              uint32  `yaml:"ground_layer"`

	DebugShowIsGroundedBox bool `yaml:"debug_show_is_grounded_box"`
	DebugShowHeadBumpBox   bool `yaml:"debug_show_head_bump_box"`
}

// DefaultMotionSpec mirrors motion.DefaultParameters with the jump given as
// height and time to apex.
func DefaultMotionSpec() MotionSpec {
	spec := FromParameters(motion.DefaultParameters())
	spec.JumpHeight = 6.5
	spec.JumpHeightCompensationFactor = 1.054
	spec.TimeTillJumpApex = 0.35
	return spec
}

// FromParameters converts parameters back into a spec with explicit gravity.
func FromParameters(p motion.Parameters) MotionSpec {
	return MotionSpec{
		MaxWalkSpeed:               p.MaxWalkSpeed,
		MaxRunSpeed:                p.MaxRunSpeed,
		GroundAcceleration:         p.GroundAcceleration,
		GroundDeceleration:         p.GroundDeceleration,
		AirAcceleration:            p.AirAcceleration,
		AirDeceleration:            p.AirDeceleration,
		IdleThreshold:              p.IdleThreshold,
		Gravity:                    p.Gravity,
		InitialJumpVelocity:        p.InitialJumpVelocity,
		GravityOnReleaseMultiplier: p.GravityOnReleaseMultiplier,
		MaxFallSpeed:               p.MaxFallSpeed,
		WorldGravity:               p.WorldGravity,
		NumberOfJumpsAllowed:       p.NumberOfJumpsAllowed,
		ApexThreshold:              p.ApexThreshold,
		ApexHangTime:               p.ApexHangTime,
		TimeForUpwardsCancel:       p.TimeForUpwardsCancel,
		JumpBufferTime:             p.JumpBufferTime,
		JumpCoyoteTime:             p.JumpCoyoteTime,
		GroundDetectionRayLength:   p.GroundDetectionRayLength,
		HeadDetectionRayLength:     p.HeadDetectionRayLength,
		HeadWidth:                  p.HeadWidth,
		GroundLayer:                p.GroundLayer,
		DebugShowIsGroundedBox:     p.DebugShowIsGroundedBox,
		DebugShowHeadBumpBox:       p.DebugShowHeadBumpBox,
	}
}

func (s MotionSpec) derivesJump() bool {
	return s.JumpHeight > 0 || s.TimeTillJumpApex > 0
}

// ToParameters converts the spec into motion parameters. The spec is assumed
// valid.
func (s MotionSpec) ToParameters() motion.Parameters {
	gravity, v0 := s.Gravity, s.InitialJumpVelocity
	if s.derivesJump() {
		comp := s.JumpHeightCompensationFactor
		if comp == 0 {
			comp = 1
		}
		gravity, v0 = motion.JumpPhysics(s.JumpHeight, comp, s.TimeTillJumpApex)
	}
	return motion.Parameters{
		MaxWalkSpeed:               s.MaxWalkSpeed,
		MaxRunSpeed:                s.MaxRunSpeed,
		GroundAcceleration:         s.GroundAcceleration,
		GroundDeceleration:         s.GroundDeceleration,
		AirAcceleration:            s.AirAcceleration,
		AirDeceleration:            s.AirDeceleration,
		IdleThreshold:              s.IdleThreshold,
		Gravity:                    gravity,
		GravityOnReleaseMultiplier: s.GravityOnReleaseMultiplier,
		InitialJumpVelocity:        v0,
		MaxFallSpeed:               s.MaxFallSpeed,
		WorldGravity:               s.WorldGravity,
		NumberOfJumpsAllowed:       s.NumberOfJumpsAllowed,
		ApexThreshold:              s.ApexThreshold,
		ApexHangTime:               s.ApexHangTime,
		TimeForUpwardsCancel:       s.TimeForUpwardsCancel,
		JumpBufferTime:             s.JumpBufferTime,
		JumpCoyoteTime:             s.JumpCoyoteTime,
		GroundDetectionRayLength:   s.GroundDetectionRayLength,
		HeadDetectionRayLength:     s.HeadDetectionRayLength,
		HeadWidth:                  s.HeadWidth,
		GroundLayer:                s.GroundLayer,
		DebugShowIsGroundedBox:     s.DebugShowIsGroundedBox,
		DebugShowHeadBumpBox:       s.DebugShowHeadBumpBox,
	}
}

// Validate reports every out-of-range field, joined, each wrapping
// ErrInvalidTuning.
func (s MotionSpec) Validate() error {
	var errs []error
	bad := func(field string, v any, want string) {
		errs = append(errs, fmt.Errorf("%w: %s must be %s, got %v", ErrInvalidTuning, field, want, v))
	}
	positive := func(field string, v float64) {
		if !(v > 0) {
			bad(field, v, "positive")
		}
	}
	nonNegative := func(field string, v float64) {
		if !(v >= 0) {
			bad(field, v, "non-negative")
		}
	}

	positive("max_walk_speed", s.MaxWalkSpeed)
	positive("max_run_speed", s.MaxRunSpeed)
	nonNegative("ground_acceleration", s.GroundAcceleration)
	nonNegative("ground_deceleration", s.GroundDeceleration)
	nonNegative("air_acceleration", s.AirAcceleration)
	nonNegative("air_deceleration", s.AirDeceleration)
	nonNegative("idle_threshold", s.IdleThreshold)

	if s.derivesJump() {
		positive("jump_height", s.JumpHeight)
		positive("time_till_jump_apex", s.TimeTillJumpApex)
		nonNegative("jump_height_compensation_factor", s.JumpHeightCompensationFactor)
	} else {
		if !(s.Gravity < 0) {
			bad("gravity", s.Gravity, "negative")
		}
		positive("initial_jump_velocity", s.InitialJumpVelocity)
	}
	positive("gravity_on_release_multiplier", s.GravityOnReleaseMultiplier)
	positive("max_fall_speed", s.MaxFallSpeed)
	if s.WorldGravity > 0 {
		bad("world_gravity", s.WorldGravity, "zero or negative")
	}
	if s.NumberOfJumpsAllowed < 1 {
		bad("number_of_jumps_allowed", s.NumberOfJumpsAllowed, "at least 1")
	}
	if !(s.ApexThreshold >= 0 && s.ApexThreshold <= 1) {
		bad("apex_threshold", s.ApexThreshold, "within [0, 1]")
	}
	nonNegative("apex_hang_time", s.ApexHangTime)
	nonNegative("time_for_upwards_cancel", s.TimeForUpwardsCancel)
	nonNegative("jump_buffer_time", s.JumpBufferTime)
	nonNegative("jump_coyote_time", s.JumpCoyoteTime)

	positive("ground_detection_ray_length", s.GroundDetectionRayLength)
	positive("head_detection_ray_length", s.HeadDetectionRayLength)
	if !(s.HeadWidth > 0 && s.HeadWidth <= 1) {
		bad("head_width", s.HeadWidth, "within (0, 1]")
	}
	if s.GroundLayer == 0 {
		bad("ground_layer", s.GroundLayer, "a non-empty layer mask")
	}

	return errors.Join(errs...)
}

// ParseTuning decodes a bare tuning document over the defaults.
func ParseTuning(data []byte) (motion.Parameters, error) {
	spec := DefaultMotionSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return motion.Parameters{}, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return motion.Parameters{}, err
	}
	return spec.ToParameters(), nil
}

// MarshalTuning renders parameters as a tuning document.
func MarshalTuning(p motion.Parameters) ([]byte, error) {
	data, err := yaml.Marshal(FromParameters(p))
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal tuning: %w", err)
	}
	return data, nil
}
