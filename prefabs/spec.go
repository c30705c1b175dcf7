package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ActorSpec describes a motion-controlled actor: its tuning profile, its
// colliders and how it is drawn and animated.
type ActorSpec struct {
	Name      string        `yaml:"name"`
	Tuning    MotionSpec    `yaml:"tuning"`
	Collider  ColliderSpec  `yaml:"collider"`
	Animation AnimationSpec `yaml:"animation"`
	Render    RenderSpec    `yaml:"render"`
	// Script is the tengo input script for bots, relative to scripts/.
	Script string `yaml:"script"`
}

// LoadActorSpec loads and validates an actor prefab. Tuning fields missing
// from the file keep their defaults.
func LoadActorSpec(filename string) (*ActorSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParseActorSpec(filename, data)
}

// ParseActorSpec decodes and validates an actor prefab from raw YAML.
func ParseActorSpec(filename string, data []byte) (*ActorSpec, error) {
	spec := ActorSpec{
		Tuning:   DefaultMotionSpec(),
		Collider: DefaultColliderSpec(),
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	if err := spec.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", filename, err)
	}
	if err := spec.Collider.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", filename, err)
	}
	return &spec, nil
}

// ColliderSpec sizes an actor's colliders in pixels. The feet box sits at
// the bottom of the body box.
type ColliderSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FeetWidth  float64 `yaml:"feet_width"`
	FeetHeight float64 `yaml:"feet_height"`
	Mass       float64 `yaml:"mass"`
}

func DefaultColliderSpec() ColliderSpec {
	return ColliderSpec{
		Width:      28,
		Height:     56,
		FeetWidth:  24,
		FeetHeight: 8,
		Mass:       1,
	}
}

func (c ColliderSpec) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: collider size must be positive, got %vx%v", ErrInvalidTuning, c.Width, c.Height)
	case c.FeetWidth <= 0 || c.FeetHeight <= 0:
		return fmt.Errorf("%w: feet size must be positive, got %vx%v", ErrInvalidTuning, c.FeetWidth, c.FeetHeight)
	case c.FeetWidth > c.Width || c.FeetHeight > c.Height:
		return fmt.Errorf("%w: feet %vx%v do not fit the body %vx%v", ErrInvalidTuning, c.FeetWidth, c.FeetHeight, c.Width, c.Height)
	}
	return nil
}

type AnimationSpec struct {
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
}

type AnimationDefSpec struct {
	Name       string  `yaml:"name"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type RenderSpec struct {
	Fill  YAMLColor `yaml:"fill"`
	Layer int       `yaml:"layer"`
}
