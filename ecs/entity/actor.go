package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

// TileCenter returns the pixel position of an actor standing on the tile
// below the spawn tile tx, ty.
func TileCenter(tx, ty int, height float64) (x, y float64) {
	x = (float64(tx) + 0.5) * common.TileSize
	y = float64(ty+1)*common.TileSize - height/2
	return x, y
}

// NewActor builds a motion actor from a prefab spec at a tile spawn. The
// actor is authoritative unless owner is false.
func NewActor(w *ecs.World, spec *prefabs.ActorSpec, profile string, tx, ty int, owner bool) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("entity: nil world or spec")
	}

	e := w.CreateEntity()
	x, y := TileCenter(tx, ty, spec.Collider.Height)

	params := spec.Tuning.ToParameters()
	authority := motion.AuthorityFunc(func() bool {
		a, ok := ecs.Get(w, e, component.AuthorityComponent)
		return !ok || a.Owner
	})

	steps := []func() error{
		func() error {
			return ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
		},
		func() error {
			return ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
				Width:      spec.Collider.Width,
				Height:     spec.Collider.Height,
				FeetWidth:  spec.Collider.FeetWidth,
				FeetHeight: spec.Collider.FeetHeight,
				Mass:       spec.Collider.Mass,
			})
		},
		func() error {
			return ecs.Add(w, e, component.CollisionLayerComponent, component.CollisionLayer{Mask: params.GroundLayer})
		},
		func() error {
			return ecs.Add(w, e, component.InputComponent, component.Input{})
		},
		func() error {
			return ecs.Add(w, e, component.AuthorityComponent, component.Authority{Owner: owner})
		},
		func() error {
			return ecs.Add(w, e, component.MotionComponent, component.Motion{
				Controller: motion.NewController(params, authority),
				Profile:    profile,
			})
		},
		func() error {
			return ecs.Add(w, e, component.AnimationComponent, animationFromSpec(spec.Animation))
		},
		func() error {
			return ecs.Add(w, e, component.RenderComponent, component.Render{
				Fill:  spec.Render.Fill.Or(colornames.White),
				Layer: spec.Render.Layer,
			})
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("entity: build %s: %w", profile, err)
		}
	}
	return e, nil
}

func animationFromSpec(spec prefabs.AnimationSpec) component.Animation {
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		if def.Name == "" {
			def.Name = name
		}
		defs[name] = component.AnimationDef{
			Name:       def.Name,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	anim := component.Animation{Defs: defs}
	current := spec.Current
	if current == "" {
		current = motion.LocomotionIdle.String()
	}
	anim.Play(current)
	return anim
}

// faded returns c at half opacity.
func faded(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA64{R: uint16(r / 2), G: uint16(g / 2), B: uint16(b / 2), A: uint16(a / 2)}
}
