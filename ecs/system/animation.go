package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AnimationSystem plays the animation named after each actor's locomotion
// and advances frames by elapsed frame time.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Clock().Frame
	ecs.ForEach(w, component.AnimationComponent, func(e ecs.Entity, anim component.Animation) {
		if m, ok := ecs.Get(w, e, component.MotionComponent); ok {
			anim.Play(m.Output.Locomotion.String())
		}
		advanceAnimation(&anim, dt)
		if err := ecs.Add(w, e, component.AnimationComponent, anim); err != nil {
			panic("animation system: update animation: " + err.Error())
		}
	})
}

func advanceAnimation(anim *component.Animation, dt float64) {
	if !anim.Playing || dt <= 0 {
		return
	}
	def, ok := anim.Defs[anim.Current]
	if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
		return
	}

	frameTime := 1 / def.FPS
	anim.FrameTimer += dt
	for anim.FrameTimer >= frameTime {
		anim.FrameTimer -= frameTime
		anim.Frame++
		if anim.Frame < def.FrameCount {
			continue
		}
		if def.Loop {
			anim.Frame = 0
			continue
		}
		anim.Frame = def.FrameCount - 1
		anim.Playing = false
		anim.FrameTimer = 0
		return
	}
}
