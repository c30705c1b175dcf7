package system

import (
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

// MotionEventType is the Event.Type of every motion event.
const MotionEventType = "motion"

// MotionFrameSystem runs the per-frame half of every motion controller:
// timers, jump input edges and landing.
type MotionFrameSystem struct{}

func NewMotionFrameSystem() *MotionFrameSystem { return &MotionFrameSystem{} }

func (s *MotionFrameSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	clock := w.Clock()
	ecs.ForEach2(w, component.MotionComponent, component.InputComponent, func(e ecs.Entity, m component.Motion, in component.Input) {
		if m.Controller == nil {
			return
		}
		before := m.Controller.State()
		m.Controller.Frame(clock.Frame, in.Motion())
		emitMotionEvents(w, e, before, m.Controller.State(), 0, clock.Steps)
	})
}

// MotionPhysicsSystem runs the fixed-step half of every motion controller
// and hands the resulting velocity to the physics system.
type MotionPhysicsSystem struct {
	physics *PhysicsSystem
}

func NewMotionPhysicsSystem(physics *PhysicsSystem) *MotionPhysicsSystem {
	return &MotionPhysicsSystem{physics: physics}
}

func (s *MotionPhysicsSystem) Update(w *ecs.World) {
	if s == nil || s.physics == nil || w == nil {
		return
	}
	s.physics.Sync(w)

	clock := w.Clock()
	ecs.ForEach2(w, component.MotionComponent, component.InputComponent, func(e ecs.Entity, m component.Motion, in component.Input) {
		if m.Controller == nil {
			return
		}
		col, ok := s.physics.Colliders(w, e)
		if !ok {
			return
		}

		before := m.Controller.State()
		out, ran := m.Controller.FixedStep(clock.Fixed, col, s.physics, in.Motion())
		if !ran {
			// a replica keeps whatever velocity its owner last sent
			return
		}
		s.physics.SetVelocity(e, out.Velocity)

		m.Output = out
		m.Prev = before
		if err := ecs.Add(w, e, component.MotionComponent, m); err != nil {
			panic("motion system: update motion: " + err.Error())
		}

		if out.Flip != 0 {
			if transform, ok := ecs.Get(w, e, component.TransformComponent); ok {
				transform.Yaw = normalizeYaw(transform.Yaw + out.Flip)
				if err := ecs.Add(w, e, component.TransformComponent, transform); err != nil {
					panic("motion system: update transform: " + err.Error())
				}
			}
		}

		if ecs.Has(w, e, component.ProbeDebugComponent) || len(out.DebugRays) > 0 {
			if err := ecs.Add(w, e, component.ProbeDebugComponent, component.ProbeDebug{Rays: out.DebugRays}); err != nil {
				panic("motion system: update probe debug: " + err.Error())
			}
		}

		emitMotionEvents(w, e, before, m.Controller.State(), out.Flip, clock.Steps)
	})
}

// normalizeYaw folds a yaw into (-180, 180].
func normalizeYaw(yaw float64) float64 {
	yaw = math.Mod(yaw, 360)
	if yaw <= -180 {
		yaw += 360
	} else if yaw > 180 {
		yaw -= 360
	}
	return yaw
}

func emitMotionEvents(w *ecs.World, e ecs.Entity, before, after motion.State, flip float64, step uint64) {
	push := func(kind ecs.MotionEventKind) {
		w.Events().Push(ecs.Event{Type: MotionEventType, Data: ecs.MotionEvent{Entity: e, Kind: kind, Step: step}})
	}

	if after.JumpsUsed > before.JumpsUsed {
		push(ecs.MotionEventJumped)
	}
	if before.Phase != motion.PhaseGrounded && after.Phase == motion.PhaseGrounded {
		push(ecs.MotionEventLanded)
	}
	if after.BumpedHead && !before.BumpedHead && after.IsJumping() {
		push(ecs.MotionEventHeadBump)
	}
	if flip != 0 {
		push(ecs.MotionEventTurned)
	}
}
