package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
)

// Pipeline is the scheduled set of systems that runs the platformer:
// input and the frame half of motion every frame, the fixed half of motion
// and the physics space every fixed step, animation and event logging last.
type Pipeline struct {
	Scheduler *ecs.Scheduler
	Physics   *PhysicsSystem
	Scripts   *ScriptInputSystem
	Tuning    *TuningSystem
	Events    *EventLogSystem
}

// NewPipeline wires the systems. input may be nil for headless runs and
// poller may be nil when nothing is watched.
func NewPipeline(input ecs.System, poller Poller) *Pipeline {
	p := &Pipeline{
		Scheduler: ecs.NewScheduler(common.FixedStep),
		Physics:   NewPhysicsSystem(),
		Scripts:   NewScriptInputSystem(),
		Events:    NewEventLogSystem(),
	}
	p.Tuning = NewTuningSystem(poller, p.Scripts)

	p.Scheduler.AddFrame(p.Tuning)
	if input != nil {
		p.Scheduler.AddFrame(input)
	}
	p.Scheduler.AddFrame(p.Scripts)
	p.Scheduler.AddFrame(NewMotionFrameSystem())

	p.Scheduler.AddFixed(NewMotionPhysicsSystem(p.Physics))
	p.Scheduler.AddFixed(p.Physics)

	p.Scheduler.AddLate(NewAnimationSystem())
	p.Scheduler.AddLate(p.Events)
	return p
}

// Advance runs one frame of dt seconds and returns the fixed steps taken.
func (p *Pipeline) Advance(w *ecs.World, dt float64) int {
	return p.Scheduler.Advance(w, dt)
}
