package ecs

// DefaultMaxSteps bounds the physics steps run by a single Advance.
const DefaultMaxSteps = 8

// Scheduler runs frame systems once per Advance and fixed systems zero or
// more times at a fixed step from an accumulator.
type Scheduler struct {
	frame []System
	fixed []System
	late  []System

	step        float64
	maxSteps    int
	accumulator float64
	steps       uint64
}

// NewScheduler creates a scheduler stepping physics every step seconds.
func NewScheduler(step float64) *Scheduler {
	if step <= 0 {
		panic("scheduler: non-positive fixed step")
	}
	return &Scheduler{step: step, maxSteps: DefaultMaxSteps}
}

// AddFrame appends a system to the frame stage.
func (s *Scheduler) AddFrame(system System) {
	if system == nil {
		return
	}
	s.frame = append(s.frame, system)
}

// AddFixed appends a system to the fixed stage.
func (s *Scheduler) AddFixed(system System) {
	if system == nil {
		return
	}
	s.fixed = append(s.fixed, system)
}

// AddLate appends a system that runs once after the fixed stage.
func (s *Scheduler) AddLate(system System) {
	if system == nil {
		return
	}
	s.late = append(s.late, system)
}

// SetMaxSteps caps the physics steps per Advance; excess time is dropped.
func (s *Scheduler) SetMaxSteps(n int) {
	if n < 1 {
		n = 1
	}
	s.maxSteps = n
}

func (s *Scheduler) Step() float64 {
	return s.step
}

// Steps returns the number of physics steps run so far.
func (s *Scheduler) Steps() uint64 {
	return s.steps
}

// Advance runs one frame of dt seconds: the frame stage, then as many fixed
// steps as the accumulator allows, then the late stage. Pending events are
// dropped at the end. It returns the number of fixed steps run.
func (s *Scheduler) Advance(w *World, dt float64) int {
	if s == nil || w == nil {
		return 0
	}
	if dt < 0 {
		dt = 0
	}

	w.SetClock(Clock{Frame: dt, Fixed: s.step, Steps: s.steps})
	run(w, s.frame)

	s.accumulator += dt
	n := 0
	for s.accumulator >= s.step && n < s.maxSteps {
		w.SetClock(Clock{Frame: dt, Fixed: s.step, Steps: s.steps})
		run(w, s.fixed)
		s.accumulator -= s.step
		s.steps++
		n++
	}
	if n == s.maxSteps && s.accumulator >= s.step {
		s.accumulator = 0
	}

	w.SetClock(Clock{Frame: dt, Fixed: s.step, Steps: s.steps})
	run(w, s.late)
	w.events.flush()
	return n
}

func run(w *World, systems []System) {
	for _, system := range systems {
		system.Update(w)
	}
}
