package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/logger"
)

// EventLogSystem drains the world's event queue each frame, logs motion
// events at debug level and keeps running totals per kind.
type EventLogSystem struct {
	counts map[ecs.MotionEventKind]int
	// OnEvent, when set, sees every motion event after it is counted.
	OnEvent func(ecs.MotionEvent)
}

func NewEventLogSystem() *EventLogSystem {
	return &EventLogSystem{counts: make(map[ecs.MotionEventKind]int)}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		me, ok := evt.Data.(ecs.MotionEvent)
		if evt.Type != MotionEventType || !ok {
			continue
		}
		s.counts[me.Kind]++
		logger.L().Debug("motion event", "entity", me.Entity, "kind", string(me.Kind), "step", me.Step)
		if s.OnEvent != nil {
			s.OnEvent(me)
		}
	}
}

// Count returns how many events of kind have been seen.
func (s *EventLogSystem) Count(kind ecs.MotionEventKind) int {
	if s == nil {
		return 0
	}
	return s.counts[kind]
}
