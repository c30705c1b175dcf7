package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
)

func TestEventLogCounts(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	q := w.Events()
	q.Push(ecs.Event{Type: MotionEventType, Data: ecs.MotionEvent{Entity: e, Kind: ecs.MotionEventJumped, Step: 1}})
	q.Push(ecs.Event{Type: "other", Data: 3})
	q.Push(ecs.Event{Type: MotionEventType, Data: ecs.MotionEvent{Entity: e, Kind: ecs.MotionEventJumped, Step: 4}})
	q.Push(ecs.Event{Type: MotionEventType, Data: ecs.MotionEvent{Entity: e, Kind: ecs.MotionEventLanded, Step: 9}})

	var seen []uint64
	sys := NewEventLogSystem()
	sys.OnEvent = func(me ecs.MotionEvent) { seen = append(seen, me.Step) }
	sys.Update(w)

	if got := sys.Count(ecs.MotionEventJumped); got != 2 {
		t.Fatalf("expected 2 jumps, got %d", got)
	}
	if got := sys.Count(ecs.MotionEventLanded); got != 1 {
		t.Fatalf("expected 1 landing, got %d", got)
	}
	if len(seen) != 3 || seen[0] != 1 || seen[2] != 9 {
		t.Fatalf("unexpected event order %v", seen)
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be drained, %d left", q.Len())
	}
}
