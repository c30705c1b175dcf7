package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// MotionEventKind identifies motion state changes worth reporting.
type MotionEventKind string

const (
	MotionEventJumped   MotionEventKind = "jumped"
	MotionEventLanded   MotionEventKind = "landed"
	MotionEventHeadBump MotionEventKind = "head_bump"
	MotionEventTurned   MotionEventKind = "turned"
)

// MotionEvent is emitted by the motion systems when an actor changes phase.
type MotionEvent struct {
	Entity Entity
	Kind   MotionEventKind
	Step   uint64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len reports the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
