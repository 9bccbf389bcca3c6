package event

// GameEvent is a single queued event
// Payload holds a value of the type registered for Type; handles inside may be stale by dispatch time
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Frame number when the event was pushed
}

// Queue is an unbounded FIFO of pending events
// Single-threaded: pushed and popped only from the simulation loop
// Events pushed while draining are returned after everything queued before them
type Queue struct {
	events []GameEvent
	head   int
}

func NewQueue() *Queue {
	return &Queue{
		events: make([]GameEvent, 0, 64),
	}
}

// Push appends an event to the tail
func (q *Queue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Pop removes and returns the head event
func (q *Queue) Pop() (GameEvent, bool) {
	if q.head >= len(q.events) {
		return GameEvent{}, false
	}
	ev := q.events[q.head]
	q.events[q.head] = GameEvent{} // Drop payload reference
	q.head++

	// Compact once drained, or when the consumed prefix dominates the buffer
	if q.head == len(q.events) {
		q.events = q.events[:0]
		q.head = 0
	} else if q.head >= 1024 && q.head*2 >= len(q.events) {
		n := copy(q.events, q.events[q.head:])
		q.events = q.events[:n]
		q.head = 0
	}
	return ev, true
}

// Peek returns a copy of pending events in FIFO order without consuming them
func (q *Queue) Peek() []GameEvent {
	pending := q.events[q.head:]
	if len(pending) == 0 {
		return nil
	}
	result := make([]GameEvent, len(pending))
	copy(result, pending)
	return result
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events) - q.head
}

// Clear drops all pending events
func (q *Queue) Clear() {
	for i := range q.events {
		q.events[i] = GameEvent{}
	}
	q.events = q.events[:0]
	q.head = 0
}
