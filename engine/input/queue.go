package input

import "sync"

type eventKind int

const (
	eventKeyDown eventKind = iota
	eventKeyUp
	eventMouseDown
	eventMouseUp
	eventMouseMove
)

type queuedEvent struct {
	kind   eventKind
	key    KeyEvent
	button MouseButtonEvent
	move   MouseMoveEvent
}

// Queue buffers events from an upstream surface and re-delivers them when Flush is called.
// The window produces events on the main OS thread while the engine tick runs on its own
// goroutine; routing the window through a Queue that the tick flushes keeps every listener
// on a single goroutine.
type Queue struct {
	mu       *sync.Mutex
	pending  []queuedEvent
	upstream Surface
	sub      Subscription

	out *Dispatcher
}

var (
	_ Surface = &Queue{}
	_ Focuser = &Queue{}
)

// NewQueue creates a queue subscribed to upstream.
//
// Parameters:
//   - upstream: the surface whose events are buffered
//
// Returns:
//   - *Queue: the new queue
func NewQueue(upstream Surface) *Queue {
	q := &Queue{
		mu:       &sync.Mutex{},
		pending:  make([]queuedEvent, 0, 64),
		upstream: upstream,
		out:      NewDispatcher(),
	}
	q.sub = upstream.Subscribe(&queueRecorder{q: q})
	return q
}

func (q *Queue) Subscribe(l Listener) Subscription {
	return q.out.Subscribe(l)
}

func (q *Queue) Bounds() Bounds {
	return q.upstream.Bounds()
}

// Focus forwards to the upstream surface when it can take focus.
func (q *Queue) Focus() {
	if f, ok := q.upstream.(Focuser); ok {
		f.Focus()
	}
}

// Pending returns the number of buffered events.
//
// Returns:
//   - int: events waiting for Flush
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush delivers every buffered event, in arrival order, to the queue's listeners on the
// calling goroutine. Events that arrive while flushing wait for the next Flush.
//
// Returns:
//   - int: number of events delivered
func (q *Queue) Flush() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = make([]queuedEvent, 0, cap(batch))
	q.mu.Unlock()

	for _, ev := range batch {
		switch ev.kind {
		case eventKeyDown:
			q.out.KeyDown(ev.key)
		case eventKeyUp:
			q.out.KeyUp(ev.key)
		case eventMouseDown:
			q.out.MouseDown(ev.button)
		case eventMouseUp:
			q.out.MouseUp(ev.button)
		case eventMouseMove:
			q.out.MouseMove(ev.move)
		}
	}
	return len(batch)
}

// Close detaches the queue from upstream and drops anything still buffered.
func (q *Queue) Close() {
	q.sub.Cancel()
	q.mu.Lock()
	q.pending = q.pending[:0]
	q.mu.Unlock()
}

func (q *Queue) push(ev queuedEvent) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// queueRecorder is the queue's listener on the upstream surface.
type queueRecorder struct {
	q *Queue
}

func (r *queueRecorder) KeyDown(e KeyEvent) { r.q.push(queuedEvent{kind: eventKeyDown, key: e}) }

func (r *queueRecorder) KeyUp(e KeyEvent) { r.q.push(queuedEvent{kind: eventKeyUp, key: e}) }

func (r *queueRecorder) MouseDown(e MouseButtonEvent) {
	r.q.push(queuedEvent{kind: eventMouseDown, button: e})
}

func (r *queueRecorder) MouseUp(e MouseButtonEvent) {
	r.q.push(queuedEvent{kind: eventMouseUp, button: e})
}

func (r *queueRecorder) MouseMove(e MouseMoveEvent) {
	r.q.push(queuedEvent{kind: eventMouseMove, move: e})
}
