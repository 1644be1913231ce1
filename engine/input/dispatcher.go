package input

import "sync"

type dispatcherEntry struct {
	id       uint64
	listener Listener
}

// Dispatcher keeps an ordered set of listeners and forwards events to them.
// Surfaces embed a Dispatcher and call its Listener methods to emit.
// Listeners are invoked outside the lock, so a listener may cancel its own
// subscription (or subscribe others) while handling an event.
type Dispatcher struct {
	mu      *sync.Mutex
	nextID  uint64
	entries []dispatcherEntry
}

var _ Listener = &Dispatcher{}

// NewDispatcher creates an empty Dispatcher.
//
// Returns:
//   - *Dispatcher: the new dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{mu: &sync.Mutex{}}
}

// Subscribe registers l. Listeners receive events in subscription order.
//
// Parameters:
//   - l: the listener to register
//
// Returns:
//   - Subscription: handle that removes l when cancelled
func (d *Dispatcher) Subscribe(l Listener) Subscription {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.entries = append(d.entries, dispatcherEntry{id: id, listener: l})
	d.mu.Unlock()

	return NewSubscription(func() { d.remove(id) })
}

// Len returns the number of registered listeners.
//
// Returns:
//   - int: listener count
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

func (d *Dispatcher) remove(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, e := range d.entries {
		if e.id == id {
			d.entries = append(d.entries[:i:i], d.entries[i+1:]...)
			return
		}
	}
}

// snapshot copies the listener list so emission does not hold the lock.
func (d *Dispatcher) snapshot() []Listener {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Listener, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.listener
	}
	return out
}

func (d *Dispatcher) KeyDown(e KeyEvent) {
	for _, l := range d.snapshot() {
		l.KeyDown(e)
	}
}

func (d *Dispatcher) KeyUp(e KeyEvent) {
	for _, l := range d.snapshot() {
		l.KeyUp(e)
	}
}

func (d *Dispatcher) MouseDown(e MouseButtonEvent) {
	for _, l := range d.snapshot() {
		l.MouseDown(e)
	}
}

func (d *Dispatcher) MouseUp(e MouseButtonEvent) {
	for _, l := range d.snapshot() {
		l.MouseUp(e)
	}
}

func (d *Dispatcher) MouseMove(e MouseMoveEvent) {
	for _, l := range d.snapshot() {
		l.MouseMove(e)
	}
}
