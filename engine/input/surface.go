package input

import "sync"

// Listener receives input events from a Surface.
type Listener interface {
	KeyDown(e KeyEvent)
	KeyUp(e KeyEvent)
	MouseDown(e MouseButtonEvent)
	MouseUp(e MouseButtonEvent)
	MouseMove(e MouseMoveEvent)
}

// Surface is anything that produces input events: a whole window, a sub-region
// of one, or a queue that re-delivers events on another goroutine.
type Surface interface {
	// Subscribe registers a listener for all events produced by the surface.
	//
	// Parameters:
	//   - l: the listener to register
	//
	// Returns:
	//   - Subscription: handle that detaches the listener when cancelled
	Subscribe(l Listener) Subscription

	// Bounds returns the rectangle mouse coordinates are measured against.
	//
	// Returns:
	//   - Bounds: the surface rectangle in window coordinates
	Bounds() Bounds
}

// Focuser is implemented by surfaces that can take keyboard focus.
type Focuser interface {
	Focus()
}

// Subscription detaches a registered callback. Cancel is safe to call more than once;
// only the first call has an effect.
type Subscription interface {
	Cancel()
}

type subscription struct {
	once   sync.Once
	cancel func()
}

// NewSubscription wraps a cancel function so that it runs at most once.
//
// Parameters:
//   - cancel: the teardown to run on the first Cancel call (may be nil)
//
// Returns:
//   - Subscription: the wrapped handle
func NewSubscription(cancel func()) Subscription {
	return &subscription{cancel: cancel}
}

func (s *subscription) Cancel() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}
