package input

import "sync"

// Region is a rectangular sub-area of a parent surface, the equivalent of a focusable
// element inside a window. Pointer events outside the rectangle are dropped, except the
// mouse-up of a button that went down inside it. Key events pass through untouched
// because keyboard input belongs to the window, not the element.
type Region struct {
	mu       *sync.Mutex
	bounds   Bounds
	focused  bool
	// held records buttons whose mouse-down landed inside the region.
	held     map[MouseButton]bool
	onFocus  func()
	parent   Surface
	upstream Subscription

	*Dispatcher
}

var (
	_ Surface  = &Region{}
	_ Focuser  = &Region{}
	_ Listener = &regionForwarder{}
)

// NewRegion creates a region of parent covering bounds and starts forwarding events.
//
// Parameters:
//   - parent: the surface events come from
//   - bounds: the region rectangle in the parent's window coordinates
//
// Returns:
//   - *Region: the new region
func NewRegion(parent Surface, bounds Bounds) *Region {
	r := &Region{
		mu:         &sync.Mutex{},
		bounds:     bounds,
		held:       make(map[MouseButton]bool),
		parent:     parent,
		Dispatcher: NewDispatcher(),
	}
	r.upstream = parent.Subscribe(&regionForwarder{r: r})
	return r
}

func (r *Region) Bounds() Bounds {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bounds
}

// SetBounds moves or resizes the region.
//
// Parameters:
//   - bounds: the new rectangle in window coordinates
func (r *Region) SetBounds(bounds Bounds) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bounds = bounds
}

// Focus marks the region as the keyboard focus target and fires the focus callback.
func (r *Region) Focus() {
	r.mu.Lock()
	r.focused = true
	cb := r.onFocus
	r.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// Blur clears the focus flag.
func (r *Region) Blur() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.focused = false
}

// Focused reports whether Focus has been called since the last Blur.
//
// Returns:
//   - bool: true if focused
func (r *Region) Focused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.focused
}

// SetFocusCallback sets a function called whenever the region gains focus.
//
// Parameters:
//   - callback: function to call (or nil to disable)
func (r *Region) SetFocusCallback(callback func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onFocus = callback
}

// Close stops forwarding events from the parent surface.
func (r *Region) Close() {
	r.upstream.Cancel()
}

// regionForwarder filters parent events into the region's dispatcher.
type regionForwarder struct {
	r *Region
}

func (f *regionForwarder) KeyDown(e KeyEvent) { f.r.Dispatcher.KeyDown(e) }

func (f *regionForwarder) KeyUp(e KeyEvent) { f.r.Dispatcher.KeyUp(e) }

func (f *regionForwarder) MouseDown(e MouseButtonEvent) {
	f.r.mu.Lock()
	inside := f.r.bounds.Contains(e.X, e.Y)
	if inside {
		f.r.held[e.Button] = true
	}
	f.r.mu.Unlock()

	if inside {
		f.r.Dispatcher.MouseDown(e)
	}
}

// MouseUp forwards releases inside the region and releases of buttons pressed inside
// it, wherever the cursor is, so a press never stays latched.
func (f *regionForwarder) MouseUp(e MouseButtonEvent) {
	f.r.mu.Lock()
	deliver := f.r.held[e.Button] || f.r.bounds.Contains(e.X, e.Y)
	delete(f.r.held, e.Button)
	f.r.mu.Unlock()

	if deliver {
		f.r.Dispatcher.MouseUp(e)
	}
}

func (f *regionForwarder) MouseMove(e MouseMoveEvent) {
	if f.r.Bounds().Contains(e.X, e.Y) {
		f.r.Dispatcher.MouseMove(e)
	}
}
