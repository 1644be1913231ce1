package input

import (
	"fmt"
	"testing"
)

type recordingListener struct {
	events []string
}

func (r *recordingListener) KeyDown(e KeyEvent) {
	r.events = append(r.events, fmt.Sprintf("keydown:%d", e.Code))
}

func (r *recordingListener) KeyUp(e KeyEvent) {
	r.events = append(r.events, fmt.Sprintf("keyup:%d", e.Code))
}

func (r *recordingListener) MouseDown(e MouseButtonEvent) {
	r.events = append(r.events, fmt.Sprintf("mousedown:%d@%g,%g", e.Button, e.X, e.Y))
}

func (r *recordingListener) MouseUp(e MouseButtonEvent) {
	r.events = append(r.events, fmt.Sprintf("mouseup:%d@%g,%g", e.Button, e.X, e.Y))
}

func (r *recordingListener) MouseMove(e MouseMoveEvent) {
	r.events = append(r.events, fmt.Sprintf("move:%g,%g", e.X, e.Y))
}

// fakeSurface is a Dispatcher with fixed bounds, standing in for a window.
type fakeSurface struct {
	*Dispatcher
	bounds Bounds
}

func newFakeSurface(w, h float32) *fakeSurface {
	return &fakeSurface{Dispatcher: NewDispatcher(), bounds: Bounds{Width: w, Height: h}}
}

func (s *fakeSurface) Bounds() Bounds { return s.bounds }

func TestDispatcherOrderAndCancel(t *testing.T) {
	d := NewDispatcher()
	first := &recordingListener{}
	second := &recordingListener{}

	sub1 := d.Subscribe(first)
	d.Subscribe(second)

	d.KeyDown(KeyEvent{Code: 87})
	sub1.Cancel()
	sub1.Cancel()
	d.KeyUp(KeyEvent{Code: 87})

	if len(first.events) != 1 || first.events[0] != "keydown:87" {
		t.Fatalf("first listener got %v, want only keydown:87", first.events)
	}
	if len(second.events) != 2 {
		t.Fatalf("second listener got %v, want 2 events", second.events)
	}
	if d.Len() != 1 {
		t.Errorf("expected 1 listener after cancel, got %d", d.Len())
	}
}

type selfCancelling struct {
	sub   Subscription
	calls int
}

func (s *selfCancelling) KeyDown(KeyEvent) {
	s.calls++
	s.sub.Cancel()
}
func (s *selfCancelling) KeyUp(KeyEvent)             {}
func (s *selfCancelling) MouseDown(MouseButtonEvent) {}
func (s *selfCancelling) MouseUp(MouseButtonEvent)   {}
func (s *selfCancelling) MouseMove(MouseMoveEvent)   {}

func TestDispatcherListenerMayCancelItself(t *testing.T) {
	d := NewDispatcher()
	l := &selfCancelling{}
	l.sub = d.Subscribe(l)

	d.KeyDown(KeyEvent{Code: 1})
	d.KeyDown(KeyEvent{Code: 1})

	if l.calls != 1 {
		t.Errorf("expected 1 call, got %d", l.calls)
	}
}

func TestModifierHas(t *testing.T) {
	m := ModShift | ModAlt
	if !m.Has(ModAlt) || !m.Has(ModShift) {
		t.Errorf("expected shift and alt set in %b", m)
	}
	if m.Has(ModControl) {
		t.Errorf("did not expect control in %b", m)
	}
	if m.Has(ModAlt | ModControl) {
		t.Errorf("Has should require every bit")
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 10, Y: 20, Width: 100, Height: 50}
	cases := []struct {
		x, y float32
		want bool
	}{
		{10, 20, true},
		{109.9, 69.9, true},
		{110, 40, false},
		{50, 70, false},
		{9.9, 40, false},
	}
	for _, c := range cases {
		if got := b.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%g, %g) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRegionFiltersPointerEvents(t *testing.T) {
	parent := newFakeSurface(800, 600)
	region := NewRegion(parent, Bounds{X: 100, Y: 100, Width: 200, Height: 100})
	rec := &recordingListener{}
	region.Subscribe(rec)

	parent.MouseDown(MouseButtonEvent{Button: MouseButtonPrimary, X: 10, Y: 10})
	parent.MouseDown(MouseButtonEvent{Button: MouseButtonPrimary, X: 150, Y: 150})
	parent.MouseMove(MouseMoveEvent{X: 500, Y: 500})
	parent.MouseMove(MouseMoveEvent{X: 299, Y: 199})
	parent.KeyDown(KeyEvent{Code: 87})

	want := []string{"mousedown:0@150,150", "move:299,199", "keydown:87"}
	if fmt.Sprint(rec.events) != fmt.Sprint(want) {
		t.Fatalf("got %v, want %v", rec.events, want)
	}

	region.Close()
	parent.KeyDown(KeyEvent{Code: 83})
	if len(rec.events) != len(want) {
		t.Errorf("region forwarded after Close: %v", rec.events)
	}
}

func TestRegionFocus(t *testing.T) {
	region := NewRegion(newFakeSurface(100, 100), Bounds{Width: 10, Height: 10})
	focusCalls := 0
	region.SetFocusCallback(func() { focusCalls++ })

	if region.Focused() {
		t.Fatal("new region should not be focused")
	}
	region.Focus()
	if !region.Focused() || focusCalls != 1 {
		t.Errorf("expected focused with 1 callback, got focused=%v calls=%d", region.Focused(), focusCalls)
	}
	region.Blur()
	if region.Focused() {
		t.Error("expected Blur to clear focus")
	}
}

func TestQueueDefersUntilFlush(t *testing.T) {
	parent := newFakeSurface(640, 480)
	q := NewQueue(parent)
	rec := &recordingListener{}
	q.Subscribe(rec)

	parent.KeyDown(KeyEvent{Code: 87})
	parent.MouseMove(MouseMoveEvent{X: 1, Y: 2})
	parent.MouseUp(MouseButtonEvent{Button: MouseButtonSecondary, X: 3, Y: 4})

	if len(rec.events) != 0 {
		t.Fatalf("events delivered before Flush: %v", rec.events)
	}
	if q.Pending() != 3 {
		t.Fatalf("expected 3 pending, got %d", q.Pending())
	}

	if n := q.Flush(); n != 3 {
		t.Errorf("Flush returned %d, want 3", n)
	}
	want := []string{"keydown:87", "move:1,2", "mouseup:2@3,4"}
	if fmt.Sprint(rec.events) != fmt.Sprint(want) {
		t.Errorf("got %v, want %v", rec.events, want)
	}
	if q.Bounds() != parent.Bounds() {
		t.Errorf("queue bounds %v, want %v", q.Bounds(), parent.Bounds())
	}
}

func TestQueueClose(t *testing.T) {
	parent := newFakeSurface(640, 480)
	q := NewQueue(parent)
	rec := &recordingListener{}
	q.Subscribe(rec)

	parent.KeyDown(KeyEvent{Code: 1})
	q.Close()
	parent.KeyDown(KeyEvent{Code: 2})

	if q.Flush() != 0 || len(rec.events) != 0 {
		t.Errorf("expected nothing delivered after Close, got %v", rec.events)
	}
}
