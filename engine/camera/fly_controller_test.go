package camera

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-fly/common"
	"github.com/Carmen-Shannon/oxy-fly/engine/input"
	"github.com/Carmen-Shannon/oxy-fly/engine/readout"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus/hooks/test"
)

const epsilon = 1e-4

type fakeSurface struct {
	*input.Dispatcher
	bounds input.Bounds
	focus  int
}

func newFakeSurface(bounds input.Bounds) *fakeSurface {
	return &fakeSurface{Dispatcher: input.NewDispatcher(), bounds: bounds}
}

func (s *fakeSurface) Bounds() input.Bounds { return s.bounds }

func (s *fakeSurface) Focus() { s.focus++ }

type fakeClock struct {
	delta float32
	calls int
}

func (c *fakeClock) GetDelta() float32 {
	c.calls++
	return c.delta
}

type fakeMonitor struct {
	ticks, attached, detached int
	attachErr                 error
}

func (m *fakeMonitor) Tick() bool { m.ticks++; return false }

func (m *fakeMonitor) Attach() error { m.attached++; return m.attachErr }

func (m *fakeMonitor) Detach() error { m.detached++; return nil }

type fakeReadout struct {
	lines  [3]string
	clicks []func()
}

func (r *fakeReadout) SetText(x, y, z string) { r.lines = [3]string{x, y, z} }

func (r *fakeReadout) OnClick(callback func()) input.Subscription {
	r.clicks = append(r.clicks, callback)
	idx := len(r.clicks) - 1
	return input.NewSubscription(func() { r.clicks[idx] = nil })
}

func (r *fakeReadout) click() {
	for _, cb := range r.clicks {
		if cb != nil {
			cb()
		}
	}
}

type harness struct {
	ctrl    FlyController
	cam     Camera
	surface *fakeSurface
	clock   *fakeClock
	monitor *fakeMonitor
	readout *fakeReadout
}

func newHarness(t *testing.T, options ...FlyControllerOption) *harness {
	t.Helper()
	logger, _ := test.NewNullLogger()
	h := &harness{
		cam:     NewCamera(),
		surface: newFakeSurface(input.Bounds{Width: 800, Height: 600}),
		clock:   &fakeClock{},
		monitor: &fakeMonitor{},
		readout: &fakeReadout{},
	}
	base := []FlyControllerOption{
		WithLogger(logger),
		WithClock(h.clock),
		WithMonitor(h.monitor),
		WithReadout(h.readout),
	}
	h.ctrl = NewFlyController(h.cam, h.surface, append(base, options...)...)
	return h
}

func (h *harness) press(code uint32) { h.surface.KeyDown(input.KeyEvent{Code: code}) }
func (h *harness) release(code uint32) { h.surface.KeyUp(input.KeyEvent{Code: code}) }

func (h *harness) mouseDown(b input.MouseButton) {
	h.surface.MouseDown(input.MouseButtonEvent{Button: b})
}

func (h *harness) mouseUp(b input.MouseButton) {
	h.surface.MouseUp(input.MouseButtonEvent{Button: b})
}

func (h *harness) move(x, y float32) { h.surface.MouseMove(input.MouseMoveEvent{X: x, Y: y}) }

func assertVec(t *testing.T, name string, got, want mgl32.Vec3) {
	t.Helper()
	if !near(got[:], want[:], epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestMoveVectorForEveryFlagCombination(t *testing.T) {
	for mask := range 1 << 6 {
		bit := func(i int) float32 { return float32((mask >> i) & 1) }
		s := InputState{
			Up: bit(0), Down: bit(1),
			Left: bit(2), Right: bit(3),
			Forward: bit(4), Back: bit(5),
		}
		move, rot := s.Derive(false)

		want := mgl32.Vec3{s.Right - s.Left, s.Up - s.Down, s.Back - s.Forward}
		if move != want {
			t.Fatalf("mask %06b: move = %v, want %v", mask, move, want)
		}
		for axis, v := range move {
			if v != -1 && v != 0 && v != 1 {
				t.Fatalf("mask %06b: axis %d out of range: %v", mask, axis, v)
			}
		}
		if rot != (mgl32.Vec3{}) {
			t.Fatalf("mask %06b: rotation should be zero, got %v", mask, rot)
		}
	}
}

func TestRotationVectorFromKeys(t *testing.T) {
	h := newHarness(t)

	h.press(common.KeyUp)
	h.press(common.KeyLeft)
	h.press(common.KeyE)
	assertVec(t, "rotation", h.ctrl.RotationVector(), mgl32.Vec3{1, 1, -1})

	h.press(common.KeyDown)
	h.press(common.KeyRight)
	h.press(common.KeyQ)
	assertVec(t, "rotation", h.ctrl.RotationVector(), mgl32.Vec3{0, 0, 0})
}

func TestForwardKeyRoundTrip(t *testing.T) {
	h := newHarness(t)

	h.press(common.KeyW)
	if z := h.ctrl.MoveVector()[2]; z != -1 {
		t.Fatalf("move.z while W held = %v, want -1", z)
	}
	h.release(common.KeyW)
	if z := h.ctrl.MoveVector()[2]; z != 0 {
		t.Errorf("move.z after release = %v, want 0", z)
	}
	if h.ctrl.InputState() != (InputState{}) {
		t.Errorf("input state not cleared: %+v", h.ctrl.InputState())
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	h := newHarness(t)
	h.press(common.KeySpace)
	h.press(9999)
	if h.ctrl.InputState() != (InputState{}) {
		t.Errorf("unknown key changed state: %+v", h.ctrl.InputState())
	}
}

func TestAutoForwardAndBackOverride(t *testing.T) {
	h := newHarness(t, WithAutoForward(true))

	if z := h.ctrl.MoveVector()[2]; z != -1 {
		t.Fatalf("auto-forward move.z = %v, want -1", z)
	}
	h.press(common.KeyS)
	if z := h.ctrl.MoveVector()[2]; z != 1 {
		t.Errorf("back with auto-forward move.z = %v, want 1", z)
	}
	h.release(common.KeyS)

	h.ctrl.SetAutoForward(false)
	if z := h.ctrl.MoveVector()[2]; z != 0 {
		t.Errorf("move.z after disabling auto-forward = %v, want 0", z)
	}
}

func TestMouseMoveMapsCentreAndEdges(t *testing.T) {
	h := newHarness(t, WithMouseInteractive(true))

	h.move(400, 300)
	s := h.ctrl.InputState()
	if s.YawLeft != 0 || s.PitchDown != 0 {
		t.Errorf("centre: yawLeft=%v pitchDown=%v, want 0, 0", s.YawLeft, s.PitchDown)
	}

	h.move(0, 300)
	if got := h.ctrl.InputState().YawLeft; got != 1 {
		t.Errorf("left edge yawLeft = %v, want 1", got)
	}

	h.move(400, 0)
	if got := h.ctrl.InputState().PitchDown; got != -1 {
		t.Errorf("top edge pitchDown = %v, want -1", got)
	}

	h.move(600, 450)
	assertVec(t, "rotation", h.ctrl.RotationVector(), mgl32.Vec3{-0.5, -0.5, 0})
}

func TestMouseMoveRelativeToRegion(t *testing.T) {
	logger, _ := test.NewNullLogger()
	window := newFakeSurface(input.Bounds{Width: 800, Height: 600})
	region := input.NewRegion(window, input.Bounds{X: 100, Y: 50, Width: 200, Height: 100})
	ctrl := NewFlyController(NewCamera(), region,
		WithLogger(logger), WithReadout(&fakeReadout{}), WithMonitor(&fakeMonitor{}),
		WithMouseInteractive(true))

	window.MouseMove(input.MouseMoveEvent{X: 100, Y: 50})
	s := ctrl.InputState()
	if s.YawLeft != 1 || s.PitchDown != -1 {
		t.Errorf("region corner: yawLeft=%v pitchDown=%v, want 1, -1", s.YawLeft, s.PitchDown)
	}

	window.MouseDown(input.MouseButtonEvent{Button: input.MouseButtonPrimary, X: 150, Y: 75})
	if !region.Focused() {
		t.Error("mouse-down inside the region should focus it")
	}
}

func TestRegionReleaseOutsideEndsPress(t *testing.T) {
	logger, _ := test.NewNullLogger()
	window := newFakeSurface(input.Bounds{Width: 800, Height: 600})
	region := input.NewRegion(window, input.Bounds{X: 100, Y: 100, Width: 200, Height: 100})
	ctrl := NewFlyController(NewCamera(), region,
		WithLogger(logger), WithReadout(&fakeReadout{}), WithMonitor(&fakeMonitor{}),
		WithMouseInteractive(true))

	window.MouseDown(input.MouseButtonEvent{Button: input.MouseButtonPrimary, X: 150, Y: 150})
	if ctrl.InputState().Forward != 1 {
		t.Fatal("mouse-down inside the region should set forward")
	}
	window.MouseUp(input.MouseButtonEvent{Button: input.MouseButtonPrimary, X: 500, Y: 500})
	if f := ctrl.InputState().Forward; f != 0 {
		t.Errorf("forward after release outside = %v, want 0", f)
	}
	assertVec(t, "move", ctrl.MoveVector(), mgl32.Vec3{})
}

func TestRegionReleaseOutsideEndsDrag(t *testing.T) {
	logger, _ := test.NewNullLogger()
	window := newFakeSurface(input.Bounds{Width: 800, Height: 600})
	region := input.NewRegion(window, input.Bounds{X: 100, Y: 100, Width: 200, Height: 100})
	ctrl := NewFlyController(NewCamera(), region,
		WithLogger(logger), WithReadout(&fakeReadout{}), WithMonitor(&fakeMonitor{}),
		WithMouseInteractive(true), WithDragToLook(true))

	window.MouseDown(input.MouseButtonEvent{Button: input.MouseButtonPrimary, X: 150, Y: 150})
	window.MouseUp(input.MouseButtonEvent{Button: input.MouseButtonPrimary, X: 500, Y: 500})
	if ctrl.DragSessions() != 0 {
		t.Fatalf("drag sessions = %d, want 0", ctrl.DragSessions())
	}

	window.MouseMove(input.MouseMoveEvent{X: 110, Y: 105})
	assertVec(t, "rotation while hovering", ctrl.RotationVector(), mgl32.Vec3{})
}

func TestMouseDownFocusesRegionThroughQueue(t *testing.T) {
	logger, _ := test.NewNullLogger()
	window := newFakeSurface(input.Bounds{Width: 800, Height: 600})
	region := input.NewRegion(window, input.Bounds{Width: 100, Height: 100})
	focusCalls := 0
	region.SetFocusCallback(func() { focusCalls++ })

	queue := input.NewQueue(region)
	defer queue.Close()
	NewFlyController(NewCamera(), queue,
		WithLogger(logger), WithReadout(&fakeReadout{}), WithMonitor(&fakeMonitor{}))

	window.MouseDown(input.MouseButtonEvent{Button: input.MouseButtonPrimary, X: 10, Y: 10})
	queue.Flush()
	if focusCalls != 1 || !region.Focused() {
		t.Errorf("region focus calls = %d, want 1", focusCalls)
	}
	if window.focus != 0 {
		t.Errorf("parent surface focused %d times, want 0", window.focus)
	}
}

func TestMouseZeroExtentAxisUnchanged(t *testing.T) {
	h := newHarness(t, WithMouseInteractive(true))
	h.move(0, 300)
	h.surface.bounds = input.Bounds{Width: 0, Height: 600}
	h.move(123, 0)

	s := h.ctrl.InputState()
	if s.YawLeft != 1 || s.PitchDown != -1 {
		t.Errorf("yawLeft=%v pitchDown=%v, want 1, -1", s.YawLeft, s.PitchDown)
	}
}

func TestMouseIgnoredWhenNotInteractive(t *testing.T) {
	h := newHarness(t)

	h.mouseDown(input.MouseButtonPrimary)
	h.move(0, 0)
	if h.ctrl.InputState() != (InputState{}) {
		t.Errorf("mouse changed state while not interactive: %+v", h.ctrl.InputState())
	}
	if h.surface.focus != 1 {
		t.Errorf("mouse-down should still focus the surface, focus calls = %d", h.surface.focus)
	}

	h.press(common.KeyD)
	if x := h.ctrl.MoveVector()[0]; x != 1 {
		t.Errorf("keys should work without mouse interactivity, move.x = %v", x)
	}
}

func TestMouseButtonsDriveForwardAndBack(t *testing.T) {
	h := newHarness(t, WithMouseInteractive(true))

	h.mouseDown(input.MouseButtonPrimary)
	if s := h.ctrl.InputState(); s.Forward != 1 {
		t.Errorf("primary down: forward = %v, want 1", s.Forward)
	}
	h.mouseDown(input.MouseButtonSecondary)
	if z := h.ctrl.MoveVector()[2]; z != 0 {
		t.Errorf("both buttons: move.z = %v, want 0", z)
	}
	h.mouseUp(input.MouseButtonPrimary)
	if z := h.ctrl.MoveVector()[2]; z != 1 {
		t.Errorf("secondary only: move.z = %v, want 1", z)
	}
	h.mouseUp(input.MouseButtonSecondary)
	h.mouseDown(input.MouseButtonMiddle)
	if h.ctrl.InputState() != (InputState{}) {
		t.Errorf("middle button changed state: %+v", h.ctrl.InputState())
	}
}

func TestDragToLookGatesMouseMove(t *testing.T) {
	h := newHarness(t, WithMouseInteractive(true), WithDragToLook(true))

	h.move(0, 0)
	assertVec(t, "rotation before drag", h.ctrl.RotationVector(), mgl32.Vec3{})

	h.mouseDown(input.MouseButtonPrimary)
	if h.ctrl.InputState().Forward != 0 {
		t.Error("drag mouse-down must not set forward")
	}
	h.move(0, 0)
	assertVec(t, "rotation while dragging", h.ctrl.RotationVector(), mgl32.Vec3{1, 1, 0})

	h.mouseUp(input.MouseButtonPrimary)
	assertVec(t, "rotation after release", h.ctrl.RotationVector(), mgl32.Vec3{})
	if h.ctrl.DragSessions() != 0 {
		t.Errorf("drag sessions = %d, want 0", h.ctrl.DragSessions())
	}
}

func TestDragSessionsNestAndClampAtZero(t *testing.T) {
	h := newHarness(t, WithMouseInteractive(true), WithDragToLook(true))

	h.mouseUp(input.MouseButtonPrimary)
	if h.ctrl.DragSessions() != 0 {
		t.Fatalf("unmatched mouse-up: drag sessions = %d, want 0", h.ctrl.DragSessions())
	}

	h.mouseDown(input.MouseButtonPrimary)
	h.mouseDown(input.MouseButtonSecondary)
	h.mouseUp(input.MouseButtonPrimary)
	if h.ctrl.DragSessions() != 1 {
		t.Fatalf("drag sessions = %d, want 1", h.ctrl.DragSessions())
	}
	h.move(800, 600)
	assertVec(t, "rotation with one button held", h.ctrl.RotationVector(), mgl32.Vec3{-1, -1, 0})
}

func TestUpdateTranslatesAlongLocalForward(t *testing.T) {
	h := newHarness(t)
	h.press(common.KeyW)

	h.ctrl.Update(1)
	assertVec(t, "position", h.cam.Position(), mgl32.Vec3{0, 0, DefaultResetZ - 1000})

	h.ctrl.Reset()
	h.cam.SetRotation(0, math32.Pi/2, 0)
	h.ctrl.Update(1)
	assertVec(t, "position after yaw", h.cam.Position(), mgl32.Vec3{-1000, 0, DefaultResetZ})

	if h.monitor.ticks != 2 {
		t.Errorf("monitor ticks = %d, want 2", h.monitor.ticks)
	}
}

func TestUpdateRotatesInLocalFrame(t *testing.T) {
	h := newHarness(t)
	h.press(common.KeyQ)

	h.ctrl.Update(1)

	want := 2 * math32.Atan(DefaultRollSpeed)
	rot := h.cam.Rotation()
	if !mgl32.FloatEqualThreshold(rot[2], want, epsilon) || rot[0] != 0 || rot[1] != 0 {
		t.Errorf("rotation = %v, want (0, 0, %v)", rot, want)
	}
	if got := h.readout.lines[2]; got != readout.FormatAxis(DefaultResetZ, rot[2]) {
		t.Errorf("readout z line = %q", got)
	}
	if h.readout.lines[0] != "0.000 / 0.000" {
		t.Errorf("readout x line = %q", h.readout.lines[0])
	}
}

func TestUpdateNaNUsesClock(t *testing.T) {
	h := newHarness(t)
	h.clock.delta = 0.5
	h.press(common.KeyR)

	h.ctrl.Update(math32.NaN())
	assertVec(t, "position", h.cam.Position(), mgl32.Vec3{0, 500, DefaultResetZ})

	h.ctrl.UpdateFromClock()
	assertVec(t, "position", h.cam.Position(), mgl32.Vec3{0, 1000, DefaultResetZ})

	if h.clock.calls != 2 {
		t.Errorf("clock calls = %d, want 2", h.clock.calls)
	}
}

func TestResetRestoresDefaultPose(t *testing.T) {
	h := newHarness(t)
	h.press(common.KeyA)
	h.press(common.KeyE)
	h.ctrl.Update(3)

	h.ctrl.Reset()
	assertVec(t, "position", h.cam.Position(), mgl32.Vec3{0, 0, DefaultResetZ})
	assertVec(t, "rotation", h.cam.Rotation(), mgl32.Vec3{})
	if h.ctrl.InputState().Left != 1 {
		t.Error("Reset must not clear input state")
	}
}

func TestReadoutClickResets(t *testing.T) {
	h := newHarness(t)
	h.cam.SetPosition(5, 6, 7)

	h.readout.click()
	assertVec(t, "position", h.cam.Position(), mgl32.Vec3{0, 0, DefaultResetZ})
}

func TestAcceleratorRestoresExactlyOne(t *testing.T) {
	h := newHarness(t)

	h.press(common.KeyLeftShift)
	if m := h.ctrl.SpeedMultiplier(); m != 0.1 {
		t.Fatalf("multiplier while shift held = %v, want 0.1", m)
	}
	h.press(common.KeyW)
	h.ctrl.Update(1)
	assertVec(t, "position", h.cam.Position(), mgl32.Vec3{0, 0, DefaultResetZ - 100})

	h.release(common.KeyLeftShift)
	if m := h.ctrl.SpeedMultiplier(); m != 1 {
		t.Errorf("multiplier after release = %v, want exactly 1", m)
	}

	h.press(common.KeyRightShift)
	h.press(common.KeyRightShift)
	h.release(common.KeyRightShift)
	if m := h.ctrl.SpeedMultiplier(); m != 1 {
		t.Errorf("multiplier after right shift = %v, want exactly 1", m)
	}
}

func TestAltKeyDownIgnored(t *testing.T) {
	h := newHarness(t)

	h.surface.KeyDown(input.KeyEvent{Code: common.KeyW, Mods: input.ModAlt})
	if h.ctrl.InputState().Forward != 0 {
		t.Fatal("key-down with alt should be ignored")
	}
	h.surface.KeyDown(input.KeyEvent{Code: common.KeyLeftShift, Mods: input.ModAlt | input.ModShift})
	if h.ctrl.SpeedMultiplier() != 1 {
		t.Fatal("accelerator with alt should be ignored")
	}

	h.press(common.KeyW)
	h.surface.KeyUp(input.KeyEvent{Code: common.KeyW, Mods: input.ModAlt})
	if h.ctrl.InputState().Forward != 0 {
		t.Error("key-up with alt should still release the key")
	}
}

func TestDestroyStopsMutation(t *testing.T) {
	h := newHarness(t, WithMouseInteractive(true))
	h.ctrl.Destroy()
	h.ctrl.Destroy()

	h.press(common.KeyW)
	h.press(common.KeyLeftShift)
	h.mouseDown(input.MouseButtonSecondary)
	h.move(0, 0)

	if h.ctrl.InputState() != (InputState{}) {
		t.Errorf("state mutated after Destroy: %+v", h.ctrl.InputState())
	}
	if h.ctrl.SpeedMultiplier() != 1 {
		t.Errorf("multiplier mutated after Destroy: %v", h.ctrl.SpeedMultiplier())
	}
	if h.surface.Len() != 0 {
		t.Errorf("surface still has %d listeners", h.surface.Len())
	}
	if h.monitor.attached != 1 || h.monitor.detached != 1 {
		t.Errorf("attach/detach = %d/%d, want 1/1", h.monitor.attached, h.monitor.detached)
	}

	h.cam.SetPosition(1, 2, 3)
	h.readout.click()
	assertVec(t, "position", h.cam.Position(), mgl32.Vec3{1, 2, 3})
}

func TestInitAfterDestroyReattaches(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Init()
	if h.surface.Len() != 1 {
		t.Fatalf("double Init subscribed %d listeners, want 1", h.surface.Len())
	}

	h.ctrl.Destroy()
	h.ctrl.Init()
	h.press(common.KeyF)
	if h.ctrl.MoveVector()[1] != -1 {
		t.Errorf("move.y = %v after re-init, want -1", h.ctrl.MoveVector()[1])
	}
	if h.monitor.attached != 2 {
		t.Errorf("monitor attached %d times, want 2", h.monitor.attached)
	}
}

func TestAttachFailureDoesNotAbortInit(t *testing.T) {
	logger, hook := test.NewNullLogger()
	monitor := &fakeMonitor{attachErr: errors.New("port in use")}
	surface := newFakeSurface(input.Bounds{Width: 10, Height: 10})
	ctrl := NewFlyController(NewCamera(), surface,
		WithLogger(logger), WithMonitor(monitor), WithReadout(&fakeReadout{}))

	if surface.Len() != 1 {
		t.Fatal("controller should still listen after a failed attach")
	}
	if entry := hook.LastEntry(); entry == nil || entry.Data["error"] == nil {
		t.Error("expected the attach error to be logged")
	}
	ctrl.Destroy()
}

func TestNonFiniteSpeedsFallBack(t *testing.T) {
	h := newHarness(t, WithMovementSpeed(math32.NaN()), WithRollSpeed(math32.Inf(1)))
	if h.ctrl.MovementSpeed() != DefaultMovementSpeed || h.ctrl.RollSpeed() != DefaultRollSpeed {
		t.Fatalf("options: speeds = %v, %v", h.ctrl.MovementSpeed(), h.ctrl.RollSpeed())
	}

	h.ctrl.SetMovementSpeed(50)
	h.ctrl.SetRollSpeed(2)
	if h.ctrl.MovementSpeed() != 50 || h.ctrl.RollSpeed() != 2 {
		t.Fatalf("setters: speeds = %v, %v", h.ctrl.MovementSpeed(), h.ctrl.RollSpeed())
	}

	h.ctrl.SetMovementSpeed(math32.Inf(-1))
	h.ctrl.SetRollSpeed(math32.NaN())
	if h.ctrl.MovementSpeed() != DefaultMovementSpeed || h.ctrl.RollSpeed() != DefaultRollSpeed {
		t.Errorf("setters: speeds = %v, %v", h.ctrl.MovementSpeed(), h.ctrl.RollSpeed())
	}
}

func TestCollaboratorsCreatedLazilyOnce(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ctrl := NewFlyController(NewCamera(), newFakeSurface(input.Bounds{}), WithLogger(logger))
	defer ctrl.Destroy()

	if _, ok := ctrl.Readout().(*readout.Log); !ok {
		t.Errorf("default readout is %T, want *readout.Log", ctrl.Readout())
	}
	if ctrl.Readout() != ctrl.Readout() || ctrl.Monitor() != ctrl.Monitor() || ctrl.Clock() != ctrl.Clock() {
		t.Error("collaborators should be created once per controller")
	}
}
