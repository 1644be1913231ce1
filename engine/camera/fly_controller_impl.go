package camera

import (
	"github.com/Carmen-Shannon/oxy-fly/common"
	"github.com/Carmen-Shannon/oxy-fly/engine/clock"
	"github.com/Carmen-Shannon/oxy-fly/engine/input"
	"github.com/Carmen-Shannon/oxy-fly/engine/profiler"
	"github.com/Carmen-Shannon/oxy-fly/engine/readout"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultMovementSpeed is the translation speed in units per second.
	DefaultMovementSpeed float32 = 1000
	// DefaultRollSpeed is the rotation speed in radians per second.
	DefaultRollSpeed float32 = math32.Pi / 12
	// DefaultResetZ is the distance along +Z that Reset places the camera at.
	DefaultResetZ float32 = 600

	// acceleratedMultiplier is the speed multiplier while an accelerator key is held.
	acceleratedMultiplier float32 = 0.1
)

// flyControllerImpl is the single implementation of FlyController.
// All fields are owned by the goroutine delivering events; there is no locking.
type flyControllerImpl struct {
	handle  Handle
	surface input.Surface
	logger  logrus.FieldLogger

	movementSpeed    float32
	rollSpeed        float32
	autoForward      bool
	dragToLook       bool
	mouseInteractive bool
	speedMultiplier  float32

	state        InputState
	moveVector   mgl32.Vec3
	rotVector    mgl32.Vec3
	dragSessions int

	clock   Clock
	monitor PerformanceMonitor
	readout Readout

	attached      bool
	subscriptions []input.Subscription
}

// Compile-time interface compliance check
var (
	_ FlyController  = &flyControllerImpl{}
	_ input.Listener = &flyListener{}
)

// NewFlyController creates a fly controller for handle, listening on surface, and
// initialises it. Pass a window for whole-window control or an input.Region to limit
// mouse look to part of it.
//
// Parameters:
//   - handle: the camera to drive
//   - surface: the input surface events come from
//   - options: functional options to configure the controller
//
// Returns:
//   - FlyController: the initialised controller
func NewFlyController(handle Handle, surface input.Surface, options ...FlyControllerOption) FlyController {
	c := &flyControllerImpl{
		handle:          handle,
		surface:         surface,
		logger:          logrus.StandardLogger(),
		movementSpeed:   DefaultMovementSpeed,
		rollSpeed:       DefaultRollSpeed,
		speedMultiplier: 1,
	}
	for _, option := range options {
		option(c)
	}
	c.logger = c.logger.WithField("component", "fly_controller")
	c.Init()
	return c
}

func (c *flyControllerImpl) Init() {
	if c.attached {
		return
	}

	c.subscriptions = append(c.subscriptions,
		c.surface.Subscribe(&flyListener{c: c}),
		c.Readout().OnClick(c.Reset),
	)

	if a, ok := c.Monitor().(Attachable); ok {
		if err := a.Attach(); err != nil {
			c.logger.WithError(err).Warn("failed to attach performance monitor")
		}
	}

	c.attached = true
	c.Reset()
	c.updateVectors()
	c.logger.Debug("fly controller initialised")
}

func (c *flyControllerImpl) Destroy() {
	if !c.attached {
		return
	}
	c.attached = false

	for _, sub := range c.subscriptions {
		sub.Cancel()
	}
	c.subscriptions = nil

	if a, ok := c.monitor.(Attachable); ok {
		if err := a.Detach(); err != nil {
			c.logger.WithError(err).Warn("failed to detach performance monitor")
		}
	}
	c.logger.Debug("fly controller destroyed")
}

func (c *flyControllerImpl) Update(delta float32) {
	if math32.IsNaN(delta) {
		delta = c.Clock().GetDelta()
	}

	moveMult := delta * c.movementSpeed * c.speedMultiplier
	c.handle.TranslateX(c.moveVector[0] * moveMult)
	c.handle.TranslateY(c.moveVector[1] * moveMult)
	c.handle.TranslateZ(c.moveVector[2] * moveMult)

	rotMult := delta * c.rollSpeed
	step := mgl32.Quat{W: 1, V: c.rotVector.Mul(rotMult)}.Normalize()
	c.handle.Rotate(step)

	c.refreshReadout()
	c.Monitor().Tick()
}

func (c *flyControllerImpl) UpdateFromClock() {
	c.Update(c.Clock().GetDelta())
}

func (c *flyControllerImpl) Reset() {
	c.handle.SetPosition(0, 0, DefaultResetZ)
	c.handle.SetRotation(0, 0, 0)
}

func (c *flyControllerImpl) MovementSpeed() float32 {
	return c.movementSpeed
}

func (c *flyControllerImpl) SetMovementSpeed(speed float32) {
	c.movementSpeed = common.FiniteOr(speed, DefaultMovementSpeed)
}

func (c *flyControllerImpl) RollSpeed() float32 {
	return c.rollSpeed
}

func (c *flyControllerImpl) SetRollSpeed(speed float32) {
	c.rollSpeed = common.FiniteOr(speed, DefaultRollSpeed)
}

func (c *flyControllerImpl) AutoForward() bool {
	return c.autoForward
}

func (c *flyControllerImpl) SetAutoForward(enabled bool) {
	c.autoForward = enabled
	c.updateVectors()
}

func (c *flyControllerImpl) DragToLook() bool {
	return c.dragToLook
}

func (c *flyControllerImpl) SetDragToLook(enabled bool) {
	c.dragToLook = enabled
}

func (c *flyControllerImpl) MouseInteractive() bool {
	return c.mouseInteractive
}

func (c *flyControllerImpl) SetMouseInteractive(enabled bool) {
	c.mouseInteractive = enabled
}

func (c *flyControllerImpl) SpeedMultiplier() float32 {
	return c.speedMultiplier
}

func (c *flyControllerImpl) InputState() InputState {
	return c.state
}

func (c *flyControllerImpl) MoveVector() mgl32.Vec3 {
	return c.moveVector
}

func (c *flyControllerImpl) RotationVector() mgl32.Vec3 {
	return c.rotVector
}

func (c *flyControllerImpl) DragSessions() int {
	return c.dragSessions
}

func (c *flyControllerImpl) Handle() Handle {
	return c.handle
}

func (c *flyControllerImpl) Clock() Clock {
	if c.clock == nil {
		c.clock = clock.NewClock()
	}
	return c.clock
}

func (c *flyControllerImpl) Monitor() PerformanceMonitor {
	if c.monitor == nil {
		c.monitor = profiler.NewProfiler(profiler.WithLogger(c.logger))
	}
	return c.monitor
}

func (c *flyControllerImpl) Readout() Readout {
	if c.readout == nil {
		c.readout = readout.NewLog(readout.WithLogger(c.logger))
	}
	return c.readout
}

// --- input handling ---

func (c *flyControllerImpl) keyDown(e input.KeyEvent) {
	if e.Mods.Has(input.ModAlt) {
		return
	}
	if isAccelerator(e.Code) {
		c.speedMultiplier = acceleratedMultiplier
		return
	}
	if field, ok := keyBindings[e.Code]; ok {
		*field(&c.state) = 1
		c.updateVectors()
	}
}

func (c *flyControllerImpl) keyUp(e input.KeyEvent) {
	if isAccelerator(e.Code) {
		c.speedMultiplier = 1
		return
	}
	if field, ok := keyBindings[e.Code]; ok {
		*field(&c.state) = 0
		c.updateVectors()
	}
}

func (c *flyControllerImpl) mouseDown(e input.MouseButtonEvent) {
	if f, ok := c.surface.(input.Focuser); ok {
		f.Focus()
	}
	if !c.mouseInteractive {
		return
	}

	if c.dragToLook {
		c.dragSessions++
		return
	}
	switch e.Button {
	case input.MouseButtonPrimary:
		c.state.Forward = 1
	case input.MouseButtonSecondary:
		c.state.Back = 1
	default:
		return
	}
	c.updateVectors()
}

func (c *flyControllerImpl) mouseUp(e input.MouseButtonEvent) {
	if !c.mouseInteractive {
		return
	}

	if c.dragToLook {
		if c.dragSessions > 0 {
			c.dragSessions--
		}
		c.state.YawLeft = 0
		c.state.PitchDown = 0
	} else {
		switch e.Button {
		case input.MouseButtonPrimary:
			c.state.Forward = 0
		case input.MouseButtonSecondary:
			c.state.Back = 0
		default:
			return
		}
	}
	c.updateVectors()
}

func (c *flyControllerImpl) mouseMove(e input.MouseMoveEvent) {
	if !c.mouseInteractive || (c.dragToLook && c.dragSessions <= 0) {
		return
	}

	b := c.surface.Bounds()
	halfW := b.Width / 2
	halfH := b.Height / 2
	if halfW != 0 {
		c.state.YawLeft = -((e.X - b.X) - halfW) / halfW
	}
	if halfH != 0 {
		c.state.PitchDown = ((e.Y - b.Y) - halfH) / halfH
	}
	c.updateVectors()
}

func (c *flyControllerImpl) updateVectors() {
	c.moveVector, c.rotVector = c.state.Derive(c.autoForward)
}

func (c *flyControllerImpl) refreshReadout() {
	p := c.handle.Position()
	r := c.handle.Rotation()
	c.Readout().SetText(
		readout.FormatAxis(p[0], r[0]),
		readout.FormatAxis(p[1], r[1]),
		readout.FormatAxis(p[2], r[2]),
	)
}

// flyListener is the controller's subscription on the input surface.
// Events are dropped once the controller is destroyed.
type flyListener struct {
	c *flyControllerImpl
}

func (l *flyListener) KeyDown(e input.KeyEvent) {
	if l.c.attached {
		l.c.keyDown(e)
	}
}

func (l *flyListener) KeyUp(e input.KeyEvent) {
	if l.c.attached {
		l.c.keyUp(e)
	}
}

func (l *flyListener) MouseDown(e input.MouseButtonEvent) {
	if l.c.attached {
		l.c.mouseDown(e)
	}
}

func (l *flyListener) MouseUp(e input.MouseButtonEvent) {
	if l.c.attached {
		l.c.mouseUp(e)
	}
}

func (l *flyListener) MouseMove(e input.MouseMoveEvent) {
	if l.c.attached {
		l.c.mouseMove(e)
	}
}
