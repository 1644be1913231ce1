package camera

import (
	"github.com/Carmen-Shannon/oxy-fly/common"
	"github.com/sirupsen/logrus"
)

// FlyControllerOption is a functional option for configuring a FlyController.
// Options are applied before Init runs.
type FlyControllerOption func(*flyControllerImpl)

// WithMovementSpeed sets the translation speed in units per second.
// Non-finite values fall back to DefaultMovementSpeed.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithMovementSpeed(speed float32) FlyControllerOption {
	return func(c *flyControllerImpl) {
		c.movementSpeed = common.FiniteOr(speed, DefaultMovementSpeed)
	}
}

// WithRollSpeed sets the rotation speed in radians per second.
// Non-finite values fall back to DefaultRollSpeed.
//
// Parameters:
//   - speed: radians per second
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithRollSpeed(speed float32) FlyControllerOption {
	return func(c *flyControllerImpl) {
		c.rollSpeed = common.FiniteOr(speed, DefaultRollSpeed)
	}
}

// WithAutoForward enables or disables auto-forward.
//
// Parameters:
//   - enabled: if true, the camera flies forward unless the back command is held
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithAutoForward(enabled bool) FlyControllerOption {
	return func(c *flyControllerImpl) {
		c.autoForward = enabled
	}
}

// WithDragToLook enables or disables drag-to-look.
//
// Parameters:
//   - enabled: if true, mouse look only applies while a button is held
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithDragToLook(enabled bool) FlyControllerOption {
	return func(c *flyControllerImpl) {
		c.dragToLook = enabled
	}
}

// WithMouseInteractive enables or disables mouse control.
//
// Parameters:
//   - enabled: if true, mouse buttons and movement steer the camera
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithMouseInteractive(enabled bool) FlyControllerOption {
	return func(c *flyControllerImpl) {
		c.mouseInteractive = enabled
	}
}

// WithClock supplies the clock used when Update is called without a delta.
//
// Parameters:
//   - clk: the clock
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithClock(clk Clock) FlyControllerOption {
	return func(c *flyControllerImpl) {
		c.clock = clk
	}
}

// WithMonitor supplies the performance monitor ticked by Update.
// Monitors that also implement Attachable are attached by Init and detached by Destroy.
//
// Parameters:
//   - monitor: the monitor
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithMonitor(monitor PerformanceMonitor) FlyControllerOption {
	return func(c *flyControllerImpl) {
		c.monitor = monitor
	}
}

// WithReadout supplies the readout that displays the camera pose.
//
// Parameters:
//   - r: the readout
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithReadout(r Readout) FlyControllerOption {
	return func(c *flyControllerImpl) {
		c.readout = r
	}
}

// WithLogger sets the logger. Defaults to logrus.StandardLogger().
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithLogger(logger logrus.FieldLogger) FlyControllerOption {
	return func(c *flyControllerImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}
