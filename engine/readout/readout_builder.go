package readout

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// LogOption is a functional option for configuring a Log readout.
type LogOption func(*Log)

// WithLogger sets the logger entries are written to. Defaults to logrus.StandardLogger().
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - LogOption: option function to apply
func WithLogger(logger logrus.FieldLogger) LogOption {
	return func(l *Log) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithInterval sets the minimum time between log entries. Zero logs every update.
//
// Parameters:
//   - interval: the throttle interval
//
// Returns:
//   - LogOption: option function to apply
func WithInterval(interval time.Duration) LogOption {
	return func(l *Log) {
		if interval >= 0 {
			l.interval = interval
		}
	}
}

// WithTimeSource replaces time.Now for throttling.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - LogOption: option function to apply
func WithTimeSource(now func() time.Time) LogOption {
	return func(l *Log) {
		if now != nil {
			l.now = now
		}
	}
}

// TerminalOption is a functional option for configuring a Terminal readout.
type TerminalOption func(*Terminal)

// WithScreen draws on an existing screen instead of opening the controlling terminal.
// The screen must not be initialised yet; NewTerminal calls Init on it.
//
// Parameters:
//   - screen: the tcell screen
//
// Returns:
//   - TerminalOption: option function to apply
func WithScreen(screen tcell.Screen) TerminalOption {
	return func(t *Terminal) {
		t.screen = screen
	}
}

// WithOrigin sets the top-left cell of the readout box.
//
// Parameters:
//   - x, y: cell coordinates
//
// Returns:
//   - TerminalOption: option function to apply
func WithOrigin(x, y int) TerminalOption {
	return func(t *Terminal) {
		t.originX, t.originY = x, y
	}
}

// WithTerminalLogger sets the logger used for terminal errors.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - TerminalOption: option function to apply
func WithTerminalLogger(logger logrus.FieldLogger) TerminalOption {
	return func(t *Terminal) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithQuitCallback sets a function called when Escape or Ctrl-C is pressed in the terminal.
//
// Parameters:
//   - callback: the function to call
//
// Returns:
//   - TerminalOption: option function to apply
func WithQuitCallback(callback func()) TerminalOption {
	return func(t *Terminal) {
		t.onQuit = callback
	}
}
