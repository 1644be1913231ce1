package profiler

import (
	"time"

	"github.com/sirupsen/logrus"
)

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithLogger sets the logger reports are written to. Defaults to logrus.StandardLogger().
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logger logrus.FieldLogger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithInterval sets how often Tick reports. Values <= 0 keep the default of 1 second.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithStatsAddr sets the host:port the statsview dashboard listens on while attached.
// Empty disables the dashboard.
//
// Parameters:
//   - addr: listen address, for example "localhost:18066"
//
// Returns:
//   - ProfilerOption: option function to apply
func WithStatsAddr(addr string) ProfilerOption {
	return func(p *Profiler) {
		p.statsAddr = addr
	}
}

// WithTimeSource replaces time.Now for frame timing.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerOption: option function to apply
func WithTimeSource(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}
