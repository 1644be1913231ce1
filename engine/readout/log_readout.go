package readout

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-fly/engine/input"
	"github.com/sirupsen/logrus"
)

// Log is a readout that writes the pose to a logger at debug level.
// SetText is called every frame, so output is throttled to one entry per interval.
// There is nothing to click on a log; Click fires the click callbacks programmatically.
type Log struct {
	mu       *sync.Mutex
	logger   logrus.FieldLogger
	interval time.Duration
	now      func() time.Time
	last     time.Time
	lines    [3]string

	clicks *clickHandlers
}

// NewLog creates a log readout that logs at most once per second.
//
// Parameters:
//   - options: functional options to configure the readout
//
// Returns:
//   - *Log: the new readout
func NewLog(options ...LogOption) *Log {
	l := &Log{
		mu:       &sync.Mutex{},
		logger:   logrus.StandardLogger(),
		interval: time.Second,
		now:      time.Now,
		clicks:   newClickHandlers(),
	}
	for _, option := range options {
		option(l)
	}
	l.logger = l.logger.WithField("component", "readout")
	return l
}

// SetText stores the three axis lines and logs them if the interval has elapsed.
//
// Parameters:
//   - x, y, z: the formatted line for each axis
func (l *Log) SetText(x, y, z string) {
	l.mu.Lock()
	l.lines = [3]string{x, y, z}
	now := l.now()
	due := l.last.IsZero() || now.Sub(l.last) >= l.interval
	if due {
		l.last = now
	}
	l.mu.Unlock()

	if due {
		l.logger.WithFields(logrus.Fields{"x": x, "y": y, "z": z}).Debug(Title)
	}
}

// Text returns the most recent axis lines.
//
// Returns:
//   - [3]string: the x, y and z lines
func (l *Log) Text() [3]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lines
}

// OnClick registers a callback fired by Click.
//
// Parameters:
//   - callback: the function to call
//
// Returns:
//   - input.Subscription: handle that removes the callback when cancelled
func (l *Log) OnClick(callback func()) input.Subscription {
	return l.clicks.add(callback)
}

// Click fires every registered click callback.
func (l *Log) Click() {
	l.clicks.fire()
}
