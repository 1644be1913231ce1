// Package clock provides a frame clock reporting the seconds elapsed between calls.
package clock

import (
	"sync"
	"time"
)

type clockImpl struct {
	mu *sync.Mutex

	now     func() time.Time
	start   time.Time
	last    time.Time
	running bool
}

// Clock reports elapsed time in seconds. The clock starts running when it is created.
type Clock interface {
	// GetDelta returns the seconds elapsed since the previous GetDelta call,
	// or since the clock started for the first call.
	//
	// Returns:
	//   - float32: elapsed seconds
	GetDelta() float32

	// Elapsed returns the seconds since the clock started without advancing the delta reference.
	//
	// Returns:
	//   - float32: seconds since Start
	Elapsed() float32

	// Start restarts the clock. The next GetDelta measures from this call.
	Start()

	// Stop pauses the clock. GetDelta returns 0 until Start is called again.
	Stop()

	// Running reports whether the clock is running.
	//
	// Returns:
	//   - bool: true if running
	Running() bool
}

var _ Clock = &clockImpl{}

// NewClock creates a running clock backed by time.Now unless WithTimeSource is given.
//
// Parameters:
//   - options: functional options to configure the clock
//
// Returns:
//   - Clock: the started clock
func NewClock(options ...ClockBuilderOption) Clock {
	c := &clockImpl{
		mu:  &sync.Mutex{},
		now: time.Now,
	}
	for _, option := range options {
		option(c)
	}
	c.Start()
	return c
}

func (c *clockImpl) GetDelta() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return 0
	}
	now := c.now()
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return float32(dt.Seconds())
}

func (c *clockImpl) Elapsed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return float32(c.last.Sub(c.start).Seconds())
	}
	return float32(c.now().Sub(c.start).Seconds())
}

func (c *clockImpl) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.start = now
	c.last = now
	c.running = true
}

func (c *clockImpl) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		c.last = c.now()
	}
	c.running = false
}

func (c *clockImpl) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
