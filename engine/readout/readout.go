// Package readout displays a camera pose as three "position / rotation" lines,
// one per axis, and reports clicks so the pose can be reset from the display.
package readout

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-fly/engine/input"
)

// Title is the heading shown above the axis lines.
const Title = "CAMERA"

// Colours of the readout box.
const (
	BackgroundHex = "#520a6f"
	ForegroundHex = "#ff7ed4"
)

// FormatAxis formats one readout line as "position / rotation" with three decimals.
// Negative zero prints as 0.000; small negatives keep their sign, so -0.0001 prints
// as -0.000.
//
// Parameters:
//   - position: the position component
//   - rotation: the rotation component in radians
//
// Returns:
//   - string: the formatted line
func FormatAxis(position, rotation float32) string {
	return formatFixed(position) + " / " + formatFixed(rotation)
}

func formatFixed(v float32) string {
	if v == 0 {
		v = 0
	}
	return fmt.Sprintf("%.3f", v)
}

// clickHandlers is an ordered set of click callbacks.
type clickHandlers struct {
	mu       *sync.Mutex
	nextID   uint64
	handlers map[uint64]func()
	order    []uint64
}

func newClickHandlers() *clickHandlers {
	return &clickHandlers{
		mu:       &sync.Mutex{},
		handlers: make(map[uint64]func()),
	}
}

func (c *clickHandlers) add(callback func()) input.Subscription {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.handlers[id] = callback
	c.order = append(c.order, id)
	c.mu.Unlock()

	return input.NewSubscription(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.handlers, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i:i], c.order[i+1:]...)
				break
			}
		}
	})
}

func (c *clickHandlers) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// fire calls every registered callback in registration order, outside the lock.
func (c *clickHandlers) fire() {
	c.mu.Lock()
	callbacks := make([]func(), 0, len(c.order))
	for _, id := range c.order {
		if cb := c.handlers[id]; cb != nil {
			callbacks = append(callbacks, cb)
		}
	}
	c.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}
