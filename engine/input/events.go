// Package input defines the engine's input events and the surfaces that deliver them.
// A Surface fans events out to subscribed Listeners; Subscriptions returned from
// Subscribe are the only way to detach a listener again.
package input

import "github.com/Carmen-Shannon/oxy-fly/common"

// Modifier is a bit set of modifier keys held while an event fired.
type Modifier uint32

const (
	ModShift   Modifier = common.ModShift
	ModControl Modifier = common.ModControl
	ModAlt     Modifier = common.ModAlt
	ModSuper   Modifier = common.ModSuper
)

// Has reports whether every bit in flag is set on m.
//
// Parameters:
//   - flag: the modifier bits to test
//
// Returns:
//   - bool: true if all bits are present
func (m Modifier) Has(flag Modifier) bool {
	return m&flag == flag
}

// MouseButton identifies a mouse button using DOM numbering.
type MouseButton int

const (
	MouseButtonPrimary   MouseButton = common.MouseButtonPrimary
	MouseButtonMiddle    MouseButton = common.MouseButtonMiddle
	MouseButtonSecondary MouseButton = common.MouseButtonSecondary
)

// KeyEvent is a key press or release.
type KeyEvent struct {
	// Code is the virtual key code (see the common.Key* constants).
	Code uint32
	// Mods holds the modifiers active when the event fired.
	Mods Modifier
}

// MouseButtonEvent is a mouse button press or release at a cursor position.
type MouseButtonEvent struct {
	Button MouseButton
	// X, Y are the cursor position in window coordinates.
	X, Y float32
	Mods Modifier
}

// MouseMoveEvent is a cursor movement in window coordinates.
type MouseMoveEvent struct {
	X, Y float32
}

// Bounds is an axis-aligned rectangle in window coordinates.
type Bounds struct {
	X, Y          float32
	Width, Height float32
}

// Contains reports whether the point lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom edges exclusive.
//
// Parameters:
//   - x, y: the point in window coordinates
//
// Returns:
//   - bool: true if the point is inside
func (b Bounds) Contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}
