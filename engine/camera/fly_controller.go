package camera

import (
	"github.com/Carmen-Shannon/oxy-fly/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Handle is the part of a camera the fly controller drives.
// Camera satisfies it; tests and other scene objects can supply their own.
type Handle interface {
	// Position returns the world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// SetPosition moves the handle to a world-space point.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Rotation returns the orientation as Euler angles in the handle's rotation order.
	//
	// Returns:
	//   - mgl32.Vec3: rotation about X, Y, Z in radians
	Rotation() mgl32.Vec3

	// SetRotation replaces the orientation with the given Euler angles.
	//
	// Parameters:
	//   - x, y, z: rotation about each axis in radians
	SetRotation(x, y, z float32)

	// Orientation returns the orientation quaternion.
	//
	// Returns:
	//   - mgl32.Quat: the unit orientation
	Orientation() mgl32.Quat

	// SetOrientation replaces the orientation quaternion and re-derives the Euler angles.
	//
	// Parameters:
	//   - q: the new orientation (normalized on assignment)
	SetOrientation(q mgl32.Quat)

	// Rotate composes delta onto the current orientation in the handle's local frame
	// (orientation = orientation * delta) and re-derives the Euler angles.
	//
	// Parameters:
	//   - delta: the incremental rotation
	Rotate(delta mgl32.Quat)

	// TranslateX moves the handle along its local X axis.
	//
	// Parameters:
	//   - distance: signed distance in world units
	TranslateX(distance float32)

	// TranslateY moves the handle along its local Y axis.
	//
	// Parameters:
	//   - distance: signed distance in world units
	TranslateY(distance float32)

	// TranslateZ moves the handle along its local Z axis.
	//
	// Parameters:
	//   - distance: signed distance in world units
	TranslateZ(distance float32)
}

// Clock supplies elapsed frame time.
type Clock interface {
	// GetDelta returns the seconds since the previous call.
	GetDelta() float32
}

// PerformanceMonitor is ticked once per controller update.
type PerformanceMonitor interface {
	// Tick records a frame.
	//
	// Returns:
	//   - bool: true if the monitor published a report this tick
	Tick() bool
}

// Attachable is implemented by monitors that have a visible element which is shown
// while the controller is initialised.
type Attachable interface {
	Attach() error
	Detach() error
}

// Readout displays the camera pose, one line per axis, and reports clicks.
type Readout interface {
	// SetText replaces the three axis lines.
	//
	// Parameters:
	//   - x, y, z: the formatted line for each axis
	SetText(x, y, z string)

	// OnClick registers a function called when the readout is clicked.
	//
	// Parameters:
	//   - callback: the function to call
	//
	// Returns:
	//   - input.Subscription: handle that removes the callback when cancelled
	OnClick(callback func()) input.Subscription
}

// FlyController turns keyboard and mouse input into free-flight motion of a camera.
// Input events update an InputState which is immediately reduced into a move vector and
// a rotation vector; Update integrates both over elapsed time into the camera handle.
//
// Keys: W/S forward and back, A/D left and right, R/F up and down, arrow keys pitch and
// yaw, Q/E roll. Either shift key slows movement to a tenth while held. Key presses
// with Alt held are ignored.
//
// FlyController is not safe for concurrent use. Deliver events and call Update from
// one goroutine, for example by routing the window through an input.Queue.
type FlyController interface {
	// Init subscribes to the input surface, registers click-to-reset on the readout,
	// attaches the performance monitor and resets the camera. Calling Init on an
	// initialised controller does nothing.
	Init()

	// Destroy removes every listener registered by Init and detaches the monitor.
	// Input events delivered afterwards have no effect. Safe to call more than once.
	Destroy()

	// Update integrates the move and rotation vectors over delta seconds, refreshes the
	// readout and ticks the monitor. A NaN delta reads the elapsed time from the clock.
	//
	// Parameters:
	//   - delta: elapsed seconds, or NaN to use the clock
	Update(delta float32)

	// UpdateFromClock is Update with the delta taken from the clock.
	UpdateFromClock()

	// Reset moves the camera to (0, 0, DefaultResetZ) with zero rotation.
	// Input state and configuration are not changed.
	Reset()

	// MovementSpeed returns the translation speed in units per second.
	//
	// Returns:
	//   - float32: movement speed
	MovementSpeed() float32

	// SetMovementSpeed sets the translation speed. Non-finite values reset it to
	// DefaultMovementSpeed.
	//
	// Parameters:
	//   - speed: units per second
	SetMovementSpeed(speed float32)

	// RollSpeed returns the rotation speed in radians per second.
	//
	// Returns:
	//   - float32: rotation speed
	RollSpeed() float32

	// SetRollSpeed sets the rotation speed. Non-finite values reset it to DefaultRollSpeed.
	//
	// Parameters:
	//   - speed: radians per second
	SetRollSpeed(speed float32)

	// AutoForward reports whether the camera flies forward without a key held.
	//
	// Returns:
	//   - bool: true if auto-forward is enabled
	AutoForward() bool

	// SetAutoForward enables or disables auto-forward. The move vector is recomputed.
	//
	// Parameters:
	//   - enabled: the new setting
	SetAutoForward(enabled bool)

	// DragToLook reports whether mouse look requires a held button.
	//
	// Returns:
	//   - bool: true if drag-to-look is enabled
	DragToLook() bool

	// SetDragToLook enables or disables drag-to-look.
	//
	// Parameters:
	//   - enabled: the new setting
	SetDragToLook(enabled bool)

	// MouseInteractive reports whether mouse buttons and movement steer the camera.
	//
	// Returns:
	//   - bool: true if the mouse is interactive
	MouseInteractive() bool

	// SetMouseInteractive enables or disables mouse control. Keys are unaffected.
	//
	// Parameters:
	//   - enabled: the new setting
	SetMouseInteractive(enabled bool)

	// SpeedMultiplier returns the current movement scale: 1, or 0.1 while shift is held.
	//
	// Returns:
	//   - float32: the multiplier
	SpeedMultiplier() float32

	// InputState returns a copy of the held commands.
	//
	// Returns:
	//   - InputState: the current input state
	InputState() InputState

	// MoveVector returns the camera-local translation direction derived from the input state.
	//
	// Returns:
	//   - mgl32.Vec3: the move vector
	MoveVector() mgl32.Vec3

	// RotationVector returns the pitch, yaw and roll rates derived from the input state.
	//
	// Returns:
	//   - mgl32.Vec3: the rotation vector
	RotationVector() mgl32.Vec3

	// DragSessions returns the number of mouse buttons held in drag-to-look mode.
	//
	// Returns:
	//   - int: the drag session count (never negative)
	DragSessions() int

	// Handle returns the camera handle being driven.
	//
	// Returns:
	//   - Handle: the camera handle
	Handle() Handle

	// Clock returns the clock used by UpdateFromClock, creating it on first use.
	//
	// Returns:
	//   - Clock: the clock
	Clock() Clock

	// Monitor returns the performance monitor, creating it on first use.
	//
	// Returns:
	//   - PerformanceMonitor: the monitor
	Monitor() PerformanceMonitor

	// Readout returns the pose readout, creating it on first use.
	//
	// Returns:
	//   - Readout: the readout
	Readout() Readout
}
