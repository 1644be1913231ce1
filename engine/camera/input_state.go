package camera

import "github.com/go-gl/mathgl/mgl32"

// InputState is the set of motion commands currently held.
// Every field is 0 or 1 while driven by keys or buttons. YawLeft and PitchDown
// also take continuous values in about [-1, 1] when the mouse steers the camera.
type InputState struct {
	Up, Down      float32
	Left, Right   float32
	Forward, Back float32
	PitchUp       float32
	PitchDown     float32
	YawLeft       float32
	YawRight      float32
	RollLeft      float32
	RollRight     float32
}

// Derive reduces the state to a camera-local move direction and rotation rate.
// Auto-forward pushes the camera forward whenever Back is not held.
//
// Parameters:
//   - autoForward: whether auto-forward mode is enabled
//
// Returns:
//   - move: translation direction per local axis (-Z is forward)
//   - rotation: pitch, yaw and roll rates per local axis
func (s InputState) Derive(autoForward bool) (move, rotation mgl32.Vec3) {
	forward := s.Forward
	if autoForward && s.Back == 0 {
		forward = 1
	}

	move = mgl32.Vec3{
		s.Right - s.Left,
		s.Up - s.Down,
		s.Back - forward,
	}
	rotation = mgl32.Vec3{
		s.PitchUp - s.PitchDown,
		s.YawLeft - s.YawRight,
		s.RollLeft - s.RollRight,
	}
	return move, rotation
}
