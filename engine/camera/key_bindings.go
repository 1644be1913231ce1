package camera

import "github.com/Carmen-Shannon/oxy-fly/common"

// keyBindings maps a key code to the InputState field it drives.
var keyBindings = map[uint32]func(s *InputState) *float32{
	common.KeyW: func(s *InputState) *float32 { return &s.Forward },
	common.KeyS: func(s *InputState) *float32 { return &s.Back },
	common.KeyA: func(s *InputState) *float32 { return &s.Left },
	common.KeyD: func(s *InputState) *float32 { return &s.Right },
	common.KeyR: func(s *InputState) *float32 { return &s.Up },
	common.KeyF: func(s *InputState) *float32 { return &s.Down },

	common.KeyUp:    func(s *InputState) *float32 { return &s.PitchUp },
	common.KeyDown:  func(s *InputState) *float32 { return &s.PitchDown },
	common.KeyLeft:  func(s *InputState) *float32 { return &s.YawLeft },
	common.KeyRight: func(s *InputState) *float32 { return &s.YawRight },

	common.KeyQ: func(s *InputState) *float32 { return &s.RollLeft },
	common.KeyE: func(s *InputState) *float32 { return &s.RollRight },
}

// isAccelerator reports whether code is one of the keys that scale movement speed.
func isAccelerator(code uint32) bool {
	return code == common.KeyLeftShift || code == common.KeyRightShift
}
