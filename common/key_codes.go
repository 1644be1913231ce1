package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyR     = 82 // R key (ASCII)
	KeyF     = 70 // F key (ASCII)
	KeyQ     = 81 // Q key (ASCII)
	KeyE     = 69 // E key (ASCII)
	KeySpace = 32 // Spacebar (ASCII)

	KeyEsc   = 256 // Escape key (GLFW)
	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyLeftAlt    = 342 // Left Alt (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
	KeyRightAlt   = 346 // Right Alt (GLFW)
)

// Mouse buttons use the DOM numbering (0 primary, 1 auxiliary, 2 secondary) rather than
// GLFW's, which swaps middle and right. The window translates GLFW buttons into these values.
const (
	MouseButtonPrimary   = 0
	MouseButtonMiddle    = 1
	MouseButtonSecondary = 2
)

// Modifier bits carried on key and mouse button events.
// The values match glfw.ModifierKey so the window can pass them through unchanged.
const (
	ModShift   = 0x0001
	ModControl = 0x0002
	ModAlt     = 0x0004
	ModSuper   = 0x0008
)
