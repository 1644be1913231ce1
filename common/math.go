package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// World-space basis vectors. Cameras look down their local -Z axis with +Y up.
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Perspective creates a perspective projection matrix.
// Uses the WebGPU clip space depth convention [0, 1] rather than OpenGL's [-1, 1],
// which is why mgl32.Perspective is not used directly.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / math32.Tan(fovY/2.0)

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// ViewFromPose builds a view matrix from a world-space position and orientation.
// The view matrix is the inverse of the camera's model matrix T * R, computed as R^T * T(-p)
// so no general 4x4 inversion is needed.
//
// Parameters:
//   - position: camera position in world space
//   - orientation: camera orientation as a unit quaternion
//
// Returns:
//   - mgl32.Mat4: the column-major view matrix
func ViewFromPose(position mgl32.Vec3, orientation mgl32.Quat) mgl32.Mat4 {
	rot := orientation.Conjugate().Mat4()
	return rot.Mul4(mgl32.Translate3D(-position[0], -position[1], -position[2]))
}

// LocalAxis rotates a unit basis vector by orientation, yielding that axis in world space.
//
// Parameters:
//   - orientation: the rotation to apply
//   - axis: a local-space direction, usually AxisX, AxisY or AxisZ
//
// Returns:
//   - mgl32.Vec3: the world-space direction
func LocalAxis(orientation mgl32.Quat, axis mgl32.Vec3) mgl32.Vec3 {
	return orientation.Rotate(axis)
}
