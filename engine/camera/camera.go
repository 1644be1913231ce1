package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-fly/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	position    mgl32.Vec3
	rotation    mgl32.Vec3
	order       RotationOrder
	orientation mgl32.Quat

	fov    float32
	aspect float32
	near   float32
	far    float32
}

// Camera defines the interface for the camera system.
// The camera owns its pose (position plus orientation, kept both as a quaternion and as
// Euler angles in a configurable order) and its perspective settings, and derives
// view/projection matrices from them on demand. It is safe to read from the render
// goroutine while another goroutine moves it.
type Camera interface {
	Handle

	// Order returns the rotation order used for the Euler representation.
	//
	// Returns:
	//   - RotationOrder: the current order
	Order() RotationOrder

	// SetOrder changes the Euler rotation order. The orientation is kept and the
	// Euler angles are recomputed in the new order.
	//
	// Parameters:
	//   - order: the new rotation order
	SetOrder(order RotationOrder)

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// Forward returns the world-space direction the camera looks along (local -Z).
	//
	// Returns:
	//   - mgl32.Vec3: unit forward vector
	Forward() mgl32.Vec3

	// Up returns the camera's world-space up direction (local +Y).
	//
	// Returns:
	//   - mgl32.Vec3: unit up vector
	Up() mgl32.Vec3

	// Right returns the camera's world-space right direction (local +X).
	//
	// Returns:
	//   - mgl32.Vec3: unit right vector
	Right() mgl32.Vec3

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the column-major view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the column-major projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjectionMatrix() mgl32.Mat4

	// GPUUniform packs the camera state for upload to the GPU.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform block
	GPUUniform() GPUCameraUniform
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:          &sync.Mutex{},
		order:       RotationOrderXYZ,
		orientation: mgl32.QuatIdent(),
		fov:         45.0 * (math.Pi / 180.0), // radians
		aspect:      1.0,
		near:        0.1,
		far:         20000.0,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = mgl32.Vec3{x, y, z}
}

func (c *cameraImpl) Rotation() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation
}

func (c *cameraImpl) SetRotation(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = mgl32.Vec3{x, y, z}
	c.orientation = EulerToQuat(c.rotation, c.order)
}

func (c *cameraImpl) Orientation() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orientation
}

func (c *cameraImpl) SetOrientation(q mgl32.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setOrientation(q)
}

func (c *cameraImpl) Rotate(delta mgl32.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setOrientation(c.orientation.Mul(delta))
}

func (c *cameraImpl) TranslateX(distance float32) {
	c.translateOnAxis(common.AxisX, distance)
}

func (c *cameraImpl) TranslateY(distance float32) {
	c.translateOnAxis(common.AxisY, distance)
}

func (c *cameraImpl) TranslateZ(distance float32) {
	c.translateOnAxis(common.AxisZ, distance)
}

func (c *cameraImpl) Order() RotationOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order
}

func (c *cameraImpl) SetOrder(order RotationOrder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = order
	c.rotation = EulerFromQuat(c.orientation, order)
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.LocalAxis(c.orientation, common.AxisZ).Mul(-1)
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.LocalAxis(c.orientation, common.AxisY)
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.LocalAxis(c.orientation, common.AxisX)
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ViewFromPose(c.position, c.orientation)
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.Perspective(c.fov, c.aspect, c.near, c.far)
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjection()
}

func (c *cameraImpl) GPUUniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{
		InverseViewProj: c.viewProjection().Inv(),
		CameraPosition:  c.position,
	}
}

// setOrientation stores a normalized orientation and re-derives the Euler angles.
// Caller must hold the mutex.
func (c *cameraImpl) setOrientation(q mgl32.Quat) {
	c.orientation = q.Normalize()
	c.rotation = EulerFromQuat(c.orientation, c.order)
}

// viewProjection computes projection * view. Caller must hold the mutex.
func (c *cameraImpl) viewProjection() mgl32.Mat4 {
	proj := common.Perspective(c.fov, c.aspect, c.near, c.far)
	return proj.Mul4(common.ViewFromPose(c.position, c.orientation))
}

// translateOnAxis moves the camera by distance along a local axis.
func (c *cameraImpl) translateOnAxis(axis mgl32.Vec3, distance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = c.position.Add(common.LocalAxis(c.orientation, axis).Mul(distance))
}
