package camera

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-fly/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RotationOrder names the order in which Euler angles are applied.
// The letters read left to right as intrinsic rotations: RotationOrderXYZ rotates
// about local X, then the new Y, then the new Z.
type RotationOrder int

const (
	RotationOrderXYZ RotationOrder = iota
	RotationOrderYXZ
	RotationOrderZXY
	RotationOrderZYX
	RotationOrderYZX
	RotationOrderXZY
)

// gimbalThreshold is the |sin| above which an Euler decomposition is treated as gimbal-locked.
const gimbalThreshold = 0.9999999

func (o RotationOrder) String() string {
	switch o {
	case RotationOrderXYZ:
		return "XYZ"
	case RotationOrderYXZ:
		return "YXZ"
	case RotationOrderZXY:
		return "ZXY"
	case RotationOrderZYX:
		return "ZYX"
	case RotationOrderYZX:
		return "YZX"
	case RotationOrderXZY:
		return "XZY"
	default:
		return "unknown"
	}
}

// ParseRotationOrder converts a name such as "XYZ" or "yxz" into a RotationOrder.
//
// Parameters:
//   - name: the order name, case-insensitive
//
// Returns:
//   - RotationOrder: the parsed order (RotationOrderXYZ if unrecognized)
//   - bool: false if name was not recognized
func ParseRotationOrder(name string) (RotationOrder, bool) {
	for o := RotationOrderXYZ; o <= RotationOrderXZY; o++ {
		if strings.EqualFold(o.String(), name) {
			return o, true
		}
	}
	return RotationOrderXYZ, false
}

// EulerToQuat builds the orientation described by Euler angles applied in the given order.
//
// Parameters:
//   - euler: rotation about X, Y, Z in radians
//   - order: the order the angles are applied in
//
// Returns:
//   - mgl32.Quat: the unit orientation quaternion
func EulerToQuat(euler mgl32.Vec3, order RotationOrder) mgl32.Quat {
	qx := mgl32.QuatRotate(euler[0], common.AxisX)
	qy := mgl32.QuatRotate(euler[1], common.AxisY)
	qz := mgl32.QuatRotate(euler[2], common.AxisZ)

	var q mgl32.Quat
	switch order {
	case RotationOrderYXZ:
		q = qy.Mul(qx).Mul(qz)
	case RotationOrderZXY:
		q = qz.Mul(qx).Mul(qy)
	case RotationOrderZYX:
		q = qz.Mul(qy).Mul(qx)
	case RotationOrderYZX:
		q = qy.Mul(qz).Mul(qx)
	case RotationOrderXZY:
		q = qx.Mul(qz).Mul(qy)
	default:
		q = qx.Mul(qy).Mul(qz)
	}
	return q.Normalize()
}

// EulerFromQuat decomposes an orientation into Euler angles for the given order.
// Near gimbal lock the last angle of the order is pinned to zero.
//
// Parameters:
//   - q: a unit orientation quaternion
//   - order: the order the angles should be applied in
//
// Returns:
//   - mgl32.Vec3: rotation about X, Y, Z in radians
func EulerFromQuat(q mgl32.Quat, order RotationOrder) mgl32.Vec3 {
	m := q.Normalize().Mat4()
	m11, m12, m13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m21, m22, m23 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m31, m32, m33 := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	var x, y, z float32
	switch order {
	case RotationOrderYXZ:
		x = math32.Asin(-common.Clamp(m23, -1, 1))
		if math32.Abs(m23) < gimbalThreshold {
			y = math32.Atan2(m13, m33)
			z = math32.Atan2(m21, m22)
		} else {
			y = math32.Atan2(-m31, m11)
		}
	case RotationOrderZXY:
		x = math32.Asin(common.Clamp(m32, -1, 1))
		if math32.Abs(m32) < gimbalThreshold {
			y = math32.Atan2(-m31, m33)
			z = math32.Atan2(-m12, m22)
		} else {
			z = math32.Atan2(m21, m11)
		}
	case RotationOrderZYX:
		y = math32.Asin(-common.Clamp(m31, -1, 1))
		if math32.Abs(m31) < gimbalThreshold {
			x = math32.Atan2(m32, m33)
			z = math32.Atan2(m21, m11)
		} else {
			z = math32.Atan2(-m12, m22)
		}
	case RotationOrderYZX:
		z = math32.Asin(common.Clamp(m21, -1, 1))
		if math32.Abs(m21) < gimbalThreshold {
			x = math32.Atan2(-m23, m22)
			y = math32.Atan2(-m31, m11)
		} else {
			y = math32.Atan2(m13, m33)
		}
	case RotationOrderXZY:
		z = math32.Asin(-common.Clamp(m12, -1, 1))
		if math32.Abs(m12) < gimbalThreshold {
			x = math32.Atan2(m32, m22)
			y = math32.Atan2(m13, m11)
		} else {
			x = math32.Atan2(-m23, m33)
		}
	default:
		y = math32.Asin(common.Clamp(m13, -1, 1))
		if math32.Abs(m13) < gimbalThreshold {
			x = math32.Atan2(-m23, m33)
			z = math32.Atan2(-m12, m11)
		} else {
			x = math32.Atan2(m32, m22)
		}
	}
	return mgl32.Vec3{x, y, z}
}
