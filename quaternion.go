package gosiegl

import (
	"fmt"
	"math"
)

// Quaternion is a rotation stored as (x, y, z, w). Nothing keeps it at unit
// length; normalize after building one from non-unit input.
type Quaternion [4]float64

// epsilon is the gap between 1 and the next float64.
var epsilon = math.Nextafter(1, 2) - 1

// NewQuaternion builds a quaternion from 3 or 4 components.
//
// With 3 components a w of 1 is appended and the result is NOT normalized:
// (x, y, z) becomes (x, y, z, 1), which is only a rotation in the special
// case x = y = z = 0. Callers holding an axis or a rotation vector should use
// AxisAngleToQuaternion instead. Any other length is ErrDimension.
func NewQuaternion(elements ...float64) (Quaternion, error) {
	switch len(elements) {
	case 3:
		return Quaternion{elements[0], elements[1], elements[2], 1}, nil
	case 4:
		return Quaternion{elements[0], elements[1], elements[2], elements[3]}, nil
	}
	return Quaternion{}, fmt.Errorf("quaternion from %d elements: %w", len(elements), ErrDimension)
}

func IdentityQuaternion() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// Conjugate negates all four components.
//
// Note this is not the textbook conjugate, which leaves w alone: -q describes
// the same rotation as q, not the reverse one. Invert is built on it, so the
// two stay consistent until the intended behavior is settled.
func Conjugate(q Quaternion) Quaternion {
	return Quaternion{-q[0], -q[1], -q[2], -q[3]}
}

// Invert returns Conjugate(q), without dividing by the squared norm. See
// Conjugate.
func Invert(q Quaternion) Quaternion {
	return Conjugate(q)
}

func QuaternionLength(q Quaternion) float64 {
	return math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

// NormalizeQuaternion divides q by its length. The zero quaternion gives NaN.
func NormalizeQuaternion(q Quaternion) Quaternion {
	l := QuaternionLength(q)
	return Quaternion{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

// Mul is the Hamilton product a * b.
func Mul(a, b Quaternion) Quaternion {
	qax, qay, qaz, qaw := a[0], a[1], a[2], a[3]
	qbx, qby, qbz, qbw := b[0], b[1], b[2], b[3]

	return Quaternion{
		qax*qbw + qaw*qbx + qay*qbz - qaz*qby,
		qay*qbw + qaw*qby + qaz*qbx - qax*qbz,
		qaz*qbw + qaw*qbz + qax*qby - qay*qbx,
		qaw*qbw - qax*qbx - qay*qby - qaz*qbz,
	}
}

// AxisAngleToQuaternion expects a unit axis.
func AxisAngleToQuaternion(axis Vector3, angle float64) Quaternion {
	halfAngle := angle / 2
	s := math.Sin(halfAngle)
	return Quaternion{axis[0] * s, axis[1] * s, axis[2] * s, math.Cos(halfAngle)}
}

// EulerToQuaternion converts XYZ ordered angles. Other orders are
// ErrUnsupportedOrder.
func EulerToQuaternion(e Euler) (Quaternion, error) {
	if e.Order != OrderXYZ {
		return Quaternion{}, fmt.Errorf("euler to quaternion, order %q: %w", e.Order, ErrUnsupportedOrder)
	}

	c1, s1 := math.Cos(e.X/2), math.Sin(e.X/2)
	c2, s2 := math.Cos(e.Y/2), math.Sin(e.Y/2)
	c3, s3 := math.Cos(e.Z/2), math.Sin(e.Z/2)

	return Quaternion{
		s1*c2*c3 + c1*s2*s3,
		c1*s2*c3 - s1*c2*s3,
		c1*c2*s3 + s1*s2*c3,
		c1*c2*c3 - s1*s2*s3,
	}, nil
}

// RotationMatrixToQuaternion extracts the rotation from the upper 3x3 of m,
// which must be a pure (unscaled) rotation. The branch is picked on the
// trace and the largest diagonal term to keep the square root well away
// from zero.
func RotationMatrixToQuaternion(m Matrix4) Quaternion {
	m11, m12, m13 := m[0], m[4], m[8]
	m21, m22, m23 := m[1], m[5], m[9]
	m31, m32, m33 := m[2], m[6], m[10]

	trace := m11 + m22 + m33

	var q Quaternion
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1.0)

		q[3] = 0.25 / s
		q[0] = (m32 - m23) * s
		q[1] = (m13 - m31) * s
		q[2] = (m21 - m12) * s

	case m11 > m22 && m11 > m33:
		s := 2.0 * math.Sqrt(1.0+m11-m22-m33)

		q[3] = (m32 - m23) / s
		q[0] = 0.25 * s
		q[1] = (m12 + m21) / s
		q[2] = (m13 + m31) / s

	case m22 > m33:
		s := 2.0 * math.Sqrt(1.0+m22-m11-m33)

		q[3] = (m13 - m31) / s
		q[0] = (m12 + m21) / s
		q[1] = 0.25 * s
		q[2] = (m23 + m32) / s

	default:
		s := 2.0 * math.Sqrt(1.0+m33-m11-m22)

		q[3] = (m21 - m12) / s
		q[0] = (m13 + m31) / s
		q[1] = (m23 + m32) / s
		q[2] = 0.25 * s
	}
	return q
}

// MakeRotationFromQuaternion builds the rotation matrix for a unit
// quaternion.
func MakeRotationFromQuaternion(q Quaternion) Matrix4 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	var ret Matrix4
	ret.Set(
		1-(yy+zz), xy-wz, xz+wy, 0,
		xy+wz, 1-(xx+zz), yz-wx, 0,
		xz-wy, yz+wx, 1-(xx+yy), 0,
		0, 0, 0, 1,
	)
	return ret
}

// UnitVectorsToQuaternion returns the shortest rotation taking the unit
// vector from onto the unit vector to. Opposite vectors have no unique
// shortest arc; any axis perpendicular to from is used.
func UnitVectorsToQuaternion(from, to Vector3) Quaternion {
	var q Quaternion

	r := Dot(from, to) + 1

	if r < epsilon {
		// from and to point in opposite directions
		r = 0

		if math.Abs(from[0]) > math.Abs(from[2]) {
			q = Quaternion{-from[1], from[0], 0, r}
		} else {
			q = Quaternion{0, -from[2], from[1], r}
		}
	} else {
		c := Cross(from, to)
		q = Quaternion{c[0], c[1], c[2], r}
	}

	return NormalizeQuaternion(q)
}
