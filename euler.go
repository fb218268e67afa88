package gosiegl

import (
	"fmt"
	"math"
)

// EulerOrder names the axis sequence the angles of an Euler are applied in.
type EulerOrder string

// OrderXYZ is the only order the conversions implement. Any other value is
// carried on the Euler but rejected with ErrUnsupportedOrder.
const OrderXYZ EulerOrder = "XYZ"

// Euler holds rotation angles in radians around each axis.
type Euler struct {
	X, Y, Z float64
	Order   EulerOrder
}

func NewEuler(x, y, z float64) Euler {
	return Euler{X: x, Y: y, Z: z, Order: OrderXYZ}
}

// MakeRotationFromEuler builds the rotation matrix for e.
func MakeRotationFromEuler(e Euler) (Matrix4, error) {
	if e.Order != OrderXYZ {
		return Matrix4{}, fmt.Errorf("rotation from euler, order %q: %w", e.Order, ErrUnsupportedOrder)
	}

	a, b := math.Cos(e.X), math.Sin(e.X)
	c, d := math.Cos(e.Y), math.Sin(e.Y)
	ce, f := math.Cos(e.Z), math.Sin(e.Z)
	ae, af, be, bf := a*ce, a*f, b*ce, b*f

	ret := MakeIdentity()

	ret[0] = c * ce
	ret[4] = -c * f
	ret[8] = d

	ret[1] = af + be*d
	ret[5] = ae - bf*d
	ret[9] = -b * c

	ret[2] = bf - ae*d
	ret[6] = be + af*d
	ret[10] = a * c

	return ret, nil
}

// SetFromRotationMatrix sets the angles from the upper 3x3 of m, which must
// be an unscaled rotation. On error e is left unchanged.
func (e *Euler) SetFromRotationMatrix(m Matrix4) error {
	if e.Order != OrderXYZ {
		return fmt.Errorf("euler from rotation matrix, order %q: %w", e.Order, ErrUnsupportedOrder)
	}

	m11, m12, m13 := m[0], m[4], m[8]
	m22, m23 := m[5], m[9]
	m32, m33 := m[6], m[10]

	e.Y = math.Asin(math.Max(-1, math.Min(1, m13)))

	if math.Abs(m13) < 0.9999999 {
		e.X = math.Atan2(-m23, m33)
		e.Z = math.Atan2(-m12, m11)
	} else {
		// gimbal lock, only x+z is recoverable
		e.X = math.Atan2(m32, m22)
		e.Z = 0
	}
	return nil
}
