package gosiegl

import (
	"fmt"
	"math"
)

// Vector3 is a 3 component vector or point.
//
// Free functions (Add, Sub, Cross, ...) never modify their arguments. The
// pointer methods Neg, Scalar, Normalize and ApplyMatrix modify the receiver
// in place and return it so calls can be chained.
type Vector3 [3]float64

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

func ZeroVector3() Vector3 {
	return Vector3{}
}

// Vector3FromSlice copies s into a Vector3. It fails with ErrDimension if s
// does not have exactly 3 elements.
func Vector3FromSlice(s []float64) (Vector3, error) {
	if len(s) != 3 {
		return Vector3{}, fmt.Errorf("vector3 from %d elements: %w", len(s), ErrDimension)
	}
	return Vector3{s[0], s[1], s[2]}, nil
}

func (v Vector3) X() float64 { return v[0] }
func (v Vector3) Y() float64 { return v[1] }
func (v Vector3) Z() float64 { return v[2] }

func Add(u, v Vector3) Vector3 {
	return Vector3{u[0] + v[0], u[1] + v[1], u[2] + v[2]}
}

func Sub(u, v Vector3) Vector3 {
	return Vector3{u[0] - v[0], u[1] - v[1], u[2] - v[2]}
}

func Dot(u, v Vector3) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Cross calculates the cross product of two 3-element vectors.
func Cross(u, v Vector3) Vector3 {
	return Vector3{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// CrossSlices is Cross for untyped input such as vertex attribute arrays.
// The cross product is only defined for 3D vectors, anything else is
// ErrDimension.
func CrossSlices(u, v []float64) (Vector3, error) {
	if len(u) != 3 || len(v) != 3 {
		return Vector3{}, fmt.Errorf("cross product of %d and %d elements: %w", len(u), len(v), ErrDimension)
	}
	return Cross(Vector3{u[0], u[1], u[2]}, Vector3{v[0], v[1], v[2]}), nil
}

func Length(v Vector3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns v divided by its length. The zero vector has no
// direction: the result is NaN in every component, which is up to the
// caller to avoid.
func Normalize(v Vector3) Vector3 {
	l := Length(v)
	return Vector3{v[0] / l, v[1] / l, v[2] / l}
}

func ScalarProduct(s float64, v Vector3) Vector3 {
	return Vector3{s * v[0], s * v[1], s * v[2]}
}

// Projection projects v onto u. u must not be the zero vector (NaN result).
func Projection(u, v Vector3) Vector3 {
	return ScalarProduct(Dot(u, v)/Dot(u, u), u)
}

// Perpendicular is the component of v orthogonal to u.
func Perpendicular(u, v Vector3) Vector3 {
	return Sub(v, Projection(u, v))
}

// RotateOrth rotates v by theta around the axis u. It is only a rotation
// when v is perpendicular to u; nothing checks that.
func RotateOrth(u, v Vector3, theta float64) Vector3 {
	u = Normalize(u)
	return Add(ScalarProduct(math.Cos(theta), v), ScalarProduct(math.Sin(theta), Cross(u, v)))
}

func (v *Vector3) Neg() *Vector3 {
	v[0], v[1], v[2] = -v[0], -v[1], -v[2]
	return v
}

func (v *Vector3) Scalar(s float64) *Vector3 {
	v[0] *= s
	v[1] *= s
	v[2] *= s
	return v
}

// Normalize scales v to unit length in place. See the Normalize function for
// the zero vector.
func (v *Vector3) Normalize() *Vector3 {
	*v = Normalize(*v)
	return v
}

// ApplyMatrix transforms v as a point (w = 1) by m, including the
// perspective divide by the resulting w. Directions should use
// TransformDirection instead.
func (v *Vector3) ApplyMatrix(m Matrix4) *Vector3 {
	x, y, z := v[0], v[1], v[2]

	w := 1 / (m[3]*x + m[7]*y + m[11]*z + m[15])

	v[0] = (m[0]*x + m[4]*y + m[8]*z + m[12]) * w
	v[1] = (m[1]*x + m[5]*y + m[9]*z + m[13]) * w
	v[2] = (m[2]*x + m[6]*y + m[10]*z + m[14]) * w

	return v
}

// TransformDirection rotates v by the matrix's 3x3 component.
// It does not apply translation or the divide, making it suitable for
// direction vectors.
func (v *Vector3) TransformDirection(m Matrix4) *Vector3 {
	x, y, z := v[0], v[1], v[2]

	v[0] = m[0]*x + m[4]*y + m[8]*z
	v[1] = m[1]*x + m[5]*y + m[9]*z
	v[2] = m[2]*x + m[6]*y + m[10]*z

	return v
}

func (v Vector3) DistanceTo(other Vector3) float64 {
	return Length(Sub(v, other))
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%f, %f, %f)", v[0], v[1], v[2])
}
