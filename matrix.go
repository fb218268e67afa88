package gosiegl

import (
	"fmt"
	"math"
	"strings"
)

// DEG2RAD converts degrees to radians.
const DEG2RAD = math.Pi / 180

// Matrix4 is a 4x4 matrix stored in column order: elements 0-3 are the first
// column, 4-7 the second and so on. The raw array can be handed to anything
// that expects a column-major mat4 (uniform uploads, mgl64.Mat4).
//
// Set, At and SetAt take (row, column) arguments and are the only code that
// maps them onto the column-major storage.
type Matrix4 [16]float64

func MakeIdentity() Matrix4 {
	return Matrix4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

// Zero returns the all zero matrix. It is also what Invert produces for a
// singular matrix.
func Zero() Matrix4 {
	return Matrix4{}
}

// Matrix4FromSlice copies 16 column-major values into a Matrix4.
func Matrix4FromSlice(elements []float64) (Matrix4, error) {
	var m Matrix4
	if len(elements) != len(m) {
		return m, fmt.Errorf("matrix4 from %d elements: %w", len(elements), ErrDimension)
	}
	copy(m[:], elements)
	return m, nil
}

func (m *Matrix4) At(row, col int) float64 {
	return m[col*4+row]
}

func (m *Matrix4) SetAt(row, col int, v float64) {
	m[col*4+row] = v
}

// Set assigns all 16 entries. Arguments are given row by row (n12 is row 1,
// column 2) and stored column-major.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float64) *Matrix4 {
	m[0], m[4], m[8], m[12] = n11, n12, n13, n14
	m[1], m[5], m[9], m[13] = n21, n22, n23, n24
	m[2], m[6], m[10], m[14] = n31, n32, n33, n34
	m[3], m[7], m[11], m[15] = n41, n42, n43, n44
	return m
}

// MakeRotation builds a rotation of angle radians around axis. The axis must
// already be unit length; it is not normalized here.
func MakeRotation(axis Vector3, angle float64) Matrix4 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	x, y, z := axis[0], axis[1], axis[2]
	tx, ty := t*x, t*y

	var ret Matrix4
	ret.Set(
		tx*x+c, tx*y-s*z, tx*z+s*y, 0,
		tx*y+s*z, ty*y+c, ty*z-s*x, 0,
		tx*z-s*y, ty*z+s*x, t*z*z+c, 0,
		0, 0, 0, 1,
	)
	return ret
}

// Multiply returns a * b. Neither argument is modified.
func Multiply(a, b Matrix4) Matrix4 {
	a11, a12, a13, a14 := a[0], a[4], a[8], a[12]
	a21, a22, a23, a24 := a[1], a[5], a[9], a[13]
	a31, a32, a33, a34 := a[2], a[6], a[10], a[14]
	a41, a42, a43, a44 := a[3], a[7], a[11], a[15]

	b11, b12, b13, b14 := b[0], b[4], b[8], b[12]
	b21, b22, b23, b24 := b[1], b[5], b[9], b[13]
	b31, b32, b33, b34 := b[2], b[6], b[10], b[14]
	b41, b42, b43, b44 := b[3], b[7], b[11], b[15]

	var te Matrix4

	te[0] = a11*b11 + a12*b21 + a13*b31 + a14*b41
	te[4] = a11*b12 + a12*b22 + a13*b32 + a14*b42
	te[8] = a11*b13 + a12*b23 + a13*b33 + a14*b43
	te[12] = a11*b14 + a12*b24 + a13*b34 + a14*b44

	te[1] = a21*b11 + a22*b21 + a23*b31 + a24*b41
	te[5] = a21*b12 + a22*b22 + a23*b32 + a24*b42
	te[9] = a21*b13 + a22*b23 + a23*b33 + a24*b43
	te[13] = a21*b14 + a22*b24 + a23*b34 + a24*b44

	te[2] = a31*b11 + a32*b21 + a33*b31 + a34*b41
	te[6] = a31*b12 + a32*b22 + a33*b32 + a34*b42
	te[10] = a31*b13 + a32*b23 + a33*b33 + a34*b43
	te[14] = a31*b14 + a32*b24 + a33*b34 + a34*b44

	te[3] = a41*b11 + a42*b21 + a43*b31 + a44*b41
	te[7] = a41*b12 + a42*b22 + a43*b32 + a44*b42
	te[11] = a41*b13 + a42*b23 + a43*b33 + a44*b43
	te[15] = a41*b14 + a42*b24 + a43*b34 + a44*b44

	return te
}

// MultiplyInto stores a * b in dst. dst may be the same matrix as a or b:
// the full product is computed before dst is written.
func MultiplyInto(dst, a, b *Matrix4) {
	*dst = Multiply(*a, *b)
}

// Premultiply replaces m with a * m and returns m.
func (m *Matrix4) Premultiply(a Matrix4) *Matrix4 {
	MultiplyInto(m, &a, m)
	return m
}

// Determinant of the full 4x4 matrix.
func (m *Matrix4) Determinant() float64 {
	n11, n21, n31, n41 := m[0], m[1], m[2], m[3]
	n12, n22, n32, n42 := m[4], m[5], m[6], m[7]
	n13, n23, n33, n43 := m[8], m[9], m[10], m[11]
	n14, n24, n34, n44 := m[12], m[13], m[14], m[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	return n11*t11 + n21*t12 + n31*t13 + n41*t14
}

// Invert replaces m with its inverse using the adjugate. A matrix with a
// determinant of exactly zero becomes the zero matrix; this is not an error.
func (m *Matrix4) Invert() *Matrix4 {
	n11, n21, n31, n41 := m[0], m[1], m[2], m[3]
	n12, n22, n32, n42 := m[4], m[5], m[6], m[7]
	n13, n23, n33, n43 := m[8], m[9], m[10], m[11]
	n14, n24, n34, n44 := m[12], m[13], m[14], m[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14

	if det == 0 {
		*m = Zero()
		return m
	}

	detInv := 1 / det

	m[0] = t11 * detInv
	m[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * detInv
	m[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * detInv
	m[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * detInv

	m[4] = t12 * detInv
	m[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * detInv
	m[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * detInv
	m[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * detInv

	m[8] = t13 * detInv
	m[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * detInv
	m[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * detInv
	m[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * detInv

	m[12] = t14 * detInv
	m[13] = (n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * detInv
	m[14] = (n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * detInv
	m[15] = (n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * detInv

	return m
}

// Inverse returns the inverse of m, leaving m alone.
func Inverse(m Matrix4) Matrix4 {
	m.Invert()
	return m
}

func (m *Matrix4) Transpose() *Matrix4 {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[3], m[12] = m[12], m[3]
	m[6], m[9] = m[9], m[6]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
	return m
}

// MakePerspective builds an OpenGL style projection for the frustum bounded
// by left/right on x and top/bottom on y at the near plane. Depth maps to
// [-1, 1] and w = -z. Equal bounds divide by zero and give Inf/NaN entries.
func MakePerspective(left, right, top, bottom, near, far float64) Matrix4 {
	ret := MakeIdentity()

	x := 2 * near / (right - left)
	y := 2 * near / (top - bottom)

	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(far + near) / (far - near)
	d := (-2 * far * near) / (far - near)

	ret[0], ret[4], ret[8], ret[12] = x, 0, a, 0
	ret[1], ret[5], ret[9], ret[13] = 0, y, b, 0
	ret[2], ret[6], ret[10], ret[14] = 0, 0, c, d
	ret[3], ret[7], ret[11], ret[15] = 0, 0, -1, 0

	return ret
}

// MakePerspectiveByFov builds a symmetric frustum from a vertical field of
// view in degrees and a width/height aspect ratio.
func MakePerspectiveByFov(near, far, fov, aspect float64) Matrix4 {
	top := near * math.Tan(DEG2RAD*0.5*fov)
	height := 2 * top
	width := aspect * height
	left := -0.5 * width
	return MakePerspective(left, left+width, top, top-height, near, far)
}

// Translate moves m by t in its output space, m = T(t) * m.
func (m *Matrix4) Translate(t Vector3) *Matrix4 {
	return m.Premultiply(MakeTranslation(t))
}

// Scale scales the basis columns of m, m = m * S(s).
func (m *Matrix4) Scale(s Vector3) *Matrix4 {
	for i := 0; i < 4; i++ {
		m[i] *= s[0]
		m[4+i] *= s[1]
		m[8+i] *= s[2]
	}
	return m
}

// Position is the translation column.
func (m *Matrix4) Position() Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

// Equal reports whether every entry of m and o differs by at most tolerance.
func (m *Matrix4) Equal(o Matrix4, tolerance float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > tolerance {
			return false
		}
	}
	return true
}

// String prints the matrix row by row.
func (m *Matrix4) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}
		for col := 0; col < 4; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", m.At(row, col)))
		}
	}
	return sb.String()
}
