package gosiegl

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomUnitQuaternion(r *rand.Rand) Quaternion {
	return NormalizeQuaternion(Quaternion{r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), r.NormFloat64()})
}

// sameRotation reports whether p and q are equal up to sign.
func sameRotation(p, q Quaternion) bool {
	plus, minus := true, true
	for i := range p {
		plus = plus && almostEqual(p[i], q[i])
		minus = minus && almostEqual(p[i], -q[i])
	}
	return plus || minus
}

func TestNewQuaternion(t *testing.T) {
	q, err := NewQuaternion(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Quaternion{1, 2, 3, 1}, q)

	q, err = NewQuaternion(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, Quaternion{1, 2, 3, 4}, q)

	for _, n := range []int{0, 2, 5} {
		_, err = NewQuaternion(make([]float64, n)...)
		assert.ErrorIs(t, err, ErrDimension, "%d elements", n)
	}
}

func TestConjugateNegatesEverything(t *testing.T) {
	q := Quaternion{1, -2, 3, 4}
	assert.Equal(t, Quaternion{-1, 2, -3, -4}, Conjugate(q))
	assert.Equal(t, Conjugate(q), Invert(q))
	assert.Equal(t, Quaternion{1, -2, 3, 4}, q)
}

func TestNormalizeQuaternion(t *testing.T) {
	q := NormalizeQuaternion(Quaternion{0, 3, 0, 4})
	assert.InDeltaSlice(t, []float64{0, 0.6, 0, 0.8}, q[:], float64EqualityThreshold)
	assert.True(t, almostEqual(1, QuaternionLength(q)))
}

func TestMul(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		a, b := randomUnitQuaternion(r), randomUnitQuaternion(r)
		got := Mul(a, b)
		want := QuaternionFromMgl(a.ToMgl().Mul(b.ToMgl()))
		assert.InDeltaSlice(t, want[:], got[:], float64EqualityThreshold)

		assert.Equal(t, a, Mul(a, IdentityQuaternion()))
		assert.Equal(t, a, Mul(IdentityQuaternion(), a))
	}

	// rotations about one axis add up
	z := NewVector3(0, 0, 1)
	got := Mul(AxisAngleToQuaternion(z, 0.3), AxisAngleToQuaternion(z, 0.5))
	want := AxisAngleToQuaternion(z, 0.8)
	assert.InDeltaSlice(t, want[:], got[:], float64EqualityThreshold)
}

func TestAxisAngleToQuaternion(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 20; i++ {
		axis := Normalize(NewVector3(r.NormFloat64(), r.NormFloat64(), r.NormFloat64()))
		angle := r.Float64() * 2 * math.Pi
		got := AxisAngleToQuaternion(axis, angle)
		want := QuaternionFromMgl(mgl64.QuatRotate(angle, axis.ToMgl()))
		assert.InDeltaSlice(t, want[:], got[:], float64EqualityThreshold)
	}
}

func TestMakeRotationFromQuaternion(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 20; i++ {
		q := randomUnitQuaternion(r)
		want := Matrix4FromMgl(q.ToMgl().Mat4())
		assertMatrixNear(t, want, MakeRotationFromQuaternion(q))
	}

	axis := NewVector3(0, 1, 0)
	got := MakeRotationFromQuaternion(AxisAngleToQuaternion(axis, 1.1))
	assertMatrixNear(t, MakeRotation(axis, 1.1), got)
}

func TestRotationMatrixToQuaternionRoundTrip(t *testing.T) {
	fixed := []Quaternion{
		IdentityQuaternion(),
		// w small: each of the diagonal branches
		NormalizeQuaternion(Quaternion{0.9, 0.1, 0.2, 0.1}),
		NormalizeQuaternion(Quaternion{0.1, 0.9, 0.2, 0.1}),
		NormalizeQuaternion(Quaternion{0.1, 0.2, 0.9, 0.1}),
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
	r := rand.New(rand.NewSource(17))
	for i := 0; i < 50; i++ {
		fixed = append(fixed, randomUnitQuaternion(r))
	}

	for _, q := range fixed {
		m := MakeRotationFromQuaternion(q)
		got := RotationMatrixToQuaternion(m)
		assert.True(t, sameRotation(q, got), "want %v got %v", q, got)
		assert.True(t, sameRotation(QuaternionFromMgl(mgl64.Mat4ToQuat(m.ToMgl())), got))
	}
}

func TestUnitVectorsToQuaternion(t *testing.T) {
	testCases := []struct {
		name     string
		from, to Vector3
	}{
		{"x to y", NewVector3(1, 0, 0), NewVector3(0, 1, 0)},
		{"same", NewVector3(0, 0, 1), NewVector3(0, 0, 1)},
		{"diagonal", Normalize(NewVector3(1, 1, 0)), Normalize(NewVector3(0, -1, 1))},
		{"opposite x", NewVector3(1, 0, 0), NewVector3(-1, 0, 0)},
		{"opposite z", NewVector3(0, 0, 1), NewVector3(0, 0, -1)},
		{"opposite y", NewVector3(0, 1, 0), NewVector3(0, -1, 0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := UnitVectorsToQuaternion(tc.from, tc.to)
			assert.True(t, almostEqual(1, QuaternionLength(q)))

			v := tc.from
			v.ApplyMatrix(MakeRotationFromQuaternion(q))
			assertVectorNear(t, tc.to, v)
		})
	}
}

func TestEulerToQuaternion(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for i := 0; i < 20; i++ {
		e := NewEuler(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1)
		q, err := EulerToQuaternion(e)
		require.NoError(t, err)

		m, err := MakeRotationFromEuler(e)
		require.NoError(t, err)
		assertMatrixNear(t, m, MakeRotationFromQuaternion(q))
	}

	_, err := EulerToQuaternion(Euler{X: 1, Order: "ZYX"})
	assert.ErrorIs(t, err, ErrUnsupportedOrder)
}
