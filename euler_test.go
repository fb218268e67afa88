package gosiegl

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRotationFromEulerSingleAxis(t *testing.T) {
	testCases := []struct {
		name  string
		euler Euler
		axis  Vector3
		angle float64
	}{
		{"x", NewEuler(0.4, 0, 0), NewVector3(1, 0, 0), 0.4},
		{"y", NewEuler(0, -1.2, 0), NewVector3(0, 1, 0), -1.2},
		{"z", NewEuler(0, 0, 2.5), NewVector3(0, 0, 1), 2.5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := MakeRotationFromEuler(tc.euler)
			require.NoError(t, err)
			assertMatrixNear(t, MakeRotation(tc.axis, tc.angle), m)
		})
	}
}

func TestMakeRotationFromEulerOrder(t *testing.T) {
	e := NewEuler(0.3, -0.7, 1.1)
	m, err := MakeRotationFromEuler(e)
	require.NoError(t, err)

	// XYZ: x is applied last to the point
	want := Multiply(Multiply(
		MakeRotation(NewVector3(1, 0, 0), e.X),
		MakeRotation(NewVector3(0, 1, 0), e.Y)),
		MakeRotation(NewVector3(0, 0, 1), e.Z))
	assertMatrixNear(t, want, m)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, [4]float64{m[12], m[13], m[14], m[15]})
}

func TestSetFromRotationMatrixRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for i := 0; i < 50; i++ {
		e := NewEuler(
			r.Float64()*2*math.Pi-math.Pi,
			r.Float64()*3-1.5,
			r.Float64()*2*math.Pi-math.Pi,
		)
		m, err := MakeRotationFromEuler(e)
		require.NoError(t, err)

		got := NewEuler(0, 0, 0)
		require.NoError(t, got.SetFromRotationMatrix(m))
		assert.InDelta(t, e.X, got.X, float64EqualityThreshold)
		assert.InDelta(t, e.Y, got.Y, float64EqualityThreshold)
		assert.InDelta(t, e.Z, got.Z, float64EqualityThreshold)
	}
}

func TestSetFromRotationMatrixGimbalLock(t *testing.T) {
	m, err := MakeRotationFromEuler(NewEuler(0.2, math.Pi/2, 0.5))
	require.NoError(t, err)

	var got Euler
	got.Order = OrderXYZ
	require.NoError(t, got.SetFromRotationMatrix(m))
	assert.InDelta(t, math.Pi/2, got.Y, float64EqualityThreshold)
	assert.Equal(t, 0.0, got.Z)

	// the angles found describe the same rotation
	again, err := MakeRotationFromEuler(got)
	require.NoError(t, err)
	assertMatrixNear(t, m, again)
}

func TestEulerUnsupportedOrder(t *testing.T) {
	e := Euler{X: 1, Y: 2, Z: 3, Order: "YXZ"}

	_, err := MakeRotationFromEuler(e)
	assert.ErrorIs(t, err, ErrUnsupportedOrder)

	err = e.SetFromRotationMatrix(MakeIdentity())
	assert.ErrorIs(t, err, ErrUnsupportedOrder)
	assert.Equal(t, Euler{X: 1, Y: 2, Z: 3, Order: "YXZ"}, e)
}
