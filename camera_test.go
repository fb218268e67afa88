package gosiegl

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func column(m Matrix4, i int) Vector3 {
	return Vector3{m[i*4], m[i*4+1], m[i*4+2]}
}

func TestLookAtIsOrthonormal(t *testing.T) {
	testCases := []struct {
		eye, target, up Vector3
	}{
		{NewVector3(0, 0, 10), NewVector3(0, 0, 0), NewVector3(0, 1, 0)},
		{NewVector3(-20, 180, 250), NewVector3(0, 1, 0), NewVector3(0, 1, 0)},
		{NewVector3(3, -4, 5), NewVector3(1, 1, 1), NewVector3(0.3, 1, -0.2)},
	}
	for _, tc := range testCases {
		m := LookAt(tc.eye, tc.target, tc.up)
		x, y, z := column(m, 0), column(m, 1), column(m, 2)

		for _, axis := range []Vector3{x, y, z} {
			assert.True(t, almostEqual(1, Length(axis)), "axis %v is not unit length", axis)
		}
		assert.True(t, almostEqual(0, Dot(x, y)))
		assert.True(t, almostEqual(0, Dot(y, z)))
		assert.True(t, almostEqual(0, Dot(z, x)))
		assertVectorNear(t, Normalize(Sub(tc.eye, tc.target)), z)
		assert.Equal(t, [4]float64{0, 0, 0, 1}, [4]float64{m[3], m[7], m[11], m[15]})
		assertVectorNear(t, Vector3{}, m.Position())
	}
}

func TestLookAtKeepsUp(t *testing.T) {
	// up already perpendicular to the view direction comes back as the y axis
	eye := ZeroVector3()
	target := NewVector3(0, 1, -1)
	up := target
	up.ApplyMatrix(MakeRotation(NewVector3(1, 0, 0), math.Pi/2))

	m := LookAt(eye, target, up)
	assertVectorNear(t, Normalize(up), column(m, 1))
	assertVectorNear(t, NewVector3(1, 0, 0), column(m, 0))
}

func TestLookAtParallelUpIsNaN(t *testing.T) {
	m := LookAt(NewVector3(0, 10, 0), ZeroVector3(), NewVector3(0, 1, 0))
	assert.True(t, math.IsNaN(m[0]))
}

func TestCameraViewMatrix(t *testing.T) {
	c := NewCamera(NewVector3(4, 5, 6), NewVector3(-1, 0, 2))

	id := Multiply(c.ViewMatrix(), c.WorldMatrix())
	assert.True(t, id.Equal(MakeIdentity(), float64EqualityThreshold), "view * world = %v", id.String())

	eye := c.Position
	eye.ApplyMatrix(c.ViewMatrix())
	assertVectorNear(t, Vector3{}, eye)

	// the target ends up straight ahead on -z
	target := c.Target
	target.ApplyMatrix(c.ViewMatrix())
	assertVectorNear(t, NewVector3(0, 0, -c.Distance()), target)

	want := mgl64.LookAtV(c.Position.ToMgl(), c.Target.ToMgl(), c.Up.ToMgl())
	assertMatrixNear(t, Matrix4FromMgl(want), c.ViewMatrix())
}

func TestCameraProjection(t *testing.T) {
	c := NewCamera(NewVector3(0, 0, 10), ZeroVector3())
	c.SetAspect(800, 600)
	assert.InDelta(t, 4.0/3.0, c.Aspect, float64EqualityThreshold)

	c.SetAspect(800, 0)
	assert.InDelta(t, 4.0/3.0, c.Aspect, float64EqualityThreshold)

	want := mgl64.Perspective(mgl64.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
	got := c.ProjectionMatrix()
	assert.InDeltaSlice(t, want[:], got[:], 1e-9)

	origin := ZeroVector3()
	origin.ApplyMatrix(c.ViewProjection())
	assert.InDelta(t, 0, origin[0], float64EqualityThreshold)
	assert.InDelta(t, 0, origin[1], float64EqualityThreshold)
}

func TestCameraOrbit(t *testing.T) {
	c := NewCamera(NewVector3(0, 0, 10), ZeroVector3())

	c.Orbit(math.Pi/2, 0)
	assertVectorNear(t, NewVector3(10, 0, 0), c.Position)
	assert.InDelta(t, 10, c.Distance(), float64EqualityThreshold)

	c.Orbit(0, -10)
	assert.InDelta(t, 10, c.Distance(), float64EqualityThreshold)
	assert.InDelta(t, 10*math.Cos(minPolar), c.Position[1], float64EqualityThreshold)

	c.Orbit(0, 20)
	assert.InDelta(t, -10*math.Cos(minPolar), c.Position[1], float64EqualityThreshold)

	// the view stays well defined at the clamp
	view := c.ViewMatrix()
	for _, v := range view {
		assert.False(t, math.IsNaN(v))
	}
}

func TestCameraZoom(t *testing.T) {
	c := NewCamera(NewVector3(0, 0, 10), NewVector3(0, 0, 2))

	c.Zoom(0.5)
	assertVectorNear(t, NewVector3(0, 0, 6), c.Position)

	c.Zoom(0)
	assertVectorNear(t, NewVector3(0, 0, 6), c.Position)

	c.Zoom(1e-9)
	assert.InDelta(t, minRadius, c.Distance(), 1e-12)
}
