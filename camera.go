package gosiegl

import (
	"math"
)

// LookAt builds the rotation that turns the camera at eye towards target:
// the columns are the camera's x, y and z axes in world space, with z
// pointing from target back to eye. There is no translation part.
//
// up must not be parallel to eye - target, the cross product is then zero
// and the result is NaN.
func LookAt(eye, target, up Vector3) Matrix4 {
	z := Sub(eye, target)
	z.Normalize()
	x := Cross(up, z)
	x.Normalize()
	y := Cross(z, x)

	return Matrix4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	}
}

func MakeTranslation(t Vector3) Matrix4 {
	return Matrix4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, t[0], t[1], t[2], 1}
}

func MakeScale(s Vector3) Matrix4 {
	return Matrix4{s[0], 0, 0, 0, 0, s[1], 0, 0, 0, 0, s[2], 0, 0, 0, 0, 1}
}

const (
	defaultFov    = 75
	defaultAspect = 16.0 / 9.0
	defaultNear   = 0.01
	defaultFar    = 1000

	// keeps Orbit off the poles where up and the view direction line up
	minPolar  = 0.01
	minRadius = 1e-3
)

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position Vector3
	Target   Vector3
	Up       Vector3

	// Fov is the vertical field of view in degrees.
	Fov    float64
	Aspect float64
	Near   float64
	Far    float64
}

func NewCamera(position, target Vector3) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       NewVector3(0, 1, 0),
		Fov:      defaultFov,
		Aspect:   defaultAspect,
		Near:     defaultNear,
		Far:      defaultFar,
	}
}

// WorldMatrix places the camera in the world: translation to Position times
// the look-at rotation.
func (c *Camera) WorldMatrix() Matrix4 {
	return Multiply(MakeTranslation(c.Position), LookAt(c.Position, c.Target, c.Up))
}

// ViewMatrix takes world coordinates into camera space.
func (c *Camera) ViewMatrix() Matrix4 {
	return Inverse(c.WorldMatrix())
}

func (c *Camera) ProjectionMatrix() Matrix4 {
	return MakePerspectiveByFov(c.Near, c.Far, c.Fov, c.Aspect)
}

func (c *Camera) ViewProjection() Matrix4 {
	return Multiply(c.ProjectionMatrix(), c.ViewMatrix())
}

func (c *Camera) SetAspect(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// Orbit rotates the camera around Target, dTheta around the world y axis and
// dPhi towards or away from the pole. The distance to Target is kept.
func (c *Camera) Orbit(dTheta, dPhi float64) {
	offset := Sub(c.Position, c.Target)
	radius := Length(offset)
	if radius == 0 {
		return
	}

	theta := math.Atan2(offset[0], offset[2]) + dTheta
	phi := math.Acos(math.Max(-1, math.Min(1, offset[1]/radius))) + dPhi
	phi = math.Max(minPolar, math.Min(math.Pi-minPolar, phi))

	c.Position = Add(c.Target, NewVector3(
		radius*math.Sin(phi)*math.Sin(theta),
		radius*math.Cos(phi),
		radius*math.Sin(phi)*math.Cos(theta),
	))
}

// Zoom scales the distance to Target by factor.
func (c *Camera) Zoom(factor float64) {
	offset := Sub(c.Position, c.Target)
	radius := Length(offset)
	if radius == 0 || factor <= 0 {
		return
	}
	if radius*factor < minRadius {
		factor = minRadius / radius
	}
	c.Position = Add(c.Target, ScalarProduct(factor, offset))
}

// Distance from the camera to its target.
func (c *Camera) Distance() float64 {
	return c.Position.DistanceTo(c.Target)
}
