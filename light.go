package gosiegl

import "math"

// Shadow pass projection used for every light.
const (
	lightNear   = 0.01
	lightFar    = 1000
	lightFov    = 100
	lightAspect = 2560.0 / 1440.0
)

// PointLight is a light at Position. FocalPoint and Up orient the light's
// view for the shadow pass.
type PointLight struct {
	Position   Vector3
	FocalPoint Vector3
	Up         Vector3
	Color      [3]float64
	Intensity  float64
}

func NewPointLight(position Vector3, intensity float64) *PointLight {
	return &PointLight{
		Position:  position,
		Up:        NewVector3(0, 1, 0),
		Color:     [3]float64{1, 1, 1},
		Intensity: intensity,
	}
}

// ViewMatrix takes world coordinates into the light's space.
func (l *PointLight) ViewMatrix() Matrix4 {
	world := Multiply(MakeTranslation(l.Position), LookAt(l.Position, l.FocalPoint, l.Up))
	return Inverse(world)
}

func (l *PointLight) ProjectionMatrix() Matrix4 {
	return MakePerspectiveByFov(lightNear, lightFar, lightFov, lightAspect)
}

// MVP is projection * view * model, the light space transform of a mesh for
// shadow map rendering.
func (l *PointLight) MVP(model Matrix4) Matrix4 {
	mvp := model
	mvp.Premultiply(l.ViewMatrix())
	mvp.Premultiply(l.ProjectionMatrix())
	return mvp
}

// Irradiance is the Lambert term of the light at point on a surface with
// the unit normal, falling off with the square of the distance.
func (l *PointLight) Irradiance(point, normal Vector3) float64 {
	toLight := Sub(l.Position, point)
	d2 := Dot(toLight, toLight)
	if d2 == 0 {
		return 0
	}
	cos := Dot(normal, toLight) / math.Sqrt(d2)
	if cos <= 0 {
		return 0
	}
	return l.Intensity * cos / d2
}
