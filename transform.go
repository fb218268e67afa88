package gosiegl

import "fmt"

// Transform describes where an entity sits in the world. Rotation is an
// axis and an angle in radians.
type Transform struct {
	Translation   Vector3
	Scale         Vector3
	RotationAxis  Vector3
	RotationAngle float64
}

func NewTransform() Transform {
	return Transform{
		Scale:        NewVector3(1, 1, 1),
		RotationAxis: NewVector3(0, 1, 0),
	}
}

// ModelMatrix is translation * rotation * scale. The axis is normalized
// here, so any non-zero axis is accepted; a zero axis with an angle gives
// NaN, use Validate to catch it first.
func (t Transform) ModelMatrix() Matrix4 {
	m := MakeTranslation(t.Translation)
	if t.RotationAngle != 0 {
		m = Multiply(m, MakeRotation(Normalize(t.RotationAxis), t.RotationAngle))
	}
	return Multiply(m, MakeScale(t.Scale))
}

func (t Transform) Validate() error {
	if t.RotationAngle != 0 && Length(t.RotationAxis) == 0 {
		return fmt.Errorf("transform rotating %f rad: %w", t.RotationAngle, ErrZeroAxis)
	}
	return nil
}

// Rotate adds angle to the rotation around the current axis.
func (t *Transform) Rotate(angle float64) {
	t.RotationAngle += angle
}
