package gosiegl

import "github.com/go-gl/mathgl/mgl64"

// Conversions to and from mathgl. Both libraries store matrices as column
// major [16]float64, so no element moves.

func (v Vector3) ToMgl() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

func Vector3FromMgl(v mgl64.Vec3) Vector3 {
	return Vector3(v)
}

func (m Matrix4) ToMgl() mgl64.Mat4 {
	return mgl64.Mat4(m)
}

func Matrix4FromMgl(m mgl64.Mat4) Matrix4 {
	return Matrix4(m)
}

// ToMgl reorders (x, y, z, w) into mathgl's W + V layout.
func (q Quaternion) ToMgl() mgl64.Quat {
	return mgl64.Quat{W: q[3], V: mgl64.Vec3{q[0], q[1], q[2]}}
}

func QuaternionFromMgl(q mgl64.Quat) Quaternion {
	return Quaternion{q.V[0], q.V[1], q.V[2], q.W}
}
