package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

// biasMatrix maps clip space [-1, 1] to texture space [0, 1].
var biasMatrix = mgl32.Mat4{
	0.5, 0, 0, 0,
	0, 0.5, 0, 0,
	0, 0, 0.5, 0,
	0.5, 0.5, 0.5, 1,
}

// normalizeOr returns v scaled to unit length, or fallback when v has no length.
func normalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return fallback
	}
	return v.Mul(1 / l)
}

// perpendicularTo removes the component of v along the unit vector axis.
func perpendicularTo(v, axis mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(axis.Mul(v.Dot(axis)))
}

func transformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func transformVector(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

// rotateNormalized applies the upper 3x3 of m to v and normalizes the result.
func rotateNormalized(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return normalizeOr(m.Mat3().Mul3x1(v), mgl32.Vec3{})
}
