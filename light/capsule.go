package light

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CapsuleLight is a point light stretched along a line segment.
type CapsuleLight struct {
	PointLight
	length float32
	axis   mgl32.Vec3
}

func NewCapsule() *CapsuleLight {
	return &CapsuleLight{
		PointLight: newPoint(TypeCapsule),
		axis:       mgl32.Vec3{1, 0, 0},
	}
}

// Data anchors the position at the start of the segment; the shader rebuilds the
// segment from the axis and length. Capsules have no shadow map, so the shadow
// index stays zero.
func (l *CapsuleLight) Data(time float64, transform mgl32.Mat4) Data {
	d := l.PointLight.Data(time, transform)
	d.Position = transformPoint(transform, l.start())
	d.Length = rotateNormalized(transform, l.axis).Vec4(l.length)
	d.ShadowIndex = 0
	return d
}

func (l *CapsuleLight) start() mgl32.Vec3 {
	return l.position.Sub(l.axis.Mul(0.5 * l.length))
}

func (l *CapsuleLight) Length() float32 { return l.length }

func (l *CapsuleLight) SetLength(length float32) { l.length = math32.Max(0, length) }

func (l *CapsuleLight) Axis() mgl32.Vec3 { return l.axis }

// SetAxis normalizes axis. A zero vector is ignored.
func (l *CapsuleLight) SetAxis(axis mgl32.Vec3) {
	l.axis = normalizeOr(axis, l.axis)
}

// SetLengthAndAxis spans the light from a to b.
func (l *CapsuleLight) SetLengthAndAxis(a, b mgl32.Vec3) {
	line := b.Sub(a)
	l.SetAxis(line)
	l.length = line.Len()
	l.SetPosition(a.Add(b).Mul(0.5))
}
