package light

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WedgeLight is a spot light stretched along a line segment. Its direction is
// kept perpendicular to its axis, and it never casts shadows or projects a
// modulation map. The view, projection and shadow matrices promoted from
// SpotLight ignore the axis constraint: when pointing, they look at the raw target.
type WedgeLight struct {
	SpotLight
	length float32
	axis   mgl32.Vec3
}

func NewWedge() *WedgeLight {
	return &WedgeLight{
		SpotLight: newSpot(TypeWedge),
		axis:      mgl32.Vec3{1, 0, 0},
	}
}

func (l *WedgeLight) Data(time float64, transform mgl32.Mat4) Data {
	d := l.Base.Data(time, transform)
	d.Position = transformPoint(transform, l.position.Sub(l.axis.Mul(0.5*l.length)))
	d.Direction = rotateNormalized(transform, l.direction)
	d.Length = rotateNormalized(transform, l.axis).Vec4(l.length)
	d.Range = l.rng
	d.Attenuation = l.attenuation
	d.Angle = l.ConeParams()

	d.Flags &^= FlagShadowEnabled | FlagModulationEnabled
	return d
}

func (l *WedgeLight) SetPosition(position mgl32.Vec3) {
	l.dirty = true
	l.position = position
	if l.pointing {
		l.PointAt(l.target)
	}
}

// SetDirection aims the light along the part of direction perpendicular to the
// axis. A direction parallel to the axis leaves it unchanged.
func (l *WedgeLight) SetDirection(direction mgl32.Vec3) {
	l.dirty = true
	l.pointing = false
	l.direction = normalizeOr(perpendicularTo(direction, l.axis), l.direction)
}

func (l *WedgeLight) PointAt(point mgl32.Vec3) {
	l.dirty = true
	l.pointing = true
	l.target = point
	l.direction = normalizeOr(perpendicularTo(point.Sub(l.position), l.axis), l.direction)
}

func (l *WedgeLight) Length() float32 { return l.length }

func (l *WedgeLight) SetLength(length float32) { l.length = math32.Max(0, length) }

func (l *WedgeLight) Axis() mgl32.Vec3 { return l.axis }

// SetAxis stretches the light along axis and re-aims it to stay perpendicular.
func (l *WedgeLight) SetAxis(axis mgl32.Vec3) {
	l.axis = normalizeOr(axis, l.axis)
	if l.pointing {
		l.PointAt(l.target)
		return
	}
	l.dirty = true
	l.direction = normalizeOr(perpendicularTo(l.direction, l.axis), l.direction)
}

// SetLengthAndAxis spans the light from a to b.
func (l *WedgeLight) SetLengthAndAxis(a, b mgl32.Vec3) {
	line := b.Sub(a)
	l.length = line.Len()
	l.SetPosition(a.Add(b).Mul(0.5))
	l.SetAxis(line)
}
