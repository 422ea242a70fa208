package light

import "github.com/go-gl/mathgl/mgl32"

// DirectionalLight lights the whole scene from a single direction.
type DirectionalLight struct {
	Base
	direction mgl32.Vec3
}

func NewDirectional() *DirectionalLight {
	return &DirectionalLight{
		Base:      newBase(TypeDirectional),
		direction: mgl32.Vec3{0, -1, 0},
	}
}

func (l *DirectionalLight) Data(time float64, transform mgl32.Mat4) Data {
	d := l.Base.Data(time, transform)
	d.Direction = rotateNormalized(transform, l.direction)
	return d
}

func (l *DirectionalLight) Direction() mgl32.Vec3 { return l.direction }

func (l *DirectionalLight) DirectionIn(transform mgl32.Mat4) mgl32.Vec3 {
	return transformVector(transform, l.direction)
}

// SetDirection normalizes direction. A zero vector is ignored.
func (l *DirectionalLight) SetDirection(direction mgl32.Vec3) {
	l.direction = normalizeOr(direction, l.direction)
}
