package light

import "github.com/go-gl/mathgl/mgl32"

// CubeFace indexes the six views of an omnidirectional shadow map.
type CubeFace int

const (
	PositiveX CubeFace = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

// cubeFaces holds the look direction and up vector of every face.
var cubeFaces = [6]struct{ forward, up mgl32.Vec3 }{
	PositiveX: {mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, -1, 0}},
	NegativeX: {mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, -1, 0}},
	PositiveY: {mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, -1}},
	NegativeY: {mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 0, 1}},
	PositiveZ: {mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, -1, 0}},
	NegativeZ: {mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, -1, 0}},
}

// PointLight radiates in all directions from a position, out to its range.
type PointLight struct {
	Base
	position    mgl32.Vec3
	rng         float32
	attenuation mgl32.Vec2
	shadowIndex int32

	dirty      bool
	views      [6]mgl32.Mat4
	projection mgl32.Mat4
}

func NewPoint() *PointLight {
	l := newPoint(TypePoint)
	return &l
}

func newPoint(t Type) PointLight {
	return PointLight{
		Base:  newBase(t),
		rng:   100,
		dirty: true,
	}
}

func (l *PointLight) Data(time float64, transform mgl32.Mat4) Data {
	d := l.Base.Data(time, transform)
	d.Position = transformPoint(transform, l.position)
	d.Range = l.rng
	d.Attenuation = l.attenuation
	d.ShadowIndex = l.shadowIndex
	return d
}

func (l *PointLight) Position() mgl32.Vec3 { return l.position }

func (l *PointLight) PositionIn(transform mgl32.Mat4) mgl32.Vec3 {
	return transformPoint(transform, l.position)
}

func (l *PointLight) SetPosition(position mgl32.Vec3) {
	l.position = position
	l.dirty = true
}

// Range is the distance beyond which surfaces receive no light.
func (l *PointLight) Range() float32 { return l.rng }

func (l *PointLight) SetRange(r float32) {
	l.rng = r
	l.dirty = true
}

// CalcRange derives the range from intensity and attenuation. The range is left
// untouched when attenuation is zero.
func (l *PointLight) CalcRange(threshold float32) bool {
	r, ok := CalcRange(l.intensity, l.attenuation, threshold)
	if ok {
		l.SetRange(r)
	}
	return ok
}

// CalcIntensity derives the intensity from range and attenuation. The intensity
// is left untouched when attenuation is zero.
func (l *PointLight) CalcIntensity(threshold float32) bool {
	i, ok := CalcIntensity(l.rng, l.attenuation, threshold)
	if ok {
		l.intensity = i
	}
	return ok
}

func (l *PointLight) Attenuation() mgl32.Vec2 { return l.attenuation }

func (l *PointLight) SetAttenuation(linear, quadratic float32) {
	l.attenuation = mgl32.Vec2{linear, quadratic}
}

func (l *PointLight) EnableShadows(enabled bool) { l.setFlag(FlagShadowEnabled, enabled) }

func (l *PointLight) ShadowIndex() int32 { return l.shadowIndex }

func (l *PointLight) SetShadowIndex(index int32) { l.shadowIndex = index }

// ViewMatrix returns the view of one cube map face as seen from the light.
func (l *PointLight) ViewMatrix(face CubeFace) mgl32.Mat4 {
	l.updateMatrices()
	return l.views[face]
}

func (l *PointLight) ViewMatrices() [6]mgl32.Mat4 {
	l.updateMatrices()
	return l.views
}

// ProjectionMatrix is the 90 degree projection shared by all faces.
func (l *PointLight) ProjectionMatrix() mgl32.Mat4 {
	l.updateMatrices()
	return l.projection
}

func (l *PointLight) updateMatrices() {
	if !l.dirty {
		return
	}
	for i, f := range cubeFaces {
		l.views[i] = mgl32.LookAtV(l.position, l.position.Add(f.forward), f.up)
	}
	l.projection = mgl32.Perspective(mgl32.DegToRad(90), 1, 0.1, l.rng)
	l.dirty = false
}
