package light

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	spotUp         = mgl32.Vec3{0, 0, 1}
	spotFallbackUp = mgl32.Vec3{0, 1, 0}
)

// SpotLight emits a cone of light from a position along a direction. Its view,
// projection and shadow matrices are rebuilt lazily after spatial changes.
type SpotLight struct {
	Base
	position     mgl32.Vec3
	direction    mgl32.Vec3
	rng          float32
	spotRatio    float32
	hotspotRatio float32
	attenuation  mgl32.Vec2

	target   mgl32.Vec3
	pointing bool

	shadowIndex     int32
	modulationIndex int32
	modulation      ModulationParams

	dirty      bool
	view       mgl32.Mat4
	projection mgl32.Mat4
	shadow     mgl32.Mat4
}

func NewSpot() *SpotLight {
	l := newSpot(TypeSpot)
	return &l
}

func newSpot(t Type) SpotLight {
	return SpotLight{
		Base:         newBase(t),
		direction:    mgl32.Vec3{0, -1, 0},
		rng:          100,
		spotRatio:    1,
		hotspotRatio: 1,
		modulation:   NewModulationParams(),
		dirty:        true,
	}
}

func (l *SpotLight) Data(time float64, transform mgl32.Mat4) Data {
	d := l.Base.Data(time, transform)
	d.Position = transformPoint(transform, l.position)
	d.Direction = rotateNormalized(transform, l.direction)
	d.Range = l.rng
	d.Attenuation = l.attenuation
	d.Angle = l.ConeParams()

	if l.flags&(FlagShadowEnabled|FlagModulationEnabled) == 0 {
		return d
	}

	inv := transform.Inv()
	if l.flags&FlagShadowEnabled != 0 {
		d.ShadowMatrix = l.ShadowMatrix().Mul4(inv)
		d.ShadowIndex = l.shadowIndex
	}
	if l.flags&FlagModulationEnabled != 0 {
		d.ModulationMatrix = l.ModulationMatrix(time).Mul4(inv)
		d.ModulationIndex = l.modulationIndex
	}
	return d
}

func (l *SpotLight) Position() mgl32.Vec3 { return l.position }

func (l *SpotLight) PositionIn(transform mgl32.Mat4) mgl32.Vec3 {
	return transformPoint(transform, l.position)
}

// SetPosition moves the light. A light that is pointing at a target keeps
// pointing at it.
func (l *SpotLight) SetPosition(position mgl32.Vec3) {
	l.dirty = true
	l.position = position
	if l.pointing {
		l.PointAt(l.target)
	}
}

func (l *SpotLight) Direction() mgl32.Vec3 { return l.direction }

func (l *SpotLight) DirectionIn(transform mgl32.Mat4) mgl32.Vec3 {
	return transformVector(transform, l.direction)
}

// SetDirection aims the light and stops it pointing at a target. A zero vector
// leaves the direction unchanged.
func (l *SpotLight) SetDirection(direction mgl32.Vec3) {
	l.dirty = true
	l.pointing = false
	l.direction = normalizeOr(direction, l.direction)
}

// PointAt aims the light at point and keeps it aimed there when it moves.
func (l *SpotLight) PointAt(point mgl32.Vec3) {
	l.dirty = true
	l.pointing = true
	l.target = point
	l.direction = normalizeOr(point.Sub(l.position), l.direction)
}

func (l *SpotLight) IsPointingAt() bool { return l.pointing }

// Target returns the last point passed to PointAt.
func (l *SpotLight) Target() mgl32.Vec3 { return l.target }

func (l *SpotLight) Range() float32 { return l.rng }

func (l *SpotLight) SetRange(r float32) {
	l.rng = r
	l.dirty = true
}

func (l *SpotLight) CalcRange(threshold float32) bool {
	r, ok := CalcRange(l.intensity, l.attenuation, threshold)
	if ok {
		l.SetRange(r)
	}
	return ok
}

func (l *SpotLight) CalcIntensity(threshold float32) bool {
	i, ok := CalcIntensity(l.rng, l.attenuation, threshold)
	if ok {
		l.intensity = i
	}
	return ok
}

func (l *SpotLight) Attenuation() mgl32.Vec2 { return l.attenuation }

func (l *SpotLight) SetAttenuation(linear, quadratic float32) {
	l.attenuation = mgl32.Vec2{linear, quadratic}
}

// SpotRatio is the tangent of the outer cone half angle. A ratio of 1 is 45 degrees.
func (l *SpotLight) SpotRatio() float32 { return l.spotRatio }

func (l *SpotLight) SetSpotRatio(ratio float32) {
	l.spotRatio = math32.Max(0, ratio)
	l.dirty = true
}

// SpotAngle returns the outer cone half angle in radians.
func (l *SpotLight) SpotAngle() float32 { return math32.Atan(l.spotRatio) }

func (l *SpotLight) SetSpotAngle(radians float32) { l.SetSpotRatio(math32.Tan(radians)) }

// HotspotRatio is the tangent of the inner cone half angle. It never exceeds the
// spot ratio, whatever was set.
func (l *SpotLight) HotspotRatio() float32 { return math32.Min(l.hotspotRatio, l.spotRatio) }

func (l *SpotLight) SetHotspotRatio(ratio float32) { l.hotspotRatio = math32.Max(0, ratio) }

func (l *SpotLight) HotspotAngle() float32 { return math32.Atan(l.HotspotRatio()) }

func (l *SpotLight) SetHotspotAngle(radians float32) { l.SetHotspotRatio(math32.Tan(radians)) }

// ConeParams returns the cosines of the outer and inner cone half angles.
func (l *SpotLight) ConeParams() mgl32.Vec2 {
	return mgl32.Vec2{
		math32.Cos(math32.Atan(l.spotRatio)),
		math32.Cos(math32.Atan(l.HotspotRatio())),
	}
}

func (l *SpotLight) EnableShadows(enabled bool) { l.setFlag(FlagShadowEnabled, enabled) }

func (l *SpotLight) EnableModulation(enabled bool) { l.setFlag(FlagModulationEnabled, enabled) }

func (l *SpotLight) ShadowIndex() int32 { return l.shadowIndex }

func (l *SpotLight) SetShadowIndex(index int32) { l.shadowIndex = index }

func (l *SpotLight) ModulationIndex() int32 { return l.modulationIndex }

func (l *SpotLight) SetModulationIndex(index int32) { l.modulationIndex = index }

func (l *SpotLight) ModulationParams() ModulationParams { return l.modulation }

func (l *SpotLight) SetModulationParams(params ModulationParams) { l.modulation = params }

func (l *SpotLight) ViewMatrix() mgl32.Mat4 {
	l.updateMatrices()
	return l.view
}

func (l *SpotLight) ProjectionMatrix() mgl32.Mat4 {
	l.updateMatrices()
	return l.projection
}

// ShadowMatrix maps world space to shadow map texture space.
func (l *SpotLight) ShadowMatrix() mgl32.Mat4 {
	l.updateMatrices()
	return l.shadow
}

// ModulationMatrix maps world space to modulation map texture space at time.
func (l *SpotLight) ModulationMatrix(time float64) mgl32.Mat4 {
	l.updateMatrices()
	return l.modulation.Mat4(float32(time)).Mul4(l.projection).Mul4(l.view)
}

func (l *SpotLight) updateMatrices() {
	if !l.dirty {
		return
	}

	target := l.position.Add(l.direction)
	if l.pointing && l.target != l.position {
		target = l.target
	}
	up := spotUp
	if math32.Abs(l.direction.Dot(up)) > 0.999 {
		up = spotFallbackUp
	}

	l.view = mgl32.LookAtV(l.position, target, up)
	l.projection = mgl32.Perspective(2*math32.Atan(l.spotRatio), 1, 0.1, l.rng)
	l.shadow = biasMatrix.Mul4(l.projection).Mul4(l.view)
	l.dirty = false
}
