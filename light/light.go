// Package light holds the scene light model: a closed set of light variants that
// pack themselves into a fixed GPU layout and derive their shadow and modulation
// matrices on demand.
//
// Lights are not safe for concurrent use. The frame loop that mutates them is
// expected to be the one that packs them.
package light

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Type identifies a light variant. The values are used as a bit mask by the
// shader and must stay sortable.
type Type int32

const (
	TypeDirectional Type = 0x0
	TypePoint       Type = 0x1
	TypeCapsule     Type = 0x2
	TypeSpot        Type = 0x4
	TypeWedge       Type = 0x8
)

const typeMask = 0xF

const (
	FlagModulationEnabled int32 = 0x10
	FlagShadowEnabled     int32 = 0x20
)

func (t Type) String() string {
	switch t {
	case TypeDirectional:
		return "directional"
	case TypePoint:
		return "point"
	case TypeCapsule:
		return "capsule"
	case TypeSpot:
		return "spot"
	case TypeWedge:
		return "wedge"
	}
	return "unknown"
}

// luminance weights used for the alpha channel of the packed color.
var luminance = mgl32.Vec3{0.2125, 0.7154, 0.0721}

// Light is implemented by every light variant.
type Light interface {
	Type() Type

	// Data packs the light for the shader. time is in seconds and drives the
	// modulation animation; transform is applied to positions, directions and
	// matrices, so passing a camera view matrix yields view-space data.
	Data(time float64, transform mgl32.Mat4) Data

	AsLightBase() *Base
}

// Positioned is implemented by lights that have a position.
type Positioned interface {
	Position() mgl32.Vec3
	PositionIn(transform mgl32.Mat4) mgl32.Vec3
	SetPosition(position mgl32.Vec3)
}

// Directed is implemented by lights that have a direction.
type Directed interface {
	Direction() mgl32.Vec3
	DirectionIn(transform mgl32.Mat4) mgl32.Vec3
	SetDirection(direction mgl32.Vec3)
}

// Ranged is implemented by lights with a finite range.
type Ranged interface {
	Range() float32
	SetRange(r float32)
	CalcRange(threshold float32) bool
	CalcIntensity(threshold float32) bool
}

// Segmented is implemented by lights stretched along a line segment.
type Segmented interface {
	Length() float32
	SetLength(length float32)
	Axis() mgl32.Vec3
	SetAxis(axis mgl32.Vec3)
	SetLengthAndAxis(a, b mgl32.Vec3)
}

// Attenuated is implemented by lights with distance attenuation.
type Attenuated interface {
	Attenuation() mgl32.Vec2
	SetAttenuation(linear, quadratic float32)
}

// Base carries the state shared by all variants.
type Base struct {
	lightType Type
	color     mgl32.Vec3
	intensity float32
	flags     int32
	visible   bool
}

func newBase(t Type) Base {
	return Base{
		lightType: t,
		color:     mgl32.Vec3{1, 1, 1},
		intensity: 1,
		flags:     int32(t),
		visible:   true,
	}
}

func (b *Base) AsLightBase() *Base { return b }

func (b *Base) Type() Type { return b.lightType }

// Data returns a zeroed block with only the color, intensity and flags filled in.
// Variants start from it and overwrite their own fields.
func (b *Base) Data(time float64, transform mgl32.Mat4) Data {
	var d Data
	d.Color = b.color.Vec4(b.color.Dot(luminance))
	d.Intensity = b.intensity
	d.Flags = b.flags | (int32(b.lightType) & typeMask)
	return d
}

func (b *Base) Intensity() float32 { return b.intensity }

func (b *Base) SetIntensity(intensity float32) { b.intensity = intensity }

// Color returns the relative intensities of red, green and blue, each in [0, 1].
func (b *Base) Color() mgl32.Vec3 { return b.color }

// SetColor stores the relative weighting of c: negative channels become zero and
// the brightest channel is scaled to exactly 1. Use SetIntensity for brightness.
func (b *Base) SetColor(c mgl32.Vec3) {
	c = mgl32.Vec3{math32.Max(0, c[0]), math32.Max(0, c[1]), math32.Max(0, c[2])}
	m := math32.Max(c[0], math32.Max(c[1], c[2]))
	if m <= 0 {
		b.color = mgl32.Vec3{}
		return
	}
	b.color = mgl32.Vec3{c[0] / m, c[1] / m, c[2] / m}
}

func (b *Base) SetColorRGB(r, g, bl float32) { b.SetColor(mgl32.Vec3{r, g, bl}) }

func (b *Base) Visible() bool { return b.visible }

func (b *Base) SetVisible(visible bool) { b.visible = visible }

func (b *Base) Flags() int32 { return b.flags }

func (b *Base) HasShadows() bool { return b.flags&FlagShadowEnabled != 0 }

func (b *Base) HasModulation() bool { return b.flags&FlagModulationEnabled != 0 }

func (b *Base) setFlag(flag int32, enabled bool) {
	if enabled {
		b.flags |= flag
	} else {
		b.flags &^= flag
	}
}

// Less orders lights by their numeric type.
func Less(a, b Light) bool { return a.Type() < b.Type() }

// SortByType sorts lights by type in place, keeping the relative order of lights
// of the same type.
func SortByType(lights []Light) {
	slices.SortStableFunc(lights, func(a, b Light) int {
		return cmp.Compare(a.Type(), b.Type())
	})
}

var (
	_ Light      = (*DirectionalLight)(nil)
	_ Directed   = (*DirectionalLight)(nil)
	_ Light      = (*PointLight)(nil)
	_ Positioned = (*PointLight)(nil)
	_ Ranged     = (*PointLight)(nil)
	_ Attenuated = (*PointLight)(nil)
	_ Light      = (*CapsuleLight)(nil)
	_ Segmented  = (*CapsuleLight)(nil)
	_ Light      = (*SpotLight)(nil)
	_ Positioned = (*SpotLight)(nil)
	_ Directed   = (*SpotLight)(nil)
	_ Ranged     = (*SpotLight)(nil)
	_ Attenuated = (*SpotLight)(nil)
	_ Light      = (*WedgeLight)(nil)
	_ Segmented  = (*WedgeLight)(nil)
	_ Directed   = (*WedgeLight)(nil)
)
