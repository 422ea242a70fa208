package light

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3(t *testing.T, expected, actual mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-4, msgAndArgs...)
	}
}

func TestTypeValues(t *testing.T) {
	assert.Equal(t, Type(0x0), TypeDirectional)
	assert.Equal(t, Type(0x1), TypePoint)
	assert.Equal(t, Type(0x2), TypeCapsule)
	assert.Equal(t, Type(0x4), TypeSpot)
	assert.Equal(t, Type(0x8), TypeWedge)

	for _, l := range []Light{NewDirectional(), NewPoint(), NewCapsule(), NewSpot(), NewWedge()} {
		assert.Equal(t, int32(l.Type()), l.AsLightBase().Flags(), "%s flags should start as its type", l.Type())
	}
}

func TestSortByType(t *testing.T) {
	wedge := NewWedge()
	spot1 := NewSpot()
	spot2 := NewSpot()
	lights := []Light{wedge, spot1, NewCapsule(), spot2, NewPoint(), NewDirectional()}

	SortByType(lights)

	var got []Type
	for _, l := range lights {
		got = append(got, l.Type())
	}
	assert.Equal(t, []Type{TypeDirectional, TypePoint, TypeCapsule, TypeSpot, TypeSpot, TypeWedge}, got)
	assert.Same(t, spot1, lights[3], "sort should be stable")
	assert.Same(t, spot2, lights[4], "sort should be stable")
	assert.True(t, Less(lights[0], lights[5]))
	assert.False(t, Less(lights[3], lights[4]))
}

func TestBase_SetColor(t *testing.T) {
	tests := []struct {
		name     string
		in       mgl32.Vec3
		expected mgl32.Vec3
	}{
		{"already normalized", mgl32.Vec3{1, 0.5, 0}, mgl32.Vec3{1, 0.5, 0}},
		{"scaled down", mgl32.Vec3{2, 1, 0.5}, mgl32.Vec3{1, 0.5, 0.25}},
		{"scaled up", mgl32.Vec3{0.1, 0.3, 0.2}, mgl32.Vec3{1.0 / 3, 1, 2.0 / 3}},
		{"black", mgl32.Vec3{}, mgl32.Vec3{}},
		{"negative clamped", mgl32.Vec3{-1, 0.5, 0.25}, mgl32.Vec3{0, 1, 0.5}},
		{"all negative", mgl32.Vec3{-1, -2, -3}, mgl32.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewPoint()
			l.SetColor(tt.in)
			c := l.Color()
			assertVec3(t, tt.expected, c)
			if tt.expected != (mgl32.Vec3{}) {
				assert.Equal(t, float32(1), max(c[0], c[1], c[2]), "brightest channel should be exactly 1")
			}
		})
	}
}

func TestBase_Data(t *testing.T) {
	l := NewPoint()
	l.SetColorRGB(1, 0, 0)
	l.SetIntensity(3)
	l.EnableShadows(true)

	d := l.Data(0, mgl32.Ident4())

	assert.Equal(t, mgl32.Vec4{1, 0, 0, 0.2125}, d.Color)
	assert.Equal(t, float32(3), d.Intensity)
	assert.Equal(t, int32(TypePoint)|FlagShadowEnabled, d.Flags)
	assert.True(t, l.HasShadows())
	assert.False(t, l.HasModulation())

	l.SetColorRGB(1, 1, 1)
	assert.InDelta(t, 1.0, l.Data(0, mgl32.Ident4()).Color[3], 1e-6, "white luminance")
}

func TestBase_Visible(t *testing.T) {
	l := NewSpot()
	assert.True(t, l.Visible())
	l.SetVisible(false)
	assert.False(t, l.Visible())
}

func TestAnimParam_Evaluate(t *testing.T) {
	p := AnimParam{Offset: 1, Linear: 2, Amplitude: 3, Frequency: 4}
	assert.InDelta(t, 1+1+3*0.9092974, p.Evaluate(0.5), 1e-5)
	assert.Equal(t, float32(0), AnimParam{}.Evaluate(10))
}

func TestModulationParams_Mat4(t *testing.T) {
	m := NewModulationParams().Mat4(0)

	assertVec3(t, mgl32.Vec3{0.5, 0.5, 0.5}, transformPoint(m, mgl32.Vec3{}))
	assertVec3(t, mgl32.Vec3{1, 1, 1}, transformPoint(m, mgl32.Vec3{1, 1, 1}))
	assertVec3(t, mgl32.Vec3{0, 0, 0}, transformPoint(m, mgl32.Vec3{-1, -1, -1}))

	p := NewModulationParams()
	p.RotateZ = AnimParam{Linear: 0.25}
	rotated := p.Mat4(2 * math32.Pi)
	assertVec3(t, mgl32.Vec3{0.5, 1, 0.5}, transformPoint(rotated, mgl32.Vec3{1, 0, 0}), "quarter turn after 2π seconds")
}
