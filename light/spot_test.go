package light

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotLight_Defaults(t *testing.T) {
	l := NewSpot()
	assert.Equal(t, mgl32.Vec3{}, l.Position())
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, l.Direction())
	assert.Equal(t, float32(100), l.Range())
	assert.Equal(t, float32(1), l.SpotRatio())
	assert.Equal(t, float32(1), l.HotspotRatio())
	assert.Equal(t, mgl32.Vec2{}, l.Attenuation())
	assert.False(t, l.IsPointingAt())
	assert.Equal(t, NewModulationParams(), l.ModulationParams())
	assert.True(t, l.dirty)
}

func TestSpotLight_HotspotNeverExceedsSpot(t *testing.T) {
	l := NewSpot()
	steps := []struct {
		spot    bool
		ratio   float32
		hotspot float32
	}{
		{false, 2, 1},
		{true, 0.5, 0.5},
		{true, 3, 2},
		{false, -1, 0},
		{true, -2, 0},
		{false, 5, 0},
	}

	for i, s := range steps {
		if s.spot {
			l.SetSpotRatio(s.ratio)
		} else {
			l.SetHotspotRatio(s.ratio)
		}
		assert.LessOrEqual(t, l.HotspotRatio(), l.SpotRatio(), "step %d", i)
		assert.InDelta(t, s.hotspot, l.HotspotRatio(), 1e-6, "step %d", i)
		assert.GreaterOrEqual(t, l.SpotRatio(), float32(0), "step %d", i)
	}
}

func TestSpotLight_Angles(t *testing.T) {
	l := NewSpot()
	l.SetSpotAngle(mgl32.DegToRad(30))
	assert.InDelta(t, 0.57735, l.SpotRatio(), 1e-5)
	assert.InDelta(t, mgl32.DegToRad(30), l.SpotAngle(), 1e-5)

	l.SetHotspotAngle(mgl32.DegToRad(60))
	assert.InDelta(t, mgl32.DegToRad(30), l.HotspotAngle(), 1e-5, "hotspot angle is limited by the spot angle")

	l.SetHotspotAngle(mgl32.DegToRad(20))
	assert.InDelta(t, mgl32.DegToRad(20), l.HotspotAngle(), 1e-5)
}

func TestSpotLight_ConeParams(t *testing.T) {
	l := NewSpot()
	l.SetPosition(mgl32.Vec3{0, 9, 0})
	l.PointAt(mgl32.Vec3{0, 0, 10})
	l.SetSpotRatio(1)
	l.SetHotspotRatio(0.9)
	l.SetAttenuation(0, 0.04)
	l.SetRange(50)
	l.SetIntensity(1)

	cone := l.ConeParams()
	assert.InDelta(t, 0.7071, cone[0], 1e-4)
	assert.InDelta(t, 0.7433, cone[1], 1e-4)

	d := l.Data(0, mgl32.Ident4())
	assert.Equal(t, cone, d.Angle)
	assertVec3(t, mgl32.Vec3{0, -9, 10}.Normalize(), d.Direction)
	assert.Equal(t, float32(50), d.Range)
	assert.Equal(t, mgl32.Vec2{0, 0.04}, d.Attenuation)
}

func TestSpotLight_PointAt(t *testing.T) {
	l := NewSpot()
	l.PointAt(mgl32.Vec3{0, 0, -10})
	require.True(t, l.IsPointingAt())
	assertVec3(t, mgl32.Vec3{0, 0, -1}, l.Direction())

	l.SetPosition(mgl32.Vec3{0, 10, -10})
	assertVec3(t, mgl32.Vec3{0, -1, 0}, l.Direction(), "moving keeps the light aimed at its target")

	l.SetDirection(mgl32.Vec3{2, 0, 0})
	assert.False(t, l.IsPointingAt())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, l.Direction())

	l.SetPosition(mgl32.Vec3{})
	assertVec3(t, mgl32.Vec3{1, 0, 0}, l.Direction(), "direction is free once no longer pointing")

	l.SetDirection(mgl32.Vec3{})
	assertVec3(t, mgl32.Vec3{1, 0, 0}, l.Direction(), "zero direction is ignored")
}

func TestSpotLight_ViewMatrixCached(t *testing.T) {
	l := NewSpot()
	first := l.ViewMatrix()
	assert.False(t, l.dirty)
	second := l.ViewMatrix()
	assert.Equal(t, first, second)

	l.SetPosition(mgl32.Vec3{1, 2, 3})
	assert.True(t, l.dirty)
	assert.NotEqual(t, first, l.ViewMatrix())
}

func TestSpotLight_DirtyOnSpatialChange(t *testing.T) {
	mutations := map[string]func(l *SpotLight){
		"position":  func(l *SpotLight) { l.SetPosition(mgl32.Vec3{1, 0, 0}) },
		"direction": func(l *SpotLight) { l.SetDirection(mgl32.Vec3{1, 0, 0}) },
		"point at":  func(l *SpotLight) { l.PointAt(mgl32.Vec3{0, 0, 5}) },
		"ratio":     func(l *SpotLight) { l.SetSpotRatio(2) },
		"range":     func(l *SpotLight) { l.SetRange(10) },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			l := NewSpot()
			l.ShadowMatrix()
			require.False(t, l.dirty)
			mutate(l)
			assert.True(t, l.dirty)
		})
	}
}

func TestSpotLight_ViewMatrix(t *testing.T) {
	l := NewSpot()
	l.SetPosition(mgl32.Vec3{0, 9, 0})

	view := l.ViewMatrix()
	assertVec3(t, mgl32.Vec3{0, 0, -1}, transformPoint(view, mgl32.Vec3{0, 8, 0}))

	l.SetDirection(mgl32.Vec3{0, 0, -1})
	view = l.ViewMatrix()
	for _, v := range view {
		assert.False(t, math32.IsNaN(v), "view matrix should not contain NaN when looking along up")
	}
	assertVec3(t, mgl32.Vec3{0, 0, -1}, transformPoint(view, mgl32.Vec3{0, 9, -1}))
}

func TestSpotLight_ShadowMatrix(t *testing.T) {
	l := NewSpot()
	l.SetPosition(mgl32.Vec3{0, 9, 0})
	l.SetRange(50)

	p := l.ShadowMatrix().Mul4x1(mgl32.Vec4{0, 4, 0, 1})
	p = p.Mul(1 / p[3])
	assert.InDelta(t, 0.5, p[0], 1e-5)
	assert.InDelta(t, 0.5, p[1], 1e-5)
	assert.Greater(t, p[2], float32(0))
	assert.Less(t, p[2], float32(1))

	assert.Equal(t, mgl32.Perspective(2*math32.Atan(1), 1, 0.1, 50), l.ProjectionMatrix())
}

func TestSpotLight_DataMatrices(t *testing.T) {
	l := NewSpot()
	l.SetPosition(mgl32.Vec3{0, 9, 0})
	l.PointAt(mgl32.Vec3{3, 0, 2})
	l.SetShadowIndex(2)
	l.SetModulationIndex(3)

	view := mgl32.LookAtV(mgl32.Vec3{10, 10, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	d := l.Data(1, view)
	assert.Equal(t, mgl32.Mat4{}, d.ShadowMatrix, "no shadow matrix unless enabled")
	assert.Equal(t, mgl32.Mat4{}, d.ModulationMatrix)
	assert.Zero(t, d.ShadowIndex)
	assert.Zero(t, d.ModulationIndex)

	l.EnableShadows(true)
	l.EnableModulation(true)
	d = l.Data(1, view)
	assert.Equal(t, int32(2), d.ShadowIndex)
	assert.Equal(t, int32(3), d.ModulationIndex)
	assert.Equal(t, int32(TypeSpot)|FlagShadowEnabled|FlagModulationEnabled, d.Flags)

	world := mgl32.Vec4{1, 2, 3, 1}
	viewSpace := view.Mul4x1(world)
	expected := l.ShadowMatrix().Mul4x1(world)
	actual := d.ShadowMatrix.Mul4x1(viewSpace)
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-3)
	}

	expected = l.ModulationMatrix(1).Mul4x1(world)
	actual = d.ModulationMatrix.Mul4x1(viewSpace)
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-3)
	}

	assertVec3(t, transformPoint(view, l.Position()), d.Position)
	assertVec3(t, view.Mat3().Mul3x1(l.Direction()).Normalize(), d.Direction)
}
