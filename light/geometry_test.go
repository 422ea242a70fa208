package light

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionalLight(t *testing.T) {
	l := NewDirectional()
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, l.Direction())

	l.SetDirection(mgl32.Vec3{0, 0, 0})
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, l.Direction(), "zero direction is ignored")

	d := l.Data(0, mgl32.HomogRotate3DX(math32.Pi/2))
	assertVec3(t, mgl32.Vec3{0, 0, -1}, d.Direction)
	assert.Equal(t, mgl32.Vec3{}, d.Position)
	assert.Zero(t, d.Range)

	l.SetDirection(mgl32.Vec3{3, 0, 4})
	assertVec3(t, mgl32.Vec3{0.6, 0, 0.8}, l.Direction())
	d = l.Data(0, mgl32.Scale3D(2, 2, 2))
	assertVec3(t, mgl32.Vec3{0.6, 0, 0.8}, d.Direction, "packed direction is normalized")
	assertVec3(t, mgl32.Vec3{1.2, 0, 1.6}, l.DirectionIn(mgl32.Scale3D(2, 2, 2)))
}

func TestPointLight_Data(t *testing.T) {
	l := NewPoint()
	l.SetPosition(mgl32.Vec3{-2.5, 1, -2.5})
	l.SetRange(5)
	l.SetAttenuation(0.1, 0.2)
	l.SetShadowIndex(4)

	d := l.Data(0, mgl32.Translate3D(1, 2, 3))
	assertVec3(t, mgl32.Vec3{-1.5, 3, 0.5}, d.Position)
	assert.Equal(t, float32(5), d.Range)
	assert.Equal(t, mgl32.Vec2{0.1, 0.2}, d.Attenuation)
	assert.Equal(t, int32(4), d.ShadowIndex)
	assert.Equal(t, mgl32.Vec3{}, d.Direction)
	assert.Equal(t, mgl32.Mat4{}, d.ShadowMatrix)
}

func TestPointLight_CubeViews(t *testing.T) {
	l := NewPoint()
	l.SetPosition(mgl32.Vec3{1, 2, 3})
	l.SetRange(20)

	for face, f := range cubeFaces {
		view := l.ViewMatrix(CubeFace(face))
		assertVec3(t, mgl32.Vec3{0, 0, -1}, transformPoint(view, l.Position().Add(f.forward)), "face %d", face)
		assertVec3(t, mgl32.Vec3{}, transformPoint(view, l.Position()), "face %d", face)
	}

	views := l.ViewMatrices()
	assert.Equal(t, l.ViewMatrix(NegativeY), views[NegativeY])
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(90), 1, 0.1, 20), l.ProjectionMatrix())

	cached := l.ViewMatrix(PositiveX)
	assert.Equal(t, cached, l.ViewMatrix(PositiveX))

	l.SetPosition(mgl32.Vec3{})
	assert.NotEqual(t, cached, l.ViewMatrix(PositiveX))
}

func TestCapsuleLight_SetLengthAndAxis(t *testing.T) {
	l := NewCapsule()
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, l.Axis())
	assert.Zero(t, l.Length())

	l.SetLengthAndAxis(mgl32.Vec3{5, 1, -5}, mgl32.Vec3{-5, 1, 5})

	assertVec3(t, mgl32.Vec3{-0.70710677, 0, 0.70710677}, l.Axis())
	assert.InDelta(t, 14.142136, l.Length(), 1e-4)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, l.Position())
}

func TestCapsuleLight_Data(t *testing.T) {
	l := NewCapsule()
	l.SetLengthAndAxis(mgl32.Vec3{5, 1, -5}, mgl32.Vec3{-5, 1, 5})
	l.SetRange(5)
	l.SetShadowIndex(3)

	d := l.Data(0, mgl32.Translate3D(1, 2, 3))
	assertVec3(t, mgl32.Vec3{6, 3, -2}, d.Position, "position is the start of the segment")
	assertVec3(t, mgl32.Vec3{-0.70710677, 0, 0.70710677}, d.Axis())
	assert.InDelta(t, 14.142136, d.Width(), 1e-4)
	assert.Equal(t, float32(5), d.Range)
	assert.Equal(t, int32(TypeCapsule), d.Flags)
	assert.Zero(t, d.ShadowIndex)
}

func TestCapsuleLight_Setters(t *testing.T) {
	l := NewCapsule()
	l.SetLength(-3)
	assert.Zero(t, l.Length())
	l.SetLength(3)
	assert.Equal(t, float32(3), l.Length())

	l.SetAxis(mgl32.Vec3{0, 0, 5})
	assertVec3(t, mgl32.Vec3{0, 0, 1}, l.Axis())
	axis := l.Axis()
	l.SetAxis(mgl32.Vec3{})
	assert.Equal(t, axis, l.Axis(), "zero axis is ignored")
}

func TestWedgeLight_Perpendicular(t *testing.T) {
	vectors := []mgl32.Vec3{
		{1, 1, 0}, {0.3, -2, 0.7}, {-1, 0.5, 4}, {0, 0, 1}, {2, -3, -1}, {0.1, 0.9, -0.4},
	}

	for _, axis := range vectors {
		for _, dir := range vectors {
			l := NewWedge()
			l.SetAxis(axis)
			l.SetDirection(dir)
			if dir.Normalize().Cross(axis.Normalize()).Len() < 1e-3 {
				continue
			}
			assert.InDelta(t, 0, l.Direction().Dot(l.Axis()), 1e-5, "axis %v direction %v", axis, dir)
			assert.InDelta(t, 1, l.Direction().Len(), 1e-5)
		}
	}

	for _, dir := range vectors {
		for _, axis := range vectors {
			l := NewWedge()
			l.SetDirection(dir)
			before := l.Direction()
			l.SetAxis(axis)
			if before.Cross(l.Axis()).Len() < 1e-3 {
				assert.Equal(t, before, l.Direction(), "degenerate projection keeps the direction")
				continue
			}
			assert.InDelta(t, 0, l.Direction().Dot(l.Axis()), 1e-5, "direction %v axis %v", dir, axis)
		}
	}
}

func TestWedgeLight_Degenerate(t *testing.T) {
	l := NewWedge()
	l.SetDirection(mgl32.Vec3{5, 0, 0})
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, l.Direction(), "direction along the axis is ignored")
	assert.False(t, l.IsPointingAt())

	l.SetAxis(mgl32.Vec3{0, 1, 0})
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, l.Direction())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, l.Axis())
}

func TestWedgeLight_SetLengthAndAxis(t *testing.T) {
	l := NewWedge()
	l.SetLengthAndAxis(mgl32.Vec3{-5, 9, 15}, mgl32.Vec3{5, 9, 15})
	l.PointAt(mgl32.Vec3{0, 0, 10})

	assert.InDelta(t, 10, l.Length(), 1e-5)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, l.Axis())
	assertVec3(t, mgl32.Vec3{0, 9, 15}, l.Position())
	assertVec3(t, mgl32.Vec3{0, -9, -5}.Normalize(), l.Direction())
	require.True(t, l.IsPointingAt())

	l.SetAxis(mgl32.Vec3{0, 1, 0})
	assertVec3(t, mgl32.Vec3{0, 0, -1}, l.Direction(), "pointing wedge re-aims at its target")

	l.SetPosition(mgl32.Vec3{0, 9, 20})
	assertVec3(t, mgl32.Vec3{0, 0, -1}, l.Direction())
}

func TestWedgeLight_Data(t *testing.T) {
	l := NewWedge()
	l.SetLengthAndAxis(mgl32.Vec3{-5, 9, 15}, mgl32.Vec3{5, 9, 15})
	l.PointAt(mgl32.Vec3{0, 0, 10})
	l.SetAttenuation(0, 0.1)
	l.SetSpotRatio(0.25)
	l.EnableShadows(true)
	l.EnableModulation(true)
	require.True(t, l.HasShadows())

	d := l.Data(0, mgl32.Ident4())
	assert.Equal(t, int32(TypeWedge), d.Flags, "wedges never cast shadows or project maps")
	assert.Equal(t, mgl32.Mat4{}, d.ShadowMatrix)
	assert.Equal(t, mgl32.Mat4{}, d.ModulationMatrix)
	assertVec3(t, mgl32.Vec3{-5, 9, 15}, d.Position)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, d.Axis())
	assert.InDelta(t, 10, d.Width(), 1e-5)
	assertVec3(t, l.Direction(), d.Direction)
	assert.Equal(t, l.ConeParams(), d.Angle)
	assert.Equal(t, mgl32.Vec2{0, 0.1}, d.Attenuation)
}

func TestWedgeLight_ViewLooksAtTarget(t *testing.T) {
	l := NewWedge()
	l.SetAxis(mgl32.Vec3{1, 0, 0})
	l.SetPosition(mgl32.Vec3{0, 9, 15})
	l.PointAt(mgl32.Vec3{3, 0, 10})
	assert.InDelta(t, 0, l.Direction().Dot(l.Axis()), 1e-5)

	v := l.ViewMatrix()
	forward := mgl32.Vec3{-v.At(2, 0), -v.At(2, 1), -v.At(2, 2)}
	assertVec3(t, mgl32.Vec3{3, -9, -5}.Normalize(), forward)
	assert.NotZero(t, forward.Dot(l.Axis()))

	d := l.Data(0, mgl32.Ident4())
	assertVec3(t, l.Direction(), d.Direction, "packed direction keeps the axis constraint")
}
