package lumen

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/lumen/light"
	"github.com/gekko3d/lumen/scene"
)

type fakeSource struct {
	cfg *scene.Config
	err error
}

func (f *fakeSource) Poll() (*scene.Config, error) {
	cfg, err := f.cfg, f.err
	f.cfg, f.err = nil, nil
	return cfg, err
}

func demoScene(t *testing.T) *scene.Scene {
	t.Helper()
	s, err := scene.Demo().Build()
	require.NoError(t, err)
	return s
}

func lightingApp(t *testing.T, mod LightingModule) (*App, *Lighting) {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	app := NewAppBuilder().UseModule(
		TimeModule{Clock: func() time.Time { return start }},
		InputModule{},
		CameraModule{},
		mod,
	).Build()
	lighting, ok := Resource[Lighting](app)
	require.True(t, ok)
	return app, lighting
}

func TestLighting_PacksVisibleLights(t *testing.T) {
	s := demoScene(t)
	app, lighting := lightingApp(t, LightingModule{Scene: s})

	app.Step()
	require.Equal(t, 1, lighting.Count)
	require.Len(t, lighting.Buffer, light.DataSize)

	cam, _ := Resource[OrbitCamera](app)
	spot, _ := s.Find("spot")
	want := spot.Data(0, cam.View())
	assert.Equal(t, want.Marshal(), lighting.Buffer)
	assert.Equal(t, light.UnmarshalData(lighting.Buffer), lighting.Data[0])

	for _, l := range s.Lights() {
		l.AsLightBase().SetVisible(true)
	}
	app.Step()
	assert.Equal(t, 4, lighting.Count)
	assert.Len(t, lighting.Buffer, 4*light.DataSize)
}

func TestLighting_CapacityAndSort(t *testing.T) {
	s := scene.New()
	s.Add(light.NewSpot())
	s.Add(light.NewPoint())
	s.Add(light.NewDirectional())

	var l Lighting
	l.Scene = s
	l.Options = scene.PackOptions{Capacity: 2, SortByType: true}
	l.Pack(0, mgl32.Ident4())

	require.Equal(t, 2, l.Count)
	assert.Equal(t, int32(light.TypeDirectional), l.Data[0].Flags&0xF)
	assert.Equal(t, int32(light.TypePoint), l.Data[1].Flags&0xF)

	buf := l.Buffer
	l.Options.Capacity = 1
	l.Pack(0, mgl32.Ident4())
	assert.Len(t, l.Buffer, light.DataSize)
	assert.Same(t, &buf[0], &l.Buffer[0])
}

func TestLighting_DefaultCapacity(t *testing.T) {
	_, lighting := lightingApp(t, LightingModule{})
	assert.Equal(t, scene.DefaultCapacity, lighting.Options.Capacity)
	assert.Equal(t, 0, lighting.Scene.Len())
}

func TestLighting_Reload(t *testing.T) {
	src := &fakeSource{}
	app, lighting := lightingApp(t, LightingModule{Scene: scene.New(), Source: src})

	app.Step()
	assert.Equal(t, 0, lighting.Count)

	src.cfg = scene.Demo()
	app.Step()
	assert.Equal(t, 1, lighting.Reloads)
	assert.Equal(t, 4, lighting.Scene.Len())
	assert.Equal(t, 1, lighting.Count)
	assert.Equal(t, 32, lighting.Options.Capacity)

	current := lighting.Scene
	src.err = errors.New("yaml: bad indentation")
	app.Step()
	assert.Same(t, current, lighting.Scene)

	src.cfg = &scene.Config{Lights: []scene.LightConfig{{Type: "laser"}}}
	app.Step()
	assert.Same(t, current, lighting.Scene)
	assert.Equal(t, 1, lighting.Reloads)
}
