package lumen

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/lumen/light"
	"github.com/gekko3d/lumen/scene"
)

// SceneSource hands over scene configs reloaded in the background.
// *scene.Watcher implements it.
type SceneSource interface {
	Poll() (*scene.Config, error)
}

// LightingModule packs the visible lights of a scene every frame, in the camera's
// view space. It needs the Time and OrbitCamera resources.
type LightingModule struct {
	Scene      *scene.Scene
	Capacity   int
	SortByType bool

	// Source, when set, replaces Scene whenever it reports a new config.
	Source SceneSource
}

// Lighting is the packed light state of the current frame. Buffer holds Count
// blocks of light.DataSize bytes, ready for upload.
type Lighting struct {
	Scene   *scene.Scene
	Options scene.PackOptions

	Data   []light.Data
	Buffer []byte
	Count  int

	Reloads int

	source SceneSource
}

func (m LightingModule) Install(app *App, cmd *Commands) {
	s := m.Scene
	if s == nil {
		s = scene.New()
	}
	capacity := m.Capacity
	if capacity <= 0 {
		capacity = scene.DefaultCapacity
	}

	cmd.AddResources(&Lighting{
		Scene:   s,
		Options: scene.PackOptions{Capacity: capacity, SortByType: m.SortByType},
		source:  m.Source,
	})
	app.UseSystem(
		System(LightingReloadSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
	app.UseSystem(
		System(LightingPackSystem).
			InStage(PreRender).
			RunAlways(),
	)
}

// Apply replaces the scene with the one cfg describes. The current scene is kept
// when cfg does not build.
func (l *Lighting) Apply(cfg *scene.Config) error {
	s, err := cfg.Build()
	if err != nil {
		return err
	}
	l.Scene = s
	l.Options.Capacity = cfg.PackCapacity()
	l.Reloads++
	return nil
}

// Pack fills Data, Buffer and Count from the scene.
func (l *Lighting) Pack(time float64, view mgl32.Mat4) {
	l.Data = l.Scene.Pack(time, view, l.Options)
	l.Count = len(l.Data)

	size := l.Count * light.DataSize
	if cap(l.Buffer) < size {
		l.Buffer = make([]byte, size)
	}
	l.Buffer = l.Buffer[:size]
	for i := range l.Data {
		l.Data[i].MarshalTo(l.Buffer[i*light.DataSize:])
	}
}

func LightingReloadSystem(lighting *Lighting, cmd *Commands) {
	if lighting.source == nil {
		return
	}
	cfg, err := lighting.source.Poll()
	if err != nil {
		cmd.Logger().Warnf("scene reload: %v", err)
		return
	}
	if cfg == nil {
		return
	}
	if err := lighting.Apply(cfg); err != nil {
		cmd.Logger().Warnf("scene reload: %v", err)
		return
	}
	cmd.Logger().Infof("scene reloaded: %d lights", lighting.Scene.Len())
}

func LightingPackSystem(t *Time, cam *OrbitCamera, lighting *Lighting) {
	lighting.Pack(t.Elapsed, cam.View())
}
