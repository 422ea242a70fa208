package main

import (
	"github.com/urfave/cli"

	"github.com/gekko3d/lumen"
	"github.com/gekko3d/lumen/platform"
	"github.com/gekko3d/lumen/scene"
)

// Run the interactive lights sample.
func RunDemo(ctx *cli.Context) error {
	setupLogging(ctx)

	path := ctx.String("scene")
	cfg, err := loadScene(path)
	if err != nil {
		return err
	}
	s, err := cfg.Build()
	if err != nil {
		return err
	}
	eye, target, err := cfg.Camera.EyeTarget()
	if err != nil {
		return err
	}

	var source lumen.SceneSource
	if ctx.Bool("watch") {
		if path == "" {
			return cli.NewExitError("demo: --watch needs --scene", 1)
		}
		watcher, err := scene.Watch(path, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
		source = watcher
		logger.Infof("watching %s", watcher.Path())
	}

	win, err := platform.OpenWindow(ctx.Int("width"), ctx.Int("height"), "lumen - lights")
	if err != nil {
		return err
	}
	defer win.Close()

	gpu, err := platform.NewGpu(win)
	if err != nil {
		return err
	}
	defer gpu.Release()

	app := lumen.NewAppBuilder().
		UseModule(
			lumen.LoggingModule{Logger: logger},
			lumen.TimeModule{},
			lumen.InputModule{},
			platform.WindowModule{Window: win},
			lumen.CameraModule{Eye: eye, Target: target},
			lumen.LightingModule{
				Scene:      s,
				Capacity:   cfg.PackCapacity(),
				SortByType: true,
				Source:     source,
			},
			lumen.LightsDemoModule{},
			platform.GpuModule{Gpu: gpu},
		).
		Build()

	visible := 0
	for _, l := range s.Lights() {
		if l.AsLightBase().Visible() {
			visible++
		}
	}
	logger.Infof("%d lights, %d visible", s.Len(), visible)
	app.Run()

	if uploader, ok := lumen.Resource[platform.LightUploader](app); ok {
		uploader.Release()
	}
	return nil
}
