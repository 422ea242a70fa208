package platform

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"

	"github.com/gekko3d/lumen"
)

// Gpu is the device, queue and configured surface of a window.
type Gpu struct {
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration

	// ClearColor fills the surface every frame.
	ClearColor wgpu.Color
}

func NewGpu(w *Window) (*Gpu, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(w.windowGlfw))
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("platform: request adapter: %w", err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "lumen device",
	})
	if err != nil {
		return nil, fmt.Errorf("platform: request device: %w", err)
	}

	width, height := w.FramebufferSize()
	caps := surface.GetCapabilities(adapter)
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &surfaceConfig)

	return &Gpu{
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         device.GetQueue(),
		surfaceConfig: &surfaceConfig,
		ClearColor:    wgpu.Color{R: 0.05, G: 0.05, B: 0.07, A: 1},
	}, nil
}

// Resize reconfigures the surface when the framebuffer size changed.
func (g *Gpu) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if g.surfaceConfig.Width == uint32(width) && g.surfaceConfig.Height == uint32(height) {
		return
	}
	g.surfaceConfig.Width = uint32(width)
	g.surfaceConfig.Height = uint32(height)
	g.surface.Configure(g.adapter, g.device, g.surfaceConfig)
}

func (g *Gpu) Release() {
	g.queue.Release()
	g.device.Release()
	g.adapter.Release()
	g.surface.Release()
}

// present clears the next surface texture and shows it.
func (g *Gpu) present() error {
	nextTexture, err := g.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := g.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: g.ClearColor,
			},
		},
	})
	defer renderPass.Release()
	if err := renderPass.End(); err != nil {
		return err
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer cmdBuffer.Release()

	g.queue.Submit(cmdBuffer)
	g.surface.Present()
	return nil
}

// GpuModule installs the Gpu and a LightUploader fed from lumen.Lighting, and
// presents a frame at the end of the Render stage. It needs WindowModule and
// LightingModule.
type GpuModule struct {
	Gpu *Gpu
}

func (m GpuModule) Install(app *lumen.App, cmd *lumen.Commands) {
	cmd.AddResources(m.Gpu, NewLightUploader(m.Gpu.device, m.Gpu.queue))
	app.UseSystem(
		lumen.System(LightUploadSystem).
			InStage(lumen.Render).
			RunAlways(),
	)
	app.UseSystem(
		lumen.System(PresentSystem).
			InStage(lumen.Render).
			RunAlways(),
	)
}

func PresentSystem(g *Gpu, w *Window, cmd *lumen.Commands) {
	g.Resize(w.FramebufferSize())
	if err := g.present(); err != nil {
		cmd.Logger().Warnf("present: %v", err)
	}
}
