// Package platform connects the app to a glfw window and a webgpu device: it
// polls input into lumen.Input and uploads the packed lights every frame.
//
// Everything here must run on the main OS thread.
package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/lumen"
)

type Window struct {
	windowGlfw *glfw.Window
	Width      int
	Height     int
	Title      string
}

// OpenWindow initializes glfw and opens a window without a client API, for use
// with webgpu. Zero sizes fall back to 1280x720.
func OpenWindow(width, height int, title string) (*Window, error) {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "lumen"
	}

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("platform: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("platform: create window: %w", err)
	}

	return &Window{
		windowGlfw: win,
		Width:      width,
		Height:     height,
		Title:      title,
	}, nil
}

func (w *Window) ShouldClose() bool { return w.windowGlfw.ShouldClose() }

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) { return w.windowGlfw.GetFramebufferSize() }

func (w *Window) Close() {
	w.windowGlfw.Destroy()
	glfw.Terminate()
}

// WindowModule installs an opened Window and polls it into lumen.Input at the
// start of every frame. Closing the window quits the app.
type WindowModule struct {
	Window *Window
}

func (m WindowModule) Install(app *lumen.App, cmd *lumen.Commands) {
	cmd.AddResources(m.Window)
	app.UseSystem(
		lumen.System(InputSystem).
			InStage(lumen.PreUpdate).
			RunAlways(),
	)
	app.UseSystem(
		lumen.System(windowCloseSystem).
			InStage(lumen.Finale).
			RunAlways(),
	)
}

func windowCloseSystem(w *Window, cmd *lumen.Commands) {
	if w.ShouldClose() {
		cmd.Quit()
	}
}
