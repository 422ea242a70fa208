package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/lumen"
)

func InputSystem(w *Window, input *lumen.Input) {
	glfw.PollEvents()

	win := w.windowGlfw
	for key, glfwKey := range keyToGlfw {
		input.SetKey(key, win.GetKey(glfwKey) == glfw.Press)
	}
	for btn, glfwBtn := range buttonToGlfw {
		input.SetKey(btn, win.GetMouseButton(glfwBtn) == glfw.Press)
	}

	input.SetCursor(win.GetCursorPos())
	input.WindowWidth, input.WindowHeight = win.GetSize()
	w.Width, w.Height = input.WindowWidth, input.WindowHeight
}

var buttonToGlfw = map[int]glfw.MouseButton{
	lumen.MouseButtonLeft:   glfw.MouseButtonLeft,
	lumen.MouseButtonRight:  glfw.MouseButtonRight,
	lumen.MouseButtonMiddle: glfw.MouseButtonMiddle,
}

var keyToGlfw = map[int]glfw.Key{
	lumen.KeyA:         glfw.KeyA,
	lumen.KeyB:         glfw.KeyB,
	lumen.KeyC:         glfw.KeyC,
	lumen.KeyD:         glfw.KeyD,
	lumen.KeyE:         glfw.KeyE,
	lumen.KeyF:         glfw.KeyF,
	lumen.KeyG:         glfw.KeyG,
	lumen.KeyH:         glfw.KeyH,
	lumen.KeyI:         glfw.KeyI,
	lumen.KeyJ:         glfw.KeyJ,
	lumen.KeyK:         glfw.KeyK,
	lumen.KeyL:         glfw.KeyL,
	lumen.KeyM:         glfw.KeyM,
	lumen.KeyN:         glfw.KeyN,
	lumen.KeyO:         glfw.KeyO,
	lumen.KeyP:         glfw.KeyP,
	lumen.KeyQ:         glfw.KeyQ,
	lumen.KeyR:         glfw.KeyR,
	lumen.KeyS:         glfw.KeyS,
	lumen.KeyT:         glfw.KeyT,
	lumen.KeyU:         glfw.KeyU,
	lumen.KeyV:         glfw.KeyV,
	lumen.KeyW:         glfw.KeyW,
	lumen.KeyX:         glfw.KeyX,
	lumen.KeyY:         glfw.KeyY,
	lumen.KeyZ:         glfw.KeyZ,
	lumen.Key0:         glfw.Key0,
	lumen.Key1:         glfw.Key1,
	lumen.Key2:         glfw.Key2,
	lumen.Key3:         glfw.Key3,
	lumen.Key4:         glfw.Key4,
	lumen.Key5:         glfw.Key5,
	lumen.Key6:         glfw.Key6,
	lumen.Key7:         glfw.Key7,
	lumen.Key8:         glfw.Key8,
	lumen.Key9:         glfw.Key9,
	lumen.KeySpace:     glfw.KeySpace,
	lumen.KeyEnter:     glfw.KeyEnter,
	lumen.KeyEscape:    glfw.KeyEscape,
	lumen.KeyTab:       glfw.KeyTab,
	lumen.KeyBackspace: glfw.KeyBackspace,
	lumen.KeyInsert:    glfw.KeyInsert,
	lumen.KeyDelete:    glfw.KeyDelete,
	lumen.KeyRight:     glfw.KeyRight,
	lumen.KeyLeft:      glfw.KeyLeft,
	lumen.KeyDown:      glfw.KeyDown,
	lumen.KeyUp:        glfw.KeyUp,
	lumen.KeyF1:        glfw.KeyF1,
	lumen.KeyF2:        glfw.KeyF2,
	lumen.KeyF3:        glfw.KeyF3,
	lumen.KeyF4:        glfw.KeyF4,
	lumen.KeyF5:        glfw.KeyF5,
	lumen.KeyF6:        glfw.KeyF6,
	lumen.KeyF7:        glfw.KeyF7,
	lumen.KeyF8:        glfw.KeyF8,
	lumen.KeyF9:        glfw.KeyF9,
	lumen.KeyF10:       glfw.KeyF10,
	lumen.KeyF11:       glfw.KeyF11,
	lumen.KeyF12:       glfw.KeyF12,
	lumen.KeyMinus:     glfw.KeyMinus,
	lumen.KeyEqual:     glfw.KeyEqual,
	lumen.KeyKPPlus:    glfw.KeyKPAdd,
	lumen.KeyKPMinus:   glfw.KeyKPSubtract,
	lumen.KeyShift:     glfw.KeyLeftShift,
	lumen.KeyControl:   glfw.KeyLeftControl,
	lumen.KeyLeftAlt:   glfw.KeyLeftAlt,
}
