package lumen

const (
	KeyA int = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyMinus
	KeyEqual
	KeyKPPlus
	KeyKPMinus
	KeyShift
	KeyControl
	KeyLeftAlt
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

const keyCount = 256

type InputModule struct{}

// Input holds the keyboard and mouse state for the current frame. A platform
// module feeds it through SetKey and SetCursor before the Update stage.
type Input struct {
	Pressed [keyCount]bool

	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64

	WindowWidth, WindowHeight int

	cursorKnown bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
}

// SetKey records the state of key (or mouse button) for this frame.
func (input *Input) SetKey(key int, down bool) {
	if key < 0 || key >= keyCount {
		return
	}
	input.JustPressed[key] = down && !input.Pressed[key]
	input.JustReleased[key] = !down && input.Pressed[key]
	input.Pressed[key] = down
}

// SetCursor moves the mouse and updates the deltas. The first position reported
// produces no delta.
func (input *Input) SetCursor(x, y float64) {
	if input.cursorKnown {
		input.MouseDeltaX = x - input.MouseX
		input.MouseDeltaY = y - input.MouseY
	} else {
		input.MouseDeltaX, input.MouseDeltaY = 0, 0
		input.cursorKnown = true
	}
	input.MouseX, input.MouseY = x, y
}

// Aspect returns the window aspect ratio, or 0 before the size is known.
func (input *Input) Aspect() float32 {
	if input.WindowWidth <= 0 || input.WindowHeight <= 0 {
		return 0
	}
	return float32(input.WindowWidth) / float32(input.WindowHeight)
}
