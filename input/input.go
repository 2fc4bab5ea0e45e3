package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Host defines the callbacks the input system needs from the main game.
type Host interface {
	ScreenToWorld(sx, sy float64) (float64, float64)
	IsMouseOver(mx, my int) bool
	Pan(length, angle float64)
	Zoom(factor float64)
	Tilt(angle float64)
	SetTarget(x, y float64)
	DragPan(dx, dy float64)
	ResetCamera()
	FocusNext()
	RequestScreenshot()
	SaveState(filename string) error
	LoadState(filename string) error
	RunScripts()
	Log(msg string)
}

// Bindings holds per-tick speeds for held keys.
type Bindings struct {
	PanSpeed   float64 // fraction of the view half-height per tick
	TiltSpeed  float64 // radians per tick
	ZoomStep   float64 // factor per wheel notch or key tick
	StateFile  string
	ViewHeight func() float64 // current half-height of the view
}

// Command is a camera action resolved from one frame of input. Resolving
// is separated from polling so it can be tested without a window.
type Command struct {
	PanForward float64 // -1..1
	PanRight   float64 // -1..1
	Tilt       float64 // -1..1
	ZoomSteps  float64 // positive zooms in
}

type InputSystem struct {
	host     Host
	bindings Bindings

	// Internal state
	isPanning  bool
	lastMouseX int
	lastMouseY int
}

func NewInputSystem(h Host, b Bindings) *InputSystem {
	return &InputSystem{host: h, bindings: b}
}

func (is *InputSystem) Update() {
	mx, my := ebiten.CursorPosition()
	overUI := is.host.IsMouseOver(mx, my)

	is.handleControlKeys()
	is.Apply(is.poll())
	is.handleRetarget(mx, my, overUI)
	is.handlePanning(mx, my, overUI)
}

func (is *InputSystem) poll() Command {
	var cmd Command
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cmd.PanForward++
	}
	if (ebiten.IsKeyPressed(ebiten.KeyS) && !ebiten.IsKeyPressed(ebiten.KeyControl)) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cmd.PanForward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cmd.PanRight++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cmd.PanRight--
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		cmd.Tilt++
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		cmd.Tilt--
	}

	_, dy := ebiten.Wheel()
	cmd.ZoomSteps += dy
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		cmd.ZoomSteps += 0.1
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		cmd.ZoomSteps -= 0.1
	}
	return cmd
}

// Apply turns a resolved command into camera mutator calls on the host.
func (is *InputSystem) Apply(cmd Command) {
	if cmd.PanForward != 0 || cmd.PanRight != 0 {
		length := math.Hypot(cmd.PanForward, cmd.PanRight)
		if length > 1 {
			length = 1
		}
		step := is.bindings.PanSpeed
		if is.bindings.ViewHeight != nil {
			step *= is.bindings.ViewHeight()
		}
		// atan2(right, forward) measures clockwise from screen-up, the same
		// convention the camera's Pan uses.
		is.host.Pan(length*step, math.Atan2(cmd.PanRight, cmd.PanForward))
	}
	if cmd.Tilt != 0 {
		is.host.Tilt(cmd.Tilt * is.bindings.TiltSpeed)
	}
	if cmd.ZoomSteps != 0 {
		// Scale is a half-height, so zooming in shrinks it.
		is.host.Zoom(math.Pow(1+is.bindings.ZoomStep, -cmd.ZoomSteps))
	}
}

func (is *InputSystem) handleControlKeys() {
	// --- Screenshot ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		is.host.RequestScreenshot()
	}

	// --- Run Scripts ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		is.host.RunScripts()
	}

	// --- Marker Tour ---
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		is.host.FocusNext()
	}

	// --- Reset ---
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		is.host.ResetCamera()
	}

	// --- Save / Load State ---
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := is.host.SaveState(is.bindings.StateFile); err != nil {
			is.host.Log("save failed: " + err.Error())
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := is.host.LoadState(is.bindings.StateFile); err != nil {
			is.host.Log("load failed: " + err.Error())
		}
	}
}

func (is *InputSystem) handleRetarget(mx, my int, overUI bool) {
	if overUI || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return
	}
	wx, wy := is.host.ScreenToWorld(float64(mx), float64(my))
	is.host.SetTarget(wx, wy)
}

func (is *InputSystem) handlePanning(mx, my int, overUI bool) {
	isPanButtonHeld := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && ebiten.IsKeyPressed(ebiten.KeySpace) && !overUI)

	if !is.isPanning {
		if isPanButtonHeld {
			is.isPanning = true
			is.lastMouseX, is.lastMouseY = mx, my
		}
	} else {
		if isPanButtonHeld {
			dx := float64(mx - is.lastMouseX)
			dy := float64(my - is.lastMouseY)
			if dx != 0 || dy != 0 {
				is.host.DragPan(dx, dy)
			}
			is.lastMouseX, is.lastMouseY = mx, my
		} else {
			is.isPanning = false
		}
	}
}
