package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"glidecam/camera"
	"glidecam/canvas"
)

// Actions are the camera controls offered as HUD buttons.
type Actions struct {
	ZoomIn    func()
	ZoomOut   func()
	TiltLeft  func()
	TiltRight func()
	Reset     func()
}

type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)
	Debug         *DebugPanel
}

const (
	buttonSize   = 30.0
	buttonMargin = 10.0
)

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), actions Actions, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) *UISystem {
	ui := &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Debug:         &DebugPanel{},
	}
	// Right to left along the top edge.
	ui.buttons = []*Button{
		{Label: "+", W: buttonSize, H: buttonSize, OnClick: actions.ZoomIn},
		{Label: "-", W: buttonSize, H: buttonSize, OnClick: actions.ZoomOut},
		{Label: ">", W: buttonSize, H: buttonSize, OnClick: actions.TiltRight},
		{Label: "<", W: buttonSize, H: buttonSize, OnClick: actions.TiltLeft},
		{Label: "0", W: buttonSize, H: buttonSize, OnClick: actions.Reset},
	}
	ui.updateButtonPositions()
	return ui
}

// updateButtonPositions anchors the buttons to the top-right corner of the
// HUD, whose origin is bottom-left.
func (ui *UISystem) updateButtonPositions() {
	w, h := ui.getScreenSize()
	x := float64(w) - buttonMargin
	for _, b := range ui.buttons {
		x -= b.W
		b.X = x
		b.Y = float64(h) - buttonMargin - b.H
		x -= buttonMargin
	}
}

// toHUD converts a cursor position to HUD coordinates.
func (ui *UISystem) toHUD(mx, my int) (float64, float64, bool) {
	w, h := ui.getScreenSize()
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	hx, hy, err := camera.HUD(float64(w), float64(h)).Unproject(float64(mx), float64(my))
	if err != nil {
		return 0, 0, false
	}
	return hx, hy, true
}

func (ui *UISystem) buttonAt(mx, my int) *Button {
	ui.updateButtonPositions()
	hx, hy, ok := ui.toHUD(mx, my)
	if !ok {
		return nil
	}
	for _, b := range ui.buttons {
		if b.Contains(hx, hy) {
			return b
		}
	}
	return nil
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	return ui.buttonAt(mx, my) != nil
}

// Click fires the button under the cursor, if any.
func (ui *UISystem) Click(mx, my int) bool {
	b := ui.buttonAt(mx, my)
	if b == nil {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

func (ui *UISystem) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ui.Click(mx, my)
	}
}

// Draw renders the HUD widgets. r must be bound to a HUD transform.
func (ui *UISystem) Draw(r *canvas.Renderer) {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		b.Draw(r, ui.getFontFace, ui.drawText)
	}
	if ui.Debug != nil {
		ui.Debug.Draw(r, ui.getFontFace, ui.drawText)
	}
}
