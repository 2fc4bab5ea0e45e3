package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"glidecam/canvas"
)

// Button is a HUD rectangle. X, Y is the bottom-left corner in HUD space,
// where y grows upward.
type Button struct {
	Label   string
	X, Y    float64
	W, H    float64
	OnClick func()
}

// Contains reports whether a HUD-space point lies on the button.
func (b *Button) Contains(hx, hy float64) bool {
	return hx >= b.X && hx <= b.X+b.W &&
		hy >= b.Y && hy <= b.Y+b.H
}

// Draw renders the button. r must be bound to a HUD transform.
func (b *Button) Draw(r *canvas.Renderer, getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	buttonColor := color.RGBA{60, 60, 70, 200}
	r.FillRect(b.X, b.Y, b.W, b.H, buttonColor)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	// Label anchors at the top-left in screen pixels.
	sx, sy := r.ToScreen(b.X, b.Y+b.H)
	drawText(r.Screen, face, b.Label, int(sx)+8, int(sy)+6, color.White)
}
