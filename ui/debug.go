package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"glidecam/canvas"
)

const debugHistory = 4

var (
	colorDebugBackground = color.RGBA{40, 40, 40, 220}
	colorDebugText       = color.RGBA{255, 200, 50, 255}
)

// DebugPanel shows the latest messages, newest last. Error is the most
// recent one.
type DebugPanel struct {
	Error   string
	history []string
}

func (d *DebugPanel) SetError(msg string) {
	d.Error = msg
	d.history = append(d.history, msg)
	if len(d.history) > debugHistory {
		d.history = d.history[len(d.history)-debugHistory:]
	}
}

func (d *DebugPanel) Clear() {
	d.Error = ""
	d.history = nil
}

// Lines returns the retained messages, oldest first.
func (d *DebugPanel) Lines() []string {
	return append([]string(nil), d.history...)
}

// Draw anchors the panel to the bottom-right corner. r must be bound to a
// HUD transform, whose y grows upward.
func (d *DebugPanel) Draw(r *canvas.Renderer, getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	if d == nil || len(d.history) == 0 {
		return
	}
	const pw, lineHeight, pad = 300.0, 16.0, 8.0
	ph := float64(len(d.history))*lineHeight + 2*pad
	x := r.Transform().Width - pw - 10
	y := 10.0
	r.FillRect(x, y, pw, ph, colorDebugBackground)

	if getFace == nil || drawText == nil {
		return
	}
	if face := getFace(); face != nil {
		sx, sy := r.ToScreen(x, y+ph)
		drawText(r.Screen, face, strings.Join(d.history, "\n"), int(sx+pad), int(sy+pad), colorDebugText)
	}
}
