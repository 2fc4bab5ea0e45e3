package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"glidecam/camera"
)

// Renderer draws onto an ebiten screen through whichever camera.Transform
// was bound last. Coordinates passed to draw calls are in that transform's
// space: world units after Focus, HUD pixels after HUDMode.
type Renderer struct {
	Screen *ebiten.Image

	transform camera.Transform
	m         Affine
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.Bind(camera.HUD(1, 1))
	return r
}

// Begin starts a frame on screen. The previously bound transform stays.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.Screen = screen
}

// Bind makes t the active transform for subsequent draw calls.
func (r *Renderer) Bind(t camera.Transform) {
	r.transform = t
	r.m = AffineOf(t)
}

// Transform returns the bound transform.
func (r *Renderer) Transform() camera.Transform {
	return r.transform
}

// GeoM is the bound transform as an ebiten affine matrix from the z=0 plane
// to screen pixels. ebiten keeps float32 elements, so prefer ToScreen for
// positions far from the origin.
func (r *Renderer) GeoM() ebiten.GeoM {
	return r.m.GeoM()
}

// Affine is a 2D affine map in float64:
//
//	x' = A*x + B*y + TX
//	y' = C*x + D*y + TY
type Affine struct {
	A, B, TX float64
	C, D, TY float64
}

// AffineOf collapses t's view-projection and viewport mapping into a 2D
// affine map. Orthographic volumes keep w=1, so the collapse is exact.
func AffineOf(t camera.Transform) Affine {
	vp := t.ViewProjection()
	hw, hh := t.Width/2, t.Height/2
	return Affine{
		A: vp.At(0, 0) * hw, B: vp.At(0, 1) * hw, TX: (vp.At(0, 3) + 1) * hw,
		C: -vp.At(1, 0) * hh, D: -vp.At(1, 1) * hh, TY: (1 - vp.At(1, 3)) * hh,
	}
}

func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.TX, m.C*x + m.D*y + m.TY
}

func (m Affine) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse map and false when m is singular.
func (m Affine) Invert() (Affine, bool) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Affine{}, false
	}
	a, b, c, d := m.D/det, -m.B/det, -m.C/det, m.A/det
	return Affine{
		A: a, B: b, TX: -(a*m.TX + b*m.TY),
		C: c, D: d, TY: -(c*m.TX + d*m.TY),
	}, true
}

func (m Affine) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.TX)
	g.SetElement(1, 0, m.C)
	g.SetElement(1, 1, m.D)
	g.SetElement(1, 2, m.TY)
	return g
}

func (r *Renderer) ToScreen(x, y float64) (float64, float64) {
	return r.m.Apply(x, y)
}

func (r *Renderer) ToWorld(sx, sy float64) (float64, float64) {
	inv, ok := r.m.Invert()
	if !ok {
		return 0, 0
	}
	return inv.Apply(sx, sy)
}

// PixelScale is how many screen pixels one unit of the bound space covers.
func (r *Renderer) PixelScale() float64 {
	return math.Sqrt(math.Abs(r.m.Det()))
}

func (r *Renderer) FillRect(x, y, w, h float64, clr color.Color) {
	var p vector.Path
	r.moveTo(&p, x, y)
	r.lineTo(&p, x+w, y)
	r.lineTo(&p, x+w, y+h)
	r.lineTo(&p, x, y+h)
	p.Close()
	r.fillPath(&p, clr)
}

func (r *Renderer) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	r.StrokeLine(x, y, x+w, y, width, clr)
	r.StrokeLine(x+w, y, x+w, y+h, width, clr)
	r.StrokeLine(x+w, y+h, x, y+h, width, clr)
	r.StrokeLine(x, y+h, x, y, width, clr)
}

// StrokeLine draws a line between two points. width is in screen pixels so
// outlines stay legible at any zoom.
func (r *Renderer) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	sx0, sy0 := r.ToScreen(x0, y0)
	sx1, sy1 := r.ToScreen(x1, y1)
	vector.StrokeLine(r.Screen, float32(sx0), float32(sy0), float32(sx1), float32(sy1), float32(width), clr, true)
}

// FillCircle draws a circle whose radius is in the bound space's units.
func (r *Renderer) FillCircle(cx, cy, radius float64, clr color.Color) {
	sx, sy := r.ToScreen(cx, cy)
	vector.DrawFilledCircle(r.Screen, float32(sx), float32(sy), float32(radius*r.PixelScale()), clr, true)
}

// Print writes debug text whose top-left corner sits at the projection of
// (x, y). Text is never rotated or scaled.
func (r *Renderer) Print(s string, x, y float64) {
	sx, sy := r.ToScreen(x, y)
	ebitenutil.DebugPrintAt(r.Screen, s, int(sx), int(sy))
}

func (r *Renderer) moveTo(p *vector.Path, x, y float64) {
	sx, sy := r.ToScreen(x, y)
	p.MoveTo(float32(sx), float32(sy))
}

func (r *Renderer) lineTo(p *vector.Path, x, y float64) {
	sx, sy := r.ToScreen(x, y)
	p.LineTo(float32(sx), float32(sy))
}

var whitePixel *ebiten.Image

func fillSource() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

func (r *Renderer) fillPath(p *vector.Path, clr color.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	r.Screen.DrawTriangles(vs, is, fillSource(), op)
}
