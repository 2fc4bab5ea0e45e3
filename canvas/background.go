package canvas

import (
	"image/color"
	"math"
)

// GridStyle controls DrawGrid.
type GridStyle struct {
	Spacing     float64 // World units between minor lines
	MajorEvery  int     // Every Nth line is drawn as a major line; 0 disables
	Minor       color.Color
	Major       color.Color
	OriginCross color.Color
	CrossSize   float64 // World units
}

// VisibleBounds returns the world-space bounding box of the screen under the
// bound transform. Under rotation the box is larger than the view.
func (r *Renderer) VisibleBounds() (minX, minY, maxX, maxY float64) {
	t := r.Transform()
	corners := [4][2]float64{
		{0, 0}, {t.Width, 0}, {0, t.Height}, {t.Width, t.Height},
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		wx, wy := r.ToWorld(c[0], c[1])
		minX = math.Min(minX, wx)
		minY = math.Min(minY, wy)
		maxX = math.Max(maxX, wx)
		maxY = math.Max(maxY, wy)
	}
	return minX, minY, maxX, maxY
}

// GridLine is one grid line: its offset along the axis and whether it is a
// major line.
type GridLine struct {
	Pos   float64
	Major bool
}

// GridLines enumerates the lines with the given spacing that cover [lo, hi].
// It returns nil when the lines cannot be told apart at this magnitude
// (adding spacing no longer changes the float) or when there would be more
// than maxLines of them.
func GridLines(lo, hi, spacing float64, majorEvery, maxLines int) []GridLine {
	if spacing <= 0 || !(lo <= hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	first := math.Floor(lo / spacing)
	last := math.Ceil(hi / spacing)
	start := first * spacing
	if start+spacing == start {
		return nil
	}
	count := last - first + 1
	if count > float64(maxLines) {
		return nil
	}

	lines := make([]GridLine, 0, int(count))
	for k := 0; k < int(count); k++ {
		idx := first + float64(k)
		lines = append(lines, GridLine{
			Pos:   idx * spacing,
			Major: majorEvery > 0 && math.Mod(idx, float64(majorEvery)) == 0,
		})
	}
	return lines
}

// DrawGrid renders the infinite coordinate grid in the bound space. Lines
// follow the camera's pan, zoom and rotation.
func DrawGrid(r *Renderer, style GridStyle) {
	if style.Spacing <= 0 {
		return
	}
	left, bottom, right, top := r.VisibleBounds()

	// Skip the grid when lines would be denser than one every two pixels.
	if style.Spacing*r.PixelScale() < 2 {
		return
	}

	t := r.Transform()
	maxLines := int(math.Max(t.Width, t.Height))

	for _, l := range GridLines(left, right, style.Spacing, style.MajorEvery, maxLines) {
		r.StrokeLine(l.Pos, bottom, l.Pos, top, 1, gridColor(style, l))
	}
	for _, l := range GridLines(bottom, top, style.Spacing, style.MajorEvery, maxLines) {
		r.StrokeLine(left, l.Pos, right, l.Pos, 1, gridColor(style, l))
	}

	if style.OriginCross != nil && style.CrossSize > 0 {
		s := style.CrossSize
		r.StrokeLine(-s, 0, s, 0, 2, style.OriginCross)
		r.StrokeLine(0, -s, 0, s, 2, style.OriginCross)
	}
}

func gridColor(style GridStyle, l GridLine) color.Color {
	if l.Major {
		return style.Major
	}
	return style.Minor
}
