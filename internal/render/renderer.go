package render

import (
	"image/color"
	"math"

	"seedmaze/internal/core"
)

// Params carries the geometry inputs for one draw pass. Cols is the
// configured column count, which sets the cell size; it can diverge from
// the grid's own dimensions after an option update without regeneration,
// and the mismatch renders as-is.
type Params struct {
	// PixelSize is the logical side length of the square target area.
	PixelSize int
	// Cols sets the cell size: cell = PixelSize / Cols.
	Cols int
	// LineWidthRatio sets wall thickness as a fraction of one cell.
	LineWidthRatio float64

	WallColor color.Color
	BGColor   color.Color
}

// Thickness returns the wall thickness for a given real-valued cell size:
// ceil(cell * ratio), never below one pixel.
func Thickness(cell, ratio float64) int {
	t := int(math.Ceil(cell * ratio))
	if t < 1 {
		t = 1
	}
	return t
}

// Draw renders the grid onto dst as a sequence of rectangle fills.
//
// Each cell paints its own top and left walls; the right and bottom walls
// are painted only on the last column and last row. Interior walls are
// stored on both adjacent cells, so the top/left pass already covers them
// and the extra pass is needed only on the outer boundary.
//
// Drawing is idempotent: the same grid and params yield the same pixels.
// A zero PixelSize degrades to a cleared surface with no wall fills.
func Draw(dst Surface, g *core.Grid, p Params) {
	dst.Clear()
	if p.PixelSize <= 0 {
		return
	}
	dst.FillRect(0, 0, p.PixelSize, p.PixelSize, p.BGColor)
	if g == nil || g.Cols <= 0 || g.Rows <= 0 || p.Cols <= 0 {
		return
	}

	cell := float64(p.PixelSize) / float64(p.Cols)
	t := Thickness(cell, p.LineWidthRatio)
	cellSize := int(math.Ceil(cell))

	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := g.At(x, y)
			px := int(math.Floor(float64(x) * cell))
			py := int(math.Floor(float64(y) * cell))

			if c.Walls[core.SideTop] {
				dst.FillRect(px, py, cellSize, t, p.WallColor)
			}
			if c.Walls[core.SideLeft] {
				dst.FillRect(px, py, t, cellSize, p.WallColor)
			}
			if x == g.Cols-1 && c.Walls[core.SideRight] {
				dst.FillRect(px+cellSize-t, py, t, cellSize, p.WallColor)
			}
			if y == g.Rows-1 && c.Walls[core.SideBottom] {
				dst.FillRect(px, py+cellSize-t, cellSize, t, p.WallColor)
			}
		}
	}
}
