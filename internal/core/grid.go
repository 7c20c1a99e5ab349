package core

import "strings"

// Cell is one lattice position: four wall flags indexed by Side plus a
// visited marker used only during carving.
type Cell struct {
	Walls   [4]bool
	Visited bool
}

// Grid stores a Rows*Cols lattice of cells in row-major order. A wall
// between two adjacent cells is stored twice, once on each cell; every
// mutation keeps the two copies in the same state.
type Grid struct {
	Cols, Rows int
	cells      []Cell
}

// NewGrid allocates a cols*rows grid with every wall present and no cell
// visited. Dimensions must be positive; callers validate.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{Cols: cols, Rows: rows, cells: make([]Cell, cols*rows)}
	for i := range g.cells {
		g.cells[i].Walls = [4]bool{true, true, true, true}
	}
	return g
}

// index returns the linear slice index for column x, row y.
func (g *Grid) index(x, y int) int { return y*g.Cols + x }

// At returns the cell at column x, row y. Out-of-range coordinates panic.
func (g *Grid) At(x, y int) *Cell {
	if x < 0 || x >= g.Cols || y < 0 || y >= g.Rows {
		panic("core: grid index out of range")
	}
	return &g.cells[g.index(x, y)]
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// OpenWall clears the wall on the given side of cell (x, y) and the
// matching wall of the neighbor across it, atomically. On the grid
// boundary only the single stored copy is cleared.
func (g *Grid) OpenWall(x, y int, side Side) {
	g.At(x, y).Walls[side] = false
	dx, dy := side.Delta()
	if nx, ny := x+dx, y+dy; g.InBounds(nx, ny) {
		g.At(nx, ny).Walls[side.Opposite()] = false
	}
}

// OpenAdjacencies counts interior cell pairs with no wall between them.
// A perfect maze over the grid has exactly Cols*Rows - 1 of these.
func (g *Grid) OpenAdjacencies() int {
	open := 0
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := g.At(x, y)
			if x+1 < g.Cols && !c.Walls[SideRight] {
				open++
			}
			if y+1 < g.Rows && !c.Walls[SideBottom] {
				open++
			}
		}
	}
	return open
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Cols: g.Cols, Rows: g.Rows, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// String renders the grid as ASCII art, one character per wall segment.
// Debug aid only; the pixel renderer lives in internal/render.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			b.WriteByte('+')
			if g.At(x, y).Walls[SideTop] {
				b.WriteString("---")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("+\n")
		for x := 0; x < g.Cols; x++ {
			if g.At(x, y).Walls[SideLeft] {
				b.WriteString("|   ")
			} else {
				b.WriteString("    ")
			}
		}
		if g.At(g.Cols-1, y).Walls[SideRight] {
			b.WriteString("|\n")
		} else {
			b.WriteString(" \n")
		}
	}
	for x := 0; x < g.Cols; x++ {
		b.WriteByte('+')
		if g.At(x, g.Rows-1).Walls[SideBottom] {
			b.WriteString("---")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("+\n")
	return b.String()
}
