package core

import "fmt"

// Side identifies one of a cell's four walls. Row 0 is the top of the
// grid, column 0 the left.
type Side uint8

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// sides lists all sides in traversal order: top, right, bottom, left.
var sides = [4]Side{SideTop, SideRight, SideBottom, SideLeft}

// Opposite returns the side facing s from the adjacent cell.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideRight:
		return SideLeft
	default:
		return SideRight
	}
}

// Delta returns the (dx, dy) step from a cell to its neighbor across s.
func (s Side) Delta() (int, int) {
	switch s {
	case SideTop:
		return 0, -1
	case SideBottom:
		return 0, 1
	case SideRight:
		return 1, 0
	default:
		return -1, 0
	}
}

// String returns the lowercase side name used by flags and options.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// ParseSide converts a lowercase side name into a Side.
func ParseSide(name string) (Side, error) {
	switch name {
	case "top":
		return SideTop, nil
	case "right":
		return SideRight, nil
	case "bottom":
		return SideBottom, nil
	case "left":
		return SideLeft, nil
	}
	return SideTop, fmt.Errorf("unknown side %q", name)
}

// Auto marks an Opening coordinate that resolves to its default at carve
// time. X and Y resolve independently: one may be Auto while the other is
// explicit.
const Auto = -1

// Opening names a boundary wall that is forced open after carving,
// independent of the spanning tree. X is a column index, Y a row index.
// Coordinates are not validated; out-of-range values surface as index
// panics when the carver addresses the grid.
type Opening struct {
	X    int
	Y    int
	Side Side
}

// DefaultEntry is the opening used when the caller specifies none: the
// top wall of the top-left cell.
func DefaultEntry() Opening {
	return Opening{X: 0, Y: 0, Side: SideTop}
}

// DefaultExit leaves both coordinates Auto so they resolve against the
// grid dimensions: the bottom wall of the bottom-right cell.
func DefaultExit() Opening {
	return Opening{X: Auto, Y: Auto, Side: SideBottom}
}

// resolve substitutes Auto coordinates with the bottom-right defaults for
// a cols*rows grid. Each field falls back on its own.
func (o Opening) resolve(cols, rows int) Opening {
	if o.X == Auto {
		o.X = cols - 1
	}
	if o.Y == Auto {
		o.Y = rows - 1
	}
	return o
}
