package core

import rng "seedmaze/pkg/core"

type coord struct {
	x, y int
}

// Carve generates a perfect maze: a fresh cols*rows grid carved by a
// randomized depth-first backtracker driven by a seeded LCG, then the
// entry and exit walls forced open. Identical arguments always produce
// identical wall states.
//
// The carved grid is a spanning tree of the lattice graph: every cell is
// reachable from (0,0) by exactly one path, and exactly cols*rows - 1
// adjacencies are open before the entry/exit pass.
func Carve(cols, rows int, seed uint32, entry, exit Opening) *Grid {
	g := NewGrid(cols, rows)
	gen := rng.NewLCG(seed)

	// Explicit stack instead of recursion; depth reaches cols*rows on a
	// maximally twisty path.
	stack := make([]coord, 0, cols*rows)
	stack = append(stack, coord{0, 0})
	g.At(0, 0).Visited = true

	var candidates [4]Side
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		n := 0
		for _, side := range sides {
			dx, dy := side.Delta()
			nx, ny := cur.x+dx, cur.y+dy
			if g.InBounds(nx, ny) && !g.At(nx, ny).Visited {
				candidates[n] = side
				n++
			}
		}

		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		side := candidates[gen.IntN(n)]
		g.OpenWall(cur.x, cur.y, side)
		dx, dy := side.Delta()
		next := coord{cur.x + dx, cur.y + dy}
		g.At(next.x, next.y).Visited = true
		stack = append(stack, next)
	}

	// Entry/exit openings are independent of the tree structure and are
	// applied unconditionally, missing coordinates resolved per field.
	for _, o := range []Opening{entry.resolve(cols, rows), exit.resolve(cols, rows)} {
		g.OpenWall(o.X, o.Y, o.Side)
	}
	return g
}
