package maze

import "fmt"

// Wall4Grid is the persistent state of a maze: one Wall4 per cell, stored row-major.
// A fresh grid has every wall present. The generator is its only writer; once
// handed to a caller it is read-only and carries no synchronization of its own.
type Wall4Grid struct {
	width  int
	height int
	walls  []Wall4
}

// NewWall4Grid creates a width x height grid with all walls present.
func NewWall4Grid(width, height int) *Wall4Grid {
	walls := make([]Wall4, width*height)
	for i := range walls {
		walls[i] = All
	}
	return &Wall4Grid{
		width:  width,
		height: height,
		walls:  walls,
	}
}

// Width returns the number of columns.
func (g *Wall4Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Wall4Grid) Height() int { return g.height }

// Get returns the walls of the cell at c, or false when c is out of bounds.
func (g *Wall4Grid) Get(c GridCoord2D) (Wall4, bool) {
	if !InBounds(g, c) {
		return None, false
	}
	return g.walls[Linearize(g, c)], true
}

// At returns the walls of the cell at c. It panics when c is out of bounds.
func (g *Wall4Grid) At(c GridCoord2D) Wall4 {
	return g.walls[Linearize(g, c)]
}

// DoorsAt returns the open passages of the cell at c. It panics when c is out of bounds.
func (g *Wall4Grid) DoorsAt(c GridCoord2D) Door4 {
	return g.At(c).Not()
}

// RemoveWallBetween opens the passage between two orthogonally adjacent cells,
// clearing the facing wall on both sides. Calling it again for the same pair
// changes nothing. It panics when the cells are not adjacent.
func (g *Wall4Grid) RemoveWallBetween(current, selected GridCoord2D) {
	dx := current.X - selected.X
	dy := current.Y - selected.Y
	if !((abs(dx) == 1 && dy == 0) || (abs(dy) == 1 && dx == 0)) {
		panic(fmt.Sprintf("maze: cells are not adjacent: %v, %v", current, selected))
	}

	cur := Linearize(g, current)
	sel := Linearize(g, selected)

	switch {
	case dx > 0:
		g.walls[sel].Remove(East)
		g.walls[cur].Remove(West)
	case dx < 0:
		g.walls[sel].Remove(West)
		g.walls[cur].Remove(East)
	case dy > 0:
		g.walls[sel].Remove(South)
		g.walls[cur].Remove(North)
	default:
		g.walls[sel].Remove(North)
		g.walls[cur].Remove(South)
	}
}

// Passages counts the open passages between neighbouring cells.
func (g *Wall4Grid) Passages() int {
	n := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			w := g.walls[y*g.width+x]
			// Count each passage once, from its west or north end.
			if x+1 < g.width && !w.Contains(East) {
				n++
			}
			if y+1 < g.height && !w.Contains(South) {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Wall4Grid) Clone() *Wall4Grid {
	walls := make([]Wall4, len(g.walls))
	copy(walls, g.walls)
	return &Wall4Grid{width: g.width, height: g.height, walls: walls}
}

// Equal reports whether g and o have the same shape and walls.
func (g *Wall4Grid) Equal(o *Wall4Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.walls {
		if g.walls[i] != o.walls[i] {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
