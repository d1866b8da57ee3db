package maze

// VisitMap2D tracks which cells the generator has already visited.
type VisitMap2D struct {
	width  int
	height int
	cells  []bool
}

// NewVisitMap creates a map with every cell unvisited.
func NewVisitMap(width, height int) *VisitMap2D {
	return &VisitMap2D{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// NewVisitMapLike creates a map shaped like b.
func NewVisitMapLike(b Bounds) *VisitMap2D {
	return NewVisitMap(b.Width(), b.Height())
}

// Width returns the number of columns.
func (v *VisitMap2D) Width() int { return v.width }

// Height returns the number of rows.
func (v *VisitMap2D) Height() int { return v.height }

// Get returns whether c has been visited, or false for ok when c is out of bounds.
func (v *VisitMap2D) Get(c GridCoord2D) (visited, ok bool) {
	if !InBounds(v, c) {
		return false, false
	}
	return v.cells[Linearize(v, c)], true
}

// Visited reports whether c has been visited. It panics when c is out of bounds.
func (v *VisitMap2D) Visited(c GridCoord2D) bool {
	return v.cells[Linearize(v, c)]
}

// MarkVisited flags c as visited. It panics when c is out of bounds.
func (v *VisitMap2D) MarkVisited(c GridCoord2D) {
	v.cells[Linearize(v, c)] = true
}

// UnvisitedNeighbors returns the in-bounds, unvisited neighbours of c in the
// order up, right, down, left. The order is part of the generator's
// reproducibility contract. An out-of-bounds c yields no neighbours.
func (v *VisitMap2D) UnvisitedNeighbors(c GridCoord2D) []GridCoord2D {
	out := make([]GridCoord2D, 0, 4)
	if !InBounds(v, c) {
		return out
	}

	out = v.appendIfUnvisited(out, c.Up)
	out = v.appendIfUnvisited(out, c.Right)
	out = v.appendIfUnvisited(out, c.Down)
	out = v.appendIfUnvisited(out, c.Left)
	return out
}

func (v *VisitMap2D) appendIfUnvisited(out []GridCoord2D, step func() (GridCoord2D, bool)) []GridCoord2D {
	n, ok := step()
	if !ok {
		return out
	}
	if visited, ok := v.Get(n); ok && !visited {
		out = append(out, n)
	}
	return out
}
