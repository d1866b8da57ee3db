package maze

import "fmt"

// GridCoord2D is a cell position. The zero value (0, 0) is the top-left cell.
type GridCoord2D struct {
	X, Y int
}

// NewCoord creates a coordinate.
func NewCoord(x, y int) GridCoord2D {
	return GridCoord2D{X: x, Y: y}
}

// Up returns the cell above c, or false when c is in the top row.
func (c GridCoord2D) Up() (GridCoord2D, bool) {
	if c.Y <= 0 {
		return GridCoord2D{}, false
	}
	return GridCoord2D{X: c.X, Y: c.Y - 1}, true
}

// Down returns the cell below c. The coordinate knows nothing about the grid
// height, so callers must bounds-check the result.
func (c GridCoord2D) Down() (GridCoord2D, bool) {
	return GridCoord2D{X: c.X, Y: c.Y + 1}, true
}

// Left returns the cell left of c, or false when c is in the first column.
func (c GridCoord2D) Left() (GridCoord2D, bool) {
	if c.X <= 0 {
		return GridCoord2D{}, false
	}
	return GridCoord2D{X: c.X - 1, Y: c.Y}, true
}

// Right returns the cell right of c. Like Down, it is not bounded above.
func (c GridCoord2D) Right() (GridCoord2D, bool) {
	return GridCoord2D{X: c.X + 1, Y: c.Y}, true
}

// Step moves one cell in the given trivial direction.
func (c GridCoord2D) Step(d Direction4) (GridCoord2D, bool) {
	switch d {
	case North:
		return c.Up()
	case South:
		return c.Down()
	case East:
		return c.Right()
	case West:
		return c.Left()
	default:
		panic(fmt.Sprintf("maze: step in non-trivial direction %v", d))
	}
}

// Add returns the component-wise sum of c and o.
func (c GridCoord2D) Add(o GridCoord2D) GridCoord2D {
	return GridCoord2D{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference of c and o.
func (c GridCoord2D) Sub(o GridCoord2D) GridCoord2D {
	return GridCoord2D{X: c.X - o.X, Y: c.Y - o.Y}
}

func (c GridCoord2D) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds is implemented by anything laid out as a width x height grid.
type Bounds interface {
	Width() int
	Height() int
}

// InBounds reports whether c lies inside b.
func InBounds(b Bounds, c GridCoord2D) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < b.Width() && c.Y < b.Height()
}

// Linearize maps c to its row-major index (y*width + x) in flat storage.
// It panics when c lies outside b; that is always a caller bug.
func Linearize(b Bounds, c GridCoord2D) int {
	if !InBounds(b, c) {
		panic(fmt.Sprintf("maze: coordinate %v out of bounds for %dx%d grid", c, b.Width(), b.Height()))
	}
	return c.Y*b.Width() + c.X
}
