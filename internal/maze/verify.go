package maze

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"
)

// ErrNotPerfect is returned when a grid is not a spanning tree of its cells.
var ErrNotPerfect = errors.New("maze is not perfect")

// CheckPerfect verifies that every passage is open from both sides, no passage
// leaves the grid, the passages contain no cycle, and every cell is connected.
func CheckPerfect(g *Wall4Grid) error {
	if g.Width() < 1 || g.Height() < 1 {
		return fmt.Errorf("%w: empty %dx%d grid", ErrNotPerfect, g.Width(), g.Height())
	}

	sets := make([]*disjoint.Element, g.Width()*g.Height())
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}

	edges := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := NewCoord(x, y)
			doors := g.DoorsAt(c)
			for d := range doors.Each() {
				n, ok := c.Step(d)
				if !ok || !InBounds(g, n) {
					return fmt.Errorf("%w: cell %v opens %v out of the grid", ErrNotPerfect, c, d)
				}
				if !g.DoorsAt(n).Contains(d.Opposite()) {
					return fmt.Errorf("%w: passage %v -> %v is one-sided", ErrNotPerfect, c, n)
				}
			}

			// Each passage is considered once, from its west or north end.
			for _, d := range [...]Direction4{East, South} {
				if !doors.Contains(d) {
					continue
				}
				n, _ := c.Step(d)
				a, b := sets[Linearize(g, c)], sets[Linearize(g, n)]
				if a.Find() == b.Find() {
					return fmt.Errorf("%w: passage %v -> %v closes a cycle", ErrNotPerfect, c, n)
				}
				disjoint.Union(a, b)
				edges++
			}
		}
	}

	if want := g.Width()*g.Height() - 1; edges != want {
		return fmt.Errorf("%w: %d passages connect %d cells, want %d", ErrNotPerfect, edges, want+1, want)
	}
	return nil
}

// Reachable returns the set of cells connected to from through open passages.
// An out-of-bounds from yields an empty set.
func Reachable(g *Wall4Grid, from GridCoord2D) mapset.Set[GridCoord2D] {
	seen := mapset.New[GridCoord2D]()
	if !InBounds(g, from) {
		return seen
	}

	stack := []GridCoord2D{from}
	seen.Put(from)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for d := range g.DoorsAt(c).Each() {
			n, ok := c.Step(d)
			if !ok || !InBounds(g, n) || seen.Has(n) {
				continue
			}
			seen.Put(n)
			stack = append(stack, n)
		}
	}
	return seen
}
