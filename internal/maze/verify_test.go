package maze

import (
	"errors"
	"testing"
)

// serpentine carves a boustrophedon path through every cell, which is a
// spanning tree for any shape.
func serpentine(width, height int) *Wall4Grid {
	g := NewWall4Grid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x+1 < width; x++ {
			g.RemoveWallBetween(NewCoord(x, y), NewCoord(x+1, y))
		}
		if y+1 < height {
			edge := width - 1
			if y%2 == 1 {
				edge = 0
			}
			g.RemoveWallBetween(NewCoord(edge, y), NewCoord(edge, y+1))
		}
	}
	return g
}

func TestCheckPerfectAcceptsSpanningTree(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {4, 3}} {
		g := serpentine(size[0], size[1])
		if err := CheckPerfect(g); err != nil {
			t.Errorf("%dx%d serpentine: %v", size[0], size[1], err)
		}
	}
}

func TestCheckPerfectRejectsCycle(t *testing.T) {
	g := NewWall4Grid(2, 2)
	g.RemoveWallBetween(NewCoord(0, 0), NewCoord(1, 0))
	g.RemoveWallBetween(NewCoord(1, 0), NewCoord(1, 1))
	g.RemoveWallBetween(NewCoord(1, 1), NewCoord(0, 1))
	g.RemoveWallBetween(NewCoord(0, 1), NewCoord(0, 0))

	if err := CheckPerfect(g); !errors.Is(err, ErrNotPerfect) {
		t.Errorf("cycle not detected: %v", err)
	}
}

func TestCheckPerfectRejectsDisconnected(t *testing.T) {
	g := NewWall4Grid(3, 1)
	g.RemoveWallBetween(NewCoord(0, 0), NewCoord(1, 0))
	if err := CheckPerfect(g); !errors.Is(err, ErrNotPerfect) {
		t.Errorf("disconnected grid accepted: %v", err)
	}
}

func TestCheckPerfectRejectsOneSidedPassage(t *testing.T) {
	g := NewWall4Grid(2, 1)
	g.RemoveWallBetween(NewCoord(0, 0), NewCoord(1, 0))
	g.walls[1] = All
	if err := CheckPerfect(g); !errors.Is(err, ErrNotPerfect) {
		t.Errorf("one-sided passage accepted: %v", err)
	}
}

func TestCheckPerfectRejectsBoundaryOpening(t *testing.T) {
	g := NewWall4Grid(1, 1)
	g.walls[0] = All.Without(North)
	if err := CheckPerfect(g); !errors.Is(err, ErrNotPerfect) {
		t.Errorf("opening to the outside accepted: %v", err)
	}
}

func TestReachable(t *testing.T) {
	g := NewWall4Grid(3, 2)
	g.RemoveWallBetween(NewCoord(0, 0), NewCoord(1, 0))
	g.RemoveWallBetween(NewCoord(1, 0), NewCoord(1, 1))

	seen := Reachable(g, NewCoord(0, 0))
	if seen.Size() != 3 {
		t.Errorf("reached %d cells, want 3", seen.Size())
	}
	for _, c := range []GridCoord2D{NewCoord(0, 0), NewCoord(1, 0), NewCoord(1, 1)} {
		if !seen.Has(c) {
			t.Errorf("%v not reached", c)
		}
	}
	if seen.Has(NewCoord(2, 0)) {
		t.Error("walled-off cell reached")
	}

	if Reachable(g, NewCoord(9, 9)).Size() != 0 {
		t.Error("out-of-bounds start should reach nothing")
	}
}

func TestAnalyze(t *testing.T) {
	g := serpentine(3, 2)
	s := Analyze(g)
	if s.Cells != 6 || s.Passages != 5 || s.Reachable != 6 {
		t.Errorf("Analyze = %+v", s)
	}
	if s.DeadEnds != 2 || s.Corridors != 4 || s.Junctions != 0 || s.Isolated != 0 {
		t.Errorf("Analyze counts = %+v", s)
	}

	empty := Analyze(NewWall4Grid(2, 2))
	if empty.Isolated != 4 || empty.Reachable != 1 {
		t.Errorf("Analyze on a walled grid = %+v", empty)
	}
}
