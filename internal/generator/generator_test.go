package generator

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestNewKnownAlgorithm(t *testing.T) {
	for _, name := range []string{"recursive-backtracker", "Recursive-Backtracker", " recursive-backtracker "} {
		gen, err := New(name, 0xdeadbeef)
		if err != nil {
			t.Errorf("New(%q): %v", name, err)
			continue
		}
		grid, err := gen.Generate(context.Background(), 6, 6)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if got := doorRows(grid); got != "24EA4A/5C95CB/6CCCA3/5A2693/25B5C9/5CDCC8" {
			t.Errorf("New(%q) maze = %s", name, got)
		}
	}
}

func TestNewUnknownAlgorithm(t *testing.T) {
	for _, name := range []string{"", "prim", "kruskal"} {
		if _, err := New(name, 1); !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("New(%q) error = %v, want ErrUnknownAlgorithm", name, err)
		}
	}
}

func TestAlgorithms(t *testing.T) {
	if got := Algorithms(); !slices.Equal(got, []string{RecursiveBacktracker}) {
		t.Errorf("Algorithms() = %v", got)
	}
}
