// Package generator builds perfect mazes on a Wall4Grid.
package generator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samdwyer/amaze/internal/maze"
)

// RecursiveBacktracker is the registry name of the depth-first carver.
const RecursiveBacktracker = "recursive-backtracker"

var (
	// ErrUnknownAlgorithm is returned by New for an unregistered algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown maze algorithm")
	// ErrInvalidDimensions is returned when a maze is requested with a side below 1.
	ErrInvalidDimensions = errors.New("maze width and height must be at least 1")
)

// MazeGenerator2D produces a fully carved maze of the requested size.
type MazeGenerator2D interface {
	Generate(ctx context.Context, width, height int) (*maze.Wall4Grid, error)
}

type factory func(seed uint64) (MazeGenerator2D, error)

var algorithms = map[string]factory{
	RecursiveBacktracker: func(seed uint64) (MazeGenerator2D, error) {
		return NewFromSeed(seed)
	},
}

// New returns the named generator seeded with seed. Names are matched
// case-insensitively. A seed of 0 requests an entropy-seeded generator.
func New(name string, seed uint64) (MazeGenerator2D, error) {
	f, ok := algorithms[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownAlgorithm, name, strings.Join(Algorithms(), ", "))
	}
	return f(seed)
}

// Algorithms lists the registered algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}
