package generator

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/amaze/internal/maze"
	"github.com/samdwyer/amaze/internal/rng"
	"github.com/samdwyer/amaze/internal/telemetry"
)

// RecursiveBacktracker4 carves a maze with a randomized depth-first search
// over an explicit stack, starting from the top-left cell.
//
// The generator stores only its key. Every Generate call starts a fresh
// random stream from that key, so repeated calls return identical mazes.
type RecursiveBacktracker4 struct {
	key  rng.Key
	seed uint64
}

// NewRandom creates a generator keyed from operating system entropy.
func NewRandom() (*RecursiveBacktracker4, error) {
	key, err := rng.EntropyKey()
	if err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return &RecursiveBacktracker4{key: key}, nil
}

// NewFromSeed creates a generator that reproduces the same maze for the same
// seed and size. Seed 0 is reserved and means NewRandom.
func NewFromSeed(seed uint64) (*RecursiveBacktracker4, error) {
	if seed == 0 {
		return NewRandom()
	}
	return &RecursiveBacktracker4{key: rng.KeyFromUint64(seed), seed: seed}, nil
}

// Seed returns the seed the generator was created from, or 0 when it was
// keyed from entropy.
func (g *RecursiveBacktracker4) Seed() uint64 {
	return g.seed
}

// Generate carves a width x height maze. The result is a spanning tree:
// every cell is reachable and there are exactly width*height-1 passages.
func (g *RecursiveBacktracker4) Generate(ctx context.Context, width, height int) (*maze.Wall4Grid, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("generator")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	grid, steps := g.carve(width, height)

	seedKind := "fixed"
	if g.seed == 0 {
		seedKind = "entropy"
	}
	span.SetAttributes(
		attribute.String("maze.algorithm", RecursiveBacktracker),
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
		attribute.String("maze.seed_kind", seedKind),
		attribute.Int("maze.passages", grid.Passages()),
		attribute.Int("maze.steps", steps),
		attribute.Int64("maze.generation_us", time.Since(startTime).Microseconds()),
	)
	if g.seed != 0 {
		span.SetAttributes(attribute.String("maze.seed", fmt.Sprintf("%#x", g.seed)))
	}

	return grid, nil
}

// carve runs the search and returns the grid and the number of loop steps.
func (g *RecursiveBacktracker4) carve(width, height int) (*maze.Wall4Grid, int) {
	src := rng.New(g.key)
	grid := maze.NewWall4Grid(width, height)
	visited := maze.NewVisitMapLike(grid)
	if visited.Width() != grid.Width() || visited.Height() != grid.Height() {
		panic(fmt.Sprintf("generator: visit map %dx%d does not match grid %dx%d",
			visited.Width(), visited.Height(), grid.Width(), grid.Height()))
	}

	current := maze.GridCoord2D{}
	backtrace := make([]maze.GridCoord2D, 0, width*height)
	steps := 0

	for {
		steps++
		visited.MarkVisited(current)

		// A value is drawn on every step, backtracking included, so the
		// stream position depends only on the number of steps taken.
		roll := src.Uint64()

		neighbors := visited.UnvisitedNeighbors(current)
		if len(neighbors) > 0 {
			next := neighbors[roll%uint64(len(neighbors))]
			backtrace = append(backtrace, current)
			grid.RemoveWallBetween(current, next)
			current = next
			continue
		}

		if len(backtrace) == 0 {
			break
		}
		current = backtrace[len(backtrace)-1]
		backtrace = backtrace[:len(backtrace)-1]
	}

	return grid, steps
}
