// Package viewer provides the interactive terminal maze viewer.
package viewer

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/amaze/internal/config"
	"github.com/samdwyer/amaze/internal/generator"
	"github.com/samdwyer/amaze/internal/maze"
	"github.com/samdwyer/amaze/internal/palette"
	"github.com/samdwyer/amaze/internal/render"
	"github.com/samdwyer/amaze/internal/rng"
	"github.com/samdwyer/amaze/internal/telemetry"
	"github.com/samdwyer/amaze/internal/ui"
)

// Size limits for interactive resizing.
const (
	MinSide = 1
	MaxSide = 200
)

// Display is the terminal the viewer draws on. *ui.Screen implements it.
type Display interface {
	ui.Canvas
	Clear()
	Show()
	Sync()
	PollEvent() tcell.Event
	Close()
}

// Options configure a Viewer.
type Options struct {
	Seed      uint64 // 0 picks a random seed
	Width     int
	Height    int
	Style     render.Style
	Algorithm string
	Palette   *palette.Def
	Logger    *logrus.Logger
	RunID     string
}

// Viewer holds the viewer state. The current grid is guarded by mu so a
// regeneration never swaps it out under a draw.
type Viewer struct {
	display  Display
	renderer *ui.Renderer
	log      *logrus.Entry

	algorithm string
	palette   *palette.Def
	running   bool

	mu      sync.Mutex
	grid    *maze.Wall4Grid
	seed    uint64
	width   int
	height  int
	style   render.Style
	offsetX int
	offsetY int
}

// New creates a viewer on display. Only text styles can be viewed.
func New(display Display, opts Options) (*Viewer, error) {
	if !opts.Style.IsText() {
		return nil, fmt.Errorf("%w: %s cannot be shown in a terminal", render.ErrInvalidStyle, opts.Style)
	}
	if opts.Palette == nil {
		return nil, fmt.Errorf("viewer: no palette")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
	}

	return &Viewer{
		display:   display,
		renderer:  ui.NewRenderer(display),
		log:       logger.WithField("run_id", opts.RunID),
		algorithm: opts.Algorithm,
		palette:   opts.Palette,
		running:   true,
		seed:      opts.Seed,
		width:     clampSide(opts.Width),
		height:    clampSide(opts.Height),
		style:     opts.Style,
	}, nil
}

// Run executes the main viewer loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.display.Close()

	if err := v.init(ctx); err != nil {
		return err
	}

	for v.running {
		v.draw()
		v.handleInput(ctx)
	}
	return nil
}

func (v *Viewer) init(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.init")
	defer span.End()

	if v.seed == 0 {
		seed, err := rng.EntropySeed()
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("pick seed: %w", err)
		}
		v.seed = seed
	}

	span.SetAttributes(
		attribute.Int("maze.width", v.width),
		attribute.Int("maze.height", v.height),
		attribute.String("viewer.style", v.style.String()),
		attribute.String("viewer.palette", v.palette.ID),
	)
	return v.regenerate(ctx)
}

// regenerate builds a maze for the current seed and size and swaps it in.
func (v *Viewer) regenerate(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.regenerate")
	defer span.End()

	v.mu.Lock()
	seed, width, height := v.seed, v.width, v.height
	v.mu.Unlock()

	gen, err := generator.New(v.algorithm, seed)
	if err != nil {
		span.RecordError(err)
		return err
	}
	grid, err := gen.Generate(ctx, width, height)
	if err != nil {
		span.RecordError(err)
		return err
	}

	v.mu.Lock()
	v.grid = grid
	v.clampOffsetLocked()
	v.mu.Unlock()

	span.SetAttributes(
		attribute.String("maze.seed", config.FormatSeed(seed)),
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
	)
	v.log.WithFields(logrus.Fields{
		"seed":   config.FormatSeed(seed),
		"width":  width,
		"height": height,
	}).Debug("maze regenerated")
	return nil
}

// draw renders the current frame.
func (v *Viewer) draw() {
	v.mu.Lock()
	frame := ui.Frame{
		Grid:    v.grid,
		Style:   v.style,
		OffsetX: v.offsetX,
		OffsetY: v.offsetY,
		Status:  v.statusLocked(),
		Wall:    v.palette.WallColor(),
		Path:    v.palette.PathColor(),
		Accent:  v.palette.AccentColor(),
	}
	v.mu.Unlock()

	v.display.Clear()
	v.renderer.Render(frame)
	v.display.Show()
}

func (v *Viewer) statusLocked() string {
	return fmt.Sprintf("seed %s  %dx%d  %s  | arrows/hjkl pan  r new  n/p seed  +/- width  ]/[ height  s style  q quit",
		config.FormatSeed(v.seed), v.width, v.height, v.style)
}

// clampOffsetLocked keeps the viewport inside the maze.
func (v *Viewer) clampOffsetLocked() {
	viewW, viewH := v.renderer.MazeViewport()
	maxX, maxY := 0, 0
	if v.grid != nil {
		maxX = max(v.grid.Width()-viewW, 0)
		maxY = max(v.grid.Height()-viewH, 0)
	}
	v.offsetX = min(max(v.offsetX, 0), maxX)
	v.offsetY = min(max(v.offsetY, 0), maxY)
}

func clampSide(n int) int {
	return min(max(n, MinSide), MaxSide)
}

// Snapshot is a copy of the viewer state for callers and tests.
type Snapshot struct {
	Seed    uint64
	Width   int
	Height  int
	Style   render.Style
	OffsetX int
	OffsetY int
	Grid    *maze.Wall4Grid
}

// Snapshot returns the current state.
func (v *Viewer) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		Seed:    v.seed,
		Width:   v.width,
		Height:  v.height,
		Style:   v.style,
		OffsetX: v.offsetX,
		OffsetY: v.offsetY,
		Grid:    v.grid,
	}
}
