package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/amaze/internal/config"
	"github.com/samdwyer/amaze/internal/generator"
	"github.com/samdwyer/amaze/internal/maze"
	"github.com/samdwyer/amaze/internal/palette"
	"github.com/samdwyer/amaze/internal/render"
	"github.com/samdwyer/amaze/internal/telemetry"
)

type genOptions struct {
	config.Config
	noLineBreaks bool
	stats        bool
	verify       bool
	output       string
	verbose      bool
}

func runGen(ctx context.Context, args []string, base config.Config, runID string, stdout, stderr io.Writer) (err error) {
	opts := genOptions{Config: base}

	fs := flag.NewFlagSet("amaze gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	commonFlags(fs, &opts.Config, &opts.verbose)
	fs.StringVar(&opts.Algorithm, "a", opts.Algorithm, "generation algorithm")
	fs.StringVar(&opts.Algorithm, "algorithm", opts.Algorithm, "same as -a")
	fs.BoolVar(&opts.noLineBreaks, "no-line-breaks", false, "print text styles on a single line")
	fs.BoolVar(&opts.stats, "stats", false, "log maze statistics")
	fs.BoolVar(&opts.verify, "verify", false, "check the maze is a spanning tree before printing")
	fs.StringVar(&opts.output, "o", "", "write to file instead of stdout")
	fs.StringVar(&opts.output, "output", "", "same as -o")
	if err := parseFlags(fs, args, &opts.verbose); err != nil {
		return err
	}

	tracer := telemetry.Tracer("cli")
	ctx, span := tracer.Start(ctx, "cli.gen")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
	}()

	if err := opts.Validate(); err != nil {
		return err
	}
	style, err := render.ParseStyle(opts.Style)
	if err != nil {
		return err
	}
	palettes, err := palette.LoadRegistry()
	if err != nil {
		return err
	}
	pal, err := palettes.Get(opts.Palette)
	if err != nil {
		return err
	}
	gen, err := generator.New(opts.Algorithm, opts.Seed)
	if err != nil {
		return err
	}

	span.SetAttributes(
		telemetry.RunID(runID),
		attribute.String("maze.algorithm", opts.Algorithm),
		attribute.Int("maze.width", opts.Width),
		attribute.Int("maze.height", opts.Height),
		attribute.String("render.style", style.String()),
	)
	fields := logrus.Fields{
		"run_id":    runID,
		"algorithm": opts.Algorithm,
		"width":     opts.Width,
		"height":    opts.Height,
		"style":     style.String(),
	}
	if opts.Seed == 0 {
		fields["seed"] = "entropy"
	} else {
		fields["seed"] = config.FormatSeed(opts.Seed)
	}

	grid, err := gen.Generate(ctx, opts.Width, opts.Height)
	if err != nil {
		return err
	}
	log.WithFields(fields).Debug("maze generated")

	if opts.verify {
		if err := maze.CheckPerfect(grid); err != nil {
			return err
		}
		log.WithFields(fields).Debug("maze verified")
	}

	if opts.stats {
		s := maze.Analyze(grid)
		log.WithFields(fields).WithFields(logrus.Fields{
			"cells":     s.Cells,
			"passages":  s.Passages,
			"dead_ends": s.DeadEnds,
			"corridors": s.Corridors,
			"junctions": s.Junctions,
			"isolated":  s.Isolated,
			"reachable": s.Reachable,
		}).Info("maze stats")
	}

	r, err := render.New(style, !opts.noLineBreaks)
	if err != nil {
		return err
	}
	if img, ok := r.(*render.ImageRenderer); ok {
		img.SetColors(pal.WallColor(), pal.PathColor())
	}

	out := stdout
	if opts.output != "" {
		f, ferr := os.Create(opts.output)
		if ferr != nil {
			return fmt.Errorf("create output: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		out = f
	}

	return r.Render(ctx, out, grid)
}
