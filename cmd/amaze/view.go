package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/samdwyer/amaze/internal/config"
	"github.com/samdwyer/amaze/internal/palette"
	"github.com/samdwyer/amaze/internal/render"
	"github.com/samdwyer/amaze/internal/telemetry"
	"github.com/samdwyer/amaze/internal/ui"
	"github.com/samdwyer/amaze/internal/viewer"
)

const viewerLogFile = "amaze.log"

func runView(ctx context.Context, args []string, base config.Config, runID string, stderr io.Writer) error {
	cfg := base
	var verbose bool

	fs := flag.NewFlagSet("amaze view", flag.ContinueOnError)
	fs.SetOutput(stderr)
	commonFlags(fs, &cfg, &verbose)
	fs.StringVar(&cfg.Algorithm, "a", cfg.Algorithm, "generation algorithm")
	fs.StringVar(&cfg.Algorithm, "algorithm", cfg.Algorithm, "same as -a")
	if err := parseFlags(fs, args, &verbose); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	style, err := render.ParseStyle(cfg.Style)
	if err != nil {
		return err
	}
	if !style.IsText() {
		return fmt.Errorf("%w: %s cannot be shown in a terminal", render.ErrInvalidStyle, style)
	}
	palettes, err := palette.LoadRegistry()
	if err != nil {
		return err
	}
	pal, err := palettes.Get(cfg.Palette)
	if err != nil {
		return err
	}

	tracer := telemetry.Tracer("cli")
	ctx, span := tracer.Start(ctx, "cli.view")
	defer span.End()
	span.SetAttributes(telemetry.RunID(runID))

	// tcell owns the terminal from here on.
	logFile, err := os.OpenFile(viewerLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	defer log.SetOutput(stderr)

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}

	v, err := viewer.New(screen, viewer.Options{
		Seed:      cfg.Seed,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Style:     style,
		Algorithm: cfg.Algorithm,
		Palette:   pal,
		Logger:    log,
		RunID:     runID,
	})
	if err != nil {
		screen.Close()
		return err
	}

	log.WithField("run_id", runID).Info("viewer started")
	if err := v.Run(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
