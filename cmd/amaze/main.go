// Package main is the entry point for amaze.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/amaze/internal/config"
	"github.com/samdwyer/amaze/internal/generator"
	"github.com/samdwyer/amaze/internal/palette"
	"github.com/samdwyer/amaze/internal/render"
	"github.com/samdwyer/amaze/internal/telemetry"
)

var log = logrus.New()

const usage = `usage: amaze <command> [flags]

commands:
  gen   generate a maze and print it
  view  browse mazes in the terminal

Run "amaze <command> -h" for the flags of a command.
`

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetLevel(logrus.InfoLevel)

	// Not fatal - env vars might be set directly.
	if loaded, err := config.LoadDotEnv(); err != nil {
		log.WithError(err).Warn(".env file not loaded")
	} else if loaded {
		log.Debug("loaded .env")
	}

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	base, err := config.FromEnv()
	if err != nil {
		log.WithError(err).Error("invalid environment configuration")
		return exitUsage
	}

	runID := uuid.NewString()
	ctx := context.Background()
	shutdown := setupTelemetry(ctx)
	defer shutdown()

	switch args[0] {
	case "gen":
		err = runGen(ctx, args[1:], base, runID, stdout, stderr)
	case "view":
		err = runView(ctx, args[1:], base, runID, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "amaze: unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case isUsageError(err):
		log.WithError(err).WithField("run_id", runID).Error("invalid arguments")
		return exitUsage
	default:
		log.WithError(err).WithField("run_id", runID).Error(args[0] + " failed")
		return exitError
	}
}

// usageError marks a flag parsing failure that the FlagSet has already reported.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func isUsageError(err error) bool {
	var ue usageError
	if errors.As(err, &ue) {
		return true
	}
	for _, target := range []error{
		config.ErrInvalidSeed,
		config.ErrInvalidDimensions,
		render.ErrInvalidStyle,
		generator.ErrUnknownAlgorithm,
		generator.ErrInvalidDimensions,
		palette.ErrUnknownPalette,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// setupTelemetry starts tracing when Honeycomb or an OTLP endpoint is
// configured. Telemetry failure is never fatal.
func setupTelemetry(ctx context.Context) func() {
	if !config.ApplyOTelEnv() && !telemetry.Enabled() {
		log.Debug("telemetry disabled")
		return func() {}
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed, running without observability")
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			log.WithError(err).Warn("error shutting down telemetry")
		}
	}
}

// seedValue is a flag.Value accepting decimal or 0x-prefixed seeds.
type seedValue struct{ seed *uint64 }

func (s seedValue) String() string {
	if s.seed == nil {
		return "0"
	}
	return config.FormatSeed(*s.seed)
}

func (s seedValue) Set(text string) error {
	seed, err := config.ParseSeed(text)
	if err != nil {
		return err
	}
	*s.seed = seed
	return nil
}

// commonFlags registers the flags shared by gen and view on fs, with short
// and long spellings bound to the same variables.
func commonFlags(fs *flag.FlagSet, cfg *config.Config, verbose *bool) {
	fs.Var(seedValue{&cfg.Seed}, "s", "maze seed, decimal or 0x hex; 0 picks a random maze")
	fs.Var(seedValue{&cfg.Seed}, "seed", "same as -s")
	fs.IntVar(&cfg.Width, "W", cfg.Width, "maze width in cells")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "same as -W")
	fs.IntVar(&cfg.Height, "H", cfg.Height, "maze height in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "same as -H")
	fs.StringVar(&cfg.Style, "style", cfg.Style, "output style: heavy, thin, double, hex, ppm, pbm")
	fs.StringVar(&cfg.Palette, "palette", cfg.Palette, "colour palette for ppm and the viewer")
	fs.BoolVar(verbose, "v", false, "debug logging")
	fs.BoolVar(verbose, "verbose", false, "same as -v")
}

func parseFlags(fs *flag.FlagSet, args []string, verbose *bool) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err}
	}
	if fs.NArg() > 0 {
		return usageError{fmt.Errorf("unexpected arguments: %v", fs.Args())}
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return nil
}
