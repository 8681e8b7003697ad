// Command wonky reports glyphs whose outlines become rougher when their
// overlaps are removed.
//
// Usage:
//
//	wonky [flags] FONT
//
// For every named instance of FONT, or its default location if it has none,
// wonky scores each simple glyph before and after overlap removal and prints
// the glyphs whose roughness increased by more than the tolerance.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/wonky"
	"honnef.co/go/wonky/curve"
	"honnef.co/go/wonky/internal/fontfile"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Config holds the settings that can be read from a configuration file.
// Command-line flags take precedence over it.
type Config struct {
	Tolerance   float64 `toml:"tolerance"`
	MaxIncrease float64 `toml:"max_increase"`
	// Glyphset is a whitespace-separated list of glyph names.
	Glyphset string `toml:"glyphset"`
}

func defaultConfig() Config {
	opts := wonky.DefaultOptions()
	return Config{
		Tolerance:   opts.Tolerance,
		MaxIncrease: opts.MaxIncrease,
	}
}

// loadConfig decodes the TOML file filename into cfg. Keys missing from the
// file leave the corresponding fields of cfg untouched.
func loadConfig(filename string, cfg *Config) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return decodeConfig(f, cfg)
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return err
	}
	return nil
}

func (cfg Config) validate() error {
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) {
		return fmt.Errorf("invalid tolerance %g", cfg.Tolerance)
	}
	if cfg.MaxIncrease < 0 || math.IsNaN(cfg.MaxIncrease) {
		return fmt.Errorf("invalid max-increase %g", cfg.MaxIncrease)
	}
	return nil
}

func (cfg Config) options(logger *slog.Logger) wonky.Options {
	return wonky.Options{
		Tolerance:   cfg.Tolerance,
		MaxIncrease: cfg.MaxIncrease,
		Glyphs:      strings.Fields(cfg.Glyphset),
		Logger:      logger,
	}
}

func formatInstance(inst wonky.Instance) string {
	return "Testing instance " + inst.String()
}

func formatFinding(f wonky.Finding) string {
	if f.Comparison.FromZero() {
		return fmt.Sprintf(" Wonkiness appeared in glyph %s (was 0, now %.4f)", f.Glyph, f.Comparison.After)
	}
	return fmt.Sprintf(" Wonkiness increased by %.2f%% in glyph %s", f.Increase, f.Glyph)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defaults := defaultConfig()
	fs := flag.NewFlagSet("wonky", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		glyphset    = fs.String("glyphset", "", "whitespace-separated list of glyph names to check (default all)")
		tolerance   = fs.Float64("tolerance", defaults.Tolerance, "tolerated relative increase in roughness")
		maxIncrease = fs.Float64("max-increase", defaults.MaxIncrease, "suppress increases of at least this many percent, 0 disables")
		configFile  = fs.String("config", "", "read settings from TOML `file`")
		verbose     = fs.Bool("v", false, "log diagnostics to stderr")
		svgPath     = fs.String("path", "", "check a single SVG `path` instead of a font")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "wonky - find glyphs that get rougher when overlaps are removed\n\n")
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  wonky [options] <font>\n")
		fmt.Fprintf(stderr, "  wonky [options] -path <svg path>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := defaults
	if *configFile != "" {
		if err := loadConfig(*configFile, &cfg); err != nil {
			fmt.Fprintf(stderr, "wonky: config %s: %v\n", *configFile, err)
			return exitError
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "glyphset":
			cfg.Glyphset = *glyphset
		case "tolerance":
			cfg.Tolerance = *tolerance
		case "max-increase":
			cfg.MaxIncrease = *maxIncrease
		}
	})
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "wonky: %v\n", err)
		return exitUsage
	}
	opts := cfg.options(logger)

	if *svgPath != "" {
		if fs.NArg() != 0 {
			fs.Usage()
			return exitUsage
		}
		p, err := curve.ParseSVG(*svgPath)
		if err != nil {
			fmt.Fprintf(stderr, "wonky: %v\n", err)
			return exitError
		}
		checkPath(stdout, p, opts)
		return exitOK
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	f, err := fontfile.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "wonky: %v\n", err)
		return exitError
	}
	opts.OnInstance = func(inst wonky.Instance) {
		if !inst.IsDefault() {
			fmt.Fprintln(stdout, formatInstance(inst))
		}
	}
	err = wonky.Check(ctx, f, opts, func(fd wonky.Finding) error {
		_, err := fmt.Fprintln(stdout, formatFinding(fd))
		return err
	})
	if err != nil {
		fmt.Fprintf(stderr, "wonky: %v\n", err)
		return exitError
	}
	return exitOK
}

// checkPath prints the roughness of p before and after overlap removal,
// followed by a finding line if the increase would be reported for a glyph.
func checkPath(w io.Writer, p curve.BezPath, opts wonky.Options) {
	c := opts.Compare(p)
	fmt.Fprintf(w, "Roughness before %.4f, after %.4f\n", c.Before, c.After)
	increase, ok := opts.Reportable(c)
	if !ok {
		return
	}
	fmt.Fprintln(w, formatFinding(wonky.Finding{
		Glyph:      "path",
		Comparison: c,
		Increase:   increase,
	}))
}
