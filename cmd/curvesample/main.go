// Command curvesample discretizes a set of curves adaptively and reports how
// many points each discretization needs.
//
// Without -config, the built-in curves are used. Use -dump-config to print
// them as a starting point for a configuration file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"honnef.co/go/adaptive"
	"honnef.co/go/adaptive/assess"
	"honnef.co/go/adaptive/internal/config"
	"honnef.co/go/adaptive/internal/plot"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	code := exitCode(err)
	if code == 1 {
		fmt.Fprintln(os.Stderr, "curvesample:", err)
	}
	os.Exit(code)
}

// errUsage marks command line errors. The flag set has already reported
// them.
var errUsage = errors.New("usage error")

// exitCode follows the flag package: 0 after -h, 2 for bad usage.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		return 1
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("curvesample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML configuration `file`")
		threshold  = fs.Float64("threshold", 0, "acceleration threshold; overrides the configuration")
		workers    = fs.Int("workers", -1, "sampling goroutines, 0 for one per CPU; overrides the configuration")
		svgDir     = fs.String("svg", "", "write an SVG of every curve to `dir`")
		pngDir     = fs.String("png", "", "write a PNG of every curve to `dir`")
		verbose    = fs.Bool("v", false, "log sampling details")
		dump       = fs.Bool("dump-config", false, "print the effective configuration and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	adaptive.SetLogger(log)
	defer adaptive.SetLogger(nil)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}
	if *threshold != 0 {
		cfg.Threshold = *threshold
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *dump {
		return cfg.Encode(stdout)
	}

	for _, dir := range []string{*svgDir, *pngDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	opts := adaptive.DiscretizeOptions{Threshold: cfg.Threshold, Workers: cfg.Workers}
	for i, cs := range cfg.Curves {
		c, err := cs.Build()
		if err != nil {
			return fmt.Errorf("curve %d: %w", i, err)
		}
		fmt.Fprintf(stdout, "== %s ==\n", cs.Label())

		a, ts, err := assess.Curve(ctx, c, opts)
		if errors.Is(err, adaptive.ErrUnimplemented) {
			log.Warn("skipping curve", "curve", cs.Label(), "err", err)
			fmt.Fprintf(stdout, "%s is not implemented\n", cs.Kind)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", cs.Label(), err)
		}
		if err := a.Report(stdout); err != nil {
			return err
		}
		log.Info("assessed curve",
			"curve", cs.Label(),
			"points", a.Points,
			"max_acc", a.MaxAcceleration,
			"start_vel", a.StartVelocity,
			"end_vel", a.EndVelocity)

		pts := adaptive.EvalAll(c, ts)
		name := fileName(i, cs.Label())
		if *svgDir != "" {
			if err := writeFile(filepath.Join(*svgDir, name+".svg"), func(w io.Writer) error {
				return writeSVG(w, pts)
			}); err != nil {
				return err
			}
		}
		if *pngDir != "" {
			if err := writeFile(filepath.Join(*pngDir, name+".png"), func(w io.Writer) error {
				return plot.WritePNG(w, pts, plot.DefaultOptions)
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func fileName(i int, label string) string {
	label = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, label)
	return fmt.Sprintf("%02d-%s", i, label)
}

func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

const (
	svgSize   = 512
	svgMargin = 16
)

// writeSVG writes a standalone SVG document showing the polyline through pts.
func writeSVG(w io.Writer, pts []adaptive.Point) error {
	aff := adaptive.FitRect(
		adaptive.BoundingBox(pts),
		adaptive.Rect{X0: svgMargin, Y0: svgMargin, X1: svgSize - svgMargin, Y1: svgSize - svgMargin},
		true)
	mapped := make([]adaptive.Point, len(pts))
	for i, pt := range pts {
		mapped[i] = pt.Transform(aff)
	}

	if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`+"\n", svgSize, svgSize); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<path fill="none" stroke="black" d="`); err != nil {
		return err
	}
	if err := adaptive.WritePolylineSVG(w, mapped, adaptive.SVGOptions{MaxPrecision: 3}); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\"/>\n"); err != nil {
		return err
	}
	for i, pt := range mapped {
		if i > 0 && pt == mapped[i-1] {
			continue
		}
		if _, err := fmt.Fprintf(w, `<circle cx="%.3f" cy="%.3f" r="2" fill="red"/>`+"\n", pt.X, pt.Y); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}
