// Package config loads the settings of the curvesample command from TOML.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/adaptive"
)

// ErrUnknownKind is matched by errors about curve kinds that don't exist.
var ErrUnknownKind = errors.New("unknown curve kind")

// ErrNonFinite is matched by errors about curves with NaN or infinite
// parameters.
var ErrNonFinite = errors.New("curve parameters must be finite")

// Config is the top-level configuration.
type Config struct {
	// Threshold is the acceleration threshold passed to the sampler.
	Threshold float64 `toml:"threshold"`
	// Workers is the number of sampling goroutines; 0 uses one per CPU.
	Workers int         `toml:"workers"`
	Curves  []CurveSpec `toml:"curve"`
}

// CurveSpec describes one curve. Which fields are used depends on Kind:
//
//   - line: Start, End
//   - ellipse: Center, Radii
//   - circle: Center, Radius
//   - spiral: Center, Radius, Growth, StartAngle, Sweep; all zero selects
//     [adaptive.NewSpiral] moved to Center
//   - parabola, hyperbola: none
type CurveSpec struct {
	Name       string     `toml:"name,omitempty"`
	Kind       string     `toml:"kind"`
	Start      [2]float64 `toml:"start,omitempty"`
	End        [2]float64 `toml:"end,omitempty"`
	Center     [2]float64 `toml:"center,omitempty"`
	Radii      [2]float64 `toml:"radii,omitempty"`
	Radius     float64    `toml:"radius,omitempty"`
	Growth     float64    `toml:"growth,omitempty"`
	StartAngle float64    `toml:"start_angle,omitempty"`
	Sweep      float64    `toml:"sweep,omitempty"`
}

// Default returns the built-in configuration: a straight line, an ellipse,
// a circle, a very large ellipse and a spiral, sampled with
// [adaptive.DefaultThreshold] on a single worker.
func Default() Config {
	return Config{
		Threshold: adaptive.DefaultThreshold,
		Workers:   1,
		Curves: []CurveSpec{
			{Name: "straight", Kind: "line", Start: [2]float64{0, 0}, End: [2]float64{1, 1}},
			{Name: "ellipse", Kind: "ellipse", Center: [2]float64{1, 1}, Radii: [2]float64{3, 2}},
			{Name: "circle", Kind: "circle", Center: [2]float64{1, 1}, Radius: 5},
			{Name: "large ellipse", Kind: "ellipse", Center: [2]float64{1, 1}, Radii: [2]float64{10000, 20000}},
			{Name: "spiral", Kind: "spiral"},
		},
	}
}

// Load reads the configuration file at path. See [Decode].
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a TOML configuration from r. Settings that are absent keep
// their values from [Default]; a file without curves uses the default
// curves. Unknown keys are errors.
func Decode(r io.Reader) (Config, error) {
	def := Default()
	cfg := Config{Threshold: def.Threshold, Workers: def.Workers}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Curves) == 0 {
		cfg.Curves = def.Curves
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg to w as TOML.
func (cfg Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks the settings the sampler relies on but doesn't check
// itself.
func (cfg Config) Validate() error {
	if math.IsNaN(cfg.Threshold) || math.IsInf(cfg.Threshold, 0) || cfg.Threshold <= 0 {
		return fmt.Errorf("threshold must be a positive number, got %g", cfg.Threshold)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	for i, cs := range cfg.Curves {
		if _, err := cs.Build(); err != nil {
			return fmt.Errorf("curve %d: %w", i, err)
		}
	}
	return nil
}

// Label returns the curve's name, falling back to its kind.
func (cs CurveSpec) Label() string {
	if cs.Name != "" {
		return cs.Name
	}
	return cs.Kind
}

// finiteChecker is implemented by curves with numeric parameters.
type finiteChecker interface {
	IsNaN() bool
	IsInf() bool
}

// Build constructs the curve described by cs. Curves with NaN or infinite
// parameters are rejected with an error matching [ErrNonFinite].
func (cs CurveSpec) Build() (adaptive.Curve, error) {
	c, err := cs.build()
	if err != nil {
		return nil, err
	}
	if fc, ok := c.(finiteChecker); ok && (fc.IsNaN() || fc.IsInf()) {
		return nil, fmt.Errorf("%s: %w", cs.Label(), ErrNonFinite)
	}
	return c, nil
}

func (cs CurveSpec) build() (adaptive.Curve, error) {
	center := pt(cs.Center)
	switch strings.ToLower(cs.Kind) {
	case "line":
		return adaptive.Line{P0: pt(cs.Start), P1: pt(cs.End)}, nil
	case "ellipse":
		return adaptive.NewEllipse(center, cs.Radii[0], cs.Radii[1]), nil
	case "circle":
		return adaptive.NewCircle(center, cs.Radius), nil
	case "spiral":
		if cs.Radius == 0 && cs.Growth == 0 && cs.StartAngle == 0 && cs.Sweep == 0 {
			s := adaptive.NewSpiral()
			s.Center = center
			return s, nil
		}
		return adaptive.Spiral{
			Center:     center,
			Radius:     cs.Radius,
			Growth:     cs.Growth,
			StartAngle: cs.StartAngle,
			Sweep:      cs.Sweep,
		}, nil
	case "parabola":
		return adaptive.Parabola{}, nil
	case "hyperbola":
		return adaptive.Hyperbola{}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, cs.Kind)
	}
}

func pt(xy [2]float64) adaptive.Point {
	return adaptive.Pt(xy[0], xy[1])
}
