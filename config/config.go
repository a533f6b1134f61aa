// Package config reads the YAML configuration of the drawing surface.
//
// A configuration file sets the canvas size, the initial drawing mode, the
// colours, stroke widths and the comparison tolerance of the intersection
// engine:
//
//	width: 1080
//	height: 670
//	mode: circle
//	color: "#1f77b4"
//	marker_color: "#ff0000"
//	labels: true
//	tolerance:
//	  abs: 1e-9
//	  rel: 1e-9
//
// Keys that are left out keep their Default values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/geoviz"
	"github.com/gogpu/geoviz/surface"
)

// ErrInvalidConfig is returned when a configuration value is out of range
// or cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the YAML document.
type Config struct {
	Width        int       `yaml:"width"`
	Height       int       `yaml:"height"`
	Mode         string    `yaml:"mode"`
	Color        string    `yaml:"color"`
	MarkerColor  string    `yaml:"marker_color"`
	Background   string    `yaml:"background"`
	Fill         bool      `yaml:"fill"`
	LineWidth    float64   `yaml:"line_width"`
	MarkerRadius float64   `yaml:"marker_radius"`
	PointRadius  float64   `yaml:"point_radius"`
	Labels       bool      `yaml:"labels"`
	Tolerance    Tolerance `yaml:"tolerance"`
}

// Tolerance mirrors geoviz.Tolerance.
type Tolerance struct {
	Abs float64 `yaml:"abs"`
	Rel float64 `yaml:"rel"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Width:        1080,
		Height:       670,
		Mode:         surface.ModeLine.String(),
		Color:        "#000000",
		MarkerColor:  "#ff0000",
		Background:   "#ffffff",
		LineWidth:    3,
		MarkerRadius: 3,
		PointRadius:  5,
		Tolerance: Tolerance{
			Abs: geoviz.DefaultTolerance.Abs,
			Rel: geoviz.DefaultTolerance.Rel,
		},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over Default and validates the result.
// Unknown keys are rejected. An empty document yields Default.
func Parse(b []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width and height must be > 0, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if _, err := surface.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: mode: %w", ErrInvalidConfig, err)
	}
	for _, f := range []struct{ name, value string }{
		{"color", c.Color},
		{"marker_color", c.MarkerColor},
		{"background", c.Background},
	} {
		if _, err := surface.ParseHex(f.value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, f.name, err)
		}
	}
	for _, f := range []struct {
		name  string
		value float64
		zero  bool
	}{
		{"line_width", c.LineWidth, false},
		{"marker_radius", c.MarkerRadius, true},
		{"point_radius", c.PointRadius, true},
		{"tolerance.abs", c.Tolerance.Abs, true},
		{"tolerance.rel", c.Tolerance.Rel, true},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 || (f.value == 0 && !f.zero) {
			return fmt.Errorf("%w: %s out of range: %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// EngineTolerance returns the comparison policy for the intersection engine.
func (c Config) EngineTolerance() geoviz.Tolerance {
	return geoviz.Tolerance{Abs: c.Tolerance.Abs, Rel: c.Tolerance.Rel}
}

// SurfaceOptions maps the configuration to surface options. The size is
// passed to surface.New separately.
func (c Config) SurfaceOptions() ([]surface.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Validate has already parsed every field once.
	mode, _ := surface.ParseMode(c.Mode)
	col, _ := surface.ParseHex(c.Color)
	marker, _ := surface.ParseHex(c.MarkerColor)
	bg, _ := surface.ParseHex(c.Background)

	return []surface.Option{
		surface.WithMode(mode),
		surface.WithColor(col),
		surface.WithMarkerColor(marker),
		surface.WithBackground(bg),
		surface.WithFill(c.Fill),
		surface.WithLineWidth(c.LineWidth),
		surface.WithMarkerRadius(c.MarkerRadius),
		surface.WithPointRadius(c.PointRadius),
		surface.WithLabels(c.Labels),
		surface.WithTolerance(c.EngineTolerance()),
	}, nil
}
