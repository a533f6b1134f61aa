// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"log/slog"

	"github.com/gogpu/geoviz"
)

// Option configures a Surface during creation.
//
// Example:
//
//	s, err := surface.New(1080, 670,
//	    surface.WithMode(surface.ModeCircle),
//	    surface.WithColor(surface.Blue),
//	    surface.WithFill(true),
//	)
type Option func(*options)

// options holds optional configuration for Surface creation.
type options struct {
	mode         Mode
	color        RGBA
	markerColor  RGBA
	background   RGBA
	fill         bool
	lineWidth    float64
	markerRadius float64
	pointRadius  float64
	labels       bool
	tolerance    geoviz.Tolerance
	logger       *slog.Logger
}

// defaultOptions returns the default surface options.
func defaultOptions() options {
	return options{
		mode:         ModeLine,
		color:        Black,
		markerColor:  Red,
		background:   White,
		lineWidth:    3,
		markerRadius: 3,
		pointRadius:  5,
		tolerance:    geoviz.DefaultTolerance,
		logger:       nil, // Falls back to geoviz.Logger()
	}
}

// WithMode sets the initial drawing mode.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithColor sets the initial shape color.
func WithColor(c RGBA) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithMarkerColor sets the color of intersection markers.
func WithMarkerColor(c RGBA) Option {
	return func(o *options) {
		o.markerColor = c
	}
}

// WithBackground sets the color the surface is cleared to.
func WithBackground(c RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithFill sets whether circles and rectangles are drawn filled.
func WithFill(fill bool) Option {
	return func(o *options) {
		o.fill = fill
	}
}

// WithLineWidth sets the stroke width in pixels.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.lineWidth = w
	}
}

// WithMarkerRadius sets the radius of intersection markers in pixels.
func WithMarkerRadius(r float64) Option {
	return func(o *options) {
		o.markerRadius = r
	}
}

// WithPointRadius sets the radius of the circles drawn for loaded points.
func WithPointRadius(r float64) Option {
	return func(o *options) {
		o.pointRadius = r
	}
}

// WithLabels enables coordinate labels next to intersection markers.
func WithLabels(on bool) Option {
	return func(o *options) {
		o.labels = on
	}
}

// WithTolerance sets the comparison policy of the intersection engine.
func WithTolerance(t geoviz.Tolerance) Option {
	return func(o *options) {
		o.tolerance = t
	}
}

// WithLogger sets the logger. By default the surface uses geoviz.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
