// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads mandelzoom settings from a TOML file.
//
//	width = 800
//	height = 800
//	max_iterations = 2000
//	workers = 0          # 0 = one per CPU
//	queue_capacity = 10
//	log_level = "debug"
//
//	[view]
//	left = -0.80
//	right = -0.70
//	bottom = 0.05
//	top = 0.15
//
//	[overlay]
//	color = "#00ff00"
//	line_width = 3
//
// Keys left out keep their Default value.
package config

import (
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"github.com/gogpu/mandel"
)

// Config is the complete set of settings.
type Config struct {
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	MaxIterations int    `toml:"max_iterations"`
	Workers       int    `toml:"workers"`
	QueueCapacity int    `toml:"queue_capacity"`
	LogLevel      string `toml:"log_level"`

	View    View    `toml:"view"`
	Overlay Overlay `toml:"overlay"`
}

// View is the initial complex-plane window.
type View struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
}

// Overlay is the selection outline style.
type Overlay struct {
	Color     string  `toml:"color"`
	LineWidth float64 `toml:"line_width"`
}

// Default returns the built-in settings: a 600x600 canvas on
// mandel.DefaultView with a 2px red outline.
func Default() Config {
	v := mandel.DefaultView
	return Config{
		Width:         600,
		Height:        600,
		MaxIterations: mandel.MaxIterations,
		Workers:       1,
		QueueCapacity: mandel.DefaultQueueCapacity,
		LogLevel:      "info",
		View:          View{Left: v.Left, Right: v.Right, Top: v.Top, Bottom: v.Bottom},
		Overlay:       Overlay{Color: "#ff0000", LineWidth: 2},
	}
}

// Load reads path over Default and validates the result. Unknown keys are
// an error so that typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.MaxIterations < 1 {
		return errors.Errorf("max_iterations %d must be at least 1", c.MaxIterations)
	}
	if c.QueueCapacity < 0 {
		return errors.Errorf("queue_capacity %d must not be negative", c.QueueCapacity)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	v := c.ComplexView()
	if !(v.Left < v.Right && v.Bottom < v.Top) {
		return errors.Errorf("view %v is degenerate", v)
	}
	if c.Overlay.LineWidth <= 0 {
		return errors.Errorf("overlay line_width %v must be positive", c.Overlay.LineWidth)
	}
	if err := validHex(c.Overlay.Color); err != nil {
		return err
	}
	return nil
}

// ComplexView returns the view section as a mandel.ComplexRect.
func (c Config) ComplexView() mandel.ComplexRect {
	return mandel.ComplexRect{
		Left:   c.View.Left,
		Right:  c.View.Right,
		Top:    c.View.Top,
		Bottom: c.View.Bottom,
	}
}

// OverlayStyle returns the overlay section as a mandel.OverlayStyle.
// The color must have passed Validate.
func (c Config) OverlayStyle() mandel.OverlayStyle {
	return mandel.OverlayStyle{
		Color:     gg.Hex(c.Overlay.Color).Color(),
		LineWidth: c.Overlay.LineWidth,
	}
}

// Level returns the slog level named by log_level.
func (c Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

// RendererOptions returns the renderer settings as functional options.
func (c Config) RendererOptions() []mandel.RendererOption {
	return []mandel.RendererOption{
		mandel.WithMaxIterations(c.MaxIterations),
		mandel.WithWorkers(c.Workers),
	}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "log_level %q", s)
	}
	return l, nil
}

// validHex accepts the forms gg.Hex understands: RGB, RGBA, RRGGBB and
// RRGGBBAA, with an optional leading '#'.
func validHex(s string) error {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return errors.Errorf("overlay color %q: want RGB, RGBA, RRGGBB or RRGGBBAA", s)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return errors.Errorf("overlay color %q: invalid hex digit %q", s, r)
		}
	}
	return nil
}
