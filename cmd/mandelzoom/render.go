// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/mandel"
	"github.com/gogpu/mandel/integration/ggsurface"
	"github.com/gogpu/mandel/internal/config"
)

type renderFlags struct {
	output  string
	size    int
	preset  string
	view    string
	maxIter int
	workers int
	caption bool
}

// renderJob is a fully resolved render request.
type renderJob struct {
	width, height int
	view          mandel.ComplexRect
	maxIter       int
	workers       int
}

func renderCmd(a *app) *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one view to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := f.resolve(cmd.Flags(), a.cfg)
			if err != nil {
				return err
			}
			return runRender(cmd, job, f.caption, f.output)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "mandel.png", "Output PNG file, - for stdout")
	flags.IntVar(&f.size, "size", 0, "Canvas width and height in pixels (default from config)")
	flags.StringVar(&f.preset, "preset", "", "Named region: "+strings.Join(mandel.PresetNames(), ", "))
	flags.StringVar(&f.view, "view", "", "Complex window as left,right,bottom,top")
	flags.IntVar(&f.maxIter, "max-iter", mandel.MaxIterations, "Escape-time iteration bound")
	flags.IntVar(&f.workers, "workers", 1, "Render goroutines, 0 for one per CPU")
	flags.BoolVar(&f.caption, "caption", false, "Draw the view coordinates on the image")
	cmd.MarkFlagsMutuallyExclusive("preset", "view")

	return cmd
}

// resolve layers explicitly set flags over the config.
func (f renderFlags) resolve(flags *pflag.FlagSet, cfg config.Config) (renderJob, error) {
	job := renderJob{
		width:   cfg.Width,
		height:  cfg.Height,
		view:    cfg.ComplexView(),
		maxIter: cfg.MaxIterations,
		workers: cfg.Workers,
	}
	if f.size < 0 {
		return job, fmt.Errorf("invalid --size %d", f.size)
	}
	if f.size > 0 {
		job.width, job.height = f.size, f.size
	}
	if flags.Changed("max-iter") {
		job.maxIter = f.maxIter
	}
	if flags.Changed("workers") {
		job.workers = f.workers
	}

	switch {
	case f.preset != "":
		v, err := mandel.Preset(f.preset)
		if err != nil {
			return job, err
		}
		job.view = v
	case f.view != "":
		v, err := parseView(f.view)
		if err != nil {
			return job, err
		}
		job.view = v
	}
	return job, nil
}

func runRender(cmd *cobra.Command, job renderJob, caption bool, output string) error {
	r := mandel.NewRenderer(mandel.WithMaxIterations(job.maxIter), mandel.WithWorkers(job.workers))
	defer r.Close()

	pm, err := r.Render(job.width, job.height, job.view)
	if err != nil {
		return err
	}

	var opts []ggsurface.Option
	if caption {
		face, err := ggsurface.DefaultFace(ggsurface.DefaultCaptionSize)
		if err != nil {
			return err
		}
		opts = append(opts, ggsurface.WithCaption(face, func() string {
			return ggsurface.FormatCaption(job.view, r.MaxIterations())
		}))
	}

	surf := ggsurface.New(job.width, job.height, opts...)
	surf.DrawImage(pm)
	return writePNG(cmd, surf, output)
}

// writePNG saves the canvas to path, or to the command's stdout for "-".
func writePNG(cmd *cobra.Command, surf *ggsurface.Surface, path string) error {
	if path == "-" {
		return surf.EncodePNG(cmd.OutOrStdout())
	}
	if err := surf.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	slog.Info("mandelzoom: wrote image", "path", path)
	return nil
}

// parseView parses "left,right,bottom,top".
func parseView(s string) (mandel.ComplexRect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return mandel.ComplexRect{}, fmt.Errorf("invalid --view %q: want left,right,bottom,top", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mandel.ComplexRect{}, fmt.Errorf("invalid --view %q: %w", s, err)
		}
		v[i] = f
	}
	r := mandel.ComplexRect{Left: v[0], Right: v[1], Bottom: v[2], Top: v[3]}
	if !(r.Left < r.Right && r.Bottom < r.Top) {
		return mandel.ComplexRect{}, fmt.Errorf("invalid --view %q: need left < right and bottom < top", s)
	}
	return r, nil
}
