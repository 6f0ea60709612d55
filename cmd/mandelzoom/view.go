// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"log/slog"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/spf13/cobra"

	"github.com/gogpu/mandel"
	"github.com/gogpu/mandel/integration/ggsurface"
)

func viewCmd(a *app) *cobra.Command {
	var caption bool

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore the set in a window",
		Long: `view opens a window showing the configured view. Click to anchor a
selection, move the mouse to size the square, and click again to zoom.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runView(a, caption)
		},
	}
	cmd.Flags().BoolVar(&caption, "caption", true, "Draw the view coordinates in the window")
	return cmd
}

func runView(a *app, caption bool) error {
	cfg := a.cfg
	width, height := cfg.Width, cfg.Height

	ctrl, err := mandel.NewController(width, height, cfg.ComplexView())
	if err != nil {
		return err
	}
	renderer := mandel.NewRenderer(cfg.RendererOptions()...)
	defer renderer.Close()

	var surfOpts []ggsurface.Option
	if caption {
		face, err := ggsurface.DefaultFace(ggsurface.DefaultCaptionSize)
		if err != nil {
			return err
		}
		surfOpts = append(surfOpts, ggsurface.WithCaption(face, func() string {
			return ggsurface.FormatCaption(ctrl.View(), renderer.MaxIterations())
		}))
	}

	win := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("mandelzoom").
		WithSize(width, height).
		WithContinuousRender(false))

	var (
		canvas    *ggcanvas.Canvas
		sess      *mandel.Session
		animToken *gogpu.AnimationToken
	)

	// Frames run at VSync from the anchoring click until the selection
	// completes; otherwise the window only redraws on demand.
	q := mandel.NewEventQueue(cfg.QueueCapacity)
	bindPointer(win.EventSource(), q, func() {
		if animToken == nil {
			animToken = win.StartAnimation()
		}
	})

	win.OnDraw(func(dc *gogpu.Context) {
		if canvas == nil {
			provider := win.GPUContextProvider()
			if provider == nil {
				return
			}
			c, err := ggcanvas.New(provider, width, height)
			if err != nil {
				slog.Error("mandelzoom: failed to create canvas", "err", err)
				return
			}
			canvas = c

			surf := ggsurface.NewFromContext(canvas.Context(), surfOpts...)
			sess = mandel.NewSession(ctrl, renderer, surf, mandel.WithOverlayStyle(cfg.OverlayStyle()))
			if err := sess.Start(); err != nil {
				slog.Error("mandelzoom: initial render failed", "err", err)
			}
			canvas.MarkDirty()
		}

		if drain(sess, q) > 0 {
			canvas.MarkDirty()
		}
		if animToken != nil && ctrl.State() == mandel.StateIdle && q.Len() == 0 {
			animToken.Stop()
			animToken = nil
		}

		sv := dc.RenderTarget().SurfaceView()
		sw, sh := dc.SurfaceSize()
		if err := canvas.RenderDirect(sv, sw, sh); err != nil {
			slog.Warn("mandelzoom: present failed", "err", err)
		}
	})

	win.OnClose(func() {
		if animToken != nil {
			animToken.Stop()
		}
		q.Close()
		if q.Dropped() > 0 {
			slog.Debug("mandelzoom: dropped pointer events", "count", q.Dropped())
		}
		gg.CloseAccelerator()
	})

	return win.Run()
}
