// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/mandel"
	"github.com/gogpu/mandel/integration/ggsurface"
	"github.com/gogpu/mandel/internal/config"
	"github.com/gogpu/mandel/recording"
)

func replayCmd(a *app) *cobra.Command {
	var (
		output string
		trace  bool
	)

	cmd := &cobra.Command{
		Use:   "replay [flags] FILE|-",
		Short: "Replay a click / move script and save the final canvas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if trace && output == "-" {
				return errors.New("--trace and -o - both write to stdout")
			}
			in, closeIn, err := openScript(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeIn()

			events, err := parseScript(in)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			rec, err := replay(cmd.Context(), a.cfg, events)
			if err != nil {
				return err
			}

			if trace {
				if err := rec.WriteTrace(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			if output == "" {
				return nil
			}
			surf := ggsurface.New(rec.Width(), rec.Height())
			if err := rec.Playback(surf); err != nil {
				return err
			}
			return writePNG(cmd, surf, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "replay.png", "Output PNG file, - for stdout, empty to skip")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print the recorded drawing commands")

	return cmd
}

func openScript(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open script: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// replay runs events through a session on a recording surface. Events are
// fed through the bounded queue by a producer goroutine, the way pointer
// callbacks feed it in a window.
func replay(ctx context.Context, cfg config.Config, events []mandel.Event) (*recording.Recording, error) {
	ctrl, err := mandel.NewController(cfg.Width, cfg.Height, cfg.ComplexView())
	if err != nil {
		return nil, err
	}
	r := mandel.NewRenderer(cfg.RendererOptions()...)
	defer r.Close()

	rec := recording.NewRecorder(cfg.Width, cfg.Height)
	sess := mandel.NewSession(ctrl, r, rec, mandel.WithOverlayStyle(cfg.OverlayStyle()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	q := mandel.NewEventQueue(cfg.QueueCapacity)
	go func() {
		defer q.Close()
		for _, ev := range events {
			if err := q.Send(ctx, ev); err != nil {
				return
			}
		}
	}()

	if err := sess.Run(ctx, q); err != nil {
		return nil, err
	}

	slog.Info("mandelzoom: replay finished",
		"events", len(events),
		"renders", sess.Renders(),
		"overlays", sess.Overlays(),
		"view", ctrl.View().String())
	return rec.FinishRecording(), nil
}
