// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command mandelzoom renders the Mandelbrot set and explores it by
// click / drag / click zooming.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/gogpu/mandel"
	"github.com/gogpu/mandel/internal/config"
)

var (
	version = "v0.1.0"
	commit  = "dev"
)

// app holds the state shared by all subcommands.
type app struct {
	configPath string
	debug      bool

	cfg config.Config
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(),
		fang.WithVersion(version),
		fang.WithCommit(commit),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "mandelzoom",
		Short: "Mandelbrot renderer with click-to-zoom",
		Long: `mandelzoom renders the Mandelbrot set with the escape-time algorithm.
Click once to anchor a square selection, move to size it, and click again
to zoom into it.`,
		Example: `  # Render the default view to mandel.png
  mandelzoom render

  # Render a named region with a caption
  mandelzoom render --preset seahorse --caption -o seahorse.png

  # Replay a scripted zoom and print the drawing commands
  mandelzoom replay --trace zoom.txt

  # Open an interactive window
  mandelzoom view --config mandelzoom.toml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable debug logging")

	root.AddCommand(renderCmd(a), replayCmd(a), viewCmd(a))
	return root
}

// setup loads the config file and installs the logger.
func (a *app) setup(stderr io.Writer) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	level := a.cfg.Level()
	if a.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	mandel.SetLogger(logger)
	return nil
}
