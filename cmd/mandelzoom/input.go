// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"log/slog"
	"math"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/mandel"
)

// pointerSource is the part of gpucontext.EventSource that reports the mouse.
type pointerSource interface {
	OnMouseMove(fn func(x, y float64))
	OnMousePress(fn func(button gpucontext.MouseButton, x, y float64))
}

// bindPointer routes mouse motion to Move and left presses to Click.
// Callbacks never block: a move arriving on a full queue is dropped.
// onClick runs after every queued click; it may be nil.
func bindPointer(src pointerSource, q *mandel.EventQueue, onClick func()) {
	src.OnMouseMove(func(x, y float64) {
		q.TrySend(mandel.Move(toPixel(x), toPixel(y)))
	})
	src.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
		if button != gpucontext.MouseButtonLeft {
			return
		}
		if q.TrySend(mandel.Click(toPixel(x), toPixel(y))) && onClick != nil {
			onClick()
		}
	})
}

func toPixel(v float64) int {
	return int(math.Floor(v))
}

// drain applies every queued event without blocking and reports how many
// were applied. It runs on the draw callback, the session's only consumer.
func drain(sess *mandel.Session, q *mandel.EventQueue) int {
	n := 0
	for {
		select {
		case ev, ok := <-q.Events():
			if !ok {
				return n
			}
			if _, err := sess.Apply(ev); err != nil {
				slog.Error("mandelzoom: event failed", "event", ev.String(), "err", err)
			}
			n++
		default:
			return n
		}
	}
}
