// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording captures what a mandel.Session draws.
//
// A Recorder implements mandel.Surface and stores each call as a typed
// command instead of touching pixels. The finished Recording can be
// replayed to any other surface or written out as a text trace, which
// makes session behavior inspectable without a window.
//
//	rec := recording.NewRecorder(600, 600)
//	sess := mandel.NewSession(ctrl, mandel.NewRenderer(), rec)
//	sess.Start()
//	sess.Apply(mandel.Click(100, 100))
//	r := rec.FinishRecording()
//	r.WriteTrace(os.Stdout)
//	r.Playback(ggsurface.New(600, 600))
//
// Images are kept by reference in a ResourcePool. A Session never mutates
// a pixmap after drawing it, so recordings stay valid without copying.
package recording
