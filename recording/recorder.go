// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"image/color"
	"io"

	"github.com/gogpu/mandel"
)

// Recorder captures Surface calls as commands.
// Use FinishRecording to obtain an immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	stroking      bool
}

var _ mandel.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder for a width x height canvas.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// DrawImage implements mandel.Surface.
func (r *Recorder) DrawImage(pm *mandel.Pixmap) {
	r.commands = append(r.commands, DrawImageCommand{Image: r.resources.AddImage(pm)})
}

// BeginStroke implements mandel.Surface.
func (r *Recorder) BeginStroke() {
	r.stroking = true
	r.commands = append(r.commands, BeginStrokeCommand{})
}

// DrawLine implements mandel.Surface. Colors are stored as non-premultiplied
// 8-bit RGBA.
func (r *Recorder) DrawLine(x0, y0, x1, y1 int, width float64, c color.Color) {
	var rgba color.RGBA
	if c != nil {
		rgba = color.RGBAModel.Convert(c).(color.RGBA)
	}
	r.commands = append(r.commands, LineCommand{
		X0: x0, Y0: y0, X1: x1, Y1: y1,
		Width: width,
		Color: rgba,
	})
}

// EndStroke implements mandel.Surface.
func (r *Recorder) EndStroke() {
	r.stroking = false
	r.commands = append(r.commands, EndStrokeCommand{})
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands and images.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources = NewResourcePool()
	r.stroking = false
}

// FinishRecording returns the commands recorded so far. An outline left
// open is closed with an EndStroke so the recording always replays
// balanced. The Recorder starts empty afterwards.
func (r *Recorder) FinishRecording() *Recording {
	if r.stroking {
		r.EndStroke()
	}
	rec := &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
	r.commands = make([]Command, 0, 64)
	r.resources = NewResourcePool()
	return rec
}

// Recording is an immutable sequence of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the canvas width of the recording.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the canvas height of the recording.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands. Callers must not modify the slice.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the pool holding the recorded images.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays every command to s in order.
func (r *Recording) Playback(s mandel.Surface) error {
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case DrawImageCommand:
			pm := r.resources.GetImage(c.Image)
			if pm == nil {
				return fmt.Errorf("recording: command %d: unknown image %d", i, c.Image)
			}
			s.DrawImage(pm)
		case BeginStrokeCommand:
			s.BeginStroke()
		case LineCommand:
			s.DrawLine(c.X0, c.Y0, c.X1, c.Y1, c.Width, c.Color)
		case EndStrokeCommand:
			s.EndStroke()
		default:
			return fmt.Errorf("recording: command %d: unsupported type %v", i, cmd.Type())
		}
	}
	return nil
}

// WriteTrace writes one line per command to w:
//
//	DrawImage #0 600x600
//	BeginStroke
//	Line (10,10)-(10,40) width=2 color=#ff0000ff
//	EndStroke
func (r *Recording) WriteTrace(w io.Writer) error {
	for _, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case DrawImageCommand:
			pm := r.resources.GetImage(c.Image)
			if pm == nil {
				_, err = fmt.Fprintf(w, "DrawImage #%d\n", c.Image)
			} else {
				_, err = fmt.Fprintf(w, "DrawImage #%d %dx%d\n", c.Image, pm.Width(), pm.Height())
			}
		case LineCommand:
			_, err = fmt.Fprintln(w, c.String())
		default:
			_, err = fmt.Fprintln(w, cmd.Type().String())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
