// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"image/color"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDrawImage   CommandType = iota // Replace the canvas with an image
	CmdBeginStroke                    // Start an outline
	CmdLine                           // Add a segment to the outline
	CmdEndStroke                      // Stroke the outline
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDrawImage:   "DrawImage",
	CmdBeginStroke: "BeginStroke",
	CmdLine:        "Line",
	CmdEndStroke:   "EndStroke",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// DrawImageCommand replaces the canvas with a pooled image.
type DrawImageCommand struct {
	Image ImageRef
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// BeginStrokeCommand starts an outline.
type BeginStrokeCommand struct{}

// Type implements Command.
func (BeginStrokeCommand) Type() CommandType { return CmdBeginStroke }

// LineCommand adds one segment to the current outline.
type LineCommand struct {
	X0, Y0, X1, Y1 int
	Width          float64
	Color          color.RGBA
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

func (c LineCommand) String() string {
	return fmt.Sprintf("Line (%d,%d)-(%d,%d) width=%g color=#%02x%02x%02x%02x",
		c.X0, c.Y0, c.X1, c.Y1, c.Width, c.Color.R, c.Color.G, c.Color.B, c.Color.A)
}

// EndStrokeCommand strokes the outline started by the last BeginStrokeCommand.
type EndStrokeCommand struct{}

// Type implements Command.
func (EndStrokeCommand) Type() CommandType { return CmdEndStroke }
