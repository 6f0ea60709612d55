// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/mandel"
)

// parseScript reads replay events, one per line:
//
//	# zoom into the seahorse valley
//	click 250 280
//	move 300 320
//	click 310 330
//
// Blank lines and text after '#' are ignored.
func parseScript(r io.Reader) ([]mandel.Event, error) {
	var events []mandel.Event
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want \"click X Y\" or \"move X Y\", got %q", n, strings.TrimSpace(line))
		}
		x, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad x: %w", n, err)
		}
		y, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad y: %w", n, err)
		}

		switch strings.ToLower(fields[0]) {
		case mandel.EventClick.String():
			events = append(events, mandel.Click(x, y))
		case mandel.EventMove.String():
			events = append(events, mandel.Move(x, y))
		default:
			return nil, fmt.Errorf("line %d: unknown event %q", n, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return events, nil
}
