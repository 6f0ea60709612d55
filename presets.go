// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mandel

import (
	"fmt"
	"sort"
)

// presets are well-known regions of the set. Each is square so it keeps
// its proportions on a square canvas.
var presets = map[string]ComplexRect{
	"full": DefaultView,

	// Dense filaments and repeating curls between the main cardioid and
	// the period-2 bulb.
	"seahorse": {Left: -0.80, Right: -0.70, Bottom: 0.05, Top: 0.15},

	// Trunk-like tendrils off the western tip of the cardioid.
	"elephant": {Left: 0.25, Right: 0.35, Bottom: -0.05, Top: 0.05},

	// Minibrot with tight spiral arms.
	"spiral": {Left: -0.7435, Right: -0.7420, Bottom: 0.1310, Top: 0.1325},

	// Threefold symmetric spirals.
	"triple-spiral": {Left: -0.7480, Right: -0.7450, Bottom: 0.0950, Top: 0.0980},

	"dragon": {Left: -0.7400, Right: -0.7350, Bottom: 0.1800, Top: 0.1850},
}

// Preset returns the named region.
func Preset(name string) (ComplexRect, error) {
	r, ok := presets[name]
	if !ok {
		return ComplexRect{}, fmt.Errorf("mandel: unknown preset %q (have %v)", name, PresetNames())
	}
	return r, nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
