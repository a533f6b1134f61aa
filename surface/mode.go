// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"strings"
)

// Mode selects the shape a two-click gesture completes.
type Mode int

const (
	// ModeLine draws the infinite line through the two clicks.
	ModeLine Mode = iota

	// ModeRectangle draws the rectangle with the two clicks as opposite corners.
	ModeRectangle

	// ModeCircle draws the circle centered on the first click through the second.
	ModeCircle
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeRectangle:
		return "rectangle"
	case ModeCircle:
		return "circle"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as returned by String. The single-letter
// forms "l", "r" and "c" are accepted too.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line", "l":
		return ModeLine, nil
	case "rectangle", "rect", "r":
		return ModeRectangle, nil
	case "circle", "c":
		return ModeCircle, nil
	}
	return 0, fmt.Errorf("surface: unknown mode %q", s)
}
