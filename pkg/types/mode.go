// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for pdfdrop: the operation
// mode, the configuration tree, and the report produced by a dispatch.
package types

import (
	"fmt"
	"strings"
)

// Mode selects which operation a dispatch performs over a path list.
type Mode string

const (
	// ModeConvert turns each convertible document into a PDF.
	ModeConvert Mode = "convert"
	// ModeMerge concatenates all PDFs into a single document.
	ModeMerge Mode = "merge"
	// ModeSplit writes one PDF per page of every input.
	ModeSplit Mode = "split"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeConvert, ModeMerge, ModeSplit}

// ParseMode maps a case-insensitive mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m.Valid() {
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q: use convert, merge, or split", s)
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeConvert, ModeMerge, ModeSplit:
		return true
	}
	return false
}

func (m Mode) String() string { return string(m) }
