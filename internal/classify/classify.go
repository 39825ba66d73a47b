// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify filters path lists by file extension: documents the
// converter accepts, and PDFs for merge and split.
package classify

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

// ConvertibleFormats lists the extensions (lowercase, no dot) accepted by the
// document converter. Override it through NewClassifier.
var ConvertibleFormats = []string{
	"md", "markdown", "mdown", "mkd",
	"tex",
	"html", "htm",
	"epub", "docx", "odt",
	"mediawiki", "wiki",
	"rst",
	"adoc", "asciidoc", "asc",
	"ipynb", "csv",
	"yml", "yaml",
}

const pdfExt = "pdf"

// Classifier filters paths against a convertible-extension set.
type Classifier struct {
	convertible map[string]bool
}

// NewClassifier builds a Classifier from formats. Entries are matched
// case-insensitively and may carry a leading dot. An empty list falls back to
// ConvertibleFormats.
func NewClassifier(formats []string) *Classifier {
	if len(formats) == 0 {
		formats = ConvertibleFormats
	}
	set := make(map[string]bool, len(formats))
	for _, f := range formats {
		f = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(f)), ".")
		if f != "" {
			set[f] = true
		}
	}
	return &Classifier{convertible: set}
}

// Formats returns the configured convertible extensions, sorted.
func (c *Classifier) Formats() []string {
	out := make([]string, 0, len(c.convertible))
	for f := range c.convertible {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// IsConvertible reports whether path has a convertible extension.
func (c *Classifier) IsConvertible(path string) bool {
	return c.convertible[Ext(path)]
}

// FilterConvertible keeps the paths with a convertible extension, in order.
func (c *Classifier) FilterConvertible(paths []string) []string {
	return filter(paths, c.IsConvertible)
}

// FilterPDF keeps the paths whose extension is pdf, in order.
func (c *Classifier) FilterPDF(paths []string) []string {
	return filter(paths, IsPDF)
}

// ForMode applies the filter that matches mode: convertible documents for
// Convert, PDFs for Merge and Split. Unknown modes keep nothing.
func (c *Classifier) ForMode(mode types.Mode, paths []string) []string {
	return filter(paths, c.Accepts(mode))
}

// Accepts returns the predicate used by ForMode.
func (c *Classifier) Accepts(mode types.Mode) func(string) bool {
	switch mode {
	case types.ModeConvert:
		return c.IsConvertible
	case types.ModeMerge, types.ModeSplit:
		return IsPDF
	}
	return func(string) bool { return false }
}

// FilterConvertible filters with the current ConvertibleFormats list.
func FilterConvertible(paths []string) []string {
	return NewClassifier(ConvertibleFormats).FilterConvertible(paths)
}

// FilterPDF keeps the paths whose extension is pdf, in order.
func FilterPDF(paths []string) []string {
	return filter(paths, IsPDF)
}

// IsPDF reports whether path ends in .pdf, ignoring case.
func IsPDF(path string) bool {
	return Ext(path) == pdfExt
}

// Ext returns the lowercased extension of path without its leading dot.
// Leading dots of the base name do not start an extension, so ".md" has none.
func Ext(path string) string {
	base := strings.TrimLeft(filepath.Base(path), ".")
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
}

func filter(paths []string, keep func(string) bool) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
