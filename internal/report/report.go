// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders dispatch reports and preview lists for the terminal
// and as YAML or JSON documents.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

// Format selects how a report or list is written.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unsupported format %q: use text, yaml, or json", s)
}

// Printer writes human-readable summaries. Styling follows the terminal
// capabilities of the destination writer and is plain text otherwise.
type Printer struct {
	w     io.Writer
	ok    lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
	title lipgloss.Style
}

// NewPrinter returns a Printer bound to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		muted: r.NewStyle().Foreground(lipgloss.Color("8")),
		title: r.NewStyle().Bold(true),
	}
}

// Summary prints the outcome of a dispatch: failures first, then written
// files, then a totals line.
func (p *Printer) Summary(rep *types.Report) {
	for _, f := range rep.Files {
		if f.Status == types.StatusFailed {
			fmt.Fprintf(p.w, "%s %s: %s\n", p.fail.Render("error"), f.Input, f.Error)
		}
	}

	outputs := rep.Outputs()
	fmt.Fprintf(p.w, "\n%s %s (run %s)\n", p.title.Render("Mode:"), rep.Mode, p.muted.Render(rep.RunID))
	for _, o := range outputs {
		fmt.Fprintf(p.w, "  %s\n", o)
	}

	status := p.ok.Render("ok")
	if rep.HasFailures() {
		status = p.fail.Render("failed")
	}
	fmt.Fprintf(p.w, "%s: %d succeeded, %d failed, %d file(s) written to %s\n",
		status, rep.Succeeded(), rep.Failed(), len(outputs), rep.OutputDir)
}

// List prints a preview list: one path per line, numbered in order.
func (p *Printer) List(mode types.Mode, paths []string) {
	if len(paths) == 0 {
		fmt.Fprintf(p.w, "No files for mode %s.\n", mode)
		return
	}
	for i, path := range paths {
		fmt.Fprintf(p.w, "%s  %s\n", p.muted.Render(fmt.Sprintf("%3d", i+1)), path)
	}
	fmt.Fprintf(p.w, "\n%d file(s) for mode %s\n", len(paths), mode)
}

// Preview is the structured form of a preview list.
type Preview struct {
	Mode  types.Mode `json:"mode" yaml:"mode"`
	Paths []string   `json:"paths" yaml:"paths"`
}

// Encode writes v as YAML or JSON.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q cannot encode structured data", format)
}

// WriteFile saves rep to path, choosing JSON for a .json suffix and YAML
// otherwise.
func WriteFile(path string, rep *types.Report) error {
	format := FormatYAML
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		format = FormatJSON
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := Encode(f, format, rep); err != nil {
		f.Close()
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return f.Close()
}
