// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dispatch runs exactly one operation (convert, merge, or split) over
// a finalized, ordered path list and reports the outcome.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/pdfdrop/internal/classify"
	"github.com/pdiddy/pdfdrop/internal/convert"
	"github.com/pdiddy/pdfdrop/internal/pdfops"
	"github.com/pdiddy/pdfdrop/pkg/types"
)

// ErrNoOutputDir is returned when Convert or Merge is dispatched without an
// output directory.
var ErrNoOutputDir = errors.New("output directory required")

// UnsupportedPathError reports a path that does not belong to the active
// mode, for example a Markdown file handed to Merge.
type UnsupportedPathError struct {
	Mode types.Mode
	Path string
}

func (e *UnsupportedPathError) Error() string {
	return fmt.Sprintf("%s cannot be used with mode %s", e.Path, e.Mode)
}

// Dispatcher executes operations. Converter is only needed for Convert and
// may be nil otherwise.
type Dispatcher struct {
	Converter  convert.Converter
	Classifier *classify.Classifier

	// Out receives per-file status lines. Nil discards them.
	Out io.Writer
}

// New returns a Dispatcher using conv and the given classifier. A nil
// classifier uses the default format list.
func New(conv convert.Converter, c *classify.Classifier, out io.Writer) *Dispatcher {
	return &Dispatcher{Converter: conv, Classifier: c, Out: out}
}

// Dispatch validates paths against mode and runs the operation to completion.
// The report is returned even when the operation fails, describing whatever
// was written before the failure.
func (d *Dispatcher) Dispatch(ctx context.Context, mode types.Mode, paths []string, outputDir string) (*types.Report, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	if err := d.validate(mode, paths); err != nil {
		return nil, err
	}

	report := &types.Report{
		RunID:     uuid.NewString(),
		Mode:      mode,
		OutputDir: outputDir,
		StartedAt: time.Now().UTC(),
	}
	defer func() { report.FinishedAt = time.Now().UTC() }()

	var err error
	switch mode {
	case types.ModeConvert:
		report.Files, err = d.convert(ctx, paths, outputDir)
	case types.ModeMerge:
		report.Files, err = d.merge(paths, outputDir)
	case types.ModeSplit:
		report.Files, err = d.split(paths, outputDir)
	}
	return report, err
}

func (d *Dispatcher) validate(mode types.Mode, paths []string) error {
	c := d.Classifier
	if c == nil {
		c = classify.NewClassifier(nil)
	}
	accept := c.Accepts(mode)
	for _, p := range paths {
		if !accept(p) {
			return &UnsupportedPathError{Mode: mode, Path: p}
		}
	}
	return nil
}

func (d *Dispatcher) out() io.Writer {
	if d.Out == nil {
		return io.Discard
	}
	return d.Out
}

func (d *Dispatcher) convert(ctx context.Context, paths []string, outputDir string) ([]types.FileResult, error) {
	if outputDir == "" {
		return nil, ErrNoOutputDir
	}
	if d.Converter == nil {
		return nil, errors.New("no document converter configured")
	}
	return convert.ConvertAll(ctx, d.Converter, paths, outputDir, d.out())
}

func (d *Dispatcher) merge(paths []string, outputDir string) ([]types.FileResult, error) {
	if outputDir == "" {
		return nil, ErrNoOutputDir
	}
	merged, err := pdfops.Merge(paths, outputDir)
	if err != nil {
		fmt.Fprintf(d.out(), "failed:    %s (%v)\n", pdfops.MergedPath(outputDir), err)
		results := make([]types.FileResult, len(paths))
		for i, p := range paths {
			results[i] = types.FileResult{Input: p, Status: types.StatusFailed, Error: err.Error()}
		}
		return results, err
	}
	if merged == "" {
		return nil, nil
	}

	results := make([]types.FileResult, len(paths))
	for i, p := range paths {
		results[i] = types.FileResult{Input: p, Outputs: []string{merged}, Status: types.StatusDone}
	}
	fmt.Fprintf(d.out(), "merged:    %d file(s) -> %s\n", len(paths), merged)
	return results, nil
}

func (d *Dispatcher) split(paths []string, outputDir string) ([]types.FileResult, error) {
	results, err := pdfops.Split(paths, outputDir)
	for _, r := range results {
		if r.Status == types.StatusDone {
			fmt.Fprintf(d.out(), "split:     %s -> %d page(s)\n", r.Input, len(r.Outputs))
		} else {
			fmt.Fprintf(d.out(), "failed:    %s (%s)\n", r.Input, r.Error)
		}
	}
	return results, err
}
