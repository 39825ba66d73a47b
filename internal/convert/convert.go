// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns documents into PDFs by handing each one to an
// external converter (pandoc, locally or in a container).
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

// ErrNoOutput is wrapped by a ConversionError when the converter exited
// successfully but the target file does not exist.
var ErrNoOutput = errors.New("converter produced no output")

// Converter transforms the document at src into a PDF written to dst.
// Different backends (local pandoc, containerised pandoc) implement it.
type Converter interface {
	Convert(ctx context.Context, src, dst string) error
}

// ConversionError reports a single file the converter failed on.
type ConversionError struct {
	Path   string
	Target string
	// ExitCode is the converter's exit status, or -1 when it did not exit
	// normally (not started, killed, or no output produced).
	ExitCode int
	// Output holds the converter's trimmed combined output, if any.
	Output string
	Err    error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("converting %s to %s: %v", e.Path, e.Target, e.Err)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *ConversionError) Unwrap() error { return e.Err }

// TargetPath returns the PDF path for src inside outputDir: the base name
// with its extension replaced by ".pdf".
func TargetPath(src, outputDir string) string {
	base := filepath.Base(src)
	return filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".pdf")
}

// ConvertFile converts one document, replacing any previous output. A stale
// target is removed first so that a converter which exits zero without
// writing is reported as a failure.
func ConvertFile(ctx context.Context, c Converter, src, outputDir string) (string, error) {
	dst := TargetPath(src, outputDir)

	if _, err := os.Stat(src); err != nil {
		return dst, fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return dst, fmt.Errorf("replacing %s: %w", dst, err)
	}

	if err := c.Convert(ctx, src, dst); err != nil {
		var convErr *ConversionError
		if errors.As(err, &convErr) {
			return dst, err
		}
		return dst, &ConversionError{Path: src, Target: dst, ExitCode: ExitCode(err), Err: err}
	}

	if _, err := os.Stat(dst); err != nil {
		return dst, &ConversionError{Path: src, Target: dst, ExitCode: -1, Err: ErrNoOutput}
	}
	return dst, nil
}

// ConvertAll converts each path in order into outputDir, creating the
// directory first. Every file is attempted; failures are recorded in the
// returned results and joined into the returned error. Per-file status lines
// are written to w.
func ConvertAll(ctx context.Context, c Converter, paths []string, outputDir string, w io.Writer) ([]types.FileResult, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	results := make([]types.FileResult, 0, len(paths))
	var errs []error
	for _, src := range paths {
		if err := ctx.Err(); err != nil {
			return results, errors.Join(append(errs, err)...)
		}

		dst, err := ConvertFile(ctx, c, src, outputDir)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", src, err)
			results = append(results, types.FileResult{
				Input:  src,
				Status: types.StatusFailed,
				Error:  err.Error(),
			})
			errs = append(errs, err)
			continue
		}

		fmt.Fprintf(w, "converted: %s -> %s\n", src, dst)
		results = append(results, types.FileResult{
			Input:   src,
			Outputs: []string{dst},
			Status:  types.StatusDone,
		})
	}
	return results, errors.Join(errs...)
}

// ExitCode extracts the process exit status from err, or -1.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
