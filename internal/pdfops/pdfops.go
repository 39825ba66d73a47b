// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfops merges and splits PDF documents with pdfcpu.
package pdfops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

func init() {
	// Keep pdfcpu from creating a configuration directory under the user's home.
	model.ConfigPath = "disable"
}

func newConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// MergedPath returns the location of the Merge output in outputDir.
func MergedPath(outputDir string) string {
	return filepath.Join(outputDir, types.MergedFileName)
}

// Merge concatenates the pages of paths, in order, into merged.pdf inside
// outputDir and returns its path. An empty path list writes nothing and
// returns "". The output is assembled in a temporary file and renamed into
// place, so merging an earlier merged.pdf back into itself is safe.
func Merge(paths []string, outputDir string) (string, error) {
	if len(paths) == 0 {
		return "", nil
	}
	for _, p := range paths {
		if err := checkReadable(p); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	out := MergedPath(outputDir)
	tmp, err := os.CreateTemp(outputDir, ".merged-*.pdf")
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", out, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if len(paths) == 1 {
		err = copySingle(paths[0], tmpPath)
	} else {
		err = api.MergeCreateFile(paths, tmpPath, false, newConfig())
	}
	if err != nil {
		return "", fmt.Errorf("merging into %s: %w", out, err)
	}

	if err := os.Rename(tmpPath, out); err != nil {
		return "", fmt.Errorf("writing %s: %w", out, err)
	}
	return out, nil
}

// copySingle validates a lone input and copies it as the merge result.
func copySingle(src, dst string) error {
	if _, err := api.PageCountFile(src); err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Split writes every page of each input as its own document named
// "<stem>_<page>.pdf" in outputDir, numbering pages from 1. Nil or empty
// paths, or an empty outputDir, make Split a no-op. Processing stops at the
// first failure; files already written are kept.
func Split(paths []string, outputDir string) ([]types.FileResult, error) {
	if len(paths) == 0 || outputDir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	results := make([]types.FileResult, 0, len(paths))
	for _, p := range paths {
		outs, err := SplitFile(p, outputDir)
		if err != nil {
			results = append(results, types.FileResult{
				Input:   p,
				Outputs: outs,
				Status:  types.StatusFailed,
				Error:   err.Error(),
			})
			return results, err
		}
		results = append(results, types.FileResult{Input: p, Outputs: outs, Status: types.StatusDone})
	}
	return results, nil
}

// SplitFile splits a single document and returns the written page files in
// page order. The source is parsed once; each page is then extracted from
// the parsed document. Pages written before a failure are kept.
func SplitFile(path, outputDir string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	conf := newConfig()
	conf.Cmd = model.SPLIT
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	stem := Stem(path)
	outs := make([]string, 0, ctx.PageCount)
	for page := 1; page <= ctx.PageCount; page++ {
		out := filepath.Join(outputDir, stem+"_"+strconv.Itoa(page)+".pdf")
		if err := writePage(ctx, page, out); err != nil {
			return outs, fmt.Errorf("splitting page %d of %s into %s: %w", page, path, out, err)
		}
		outs = append(outs, out)
	}
	return outs, nil
}

func writePage(ctx *model.Context, page int, out string) (err error) {
	pageCtx, err := pdfcpu.ExtractPages(ctx, []int{page}, false)
	if err != nil {
		return err
	}
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(out)
		}
	}()
	return api.WriteContext(pageCtx, w)
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PageCount returns the number of pages in the document at path.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return n, nil
}

func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	return f.Close()
}
