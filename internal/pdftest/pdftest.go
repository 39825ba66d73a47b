// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest writes small, valid PDF documents for tests. Each page gets
// its own width so page order can be checked after merging or splitting.
package pdftest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PageHeight is the height of every generated page, in points.
const PageHeight = 200

func init() {
	model.ConfigPath = "disable"
}

// Build returns a PDF document with one blank page per width.
func Build(widths ...int) ([]byte, error) {
	ctx, err := pdfcpu.CreateContextWithXRefTable(model.NewDefaultConfiguration(), &types.Dim{Width: PageHeight, Height: PageHeight})
	if err != nil {
		return nil, err
	}
	pagesIndRef, err := ctx.Pages()
	if err != nil {
		return nil, err
	}
	pagesDict, err := ctx.DereferenceDict(*pagesIndRef)
	if err != nil {
		return nil, err
	}

	for _, w := range widths {
		indRef, err := ctx.EmptyPage(pagesIndRef, types.RectForDim(float64(w), PageHeight))
		if err != nil {
			return nil, err
		}
		if err := ctx.SetValid(*indRef); err != nil {
			return nil, err
		}
		if err := model.AppendPageTree(indRef, 1, pagesDict); err != nil {
			return nil, err
		}
		ctx.PageCount++
	}

	var b bytes.Buffer
	if err := api.WriteContext(ctx, &b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Write creates dir/name containing a PDF with one page per width and
// returns its path.
func Write(t testing.TB, dir, name string, widths ...int) string {
	t.Helper()
	data, err := Build(widths...)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
