// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

func TestFilterConvertible(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{
			name:  "keeps documents drops pdf and images",
			paths: []string{"x.md", "y.csv", "z.pdf", "w.jpg"},
			want:  []string{"x.md", "y.csv"},
		},
		{
			name:  "extension match ignores case",
			paths: []string{"/a/README.MD", "/a/Thesis.TeX", "/a/page.Html"},
			want:  []string{"/a/README.MD", "/a/Thesis.TeX", "/a/page.Html"},
		},
		{
			name:  "paths without an extension are dropped",
			paths: []string{"Makefile", "/a/notes", "/a/.md", "/a/dir.d/file"},
			want:  []string{},
		},
		{
			name:  "duplicates and order are preserved",
			paths: []string{"b.rst", "a.docx", "b.rst"},
			want:  []string{"b.rst", "a.docx", "b.rst"},
		},
		{
			name:  "only the last extension counts",
			paths: []string{"archive.md.zip", "report.pdf.md"},
			want:  []string{"report.pdf.md"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterConvertible(tt.paths))
		})
	}
}

func TestFilterConvertibleCoversEveryDefaultFormat(t *testing.T) {
	for _, ext := range ConvertibleFormats {
		p := "doc." + ext
		assert.Equal(t, []string{p}, FilterConvertible([]string{p}), ext)
	}
}

func TestFilterPDF(t *testing.T) {
	assert.Equal(t, []string{"y.pdf", "z.pdf"}, FilterPDF([]string{"x.md", "y.pdf", "z.pdf"}))
	assert.Equal(t, []string{"A.PDF", "b.Pdf"}, FilterPDF([]string{"A.PDF", "b.Pdf", "c.pdfx", "pdf"}))
	assert.Empty(t, FilterPDF(nil))
}

func TestNewClassifierOverride(t *testing.T) {
	c := NewClassifier([]string{".TXT", " org ", ""})

	assert.Equal(t, []string{"org", "txt"}, c.Formats())
	assert.Equal(t, []string{"a.txt", "b.org"}, c.FilterConvertible([]string{"a.txt", "b.org", "c.md"}))
}

func TestNewClassifierEmptyUsesDefaults(t *testing.T) {
	c := NewClassifier(nil)
	assert.Len(t, c.Formats(), len(ConvertibleFormats))
	assert.True(t, c.IsConvertible("notebook.ipynb"))
}

func TestForMode(t *testing.T) {
	paths := []string{"a.md", "b.pdf", "c.tex", "d.PDF", "e.png"}
	c := NewClassifier(nil)

	tests := []struct {
		mode types.Mode
		want []string
	}{
		{mode: types.ModeConvert, want: []string{"a.md", "c.tex"}},
		{mode: types.ModeMerge, want: []string{"b.pdf", "d.PDF"}},
		{mode: types.ModeSplit, want: []string{"b.pdf", "d.PDF"}},
		{mode: types.Mode("compress"), want: []string{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, c.ForMode(tt.mode, paths))
		})
	}
}
