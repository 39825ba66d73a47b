// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package expand

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDirectory(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.md")
	b := writeFile(t, dir, "b.pdf")
	c := writeFile(t, dir, "c.txt")
	writeFile(t, dir, ".DS_Store")

	got, err := Expand([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b, c}, got)
}

func TestExpandNested(t *testing.T) {
	dir := t.TempDir()
	top := writeFile(t, dir, "top.md")
	deep := writeFile(t, dir, filepath.Join("one", "two", "deep.tex"))
	writeFile(t, dir, filepath.Join("one", ".hidden.md"))
	// Hidden directories are walked; only hidden file names are dropped.
	inHidden := writeFile(t, dir, filepath.Join(".cache", "visible.rst"))

	got, err := Expand([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{top, deep, inHidden}, got)
	for _, p := range got {
		assert.False(t, IsHidden(filepath.Base(p)), "hidden file leaked: %s", p)
	}
}

func TestExpandMixedInputsKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "z-first.pdf")
	sub := filepath.Join(dir, "sub")
	x := writeFile(t, sub, "x.pdf")
	y := writeFile(t, sub, "y.pdf")
	last := writeFile(t, dir, "a-last.pdf")

	got, err := Expand([]string{first, sub, last, first})
	require.NoError(t, err)
	// Walk order inside a directory is lexical; duplicates are kept.
	assert.Equal(t, []string{first, x, y, last, first}, got)
}

func TestExpandHiddenFileGivenDirectly(t *testing.T) {
	dir := t.TempDir()
	hidden := writeFile(t, dir, ".notes.md")

	got, err := Expand([]string{hidden})
	require.NoError(t, err)
	assert.Equal(t, []string{hidden}, got)
}

func TestExpandInvalidPath(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "ok.md")
	missing := filepath.Join(dir, "does-not-exist")

	got, err := Expand([]string{good, missing})
	require.Error(t, err)
	assert.Nil(t, got)

	var invalid *InvalidPathError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, missing, invalid.Path)
	assert.Contains(t, err.Error(), "not a valid file or directory")
}

func TestExpandEmpty(t *testing.T) {
	got, err := Expand(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Expand([]string{t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpandSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	dir := t.TempDir()
	target := writeFile(t, t.TempDir(), "target.md")
	otherDir := t.TempDir()
	writeFile(t, otherDir, "inside.md")

	linkFile := filepath.Join(dir, "link.md")
	require.NoError(t, os.Symlink(target, linkFile))
	require.NoError(t, os.Symlink(otherDir, filepath.Join(dir, "linkdir")))
	dangling := filepath.Join(dir, "dangling.md")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.md"), dangling))

	got, err := Expand([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{dangling, linkFile}, got)
}

func TestExpandSkipsUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced here")
	}
	dir := t.TempDir()
	visible := writeFile(t, dir, "a.md")
	locked := filepath.Join(dir, "locked")
	writeFile(t, locked, "secret.md")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	got, err := Expand([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{visible}, got)
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
	return path
}
