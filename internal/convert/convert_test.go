// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

// fakeRunner stands in for pandoc. It records every invocation and, unless
// told otherwise, writes a placeholder PDF at the "-o" target.
type fakeRunner struct {
	calls   [][]string
	fail    map[string]error // src -> error returned with output "boom"
	noWrite map[string]bool  // src -> exit zero without writing
	missing bool             // LookPath fails
}

func (f *fakeRunner) LookPath(file string) (string, error) {
	if f.missing {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeRunner) CombinedOutput(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	src, dst := args[0], args[2]
	if err, ok := f.fail[src]; ok {
		return []byte("boom\n"), err
	}
	if f.noWrite[src] {
		return nil, nil
	}
	return nil, os.WriteFile(dst, []byte("%PDF-1.4"), 0o644)
}

func newFake(t *testing.T, r *fakeRunner, cfg types.ConverterConfig) *PandocConverter {
	t.Helper()
	p, err := newPandocConverter(cfg, r)
	require.NoError(t, err)
	return p
}

func writeSources(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(paths[i], []byte("# "+n), 0o644))
	}
	return paths
}

func TestTargetPath(t *testing.T) {
	tests := []struct {
		src, out, want string
	}{
		{src: "/a/doc1.md", out: "/out", want: filepath.Join("/out", "doc1.pdf")},
		{src: "/a/thesis.final.tex", out: "/out", want: filepath.Join("/out", "thesis.final.pdf")},
		{src: "notes.HTML", out: "o", want: filepath.Join("o", "notes.pdf")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TargetPath(tt.src, tt.out), tt.src)
	}
}

func TestConvertAllInvokesConverterInOrder(t *testing.T) {
	srcs := writeSources(t, "doc1.md", "doc2.tex")
	out := filepath.Join(t.TempDir(), "nested", "out")
	r := &fakeRunner{}
	conv := newFake(t, r, types.ConverterConfig{})

	var log bytes.Buffer
	results, err := ConvertAll(context.Background(), conv, srcs, out, &log)
	require.NoError(t, err)

	require.Len(t, r.calls, 2)
	assert.Equal(t, []string{"pandoc", srcs[0], "-o", filepath.Join(out, "doc1.pdf")}, r.calls[0])
	assert.Equal(t, []string{"pandoc", srcs[1], "-o", filepath.Join(out, "doc2.pdf")}, r.calls[1])

	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, types.StatusDone, res.Status)
		require.Len(t, res.Outputs, 1)
		assert.FileExists(t, res.Outputs[0])
	}
	assert.Equal(t, 2, strings.Count(log.String(), "converted:"))
}

func TestConvertAllExtraArgs(t *testing.T) {
	srcs := writeSources(t, "a.md")
	r := &fakeRunner{}
	conv := newFake(t, r, types.ConverterConfig{Binary: "pandoc3", Args: []string{"--pdf-engine=xelatex"}})

	_, err := ConvertAll(context.Background(), conv, srcs, t.TempDir(), &bytes.Buffer{})
	require.NoError(t, err)
	require.Len(t, r.calls, 1)
	assert.Equal(t, "pandoc3", r.calls[0][0])
	assert.Equal(t, "--pdf-engine=xelatex", r.calls[0][4])
}

func TestConvertAllCollectsFailures(t *testing.T) {
	srcs := writeSources(t, "good.md", "bad.md", "silent.md", "after.md")
	r := &fakeRunner{
		fail:    map[string]error{srcs[1]: errors.New("exit status 43")},
		noWrite: map[string]bool{srcs[2]: true},
	}
	conv := newFake(t, r, types.ConverterConfig{})

	var log bytes.Buffer
	results, err := ConvertAll(context.Background(), conv, srcs, t.TempDir(), &log)
	require.Error(t, err)

	// Every file is attempted despite earlier failures.
	assert.Len(t, r.calls, 4)
	require.Len(t, results, 4)
	assert.Equal(t, types.StatusDone, results[0].Status)
	assert.Equal(t, types.StatusFailed, results[1].Status)
	assert.Equal(t, types.StatusFailed, results[2].Status)
	assert.Equal(t, types.StatusDone, results[3].Status)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, srcs[1], convErr.Path)
	assert.Equal(t, "boom", convErr.Output)
	assert.Equal(t, -1, convErr.ExitCode)

	assert.ErrorIs(t, err, ErrNoOutput)
	assert.Contains(t, err.Error(), "silent.md")
	assert.Equal(t, 2, strings.Count(log.String(), "failed:"))
}

func TestConvertAllMissingInput(t *testing.T) {
	srcs := writeSources(t, "present.md")
	missing := filepath.Join(filepath.Dir(srcs[0]), "gone.md")
	r := &fakeRunner{}
	conv := newFake(t, r, types.ConverterConfig{})

	results, err := ConvertAll(context.Background(), conv, []string{missing, srcs[0]}, t.TempDir(), &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), missing)

	// The missing file never reaches the converter.
	assert.Len(t, r.calls, 1)
	assert.Equal(t, types.StatusFailed, results[0].Status)
	assert.Equal(t, types.StatusDone, results[1].Status)
}

func TestConvertAllUnwritableOutputDir(t *testing.T) {
	srcs := writeSources(t, "a.md")
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := ConvertAll(context.Background(), newFake(t, &fakeRunner{}, types.ConverterConfig{}), srcs, filepath.Join(blocker, "out"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")
}

func TestConvertFileReplacesStaleOutput(t *testing.T) {
	srcs := writeSources(t, "doc.md")
	out := t.TempDir()
	stale := filepath.Join(out, "doc.pdf")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o644))

	// A converter that succeeds without writing must not be fooled by the
	// previous run's output.
	r := &fakeRunner{noWrite: map[string]bool{srcs[0]: true}}
	_, err := ConvertFile(context.Background(), newFake(t, r, types.ConverterConfig{}), srcs[0], out)
	require.ErrorIs(t, err, ErrNoOutput)
	assert.NoFileExists(t, stale)
}

func TestConvertAllIdempotent(t *testing.T) {
	srcs := writeSources(t, "a.md", "b.rst")
	out := t.TempDir()
	conv := newFake(t, &fakeRunner{}, types.ConverterConfig{})

	for i := 0; i < 2; i++ {
		_, err := ConvertAll(context.Background(), conv, srcs, out, &bytes.Buffer{})
		require.NoError(t, err)
	}
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestConvertAllCancelled(t *testing.T) {
	srcs := writeSources(t, "a.md", "b.md")
	r := &fakeRunner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConvertAll(ctx, newFake(t, r, types.ConverterConfig{}), srcs, t.TempDir(), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.calls)
}

func TestNewPandocConverterMissingBinary(t *testing.T) {
	_, err := newPandocConverter(types.ConverterConfig{}, &fakeRunner{missing: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pandoc not found on PATH")
}

func TestPandocTrace(t *testing.T) {
	srcs := writeSources(t, "a.md")
	conv := newFake(t, &fakeRunner{}, types.ConverterConfig{})
	var trace bytes.Buffer
	conv.Trace = &trace

	_, err := ConvertFile(context.Background(), conv, srcs[0], t.TempDir())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(trace.String(), "$ pandoc "+srcs[0]+" -o "))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, -1, ExitCode(errors.New("not started")))

	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	runErr := exec.Command(sh, "-c", "exit 3").Run()
	assert.Equal(t, 3, ExitCode(runErr))
	assert.Equal(t, 3, ExitCode(&ConversionError{Err: runErr}))
}
