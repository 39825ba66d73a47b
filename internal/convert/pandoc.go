// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

// runner abstracts command execution for testing.
type runner interface {
	LookPath(file string) (string, error)
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}

// osRunner is the production runner backed by os/exec.
type osRunner struct{}

func (osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// PandocConverter runs a locally installed pandoc as
// "<binary> <input> -o <output> [args...]", once per file.
type PandocConverter struct {
	binary string
	args   []string
	run    runner

	// Trace, when set, receives each command line before it runs.
	Trace io.Writer
}

// NewPandocConverter creates a converter for the configured binary and
// verifies that it is on PATH.
func NewPandocConverter(cfg types.ConverterConfig) (*PandocConverter, error) {
	return newPandocConverter(cfg, osRunner{})
}

func newPandocConverter(cfg types.ConverterConfig, run runner) (*PandocConverter, error) {
	binary := cfg.Binary
	if binary == "" {
		binary = types.DefaultConverterBinary
	}
	if _, err := run.LookPath(binary); err != nil {
		return nil, fmt.Errorf("%s not found on PATH (install it or set converter.backend to container): %w", binary, err)
	}
	return &PandocConverter{binary: binary, args: cfg.Args, run: run}, nil
}

// CommandArgs returns the arguments passed to the converter for one file.
func (p *PandocConverter) CommandArgs(src, dst string) []string {
	args := make([]string, 0, 3+len(p.args))
	args = append(args, src, "-o", dst)
	return append(args, p.args...)
}

// Convert runs the converter and maps a non-zero exit to a ConversionError.
func (p *PandocConverter) Convert(ctx context.Context, src, dst string) error {
	args := p.CommandArgs(src, dst)
	if p.Trace != nil {
		fmt.Fprintf(p.Trace, "$ %s %s\n", p.binary, strings.Join(args, " "))
	}

	out, err := p.run.CombinedOutput(ctx, p.binary, args...)
	if err != nil {
		return &ConversionError{
			Path:     src,
			Target:   dst,
			ExitCode: ExitCode(err),
			Output:   strings.TrimSpace(string(out)),
			Err:      err,
		}
	}
	return nil
}
