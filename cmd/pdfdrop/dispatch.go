// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfdrop/internal/classify"
	"github.com/pdiddy/pdfdrop/internal/container"
	"github.com/pdiddy/pdfdrop/internal/convert"
	"github.com/pdiddy/pdfdrop/internal/dispatch"
	"github.com/pdiddy/pdfdrop/internal/expand"
	"github.com/pdiddy/pdfdrop/internal/report"
	"github.com/pdiddy/pdfdrop/pkg/types"
)

var errNoFiles = errors.New("no files selected")

// addOutputFlags registers the flags shared by every command that writes
// output.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output-dir", "o", "", "destination directory, created if missing (default: output_dir from config)")
	cmd.Flags().String("report", "", "also write the run report to this file (.yaml or .json)")
}

// addConverterFlags registers converter overrides for commands that may
// convert.
func addConverterFlags(cmd *cobra.Command) {
	cmd.Flags().String("backend", "", "converter backend: pandoc or container (default: converter.backend from config)")
}

// commandConfig binds the command's flags onto viper keys and decodes the
// configuration.
func commandConfig(cmd *cobra.Command) (types.Config, error) {
	v := viper.GetViper()
	bindings := map[string]string{
		"output_dir":        "output-dir",
		"converter.backend": "backend",
	}
	for key, flag := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return types.Config{}, err
			}
		}
	}
	return loadConfig(v)
}

// selectPaths expands the arguments and keeps the paths that fit mode,
// noting how many were left out.
func selectPaths(cmd *cobra.Command, c *classify.Classifier, mode types.Mode, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, errNoFiles
	}
	all, err := expand.Expand(args)
	if err != nil {
		return nil, err
	}
	selected := c.ForMode(mode, all)
	if skipped := len(all) - len(selected); skipped > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped %d file(s) not usable with mode %s\n", skipped, mode)
	}
	return selected, nil
}

// newConverter builds the converter selected by cfg.
func newConverter(cfg types.ConverterConfig, trace io.Writer) (convert.Converter, error) {
	switch cfg.Backend {
	case types.BackendPandoc, "":
		p, err := convert.NewPandocConverter(cfg)
		if err != nil {
			return nil, err
		}
		p.Trace = trace
		return p, nil
	case types.BackendContainer:
		rt, err := container.NamedRuntime(cfg.Runtime)
		if err != nil {
			return nil, err
		}
		c, err := convert.NewContainerConverter(rt, cfg)
		if err != nil {
			return nil, err
		}
		c.Trace = trace
		return c, nil
	}
	return nil, fmt.Errorf("unsupported converter backend %q: use pandoc or container", cfg.Backend)
}

// execute dispatches paths in mode, prints the summary, and writes the
// optional report file.
func execute(cmd *cobra.Command, cfg types.Config, mode types.Mode, paths []string) error {
	if len(paths) == 0 {
		return errNoFiles
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("%w: pass --output-dir or set output_dir", dispatch.ErrNoOutputDir)
	}

	var trace io.Writer
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		trace = cmd.ErrOrStderr()
	}

	var conv convert.Converter
	if mode == types.ModeConvert {
		c, err := newConverter(cfg.Converter, trace)
		if err != nil {
			return err
		}
		conv = c
	}

	out := cmd.OutOrStdout()
	d := dispatch.New(conv, classify.NewClassifier(cfg.Formats.Convertible), out)
	rep, err := d.Dispatch(cmd.Context(), mode, paths, cfg.OutputDir)
	if rep != nil {
		report.NewPrinter(out).Summary(rep)
		if path, _ := cmd.Flags().GetString("report"); path != "" {
			if werr := report.WriteFile(path, rep); werr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", werr)
			}
		}
	}
	return err
}

// runMode is the RunE shared by convert, merge, and split.
func runMode(mode types.Mode) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := commandConfig(cmd)
		if err != nil {
			return err
		}
		paths, err := selectPaths(cmd, classify.NewClassifier(cfg.Formats.Convertible), mode, args)
		if err != nil {
			return err
		}
		return execute(cmd, cfg, mode, paths)
	}
}
