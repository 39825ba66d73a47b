// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfdrop/internal/classify"
	"github.com/pdiddy/pdfdrop/internal/job"
	"github.com/pdiddy/pdfdrop/internal/report"
	"github.com/pdiddy/pdfdrop/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list [files or directories...]",
	Short: "Preview the files a mode would use",
	Long: `List expands directories, drops hidden files, and keeps the files that fit
the selected mode, in the order they would be processed.

With --save-job the list is written as a job file instead. Edit the file to
reorder or remove entries, then dispatch it with "pdfdrop run".`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	modeName, _ := cmd.Flags().GetString("mode")
	mode, err := types.ParseMode(modeName)
	if err != nil {
		return err
	}
	formatName, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}
	paths, err := selectPaths(cmd, classify.NewClassifier(cfg.Formats.Convertible), mode, args)
	if err != nil {
		return err
	}

	if jobPath, _ := cmd.Flags().GetString("save-job"); jobPath != "" {
		if len(paths) == 0 {
			return errNoFiles
		}
		if err := job.Write(jobPath, &job.Job{Mode: mode, OutputDir: cfg.OutputDir, Paths: paths}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d file(s) to %s\n", len(paths), jobPath)
		return nil
	}

	if format == report.FormatText {
		report.NewPrinter(cmd.OutOrStdout()).List(mode, paths)
		return nil
	}
	return report.Encode(cmd.OutOrStdout(), format, report.Preview{Mode: mode, Paths: paths})
}

func init() {
	listCmd.Flags().StringP("mode", "m", string(types.ModeConvert), "mode: convert, merge, or split")
	listCmd.Flags().String("format", "text", "output format: text, yaml, or json")
	listCmd.Flags().String("save-job", "", "write the list as a job file instead of printing it")
	listCmd.Flags().StringP("output-dir", "o", "", "output directory recorded in the saved job")

	rootCmd.AddCommand(listCmd)
}
