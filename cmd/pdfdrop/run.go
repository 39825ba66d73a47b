// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfdrop/internal/job"
)

var runCmd = &cobra.Command{
	Use:   "run <job.yaml>",
	Short: "Dispatch a saved job file",
	Long: `Run reads a job file (mode, output_dir, paths) and dispatches it exactly as
listed: paths are not expanded again and their order is kept. Relative
paths are resolved against the job file's directory. --output-dir overrides
the job's output_dir.`,
	Args: cobra.ExactArgs(1),
	RunE: runJob,
}

func runJob(cmd *cobra.Command, args []string) error {
	j, err := job.Read(args[0])
	if err != nil {
		return err
	}

	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = j.OutputDir
	}
	return execute(cmd, cfg, j.Mode, j.Paths)
}

func init() {
	addOutputFlags(runCmd)
	addConverterFlags(runCmd)

	rootCmd.AddCommand(runCmd)
}
