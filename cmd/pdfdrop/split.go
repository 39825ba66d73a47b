package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

var splitCmd = &cobra.Command{
	Use:   "split [files or directories...]",
	Short: "Split PDFs into one file per page",
	Long: `Split writes every page of each PDF as <name>_<page>.pdf in the output
directory, numbering pages from 1. Existing page files with the same names
are overwritten.`,
	RunE: runMode(types.ModeSplit),
}

func init() {
	addOutputFlags(splitCmd)

	rootCmd.AddCommand(splitCmd)
}
