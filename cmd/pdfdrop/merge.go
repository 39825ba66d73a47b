package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [files or directories...]",
	Short: "Merge PDFs into merged.pdf",
	Long: `Merge concatenates the pages of every PDF, in the order given, into
merged.pdf inside the output directory. Files inside a directory argument
are taken in name order. Non-PDF files are ignored.`,
	RunE: runMode(types.ModeMerge),
}

func init() {
	addOutputFlags(mergeCmd)

	rootCmd.AddCommand(mergeCmd)
}
