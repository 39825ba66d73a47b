package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files or directories...]",
	Short: "Convert documents to PDF with pandoc",
	Long: `Convert runs pandoc once per document, writing <name>.pdf into the output
directory. Only files with a convertible extension are used (see "pdfdrop
formats"). Every file is attempted; failures are listed at the end and the
command exits non-zero if any file failed.

Set converter.backend to "container" to run pandoc inside docker or podman
when it is not installed locally.`,
	RunE: runMode(types.ModeConvert),
}

func init() {
	addOutputFlags(convertCmd)
	addConverterFlags(convertCmd)

	rootCmd.AddCommand(convertCmd)
}
