package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfdrop/internal/classify"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the extensions accepted by convert",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := commandConfig(cmd)
		if err != nil {
			return err
		}
		c := classify.NewClassifier(cfg.Formats.Convertible)
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(c.Formats(), " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
