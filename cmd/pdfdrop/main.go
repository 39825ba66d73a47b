// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfdrop CLI. It collects the
// ordered file list, the mode, and the output directory, then hands them to
// the dispatcher.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfdrop CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfdrop",
	Short: "Convert, merge, and split documents into PDFs",
	Long: `pdfdrop takes files and directories, keeps the ones that fit the chosen
mode, and writes PDF output to a directory.

  convert  turns documents (Markdown, LaTeX, HTML, DOCX, ...) into PDFs with pandoc
  merge    concatenates PDFs, in the order given, into merged.pdf
  split    writes every page of each PDF as <name>_<page>.pdf

Directories are walked recursively and hidden files are skipped. Use "list"
to preview the selection, save it as a job file, reorder it, and dispatch it
later with "run".`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfdrop.yaml or ~/.config/pdfdrop/pdfdrop.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print each converter command before it runs")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfdrop")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfdrop"))
		}
	}

	viper.SetEnvPrefix("PDFDROP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every key so that environment variables are seen
// by Unmarshal even when no config file sets them.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("converter.backend", string(d.Converter.Backend))
	v.SetDefault("converter.binary", d.Converter.Binary)
	v.SetDefault("converter.args", []string{})
	v.SetDefault("converter.image", d.Converter.Image)
	v.SetDefault("converter.runtime", "auto")
	v.SetDefault("formats.convertible", []string{})
}

// loadConfig decodes the merged configuration (defaults, file, environment,
// bound flags).
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
