// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the note-atomizer CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the note-atomizer CLI.
var rootCmd = &cobra.Command{
	Use:   "note-atomizer",
	Short: "Split a flat notes file into one file per note",
	Long: `note-atomizer takes a scratch file holding many notes and writes each
note to its own file in an output directory.

Notes are delimited by markdown headings of a fixed level or by timestamped
log lines. File names are derived from the note titles.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		slog.Debug("logging configured", "level", level.String())
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: note-atomizer.yaml in . or ~/.config/note-atomizer)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug detail to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("note-atomizer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "note-atomizer"))
		}
	}

	viper.SetEnvPrefix("NOTE_ATOMIZER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
