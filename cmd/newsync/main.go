// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the newsync CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the newsync CLI.
var rootCmd = &cobra.Command{
	Use:   "newsync",
	Short: "Sync the lab website News section with Semantic Scholar",
	Long: `newsync keeps a lab website's News section current. It fetches recent
publications from Semantic Scholar for the configured author IDs, merges
them with manually curated entries from the JSON news store, deduplicates
by URL and DOI, and rewrites the marker-delimited News region of the page.

The update subcommand runs the whole pipeline; fetch and history exist for
inspecting what the tool sees and what it has seen before.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./newsync.yaml or ~/.config/newsync/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("newsync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "newsync"))
		}
	}

	viper.SetEnvPrefix("NEWSYNC")
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
