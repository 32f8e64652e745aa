// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the certsplit CLI, which separates
// multi-page certificate PDFs into individually named single-page files.
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

// rootCmd is the base command for the certsplit CLI.
var rootCmd = &cobra.Command{
	Use:   "certsplit",
	Short: "Split multi-page certificate PDFs into named single-page files",
	Long: `certsplit takes a PDF holding one certificate per page and writes each
page as its own PDF, named after the recipient. Names come from an ordered
list file (.xlsx or .csv), from regex patterns matched against the page
text, or from a generated placeholder when neither applies.

Without an argument, split processes every PDF in the input directory;
with one, it processes that file alone.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./certsplit.yaml or ~/.config/certsplit/config.yaml)")
	rootCmd.PersistentFlags().String("patterns", "", "pattern file, one regex per line (default: patrones.txt)")

	viper.BindPFlag("patterns", rootCmd.PersistentFlags().Lookup("patterns"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("certsplit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "certsplit"))
		}
	}

	viper.SetEnvPrefix("CERTSPLIT")
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
