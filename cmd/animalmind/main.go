// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the animalmind CLI.
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

// rootCmd is the base command for the animalmind CLI.
var rootCmd = &cobra.Command{
	Use:   "animalmind",
	Short: "Veterinary drug repurposing research pipeline",
	Long: `animalmind turns a fixed set of veterinary problem briefs into ranked,
scored research hypotheses ("repurpose signals"), each backed by deduplicated
evidence references and a deterministic confidence score.

Every output is a non-actionable research hypothesis; the pipeline decides
neither clinical safety nor dosing. Use the run subcommand to execute a full
pipeline run, ingest to pull documents into the local store, and documents
to query stored records.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./animalmind.yaml or ~/.config/animalmind/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("animalmind")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "animalmind"))
		}
	}

	viper.SetEnvPrefix("ANIMALMIND")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string setting: explicit flag first, then the
// viper config key, then the built-in fallback.
func stringSetting(cmd *cobra.Command, flag, viperKey, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(viperKey); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
