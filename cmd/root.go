/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stagehand-io/stagehand/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "stagehand",
	Version: version.Short(),
	Short:   "A command-line tool for resolving stage configuration and AWS resource names",
	Long: `Stagehand is a CLI tool that turns one YAML file into per-stage deployment configuration by providing:

• Declarative configuration in YAML files
• Stage-specific override merging
• Deterministic AWS resource name generation
• Collision handling with numeric or hash suffixes
• Validation against AWS naming and length rules

Use stagehand to resolve, inspect and validate the configuration your
deployment tooling feeds into AWS, without touching any infrastructure.`,
}

// RootCommand exposes the root command for documentation generation.
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "stagehand.yaml", "configuration file (default is stagehand.yaml)")
	rootCmd.PersistentFlags().String("region", "", "AWS region for --check-aws lookups (overrides the default)")
	rootCmd.PersistentFlags().String("profile", "", "AWS shared config profile for --check-aws lookups")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable coloured output")
}
