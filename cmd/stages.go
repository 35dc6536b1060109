/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stagehand-io/stagehand/internal/config"
)

var (
	// configProvider can be injected for testing
	configProvider config.Provider
)

// stagesCmd represents the stages command
var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the stages defined in the configuration",
	Long: `List the stage identifiers defined in the configuration file.

Stages are printed one per line in sorted order.

Examples:
  stagehand stages                 # Stages in stagehand.yaml
  stagehand stages -c app.yaml     # Stages in a specific file`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := getConfigProvider(cmd)

		if err := provider.Validate(); err != nil {
			return fmt.Errorf("configuration is not valid: %w", err)
		}

		stages, err := provider.ListStages()
		if err != nil {
			return fmt.Errorf("failed to list stages: %w", err)
		}

		for _, stage := range stages {
			cmd.Println(stage)
		}

		return nil
	},
}

// getConfigProvider returns the config provider, creating a file-backed one if none is set
func getConfigProvider(cmd *cobra.Command) config.Provider {
	if configProvider != nil {
		return configProvider
	}

	provider, _ := createResolver(configFileFrom(cmd))
	return provider
}

// SetConfigProvider allows injection of a config provider (for testing)
func SetConfigProvider(p config.Provider) {
	configProvider = p
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}
