/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stagehand-io/stagehand/internal/resolve"
	"gopkg.in/yaml.v3"
)

var (
	// resolver can be injected for testing
	resolver resolve.Resolver
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <stage>",
	Short: "Resolve the full configuration for a stage",
	Long: `Resolve the configuration for a deployment stage.

This command merges the stage's overrides onto the base configuration,
derives the AWS resource names for the stage and validates the result.
The resolved configuration is printed as YAML; warnings go to stderr.

Examples:
  stagehand resolve beta               # Resolve the beta stage
  stagehand resolve prod -c app.yaml   # Resolve prod from a specific file`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stage := args[0]
		ctx := context.Background()

		r := getResolver(cmd)
		resolved, err := r.Resolve(ctx, stage)
		if err != nil {
			return fmt.Errorf("failed to resolve stage %s: %w", stage, err)
		}

		for _, warning := range resolved.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", warning)
		}

		out, err := yaml.Marshal(resolved)
		if err != nil {
			return fmt.Errorf("failed to marshal resolved configuration: %w", err)
		}
		cmd.Print(string(out))

		return nil
	},
}

// getResolver returns the resolver instance, creating a default one if none is set
func getResolver(cmd *cobra.Command) resolve.Resolver {
	if resolver != nil {
		return resolver
	}

	_, r := createResolver(configFileFrom(cmd))
	r.SetLogger(loggerFor(cmd))
	return r
}

// SetResolver allows injection of a resolver (for testing)
func SetResolver(r resolve.Resolver) {
	resolver = r
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
