/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stagehand-io/stagehand/internal/resolve"
	"github.com/stagehand-io/stagehand/internal/validate"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <stage>",
	Short: "Validate the resolved configuration for a stage",
	Long: `Validate the configuration a stage resolves to.

This command merges the stage's overrides, derives the resource names and
reports every rule violation at once: missing required fields, an invalid
container port or health check path, AWS naming violations and over-length
names. Warnings (duplicate names, reserved prefixes, missing build commands)
do not fail validation.

Examples:
  stagehand validate beta              # Validate the beta stage
  stagehand validate prod --detailed   # Include fields and suggestions`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stage := args[0]
		ctx := context.Background()

		detailed, _ := cmd.Flags().GetBool("detailed")
		styles := stylesFor(cmd)

		resolved, err := getResolver(cmd).Resolve(ctx, stage)

		var invalidErr *resolve.ConfigurationInvalidError
		if errors.As(err, &invalidErr) {
			cmd.Print(renderOutcome(invalidErr.Outcome, detailed, styles))
			return fmt.Errorf("configuration for stage %s is invalid", stage)
		}
		if err != nil {
			return fmt.Errorf("failed to resolve stage %s: %w", stage, err)
		}

		cmd.Print(renderOutcome(validate.CheckDetailed(resolved), detailed, styles))
		return nil
	},
}

func renderOutcome(outcome validate.DetailedOutcome, detailed bool, styles *validate.Styles) string {
	if detailed {
		return validate.RenderDetailedOutcome(outcome, styles)
	}
	return validate.RenderOutcome(outcome.Flatten(), styles)
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Bool("detailed", false, "show error kinds, fields and suggestions")
}
