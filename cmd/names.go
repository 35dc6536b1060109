/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stagehand-io/stagehand/internal/aws"
	"github.com/stagehand-io/stagehand/internal/model"
	"github.com/stagehand-io/stagehand/internal/naming"
	"gopkg.in/yaml.v3"
)

var (
	// resourceLister can be injected for testing
	resourceLister aws.ResourceLister
)

// namesCmd represents the names command
var namesCmd = &cobra.Command{
	Use:   "names <stage>",
	Short: "Show the AWS resource names generated for a stage",
	Long: `Show the AWS resource names that resolution derives for a stage.

The nine names cover the container registry, ECS cluster, service and task
family, load balancer, target group, log group and both security groups.

With --check-aws the names of resources already deployed in the account are
fetched first, so collision suffixing avoids them. This only reads from AWS;
nothing is created or changed.

Examples:
  stagehand names beta                             # Names for the beta stage
  stagehand names prod --check-aws --region eu-west-1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stage := args[0]
		ctx := context.Background()

		resolved, err := resolveWithExistingNames(ctx, cmd, stage)
		if err != nil {
			return fmt.Errorf("failed to resolve stage %s: %w", stage, err)
		}

		out, err := yaml.Marshal(resolved.ResourceNames)
		if err != nil {
			return fmt.Errorf("failed to marshal resource names: %w", err)
		}
		cmd.Print(string(out))

		return nil
	},
}

// resolveWithExistingNames resolves the stage, optionally seeding the name
// generator with the account's deployed resource names
func resolveWithExistingNames(ctx context.Context, cmd *cobra.Command, stage string) (*model.ResolvedConfig, error) {
	if resolver != nil {
		return resolver.Resolve(ctx, stage)
	}

	_, r := createResolver(configFileFrom(cmd))
	r.SetLogger(loggerFor(cmd))

	checkAws, _ := cmd.Flags().GetBool("check-aws")
	if checkAws {
		lister, err := getResourceLister(ctx, cmd)
		if err != nil {
			return nil, err
		}
		existing, err := aws.CollectExistingNames(ctx, lister)
		if err != nil {
			return nil, fmt.Errorf("failed to collect deployed resource names: %w", err)
		}
		r.SetGenerator(naming.NewGenerator(existing, naming.NumericSuffix, naming.DefaultMaxAttempts))
	}

	return r.Resolve(ctx, stage)
}

// getResourceLister returns the resource lister, building one from the client
// factory and --region flag if none is set. A --profile bypasses the factory:
// its per-region cache would hand the wrong credentials to a later call with
// a different profile.
func getResourceLister(ctx context.Context, cmd *cobra.Command) (aws.ResourceLister, error) {
	if resourceLister != nil {
		return resourceLister, nil
	}

	if profile, _ := cmd.Flags().GetString("profile"); profile != "" {
		region, _ := cmd.Flags().GetString("region")
		client, err := aws.NewDefaultClient(ctx, aws.Config{Region: region, Profile: profile})
		if err != nil {
			return nil, err
		}
		return client.ResourceLister(), nil
	}

	factory, err := getClientFactory(ctx)
	if err != nil {
		return nil, err
	}

	region, _ := cmd.Flags().GetString("region")
	if region == "" {
		region = factory.GetBaseConfig().Region
	}
	if err := factory.ValidateRegion(region); err != nil {
		return nil, err
	}

	return factory.GetResourceLister(ctx, region)
}

// SetResourceLister allows injection of a resource lister (for testing)
func SetResourceLister(l aws.ResourceLister) {
	resourceLister = l
}

func init() {
	rootCmd.AddCommand(namesCmd)

	namesCmd.Flags().Bool("check-aws", false, "seed collision detection with names of deployed AWS resources")
}
