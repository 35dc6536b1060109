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
	"github.com/stagehand-io/stagehand/internal/config/file"
	"github.com/stagehand-io/stagehand/internal/resolve"
	"github.com/stagehand-io/stagehand/internal/validate"
	"go.uber.org/zap"
)

// createResolver creates a configuration provider and resolver
func createResolver(configFile string) (*file.Provider, *resolve.ConfigResolver) {
	provider := file.NewProvider(configFile)
	resolver := resolve.NewConfigResolver(provider)
	return provider, resolver
}

// configFileFrom returns the configuration file path from the --config flag
func configFileFrom(cmd *cobra.Command) string {
	configFile, _ := cmd.Flags().GetString("config")
	return configFile
}

// loggerFor returns a development logger when --verbose is set, a no-op
// logger otherwise
func loggerFor(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// stylesFor builds terminal styles honouring the --no-color flag
func stylesFor(cmd *cobra.Command) *validate.Styles {
	noColour, _ := cmd.Flags().GetBool("no-color")
	return validate.NewStyles(!noColour && validate.ShouldUseColour())
}

var (
	// clientFactory can be injected for testing
	clientFactory aws.ClientFactory
)

// getClientFactory returns the client factory, creating a default one if none is set
func getClientFactory(ctx context.Context) (aws.ClientFactory, error) {
	if clientFactory != nil {
		return clientFactory, nil
	}

	factory, err := aws.NewClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client factory: %w", err)
	}
	clientFactory = factory
	return clientFactory, nil
}

// SetClientFactory allows injection of a client factory (for testing)
func SetClientFactory(f aws.ClientFactory) {
	clientFactory = f
}
