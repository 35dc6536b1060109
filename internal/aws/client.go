/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

// DefaultClient provides a high-level interface for AWS operations
type DefaultClient struct {
	config aws.Config
	lister *DefaultResourceLister
}

// Config holds configuration for creating an AWS client
type Config struct {
	Region  string
	Profile string
}

// NewDefaultClient creates a new AWS client with the specified configuration
func NewDefaultClient(ctx context.Context, cfg Config) (*DefaultClient, error) {
	var opts []func(*config.LoadOptions) error

	// Set region if specified
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	// Set profile if specified
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	// Load AWS configuration
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &DefaultClient{
		config: awsCfg,
		lister: listerFromConfig(awsCfg),
	}, nil
}

// ResourceLister returns the resource lister backed by this client's config
func (c *DefaultClient) ResourceLister() ResourceLister {
	return c.lister
}

// Region returns the configured AWS region
func (c *DefaultClient) Region() string {
	return c.config.Region
}

func listerFromConfig(awsCfg aws.Config) *DefaultResourceLister {
	return NewResourceListerWithClients(
		ecs.NewFromConfig(awsCfg),
		ecr.NewFromConfig(awsCfg),
		elbv2.NewFromConfig(awsCfg),
	)
}
