/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

// ECSClient defines the ECS client operations used for listing resources
// This allows for easier testing with mock implementations
type ECSClient interface {
	ListClusters(ctx context.Context, params *ecs.ListClustersInput, optFns ...func(*ecs.Options)) (*ecs.ListClustersOutput, error)
	ListServices(ctx context.Context, params *ecs.ListServicesInput, optFns ...func(*ecs.Options)) (*ecs.ListServicesOutput, error)
	ListTaskDefinitionFamilies(ctx context.Context, params *ecs.ListTaskDefinitionFamiliesInput, optFns ...func(*ecs.Options)) (*ecs.ListTaskDefinitionFamiliesOutput, error)
}

// ECRClient defines the ECR client operations used for listing repositories
type ECRClient interface {
	DescribeRepositories(ctx context.Context, params *ecr.DescribeRepositoriesInput, optFns ...func(*ecr.Options)) (*ecr.DescribeRepositoriesOutput, error)
}

// ELBClient defines the ELBv2 client operations used for listing load
// balancers and target groups
type ELBClient interface {
	DescribeLoadBalancers(ctx context.Context, params *elbv2.DescribeLoadBalancersInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeLoadBalancersOutput, error)
	DescribeTargetGroups(ctx context.Context, params *elbv2.DescribeTargetGroupsInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeTargetGroupsOutput, error)
}

// Ensure that the actual service clients implement our interfaces
var _ ECSClient = (*ecs.Client)(nil)
var _ ECRClient = (*ecr.Client)(nil)
var _ ELBClient = (*elbv2.Client)(nil)

// Ensure that DefaultResourceLister implements ResourceLister
var _ ResourceLister = (*DefaultResourceLister)(nil)

// Ensure that DefaultClientFactory implements ClientFactory
var _ ClientFactory = (*DefaultClientFactory)(nil)

// ResourceLister enumerates the names of deployed resources. All operations
// are read-only; nothing in this package creates, changes or deletes AWS
// resources.
type ResourceLister interface {
	ListRepositoryNames(ctx context.Context) ([]string, error)
	ListClusterNames(ctx context.Context) ([]string, error)
	ListServiceNames(ctx context.Context, cluster string) ([]string, error)
	ListTaskFamilies(ctx context.Context) ([]string, error)
	ListLoadBalancerNames(ctx context.Context) ([]string, error)
	ListTargetGroupNames(ctx context.Context) ([]string, error)
}
