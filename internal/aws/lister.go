/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

// DefaultResourceLister implements ResourceLister against the real AWS APIs
type DefaultResourceLister struct {
	ecs ECSClient
	ecr ECRClient
	elb ELBClient
}

// NewResourceListerWithClients creates a resource lister from pre-built
// service clients (useful for testing)
func NewResourceListerWithClients(ecsClient ECSClient, ecrClient ECRClient, elbClient ELBClient) *DefaultResourceLister {
	return &DefaultResourceLister{
		ecs: ecsClient,
		ecr: ecrClient,
		elb: elbClient,
	}
}

// nameFromArn extracts the trailing resource name from an ARN. ECS ARNs end
// with "cluster/<name>" or "service/<cluster>/<name>", so the final path
// segment is the name in both formats.
func nameFromArn(arn string) string {
	if i := strings.LastIndex(arn, "/"); i >= 0 {
		return arn[i+1:]
	}
	return arn
}

// ListRepositoryNames returns the names of all ECR repositories in the region
func (l *DefaultResourceLister) ListRepositoryNames(ctx context.Context) ([]string, error) {
	var names []string
	var nextToken *string

	for {
		out, err := l.ecr.DescribeRepositories(ctx, &ecr.DescribeRepositoriesInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe ECR repositories: %w", err)
		}

		for _, repo := range out.Repositories {
			names = append(names, aws.ToString(repo.RepositoryName))
		}

		if out.NextToken == nil {
			return names, nil
		}
		nextToken = out.NextToken
	}
}

// ListClusterNames returns the names of all ECS clusters in the region
func (l *DefaultResourceLister) ListClusterNames(ctx context.Context) ([]string, error) {
	var names []string
	var nextToken *string

	for {
		out, err := l.ecs.ListClusters(ctx, &ecs.ListClustersInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list ECS clusters: %w", err)
		}

		for _, arn := range out.ClusterArns {
			names = append(names, nameFromArn(arn))
		}

		if out.NextToken == nil {
			return names, nil
		}
		nextToken = out.NextToken
	}
}

// ListServiceNames returns the names of all ECS services in the given cluster
func (l *DefaultResourceLister) ListServiceNames(ctx context.Context, cluster string) ([]string, error) {
	var names []string
	var nextToken *string

	for {
		out, err := l.ecs.ListServices(ctx, &ecs.ListServicesInput{
			Cluster:   aws.String(cluster),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list ECS services in cluster %s: %w", cluster, err)
		}

		for _, arn := range out.ServiceArns {
			names = append(names, nameFromArn(arn))
		}

		if out.NextToken == nil {
			return names, nil
		}
		nextToken = out.NextToken
	}
}

// ListTaskFamilies returns all registered ECS task definition family names
func (l *DefaultResourceLister) ListTaskFamilies(ctx context.Context) ([]string, error) {
	var names []string
	var nextToken *string

	for {
		out, err := l.ecs.ListTaskDefinitionFamilies(ctx, &ecs.ListTaskDefinitionFamiliesInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list ECS task definition families: %w", err)
		}

		names = append(names, out.Families...)

		if out.NextToken == nil {
			return names, nil
		}
		nextToken = out.NextToken
	}
}

// ListLoadBalancerNames returns the names of all load balancers in the region
func (l *DefaultResourceLister) ListLoadBalancerNames(ctx context.Context) ([]string, error) {
	var names []string
	var marker *string

	for {
		out, err := l.elb.DescribeLoadBalancers(ctx, &elbv2.DescribeLoadBalancersInput{
			Marker: marker,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe load balancers: %w", err)
		}

		for _, lb := range out.LoadBalancers {
			names = append(names, aws.ToString(lb.LoadBalancerName))
		}

		if out.NextMarker == nil {
			return names, nil
		}
		marker = out.NextMarker
	}
}

// ListTargetGroupNames returns the names of all target groups in the region
func (l *DefaultResourceLister) ListTargetGroupNames(ctx context.Context) ([]string, error) {
	var names []string
	var marker *string

	for {
		out, err := l.elb.DescribeTargetGroups(ctx, &elbv2.DescribeTargetGroupsInput{
			Marker: marker,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe target groups: %w", err)
		}

		for _, tg := range out.TargetGroups {
			names = append(names, aws.ToString(tg.TargetGroupName))
		}

		if out.NextMarker == nil {
			return names, nil
		}
		marker = out.NextMarker
	}
}
