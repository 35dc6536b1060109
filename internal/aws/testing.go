/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/mock"
)

// MockResourceLister implements ResourceLister for testing
type MockResourceLister struct {
	mock.Mock
}

func (m *MockResourceLister) ListRepositoryNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockResourceLister) ListClusterNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockResourceLister) ListServiceNames(ctx context.Context, cluster string) ([]string, error) {
	args := m.Called(ctx, cluster)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockResourceLister) ListTaskFamilies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockResourceLister) ListLoadBalancerNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockResourceLister) ListTargetGroupNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockClientFactory implements ClientFactory for testing
type MockClientFactory struct {
	mock.Mock
}

func (m *MockClientFactory) GetResourceLister(ctx context.Context, region string) (ResourceLister, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ResourceLister), args.Error(1)
}

func (m *MockClientFactory) GetBaseConfig() awssdk.Config {
	args := m.Called()
	return args.Get(0).(awssdk.Config)
}

func (m *MockClientFactory) ValidateRegion(region string) error {
	args := m.Called(region)
	return args.Error(0)
}
