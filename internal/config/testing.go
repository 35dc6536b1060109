/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvider implements Provider for testing
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) LoadBaseConfig(ctx context.Context) (*BaseConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BaseConfig), args.Error(1)
}

func (m *MockProvider) GetStageOverride(stage string) (*StageOverride, bool, error) {
	args := m.Called(stage)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*StageOverride), args.Bool(1), args.Error(2)
}

func (m *MockProvider) ListStages() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProvider) Validate() error {
	args := m.Called()
	return args.Error(0)
}
