/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"context"

	"github.com/stagehand-io/stagehand/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockResolver implements Resolver for testing
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, stage string) (*model.ResolvedConfig, error) {
	args := m.Called(ctx, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResolvedConfig), args.Error(1)
}

// MockTemplateProcessor implements TemplateProcessor for testing
type MockTemplateProcessor struct {
	mock.Mock
}

func (m *MockTemplateProcessor) Process(content string, variables map[string]any) (string, error) {
	args := m.Called(content, variables)
	return args.String(0), args.Error(1)
}
