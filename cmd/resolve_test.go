/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"testing"

	"github.com/stagehand-io/stagehand/internal/config"
	"github.com/stagehand-io/stagehand/internal/model"
	"github.com/stagehand-io/stagehand/internal/naming"
	"github.com/stagehand-io/stagehand/internal/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveCommand_Exists(t *testing.T) {
	cmd := findCommand(rootCmd, "resolve")

	require.NotNil(t, cmd, "resolve command should be registered")
	assert.Equal(t, "resolve <stage>", cmd.Use)
}

func TestResolveCommand_RequiresExactlyOneArg(t *testing.T) {
	cmd := findCommand(rootCmd, "resolve")
	require.NotNil(t, cmd)

	assert.NoError(t, cmd.Args(cmd, []string{"beta"}))
	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.Error(t, cmd.Args(cmd, []string{"beta", "extra"}))
}

func TestResolveCommand_PrintsResolvedConfig(t *testing.T) {
	configFile := writeTestConfig(t, testConfig)

	out, _, err := executeCommand("resolve", "prod", "-c", configFile)

	require.NoError(t, err)
	assert.Contains(t, out, "name: svc")
	assert.Contains(t, out, "containerPort: 8080")
	assert.Contains(t, out, "stage: prod")
	assert.Contains(t, out, "registry: svc-prod")
	assert.Contains(t, out, "logGroup: /aws/ecs/svc-prod")
}

func TestResolveCommand_UnknownStageWarnsAndUsesBase(t *testing.T) {
	configFile := writeTestConfig(t, testConfig)

	out, errOut, err := executeCommand("resolve", "qa", "-c", configFile)

	require.NoError(t, err)
	assert.Contains(t, out, "containerPort: 3000")
	assert.Contains(t, errOut, `Warning: stage "qa" has no override entry`)
}

func TestResolveCommand_MissingConfigFile(t *testing.T) {
	_, _, err := executeCommand("resolve", "beta", "-c", "/nonexistent/stagehand.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve stage beta")
}

func TestResolveCommand_WithMockResolver(t *testing.T) {
	mockResolver := &resolve.MockResolver{}
	mockResolver.On("Resolve", mock.Anything, "beta").Return(&model.ResolvedConfig{
		BaseConfig: config.BaseConfig{AppName: "svc"},
		Stage:      "beta",
		ResourceNames: naming.ResourceNames{
			Registry: "svc-beta",
		},
	}, nil)

	oldResolver := resolver
	SetResolver(mockResolver)
	defer SetResolver(oldResolver)

	out, _, err := executeCommand("resolve", "beta")

	require.NoError(t, err)
	assert.Contains(t, out, "stage: beta")
	mockResolver.AssertExpectations(t)
}

func TestResolveCommand_HandlesResolverError(t *testing.T) {
	mockResolver := &resolve.MockResolver{}
	mockResolver.On("Resolve", mock.Anything, "beta").Return(nil, errors.New("provider exploded"))

	oldResolver := resolver
	SetResolver(mockResolver)
	defer SetResolver(oldResolver)

	_, _, err := executeCommand("resolve", "beta")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider exploded")
}

func TestSetResolver_AllowsInjection(t *testing.T) {
	mockResolver := &resolve.MockResolver{}

	oldResolver := resolver
	SetResolver(mockResolver)
	defer SetResolver(oldResolver)

	assert.Equal(t, mockResolver, getResolver(rootCmd))
}
