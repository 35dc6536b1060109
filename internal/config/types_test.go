/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func baseConfig() *BaseConfig {
	return &BaseConfig{
		AppName:          "svc",
		DisplayName:      "Service",
		SourceDir:        ".",
		ContainerPort:    3000,
		HealthCheckPath:  "/health",
		RegistryName:     "svc",
		ClusterSuffix:    "cluster",
		ServiceName:      "svc-service",
		TaskFamily:       "svc",
		LoadBalancerName: "svc-alb",
		TargetGroupName:  "svc-tg",
		BuildCommands:    []string{"npm ci", "npm run build"},
		DockerBuildArgs:  map[string]any{"NODE_ENV": "production"},
	}
}

func TestBaseConfig_Clone(t *testing.T) {
	original := baseConfig()
	clone := original.Clone()

	require.Equal(t, original, clone)

	// Mutating the clone must not touch the original.
	clone.BuildCommands[0] = "changed"
	clone.DockerBuildArgs["NODE_ENV"] = "test"
	clone.AppName = "other"

	assert.Equal(t, "npm ci", original.BuildCommands[0])
	assert.Equal(t, "production", original.DockerBuildArgs["NODE_ENV"])
	assert.Equal(t, "svc", original.AppName)
}

func TestBaseConfig_CloneNilCollections(t *testing.T) {
	original := &BaseConfig{AppName: "svc"}
	clone := original.Clone()

	assert.Nil(t, clone.BuildCommands)
	assert.Nil(t, clone.DockerBuildArgs)
}

func TestApplicationOverride_ApplyTo(t *testing.T) {
	tests := []struct {
		name     string
		override *ApplicationOverride
		check    func(t *testing.T, merged *BaseConfig)
	}{
		{
			name:     "nil override leaves base untouched",
			override: nil,
			check: func(t *testing.T, merged *BaseConfig) {
				assert.Equal(t, baseConfig(), merged)
			},
		},
		{
			name:     "present fields replace wholesale",
			override: &ApplicationOverride{ContainerPort: intPtr(8080), ServiceName: strPtr("svc-beta-service")},
			check: func(t *testing.T, merged *BaseConfig) {
				assert.Equal(t, 8080, merged.ContainerPort)
				assert.Equal(t, "svc-beta-service", merged.ServiceName)
				assert.Equal(t, "svc", merged.AppName)
			},
		},
		{
			name:     "explicit empty string replaces",
			override: &ApplicationOverride{DisplayName: strPtr("")},
			check: func(t *testing.T, merged *BaseConfig) {
				assert.Equal(t, "", merged.DisplayName)
			},
		},
		{
			name: "all fields",
			override: &ApplicationOverride{
				AppName:          strPtr("app2"),
				DisplayName:      strPtr("App Two"),
				SourceDir:        strPtr("src"),
				ContainerPort:    intPtr(9000),
				HealthCheckPath:  strPtr("/status"),
				RegistryName:     strPtr("app2"),
				ClusterSuffix:    strPtr("fleet"),
				ServiceName:      strPtr("app2-service"),
				TaskFamily:       strPtr("app2"),
				LoadBalancerName: strPtr("app2-alb"),
				TargetGroupName:  strPtr("app2-tg"),
			},
			check: func(t *testing.T, merged *BaseConfig) {
				assert.Equal(t, "app2", merged.AppName)
				assert.Equal(t, "App Two", merged.DisplayName)
				assert.Equal(t, "src", merged.SourceDir)
				assert.Equal(t, 9000, merged.ContainerPort)
				assert.Equal(t, "/status", merged.HealthCheckPath)
				assert.Equal(t, "app2", merged.RegistryName)
				assert.Equal(t, "fleet", merged.ClusterSuffix)
				assert.Equal(t, "app2-service", merged.ServiceName)
				assert.Equal(t, "app2", merged.TaskFamily)
				assert.Equal(t, "app2-alb", merged.LoadBalancerName)
				assert.Equal(t, "app2-tg", merged.TargetGroupName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := baseConfig()
			tt.override.ApplyTo(merged)
			tt.check(t, merged)
		})
	}
}

func TestBuildOverride_ApplyTo_CommandsReplaceWholesale(t *testing.T) {
	merged := baseConfig()

	override := &BuildOverride{BuildCommands: []string{"make build"}}
	override.ApplyTo(merged)

	assert.Equal(t, []string{"make build"}, merged.BuildCommands)
}

func TestBuildOverride_ApplyTo_EmptyCommandListStillReplaces(t *testing.T) {
	merged := baseConfig()

	override := &BuildOverride{BuildCommands: []string{}}
	override.ApplyTo(merged)

	assert.Empty(t, merged.BuildCommands)
	assert.NotNil(t, merged.BuildCommands)
}

func TestBuildOverride_ApplyTo_ArgsMergeKeyByKey(t *testing.T) {
	merged := baseConfig()
	merged.DockerBuildArgs = map[string]any{"B": "2"}

	override := &BuildOverride{DockerBuildArgs: map[string]any{"A": "1"}}
	override.ApplyTo(merged)

	assert.Equal(t, map[string]any{"A": "1", "B": "2"}, merged.DockerBuildArgs)
}

func TestBuildOverride_ApplyTo_OverrideWinsPerKey(t *testing.T) {
	merged := baseConfig()
	merged.DockerBuildArgs = map[string]any{"NODE_ENV": "production", "B": "2"}

	override := &BuildOverride{DockerBuildArgs: map[string]any{"NODE_ENV": "beta"}}
	override.ApplyTo(merged)

	assert.Equal(t, "beta", merged.DockerBuildArgs["NODE_ENV"])
	assert.Equal(t, "2", merged.DockerBuildArgs["B"])
}

func TestBuildOverride_ApplyTo_NilBaseArgs(t *testing.T) {
	merged := baseConfig()
	merged.DockerBuildArgs = nil

	override := &BuildOverride{DockerBuildArgs: map[string]any{"A": "1"}}
	override.ApplyTo(merged)

	assert.Equal(t, map[string]any{"A": "1"}, merged.DockerBuildArgs)
}

func TestBuildOverride_ApplyTo_NilOverride(t *testing.T) {
	merged := baseConfig()

	var override *BuildOverride
	override.ApplyTo(merged)

	assert.Equal(t, baseConfig(), merged)
}

func TestMockProvider_ImplementsProvider(t *testing.T) {
	var provider Provider = &MockProvider{}
	assert.NotNil(t, provider)
}

func TestMockProvider_GetStageOverride_Undefined(t *testing.T) {
	mockProvider := &MockProvider{}
	mockProvider.On("GetStageOverride", "ghost").Return(nil, false, nil)

	override, found, err := mockProvider.GetStageOverride("ghost")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, override)
	mockProvider.AssertExpectations(t)
}

func TestMockProvider_LoadBaseConfig(t *testing.T) {
	mockProvider := &MockProvider{}
	expected := baseConfig()
	mockProvider.On("LoadBaseConfig", mock.Anything).Return(expected, nil)

	cfg, err := mockProvider.LoadBaseConfig(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, cfg)
	mockProvider.AssertExpectations(t)
}
