/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"

	"github.com/stagehand-io/stagehand/internal/naming"
)

// Provider defines the interface for loading base configuration and
// per-stage overrides.
type Provider interface {
	// LoadBaseConfig loads the application's default configuration.
	LoadBaseConfig(ctx context.Context) (*BaseConfig, error)

	// GetStageOverride returns the override record for a stage. The bool
	// reports whether the stage is defined; an undefined stage is not an
	// error, callers fall back to the base configuration.
	GetStageOverride(stage string) (*StageOverride, bool, error)

	// ListStages returns all stage identifiers defined in the configuration.
	ListStages() ([]string, error)

	// Validate checks the configuration source for consistency and errors.
	Validate() error
}

// BaseConfig holds the default settings for an application. Identifier
// fields must be non-empty, ContainerPort must lie in [1, 65535] and
// HealthCheckPath must start with "/" (enforced by the validate package).
type BaseConfig struct {
	AppName          string   `yaml:"name"`
	DisplayName      string   `yaml:"displayName"`
	SourceDir        string   `yaml:"sourceDir"`
	ContainerPort    int      `yaml:"containerPort"`
	HealthCheckPath  string   `yaml:"healthCheckPath"`
	RegistryName     string   `yaml:"registryName"`
	ClusterSuffix    string   `yaml:"clusterSuffix"`
	ServiceName      string   `yaml:"serviceName"`
	TaskFamily       string   `yaml:"taskFamily"`
	LoadBalancerName string   `yaml:"loadBalancerName"`
	TargetGroupName  string   `yaml:"targetGroupName"`
	BuildCommands    []string `yaml:"buildCommands"`

	// DockerBuildArgs values must be strings; anything else is rejected by
	// validation. The any type is carried so dynamically sourced values can
	// be reported instead of silently coerced.
	DockerBuildArgs map[string]any `yaml:"dockerBuildArgs"`
}

// Clone returns a deep copy so merges never mutate the loaded base config.
func (c *BaseConfig) Clone() *BaseConfig {
	clone := *c
	if c.BuildCommands != nil {
		clone.BuildCommands = make([]string, len(c.BuildCommands))
		copy(clone.BuildCommands, c.BuildCommands)
	}
	if c.DockerBuildArgs != nil {
		clone.DockerBuildArgs = make(map[string]any, len(c.DockerBuildArgs))
		for k, v := range c.DockerBuildArgs {
			clone.DockerBuildArgs[k] = v
		}
	}
	return &clone
}

// StageOverride holds the optional override records for one stage.
type StageOverride struct {
	Application *ApplicationOverride
	Build       *BuildOverride
	Naming      *naming.Convention
}

// ApplicationOverride carries optional replacements for base fields. A nil
// field leaves the base value untouched; a present field replaces it
// wholesale.
type ApplicationOverride struct {
	AppName          *string
	DisplayName      *string
	SourceDir        *string
	ContainerPort    *int
	HealthCheckPath  *string
	RegistryName     *string
	ClusterSuffix    *string
	ServiceName      *string
	TaskFamily       *string
	LoadBalancerName *string
	TargetGroupName  *string
}

// ApplyTo writes each present field over the corresponding base field.
func (o *ApplicationOverride) ApplyTo(base *BaseConfig) {
	if o == nil {
		return
	}
	if o.AppName != nil {
		base.AppName = *o.AppName
	}
	if o.DisplayName != nil {
		base.DisplayName = *o.DisplayName
	}
	if o.SourceDir != nil {
		base.SourceDir = *o.SourceDir
	}
	if o.ContainerPort != nil {
		base.ContainerPort = *o.ContainerPort
	}
	if o.HealthCheckPath != nil {
		base.HealthCheckPath = *o.HealthCheckPath
	}
	if o.RegistryName != nil {
		base.RegistryName = *o.RegistryName
	}
	if o.ClusterSuffix != nil {
		base.ClusterSuffix = *o.ClusterSuffix
	}
	if o.ServiceName != nil {
		base.ServiceName = *o.ServiceName
	}
	if o.TaskFamily != nil {
		base.TaskFamily = *o.TaskFamily
	}
	if o.LoadBalancerName != nil {
		base.LoadBalancerName = *o.LoadBalancerName
	}
	if o.TargetGroupName != nil {
		base.TargetGroupName = *o.TargetGroupName
	}
}

// BuildOverride carries the build-level overrides for a stage.
type BuildOverride struct {
	// BuildCommands, when non-nil, wholly replaces the base list.
	BuildCommands []string

	// DockerBuildArgs is merged key-by-key into the base mapping: the
	// override value wins per key, untouched base keys survive.
	DockerBuildArgs map[string]any
}

// ApplyTo merges the build overrides into base per the per-field rules above.
func (o *BuildOverride) ApplyTo(base *BaseConfig) {
	if o == nil {
		return
	}
	if o.BuildCommands != nil {
		base.BuildCommands = make([]string, len(o.BuildCommands))
		copy(base.BuildCommands, o.BuildCommands)
	}
	if o.DockerBuildArgs != nil {
		if base.DockerBuildArgs == nil {
			base.DockerBuildArgs = make(map[string]any, len(o.DockerBuildArgs))
		}
		for k, v := range o.DockerBuildArgs {
			base.DockerBuildArgs[k] = v
		}
	}
}
