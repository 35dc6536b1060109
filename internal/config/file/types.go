/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package file contains types and structures specific to file-based
// configuration providers. These types represent the raw YAML structure
// before stage resolution.
package file

import (
	"github.com/stagehand-io/stagehand/internal/config"
	"github.com/stagehand-io/stagehand/internal/naming"
)

// Config represents the raw YAML configuration file structure.
type Config struct {
	App    *App              `yaml:"app"`
	Stages map[string]*Stage `yaml:"stages"`
}

// App represents the base application configuration as it appears in YAML.
type App struct {
	Name             string         `yaml:"name"`
	DisplayName      string         `yaml:"displayName"`
	SourceDir        string         `yaml:"sourceDir"`
	ContainerPort    int            `yaml:"containerPort"`
	HealthCheckPath  string         `yaml:"healthCheckPath"`
	RegistryName     string         `yaml:"registryName"`
	ClusterSuffix    string         `yaml:"clusterSuffix"`
	ServiceName      string         `yaml:"serviceName"`
	TaskFamily       string         `yaml:"taskFamily"`
	LoadBalancerName string         `yaml:"loadBalancerName"`
	TargetGroupName  string         `yaml:"targetGroupName"`
	BuildCommands    []string       `yaml:"buildCommands"`
	DockerBuildArgs  map[string]any `yaml:"dockerBuildArgs"`
}

// Stage represents one stage's override record as it appears in YAML.
type Stage struct {
	Naming *NamingConvention `yaml:"naming"`
	App    *AppOverride      `yaml:"app"`
	Build  *BuildOverride    `yaml:"build"`
}

// NamingConvention represents the per-stage naming policy in YAML. Absent
// fields take the defaults: no prefix, stage suffix, "-" separator.
type NamingConvention struct {
	StagePrefix *bool   `yaml:"stagePrefix"`
	StageSuffix *bool   `yaml:"stageSuffix"`
	Separator   *string `yaml:"separator"`
}

// AppOverride mirrors App with every field optional. Absent fields keep the
// base value; present fields replace it wholesale.
type AppOverride struct {
	Name             *string `yaml:"name"`
	DisplayName      *string `yaml:"displayName"`
	SourceDir        *string `yaml:"sourceDir"`
	ContainerPort    *int    `yaml:"containerPort"`
	HealthCheckPath  *string `yaml:"healthCheckPath"`
	RegistryName     *string `yaml:"registryName"`
	ClusterSuffix    *string `yaml:"clusterSuffix"`
	ServiceName      *string `yaml:"serviceName"`
	TaskFamily       *string `yaml:"taskFamily"`
	LoadBalancerName *string `yaml:"loadBalancerName"`
	TargetGroupName  *string `yaml:"targetGroupName"`
}

// BuildOverride represents a stage's build overrides in YAML.
type BuildOverride struct {
	BuildCommands   []string       `yaml:"buildCommands"`
	DockerBuildArgs map[string]any `yaml:"dockerBuildArgs"`
}

// toBaseConfig converts the raw app section into the generic config type.
func (a *App) toBaseConfig() *config.BaseConfig {
	return &config.BaseConfig{
		AppName:          a.Name,
		DisplayName:      a.DisplayName,
		SourceDir:        a.SourceDir,
		ContainerPort:    a.ContainerPort,
		HealthCheckPath:  a.HealthCheckPath,
		RegistryName:     a.RegistryName,
		ClusterSuffix:    a.ClusterSuffix,
		ServiceName:      a.ServiceName,
		TaskFamily:       a.TaskFamily,
		LoadBalancerName: a.LoadBalancerName,
		TargetGroupName:  a.TargetGroupName,
		BuildCommands:    a.BuildCommands,
		DockerBuildArgs:  a.DockerBuildArgs,
	}
}

// toStageOverride converts a raw stage record into the generic override type.
func (s *Stage) toStageOverride() *config.StageOverride {
	override := &config.StageOverride{}

	if s.App != nil {
		override.Application = &config.ApplicationOverride{
			AppName:          s.App.Name,
			DisplayName:      s.App.DisplayName,
			SourceDir:        s.App.SourceDir,
			ContainerPort:    s.App.ContainerPort,
			HealthCheckPath:  s.App.HealthCheckPath,
			RegistryName:     s.App.RegistryName,
			ClusterSuffix:    s.App.ClusterSuffix,
			ServiceName:      s.App.ServiceName,
			TaskFamily:       s.App.TaskFamily,
			LoadBalancerName: s.App.LoadBalancerName,
			TargetGroupName:  s.App.TargetGroupName,
		}
	}

	if s.Build != nil {
		override.Build = &config.BuildOverride{
			BuildCommands:   s.Build.BuildCommands,
			DockerBuildArgs: s.Build.DockerBuildArgs,
		}
	}

	if s.Naming != nil {
		override.Naming = s.Naming.toConvention()
	}

	return override
}

// toConvention applies the naming defaults over absent fields.
func (n *NamingConvention) toConvention() *naming.Convention {
	conv := naming.DefaultConvention()
	if n.StagePrefix != nil {
		conv.UseStagePrefix = *n.StagePrefix
	}
	if n.StageSuffix != nil {
		conv.UseStageSuffix = *n.StageSuffix
	}
	if n.Separator != nil {
		conv.Separator = *n.Separator
	}
	return &conv
}
