/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package resolve merges base configuration with stage overrides, derives the
// deployment's resource names and validates the result.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/stagehand-io/stagehand/internal/config"
	"github.com/stagehand-io/stagehand/internal/model"
	"github.com/stagehand-io/stagehand/internal/naming"
	"github.com/stagehand-io/stagehand/internal/validate"
	"go.uber.org/zap"
)

// Resolver resolves deployment configuration for a stage.
type Resolver interface {
	Resolve(ctx context.Context, stage string) (*model.ResolvedConfig, error)
}

// ConfigurationInvalidError aggregates every validation error found in a
// resolved configuration, so callers can fix all issues before retrying.
type ConfigurationInvalidError struct {
	Stage   string
	Outcome validate.DetailedOutcome
}

func (e *ConfigurationInvalidError) Error() string {
	messages := make([]string, len(e.Outcome.Errors))
	for i, err := range e.Outcome.Errors {
		messages[i] = err.Message
	}
	return fmt.Sprintf("configuration for stage %q is invalid: %s", e.Stage, strings.Join(messages, "; "))
}

// ConfigResolver implements Resolver on top of a config.Provider.
//
// An unrecognised stage is not an error: resolution warns and proceeds with
// the unmodified base configuration, so early-stage iteration is never
// blocked by a missing override entry.
type ConfigResolver struct {
	provider  config.Provider
	generator *naming.Generator
	templates TemplateProcessor
	logger    *zap.Logger
}

// NewConfigResolver creates a resolver with default collision handling
// (numeric suffixes, bounded attempts) and a fresh existing-names set.
func NewConfigResolver(provider config.Provider) *ConfigResolver {
	return &ConfigResolver{
		provider:  provider,
		generator: naming.NewGenerator(nil, naming.NumericSuffix, naming.DefaultMaxAttempts),
		templates: NewBuildTemplateProcessor(),
		logger:    zap.NewNop(),
	}
}

// SetLogger injects a logger for resolution diagnostics.
func (r *ConfigResolver) SetLogger(logger *zap.Logger) {
	r.logger = logger
}

// SetGenerator injects a name generator, letting callers choose the collision
// strategy or share an existing-names set across resolvers. The caller is
// responsible for serialising access to a shared set.
func (r *ConfigResolver) SetGenerator(generator *naming.Generator) {
	r.generator = generator
}

// SetTemplateProcessor allows injecting a custom template processor (for testing).
func (r *ConfigResolver) SetTemplateProcessor(templates TemplateProcessor) {
	r.templates = templates
}

// Resolve looks up the stage's overrides, merges them onto the base
// configuration, derives the resource name set and validates the result.
func (r *ConfigResolver) Resolve(ctx context.Context, stage string) (*model.ResolvedConfig, error) {
	base, err := r.provider.LoadBaseConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load base configuration: %w", err)
	}

	merged := base.Clone()
	convention := naming.DefaultConvention()
	var warnings []string

	override, found, err := r.provider.GetStageOverride(stage)
	if err != nil {
		return nil, fmt.Errorf("failed to look up stage %q: %w", stage, err)
	}
	if !found {
		warnings = append(warnings, fmt.Sprintf("stage %q has no override entry; using base configuration", stage))
		r.logger.Warn("stage has no override entry, falling back to base configuration",
			zap.String("stage", stage))
	} else {
		override.Application.ApplyTo(merged)
		override.Build.ApplyTo(merged)
		if override.Naming != nil {
			convention = *override.Naming
		}
	}

	names, err := r.generator.Generate(naming.Input{
		AppName:          merged.AppName,
		RegistryName:     merged.RegistryName,
		ClusterSuffix:    merged.ClusterSuffix,
		ServiceName:      merged.ServiceName,
		TaskFamily:       merged.TaskFamily,
		LoadBalancerName: merged.LoadBalancerName,
		TargetGroupName:  merged.TargetGroupName,
		Stage:            stage,
		Convention:       convention,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate resource names for stage %q: %w", stage, err)
	}

	if err := r.renderBuildStrings(merged, stage, names); err != nil {
		return nil, err
	}

	resolved := &model.ResolvedConfig{
		BaseConfig:    *merged,
		Stage:         stage,
		ResourceNames: *names,
	}

	outcome := validate.CheckDetailed(resolved)
	warnings = append(warnings, outcome.Warnings...)
	for _, warning := range warnings {
		r.logger.Warn("resolution warning", zap.String("stage", stage), zap.String("warning", warning))
	}

	if !outcome.Valid {
		return nil, &ConfigurationInvalidError{Stage: stage, Outcome: outcome}
	}

	resolved.Warnings = warnings
	return resolved, nil
}

// renderBuildStrings runs build commands and string build-argument values
// through the template processor, with the stage and generated names in scope.
func (r *ConfigResolver) renderBuildStrings(merged *config.BaseConfig, stage string, names *naming.ResourceNames) error {
	variables := map[string]any{
		"Stage":   stage,
		"AppName": merged.AppName,
		"Names":   names,
	}

	for i, command := range merged.BuildCommands {
		rendered, err := r.templates.Process(command, variables)
		if err != nil {
			return fmt.Errorf("failed to render build command %q: %w", command, err)
		}
		merged.BuildCommands[i] = rendered
	}

	for key, value := range merged.DockerBuildArgs {
		str, ok := value.(string)
		if !ok {
			continue // non-string values are reported by validation
		}
		rendered, err := r.templates.Process(str, variables)
		if err != nil {
			return fmt.Errorf("failed to render build argument %q: %w", key, err)
		}
		merged.DockerBuildArgs[key] = rendered
	}

	return nil
}
