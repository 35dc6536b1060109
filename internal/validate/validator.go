/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package validate checks resolved deployment configurations against the
// structural, networking and naming rules the provisioning layer depends on.
// All rules are evaluated independently: every violation is collected so the
// caller can fix all issues before retrying, rather than learning of them one
// at a time.
package validate

import (
	"fmt"
	"strings"

	"github.com/stagehand-io/stagehand/internal/model"
	"github.com/stagehand-io/stagehand/internal/naming"
)

// Kind classifies a validation error.
type Kind string

const (
	KindMissingRequiredField Kind = "MissingRequiredField"
	KindInvalidPort          Kind = "InvalidPort"
	KindInvalidPath          Kind = "InvalidPath"
	KindAwsNamingViolation   Kind = "AwsNamingViolation"
	KindNameTooLong          Kind = "NameTooLong"
	KindInvalidBuildArg      Kind = "InvalidBuildArg"
)

// TypedError is a single validation error with remediation detail.
type TypedError struct {
	Kind       Kind
	Field      string
	Message    string
	Value      string
	Suggestion string
}

// Outcome is the flat validation result.
type Outcome struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// DetailedOutcome is the validation result with typed errors and a summary.
type DetailedOutcome struct {
	Valid    bool
	Errors   []TypedError
	Warnings []string
	Summary  string
}

// Check runs all validation rules and returns the flat outcome.
func Check(cfg *model.ResolvedConfig) Outcome {
	errs, warnings := collectViolations(cfg)

	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Message
	}

	return Outcome{
		Valid:    len(errs) == 0,
		Errors:   messages,
		Warnings: warnings,
	}
}

// CheckDetailed runs all validation rules and returns typed errors with
// suggestions plus a one-line summary.
func CheckDetailed(cfg *model.ResolvedConfig) DetailedOutcome {
	errs, warnings := collectViolations(cfg)

	var summary string
	if len(errs) == 0 {
		summary = fmt.Sprintf("configuration is valid (%d warning(s))", len(warnings))
	} else {
		summary = fmt.Sprintf("configuration has %d error(s) and %d warning(s)", len(errs), len(warnings))
	}

	return DetailedOutcome{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
		Summary:  summary,
	}
}

// Flatten converts a detailed outcome to the flat message form.
func (d DetailedOutcome) Flatten() Outcome {
	messages := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		messages[i] = e.Message
	}
	return Outcome{
		Valid:    d.Valid,
		Errors:   messages,
		Warnings: d.Warnings,
	}
}

// collectViolations evaluates every rule, never short-circuiting.
func collectViolations(cfg *model.ResolvedConfig) ([]TypedError, []string) {
	var errs []TypedError
	var warnings []string

	// Required-field presence.
	required := []struct {
		field string
		value string
	}{
		{"name", cfg.AppName},
		{"sourceDir", cfg.SourceDir},
		{"registryName", cfg.RegistryName},
		{"serviceName", cfg.ServiceName},
		{"taskFamily", cfg.TaskFamily},
		{"loadBalancerName", cfg.LoadBalancerName},
		{"targetGroupName", cfg.TargetGroupName},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, TypedError{
				Kind:       KindMissingRequiredField,
				Field:      r.field,
				Message:    fmt.Sprintf("required field %s must not be empty", r.field),
				Suggestion: fmt.Sprintf("set %s in the app section of the configuration", r.field),
			})
		}
	}

	// Port range.
	if cfg.ContainerPort < 1 || cfg.ContainerPort > 65535 {
		errs = append(errs, TypedError{
			Kind:       KindInvalidPort,
			Field:      "containerPort",
			Message:    fmt.Sprintf("containerPort %d is outside the valid range [1, 65535]", cfg.ContainerPort),
			Value:      fmt.Sprintf("%d", cfg.ContainerPort),
			Suggestion: "use the port the container listens on, e.g. 3000 or 8080",
		})
	}

	// Health-check path.
	if !strings.HasPrefix(cfg.HealthCheckPath, "/") {
		errs = append(errs, TypedError{
			Kind:       KindInvalidPath,
			Field:      "healthCheckPath",
			Message:    fmt.Sprintf("healthCheckPath %q must start with '/'", cfg.HealthCheckPath),
			Value:      cfg.HealthCheckPath,
			Suggestion: "/" + cfg.HealthCheckPath,
		})
	}

	// AWS naming conformance of base identifiers, pre-generation.
	namedBases := []struct {
		field string
		value string
	}{
		{"registryName", cfg.RegistryName},
		{"serviceName", cfg.ServiceName},
		{"taskFamily", cfg.TaskFamily},
		{"loadBalancerName", cfg.LoadBalancerName},
		{"targetGroupName", cfg.TargetGroupName},
	}
	for _, b := range namedBases {
		if b.value != "" && !naming.MatchesGenericPattern(b.value) {
			errs = append(errs, TypedError{
				Kind:       KindAwsNamingViolation,
				Field:      b.field,
				Message:    fmt.Sprintf("%s %q does not conform to AWS naming rules", b.field, b.value),
				Value:      b.value,
				Suggestion: fmt.Sprintf("use alphanumeric characters and interior hyphens, e.g. %q", naming.NormalizeForRegistry(b.value)),
			})
		}
	}

	// Generated-name lengths.
	classes := cfg.ResourceNames.ClassOf()
	generated := []struct {
		field string
		name  string
	}{
		{"registry", cfg.ResourceNames.Registry},
		{"cluster", cfg.ResourceNames.Cluster},
		{"service", cfg.ResourceNames.Service},
		{"taskFamily", cfg.ResourceNames.TaskFamily},
		{"loadBalancer", cfg.ResourceNames.LoadBalancer},
		{"targetGroup", cfg.ResourceNames.TargetGroup},
		{"logGroup", cfg.ResourceNames.LogGroup},
		{"albSecurityGroup", cfg.ResourceNames.ALBSecurityGroup},
		{"serviceSecurityGroup", cfg.ResourceNames.ServiceSecurityGroup},
	}
	for _, g := range generated {
		field, name := g.field, g.name
		rule := naming.RuleFor(classes[field])
		if len(name) > rule.MaxLength {
			errs = append(errs, TypedError{
				Kind:       KindNameTooLong,
				Field:      field,
				Message:    fmt.Sprintf("generated %s name %q exceeds the %d character limit", field, name, rule.MaxLength),
				Value:      name,
				Suggestion: fmt.Sprintf("shorten the base identifier so the stage-qualified name fits in %d characters", rule.MaxLength),
			})
		}
	}

	// Duplicate detection over the generated set. Warning only: duplicates
	// here may be benign for log-path-style identifiers, and the generator's
	// own cross-check already treats duplicates in its output as an error.
	seen := make(map[string]bool, len(generated))
	for _, name := range cfg.ResourceNames.All() {
		if name == "" {
			continue
		}
		if seen[name] {
			warnings = append(warnings, fmt.Sprintf("resource name %q is used by more than one resource", name))
		}
		seen[name] = true
	}

	// Docker build-argument values.
	for key, value := range cfg.DockerBuildArgs {
		if _, ok := value.(string); !ok {
			errs = append(errs, TypedError{
				Kind:       KindInvalidBuildArg,
				Field:      "dockerBuildArgs." + key,
				Message:    fmt.Sprintf("docker build argument %q must be a string, got %T", key, value),
				Value:      fmt.Sprintf("%v", value),
				Suggestion: fmt.Sprintf("quote the value, e.g. %s: \"%v\"", key, value),
			})
		}
	}

	// Build-command list. Empty is a warning: deployment may still be
	// attempted but is likely to fail downstream.
	if len(cfg.BuildCommands) == 0 {
		warnings = append(warnings, "no build commands configured; the image build step will have nothing to run")
	}

	// Path traversal in the source directory.
	if strings.Contains(cfg.SourceDir, "..") {
		warnings = append(warnings, fmt.Sprintf("sourceDir %q contains '..', which may escape the project root", cfg.SourceDir))
	}

	// Reserved-prefix check over generated names.
	for _, g := range generated {
		if prefix, reserved := naming.HasReservedPrefix(g.name); reserved {
			warnings = append(warnings, fmt.Sprintf("generated %s name %q starts with reserved prefix %q", g.field, g.name, prefix))
		}
	}

	return errs, warnings
}
