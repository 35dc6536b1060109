/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package naming derives and validates the AWS resource names a deployment
// will use. It is pure and synchronous: the only state is the existing-names
// set callers may thread through calls for collision avoidance.
package naming

// Convention describes how a base identifier is qualified with a stage name.
type Convention struct {
	UseStagePrefix bool
	UseStageSuffix bool
	Separator      string
}

// DefaultConvention returns the standard convention: stage suffix, "-" separator.
func DefaultConvention() Convention {
	return Convention{
		UseStagePrefix: false,
		UseStageSuffix: true,
		Separator:      "-",
	}
}

// Apply produces the stage-qualified form of base under the convention.
// An empty stage returns base unchanged. Prefix and suffix may both apply,
// yielding stage-base-stage shaped names.
func (c Convention) Apply(base, stage string) string {
	if stage == "" {
		return base
	}

	name := base
	if c.UseStagePrefix {
		name = stage + c.Separator + name
	}
	if c.UseStageSuffix {
		name = name + c.Separator + stage
	}
	return name
}
