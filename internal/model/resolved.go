/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"github.com/stagehand-io/stagehand/internal/config"
	"github.com/stagehand-io/stagehand/internal/naming"
)

// ResolvedConfig is a fully resolved deployment configuration: the merged
// base configuration, the stage it was resolved for and the derived resource
// names. Constructed once per resolution, immutable thereafter; stack-building
// code consumes it and must treat the names as the single source of truth.
type ResolvedConfig struct {
	config.BaseConfig `yaml:",inline"`

	Stage         string               `yaml:"stage"`
	ResourceNames naming.ResourceNames `yaml:"resourceNames"`

	// Warnings collected during resolution. Never blocking.
	Warnings []string `yaml:"-"`
}
