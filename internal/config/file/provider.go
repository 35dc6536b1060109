/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/stagehand-io/stagehand/internal/config"
	"gopkg.in/yaml.v3"
)

// Provider implements config.Provider by reading from a YAML file.
type Provider struct {
	filename  string
	rawConfig *Config
}

// NewProvider creates a new file-based Provider for the given filename.
func NewProvider(filename string) *Provider {
	return &Provider{
		filename: filename,
	}
}

// LoadBaseConfig loads the application's default configuration from the file.
func (fp *Provider) LoadBaseConfig(ctx context.Context) (*config.BaseConfig, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	if fp.rawConfig.App == nil {
		return nil, fmt.Errorf("config file '%s' has no app section", fp.filename)
	}

	return fp.rawConfig.App.toBaseConfig(), nil
}

// GetStageOverride returns the override record for the requested stage. An
// undefined stage is reported via the bool, not an error: resolution falls
// back to the base configuration.
func (fp *Provider) GetStageOverride(stage string) (*config.StageOverride, bool, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, false, err
	}

	rawStage, exists := fp.rawConfig.Stages[stage]
	if !exists {
		return nil, false, nil
	}
	if rawStage == nil {
		// A stage key with no body is a defined stage with no overrides.
		return &config.StageOverride{}, true, nil
	}

	return rawStage.toStageOverride(), true, nil
}

// ListStages returns all stage identifiers, sorted for stable output.
func (fp *Provider) ListStages() ([]string, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	stages := make([]string, 0, len(fp.rawConfig.Stages))
	for name := range fp.rawConfig.Stages {
		stages = append(stages, name)
	}
	sort.Strings(stages)

	return stages, nil
}

// Validate checks the configuration file for structural errors.
func (fp *Provider) Validate() error {
	if err := fp.ensureLoaded(); err != nil {
		return err
	}

	if fp.rawConfig.App == nil {
		return fmt.Errorf("config file '%s' has no app section", fp.filename)
	}
	if fp.rawConfig.App.Name == "" {
		return fmt.Errorf("config file '%s': app.name must not be empty", fp.filename)
	}

	for name, stage := range fp.rawConfig.Stages {
		if name == "" {
			return fmt.Errorf("config file '%s': stage with empty identifier", fp.filename)
		}
		if stage != nil && stage.Naming != nil && stage.Naming.Separator != nil && *stage.Naming.Separator == "" {
			return fmt.Errorf("config file '%s': stage '%s' has an empty naming separator", fp.filename, name)
		}
	}

	return nil
}

// ensureLoaded loads the raw configuration from file if not already loaded.
func (fp *Provider) ensureLoaded() error {
	if fp.rawConfig != nil {
		return nil
	}

	data, err := os.ReadFile(fp.filename)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", fp.filename, err)
	}

	var rawConfig Config
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed to parse YAML config file '%s': %w", fp.filename, err)
	}

	fp.rawConfig = &rawConfig
	return nil
}
