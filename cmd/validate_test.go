/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invalidPortConfig = testConfig + `  qa:
    app:
      containerPort: -1
      healthCheckPath: status
`

func TestValidateCommand_Exists(t *testing.T) {
	cmd := findCommand(rootCmd, "validate")

	require.NotNil(t, cmd, "validate command should be registered")
	assert.Equal(t, "validate <stage>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("detailed"))
}

func TestValidateCommand_ValidStage(t *testing.T) {
	configFile := writeTestConfig(t, testConfig)

	out, _, err := executeCommand("validate", "beta", "-c", configFile, "--no-color")

	require.NoError(t, err)
	assert.Contains(t, out, "configuration is valid")
}

func TestValidateCommand_InvalidStageReportsAllErrors(t *testing.T) {
	configFile := writeTestConfig(t, invalidPortConfig)

	out, _, err := executeCommand("validate", "qa", "-c", configFile, "--no-color")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration for stage qa is invalid")
	assert.Contains(t, out, "-1")
	assert.Contains(t, out, "healthCheckPath")
	assert.Contains(t, out, "configuration has 2 error(s)")
}

func TestValidateCommand_DetailedOutput(t *testing.T) {
	configFile := writeTestConfig(t, invalidPortConfig)

	out, _, err := executeCommand("validate", "qa", "-c", configFile, "--no-color", "--detailed")

	require.Error(t, err)
	assert.Contains(t, out, "[InvalidPort]")
	assert.Contains(t, out, "[InvalidPath]")
	assert.Contains(t, out, "suggestion: /status")
}

func TestValidateCommand_MissingConfigFile(t *testing.T) {
	_, _, err := executeCommand("validate", "beta", "-c", "/nonexistent/stagehand.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve stage beta")
}
