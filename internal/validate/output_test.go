/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderOutcome_Valid(t *testing.T) {
	outcome := Check(validResolvedConfig())

	out := RenderOutcome(outcome, NewStyles(false))

	assert.Contains(t, out, "configuration is valid")
}

func TestRenderOutcome_ErrorsAndWarnings(t *testing.T) {
	cfg := validResolvedConfig()
	cfg.ContainerPort = -1
	cfg.BuildCommands = nil

	out := RenderOutcome(Check(cfg), NewStyles(false))

	assert.Contains(t, out, "containerPort -1")
	assert.Contains(t, out, "no build commands")
	assert.Contains(t, out, "configuration has 1 error(s)")
}

func TestRenderDetailedOutcome(t *testing.T) {
	cfg := validResolvedConfig()
	cfg.HealthCheckPath = "status"

	out := RenderDetailedOutcome(CheckDetailed(cfg), NewStyles(false))

	assert.Contains(t, out, "[InvalidPath]")
	assert.Contains(t, out, "field: healthCheckPath")
	assert.Contains(t, out, "suggestion: /status")
}

func TestNewStyles_PlainModePassesThrough(t *testing.T) {
	styles := NewStyles(false)

	assert.False(t, styles.UseColour)
	assert.Equal(t, "plain", styles.Error.Render("plain"))
}
