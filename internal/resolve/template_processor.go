/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateProcessor defines the interface for rendering templated build strings.
type TemplateProcessor interface {
	Process(content string, variables map[string]any) (string, error)
}

// BuildTemplateProcessor implements TemplateProcessor using Go's
// text/template with Sprig functions. Build commands and build-argument
// values may reference the stage and generated names, e.g.
// "docker tag app {{ .Names.Registry }}:latest".
type BuildTemplateProcessor struct{}

// NewBuildTemplateProcessor creates a new build template processor.
func NewBuildTemplateProcessor() *BuildTemplateProcessor {
	return &BuildTemplateProcessor{}
}

// Process renders content with the provided variables.
func (tp *BuildTemplateProcessor) Process(content string, variables map[string]any) (string, error) {
	tmpl, err := template.New("build").
		Funcs(sprig.TxtFuncMap()).
		Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
