/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package validate

import (
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
)

// Styles contains the styles for rendering validation reports.
type Styles struct {
	Header  lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	UseColour bool
}

// NewStyles builds the style set, using Fang's colour scheme so report
// colours stay consistent with the CLI's help output.
func NewStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}

	if !useColour {
		plain := lipgloss.NewStyle()
		s.Header = plain
		s.Key = plain
		s.Value = plain
		s.Subtle = plain
		s.Success = plain
		s.Warning = plain
		s.Error = plain
		return s
	}

	hasDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	lightDark := lipgloss.LightDark(hasDark)
	scheme := fang.DefaultColorScheme(lightDark)

	s.Header = lipgloss.NewStyle().Bold(true).Foreground(scheme.Title)
	s.Key = lipgloss.NewStyle().Foreground(scheme.Argument)
	s.Value = lipgloss.NewStyle().Foreground(scheme.Base)
	s.Subtle = lipgloss.NewStyle().Foreground(scheme.Comment)
	s.Success = lipgloss.NewStyle().Foreground(scheme.Flag)
	s.Warning = lipgloss.NewStyle().Bold(true).Foreground(scheme.Command)
	s.Error = lipgloss.NewStyle().Bold(true).Foreground(scheme.ErrorDetails)

	return s
}

// ShouldUseColour determines if colour output should be used.
func ShouldUseColour() bool {
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
