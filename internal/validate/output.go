/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package validate

import (
	"fmt"
	"strings"
)

// RenderOutcome formats a flat outcome as a terminal report.
func RenderOutcome(outcome Outcome, styles *Styles) string {
	var b strings.Builder

	for _, msg := range outcome.Errors {
		fmt.Fprintf(&b, "%s %s\n", styles.Error.Render("✗"), msg)
	}
	for _, msg := range outcome.Warnings {
		fmt.Fprintf(&b, "%s %s\n", styles.Warning.Render("!"), msg)
	}

	if outcome.Valid {
		fmt.Fprintf(&b, "%s configuration is valid\n", styles.Success.Render("✓"))
	} else {
		fmt.Fprintf(&b, "%s configuration has %d error(s)\n", styles.Error.Render("✗"), len(outcome.Errors))
	}

	return b.String()
}

// RenderDetailedOutcome formats a detailed outcome, one block per error with
// field, value and suggestion.
func RenderDetailedOutcome(outcome DetailedOutcome, styles *Styles) string {
	var b strings.Builder

	for _, e := range outcome.Errors {
		fmt.Fprintf(&b, "%s %s %s\n",
			styles.Error.Render("✗"),
			styles.Subtle.Render("["+string(e.Kind)+"]"),
			e.Message)
		fmt.Fprintf(&b, "  %s %s\n", styles.Key.Render("field:"), e.Field)
		if e.Value != "" {
			fmt.Fprintf(&b, "  %s %s\n", styles.Key.Render("value:"), e.Value)
		}
		if e.Suggestion != "" {
			fmt.Fprintf(&b, "  %s %s\n", styles.Key.Render("suggestion:"), e.Suggestion)
		}
	}

	for _, msg := range outcome.Warnings {
		fmt.Fprintf(&b, "%s %s\n", styles.Warning.Render("!"), msg)
	}

	if outcome.Valid {
		fmt.Fprintf(&b, "%s %s\n", styles.Success.Render("✓"), outcome.Summary)
	} else {
		fmt.Fprintf(&b, "%s %s\n", styles.Error.Render("✗"), outcome.Summary)
	}

	return b.String()
}
