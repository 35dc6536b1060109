/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package naming

import (
	"regexp"
	"strings"
)

var (
	registryIllegalChars = regexp.MustCompile(`[^a-z0-9._/-]`)
	separatorRuns        = regexp.MustCompile(`[._-]{2,}`)
)

// NormalizeForRegistry rewrites an arbitrary string into a legal ECR
// repository name: lowercase, restricted to [a-z0-9._/-], no leading or
// trailing separators, no separator runs. Idempotent, so re-normalizing an
// already-normalized name returns it unchanged.
func NormalizeForRegistry(name string) string {
	normalized := strings.ToLower(name)
	normalized = registryIllegalChars.ReplaceAllString(normalized, "-")
	normalized = strings.Trim(normalized, "._-")
	normalized = separatorRuns.ReplaceAllString(normalized, "-")
	return normalized
}
