/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package naming

import (
	"regexp"
	"strings"
)

// ResourceClass identifies a category of AWS resource with its own naming and
// length rules.
type ResourceClass int

const (
	ClassRegistry ResourceClass = iota
	ClassCluster
	ClassService
	ClassTaskFamily
	ClassLoadBalancer
	ClassTargetGroup
	ClassLogGroup
	ClassSecurityGroup
)

// String returns the human-readable class name used in error messages.
func (c ResourceClass) String() string {
	switch c {
	case ClassRegistry:
		return "registry"
	case ClassCluster:
		return "cluster"
	case ClassService:
		return "service"
	case ClassTaskFamily:
		return "task-family"
	case ClassLoadBalancer:
		return "load-balancer"
	case ClassTargetGroup:
		return "target-group"
	case ClassLogGroup:
		return "log-group"
	case ClassSecurityGroup:
		return "security-group"
	default:
		return "unknown"
	}
}

// Rule holds the validation pattern and maximum length for a resource class.
type Rule struct {
	Pattern   *regexp.Regexp
	MaxLength int
}

var (
	// genericNamePattern covers most AWS resource names: starts and ends
	// with an alphanumeric, interior may contain hyphens.
	genericNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)

	// registryNamePattern matches ECR repository names: lowercase
	// alphanumeric segments separated by '.', '_', '-', or '/'.
	registryNamePattern = regexp.MustCompile(`^[a-z0-9]+(?:[._/-][a-z0-9]+)*$`)

	// logPathPattern matches CloudWatch log group paths.
	logPathPattern = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)
)

var ruleCatalog = map[ResourceClass]Rule{
	ClassRegistry:      {Pattern: registryNamePattern, MaxLength: 256},
	ClassCluster:       {Pattern: genericNamePattern, MaxLength: 255},
	ClassService:       {Pattern: genericNamePattern, MaxLength: 255},
	ClassTaskFamily:    {Pattern: genericNamePattern, MaxLength: 255},
	ClassLoadBalancer:  {Pattern: genericNamePattern, MaxLength: 32},
	ClassTargetGroup:   {Pattern: genericNamePattern, MaxLength: 32},
	ClassLogGroup:      {Pattern: logPathPattern, MaxLength: 512},
	ClassSecurityGroup: {Pattern: genericNamePattern, MaxLength: 255},
}

// reservedPrefixes trigger warnings (not errors) when a generated name starts
// with one, case-insensitively.
var reservedPrefixes = []string{"aws", "amazon", "ecs", "ec2"}

// RuleFor returns the naming rule for a resource class.
func RuleFor(class ResourceClass) Rule {
	return ruleCatalog[class]
}

// MatchesGenericPattern reports whether name satisfies the generic AWS naming
// pattern, used for validating base identifiers before generation.
func MatchesGenericPattern(name string) bool {
	return genericNamePattern.MatchString(name)
}

// HasReservedPrefix reports whether name starts with a reserved AWS prefix,
// and returns the matching prefix.
func HasReservedPrefix(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return prefix, true
		}
	}
	return "", false
}
