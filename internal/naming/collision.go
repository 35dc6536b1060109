/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package naming

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strconv"
)

// Strategy selects how the collision resolver derives alternative names.
type Strategy int

const (
	// NumericSuffix appends "-1", "-2", ... per attempt.
	NumericSuffix Strategy = iota
	// HashSuffix appends a deterministic 6-character base-36 digest, so
	// re-resolving identical configuration yields identical names across
	// runs and processes.
	HashSuffix
	// ErrorOnConflict fails immediately on any collision, no retries.
	ErrorOnConflict
)

// DefaultMaxAttempts bounds collision resolution when callers pass zero.
const DefaultMaxAttempts = 10

// NameSet tracks names already claimed by other resources.
type NameSet map[string]struct{}

// NewNameSet builds a set from the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is already claimed.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Add claims a name.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// NameTooLongError indicates a candidate exceeds its class's maximum length.
type NameTooLongError struct {
	Name  string
	Class ResourceClass
	Limit int
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("%s name %q is %d characters, exceeding the %d character limit",
		e.Class, e.Name, len(e.Name), e.Limit)
}

// ConflictError indicates a collision under the ErrorOnConflict strategy.
type ConflictError struct {
	Name  string
	Class ResourceClass
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s name %q is already in use", e.Class, e.Name)
}

// UnresolvableCollisionError indicates the attempt limit was exhausted
// without finding a unique, rule-conformant name.
type UnresolvableCollisionError struct {
	Name     string
	Class    ResourceClass
	Attempts int
}

func (e *UnresolvableCollisionError) Error() string {
	return fmt.Sprintf("could not find a unique %s name for %q within %d attempts",
		e.Class, e.Name, e.Attempts)
}

// ResolveCollision returns candidate if it is unclaimed and rule-conformant,
// or derives an alternative per strategy. A candidate over the class's length
// limit fails immediately: appending suffixes cannot shrink a name.
func ResolveCollision(candidate string, class ResourceClass, existing NameSet, strategy Strategy, maxAttempts int) (string, error) {
	rule := RuleFor(class)
	if len(candidate) > rule.MaxLength {
		return "", &NameTooLongError{Name: candidate, Class: class, Limit: rule.MaxLength}
	}

	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	if !existing.Contains(candidate) && rule.Pattern.MatchString(candidate) {
		return candidate, nil
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var next string
		switch strategy {
		case NumericSuffix:
			next = candidate + "-" + strconv.Itoa(attempt)
		case HashSuffix:
			next = candidate + "-" + shortHash(candidate, attempt)
		case ErrorOnConflict:
			if existing.Contains(candidate) {
				return "", &ConflictError{Name: candidate, Class: class}
			}
			return "", fmt.Errorf("%s name %q does not match its naming pattern", class, candidate)
		default:
			return "", fmt.Errorf("unknown collision strategy %d", strategy)
		}

		if !existing.Contains(next) && rule.Pattern.MatchString(next) && len(next) <= rule.MaxLength {
			return next, nil
		}
	}

	return "", &UnresolvableCollisionError{Name: candidate, Class: class, Attempts: maxAttempts}
}

// shortHash produces a stable 6-character base-36 digest of base and attempt.
// Same inputs always produce the same digest, across runs and processes.
func shortHash(base string, attempt int) string {
	sum := sha256.Sum256([]byte(base + strconv.Itoa(attempt)))
	v := binary.BigEndian.Uint32(sum[:4])
	digest := strconv.FormatUint(uint64(v), 36)
	for len(digest) < 6 {
		digest = "0" + digest
	}
	return digest[:6]
}
