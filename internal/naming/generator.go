/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package naming

import (
	"fmt"
)

// Input carries the base identifiers a generation run derives names from.
type Input struct {
	AppName          string
	RegistryName     string
	ClusterSuffix    string
	ServiceName      string
	TaskFamily       string
	LoadBalancerName string
	TargetGroupName  string

	Stage      string
	Convention Convention
}

// ResourceNames is the full set of derived identifiers for one deployment.
// Invariant: no two members are equal, each conforms to its class's rule and
// length limit (enforced by Generator.Generate's cross-check).
type ResourceNames struct {
	Registry             string `yaml:"registry"`
	Cluster              string `yaml:"cluster"`
	Service              string `yaml:"service"`
	TaskFamily           string `yaml:"taskFamily"`
	LoadBalancer         string `yaml:"loadBalancer"`
	TargetGroup          string `yaml:"targetGroup"`
	LogGroup             string `yaml:"logGroup"`
	ALBSecurityGroup     string `yaml:"albSecurityGroup"`
	ServiceSecurityGroup string `yaml:"serviceSecurityGroup"`
}

// namedEntry pairs a generated name with its class for cross-validation.
type namedEntry struct {
	field string
	name  string
	class ResourceClass
}

// entries lists all nine names with their classes. Both security groups share
// the generic security-group rule class but are distinct entries.
func (r *ResourceNames) entries() []namedEntry {
	return []namedEntry{
		{"registry", r.Registry, ClassRegistry},
		{"cluster", r.Cluster, ClassCluster},
		{"service", r.Service, ClassService},
		{"taskFamily", r.TaskFamily, ClassTaskFamily},
		{"loadBalancer", r.LoadBalancer, ClassLoadBalancer},
		{"targetGroup", r.TargetGroup, ClassTargetGroup},
		{"logGroup", r.LogGroup, ClassLogGroup},
		{"albSecurityGroup", r.ALBSecurityGroup, ClassSecurityGroup},
		{"serviceSecurityGroup", r.ServiceSecurityGroup, ClassSecurityGroup},
	}
}

// All returns the nine generated names in declaration order.
func (r *ResourceNames) All() []string {
	entries := r.entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// ClassOf returns each generated name keyed by its resource class field name.
func (r *ResourceNames) ClassOf() map[string]ResourceClass {
	classes := make(map[string]ResourceClass, 9)
	for _, e := range r.entries() {
		classes[e.field] = e.class
	}
	return classes
}

// InvalidGeneratedNameError indicates the post-generation cross-check found a
// duplicate or rule violation collision resolution did not catch.
type InvalidGeneratedNameError struct {
	Field  string
	Name   string
	Reason string
}

func (e *InvalidGeneratedNameError) Error() string {
	return fmt.Sprintf("generated %s name %q is invalid: %s", e.Field, e.Name, e.Reason)
}

// Generator derives resource name sets, remembering names it has handed out
// so subsequent calls within the same process avoid re-colliding with them.
// Not internally locked: callers resolving stages in parallel over a shared
// generator must serialize access.
type Generator struct {
	existing    NameSet
	strategy    Strategy
	maxAttempts int
}

// NewGenerator creates a generator. A nil existing set starts empty; callers
// may share one set across generators to extend collision avoidance.
func NewGenerator(existing NameSet, strategy Strategy, maxAttempts int) *Generator {
	if existing == nil {
		existing = make(NameSet)
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		existing:    existing,
		strategy:    strategy,
		maxAttempts: maxAttempts,
	}
}

// Existing exposes the generator's claimed-names set.
func (g *Generator) Existing() NameSet {
	return g.existing
}

// Generate derives the nine resource names for the input. Claimed names are
// committed to the generator's existing set only when the whole run succeeds.
func (g *Generator) Generate(in Input) (*ResourceNames, error) {
	conv := in.Convention
	if conv == (Convention{}) {
		conv = DefaultConvention()
	}

	// Scratch set: existing names plus the ones generated so far this run.
	scratch := make(NameSet, len(g.existing)+9)
	for name := range g.existing {
		scratch.Add(name)
	}

	claim := func(candidate string, class ResourceClass) (string, error) {
		name, err := ResolveCollision(candidate, class, scratch, g.strategy, g.maxAttempts)
		if err != nil {
			return "", err
		}
		scratch.Add(name)
		return name, nil
	}

	resolve := func(base string, class ResourceClass, normalize bool) (string, error) {
		candidate := conv.Apply(base, in.Stage)
		if normalize {
			candidate = NormalizeForRegistry(candidate)
		}
		return claim(candidate, class)
	}

	names := &ResourceNames{}
	var err error

	if names.Registry, err = resolve(in.RegistryName, ClassRegistry, true); err != nil {
		return nil, err
	}
	if names.Cluster, err = resolve(in.AppName+"-"+in.ClusterSuffix, ClassCluster, false); err != nil {
		return nil, err
	}
	if names.Service, err = resolve(in.ServiceName, ClassService, false); err != nil {
		return nil, err
	}
	if names.TaskFamily, err = resolve(in.TaskFamily, ClassTaskFamily, false); err != nil {
		return nil, err
	}
	if names.LoadBalancer, err = resolve(in.LoadBalancerName, ClassLoadBalancer, false); err != nil {
		return nil, err
	}
	if names.TargetGroup, err = resolve(in.TargetGroupName, ClassTargetGroup, false); err != nil {
		return nil, err
	}
	// The log path prefix is fixed; only the application segment is
	// stage-qualified.
	if names.LogGroup, err = claim("/aws/ecs/"+conv.Apply(in.AppName, in.Stage), ClassLogGroup); err != nil {
		return nil, err
	}
	if names.ALBSecurityGroup, err = resolve(in.AppName+"-alb-sg", ClassSecurityGroup, false); err != nil {
		return nil, err
	}
	if names.ServiceSecurityGroup, err = resolve(in.AppName+"-svc-sg", ClassSecurityGroup, false); err != nil {
		return nil, err
	}

	if err := crossCheck(names); err != nil {
		return nil, err
	}

	// Commit: future calls see this run's names as claimed.
	for _, name := range names.All() {
		g.existing.Add(name)
	}

	return names, nil
}

// crossCheck re-validates a freshly generated set: pairwise uniqueness plus
// per-class pattern and length conformance.
func crossCheck(names *ResourceNames) error {
	seen := make(map[string]string, 9)
	for _, e := range names.entries() {
		if prior, dup := seen[e.name]; dup {
			return &InvalidGeneratedNameError{
				Field:  e.field,
				Name:   e.name,
				Reason: fmt.Sprintf("duplicates the %s name", prior),
			}
		}
		seen[e.name] = e.field

		rule := RuleFor(e.class)
		if len(e.name) > rule.MaxLength {
			return &InvalidGeneratedNameError{
				Field:  e.field,
				Name:   e.name,
				Reason: fmt.Sprintf("exceeds the %d character limit for %s names", rule.MaxLength, e.class),
			}
		}
		if !rule.Pattern.MatchString(e.name) {
			return &InvalidGeneratedNameError{
				Field:  e.field,
				Name:   e.name,
				Reason: fmt.Sprintf("does not match the %s naming pattern", e.class),
			}
		}
	}
	return nil
}
