/*
Copyright © 2025 Stagehand Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"

	"github.com/stagehand-io/stagehand/internal/naming"
)

// CollectExistingNames enumerates the account's ECR repositories, ECS
// clusters, services and task families, load balancers and target groups, and
// returns their names as a set. Seeding a name generator with this set makes
// collision suffixing account-aware rather than run-local.
func CollectExistingNames(ctx context.Context, lister ResourceLister) (naming.NameSet, error) {
	existing := naming.NewNameSet()

	repos, err := lister.ListRepositoryNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect repository names: %w", err)
	}
	for _, name := range repos {
		existing.Add(name)
	}

	clusters, err := lister.ListClusterNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect cluster names: %w", err)
	}
	for _, cluster := range clusters {
		existing.Add(cluster)

		services, err := lister.ListServiceNames(ctx, cluster)
		if err != nil {
			return nil, fmt.Errorf("failed to collect service names: %w", err)
		}
		for _, name := range services {
			existing.Add(name)
		}
	}

	families, err := lister.ListTaskFamilies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect task families: %w", err)
	}
	for _, name := range families {
		existing.Add(name)
	}

	loadBalancers, err := lister.ListLoadBalancerNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect load balancer names: %w", err)
	}
	for _, name := range loadBalancers {
		existing.Add(name)
	}

	targetGroups, err := lister.ListTargetGroupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect target group names: %w", err)
	}
	for _, name := range targetGroups {
		existing.Add(name)
	}

	return existing, nil
}
