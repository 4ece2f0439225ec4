// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"context"

	"github.com/nexusdev/nexus-service/internal/types"
)

type ServiceInterface interface {
	ListPlans(ctx context.Context) ([]*types.PricingPlan, error)
	CreatePlan(ctx context.Context, plan *types.PricingPlan) (*types.PricingPlan, error)
}

type StorageInterface interface {
	ListActivePricingPlans(ctx context.Context) ([]*types.PricingPlan, error)
	CreatePricingPlan(ctx context.Context, p *types.PricingPlan) (*types.PricingPlan, error)
}
