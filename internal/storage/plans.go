// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/types"
)

var planColumns = []string{
	"id", "tenant_id", "name", "description", "features",
	"price_monthly", "price_yearly", "projects_limit",
	"stripe_price_id_monthly", "stripe_price_id_yearly",
	"is_popular", "is_active", "sort_order", "created_at",
}

func scanPlan(row sq.RowScanner) (*types.PricingPlan, error) {
	var p types.PricingPlan
	err := row.Scan(
		&p.ID, &p.TenantID, &p.Name, &p.Description, &p.Features,
		&p.PriceMonthly, &p.PriceYearly, &p.ProjectsLimit,
		&p.StripePriceIDMonthly, &p.StripePriceIDYearly,
		&p.IsPopular, &p.IsActive, &p.SortOrder, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) ListActivePricingPlans(ctx context.Context) ([]*types.PricingPlan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivePricingPlans")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Statement(ctx).
		Select(planColumns...).
		From("pricing_plans").
		Where(sq.Eq{"tenant_id": tenantID, "is_active": true}).
		OrderBy("sort_order ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing plans: %w", err)
	}
	defer rows.Close()

	var plans []*types.PricingPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pricing plan: %w", err)
		}
		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pricing plan rows: %w", err)
	}

	return plans, nil
}

func (s *Storage) CreatePricingPlan(ctx context.Context, p *types.PricingPlan) (*types.PricingPlan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePricingPlan")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pricing plan ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("pricing_plans").
		Columns(
			"id", "tenant_id", "name", "description", "features",
			"price_monthly", "price_yearly", "projects_limit",
			"stripe_price_id_monthly", "stripe_price_id_yearly",
			"is_popular", "is_active", "sort_order",
		).
		Values(
			id.String(), tenantID, p.Name, p.Description, emptyJSON(p.Features),
			p.PriceMonthly, p.PriceYearly, p.ProjectsLimit,
			p.StripePriceIDMonthly, p.StripePriceIDYearly,
			p.IsPopular, true, p.SortOrder,
		).
		Suffix("RETURNING " + strings.Join(planColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanPlan(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert pricing plan: %w", err)
	}

	return created, nil
}
