// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/nexusdev/nexus-service/internal/types"
)

// StorageInterface is the full persistence surface. Tenant directory and
// membership lookups take explicit identifiers; everything below the
// tenant-scoped marker derives its tenant id from the request context and
// fails with tenantctx.ErrTenantContextMissing when none is set.
type StorageInterface interface {
	// Tenant directory (read side of resolution).
	GetActiveTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetActiveTenantByDomain(ctx context.Context, domain string) (*types.Tenant, error)
	GetActiveTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error)
	GetActiveTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)

	// Tenant administration.
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, active bool) error
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListActiveTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)

	// Memberships.
	AddMember(ctx context.Context, tenantID, userID, role string) (string, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	RemoveMember(ctx context.Context, tenantID, userID string) error

	// Tenant-scoped (tenant id from context).
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
	ListProjects(ctx context.Context, page, size int64) ([]*types.Project, error)
	UpdateProjectSpecification(ctx context.Context, id, specification string) error
	UpdateProjectWireframe(ctx context.Context, id string, wireframe []byte) error
	UpdateProjectStatus(ctx context.Context, id, status string) error

	ListActivePricingPlans(ctx context.Context) ([]*types.PricingPlan, error)
	CreatePricingPlan(ctx context.Context, p *types.PricingPlan) (*types.PricingPlan, error)

	UpsertSubscription(ctx context.Context, s *types.Subscription) error

	// Keyed by the globally unique Stripe subscription id: subscription
	// lifecycle events carry no tenant metadata.
	UpdateSubscriptionPeriod(ctx context.Context, stripeSubscriptionID, status string, periodStart, periodEnd time.Time, cancelAt *time.Time) error
	CancelSubscription(ctx context.Context, stripeSubscriptionID string) error
}
