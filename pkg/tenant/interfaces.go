// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"net/http"

	"github.com/nexusdev/nexus-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant, ownerID string) (*types.Tenant, error)
	DeactivateTenant(ctx context.Context, id string) error
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListUserTenants(ctx context.Context, userID string) ([]*types.Tenant, error)
	AddMember(ctx context.Context, tenantID, userID, role string) (*types.Membership, error)
	RemoveMember(ctx context.Context, tenantID, userID string) error
	ListMembers(ctx context.Context, tenantID string) ([]*types.Membership, error)
}

// DirectoryInterface is the read side of the tenant directory used during
// request resolution.
type DirectoryInterface interface {
	GetActiveTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetActiveTenantByDomain(ctx context.Context, domain string) (*types.Tenant, error)
	GetActiveTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error)
	GetActiveTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, active bool) error
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListActiveTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	AddMember(ctx context.Context, tenantID, userID, role string) (string, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	RemoveMember(ctx context.Context, tenantID, userID string) error
}

type AuthzInterface interface {
	AssignTenantOwner(ctx context.Context, tenantID, userID string) error
	AssignTenantAdmin(ctx context.Context, tenantID, userID string) error
	AssignTenantMember(ctx context.Context, tenantID, userID string) error
	RemoveTenantOwner(ctx context.Context, tenantID, userID string) error
	RemoveTenantAdmin(ctx context.Context, tenantID, userID string) error
	RemoveTenantMember(ctx context.Context, tenantID, userID string) error
	DeleteTenant(ctx context.Context, tenantID string) error
}

type ResolverInterface interface {
	Resolve(ctx context.Context, hint Hint) *types.Tenant
	HintFromRequest(r *http.Request) Hint
}
