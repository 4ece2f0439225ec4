// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"

	"github.com/nexusdev/nexus-service/internal/authorization"
	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/internal/types"
)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) CreateTenant(ctx context.Context, tenant *types.Tenant, ownerID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if tenant.Name == "" || tenant.Slug == "" {
		return nil, fmt.Errorf("tenant name and slug are required")
	}

	created, err := s.storage.CreateTenant(ctx, tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	if ownerID != "" {
		if _, err := s.storage.AddMember(ctx, created.ID, ownerID, authorization.OWNER_RELATION); err != nil {
			return nil, fmt.Errorf("failed to add owner membership: %w", err)
		}

		if err := s.authz.AssignTenantOwner(ctx, created.ID, ownerID); err != nil {
			return nil, fmt.Errorf("failed to assign tenant owner: %w", err)
		}
	}

	return created, nil
}

// DeactivateTenant soft-disables the tenant and sweeps its authorization
// tuples. Tenants are never hard-deleted; the directory simply stops
// resolving them.
func (s *Service) DeactivateTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeactivateTenant")
	defer span.End()

	if err := s.storage.SetTenantStatus(ctx, id, false); err != nil {
		return fmt.Errorf("failed to deactivate tenant: %w", err)
	}

	// Tuple cleanup is best effort. The membership table is authoritative
	// for access decisions, so stale tuples cannot grant access.
	if err := s.authz.DeleteTenant(ctx, id); err != nil {
		s.logger.Errorf("failed to delete authorization tuples for tenant %s: %v", id, err)
	}

	return nil
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

func (s *Service) ListUserTenants(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListUserTenants")
	defer span.End()

	return s.storage.ListActiveTenantsByUserID(ctx, userID)
}

func (s *Service) AddMember(ctx context.Context, tenantID, userID, role string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AddMember")
	defer span.End()

	if !authorization.IsValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	id, err := s.storage.AddMember(ctx, tenantID, userID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	if err := s.assignRole(ctx, tenantID, userID, role); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	return &types.Membership{ID: id, TenantID: tenantID, UserID: userID, Role: role}, nil
}

func (s *Service) RemoveMember(ctx context.Context, tenantID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RemoveMember")
	defer span.End()

	membership, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		return fmt.Errorf("failed to look up membership: %w", err)
	}

	if err := s.storage.RemoveMember(ctx, tenantID, userID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	if err := s.removeRole(ctx, tenantID, userID, membership.Role); err != nil {
		s.logger.Errorf("failed to remove %s tuple for user %s on tenant %s: %v", membership.Role, userID, tenantID, err)
	}

	return nil
}

func (s *Service) ListMembers(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	return s.storage.ListMembersByTenantID(ctx, tenantID)
}

func (s *Service) assignRole(ctx context.Context, tenantID, userID, role string) error {
	switch role {
	case authorization.OWNER_RELATION:
		return s.authz.AssignTenantOwner(ctx, tenantID, userID)
	case authorization.ADMIN_RELATION:
		return s.authz.AssignTenantAdmin(ctx, tenantID, userID)
	case authorization.MEMBER_RELATION:
		return s.authz.AssignTenantMember(ctx, tenantID, userID)
	default:
		return fmt.Errorf("unknown role %q", role)
	}
}

func (s *Service) removeRole(ctx context.Context, tenantID, userID, role string) error {
	switch role {
	case authorization.OWNER_RELATION:
		return s.authz.RemoveTenantOwner(ctx, tenantID, userID)
	case authorization.ADMIN_RELATION:
		return s.authz.RemoveTenantAdmin(ctx, tenantID, userID)
	case authorization.MEMBER_RELATION:
		return s.authz.RemoveTenantMember(ctx, tenantID, userID)
	default:
		return fmt.Errorf("unknown role %q", role)
	}
}

func NewService(storage StorageInterface, authz AuthzInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
