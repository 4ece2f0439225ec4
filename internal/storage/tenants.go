// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexusdev/nexus-service/internal/db"
	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const tenantColumns = "id, name, slug, domain, subdomain, settings, is_active, created_at"

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetActiveTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	return s.getActiveTenant(ctx, "storage.GetActiveTenantByID", sq.Eq{"id": id})
}

func (s *Storage) GetActiveTenantByDomain(ctx context.Context, domain string) (*types.Tenant, error) {
	return s.getActiveTenant(ctx, "storage.GetActiveTenantByDomain", sq.Eq{"domain": domain})
}

func (s *Storage) GetActiveTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error) {
	return s.getActiveTenant(ctx, "storage.GetActiveTenantBySubdomain", sq.Eq{"subdomain": subdomain})
}

func (s *Storage) GetActiveTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error) {
	return s.getActiveTenant(ctx, "storage.GetActiveTenantBySlug", sq.Eq{"slug": slug})
}

func (s *Storage) getActiveTenant(ctx context.Context, span string, pred sq.Eq) (*types.Tenant, error) {
	ctx, sp := s.tracer.Start(ctx, span)
	defer sp.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "domain", "subdomain", "settings", "is_active", "created_at").
		From("tenants").
		Where(pred).
		Where(sq.Eq{"is_active": true}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Slug, &t.Domain, &t.Subdomain, &t.Settings, &t.IsActive, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	settings := t.Settings
	if len(settings) == 0 {
		settings = []byte("{}")
	}

	// domain and subdomain are NOT NULL DEFAULT ''; the partial unique
	// indexes only cover non-empty values, so empty strings never collide.
	var created types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "slug", "domain", "subdomain", "settings", "is_active").
		Values(id.String(), t.Name, t.Slug, t.Domain, t.Subdomain, settings, true).
		Suffix("RETURNING " + tenantColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Slug, &created.Domain, &created.Subdomain, &created.Settings, &created.IsActive, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &created, nil
}

func (s *Storage) SetTenantStatus(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("is_active", active).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update tenant status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "slug", "domain", "subdomain", "settings", "is_active", "created_at").
		From("tenants").
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Domain, &t.Subdomain, &t.Settings, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

func (s *Storage) ListActiveTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveTenantsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("t.id", "t.name", "t.slug", "t.domain", "t.subdomain", "t.settings", "t.is_active", "t.created_at").
		From("tenants t").
		Join("tenant_members m ON t.id = m.tenant_id").
		Where(sq.Eq{"m.user_id": userID}).
		Where(sq.Eq{"t.is_active": true}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Domain, &t.Subdomain, &t.Settings, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}
