// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"net/url"

	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/types"
	"github.com/nexusdev/nexus-service/pkg/tenant"
)

// apiDirectory satisfies the tenant directory over the public tenant-info
// endpoint, so CLI sessions re-resolve tenants through the same lookup the
// server performs.
//
// The endpoint never fails a lookup; it degrades to the fallback tenant
// instead. A response whose echoed key differs from the requested value is
// therefore a miss, not a match.
type apiDirectory struct {
	client *apiClient
}

var _ tenant.DirectoryInterface = (*apiDirectory)(nil)

func (d *apiDirectory) GetActiveTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	return d.lookup(ctx, "id", id, func(t *types.Tenant) string { return t.ID })
}

func (d *apiDirectory) GetActiveTenantByDomain(ctx context.Context, domain string) (*types.Tenant, error) {
	return d.lookup(ctx, "domain", domain, func(t *types.Tenant) string { return t.Domain })
}

func (d *apiDirectory) GetActiveTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error) {
	return d.lookup(ctx, "subdomain", subdomain, func(t *types.Tenant) string { return t.Subdomain })
}

func (d *apiDirectory) GetActiveTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error) {
	return d.lookup(ctx, "slug", slug, func(t *types.Tenant) string { return t.Slug })
}

func (d *apiDirectory) lookup(ctx context.Context, param, value string, key func(*types.Tenant) string) (*types.Tenant, error) {
	var t types.Tenant

	query := url.Values{param: []string{value}}
	if err := d.client.get(ctx, "/api/v0/tenant-info?"+query.Encode(), &t); err != nil {
		return nil, err
	}

	if key(&t) != value {
		return nil, storage.ErrNotFound
	}

	return &t, nil
}

// pinTenant re-resolves the --tenant-id flag through the directory API and
// pins the client to the result. A stale or deactivated id fails here,
// before any request is issued under it; without the flag the server's own
// host resolution applies unchanged.
func pinTenant(ctx context.Context, client *apiClient) error {
	if client.tenantID == "" {
		return nil
	}

	session := tenant.NewSession(&apiDirectory{client: client})
	if _, err := session.Switch(ctx, client.tenantID); err != nil {
		return err
	}
	client.tenantID = session.Current().ID

	return nil
}
