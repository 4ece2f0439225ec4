// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/nexusdev/nexus-service/internal/types"
)

type contextKey struct{}

var resolvedTenantKey = contextKey{}

func withResolvedTenant(ctx context.Context, t *types.Tenant) context.Context {
	return context.WithValue(ctx, resolvedTenantKey, t)
}

// FromContext returns the full tenant record resolved for this request.
// Handlers that only need the id should use tenantctx instead.
func FromContext(ctx context.Context) (*types.Tenant, bool) {
	t, ok := ctx.Value(resolvedTenantKey).(*types.Tenant)
	if !ok || t == nil {
		return nil, false
	}
	return t, true
}
