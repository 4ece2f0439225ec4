// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tenantctx carries the resolved tenant id on a request context.
//
// The tenant id is the only partitioning key for business data, so every
// tenant-scoped storage helper reads it from here and refuses to run without
// it. Holding it on the context rather than in a process-wide variable keeps
// concurrent requests from leaking into each other's tenants.
package tenantctx

import (
	"context"
	"errors"
)

// ErrTenantContextMissing is returned by tenant-scoped data access performed
// before a tenant has been resolved for the request. It signals a programmer
// error (a route missing the resolution middleware) and must never be
// recovered by substituting an unscoped query.
var ErrTenantContextMissing = errors.New("tenant context missing")

type contextKey struct{}

var tenantContextKey = contextKey{}

// WithTenantID returns a new context with the given tenant ID derived from the parent context.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantContextKey, tenantID)
}

// TenantID retrieves the tenant ID from the context.
// Returns an empty string and false if no tenant has been resolved.
func TenantID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(tenantContextKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// RequireTenantID returns the tenant ID from the context, or
// ErrTenantContextMissing when none is set.
func RequireTenantID(ctx context.Context) (string, error) {
	id, ok := TenantID(ctx)
	if !ok {
		return "", ErrTenantContextMissing
	}
	return id, nil
}
