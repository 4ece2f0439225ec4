// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantctx

import (
	"context"
	"errors"
	"testing"
)

func TestTenantIDUnset(t *testing.T) {
	if id, ok := TenantID(context.Background()); ok || id != "" {
		t.Errorf("expected unset tenant, got %q", id)
	}
}

func TestRequireTenantIDUnset(t *testing.T) {
	_, err := RequireTenantID(context.Background())
	if !errors.Is(err, ErrTenantContextMissing) {
		t.Errorf("expected ErrTenantContextMissing, got %v", err)
	}
}

func TestWithTenantID(t *testing.T) {
	ctx := WithTenantID(context.Background(), "tenant-a")

	id, err := RequireTenantID(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "tenant-a" {
		t.Errorf("expected tenant-a, got %q", id)
	}
}

func TestWithTenantIDOverwrite(t *testing.T) {
	ctx := WithTenantID(context.Background(), "tenant-a")
	ctx = WithTenantID(ctx, "tenant-b")

	if id, _ := TenantID(ctx); id != "tenant-b" {
		t.Errorf("expected tenant-b, got %q", id)
	}
}

func TestEmptyTenantIDTreatedAsUnset(t *testing.T) {
	ctx := WithTenantID(context.Background(), "")

	if _, err := RequireTenantID(ctx); !errors.Is(err, ErrTenantContextMissing) {
		t.Errorf("expected ErrTenantContextMissing, got %v", err)
	}
}
