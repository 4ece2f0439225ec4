// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/types"
	"github.com/nexusdev/nexus-service/pkg/tenant"
)

// newDirectoryServer mimics the tenant-info endpoint: explicit query hints
// resolve when they match, anything else degrades to the fallback tenant.
func newDirectoryServer(t *testing.T, known types.Tenant, fallback types.Tenant) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v0/tenant-info", func(w http.ResponseWriter, r *http.Request) {
		resolved := fallback

		query := r.URL.Query()
		switch {
		case query.Get("id") == known.ID && known.ID != "":
			resolved = known
		case query.Get("slug") == known.Slug && known.Slug != "":
			resolved = known
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resolved)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestClient(server *httptest.Server, tenantID string) *apiClient {
	c := new(apiClient)
	c.endpoint = server.URL
	c.tenantID = tenantID
	c.http = server.Client()

	return c
}

func TestPinTenantPinsActiveTenant(t *testing.T) {
	known := types.Tenant{ID: "tenant-1", Name: "Acme", Slug: "acme", IsActive: true}
	fallback := types.Tenant{ID: "fallback-1", Name: "Fallback", Slug: "nexus", IsActive: true}
	server := newDirectoryServer(t, known, fallback)

	client := newTestClient(server, "tenant-1")

	if err := pinTenant(context.Background(), client); err != nil {
		t.Fatalf("expected pin to succeed, got %v", err)
	}

	if client.tenantID != "tenant-1" {
		t.Errorf("expected client pinned to tenant-1, got %q", client.tenantID)
	}
}

func TestPinTenantRejectsUnknownID(t *testing.T) {
	known := types.Tenant{ID: "tenant-1", Name: "Acme", Slug: "acme", IsActive: true}
	fallback := types.Tenant{ID: "fallback-1", Name: "Fallback", Slug: "nexus", IsActive: true}
	server := newDirectoryServer(t, known, fallback)

	// the server degrades unknown ids to the fallback tenant; the directory
	// must treat the mismatched echo as a miss, not silently pin fallback
	client := newTestClient(server, "no-such-tenant")

	err := pinTenant(context.Background(), client)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if client.tenantID != "no-such-tenant" {
		t.Errorf("client tenant id rewritten to %q on a failed pin", client.tenantID)
	}
}

func TestPinTenantSkipsWithoutSelection(t *testing.T) {
	client := new(apiClient)

	if err := pinTenant(context.Background(), client); err != nil {
		t.Fatalf("expected no-op without a tenant selection, got %v", err)
	}
}

func TestSessionSwitchOverDirectoryAPI(t *testing.T) {
	known := types.Tenant{ID: "tenant-1", Name: "Acme", Slug: "acme", IsActive: true}
	fallback := types.Tenant{ID: "fallback-1", Name: "Fallback", Slug: "nexus", IsActive: true}
	server := newDirectoryServer(t, known, fallback)

	session := tenant.NewSession(&apiDirectory{client: newTestClient(server, "")})

	resolved, err := session.Switch(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("expected switch to succeed, got %v", err)
	}
	if resolved.Slug != "acme" {
		t.Errorf("expected slug acme, got %q", resolved.Slug)
	}

	// a failed switch keeps the previous selection active
	if _, err := session.Switch(context.Background(), "no-such-tenant"); err == nil {
		t.Fatal("expected switch to an unknown id to fail")
	}
	if current := session.Current(); current == nil || current.ID != "tenant-1" {
		t.Errorf("expected session to stay on tenant-1, got %+v", current)
	}
}
