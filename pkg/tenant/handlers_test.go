// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/nexusdev/nexus-service/internal/authorization"
	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/types"
	"github.com/nexusdev/nexus-service/pkg/authentication"
)

func setupAPI(t *testing.T) (*API, *MockServiceInterface, *MockLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	return NewAPI(mockService, mockTracer, mockMonitor, mockLogger), mockService, mockLogger
}

func TestTenantInfo(t *testing.T) {
	api, _, _ := setupAPI(t)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenant-info", nil)
	req = req.WithContext(withResolvedTenant(req.Context(), &types.Tenant{ID: "tenant-1", Slug: "acme"}))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var tenant types.Tenant
	if err := json.NewDecoder(w.Body).Decode(&tenant); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if tenant.ID != "tenant-1" || tenant.Slug != "acme" {
		t.Errorf("unexpected tenant %+v", tenant)
	}
}

func TestTenantInfoUnresolved(t *testing.T) {
	api, _, _ := setupAPI(t)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/tenant-info", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestMyTenantsUnauthenticated(t *testing.T) {
	api, _, _ := setupAPI(t)

	mux := chi.NewMux()
	api.RegisterUserEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/my-tenants", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestMyTenants(t *testing.T) {
	api, mockService, _ := setupAPI(t)

	mockService.EXPECT().ListUserTenants(gomock.Any(), "user-1").Return([]*types.Tenant{
		{ID: "tenant-1", Slug: "acme"},
		{ID: "tenant-2", Slug: "globex"},
	}, nil)

	mux := chi.NewMux()
	api.RegisterUserEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/my-tenants", nil)
	req = req.WithContext(authentication.WithPrincipal(req.Context(), &authentication.Principal{ID: "user-1"}))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var tenants []*types.Tenant
	if err := json.NewDecoder(w.Body).Decode(&tenants); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(tenants) != 2 {
		t.Errorf("expected 2 tenants, got %d", len(tenants))
	}
}

func memberRequest(method, target, body, tenantID string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if tenantID != "" {
		req = req.WithContext(tenantctx.WithTenantID(req.Context(), tenantID))
	}
	return req
}

func TestAddMember(t *testing.T) {
	api, mockService, _ := setupAPI(t)

	mockService.EXPECT().AddMember(gomock.Any(), "tenant-1", "user-1", authorization.MEMBER_RELATION).
		Return(&types.Membership{ID: "membership-1", TenantID: "tenant-1", UserID: "user-1", Role: authorization.MEMBER_RELATION}, nil)

	router := chi.NewRouter()
	api.RegisterMemberEndpoints(router)

	body := `{"user_id": "user-1", "role": "member"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, memberRequest(http.MethodPost, "/api/v0/members", body, "tenant-1"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
}

func TestAddMemberValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		tenantID string
		want     int
	}{
		{"no tenant context", `{"user_id": "user-1", "role": "member"}`, "", http.StatusBadRequest},
		{"invalid body", `{not json`, "tenant-1", http.StatusBadRequest},
		{"missing fields", `{"user_id": ""}`, "tenant-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _, _ := setupAPI(t)

			router := chi.NewRouter()
			api.RegisterMemberEndpoints(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, memberRequest(http.MethodPost, "/api/v0/members", tt.body, tt.tenantID))

			if w.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestAddMemberDuplicate(t *testing.T) {
	api, mockService, _ := setupAPI(t)

	mockService.EXPECT().AddMember(gomock.Any(), "tenant-1", "user-1", authorization.MEMBER_RELATION).
		Return(nil, fmt.Errorf("failed to add member: %w", storage.ErrDuplicateKey))

	router := chi.NewRouter()
	api.RegisterMemberEndpoints(router)

	body := `{"user_id": "user-1", "role": "member"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, memberRequest(http.MethodPost, "/api/v0/members", body, "tenant-1"))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestRemoveMemberNotFound(t *testing.T) {
	api, mockService, _ := setupAPI(t)

	mockService.EXPECT().RemoveMember(gomock.Any(), "tenant-1", "user-1").
		Return(fmt.Errorf("failed to look up membership: %w", storage.ErrNotFound))

	router := chi.NewRouter()
	api.RegisterMemberEndpoints(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, memberRequest(http.MethodDelete, "/api/v0/members/user-1", "", "tenant-1"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestRemoveMember(t *testing.T) {
	api, mockService, _ := setupAPI(t)

	mockService.EXPECT().RemoveMember(gomock.Any(), "tenant-1", "user-1").Return(nil)

	router := chi.NewRouter()
	api.RegisterMemberEndpoints(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, memberRequest(http.MethodDelete, "/api/v0/members/user-1", "", "tenant-1"))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
}
