// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/types"
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

func TestListPlansHandler(t *testing.T) {
	api, mockService, _ := setupAPI(t)

	mockService.EXPECT().ListPlans(gomock.Any()).Return([]*types.PricingPlan{{ID: "plan-1", Name: "Starter"}}, nil)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/pricing/plans", nil)
	req = req.WithContext(tenantctx.WithTenantID(req.Context(), "tenant-1"))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var plans []*types.PricingPlan
	if err := json.NewDecoder(w.Body).Decode(&plans); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(plans) != 1 || plans[0].Name != "Starter" {
		t.Errorf("unexpected plans %+v", plans)
	}
}

func TestListPlansHandlerTenantMissing(t *testing.T) {
	api, mockService, _ := setupAPI(t)

	mockService.EXPECT().ListPlans(gomock.Any()).Return(nil, tenantctx.ErrTenantContextMissing)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/pricing/plans", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestCreatePlanHandler(t *testing.T) {
	api, mockService, _ := setupAPI(t)

	mockService.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).
		Return(&types.PricingPlan{ID: "plan-1", Name: "Pro"}, nil)

	router := chi.NewRouter()
	api.RegisterAdminEndpoints(router)

	body := `{"name": "Pro", "price_monthly": 2900}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/pricing/plans", strings.NewReader(body)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
}

func TestCreatePlanHandlerValidation(t *testing.T) {
	api, _, _ := setupAPI(t)

	router := chi.NewRouter()
	api.RegisterAdminEndpoints(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/pricing/plans", strings.NewReader(`{"description": "no name"}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
