// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

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

func postRegistration(t *testing.T, api *API, body string) *httptest.ResponseRecorder {
	t.Helper()

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration", strings.NewReader(body)))
	return w
}

func TestRegistrationHandler(t *testing.T) {
	api, mockService, _ := setupAPI(t)

	mockService.EXPECT().HandleRegistration(gomock.Any(), "user-1", "jane@example.com").
		Return(&types.Tenant{ID: "tenant-1", Name: "jane@example.com's Workspace"}, nil)

	w := postRegistration(t, api, `{"id": "user-1", "email": "jane@example.com"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var tenant types.Tenant
	if err := json.NewDecoder(w.Body).Decode(&tenant); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if tenant.ID != "tenant-1" {
		t.Errorf("unexpected tenant %+v", tenant)
	}
}

func TestRegistrationHandlerKratosPayload(t *testing.T) {
	api, mockService, _ := setupAPI(t)

	mockService.EXPECT().HandleRegistration(gomock.Any(), "identity-1", "jane@example.com").
		Return(&types.Tenant{ID: "tenant-1"}, nil)

	w := postRegistration(t, api, `{"identity_id": "identity-1", "traits": {"email": "jane@example.com"}}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
}

func TestRegistrationHandlerValidation(t *testing.T) {
	api, _, _ := setupAPI(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"id":`},
		{"missing email", `{"id": "user-1"}`},
		{"missing user id", `{"email": "jane@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postRegistration(t, api, tt.body); w.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestRegistrationHandlerFailure(t *testing.T) {
	api, mockService, mockLogger := setupAPI(t)

	mockService.EXPECT().HandleRegistration(gomock.Any(), "user-1", "jane@example.com").
		Return(nil, errors.New("tenant creation failed"))
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())

	w := postRegistration(t, api, `{"id": "user-1", "email": "jane@example.com"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
