// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

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

	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/types"
	"github.com/nexusdev/nexus-service/pkg/authentication"
)

func setupAPI(t *testing.T) (*chi.Mux, *MockServiceInterface, *MockLoggerInterface) {
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

	mux := chi.NewMux()
	NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	return mux, mockService, mockLogger
}

func authenticatedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	principal := &authentication.Principal{ID: "user-1", Email: "user@example.com"}
	return req.WithContext(authentication.WithPrincipal(req.Context(), principal))
}

func TestCreateProjectHandler(t *testing.T) {
	mux, mockService, _ := setupAPI(t)

	mockService.EXPECT().CreateProject(gomock.Any(), gomock.Any(), "user-1", "user@example.com").
		Return(&types.Project{ID: "project-1", Title: "Taskly", Status: "generated"}, nil)

	body := `{"title": "Taskly", "person_data": {"who": "freelancers"}}`
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, authenticatedRequest(http.MethodPost, "/api/v0/projects", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var project types.Project
	if err := json.NewDecoder(w.Body).Decode(&project); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if project.ID != "project-1" {
		t.Errorf("unexpected project %+v", project)
	}
}

func TestCreateProjectHandlerUnauthenticated(t *testing.T) {
	mux, _, _ := setupAPI(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v0/projects", strings.NewReader(`{"title": "Taskly"}`))
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestCreateProjectHandlerValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid body", `{not json`},
		{"missing title", `{"description": "no title"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _, _ := setupAPI(t)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, authenticatedRequest(http.MethodPost, "/api/v0/projects", tt.body))

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestListProjectsHandler(t *testing.T) {
	mux, mockService, _ := setupAPI(t)

	mockService.EXPECT().ListProjects(gomock.Any(), int64(2), int64(10)).
		Return([]*types.Project{{ID: "project-1"}}, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, authenticatedRequest(http.MethodGet, "/api/v0/projects?page=2&size=10", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestGetProjectHandlerNotFound(t *testing.T) {
	mux, mockService, _ := setupAPI(t)

	mockService.EXPECT().GetProject(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, authenticatedRequest(http.MethodGet, "/api/v0/projects/missing", ""))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestGenerateWireframeHandler(t *testing.T) {
	mux, mockService, _ := setupAPI(t)

	mockService.EXPECT().GenerateWireframe(gomock.Any(), "project-1").
		Return(&types.Project{ID: "project-1", WireframeData: json.RawMessage(`{"pages": []}`)}, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, authenticatedRequest(http.MethodPost, "/api/v0/projects/project-1/wireframe", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
