// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ai

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

func TestCompletionsHandler(t *testing.T) {
	mux, mockService, _ := setupAPI(t)

	mockService.EXPECT().Complete(gomock.Any(), CompletionRequest{Prompt: "hello"}).
		Return(chatResponse("hi"), nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/ai/completions", strings.NewReader(`{"prompt": "hello"}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestCompletionsHandlerValidation(t *testing.T) {
	mux, _, _ := setupAPI(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/ai/completions", strings.NewReader(`{}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCompletionsHandlerProviderError(t *testing.T) {
	mux, mockService, mockLogger := setupAPI(t)

	mockService.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(nil, errors.New("rate limited"))
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/ai/completions", strings.NewReader(`{"prompt": "hello"}`)))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, w.Code)
	}
}

func TestSuggestionsHandler(t *testing.T) {
	mux, mockService, _ := setupAPI(t)

	suggestions := json.RawMessage(`{"suggestions": ["freelancers"]}`)
	mockService.EXPECT().Suggest(gomock.Any(), SuggestionRequest{Field: "person"}).Return(suggestions, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/ai/suggestions", strings.NewReader(`{"field": "person"}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestSuggestionsHandlerMissingField(t *testing.T) {
	mux, _, _ := setupAPI(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/ai/suggestions", strings.NewReader(`{}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
