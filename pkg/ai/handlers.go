// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ai

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tracing"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterEndpoints mounts the wizard endpoints. They are open: the
// questionnaire runs before login and holds no tenant data.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/ai/completions", a.completions)
	mux.Post("/api/v0/ai/suggestions", a.suggestions)
}

func (a *API) completions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "ai.API.completions")
	defer span.End()

	var req CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Prompt == "" && len(req.Messages) == 0 {
		a.errorResponse(w, http.StatusBadRequest, "prompt or messages required")
		return
	}

	resp, err := a.service.Complete(ctx, req)
	if err != nil {
		a.logger.Errorf("completion failed: %v", err)
		a.errorResponse(w, http.StatusBadGateway, "completion failed")
		return
	}

	a.jsonResponse(w, http.StatusOK, resp)
}

func (a *API) suggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "ai.API.suggestions")
	defer span.End()

	var req SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Field == "" {
		a.errorResponse(w, http.StatusBadRequest, "field is required")
		return
	}

	suggestions, err := a.service.Suggest(ctx, req)
	if err != nil {
		a.logger.Errorf("suggestion generation failed: %v", err)
		a.errorResponse(w, http.StatusBadGateway, "suggestion generation failed")
		return
	}

	a.jsonResponse(w, http.StatusOK, suggestions)
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
