// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/internal/types"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterEndpoints mounts the public plan listing. The listing is open so
// the pricing page renders before login; it only needs a resolved tenant.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/pricing/plans", a.listPlans)
}

// RegisterAdminEndpoints mounts plan management on a router that already
// requires an admin or owner role.
func (a *API) RegisterAdminEndpoints(r chi.Router) {
	r.Post("/api/v0/pricing/plans", a.createPlan)
}

func (a *API) listPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "pricing.API.listPlans")
	defer span.End()

	plans, err := a.service.ListPlans(ctx)
	if err != nil {
		if errors.Is(err, tenantctx.ErrTenantContextMissing) {
			a.errorResponse(w, http.StatusInternalServerError, "tenant not resolved")
			return
		}

		a.logger.Errorf("failed to list pricing plans: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to list pricing plans")
		return
	}

	a.jsonResponse(w, http.StatusOK, plans)
}

func (a *API) createPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "pricing.API.createPlan")
	defer span.End()

	var plan types.PricingPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if plan.Name == "" {
		a.errorResponse(w, http.StatusBadRequest, "plan name is required")
		return
	}

	created, err := a.service.CreatePlan(ctx, &plan)
	if err != nil {
		a.logger.Errorf("failed to create pricing plan: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to create pricing plan")
		return
	}

	a.jsonResponse(w, http.StatusCreated, created)
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
