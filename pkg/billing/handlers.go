// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/pkg/authentication"
)

// Stripe webhook payloads stay well under this.
const maxWebhookBody = 1 << 20

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterEndpoints mounts the webhook receiver. It is open; authenticity
// comes from the Stripe signature, not from a bearer token.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/stripe", a.stripeWebhook)
}

// RegisterCheckoutEndpoints mounts checkout creation on a router that
// already enforces authentication and tenant membership.
func (a *API) RegisterCheckoutEndpoints(r chi.Router) {
	r.Post("/api/v0/billing/checkout", a.createCheckout)
}

func (a *API) createCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.createCheckout")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.PlanName == "" || req.SuccessURL == "" || req.CancelURL == "" {
		a.errorResponse(w, http.StatusBadRequest, "plan_name, success_url, and cancel_url are required")
		return
	}

	session, err := a.service.CreateCheckout(ctx, &req, principal.ID, principal.Email)
	if err != nil {
		if errors.Is(err, tenantctx.ErrTenantContextMissing) {
			a.errorResponse(w, http.StatusInternalServerError, "tenant not resolved")
			return
		}

		a.logger.Errorf("failed to create checkout session: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to create checkout session")
		return
	}

	a.jsonResponse(w, http.StatusCreated, session)
}

func (a *API) stripeWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.stripeWebhook")
	defer span.End()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		a.errorResponse(w, http.StatusBadRequest, "failed to read payload")
		return
	}

	if err := a.service.HandleWebhook(ctx, payload, r.Header.Get("Stripe-Signature")); err != nil {
		a.logger.Errorf("stripe webhook processing failed: %v", err)
		a.errorResponse(w, http.StatusBadRequest, "webhook processing failed")
		return
	}

	a.jsonResponse(w, http.StatusOK, map[string]bool{"received": true})
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
