// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterEndpoints mounts the open endpoints. User and member management
// endpoints are mounted separately so the router can gate them.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/tenant-info", a.tenantInfo)
}

// RegisterUserEndpoints mounts endpoints that need an authenticated user but
// no particular tenant membership.
func (a *API) RegisterUserEndpoints(r chi.Router) {
	r.Get("/api/v0/my-tenants", a.myTenants)
}

// RegisterMemberEndpoints mounts member management on the given router,
// which is expected to already require an admin or owner role.
func (a *API) RegisterMemberEndpoints(r chi.Router) {
	r.Get("/api/v0/members", a.listMembers)
	r.Post("/api/v0/members", a.addMember)
	r.Delete("/api/v0/members/{userID}", a.removeMember)
}

// tenantInfo reports which tenant the request resolved to. It is public:
// browsers call it before any login to theme the storefront.
func (a *API) tenantInfo(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "tenant.API.tenantInfo")
	defer span.End()

	tenant, ok := FromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusInternalServerError, "tenant not resolved")
		return
	}

	a.jsonResponse(w, http.StatusOK, tenant)
}

func (a *API) myTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.myTenants")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tenants, err := a.service.ListUserTenants(ctx, principal.ID)
	if err != nil {
		a.logger.Errorf("failed to list tenants for user %s: %v", principal.ID, err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to list tenants")
		return
	}

	a.jsonResponse(w, http.StatusOK, tenants)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listMembers")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		a.errorResponse(w, http.StatusBadRequest, "no tenant specified")
		return
	}

	members, err := a.service.ListMembers(ctx, tenantID)
	if err != nil {
		a.logger.Errorf("failed to list members for tenant %s: %v", tenantID, err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to list members")
		return
	}

	a.jsonResponse(w, http.StatusOK, members)
}

type addMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.addMember")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		a.errorResponse(w, http.StatusBadRequest, "no tenant specified")
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserID == "" || req.Role == "" {
		a.errorResponse(w, http.StatusBadRequest, "user_id and role are required")
		return
	}

	membership, err := a.service.AddMember(ctx, tenantID, req.UserID, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateKey):
			a.errorResponse(w, http.StatusConflict, "user is already a member")
		case errors.Is(err, storage.ErrForeignKeyViolation):
			a.errorResponse(w, http.StatusNotFound, "tenant not found")
		default:
			a.logger.Errorf("failed to add member to tenant %s: %v", tenantID, err)
			a.errorResponse(w, http.StatusInternalServerError, "failed to add member")
		}
		return
	}

	a.jsonResponse(w, http.StatusCreated, membership)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.removeMember")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		a.errorResponse(w, http.StatusBadRequest, "no tenant specified")
		return
	}

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		a.errorResponse(w, http.StatusBadRequest, "user id is required")
		return
	}

	if err := a.service.RemoveMember(ctx, tenantID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "membership not found")
			return
		}

		a.logger.Errorf("failed to remove member %s from tenant %s: %v", userID, tenantID, err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to remove member")
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
