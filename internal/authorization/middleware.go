// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/pkg/authentication"
)

// TenantHeader lets API clients address a tenant they are a member of
// directly, bypassing host based resolution. The membership check below
// applies either way, so the header grants nothing by itself.
const TenantHeader = "X-Tenant-ID"

// Middleware is the single choke point for tenant access decisions. Every
// tenant-scoped route goes through RequireMember or RequireRole; handlers
// never re-implement the membership check.
type Middleware struct {
	store MembershipStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequireMember admits any member of the target tenant.
func (m *Middleware) RequireMember() func(http.Handler) http.Handler {
	return m.RequireRole()
}

// RequireRole admits members whose role is in roles. With no roles given any
// membership suffices. On success the verified tenant id replaces whatever
// the resolver put on the context, so data access helpers always see the
// tenant the membership was checked against.
func (m *Middleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireRole")
			defer span.End()

			principal, ok := authentication.PrincipalFromContext(ctx)
			if !ok {
				m.errorResponse(w, http.StatusUnauthorized, "unauthenticated")
				return
			}

			tenantID := r.Header.Get(TenantHeader)
			if tenantID == "" {
				tenantID, _ = tenantctx.TenantID(ctx)
			}
			if tenantID == "" {
				m.errorResponse(w, http.StatusBadRequest, "no tenant specified")
				return
			}

			// Fresh lookup on every request, membership revocation must
			// take effect immediately.
			membership, err := m.store.GetMembership(ctx, tenantID, principal.ID)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					m.logger.Security().AuthzFailure(principal.ID, "tenant_access")
					m.errorResponse(w, http.StatusForbidden, ErrAccessDenied.Error())
					return
				}
				m.logger.Errorf("membership lookup failed: %v", err)
				m.errorResponse(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if len(roles) > 0 && !slices.Contains(roles, membership.Role) {
				m.logger.Security().AuthzFailure(principal.ID, "tenant_role")
				m.errorResponse(w, http.StatusForbidden, ErrAccessDenied.Error())
				return
			}

			ctx = tenantctx.WithTenantID(ctx, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewMiddleware(store MembershipStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.store = store

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
