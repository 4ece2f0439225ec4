// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"net/http"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/tracing"
)

type Middleware struct {
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResolveTenant attaches the resolved tenant to every request context. It
// runs before authentication and authorization; resolution alone grants
// nothing, it only selects which tenant later checks are evaluated against.
func (m *Middleware) ResolveTenant() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "tenant.Middleware.ResolveTenant")
			defer span.End()

			tenant := m.resolver.Resolve(ctx, m.resolver.HintFromRequest(r))

			ctx = tenantctx.WithTenantID(ctx, tenant.ID)
			ctx = withResolvedTenant(ctx, tenant)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewMiddleware(resolver ResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.resolver = resolver

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
