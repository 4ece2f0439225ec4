// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nexusdev/nexus-service/internal/authorization"
	"github.com/nexusdev/nexus-service/internal/db"
	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/pkg/ai"
	"github.com/nexusdev/nexus-service/pkg/authentication"
	"github.com/nexusdev/nexus-service/pkg/billing"
	"github.com/nexusdev/nexus-service/pkg/metrics"
	"github.com/nexusdev/nexus-service/pkg/pricing"
	"github.com/nexusdev/nexus-service/pkg/projects"
	"github.com/nexusdev/nexus-service/pkg/status"
	"github.com/nexusdev/nexus-service/pkg/tenant"
	"github.com/nexusdev/nexus-service/pkg/webhooks"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	resolver tenant.ResolverInterface,
	verifier authentication.TokenVerifierInterface,
	tenantService tenant.ServiceInterface,
	projectService projects.ServiceInterface,
	aiService ai.ServiceInterface,
	pricingService pricing.ServiceInterface,
	billingService billing.ServiceInterface,
	registrationService webhooks.ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		tenant.NewMiddleware(resolver, tracer, monitor, logger).ResolveTenant(),
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	tenantAPI := tenant.NewAPI(tenantService, tracer, monitor, logger)
	pricingAPI := pricing.NewAPI(pricingService, tracer, monitor, logger)
	billingAPI := billing.NewAPI(billingService, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	tenantAPI.RegisterEndpoints(router)
	pricingAPI.RegisterEndpoints(router)
	billingAPI.RegisterEndpoints(router)
	ai.NewAPI(aiService, tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(registrationService, tracer, monitor, logger).RegisterEndpoints(router)

	authenticate := authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()
	authz := authorization.NewMiddleware(s, tracer, monitor, logger)

	router.Group(func(r chi.Router) {
		r.Use(authenticate)

		tenantAPI.RegisterUserEndpoints(r)

		// Every tenant-scoped route passes the membership check here;
		// handlers never gate access themselves.
		r.Group(func(r chi.Router) {
			r.Use(authz.RequireMember())

			projects.NewAPI(projectService, tracer, monitor, logger).RegisterEndpoints(r)
			billingAPI.RegisterCheckoutEndpoints(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authz.RequireRole(authorization.ADMIN_RELATION, authorization.OWNER_RELATION))

			tenantAPI.RegisterMemberEndpoints(r)
			pricingAPI.RegisterAdminEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
