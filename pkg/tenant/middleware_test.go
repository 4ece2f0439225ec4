// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/types"
)

func TestMiddlewareResolveTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockResolver := NewMockResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "tenant.Middleware.ResolveTenant").
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		})

	resolved := &types.Tenant{ID: "tenant-1", Slug: "acme"}
	hint := Hint{Slug: "acme"}
	mockResolver.EXPECT().HintFromRequest(gomock.Any()).Return(hint)
	mockResolver.EXPECT().Resolve(gomock.Any(), hint).Return(resolved)

	var handlerCtx context.Context
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCtx = r.Context()
	})

	middleware := NewMiddleware(mockResolver, mockTracer, mockMonitor, mockLogger)
	req := httptest.NewRequest(http.MethodGet, "http://localhost/?tenant=acme", nil)
	middleware.ResolveTenant()(next).ServeHTTP(httptest.NewRecorder(), req)

	if handlerCtx == nil {
		t.Fatal("handler was not reached")
	}

	id, err := tenantctx.RequireTenantID(handlerCtx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != resolved.ID {
		t.Errorf("expected tenant id %s on context, got %s", resolved.ID, id)
	}

	tenant, ok := FromContext(handlerCtx)
	if !ok || tenant.Slug != resolved.Slug {
		t.Errorf("expected resolved tenant on context, got %v", tenant)
	}
}
