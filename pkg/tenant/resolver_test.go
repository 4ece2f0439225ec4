// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

package tenant

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/internal/types"
)

const (
	testFallbackID   = "eabc44ea-c919-40b2-9d1f-e0923d7d1db7"
	testFallbackName = "Nexus Developer AI"
	testDefaultSlug  = "nexus"
)

func testResolverConfig() ResolverConfig {
	return ResolverConfig{
		DefaultSlug:  testDefaultSlug,
		FallbackID:   testFallbackID,
		FallbackName: testFallbackName,
	}
}

func setupResolver(t *testing.T) (*Resolver, *MockDirectoryInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "tenant.Resolver.Resolve").
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	resolver := NewResolver(testResolverConfig(), mockDirectory, mockTracer, mockMonitor, mockLogger)

	return resolver, mockDirectory, mockLogger, mockSecurity
}

func TestResolveIDTakesPriority(t *testing.T) {
	resolver, directory, _, _ := setupResolver(t)

	want := &types.Tenant{ID: "tenant-1", Slug: "acme"}
	directory.EXPECT().GetActiveTenantByID(gomock.Any(), "tenant-1").Return(want, nil)

	got := resolver.Resolve(context.Background(), Hint{ID: "tenant-1", Slug: "acme"})
	if got.ID != want.ID {
		t.Fatalf("expected tenant %s, got %s", want.ID, got.ID)
	}
}

func TestResolveFallsThroughToSlug(t *testing.T) {
	resolver, directory, _, _ := setupResolver(t)

	want := &types.Tenant{ID: "tenant-1", Slug: "acme"}
	gomock.InOrder(
		directory.EXPECT().GetActiveTenantByID(gomock.Any(), "tenant-1").Return(nil, storage.ErrNotFound),
		directory.EXPECT().GetActiveTenantBySlug(gomock.Any(), "acme").Return(want, nil),
	)

	got := resolver.Resolve(context.Background(), Hint{ID: "tenant-1", Slug: "acme"})
	if got.ID != want.ID {
		t.Fatalf("expected tenant %s, got %s", want.ID, got.ID)
	}
}

func TestResolveDomainBeforeSubdomain(t *testing.T) {
	resolver, directory, _, _ := setupResolver(t)

	want := &types.Tenant{ID: "tenant-1", Domain: "acme.nexus.dev"}
	directory.EXPECT().GetActiveTenantByDomain(gomock.Any(), "acme.nexus.dev").Return(want, nil)

	hint := Hint{Domain: "acme.nexus.dev", Subdomain: "acme", Slug: "acme"}
	got := resolver.Resolve(context.Background(), hint)
	if got.ID != want.ID {
		t.Fatalf("expected tenant %s, got %s", want.ID, got.ID)
	}
}

func TestResolveFallbackWhenNoMatch(t *testing.T) {
	resolver, directory, logger, security := setupResolver(t)

	gomock.InOrder(
		directory.EXPECT().GetActiveTenantByDomain(gomock.Any(), "unknown.nexus.dev").Return(nil, storage.ErrNotFound),
		directory.EXPECT().GetActiveTenantBySubdomain(gomock.Any(), "unknown").Return(nil, storage.ErrNotFound),
		directory.EXPECT().GetActiveTenantBySlug(gomock.Any(), "unknown").Return(nil, storage.ErrNotFound),
	)
	logger.EXPECT().Security().Return(security)
	security.EXPECT().TenantFallback("unknown.nexus.dev", gomock.Any())

	hint := Hint{Domain: "unknown.nexus.dev", Subdomain: "unknown", Slug: "unknown", host: "unknown.nexus.dev"}
	got := resolver.Resolve(context.Background(), hint)

	if got == nil {
		t.Fatal("resolution must never return nil")
	}
	if got.ID != testFallbackID {
		t.Errorf("expected fallback tenant %s, got %s", testFallbackID, got.ID)
	}
	if got.Slug != testDefaultSlug {
		t.Errorf("expected fallback slug %s, got %s", testDefaultSlug, got.Slug)
	}
}

func TestResolveFallbackOnDirectoryError(t *testing.T) {
	resolver, directory, logger, security := setupResolver(t)

	directory.EXPECT().GetActiveTenantByID(gomock.Any(), "tenant-1").Return(nil, errors.New("connection refused"))
	logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
	logger.EXPECT().Security().Return(security)
	security.EXPECT().TenantFallback(gomock.Any(), "tenant directory unavailable")

	got := resolver.Resolve(context.Background(), Hint{ID: "tenant-1", Slug: "acme"})
	if got.ID != testFallbackID {
		t.Errorf("expected fallback tenant %s, got %s", testFallbackID, got.ID)
	}
}

func TestResolveEmptyHint(t *testing.T) {
	resolver, _, logger, security := setupResolver(t)

	logger.EXPECT().Security().Return(security)
	security.EXPECT().TenantFallback(gomock.Any(), gomock.Any())

	got := resolver.Resolve(context.Background(), Hint{})
	if got.ID != testFallbackID {
		t.Errorf("expected fallback tenant %s, got %s", testFallbackID, got.ID)
	}
}

func TestHintFromRequest(t *testing.T) {
	logger := logging.NewNoopLogger()
	resolver := NewResolver(
		testResolverConfig(),
		nil,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("", logger),
		logger,
	)

	tests := []struct {
		name string
		url  string
		want Hint
	}{
		{
			name: "subdomain host",
			url:  "http://acme.nexus.dev/api/v0/tenant-info",
			want: Hint{Domain: "acme.nexus.dev", Subdomain: "acme", Slug: "acme", host: "acme.nexus.dev"},
		},
		{
			name: "bare domain",
			url:  "http://nexus.dev/",
			want: Hint{Domain: "nexus.dev", host: "nexus.dev"},
		},
		{
			name: "host port stripped",
			url:  "http://acme.nexus.dev:8080/",
			want: Hint{Domain: "acme.nexus.dev", Subdomain: "acme", Slug: "acme", host: "acme.nexus.dev"},
		},
		{
			name: "explicit query hint wins over host",
			url:  "http://acme.nexus.dev/api/v0/tenant-info?id=tenant-1&slug=globex",
			want: Hint{ID: "tenant-1", Slug: "globex", host: "acme.nexus.dev"},
		},
		{
			name: "loopback with query param",
			url:  "http://localhost:8080/?tenant=acme",
			want: Hint{Slug: "acme", host: "localhost"},
		},
		{
			name: "loopback without query param",
			url:  "http://127.0.0.1:3000/",
			want: Hint{Slug: testDefaultSlug, host: "127.0.0.1"},
		},
		{
			name: "localhost subdomain is still loopback",
			url:  "http://acme.localhost/",
			want: Hint{Slug: testDefaultSlug, host: "acme.localhost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			if got := resolver.HintFromRequest(req); got != tt.want {
				t.Errorf("expected hint %+v, got %+v", tt.want, got)
			}
		})
	}
}
