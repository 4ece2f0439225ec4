// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/nexusdev/nexus-service/internal/types"
)

func setupService(t *testing.T) (*Service, *MockTenantServiceInterface, *MockLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockTenants := NewMockTenantServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	return NewService(mockTenants, mockTracer, mockMonitor, mockLogger), mockTenants, mockLogger
}

func TestHandleRegistration(t *testing.T) {
	service, mockTenants, mockLogger := setupService(t)

	mockTenants.EXPECT().CreateTenant(gomock.Any(), gomock.Any(), "user-1").
		DoAndReturn(func(ctx context.Context, tenant *types.Tenant, ownerID string) (*types.Tenant, error) {
			if tenant.Name != "jane.doe@example.com's Workspace" {
				t.Errorf("unexpected tenant name %q", tenant.Name)
			}
			if !strings.HasPrefix(tenant.Slug, "jane-doe-") {
				t.Errorf("unexpected slug %q", tenant.Slug)
			}
			if !tenant.IsActive {
				t.Error("expected the workspace to be active")
			}
			created := *tenant
			created.ID = "tenant-1"
			return &created, nil
		})
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())

	tenant, err := service.HandleRegistration(context.Background(), "user-1", "jane.doe@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tenant.ID != "tenant-1" {
		t.Errorf("unexpected tenant %+v", tenant)
	}
}

func TestHandleRegistrationMissingFields(t *testing.T) {
	service, _, _ := setupService(t)

	if _, err := service.HandleRegistration(context.Background(), "", "jane@example.com"); err == nil {
		t.Error("expected an error for a missing user id")
	}
	if _, err := service.HandleRegistration(context.Background(), "user-1", ""); err == nil {
		t.Error("expected an error for a missing email")
	}
}

func TestHandleRegistrationCreateFailure(t *testing.T) {
	service, mockTenants, _ := setupService(t)

	mockTenants.EXPECT().CreateTenant(gomock.Any(), gomock.Any(), "user-1").
		Return(nil, errors.New("slug already taken"))

	if _, err := service.HandleRegistration(context.Background(), "user-1", "jane@example.com"); err == nil {
		t.Fatal("expected the provisioning error to propagate")
	}
}

func TestWorkspaceSlug(t *testing.T) {
	tests := []struct {
		email  string
		prefix string
	}{
		{"jane.doe@example.com", "jane-doe-"},
		{"JANE@example.com", "jane-"},
		{"--@example.com", "workspace-"},
		{"j_0@example.com", "j-0-"},
	}

	for _, tt := range tests {
		slug := workspaceSlug(tt.email)
		if !strings.HasPrefix(slug, tt.prefix) {
			t.Errorf("workspaceSlug(%q) = %q, expected prefix %q", tt.email, slug, tt.prefix)
		}
		if strings.HasSuffix(slug, "-") {
			t.Errorf("workspaceSlug(%q) = %q has a trailing dash", tt.email, slug)
		}
	}
}

func TestWorkspaceSlugUnique(t *testing.T) {
	if workspaceSlug("jane@example.com") == workspaceSlug("jane@example.com") {
		t.Error("expected distinct slugs for repeated local parts")
	}
}
