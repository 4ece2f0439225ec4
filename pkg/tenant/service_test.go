// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/nexusdev/nexus-service/internal/authorization"
	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/types"
)

func setupService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthzInterface, *MockLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	return NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger), mockStorage, mockAuthz, mockLogger
}

func TestServiceCreateTenant(t *testing.T) {
	service, mockStorage, mockAuthz, _ := setupService(t)

	tenant := &types.Tenant{Name: "Acme", Slug: "acme"}
	created := &types.Tenant{ID: "tenant-1", Name: "Acme", Slug: "acme"}

	gomock.InOrder(
		mockStorage.EXPECT().CreateTenant(gomock.Any(), tenant).Return(created, nil),
		mockStorage.EXPECT().AddMember(gomock.Any(), "tenant-1", "user-1", authorization.OWNER_RELATION).Return("membership-1", nil),
		mockAuthz.EXPECT().AssignTenantOwner(gomock.Any(), "tenant-1", "user-1").Return(nil),
	)

	got, err := service.CreateTenant(context.Background(), tenant, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("expected tenant %s, got %s", created.ID, got.ID)
	}
}

func TestServiceCreateTenantValidation(t *testing.T) {
	service, _, _, _ := setupService(t)

	if _, err := service.CreateTenant(context.Background(), &types.Tenant{Slug: "acme"}, "user-1"); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := service.CreateTenant(context.Background(), &types.Tenant{Name: "Acme"}, "user-1"); err == nil {
		t.Error("expected error for missing slug")
	}
}

func TestServiceAddMember(t *testing.T) {
	tests := []struct {
		role   string
		assign func(*MockAuthzInterface) *gomock.Call
	}{
		{
			role: authorization.OWNER_RELATION,
			assign: func(m *MockAuthzInterface) *gomock.Call {
				return m.EXPECT().AssignTenantOwner(gomock.Any(), "tenant-1", "user-1")
			},
		},
		{
			role: authorization.ADMIN_RELATION,
			assign: func(m *MockAuthzInterface) *gomock.Call {
				return m.EXPECT().AssignTenantAdmin(gomock.Any(), "tenant-1", "user-1")
			},
		},
		{
			role: authorization.MEMBER_RELATION,
			assign: func(m *MockAuthzInterface) *gomock.Call {
				return m.EXPECT().AssignTenantMember(gomock.Any(), "tenant-1", "user-1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			service, mockStorage, mockAuthz, _ := setupService(t)

			mockStorage.EXPECT().AddMember(gomock.Any(), "tenant-1", "user-1", tt.role).Return("membership-1", nil)
			tt.assign(mockAuthz).Return(nil)

			membership, err := service.AddMember(context.Background(), "tenant-1", "user-1", tt.role)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if membership.Role != tt.role {
				t.Errorf("expected role %s, got %s", tt.role, membership.Role)
			}
		})
	}
}

func TestServiceAddMemberInvalidRole(t *testing.T) {
	service, _, _, _ := setupService(t)

	if _, err := service.AddMember(context.Background(), "tenant-1", "user-1", "superuser"); err == nil {
		t.Error("expected error for invalid role")
	}
}

func TestServiceRemoveMember(t *testing.T) {
	service, mockStorage, mockAuthz, _ := setupService(t)

	membership := &types.Membership{TenantID: "tenant-1", UserID: "user-1", Role: authorization.ADMIN_RELATION}
	gomock.InOrder(
		mockStorage.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(membership, nil),
		mockStorage.EXPECT().RemoveMember(gomock.Any(), "tenant-1", "user-1").Return(nil),
		mockAuthz.EXPECT().RemoveTenantAdmin(gomock.Any(), "tenant-1", "user-1").Return(nil),
	)

	if err := service.RemoveMember(context.Background(), "tenant-1", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServiceRemoveMemberNotFound(t *testing.T) {
	service, mockStorage, _, _ := setupService(t)

	mockStorage.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(nil, storage.ErrNotFound)

	err := service.RemoveMember(context.Background(), "tenant-1", "user-1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceRemoveMemberTupleFailureTolerated(t *testing.T) {
	service, mockStorage, mockAuthz, mockLogger := setupService(t)

	membership := &types.Membership{TenantID: "tenant-1", UserID: "user-1", Role: authorization.MEMBER_RELATION}
	mockStorage.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(membership, nil)
	mockStorage.EXPECT().RemoveMember(gomock.Any(), "tenant-1", "user-1").Return(nil)
	mockAuthz.EXPECT().RemoveTenantMember(gomock.Any(), "tenant-1", "user-1").Return(errors.New("openfga unavailable"))
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	if err := service.RemoveMember(context.Background(), "tenant-1", "user-1"); err != nil {
		t.Fatalf("expected tuple failure to be tolerated, got %v", err)
	}
}

func TestServiceDeactivateTenant(t *testing.T) {
	service, mockStorage, mockAuthz, mockLogger := setupService(t)

	gomock.InOrder(
		mockStorage.EXPECT().SetTenantStatus(gomock.Any(), "tenant-1", false).Return(nil),
		mockAuthz.EXPECT().DeleteTenant(gomock.Any(), "tenant-1").Return(errors.New("openfga unavailable")),
	)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())

	if err := service.DeactivateTenant(context.Background(), "tenant-1"); err != nil {
		t.Fatalf("expected tuple sweep failure to be tolerated, got %v", err)
	}
}
