// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

//go:generate mockgen -build_flags=--mod=mod -package pricing -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package pricing -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package pricing -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package pricing -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

package pricing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/nexusdev/nexus-service/internal/types"
)

func setupService(t *testing.T) (*Service, *MockStorageInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	return NewService(mockStorage, mockTracer, mockMonitor, mockLogger), mockStorage
}

func TestServiceListPlans(t *testing.T) {
	service, mockStorage := setupService(t)

	plans := []*types.PricingPlan{
		{ID: "plan-1", Name: "Starter", SortOrder: 1},
		{ID: "plan-2", Name: "Pro", SortOrder: 2},
	}
	mockStorage.EXPECT().ListActivePricingPlans(gomock.Any()).Return(plans, nil)

	got, err := service.ListPlans(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 plans, got %d", len(got))
	}
}

func TestServiceCreatePlan(t *testing.T) {
	service, mockStorage := setupService(t)

	plan := &types.PricingPlan{Name: "Pro", PriceMonthly: 2900, PriceYearly: 29000}
	created := &types.PricingPlan{ID: "plan-1", Name: "Pro", PriceMonthly: 2900, PriceYearly: 29000}
	mockStorage.EXPECT().CreatePricingPlan(gomock.Any(), plan).Return(created, nil)

	got, err := service.CreatePlan(context.Background(), plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "plan-1" {
		t.Errorf("unexpected plan %+v", got)
	}
}

func TestServiceCreatePlanValidation(t *testing.T) {
	service, _ := setupService(t)

	if _, err := service.CreatePlan(context.Background(), &types.PricingPlan{}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := service.CreatePlan(context.Background(), &types.PricingPlan{Name: "Pro", PriceMonthly: -1}); err == nil {
		t.Error("expected error for negative price")
	}
}
