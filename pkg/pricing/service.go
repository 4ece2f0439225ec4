// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package pricing manages the tenant-scoped pricing plan catalogue.
package pricing

import (
	"context"
	"fmt"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) ListPlans(ctx context.Context) ([]*types.PricingPlan, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.ListPlans")
	defer span.End()

	return s.storage.ListActivePricingPlans(ctx)
}

func (s *Service) CreatePlan(ctx context.Context, plan *types.PricingPlan) (*types.PricingPlan, error) {
	ctx, span := s.tracer.Start(ctx, "pricing.Service.CreatePlan")
	defer span.End()

	if plan.Name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if plan.PriceMonthly < 0 || plan.PriceYearly < 0 {
		return nil, fmt.Errorf("plan prices must not be negative")
	}

	return s.storage.CreatePricingPlan(ctx, plan)
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
