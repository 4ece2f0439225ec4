// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package billing creates Stripe checkout sessions and keeps subscription
// rows in sync with Stripe webhook events.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v81"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/payments"
	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/internal/types"
)

type Service struct {
	storage  StorageInterface
	provider payments.PaymentProviderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) CreateCheckout(ctx context.Context, req *CheckoutRequest, userID, userEmail string) (*payments.CheckoutSession, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CreateCheckout")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	priceID, err := s.resolvePriceID(ctx, req.PlanName, req.Interval)
	if err != nil {
		return nil, err
	}

	session, err := s.provider.CreateCheckoutSession(ctx, payments.CheckoutRequest{
		PriceID:       priceID,
		CustomerEmail: userEmail,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		Metadata: map[string]string{
			"tenant_id": tenantID,
			"user_id":   userID,
			"plan_name": req.PlanName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return session, nil
}

func (s *Service) resolvePriceID(ctx context.Context, planName, interval string) (string, error) {
	plans, err := s.storage.ListActivePricingPlans(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load pricing plans: %w", err)
	}

	for _, plan := range plans {
		if plan.Name != planName {
			continue
		}

		switch interval {
		case "yearly":
			if plan.StripePriceIDYearly == "" {
				return "", fmt.Errorf("plan %q has no yearly price", planName)
			}
			return plan.StripePriceIDYearly, nil
		case "", "monthly":
			if plan.StripePriceIDMonthly == "" {
				return "", fmt.Errorf("plan %q has no monthly price", planName)
			}
			return plan.StripePriceIDMonthly, nil
		default:
			return "", fmt.Errorf("unknown billing interval %q", interval)
		}
	}

	return "", fmt.Errorf("unknown plan %q", planName)
}

func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.HandleWebhook")
	defer span.End()

	event, err := s.provider.ConstructWebhookEvent(payload, signature)
	if err != nil {
		return err
	}

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.updated":
		return s.handleSubscriptionUpdated(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	default:
		s.logger.Debugf("ignoring stripe event %s of type %s", event.ID, event.Type)
		return nil
	}
}

// handleCheckoutCompleted seeds the tenant scope from the session metadata
// stamped at checkout creation; webhook requests carry no host to resolve.
func (s *Service) handleCheckoutCompleted(ctx context.Context, event *stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("failed to decode checkout session: %w", err)
	}

	tenantID := session.Metadata["tenant_id"]
	userID := session.Metadata["user_id"]
	if tenantID == "" || userID == "" {
		return fmt.Errorf("checkout session %s is missing tenant or user metadata", session.ID)
	}

	ctx = tenantctx.WithTenantID(ctx, tenantID)

	sub := &types.Subscription{
		TenantID:  tenantID,
		UserID:    userID,
		UserEmail: session.CustomerEmail,
		PlanName:  session.Metadata["plan_name"],
		Status:    "active",
	}
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		sub.UserEmail = session.CustomerDetails.Email
	}
	if session.Customer != nil {
		sub.StripeCustomerID = session.Customer.ID
	}
	if session.Subscription != nil {
		sub.StripeSubscriptionID = session.Subscription.ID
	}

	if err := s.storage.UpsertSubscription(ctx, sub); err != nil {
		return fmt.Errorf("failed to record subscription: %w", err)
	}

	s.logger.Infof("recorded subscription for user %s on tenant %s", userID, tenantID)
	return nil
}

func (s *Service) handleSubscriptionUpdated(ctx context.Context, event *stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to decode subscription: %w", err)
	}

	var cancelAt *time.Time
	if sub.CancelAt > 0 {
		t := time.Unix(sub.CancelAt, 0).UTC()
		cancelAt = &t
	}

	return s.storage.UpdateSubscriptionPeriod(
		ctx,
		sub.ID,
		string(sub.Status),
		time.Unix(sub.CurrentPeriodStart, 0).UTC(),
		time.Unix(sub.CurrentPeriodEnd, 0).UTC(),
		cancelAt,
	)
}

func (s *Service) handleSubscriptionDeleted(ctx context.Context, event *stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to decode subscription: %w", err)
	}

	return s.storage.CancelSubscription(ctx, sub.ID)
}

func NewService(storage StorageInterface, provider payments.PaymentProviderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.provider = provider

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
