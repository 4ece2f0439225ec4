// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"time"

	"github.com/nexusdev/nexus-service/internal/payments"
	"github.com/nexusdev/nexus-service/internal/types"
)

// CheckoutRequest selects a plan from the tenant's catalogue. The tenant and
// user are taken from the request context, never from the payload.
type CheckoutRequest struct {
	PlanName   string `json:"plan_name"`
	Interval   string `json:"interval"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

type ServiceInterface interface {
	CreateCheckout(ctx context.Context, req *CheckoutRequest, userID, userEmail string) (*payments.CheckoutSession, error)
	// HandleWebhook verifies the event signature and applies the
	// subscription bookkeeping it implies.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type StorageInterface interface {
	ListActivePricingPlans(ctx context.Context) ([]*types.PricingPlan, error)
	UpsertSubscription(ctx context.Context, s *types.Subscription) error
	UpdateSubscriptionPeriod(ctx context.Context, stripeSubscriptionID, status string, periodStart, periodEnd time.Time, cancelAt *time.Time) error
	CancelSubscription(ctx context.Context, stripeSubscriptionID string) error
}
