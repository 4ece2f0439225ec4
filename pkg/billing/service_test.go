// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_payments.go -source=../../internal/payments/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v81"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/nexusdev/nexus-service/internal/payments"
	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/types"
)

func setupService(t *testing.T) (*Service, *MockStorageInterface, *MockPaymentProviderInterface, *MockLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockProvider := NewMockPaymentProviderInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	return NewService(mockStorage, mockProvider, mockTracer, mockMonitor, mockLogger), mockStorage, mockProvider, mockLogger
}

func starterPlan() *types.PricingPlan {
	return &types.PricingPlan{
		ID:                   "plan-1",
		Name:                 "Starter",
		StripePriceIDMonthly: "price_monthly",
		StripePriceIDYearly:  "price_yearly",
	}
}

func stripeEvent(t *testing.T, eventType string, data any) *stripe.Event {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal event data: %v", err)
	}
	return &stripe.Event{
		ID:   "evt_1",
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestCreateCheckout(t *testing.T) {
	service, mockStorage, mockProvider, _ := setupService(t)

	ctx := tenantctx.WithTenantID(context.Background(), "tenant-1")

	mockStorage.EXPECT().ListActivePricingPlans(gomock.Any()).Return([]*types.PricingPlan{starterPlan()}, nil)
	mockProvider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req payments.CheckoutRequest) (*payments.CheckoutSession, error) {
			if req.PriceID != "price_monthly" {
				t.Errorf("expected price_monthly, got %q", req.PriceID)
			}
			if req.CustomerEmail != "user@example.com" {
				t.Errorf("unexpected customer email %q", req.CustomerEmail)
			}
			if req.Metadata["tenant_id"] != "tenant-1" || req.Metadata["user_id"] != "user-1" || req.Metadata["plan_name"] != "Starter" {
				t.Errorf("unexpected metadata %+v", req.Metadata)
			}
			return &payments.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/cs_1"}, nil
		})

	session, err := service.CreateCheckout(ctx, &CheckoutRequest{
		PlanName:   "Starter",
		SuccessURL: "https://app.example.com/success",
		CancelURL:  "https://app.example.com/cancel",
	}, "user-1", "user@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.ID != "cs_1" {
		t.Errorf("unexpected session %+v", session)
	}
}

func TestCreateCheckoutYearlyInterval(t *testing.T) {
	service, mockStorage, mockProvider, _ := setupService(t)

	ctx := tenantctx.WithTenantID(context.Background(), "tenant-1")

	mockStorage.EXPECT().ListActivePricingPlans(gomock.Any()).Return([]*types.PricingPlan{starterPlan()}, nil)
	mockProvider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req payments.CheckoutRequest) (*payments.CheckoutSession, error) {
			if req.PriceID != "price_yearly" {
				t.Errorf("expected price_yearly, got %q", req.PriceID)
			}
			return &payments.CheckoutSession{ID: "cs_1"}, nil
		})

	_, err := service.CreateCheckout(ctx, &CheckoutRequest{PlanName: "Starter", Interval: "yearly", SuccessURL: "s", CancelURL: "c"}, "user-1", "user@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestCreateCheckoutTenantMissing(t *testing.T) {
	service, _, _, _ := setupService(t)

	_, err := service.CreateCheckout(context.Background(), &CheckoutRequest{PlanName: "Starter"}, "user-1", "user@example.com")
	if !errors.Is(err, tenantctx.ErrTenantContextMissing) {
		t.Fatalf("expected tenant context error, got %v", err)
	}
}

func TestCreateCheckoutUnknownPlan(t *testing.T) {
	service, mockStorage, _, _ := setupService(t)

	ctx := tenantctx.WithTenantID(context.Background(), "tenant-1")
	mockStorage.EXPECT().ListActivePricingPlans(gomock.Any()).Return([]*types.PricingPlan{starterPlan()}, nil)

	_, err := service.CreateCheckout(ctx, &CheckoutRequest{PlanName: "Enterprise"}, "user-1", "user@example.com")
	if err == nil {
		t.Fatal("expected an error for an unknown plan")
	}
}

func TestCreateCheckoutUnknownInterval(t *testing.T) {
	service, mockStorage, _, _ := setupService(t)

	ctx := tenantctx.WithTenantID(context.Background(), "tenant-1")
	mockStorage.EXPECT().ListActivePricingPlans(gomock.Any()).Return([]*types.PricingPlan{starterPlan()}, nil)

	_, err := service.CreateCheckout(ctx, &CheckoutRequest{PlanName: "Starter", Interval: "weekly"}, "user-1", "user@example.com")
	if err == nil {
		t.Fatal("expected an error for an unknown interval")
	}
}

func TestHandleWebhookCheckoutCompleted(t *testing.T) {
	service, mockStorage, mockProvider, mockLogger := setupService(t)

	event := stripeEvent(t, "checkout.session.completed", map[string]any{
		"id": "cs_1",
		"metadata": map[string]string{
			"tenant_id": "tenant-1",
			"user_id":   "user-1",
			"plan_name": "Starter",
		},
		"customer_details": map[string]any{"email": "user@example.com"},
		"customer":         map[string]any{"id": "cus_1"},
		"subscription":     map[string]any{"id": "sub_1"},
	})

	mockProvider.EXPECT().ConstructWebhookEvent(gomock.Any(), "sig").Return(event, nil)
	mockStorage.EXPECT().UpsertSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, sub *types.Subscription) error {
			tenantID, err := tenantctx.RequireTenantID(ctx)
			if err != nil || tenantID != "tenant-1" {
				t.Errorf("expected tenant-1 in context, got %q (%v)", tenantID, err)
			}
			if sub.UserID != "user-1" || sub.UserEmail != "user@example.com" || sub.PlanName != "Starter" {
				t.Errorf("unexpected subscription %+v", sub)
			}
			if sub.StripeCustomerID != "cus_1" || sub.StripeSubscriptionID != "sub_1" {
				t.Errorf("unexpected stripe references %+v", sub)
			}
			return nil
		})
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())

	if err := service.HandleWebhook(context.Background(), []byte(`{}`), "sig"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestHandleWebhookCheckoutMissingMetadata(t *testing.T) {
	service, _, mockProvider, _ := setupService(t)

	event := stripeEvent(t, "checkout.session.completed", map[string]any{"id": "cs_1"})
	mockProvider.EXPECT().ConstructWebhookEvent(gomock.Any(), "sig").Return(event, nil)

	if err := service.HandleWebhook(context.Background(), []byte(`{}`), "sig"); err == nil {
		t.Fatal("expected an error for missing metadata")
	}
}

func TestHandleWebhookSubscriptionUpdated(t *testing.T) {
	service, mockStorage, mockProvider, _ := setupService(t)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	cancel := end.Add(-24 * time.Hour)

	event := stripeEvent(t, "customer.subscription.updated", map[string]any{
		"id":                   "sub_1",
		"status":               "past_due",
		"current_period_start": start.Unix(),
		"current_period_end":   end.Unix(),
		"cancel_at":            cancel.Unix(),
	})

	mockProvider.EXPECT().ConstructWebhookEvent(gomock.Any(), "sig").Return(event, nil)
	mockStorage.EXPECT().UpdateSubscriptionPeriod(gomock.Any(), "sub_1", "past_due", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id, status string, periodStart, periodEnd time.Time, cancelAt *time.Time) error {
			if !periodStart.Equal(start) || !periodEnd.Equal(end) {
				t.Errorf("unexpected period %v - %v", periodStart, periodEnd)
			}
			if cancelAt == nil || !cancelAt.Equal(cancel) {
				t.Errorf("expected cancel at %v, got %v", cancel, cancelAt)
			}
			return nil
		})

	if err := service.HandleWebhook(context.Background(), []byte(`{}`), "sig"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestHandleWebhookSubscriptionDeleted(t *testing.T) {
	service, mockStorage, mockProvider, _ := setupService(t)

	event := stripeEvent(t, "customer.subscription.deleted", map[string]any{"id": "sub_1"})

	mockProvider.EXPECT().ConstructWebhookEvent(gomock.Any(), "sig").Return(event, nil)
	mockStorage.EXPECT().CancelSubscription(gomock.Any(), "sub_1").Return(nil)

	if err := service.HandleWebhook(context.Background(), []byte(`{}`), "sig"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestHandleWebhookUnknownEventIgnored(t *testing.T) {
	service, _, mockProvider, mockLogger := setupService(t)

	event := stripeEvent(t, "invoice.paid", map[string]any{"id": "in_1"})

	mockProvider.EXPECT().ConstructWebhookEvent(gomock.Any(), "sig").Return(event, nil)
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())

	if err := service.HandleWebhook(context.Background(), []byte(`{}`), "sig"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestHandleWebhookBadSignature(t *testing.T) {
	service, _, mockProvider, _ := setupService(t)

	mockProvider.EXPECT().ConstructWebhookEvent(gomock.Any(), "bad").Return(nil, errors.New("signature verification failed"))

	if err := service.HandleWebhook(context.Background(), []byte(`{}`), "bad"); err == nil {
		t.Fatal("expected a signature error")
	}
}
