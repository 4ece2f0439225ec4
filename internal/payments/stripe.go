// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package payments wraps the Stripe SDK behind a narrow interface so billing
// logic can be tested without a Stripe account.
package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tracing"
)

type Config struct {
	SecretKey     string
	WebhookSecret string
}

type StripeProvider struct {
	api           *client.API
	webhookSecret string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ PaymentProviderInterface = (*StripeProvider)(nil)

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	ctx, span := p.tracer.Start(ctx, "payments.StripeProvider.CreateCheckoutSession")
	defer span.End()

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	if len(req.Metadata) > 0 {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: req.Metadata,
		}
		for k, v := range req.Metadata {
			params.AddMetadata(k, v)
		}
	}

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		p.logger.Errorf("failed to create checkout session: %v", err)
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (p *StripeProvider) ConstructWebhookEvent(payload []byte, signature string) (*stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return &event, nil
}

func (p *StripeProvider) GetSubscription(ctx context.Context, id string) (*stripe.Subscription, error) {
	ctx, span := p.tracer.Start(ctx, "payments.StripeProvider.GetSubscription")
	defer span.End()

	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := p.api.Subscriptions.Get(id, params)
	if err != nil {
		p.logger.Errorf("failed to get subscription %s: %v", id, err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return sub, nil
}

func NewStripeProvider(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *StripeProvider {
	p := new(StripeProvider)

	p.api = &client.API{}
	p.api.Init(cfg.SecretKey, nil)
	p.webhookSecret = cfg.WebhookSecret

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}
