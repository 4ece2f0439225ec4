// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"

	"github.com/stripe/stripe-go/v81"
)

type CheckoutRequest struct {
	PriceID       string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string

	// Metadata travels on the subscription so webhook events can be tied
	// back to a tenant and user.
	Metadata map[string]string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type PaymentProviderInterface interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	// ConstructWebhookEvent verifies the webhook signature and parses the event.
	ConstructWebhookEvent(payload []byte, signature string) (*stripe.Event, error)
	GetSubscription(ctx context.Context, id string) (*stripe.Subscription, error)
}
