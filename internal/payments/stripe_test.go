// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"fmt"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tracing"
)

func newTestProvider(t *testing.T) *StripeProvider {
	t.Helper()

	logger := logging.NewNoopLogger()
	return NewStripeProvider(
		Config{SecretKey: "sk_test_123", WebhookSecret: "whsec_test"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("", logger),
		logger,
	)
}

func signedHeader(payload []byte, secret string, ts time.Time) string {
	sig := webhook.ComputeSignature(ts, payload, secret)
	return fmt.Sprintf("t=%d,v1=%x", ts.Unix(), sig)
}

func TestConstructWebhookEvent(t *testing.T) {
	p := newTestProvider(t)
	payload := []byte(`{"id": "evt_1", "api_version": "` + stripe.APIVersion + `", "type": "checkout.session.completed", "data": {"object": {}}}`)

	event, err := p.ConstructWebhookEvent(payload, signedHeader(payload, "whsec_test", time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(event.Type) != "checkout.session.completed" {
		t.Errorf("unexpected event type %q", event.Type)
	}
}

func TestConstructWebhookEventBadSignature(t *testing.T) {
	p := newTestProvider(t)
	payload := []byte(`{"id": "evt_1", "type": "checkout.session.completed"}`)

	if _, err := p.ConstructWebhookEvent(payload, signedHeader(payload, "whsec_other", time.Now())); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestConstructWebhookEventStaleTimestamp(t *testing.T) {
	p := newTestProvider(t)
	payload := []byte(`{"id": "evt_1", "type": "checkout.session.completed"}`)

	if _, err := p.ConstructWebhookEvent(payload, signedHeader(payload, "whsec_test", time.Now().Add(-time.Hour))); err == nil {
		t.Fatal("expected stale signature to be rejected")
	}
}
