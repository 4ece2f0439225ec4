// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/types"
)

// UpsertSubscription records the result of a completed checkout. Keyed on
// (tenant_id, user_id) so a re-subscription after cancellation replaces the
// old row instead of accumulating.
func (s *Storage) UpsertSubscription(ctx context.Context, sub *types.Subscription) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertSubscription")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate subscription ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("user_subscriptions").
		Columns(
			"id", "tenant_id", "user_id", "user_email",
			"stripe_customer_id", "stripe_subscription_id",
			"plan_name", "plan_tier", "status",
			"current_period_start", "current_period_end", "cancel_at",
			"projects_limit", "projects_used",
		).
		Values(
			id.String(), tenantID, sub.UserID, sub.UserEmail,
			sub.StripeCustomerID, sub.StripeSubscriptionID,
			sub.PlanName, sub.PlanTier, sub.Status,
			sub.CurrentPeriodStart, sub.CurrentPeriodEnd, sub.CancelAt,
			sub.ProjectsLimit, sub.ProjectsUsed,
		).
		Suffix(`ON CONFLICT (tenant_id, user_id) DO UPDATE SET
			user_email = EXCLUDED.user_email,
			stripe_customer_id = EXCLUDED.stripe_customer_id,
			stripe_subscription_id = EXCLUDED.stripe_subscription_id,
			plan_name = EXCLUDED.plan_name,
			plan_tier = EXCLUDED.plan_tier,
			status = EXCLUDED.status,
			current_period_start = EXCLUDED.current_period_start,
			current_period_end = EXCLUDED.current_period_end,
			cancel_at = EXCLUDED.cancel_at,
			projects_limit = EXCLUDED.projects_limit`).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return nil
}

// UpdateSubscriptionPeriod and CancelSubscription are keyed on
// stripe_subscription_id alone: Stripe lifecycle events carry no tenant, and
// the id is unique across tenants (signature verification on the webhook is
// the trust boundary for this path).
func (s *Storage) UpdateSubscriptionPeriod(ctx context.Context, stripeSubscriptionID, status string, periodStart, periodEnd time.Time, cancelAt *time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSubscriptionPeriod")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("user_subscriptions").
		Set("status", status).
		Set("current_period_start", periodStart).
		Set("current_period_end", periodEnd).
		Set("cancel_at", cancelAt).
		Where(sq.Eq{"stripe_subscription_id": stripeSubscriptionID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update subscription period: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CancelSubscription(ctx context.Context, stripeSubscriptionID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.CancelSubscription")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("user_subscriptions").
		Set("status", "canceled").
		Where(sq.Eq{"stripe_subscription_id": stripeSubscriptionID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
