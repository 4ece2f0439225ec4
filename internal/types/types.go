// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"time"
)

type Tenant struct {
	ID        string          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Slug      string          `db:"slug" json:"slug"`
	Domain    string          `db:"domain" json:"domain,omitempty"`
	Subdomain string          `db:"subdomain" json:"subdomain,omitempty"`
	Settings  json.RawMessage `db:"settings" json:"settings,omitempty"`
	IsActive  bool            `db:"is_active" json:"is_active"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

type Membership struct {
	ID       string    `db:"id" json:"id"`
	TenantID string    `db:"tenant_id" json:"tenant_id"`
	UserID   string    `db:"user_id" json:"user_id"`
	Role     string    `db:"role" json:"role"`
	JoinedAt time.Time `db:"joined_at" json:"joined_at"`
}

type TenantUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Project is one generated application build specification. The five *Data
// blobs hold the questionnaire answers (Person, Problem, Plan, Pivot, Payoff).
type Project struct {
	ID            string          `db:"id" json:"id"`
	TenantID      string          `db:"tenant_id" json:"tenant_id"`
	UserID        string          `db:"user_id" json:"user_id"`
	CreatedBy     string          `db:"created_by" json:"created_by"`
	Title         string          `db:"title" json:"title"`
	Description   string          `db:"description" json:"description"`
	Prompt        string          `db:"prompt" json:"prompt"`
	PersonData    json.RawMessage `db:"person_data" json:"person_data,omitempty"`
	ProblemData   json.RawMessage `db:"problem_data" json:"problem_data,omitempty"`
	PlanData      json.RawMessage `db:"plan_data" json:"plan_data,omitempty"`
	PivotData     json.RawMessage `db:"pivot_data" json:"pivot_data,omitempty"`
	PayoffData    json.RawMessage `db:"payoff_data" json:"payoff_data,omitempty"`
	WireframeData json.RawMessage `db:"wireframe_data" json:"wireframe_data,omitempty"`
	Components    json.RawMessage `db:"components" json:"components,omitempty"`
	Pages         json.RawMessage `db:"pages" json:"pages,omitempty"`
	Status        string          `db:"status" json:"status"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

type PricingPlan struct {
	ID                   string          `db:"id" json:"id"`
	TenantID             string          `db:"tenant_id" json:"tenant_id"`
	Name                 string          `db:"name" json:"name"`
	Description          string          `db:"description" json:"description"`
	Features             json.RawMessage `db:"features" json:"features,omitempty"`
	PriceMonthly         int64           `db:"price_monthly" json:"price_monthly"`
	PriceYearly          int64           `db:"price_yearly" json:"price_yearly"`
	ProjectsLimit        int             `db:"projects_limit" json:"projects_limit"`
	StripePriceIDMonthly string          `db:"stripe_price_id_monthly" json:"stripe_price_id_monthly,omitempty"`
	StripePriceIDYearly  string          `db:"stripe_price_id_yearly" json:"stripe_price_id_yearly,omitempty"`
	IsPopular            bool            `db:"is_popular" json:"is_popular"`
	IsActive             bool            `db:"is_active" json:"is_active"`
	SortOrder            int             `db:"sort_order" json:"sort_order"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
}

type Subscription struct {
	ID                   string     `db:"id" json:"id"`
	TenantID             string     `db:"tenant_id" json:"tenant_id"`
	UserID               string     `db:"user_id" json:"user_id"`
	UserEmail            string     `db:"user_email" json:"user_email"`
	StripeCustomerID     string     `db:"stripe_customer_id" json:"stripe_customer_id"`
	StripeSubscriptionID string     `db:"stripe_subscription_id" json:"stripe_subscription_id"`
	PlanName             string     `db:"plan_name" json:"plan_name"`
	PlanTier             string     `db:"plan_tier" json:"plan_tier"`
	Status               string     `db:"status" json:"status"`
	CurrentPeriodStart   time.Time  `db:"current_period_start" json:"current_period_start"`
	CurrentPeriodEnd     time.Time  `db:"current_period_end" json:"current_period_end"`
	CancelAt             *time.Time `db:"cancel_at" json:"cancel_at,omitempty"`
	ProjectsLimit        int        `db:"projects_limit" json:"projects_limit"`
	ProjectsUsed         int        `db:"projects_used" json:"projects_used"`
}
