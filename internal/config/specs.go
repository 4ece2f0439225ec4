// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// Tenant resolution. The fallback tenant is served whenever directory
	// resolution fails; it must stay in sync with the seeded default tenant.
	DefaultTenantSlug  string `envconfig:"default_tenant_slug" default:"nexus"`
	FallbackTenantID   string `envconfig:"fallback_tenant_id" default:"eabc44ea-c919-40b2-9d1f-e0923d7d1db7"`
	FallbackTenantName string `envconfig:"fallback_tenant_name" default:"Nexus Developer AI"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	JWKSURL               string   `envconfig:"jwks_url"`
	AllowedSubjects       []string `envconfig:"allowed_subjects"`
	RequiredScope         string   `envconfig:"required_scope"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	OpenAIAPIKey  string `envconfig:"openai_api_key"`
	OpenAIBaseURL string `envconfig:"openai_base_url" default:"https://api.openai.com/v1"`
	OpenAIModel   string `envconfig:"openai_model" default:"gpt-4o"`

	StripeSecretKey     string `envconfig:"stripe_secret_key"`
	StripeWebhookSecret string `envconfig:"stripe_webhook_secret"`

	SuggestionCacheBytes int64         `envconfig:"suggestion_cache_bytes" default:"33554432"`
	SuggestionCacheTTL   time.Duration `envconfig:"suggestion_cache_ttl" default:"10m"`
}
