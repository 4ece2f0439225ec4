// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tenant resolves inbound requests to a tenant record and manages
// tenant lifecycle and membership.
package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/internal/types"
)

// TenantQueryParam selects a tenant by slug on loopback hosts, where no
// meaningful subdomain can be derived.
const TenantQueryParam = "tenant"

// Hint is an explicit tenant selector. Fields are tried in declaration
// order; the first populated field that matches an active tenant wins.
type Hint struct {
	ID        string
	Domain    string
	Subdomain string
	Slug      string

	// host is recorded for audit logging when resolution degrades to the
	// fallback tenant.
	host string
}

func (h Hint) empty() bool {
	return h.ID == "" && h.Domain == "" && h.Subdomain == "" && h.Slug == ""
}

type ResolverConfig struct {
	DefaultSlug  string
	FallbackID   string
	FallbackName string
}

// Resolver maps a request to exactly one tenant. It never fails: when the
// directory has no match, or is unreachable, it serves a fixed fallback
// tenant and emits an audit event. Serving the wrong storefront is treated
// as less harmful than blocking every request on a directory outage.
type Resolver struct {
	directory   DirectoryInterface
	fallback    *types.Tenant
	defaultSlug string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ResolverInterface = (*Resolver)(nil)

// Resolve returns the active tenant matching the hint, or the fallback
// tenant. The returned record is never nil.
func (r *Resolver) Resolve(ctx context.Context, hint Hint) *types.Tenant {
	ctx, span := r.tracer.Start(ctx, "tenant.Resolver.Resolve")
	defer span.End()

	if hint.empty() {
		return r.fallbackTenant(hint.host, "no tenant hint derivable from request")
	}

	tenant, err := r.lookup(ctx, hint)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return r.fallbackTenant(hint.host, "no active tenant matches request")
		}

		r.logger.Errorf("tenant directory lookup failed: %v", err)
		return r.fallbackTenant(hint.host, "tenant directory unavailable")
	}

	return tenant
}

// lookup tries each populated hint field in priority order. A miss on one
// field falls through to the next; any other directory error aborts the
// chain so an outage is not misread as "tenant does not exist".
func (r *Resolver) lookup(ctx context.Context, hint Hint) (*types.Tenant, error) {
	type candidate struct {
		value string
		get   func(context.Context, string) (*types.Tenant, error)
	}

	candidates := []candidate{
		{hint.ID, r.directory.GetActiveTenantByID},
		{hint.Domain, r.directory.GetActiveTenantByDomain},
		{hint.Subdomain, r.directory.GetActiveTenantBySubdomain},
		{hint.Slug, r.directory.GetActiveTenantBySlug},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}

		tenant, err := c.get(ctx, c.value)
		if err == nil {
			return tenant, nil
		}

		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}

	return nil, storage.ErrNotFound
}

// HintFromRequest derives a tenant hint from the request. Explicit query
// hints win over host derivation so non-browser clients and tests can
// address a tenant directly.
//
// Loopback hosts carry no routable subdomain, so the tenant is taken from
// the query string instead, defaulting to the well-known default slug. For
// real hosts the full host is tried as a custom domain first; when the host
// has a subdomain label, that label doubles as a subdomain and slug
// candidate.
func (r *Resolver) HintFromRequest(req *http.Request) Hint {
	host := stripPort(req.Host)
	query := req.URL.Query()

	explicit := Hint{
		ID:        query.Get("id"),
		Domain:    query.Get("domain"),
		Subdomain: query.Get("subdomain"),
		Slug:      query.Get("slug"),
		host:      host,
	}
	if !explicit.empty() {
		return explicit
	}

	if isLoopback(host) {
		slug := req.URL.Query().Get(TenantQueryParam)
		if slug == "" {
			slug = r.defaultSlug
		}

		return Hint{Slug: slug, host: host}
	}

	hint := Hint{Domain: host, host: host}

	if labels := strings.Split(host, "."); len(labels) > 2 {
		hint.Subdomain = labels[0]
		hint.Slug = labels[0]
	}

	return hint
}

func (r *Resolver) fallbackTenant(host, reason string) *types.Tenant {
	r.logger.Security().TenantFallback(host, reason)

	tenant := *r.fallback
	return &tenant
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func isLoopback(host string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}

	return false
}

func NewResolver(cfg ResolverConfig, directory DirectoryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)

	r.directory = directory
	r.defaultSlug = cfg.DefaultSlug
	r.fallback = &types.Tenant{
		ID:       cfg.FallbackID,
		Name:     cfg.FallbackName,
		Slug:     cfg.DefaultSlug,
		Settings: json.RawMessage(`{}`),
		IsActive: true,
	}

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
