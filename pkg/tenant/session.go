// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"
	"sync"

	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/types"
)

// Session pins a tenant selection across multiple calls, for long-lived
// clients such as the admin CLI where per-request host resolution does not
// apply. It is safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	directory DirectoryInterface
	current   *types.Tenant
}

// Current returns the tenant the session is pinned to, or nil when no
// tenant has been selected yet.
func (s *Session) Current() *types.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Switch re-resolves the tenant for the given id and pins the session to
// it. On any lookup failure the previous selection stays active; callers
// never observe a half-switched session.
func (s *Session) Switch(ctx context.Context, tenantID string) (*types.Tenant, error) {
	tenant, err := s.directory.GetActiveTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to switch to tenant %s: %w", tenantID, err)
	}

	s.mu.Lock()
	s.current = tenant
	s.mu.Unlock()

	return tenant, nil
}

// Context stamps the session's tenant id onto the given context so
// tenant-scoped storage helpers accept it. When no tenant is selected the
// context is returned unchanged and those helpers fail fast.
func (s *Session) Context(ctx context.Context) context.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ctx
	}

	return tenantctx.WithTenantID(ctx, s.current.ID)
}

func NewSession(directory DirectoryInterface) *Session {
	s := new(Session)
	s.directory = directory

	return s
}
