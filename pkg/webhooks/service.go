// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks provisions a personal workspace for every freshly
// registered user, driven by a hook from the identity provider.
package webhooks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/internal/types"
)

type Service struct {
	tenants TenantServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// HandleRegistration creates a workspace tenant for the user and makes them
// its owner. Membership and the owner tuple are written by the tenant
// service as part of creation.
func (s *Service) HandleRegistration(ctx context.Context, userID, email string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if userID == "" || email == "" {
		return nil, fmt.Errorf("registration event is missing the user id or email")
	}

	tenant := &types.Tenant{
		Name:     fmt.Sprintf("%s's Workspace", email),
		Slug:     workspaceSlug(email),
		Settings: json.RawMessage(`{}`),
		IsActive: true,
	}

	created, err := s.tenants.CreateTenant(ctx, tenant, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to provision workspace: %w", err)
	}

	s.logger.Infof("provisioned workspace %s for user %s", created.ID, userID)
	return created, nil
}

// workspaceSlug derives a slug from the email local part and appends a
// random fragment so repeated local parts never collide.
func workspaceSlug(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var b strings.Builder
	for _, r := range strings.ToLower(local) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "workspace"
	}

	suffix, _, _ := strings.Cut(uuid.NewString(), "-")
	return slug + "-" + suffix
}

func NewService(tenants TenantServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.tenants = tenants

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
