// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/nexusdev/nexus-service/internal/types"
)

// TenantServiceInterface is the slice of the tenant service needed to
// provision a workspace for a new user.
type TenantServiceInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant, ownerID string) (*types.Tenant, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, userID, email string) (*types.Tenant, error)
}
