// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"context"
	"encoding/json"

	"github.com/nexusdev/nexus-service/internal/types"
)

// CreateProjectRequest carries the questionnaire payload. Tenant and user
// identity are never taken from the payload; the service stamps them from
// the request context.
type CreateProjectRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Description string          `json:"description"`
	Prompt      string          `json:"prompt"`
	PersonData  json.RawMessage `json:"person_data"`
	ProblemData json.RawMessage `json:"problem_data"`
	PlanData    json.RawMessage `json:"plan_data"`
	PivotData   json.RawMessage `json:"pivot_data"`
	PayoffData  json.RawMessage `json:"payoff_data"`
}

type ServiceInterface interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest, userID, userEmail string) (*types.Project, error)
	GetProject(ctx context.Context, id string) (*types.Project, error)
	ListProjects(ctx context.Context, page, size int64) ([]*types.Project, error)
	GenerateWireframe(ctx context.Context, id string) (*types.Project, error)
}

type StorageInterface interface {
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
	ListProjects(ctx context.Context, page, size int64) ([]*types.Project, error)
	UpdateProjectSpecification(ctx context.Context, id, specification string) error
	UpdateProjectWireframe(ctx context.Context, id string, wireframe []byte) error
	UpdateProjectStatus(ctx context.Context, id, status string) error
}
