// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package projects implements tenant-scoped project generation: a 5P
// questionnaire is turned into a build specification and wireframes by an
// LLM and persisted on the project row.
package projects

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/openai"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/internal/types"
)

type Service struct {
	storage  StorageInterface
	llm      openai.LLMClientInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// CreateProject persists the questionnaire and synthesizes the build
// specification. The draft row is written before the LLM call; a provider
// failure leaves a draft row behind, which is tolerated and can be retried.
func (s *Service) CreateProject(ctx context.Context, req *CreateProjectRequest, userID, userEmail string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.CreateProject")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid project request: %w", err)
	}

	project := &types.Project{
		UserID:      userID,
		CreatedBy:   userEmail,
		Title:       req.Title,
		Description: req.Description,
		Prompt:      req.Prompt,
		PersonData:  req.PersonData,
		ProblemData: req.ProblemData,
		PlanData:    req.PlanData,
		PivotData:   req.PivotData,
		PayoffData:  req.PayoffData,
	}

	created, err := s.storage.CreateProject(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	resp, err := s.llm.ChatCompletion(ctx, openai.ChatRequest{
		Messages: specificationMessages(created),
	})
	if err != nil {
		s.logger.Errorf("specification generation failed for project %s: %v", created.ID, err)
		return nil, fmt.Errorf("failed to generate specification: %w", err)
	}

	specification := resp.Content()
	if specification == "" {
		return nil, fmt.Errorf("provider returned an empty specification")
	}

	if err := s.storage.UpdateProjectSpecification(ctx, created.ID, specification); err != nil {
		return nil, fmt.Errorf("failed to store specification: %w", err)
	}

	created.Description = specification
	created.Status = "generated"

	return created, nil
}

func (s *Service) GetProject(ctx context.Context, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.GetProject")
	defer span.End()

	return s.storage.GetProjectByID(ctx, id)
}

func (s *Service) ListProjects(ctx context.Context, page, size int64) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.ListProjects")
	defer span.End()

	return s.storage.ListProjects(ctx, page, size)
}

// GenerateWireframe asks the LLM for wireframe mockups in JSON mode and
// persists them on the project row.
func (s *Service) GenerateWireframe(ctx context.Context, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.GenerateWireframe")
	defer span.End()

	project, err := s.storage.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp, err := s.llm.ChatCompletion(ctx, openai.ChatRequest{
		Messages:       wireframeMessages(project),
		ResponseFormat: &openai.ResponseFormat{Type: openai.JSONObjectFormat},
	})
	if err != nil {
		s.logger.Errorf("wireframe generation failed for project %s: %v", id, err)
		return nil, fmt.Errorf("failed to generate wireframe: %w", err)
	}

	wireframe := []byte(resp.Content())
	if !json.Valid(wireframe) {
		return nil, fmt.Errorf("provider returned invalid wireframe JSON")
	}

	if err := s.storage.UpdateProjectWireframe(ctx, id, wireframe); err != nil {
		return nil, fmt.Errorf("failed to store wireframe: %w", err)
	}

	project.WireframeData = wireframe

	return project, nil
}

func NewService(storage StorageInterface, llm openai.LLMClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.llm = llm
	s.validate = validator.New(validator.WithRequiredStructEnabled())

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
