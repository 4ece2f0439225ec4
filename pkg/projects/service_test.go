// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

//go:generate mockgen -build_flags=--mod=mod -package projects -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package projects -destination ./mock_llm.go -source=../../internal/openai/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package projects -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package projects -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package projects -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

package projects

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/nexusdev/nexus-service/internal/openai"
	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/types"
)

func chatResponse(content string) *openai.ChatResponse {
	return &openai.ChatResponse{
		Choices: []openai.Choice{
			{Message: openai.Message{Role: openai.RoleAssistant, Content: content}},
		},
	}
}

func setupService(t *testing.T) (*Service, *MockStorageInterface, *MockLLMClientInterface, *MockLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockLLM := NewMockLLMClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	return NewService(mockStorage, mockLLM, mockTracer, mockMonitor, mockLogger), mockStorage, mockLLM, mockLogger
}

func TestServiceCreateProject(t *testing.T) {
	service, mockStorage, mockLLM, _ := setupService(t)

	req := &CreateProjectRequest{
		Title:      "Taskly",
		Prompt:     "mobile first",
		PersonData: json.RawMessage(`{"who": "freelancers"}`),
	}

	created := &types.Project{
		ID:         "project-1",
		TenantID:   "tenant-1",
		UserID:     "user-1",
		CreatedBy:  "user@example.com",
		Title:      "Taskly",
		Prompt:     "mobile first",
		PersonData: req.PersonData,
		Status:     "draft",
	}

	gomock.InOrder(
		mockStorage.EXPECT().CreateProject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *types.Project) (*types.Project, error) {
				if p.UserID != "user-1" || p.CreatedBy != "user@example.com" {
					t.Errorf("expected user stamping, got %+v", p)
				}
				return created, nil
			}),
		mockLLM.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req openai.ChatRequest) (*openai.ChatResponse, error) {
				if len(req.Messages) != 2 || req.Messages[0].Role != openai.RoleSystem {
					t.Errorf("unexpected prompt messages %+v", req.Messages)
				}
				return chatResponse("the build specification"), nil
			}),
		mockStorage.EXPECT().UpdateProjectSpecification(gomock.Any(), "project-1", "the build specification").Return(nil),
	)

	project, err := service.CreateProject(context.Background(), req, "user-1", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if project.Status != "generated" {
		t.Errorf("expected status generated, got %s", project.Status)
	}
	if project.Description != "the build specification" {
		t.Errorf("unexpected specification %q", project.Description)
	}
}

func TestServiceCreateProjectLLMFailureLeavesDraft(t *testing.T) {
	service, mockStorage, mockLLM, mockLogger := setupService(t)

	created := &types.Project{ID: "project-1", Title: "Taskly", Status: "draft"}

	mockStorage.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(created, nil)
	mockLLM.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).Return(nil, errors.New("rate limited"))
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())

	if _, err := service.CreateProject(context.Background(), &CreateProjectRequest{Title: "Taskly"}, "user-1", "user@example.com"); err == nil {
		t.Fatal("expected error when specification generation fails")
	}
}

func TestServiceCreateProjectEmptyTitle(t *testing.T) {
	service, _, _, _ := setupService(t)

	if _, err := service.CreateProject(context.Background(), &CreateProjectRequest{}, "user-1", "user@example.com"); err == nil {
		t.Fatal("expected error for missing title")
	}
}

func TestServiceGenerateWireframe(t *testing.T) {
	service, mockStorage, mockLLM, _ := setupService(t)

	project := &types.Project{ID: "project-1", Title: "Taskly", Description: "the build specification"}
	wireframe := `{"pages": [], "components": []}`

	gomock.InOrder(
		mockStorage.EXPECT().GetProjectByID(gomock.Any(), "project-1").Return(project, nil),
		mockLLM.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req openai.ChatRequest) (*openai.ChatResponse, error) {
				if req.ResponseFormat == nil || req.ResponseFormat.Type != openai.JSONObjectFormat {
					t.Errorf("expected JSON response format, got %+v", req.ResponseFormat)
				}
				return chatResponse(wireframe), nil
			}),
		mockStorage.EXPECT().UpdateProjectWireframe(gomock.Any(), "project-1", []byte(wireframe)).Return(nil),
	)

	got, err := service.GenerateWireframe(context.Background(), "project-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got.WireframeData) != wireframe {
		t.Errorf("unexpected wireframe %s", got.WireframeData)
	}
}

func TestServiceGenerateWireframeInvalidJSON(t *testing.T) {
	service, mockStorage, mockLLM, _ := setupService(t)

	mockStorage.EXPECT().GetProjectByID(gomock.Any(), "project-1").Return(&types.Project{ID: "project-1"}, nil)
	mockLLM.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).Return(chatResponse("not json"), nil)

	if _, err := service.GenerateWireframe(context.Background(), "project-1"); err == nil {
		t.Fatal("expected error for invalid wireframe JSON")
	}
}

func TestServiceGenerateWireframeProjectNotFound(t *testing.T) {
	service, mockStorage, _, _ := setupService(t)

	mockStorage.EXPECT().GetProjectByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	_, err := service.GenerateWireframe(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
