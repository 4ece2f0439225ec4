// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

//go:generate mockgen -build_flags=--mod=mod -package ai -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package ai -destination ./mock_llm.go -source=../../internal/openai/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package ai -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package ai -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package ai -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

package ai

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/openai"
)

func chatResponse(content string) *openai.ChatResponse {
	return &openai.ChatResponse{
		Choices: []openai.Choice{
			{Message: openai.Message{Role: openai.RoleAssistant, Content: content}},
		},
	}
}

func setupService(t *testing.T) (*Service, *MockLLMClientInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLLM := NewMockLLMClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	cfg := CacheConfig{MaxBytes: 1 << 20, TTL: time.Minute}
	service := NewService(mockLLM, cfg, mockTracer, mockMonitor, logging.NewNoopLogger())

	return service, mockLLM
}

func TestCompletePrompt(t *testing.T) {
	service, mockLLM := setupService(t)

	mockLLM.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req openai.ChatRequest) (*openai.ChatResponse, error) {
			if len(req.Messages) != 1 || req.Messages[0].Role != openai.RoleUser || req.Messages[0].Content != "hello" {
				t.Errorf("unexpected messages %+v", req.Messages)
			}
			return chatResponse("hi"), nil
		})

	resp, err := service.Complete(context.Background(), CompletionRequest{Prompt: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content() != "hi" {
		t.Errorf("unexpected content %q", resp.Content())
	}
}

func TestCompleteMessagesPassthrough(t *testing.T) {
	service, mockLLM := setupService(t)

	messages := []openai.Message{
		{Role: openai.RoleSystem, Content: "be terse"},
		{Role: openai.RoleUser, Content: "hello"},
	}

	mockLLM.EXPECT().ChatCompletion(gomock.Any(), openai.ChatRequest{Messages: messages, MaxTokens: 16}).
		Return(chatResponse("hi"), nil)

	if _, err := service.Complete(context.Background(), CompletionRequest{Messages: messages, MaxTokens: 16}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompleteEmptyRequest(t *testing.T) {
	service, _ := setupService(t)

	if _, err := service.Complete(context.Background(), CompletionRequest{}); err == nil {
		t.Fatal("expected error for empty request")
	}
}

func TestSuggestCaches(t *testing.T) {
	service, mockLLM := setupService(t)

	suggestions := `{"suggestions": ["freelancers", "agencies"]}`
	mockLLM.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).Return(chatResponse(suggestions), nil)

	req := SuggestionRequest{Field: "person", Context: "b2b saas"}

	first, err := service.Suggest(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first) != suggestions {
		t.Errorf("unexpected suggestions %s", first)
	}

	// Flush the async admission buffer so the second call sees the entry.
	service.cache.Wait()

	second, err := service.Suggest(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second) != suggestions {
		t.Errorf("expected cached suggestions, got %s", second)
	}
}

func TestSuggestDistinctFieldsMiss(t *testing.T) {
	service, mockLLM := setupService(t)

	mockLLM.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).Return(chatResponse(`{"suggestions": []}`), nil).Times(2)

	if _, err := service.Suggest(context.Background(), SuggestionRequest{Field: "person"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	service.cache.Wait()
	if _, err := service.Suggest(context.Background(), SuggestionRequest{Field: "problem"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSuggestInvalidProviderJSON(t *testing.T) {
	service, mockLLM := setupService(t)

	mockLLM.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).Return(chatResponse("not json"), nil)

	if _, err := service.Suggest(context.Background(), SuggestionRequest{Field: "person"}); err == nil {
		t.Fatal("expected error for invalid provider JSON")
	}
}

func TestSuggestMissingField(t *testing.T) {
	service, _ := setupService(t)

	if _, err := service.Suggest(context.Background(), SuggestionRequest{}); err == nil {
		t.Fatal("expected error for missing field")
	}
}
