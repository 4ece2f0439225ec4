// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package ai exposes the LLM to the questionnaire wizard: a raw completion
// passthrough and cached per-field suggestions.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/openai"
	"github.com/nexusdev/nexus-service/internal/tracing"
)

const suggestionSystemPrompt = `You generate short autocomplete suggestions for a product questionnaire field. Respond with a single JSON object: {"suggestions": ["...", "...", "..."]} containing at most five entries. Output JSON only.`

type CacheConfig struct {
	MaxBytes int64
	TTL      time.Duration
}

type Service struct {
	llm openai.LLMClientInterface

	// Suggestions are generic per field and context, never tenant- or
	// user-scoped, so one process-wide cache is safe.
	cache    *ristretto.Cache[string, json.RawMessage]
	cacheTTL time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) Complete(ctx context.Context, req CompletionRequest) (*openai.ChatResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ai.Service.Complete")
	defer span.End()

	messages := req.Messages
	if len(messages) == 0 {
		if req.Prompt == "" {
			return nil, fmt.Errorf("prompt or messages required")
		}
		messages = []openai.Message{{Role: openai.RoleUser, Content: req.Prompt}}
	}

	return s.llm.ChatCompletion(ctx, openai.ChatRequest{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
}

func (s *Service) Suggest(ctx context.Context, req SuggestionRequest) (json.RawMessage, error) {
	ctx, span := s.tracer.Start(ctx, "ai.Service.Suggest")
	defer span.End()

	if req.Field == "" {
		return nil, fmt.Errorf("field is required")
	}

	key := req.Field + "\x00" + req.Context
	if cached, found := s.cache.Get(key); found {
		return cached, nil
	}

	prompt := fmt.Sprintf("Field: %s", req.Field)
	if req.Context != "" {
		prompt = fmt.Sprintf("%s\nContext: %s", prompt, req.Context)
	}

	resp, err := s.llm.ChatCompletion(ctx, openai.ChatRequest{
		Messages: []openai.Message{
			{Role: openai.RoleSystem, Content: suggestionSystemPrompt},
			{Role: openai.RoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ResponseFormat{Type: openai.JSONObjectFormat},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	suggestions := json.RawMessage(resp.Content())
	if !json.Valid(suggestions) {
		return nil, fmt.Errorf("provider returned invalid suggestion JSON")
	}

	s.cache.SetWithTTL(key, suggestions, int64(len(suggestions)), s.cacheTTL)

	return suggestions, nil
}

func NewService(llm openai.LLMClientInterface, cfg CacheConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	cache, err := ristretto.NewCache(&ristretto.Config[string, json.RawMessage]{
		NumCounters: cfg.MaxBytes / 100 * 10,
		MaxCost:     cfg.MaxBytes,
		BufferItems: 64,
	})
	if err != nil {
		logger.Fatalf("failed to create suggestion cache: %v", err)
	}

	s.llm = llm
	s.cache = cache
	s.cacheTTL = cfg.TTL

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
