// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ai

import (
	"context"
	"encoding/json"

	"github.com/nexusdev/nexus-service/internal/openai"
)

// CompletionRequest is the passthrough payload. Either a bare prompt or a
// full message list may be supplied.
type CompletionRequest struct {
	Prompt      string           `json:"prompt,omitempty"`
	Messages    []openai.Message `json:"messages,omitempty"`
	Temperature float64          `json:"temperature,omitempty"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
}

// SuggestionRequest asks for autocomplete suggestions for one wizard field.
type SuggestionRequest struct {
	Field   string `json:"field"`
	Context string `json:"context,omitempty"`
}

type ServiceInterface interface {
	Complete(ctx context.Context, req CompletionRequest) (*openai.ChatResponse, error)
	Suggest(ctx context.Context, req SuggestionRequest) (json.RawMessage, error)
}
