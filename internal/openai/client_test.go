// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tracing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logging.NewNoopLogger()
	return NewClient(
		Config{APIKey: "test-key", BaseURL: srv.URL, Model: "gpt-4o"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("", logger),
		logger,
	)
}

func TestChatCompletion(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", got)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "gpt-4o" {
			t.Errorf("expected default model gpt-4o, got %q", req.Model)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != RoleUser {
			t.Errorf("unexpected messages %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-1",
			"model": "gpt-4o",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": "hello"}, "finish_reason": "stop"},
			},
			"usage": map[string]int{"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4},
		})
	})

	resp, err := client.ChatCompletion(context.Background(), ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content() != "hello" {
		t.Errorf("expected content hello, got %q", resp.Content())
	}
	if resp.Usage.TotalTokens != 4 {
		t.Errorf("expected 4 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestChatCompletionProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	})

	_, err := client.ChatCompletion(context.Background(), ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestChatResponseContentEmpty(t *testing.T) {
	var resp ChatResponse
	if resp.Content() != "" {
		t.Errorf("expected empty content, got %q", resp.Content())
	}
}
