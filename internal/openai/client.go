// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package openai is a minimal client for the OpenAI chat completions API.
// Only the surface this service uses is implemented.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tracing"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultTimeout = 120 * time.Second
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Client struct {
	httpClient *http.Client

	apiKey       string
	baseURL      string
	defaultModel string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ LLMClientInterface = (*Client)(nil)

func (c *Client) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openai.Client.ChatCompletion")
	defer span.End()

	if req.Model == "" {
		req.Model = c.defaultModel
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Errorf("chat completion returned status %d: %s", resp.StatusCode, respBody)
		return nil, fmt.Errorf("chat completion returned status %d", resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}

	return &chatResp, nil
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.httpClient = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   defaultTimeout,
	}

	c.apiKey = cfg.APIKey
	c.baseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	c.defaultModel = cfg.Model

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
