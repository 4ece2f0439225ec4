// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openai

import "context"

type LLMClientInterface interface {
	// ChatCompletion runs a single chat completion round trip. No retries:
	// callers surface provider failures to the user instead of masking them.
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
