// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"fmt"
	"strings"

	"github.com/nexusdev/nexus-service/internal/openai"
	"github.com/nexusdev/nexus-service/internal/types"
)

const specificationSystemPrompt = `You are an expert software architect. From the product questionnaire below, write a complete, implementation-ready build specification for a web application. Cover the target user, the problem being solved, the feature plan, fallback options, and the expected payoff. Be concrete and concise.`

const wireframeSystemPrompt = `You are a UI designer. From the build specification below, produce wireframe mockups as a single JSON object with two keys: "pages" (an array of page objects with "name" and "sections") and "components" (an array of reusable component descriptions). Output JSON only.`

// specificationMessages assembles the chat prompt from the 5P questionnaire
// answers. Empty sections are skipped rather than sent as empty JSON.
func specificationMessages(p *types.Project) []openai.Message {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", p.Title)
	if p.Prompt != "" {
		fmt.Fprintf(&b, "Additional instructions: %s\n", p.Prompt)
	}

	sections := []struct {
		name string
		data []byte
	}{
		{"Person", p.PersonData},
		{"Problem", p.ProblemData},
		{"Plan", p.PlanData},
		{"Pivot", p.PivotData},
		{"Payoff", p.PayoffData},
	}

	for _, s := range sections {
		if len(s.data) == 0 || string(s.data) == "{}" {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n%s\n", s.name, s.data)
	}

	return []openai.Message{
		{Role: openai.RoleSystem, Content: specificationSystemPrompt},
		{Role: openai.RoleUser, Content: b.String()},
	}
}

func wireframeMessages(p *types.Project) []openai.Message {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", p.Title)
	if p.Description != "" {
		fmt.Fprintf(&b, "\nBuild specification:\n%s\n", p.Description)
	}

	return []openai.Message{
		{Role: openai.RoleSystem, Content: wireframeSystemPrompt},
		{Role: openai.RoleUser, Content: b.String()},
	}
}
