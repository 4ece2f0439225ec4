// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Principal is the authenticated caller. Email is best effort, not every
// token carries the claim.
type Principal struct {
	ID    string
	Email string
}

// Define a private custom type to avoid collisions
type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context with the given principal derived from the parent context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext retrieves the authenticated principal from the context.
// Returns nil and false when the request was not authenticated.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	if !ok || p == nil || p.ID == "" {
		return nil, false
	}
	return p, true
}
