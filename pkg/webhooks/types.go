// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// RegistrationEvent is the payload posted by the identity provider after a
// successful sign-up. Both flat id/email fields and Kratos-style identity
// traits are accepted so the hook works unchanged across providers.
type RegistrationEvent struct {
	ID         string `json:"id"`
	IdentityID string `json:"identity_id"`
	Email      string `json:"email"`
	Traits     struct {
		Email string `json:"email"`
	} `json:"traits"`
}

func (e *RegistrationEvent) userID() string {
	if e.ID != "" {
		return e.ID
	}
	return e.IdentityID
}

func (e *RegistrationEvent) email() string {
	if e.Email != "" {
		return e.Email
	}
	return e.Traits.Email
}
