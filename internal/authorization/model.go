// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

// Membership roles cascade: owner implies admin, admin implies member.
// Privileged groups grant operator accounts admin access to every tenant
// linked to the group.
const v0Schema = `model
  schema 1.1

type user

type privileged
  relations
    define admin: [user]

type tenant
  relations
    define privileged: [privileged]
    define owner: [user]
    define admin: [user] or owner or admin from privileged
    define member: [user] or admin

    define can_view: member
    define can_create: admin
    define can_edit: admin
    define can_delete: owner
`

type AuthorizationModelProvider struct {
	version string
}

func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	switch p.version {
	case "v0":
		return schemaToModel(v0Schema)
	default:
		panic(fmt.Sprintf("unknown authorization model version %q", p.version))
	}
}

func schemaToModel(dsl string) *fga.AuthorizationModel {
	j, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		panic(fmt.Sprintf("failed to transform DSL to JSON: %v", err))
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(j), model); err != nil {
		panic(fmt.Sprintf("failed to unmarshal authorization model: %v", err))
	}

	return model
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	p := new(AuthorizationModelProvider)
	p.version = version

	return p
}
