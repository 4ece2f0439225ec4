// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "slices"

const (
	OWNER_RELATION  = "owner"
	ADMIN_RELATION  = "admin"
	MEMBER_RELATION = "member"

	PRIVILEGED_RELATION = "privileged"

	CAN_VIEW_PERMISSION   = "can_view"
	CAN_EDIT_PERMISSION   = "can_edit"
	CAN_CREATE_PERMISSION = "can_create"
	CAN_DELETE_PERMISSION = "can_delete"
)

var roles = []string{OWNER_RELATION, ADMIN_RELATION, MEMBER_RELATION}

// IsValidRole reports whether role is one of the membership roles.
func IsValidRole(role string) bool {
	return slices.Contains(roles, role)
}

func UserTuple(userId string) string {
	return "user:" + userId
}

func TenantTuple(tenantId string) string {
	return "tenant:" + tenantId
}

func PrivilegedTuple(privilegedId string) string {
	return "privileged:" + privilegedId
}
