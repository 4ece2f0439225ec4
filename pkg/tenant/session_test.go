// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/types"
)

func TestSessionSwitch(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	directory := NewMockDirectoryInterface(ctrl)
	session := NewSession(directory)

	if session.Current() != nil {
		t.Fatal("expected no tenant before first switch")
	}

	want := &types.Tenant{ID: "tenant-1", Slug: "acme"}
	directory.EXPECT().GetActiveTenantByID(gomock.Any(), "tenant-1").Return(want, nil)

	got, err := session.Switch(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != want.ID || session.Current().ID != want.ID {
		t.Errorf("expected session pinned to %s, got %v", want.ID, session.Current())
	}

	id, err := tenantctx.RequireTenantID(session.Context(context.Background()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != want.ID {
		t.Errorf("expected context tenant %s, got %s", want.ID, id)
	}
}

func TestSessionSwitchFailureKeepsPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	directory := NewMockDirectoryInterface(ctrl)
	session := NewSession(directory)

	first := &types.Tenant{ID: "tenant-1"}
	gomock.InOrder(
		directory.EXPECT().GetActiveTenantByID(gomock.Any(), "tenant-1").Return(first, nil),
		directory.EXPECT().GetActiveTenantByID(gomock.Any(), "tenant-2").Return(nil, storage.ErrNotFound),
		directory.EXPECT().GetActiveTenantByID(gomock.Any(), "tenant-3").Return(nil, errors.New("connection refused")),
	)

	if _, err := session.Switch(context.Background(), "tenant-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := session.Switch(context.Background(), "tenant-2"); err == nil {
		t.Fatal("expected error switching to unknown tenant")
	}
	if session.Current().ID != "tenant-1" {
		t.Errorf("expected previous tenant to stay active, got %s", session.Current().ID)
	}

	if _, err := session.Switch(context.Background(), "tenant-3"); err == nil {
		t.Fatal("expected error switching during directory outage")
	}
	if session.Current().ID != "tenant-1" {
		t.Errorf("expected previous tenant to stay active, got %s", session.Current().ID)
	}
}

func TestSessionContextUnset(t *testing.T) {
	session := NewSession(nil)

	ctx := session.Context(context.Background())
	if _, ok := tenantctx.TenantID(ctx); ok {
		t.Fatal("expected no tenant on context before a switch")
	}
}
