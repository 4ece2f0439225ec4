// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/nexusdev/nexus-service/internal/db"
	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/internal/types"
)

var errStatementRecorded = errors.New("statement recorded")

// recordingRunner captures the SQL and bind arguments squirrel produces
// instead of executing them.
type recordingRunner struct {
	query string
	args  []interface{}
}

func (r *recordingRunner) Exec(query string, args ...interface{}) (sql.Result, error) {
	r.query, r.args = query, args
	return nil, errStatementRecorded
}

func (r *recordingRunner) Query(query string, args ...interface{}) (*sql.Rows, error) {
	r.query, r.args = query, args
	return nil, errStatementRecorded
}

func (r *recordingRunner) QueryRowContext(ctx context.Context, query string, args ...interface{}) sq.RowScanner {
	r.query, r.args = query, args
	return scanStop{}
}

type scanStop struct{}

func (scanStop) Scan(...interface{}) error { return errStatementRecorded }

type recordingDBClient struct {
	runner *recordingRunner
}

func (c *recordingDBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(c.runner)
}

func (c *recordingDBClient) BeginTx(ctx context.Context) (context.Context, db.TxInterface, error) {
	return ctx, nil, nil
}

func (c *recordingDBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (c *recordingDBClient) Ping(context.Context) error { return nil }

func (c *recordingDBClient) Close() {}

func TestCreateTenantBindsEmptyResolutionKeys(t *testing.T) {
	runner := new(recordingRunner)
	logger := logging.NewNoopLogger()
	s := NewStorage(&recordingDBClient{runner: runner}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

	_, err := s.CreateTenant(context.Background(), &types.Tenant{Name: "Workspace", Slug: "workspace-1"})
	if err == nil {
		t.Fatal("expected the recording runner to stop the insert")
	}

	// id, name, slug, domain, subdomain, settings, is_active
	if len(runner.args) != 7 {
		t.Fatalf("expected 7 insert arguments, got %d: %v", len(runner.args), runner.args)
	}

	// domain and subdomain are NOT NULL columns; an absent key must be
	// bound as the empty string, never as NULL.
	for i, column := range map[int]string{3: "domain", 4: "subdomain"} {
		v, ok := runner.args[i].(string)
		if !ok {
			t.Fatalf("%s bound as %T, want string", column, runner.args[i])
		}
		if v != "" {
			t.Errorf("%s bound as %q, want empty string", column, v)
		}
	}
}

func TestCreateTenantBindsResolutionKeysWhenSet(t *testing.T) {
	runner := new(recordingRunner)
	logger := logging.NewNoopLogger()
	s := NewStorage(&recordingDBClient{runner: runner}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

	tenant := &types.Tenant{
		Name:      "Acme",
		Slug:      "acme",
		Domain:    "acme.example.com",
		Subdomain: "acme",
	}

	_, _ = s.CreateTenant(context.Background(), tenant)

	if len(runner.args) != 7 {
		t.Fatalf("expected 7 insert arguments, got %d: %v", len(runner.args), runner.args)
	}
	if runner.args[3] != "acme.example.com" {
		t.Errorf("domain bound as %v, want acme.example.com", runner.args[3])
	}
	if runner.args[4] != "acme" {
		t.Errorf("subdomain bound as %v, want acme", runner.args[4])
	}
}
