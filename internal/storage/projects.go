// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexusdev/nexus-service/internal/db"
	"github.com/nexusdev/nexus-service/internal/tenantctx"
	"github.com/nexusdev/nexus-service/internal/types"
)

var projectColumns = []string{
	"id", "tenant_id", "user_id", "created_by", "title", "description", "prompt",
	"person_data", "problem_data", "plan_data", "pivot_data", "payoff_data",
	"wireframe_data", "components", "pages", "status", "created_at", "updated_at",
}

func scanProject(row sq.RowScanner) (*types.Project, error) {
	var p types.Project
	err := row.Scan(
		&p.ID, &p.TenantID, &p.UserID, &p.CreatedBy, &p.Title, &p.Description, &p.Prompt,
		&p.PersonData, &p.ProblemData, &p.PlanData, &p.PivotData, &p.PayoffData,
		&p.WireframeData, &p.Components, &p.Pages, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject inserts a project into the tenant resolved on ctx. The
// tenant_id and user stamping columns are never taken from the payload.
func (s *Storage) CreateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProject")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate project ID: %w", err)
	}

	status := p.Status
	if status == "" {
		status = "draft"
	}

	row := s.db.Statement(ctx).
		Insert("projects").
		Columns(
			"id", "tenant_id", "user_id", "created_by", "title", "description", "prompt",
			"person_data", "problem_data", "plan_data", "pivot_data", "payoff_data",
			"wireframe_data", "components", "pages", "status",
		).
		Values(
			id.String(), tenantID, p.UserID, p.CreatedBy, p.Title, p.Description, p.Prompt,
			emptyJSON(p.PersonData), emptyJSON(p.ProblemData), emptyJSON(p.PlanData),
			emptyJSON(p.PivotData), emptyJSON(p.PayoffData),
			emptyJSON(p.WireframeData), emptyJSON(p.Components), emptyJSON(p.Pages), status,
		).
		Suffix("RETURNING " + strings.Join(projectColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanProject(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	return created, nil
}

func (s *Storage) GetProjectByID(ctx context.Context, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectByID")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (s *Storage) ListProjects(ctx context.Context, page, size int64) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjects")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*types.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// UpdateProjectSpecification stores the synthesized build specification and
// marks the project generated.
func (s *Storage) UpdateProjectSpecification(ctx context.Context, id, specification string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProjectSpecification")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Update("projects").
		Set("description", specification).
		Set("status", "generated").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update project specification: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) UpdateProjectWireframe(ctx context.Context, id string, wireframe []byte) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProjectWireframe")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Update("projects").
		Set("wireframe_data", wireframe).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update project wireframe: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) UpdateProjectStatus(ctx context.Context, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProjectStatus")
	defer span.End()

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Update("projects").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update project status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func emptyJSON(b []byte) []byte {
	if len(b) == 0 {
		return []byte("{}")
	}
	return b
}
