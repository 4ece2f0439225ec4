// Copyright 2026 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/storage"
	"github.com/nexusdev/nexus-service/internal/tracing"
	"github.com/nexusdev/nexus-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterEndpoints mounts the project endpoints on a router that already
// enforces authentication and tenant membership.
func (a *API) RegisterEndpoints(r chi.Router) {
	r.Post("/api/v0/projects", a.createProject)
	r.Get("/api/v0/projects", a.listProjects)
	r.Get("/api/v0/projects/{id}", a.getProject)
	r.Post("/api/v0/projects/{id}/wireframe", a.generateWireframe)
}

func (a *API) createProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "projects.API.createProject")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		a.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	project, err := a.service.CreateProject(ctx, &req, principal.ID, principal.Email)
	if err != nil {
		a.logger.Errorf("failed to create project: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	a.jsonResponse(w, http.StatusCreated, project)
}

func (a *API) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "projects.API.listProjects")
	defer span.End()

	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	projects, err := a.service.ListProjects(ctx, page, size)
	if err != nil {
		a.logger.Errorf("failed to list projects: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	a.jsonResponse(w, http.StatusOK, projects)
}

func (a *API) getProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "projects.API.getProject")
	defer span.End()

	project, err := a.service.GetProject(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "project not found")
			return
		}

		a.logger.Errorf("failed to get project: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to get project")
		return
	}

	a.jsonResponse(w, http.StatusOK, project)
}

func (a *API) generateWireframe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "projects.API.generateWireframe")
	defer span.End()

	project, err := a.service.GenerateWireframe(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "project not found")
			return
		}

		a.logger.Errorf("failed to generate wireframe: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to generate wireframe")
		return
	}

	a.jsonResponse(w, http.StatusOK, project)
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
