// Package handler provides the HTTP handlers for the projects feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/api"
	"cms_backend/internal/feature/projects/domain/entity"
	"cms_backend/internal/feature/projects/transport/http/dto"
	"cms_backend/internal/feature/projects/usecase"
)

// ProjectUsecase defines the project operations used by this handler.
type ProjectUsecase interface {
	List(ctx context.Context, status string) ([]entity.Project, error)
	Get(ctx context.Context, id string) (*entity.Project, error)
	Create(ctx context.Context, p *entity.Project) (*entity.Project, error)
	Update(ctx context.Context, id string, p *entity.Project) (*entity.Project, error)
	Delete(ctx context.Context, id string) error
}

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	uc ProjectUsecase
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(uc ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// List returns all projects, optionally filtered by ?status=.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.uc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		slog.Error("project list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	out := make([]dto.ProjectResp, 0, len(projects))
	for i := range projects {
		out = append(out, dto.NewProjectResp(&projects[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns a single project by ID.
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "project not found"})
			return
		}
		slog.Error("project get failed", "error", err, "project_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewProjectResp(p))
}

// Create adds a new project. Admin only.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	p, err := h.uc.Create(c.Request.Context(), req.Entity())
	if err != nil {
		slog.Error("project create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewProjectResp(p))
}

// Update replaces an existing project's fields. Admin only.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	p, err := h.uc.Update(c.Request.Context(), c.Param("id"), req.Entity())
	if err != nil {
		if errors.Is(err, usecase.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "project not found"})
			return
		}
		slog.Error("project update failed", "error", err, "project_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewProjectResp(p))
}

// Delete removes a project. Admin only.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "project not found"})
			return
		}
		slog.Error("project delete failed", "error", err, "project_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "project deleted"})
}
