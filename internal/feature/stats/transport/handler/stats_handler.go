// Package handler provides the HTTP handlers for the stats feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/api"
	"cms_backend/internal/feature/stats/domain/entity"
)

// StatsUsecase defines the statistics operations used by this handler.
type StatsUsecase interface {
	Public(ctx context.Context) (*entity.PublicStats, error)
	Admin(ctx context.Context) (*entity.AdminStats, error)
}

// StatsHandler handles HTTP requests for aggregate statistics.
type StatsHandler struct {
	uc StatsUsecase
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(uc StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Public returns the homepage figures.
func (h *StatsHandler) Public(c *gin.Context) {
	s, err := h.uc.Public(c.Request.Context())
	if err != nil {
		slog.Error("public stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// Admin returns the dashboard figures. Admin only.
func (h *StatsHandler) Admin(c *gin.Context) {
	s, err := h.uc.Admin(c.Request.Context())
	if err != nil {
		slog.Error("admin stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, s)
}
