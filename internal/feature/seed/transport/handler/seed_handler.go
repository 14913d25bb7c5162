// Package handler provides the HTTP handler for the seed feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/api"
	"cms_backend/internal/feature/seed/usecase"
)

// SeedUsecase defines the seeding operation used by this handler.
type SeedUsecase interface {
	Seed(ctx context.Context) (*usecase.Result, error)
}

// SeedHandler handles the demo-data seeding endpoint.
type SeedHandler struct {
	uc SeedUsecase
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(uc SeedUsecase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

// Seed populates demo data. It is a no-op when data already exists.
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.uc.Seed(c.Request.Context())
	if err != nil {
		slog.Error("seeding failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	if !result.Seeded {
		c.JSON(http.StatusOK, api.MessageResponse{Message: "demo data already present"})
		return
	}
	slog.Info("demo data seeded", "admin_email", result.AdminEmail)
	c.JSON(http.StatusOK, gin.H{
		"message":        "demo data created",
		"admin_email":    result.AdminEmail,
		"admin_password": result.AdminPassword,
	})
}
