// Package handler provides the HTTP handlers for the documents feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/api"
	"cms_backend/internal/feature/documents/domain/entity"
	"cms_backend/internal/feature/documents/transport/http/dto"
	"cms_backend/internal/feature/documents/usecase"
)

// DocumentUsecase defines the document operations used by this handler.
type DocumentUsecase interface {
	List(ctx context.Context, category string) ([]entity.Document, error)
	Create(ctx context.Context, d *entity.Document) (*entity.Document, error)
	Delete(ctx context.Context, id string) error
}

// DocumentHandler handles HTTP requests for document operations.
type DocumentHandler struct {
	uc DocumentUsecase
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(uc DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// List returns documents, optionally filtered by ?category=.
func (h *DocumentHandler) List(c *gin.Context) {
	documents, err := h.uc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		slog.Error("document list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	out := make([]dto.DocumentResp, 0, len(documents))
	for i := range documents {
		out = append(out, dto.NewDocumentResp(&documents[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create publishes a new document. Admin only.
func (h *DocumentHandler) Create(c *gin.Context) {
	var req dto.DocumentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	d, err := h.uc.Create(c.Request.Context(), req.Entity())
	if err != nil {
		slog.Error("document create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewDocumentResp(d))
}

// Delete removes a document. Admin only.
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "document not found"})
			return
		}
		slog.Error("document delete failed", "error", err, "document_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "document deleted"})
}
