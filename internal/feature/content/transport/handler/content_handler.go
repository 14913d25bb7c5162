// Package handler provides the HTTP handlers for the content feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/api"
	"cms_backend/internal/feature/content/domain/entity"
)

// UpsertReq is the request body for updating a site text snippet.
type UpsertReq struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// SnippetResp is the public representation of a snippet.
type SnippetResp struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ContentUsecase defines the site content operations used by this handler.
type ContentUsecase interface {
	List(ctx context.Context) ([]entity.Snippet, error)
	Get(ctx context.Context, key string) (*entity.Snippet, error)
	Upsert(ctx context.Context, key, value string) error
}

// ContentHandler handles HTTP requests for site content operations.
type ContentHandler struct {
	uc ContentUsecase
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(uc ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// List returns every snippet.
func (h *ContentHandler) List(c *gin.Context) {
	snippets, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("content list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	out := make([]SnippetResp, 0, len(snippets))
	for _, s := range snippets {
		out = append(out, SnippetResp{Key: s.Key, Value: s.Value})
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one snippet by key. A missing key yields an empty value with
// 200; the public site treats absence as empty text.
func (h *ContentHandler) Get(c *gin.Context) {
	s, err := h.uc.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		slog.Error("content get failed", "error", err, "key", c.Param("key"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, SnippetResp{Key: s.Key, Value: s.Value})
}

// Upsert creates or replaces a snippet. Admin only.
func (h *ContentHandler) Upsert(c *gin.Context) {
	var req UpsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	if err := h.uc.Upsert(c.Request.Context(), req.Key, req.Value); err != nil {
		slog.Error("content upsert failed", "error", err, "key", req.Key)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "content updated"})
}
