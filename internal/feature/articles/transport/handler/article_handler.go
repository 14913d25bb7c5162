// Package handler provides the HTTP handlers for the articles feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/api"
	"cms_backend/internal/feature/articles/domain/entity"
	"cms_backend/internal/feature/articles/transport/http/dto"
	"cms_backend/internal/feature/articles/usecase"
)

// ArticleUsecase defines the article operations used by this handler.
type ArticleUsecase interface {
	List(ctx context.Context, filter usecase.ListFilter) ([]entity.Article, error)
	Get(ctx context.Context, id string) (*entity.Article, error)
	Create(ctx context.Context, a *entity.Article) (*entity.Article, error)
	Update(ctx context.Context, id string, a *entity.Article) (*entity.Article, error)
	Delete(ctx context.Context, id string) error
}

// ArticleHandler handles HTTP requests for article operations.
type ArticleHandler struct {
	uc ArticleUsecase
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(uc ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{uc: uc}
}

// List returns articles filtered by ?category= and ?published_only=.
// published_only defaults to true so public listings hide drafts.
func (h *ArticleHandler) List(c *gin.Context) {
	filter := usecase.ListFilter{
		Category:      c.Query("category"),
		PublishedOnly: c.DefaultQuery("published_only", "true") != "false",
	}
	articles, err := h.uc.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("article list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	out := make([]dto.ArticleResp, 0, len(articles))
	for i := range articles {
		out = append(out, dto.NewArticleResp(&articles[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns a single article by ID.
func (h *ArticleHandler) Get(c *gin.Context) {
	a, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "article not found"})
			return
		}
		slog.Error("article get failed", "error", err, "article_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewArticleResp(a))
}

// Create adds a new article. Admin only.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.ArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	a, err := h.uc.Create(c.Request.Context(), req.Entity())
	if err != nil {
		slog.Error("article create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewArticleResp(a))
}

// Update replaces an existing article's fields. Admin only.
func (h *ArticleHandler) Update(c *gin.Context) {
	var req dto.ArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	a, err := h.uc.Update(c.Request.Context(), c.Param("id"), req.Entity())
	if err != nil {
		if errors.Is(err, usecase.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "article not found"})
			return
		}
		slog.Error("article update failed", "error", err, "article_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewArticleResp(a))
}

// Delete removes an article. Admin only.
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "article not found"})
			return
		}
		slog.Error("article delete failed", "error", err, "article_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "article deleted"})
}
