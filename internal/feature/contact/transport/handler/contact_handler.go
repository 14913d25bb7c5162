// Package handler provides the HTTP handlers for the contact feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/api"
	"cms_backend/internal/feature/contact/domain/entity"
	"cms_backend/internal/feature/contact/transport/http/dto"
	"cms_backend/internal/feature/contact/usecase"
)

// ContactUsecase defines the contact message operations used by this handler.
type ContactUsecase interface {
	List(ctx context.Context) ([]entity.Message, error)
	Submit(ctx context.Context, s usecase.Submission) (*entity.Message, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ContactHandler handles HTTP requests for contact message operations.
type ContactHandler struct {
	uc ContactUsecase
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(uc ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// List returns the message inbox. Admin only.
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("message list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	out := make([]dto.MessageResp, 0, len(messages))
	for i := range messages {
		out = append(out, dto.NewMessageResp(&messages[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Submit records a visitor's message. Public.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.SubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	m, err := h.uc.Submit(c.Request.Context(), usecase.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		slog.Error("message submit failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	slog.Info("contact message received", "message_id", m.ID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "message sent"})
}

// MarkRead flags a message as read. Admin only.
func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.uc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "message not found"})
			return
		}
		slog.Error("message mark-read failed", "error", err, "message_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "marked as read"})
}

// Delete removes a message. Admin only.
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "message not found"})
			return
		}
		slog.Error("message delete failed", "error", err, "message_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "message deleted"})
}
