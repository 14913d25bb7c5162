// Package handler provides the HTTP handlers for the members feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/api"
	"cms_backend/internal/feature/members/domain/entity"
	"cms_backend/internal/feature/members/transport/http/dto"
	"cms_backend/internal/feature/members/usecase"
)

// MemberUsecase defines the member operations used by this handler.
type MemberUsecase interface {
	List(ctx context.Context, filter usecase.ListFilter) ([]entity.Member, error)
	ListPending(ctx context.Context) ([]entity.Member, error)
	Apply(ctx context.Context, app usecase.Application) (*entity.Member, error)
	Approve(ctx context.Context, id, memberType string) error
	Reject(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// MemberHandler handles HTTP requests for member operations.
type MemberHandler struct {
	uc MemberUsecase
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(uc MemberUsecase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// List returns members filtered by ?approved_only= and ?member_type=.
// approved_only defaults to true so public listings hide pending applications.
func (h *MemberHandler) List(c *gin.Context) {
	filter := usecase.ListFilter{
		ApprovedOnly: c.DefaultQuery("approved_only", "true") != "false",
		MemberType:   c.Query("member_type"),
	}
	members, err := h.uc.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("member list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toResps(members))
}

// ListPending returns applications awaiting review. Admin only.
func (h *MemberHandler) ListPending(c *gin.Context) {
	members, err := h.uc.ListPending(c.Request.Context())
	if err != nil {
		slog.Error("pending member list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toResps(members))
}

// Apply records a public membership application.
func (h *MemberHandler) Apply(c *gin.Context) {
	var req dto.ApplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	m, err := h.uc.Apply(c.Request.Context(), usecase.Application{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Motivation: req.Motivation,
	})
	if err != nil {
		slog.Error("membership application failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	slog.Info("membership application received", "member_id", m.ID)
	c.JSON(http.StatusOK, dto.NewMemberResp(m))
}

// Approve accepts a pending application. The member type comes from
// ?member_type= and defaults to active. Admin only.
func (h *MemberHandler) Approve(c *gin.Context) {
	err := h.uc.Approve(c.Request.Context(), c.Param("id"), c.Query("member_type"))
	if err != nil {
		if errors.Is(err, usecase.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "member not found"})
			return
		}
		slog.Error("member approve failed", "error", err, "member_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "member approved"})
}

// Reject discards a pending application. Admin only.
func (h *MemberHandler) Reject(c *gin.Context) {
	if err := h.uc.Reject(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "member not found"})
			return
		}
		slog.Error("member reject failed", "error", err, "member_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "application rejected"})
}

// Delete removes a member. Admin only.
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "member not found"})
			return
		}
		slog.Error("member delete failed", "error", err, "member_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "member deleted"})
}

func toResps(members []entity.Member) []dto.MemberResp {
	out := make([]dto.MemberResp, 0, len(members))
	for i := range members {
		out = append(out, dto.NewMemberResp(&members[i]))
	}
	return out
}
