// Package dto defines data transfer objects for the members feature's HTTP transport layer.
package dto

import (
	"time"

	"cms_backend/internal/feature/members/domain/entity"
)

// ApplyReq is the request body for the public membership application form.
type ApplyReq struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Motivation string `json:"motivation" binding:"required"`
}

// MemberResp is the public representation of a member.
type MemberResp struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	MemberType string `json:"member_type"`
	Bio        string `json:"bio,omitempty"`
	Motivation string `json:"motivation,omitempty"`
	Approved   bool   `json:"approved"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// NewMemberResp converts a member entity to its public representation.
func NewMemberResp(m *entity.Member) MemberResp {
	return MemberResp{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		MemberType: m.MemberType,
		Bio:        m.Bio,
		Motivation: m.Motivation,
		Approved:   m.Approved,
		CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
