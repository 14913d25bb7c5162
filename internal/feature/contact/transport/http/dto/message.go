// Package dto defines data transfer objects for the contact feature's HTTP transport layer.
package dto

import (
	"time"

	"cms_backend/internal/feature/contact/domain/entity"
)

// SubmitReq is the request body for the public contact form.
type SubmitReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// MessageResp is the admin-facing representation of a contact message.
type MessageResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// NewMessageResp converts a message entity to its response representation.
func NewMessageResp(m *entity.Message) MessageResp {
	return MessageResp{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
	}
}
