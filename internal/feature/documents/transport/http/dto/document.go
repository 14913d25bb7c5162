// Package dto defines data transfer objects for the documents feature's HTTP transport layer.
package dto

import (
	"time"

	"cms_backend/internal/feature/documents/domain/entity"
)

// DocumentReq is the request body for publishing a document.
type DocumentReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	FileURL     string `json:"file_url" binding:"required"`
	FileType    string `json:"file_type" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// Entity converts the request into a document entity.
func (r DocumentReq) Entity() *entity.Document {
	return &entity.Document{
		Title:       r.Title,
		Description: r.Description,
		FileURL:     r.FileURL,
		FileType:    r.FileType,
		Category:    r.Category,
	}
}

// DocumentResp is the public representation of a document.
type DocumentResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
	FileType    string `json:"file_type"`
	Category    string `json:"category"`
	CreatedAt   string `json:"created_at"`
}

// NewDocumentResp converts a document entity to its public representation.
func NewDocumentResp(d *entity.Document) DocumentResp {
	return DocumentResp{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		FileURL:     d.FileURL,
		FileType:    d.FileType,
		Category:    d.Category,
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
