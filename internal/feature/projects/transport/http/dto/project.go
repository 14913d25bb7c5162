// Package dto defines data transfer objects for the projects feature's HTTP transport layer.
package dto

import (
	"time"

	"cms_backend/internal/feature/projects/domain/entity"
)

// ProjectReq is the request body for creating or updating a project.
type ProjectReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Objectives  string `json:"objectives" binding:"required"`
	Status      string `json:"status"`
	ImageURL    string `json:"image_url"`
	Date        string `json:"date"`
}

// Entity converts the request into a project entity. ID and timestamps stay
// unset; the server mints them.
func (r ProjectReq) Entity() *entity.Project {
	return &entity.Project{
		Title:       r.Title,
		Description: r.Description,
		Objectives:  r.Objectives,
		Status:      r.Status,
		ImageURL:    r.ImageURL,
		Date:        r.Date,
	}
}

// ProjectResp is the public representation of a project.
type ProjectResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Objectives  string `json:"objectives"`
	Status      string `json:"status"`
	ImageURL    string `json:"image_url,omitempty"`
	Date        string `json:"date,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NewProjectResp converts a project entity to its public representation.
func NewProjectResp(p *entity.Project) ProjectResp {
	return ProjectResp{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Objectives:  p.Objectives,
		Status:      p.Status,
		ImageURL:    p.ImageURL,
		Date:        p.Date,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
