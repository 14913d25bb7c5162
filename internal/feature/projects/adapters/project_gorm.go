// Package adapters provides the repository implementations for the projects feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cms_backend/internal/feature/projects/domain/entity"
	"cms_backend/internal/feature/projects/usecase"
)

// listLimit caps list queries, matching the public API contract.
const listLimit = 100

// projectGorm is the GORM implementation of the ProjectRepository interface.
type projectGorm struct {
	db *gorm.DB
}

var _ usecase.ProjectRepository = (*projectGorm)(nil)

// NewProjectRepository creates a projectGorm backed by the given connection.
func NewProjectRepository(db *gorm.DB) *projectGorm {
	return &projectGorm{db: db}
}

// List returns projects newest first, optionally filtered by status.
func (r *projectGorm) List(ctx context.Context, status string) ([]entity.Project, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(listLimit)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	projects := make([]entity.Project, 0)
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID returns the project with the given ID.
func (r *projectGorm) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	var p entity.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new project.
func (r *projectGorm) Create(ctx context.Context, p *entity.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update saves all fields of an existing project.
func (r *projectGorm) Update(ctx context.Context, p *entity.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes a project by ID.
func (r *projectGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProjectNotFound
	}
	return nil
}
