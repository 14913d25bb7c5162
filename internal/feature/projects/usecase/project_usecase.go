// Package usecase implements the business logic for the projects feature.
package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cms_backend/internal/feature/projects/domain/entity"
)

// ErrProjectNotFound is returned when no project matches the given ID.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository abstracts the persistence layer for project entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ProjectRepository interface {
	// List returns projects newest first, optionally filtered by status.
	List(ctx context.Context, status string) ([]entity.Project, error)
	// FindByID returns the project with the given ID or ErrProjectNotFound.
	FindByID(ctx context.Context, id string) (*entity.Project, error)
	// Create persists a new project.
	Create(ctx context.Context, p *entity.Project) error
	// Update persists changes to an existing project.
	Update(ctx context.Context, p *entity.Project) error
	// Delete removes the project with the given ID or returns ErrProjectNotFound.
	Delete(ctx context.Context, id string) error
}

// ProjectUsecase provides business logic for project operations.
type ProjectUsecase struct {
	repo ProjectRepository
}

// NewProjectUsecase creates a new ProjectUsecase with the given repository.
func NewProjectUsecase(r ProjectRepository) *ProjectUsecase {
	return &ProjectUsecase{repo: r}
}

// List returns projects newest first, optionally filtered by status.
func (u *ProjectUsecase) List(ctx context.Context, status string) ([]entity.Project, error) {
	return u.repo.List(ctx, status)
}

// Get returns a single project by ID.
func (u *ProjectUsecase) Get(ctx context.Context, id string) (*entity.Project, error) {
	return u.repo.FindByID(ctx, id)
}

// Create mints an ID for the project and persists it. Client-supplied IDs
// and timestamps are ignored.
func (u *ProjectUsecase) Create(ctx context.Context, p *entity.Project) (*entity.Project, error) {
	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = entity.StatusOngoing
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the editable fields of an existing project.
func (u *ProjectUsecase) Update(ctx context.Context, id string, in *entity.Project) (*entity.Project, error) {
	p, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Description = in.Description
	p.Objectives = in.Objectives
	p.Status = in.Status
	p.ImageURL = in.ImageURL
	p.Date = in.Date

	if err := u.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a project by ID.
func (u *ProjectUsecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
