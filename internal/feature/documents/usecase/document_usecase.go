// Package usecase implements the business logic for the documents feature.
package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cms_backend/internal/feature/documents/domain/entity"
)

// ErrDocumentNotFound is returned when no document matches the given ID.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository abstracts the persistence layer for document entities.
type DocumentRepository interface {
	List(ctx context.Context, category string) ([]entity.Document, error)
	Create(ctx context.Context, d *entity.Document) error
	Delete(ctx context.Context, id string) error
}

// DocumentUsecase provides business logic for document operations.
type DocumentUsecase struct {
	repo DocumentRepository
}

// NewDocumentUsecase creates a new DocumentUsecase with the given repository.
func NewDocumentUsecase(r DocumentRepository) *DocumentUsecase {
	return &DocumentUsecase{repo: r}
}

// List returns documents newest first, optionally filtered by category.
func (u *DocumentUsecase) List(ctx context.Context, category string) ([]entity.Document, error) {
	return u.repo.List(ctx, category)
}

// Create mints an ID for the document and persists it.
func (u *DocumentUsecase) Create(ctx context.Context, d *entity.Document) (*entity.Document, error) {
	d.ID = uuid.NewString()
	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes a document by ID.
func (u *DocumentUsecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
