// Package adapters provides the repository implementations for the documents feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"cms_backend/internal/feature/documents/domain/entity"
	"cms_backend/internal/feature/documents/usecase"
)

const listLimit = 100

// documentGorm is the GORM implementation of the DocumentRepository interface.
type documentGorm struct {
	db *gorm.DB
}

var _ usecase.DocumentRepository = (*documentGorm)(nil)

// NewDocumentRepository creates a documentGorm backed by the given connection.
func NewDocumentRepository(db *gorm.DB) *documentGorm {
	return &documentGorm{db: db}
}

// List returns documents newest first, optionally filtered by category.
func (r *documentGorm) List(ctx context.Context, category string) ([]entity.Document, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(listLimit)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	documents := make([]entity.Document, 0)
	if err := q.Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

// Create inserts a new document.
func (r *documentGorm) Create(ctx context.Context, d *entity.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// Delete removes a document by ID.
func (r *documentGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrDocumentNotFound
	}
	return nil
}
