// Package adapters provides the repository implementations for the content feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cms_backend/internal/feature/content/domain/entity"
	"cms_backend/internal/feature/content/usecase"
)

// snippetGorm is the GORM implementation of the SnippetRepository interface.
type snippetGorm struct {
	db *gorm.DB
}

var _ usecase.SnippetRepository = (*snippetGorm)(nil)

// NewSnippetRepository creates a snippetGorm backed by the given connection.
func NewSnippetRepository(db *gorm.DB) *snippetGorm {
	return &snippetGorm{db: db}
}

// List returns every snippet.
func (r *snippetGorm) List(ctx context.Context) ([]entity.Snippet, error) {
	snippets := make([]entity.Snippet, 0)
	if err := r.db.WithContext(ctx).Find(&snippets).Error; err != nil {
		return nil, err
	}
	return snippets, nil
}

// FindByKey returns the snippet with the given key.
func (r *snippetGorm) FindByKey(ctx context.Context, key string) (*entity.Snippet, error) {
	var s entity.Snippet
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSnippetNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Upsert inserts the snippet or replaces the value of an existing key.
func (r *snippetGorm) Upsert(ctx context.Context, s *entity.Snippet) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(s).Error
}
