// Package adapters provides the repository implementations for the articles feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cms_backend/internal/feature/articles/domain/entity"
	"cms_backend/internal/feature/articles/usecase"
)

const listLimit = 100

// articleGorm is the GORM implementation of the ArticleRepository interface.
type articleGorm struct {
	db *gorm.DB
}

var _ usecase.ArticleRepository = (*articleGorm)(nil)

// NewArticleRepository creates an articleGorm backed by the given connection.
func NewArticleRepository(db *gorm.DB) *articleGorm {
	return &articleGorm{db: db}
}

// List returns articles newest first, narrowed by the filter.
func (r *articleGorm) List(ctx context.Context, filter usecase.ListFilter) ([]entity.Article, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(listLimit)
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.PublishedOnly {
		q = q.Where("published = ?", true)
	}
	articles := make([]entity.Article, 0)
	if err := q.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindByID returns the article with the given ID.
func (r *articleGorm) FindByID(ctx context.Context, id string) (*entity.Article, error) {
	var a entity.Article
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts a new article.
func (r *articleGorm) Create(ctx context.Context, a *entity.Article) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// Update saves all fields of an existing article. Save would skip false
// booleans under Updates, so the full-record form is used.
func (r *articleGorm) Update(ctx context.Context, a *entity.Article) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete removes an article by ID.
func (r *articleGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Article{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrArticleNotFound
	}
	return nil
}
