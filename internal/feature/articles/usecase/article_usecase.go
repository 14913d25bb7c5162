// Package usecase implements the business logic for the articles feature.
package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cms_backend/internal/feature/articles/domain/entity"
)

// ErrArticleNotFound is returned when no article matches the given ID.
var ErrArticleNotFound = errors.New("article not found")

// ListFilter narrows article listings.
type ListFilter struct {
	// Category filters by category when non-empty.
	Category string
	// PublishedOnly hides drafts. Public listings set this.
	PublishedOnly bool
}

// ArticleRepository abstracts the persistence layer for article entities.
type ArticleRepository interface {
	List(ctx context.Context, filter ListFilter) ([]entity.Article, error)
	FindByID(ctx context.Context, id string) (*entity.Article, error)
	Create(ctx context.Context, a *entity.Article) error
	Update(ctx context.Context, a *entity.Article) error
	Delete(ctx context.Context, id string) error
}

// ArticleUsecase provides business logic for article operations.
type ArticleUsecase struct {
	repo ArticleRepository
}

// NewArticleUsecase creates a new ArticleUsecase with the given repository.
func NewArticleUsecase(r ArticleRepository) *ArticleUsecase {
	return &ArticleUsecase{repo: r}
}

// List returns articles newest first, narrowed by the filter.
func (u *ArticleUsecase) List(ctx context.Context, filter ListFilter) ([]entity.Article, error) {
	return u.repo.List(ctx, filter)
}

// Get returns a single article by ID.
func (u *ArticleUsecase) Get(ctx context.Context, id string) (*entity.Article, error) {
	return u.repo.FindByID(ctx, id)
}

// Create mints an ID for the article and persists it.
func (u *ArticleUsecase) Create(ctx context.Context, a *entity.Article) (*entity.Article, error) {
	a.ID = uuid.NewString()
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces the editable fields of an existing article.
func (u *ArticleUsecase) Update(ctx context.Context, id string, in *entity.Article) (*entity.Article, error) {
	a, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Title = in.Title
	a.Content = in.Content
	a.Excerpt = in.Excerpt
	a.Category = in.Category
	a.ImageURL = in.ImageURL
	a.Published = in.Published

	if err := u.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an article by ID.
func (u *ArticleUsecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
