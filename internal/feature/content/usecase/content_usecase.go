// Package usecase implements the business logic for the content feature.
package usecase

import (
	"context"
	"errors"

	"cms_backend/internal/feature/content/domain/entity"
)

// ErrSnippetNotFound is returned by the repository when a key is absent.
// The usecase maps it to an empty snippet; the public site renders missing
// keys as empty strings rather than failing.
var ErrSnippetNotFound = errors.New("snippet not found")

// SnippetRepository abstracts the persistence layer for site text snippets.
type SnippetRepository interface {
	List(ctx context.Context) ([]entity.Snippet, error)
	FindByKey(ctx context.Context, key string) (*entity.Snippet, error)
	// Upsert inserts the snippet or replaces the value of an existing key.
	Upsert(ctx context.Context, s *entity.Snippet) error
}

// ContentUsecase provides business logic for site content operations.
type ContentUsecase struct {
	repo SnippetRepository
}

// NewContentUsecase creates a new ContentUsecase with the given repository.
func NewContentUsecase(r SnippetRepository) *ContentUsecase {
	return &ContentUsecase{repo: r}
}

// List returns every snippet.
func (u *ContentUsecase) List(ctx context.Context) ([]entity.Snippet, error) {
	return u.repo.List(ctx)
}

// Get returns the snippet for a key. A missing key yields an empty value,
// not an error.
func (u *ContentUsecase) Get(ctx context.Context, key string) (*entity.Snippet, error) {
	s, err := u.repo.FindByKey(ctx, key)
	if errors.Is(err, ErrSnippetNotFound) {
		return &entity.Snippet{Key: key, Value: ""}, nil
	}
	return s, err
}

// Upsert creates or replaces a snippet.
func (u *ContentUsecase) Upsert(ctx context.Context, key, value string) error {
	return u.repo.Upsert(ctx, &entity.Snippet{Key: key, Value: value})
}
