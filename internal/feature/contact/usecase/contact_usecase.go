// Package usecase implements the business logic for the contact feature.
package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cms_backend/internal/feature/contact/domain/entity"
)

// ErrMessageNotFound is returned when no message matches the given ID.
var ErrMessageNotFound = errors.New("message not found")

// Submission is a contact form submission from a site visitor.
type Submission struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// MessageRepository abstracts the persistence layer for contact messages.
type MessageRepository interface {
	List(ctx context.Context) ([]entity.Message, error)
	Create(ctx context.Context, m *entity.Message) error
	// MarkRead flags a message as read or returns ErrMessageNotFound.
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ContactUsecase provides business logic for contact message operations.
type ContactUsecase struct {
	repo MessageRepository
}

// NewContactUsecase creates a new ContactUsecase with the given repository.
func NewContactUsecase(r MessageRepository) *ContactUsecase {
	return &ContactUsecase{repo: r}
}

// List returns all messages newest first.
func (u *ContactUsecase) List(ctx context.Context) ([]entity.Message, error) {
	return u.repo.List(ctx)
}

// Submit records a visitor's message, unread.
func (u *ContactUsecase) Submit(ctx context.Context, s Submission) (*entity.Message, error) {
	m := &entity.Message{
		ID:      uuid.NewString(),
		Name:    s.Name,
		Email:   s.Email,
		Subject: s.Subject,
		Body:    s.Body,
		Read:    false,
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// MarkRead flags a message as read.
func (u *ContactUsecase) MarkRead(ctx context.Context, id string) error {
	return u.repo.MarkRead(ctx, id)
}

// Delete removes a message.
func (u *ContactUsecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
