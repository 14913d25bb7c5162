// Package usecase implements the business logic for the members feature.
package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cms_backend/internal/feature/members/domain/entity"
)

// ErrMemberNotFound is returned when no member matches the given ID.
var ErrMemberNotFound = errors.New("member not found")

// ListFilter narrows member listings.
type ListFilter struct {
	// ApprovedOnly hides pending applications. Public listings set this.
	ApprovedOnly bool
	// MemberType filters by member type when non-empty.
	MemberType string
}

// Application is a public membership request from the website form.
type Application struct {
	Name       string
	Email      string
	Phone      string
	Motivation string
}

// MemberRepository abstracts the persistence layer for member entities.
type MemberRepository interface {
	List(ctx context.Context, filter ListFilter) ([]entity.Member, error)
	ListPending(ctx context.Context) ([]entity.Member, error)
	Create(ctx context.Context, m *entity.Member) error
	// Approve marks a member approved with the given type, or returns
	// ErrMemberNotFound.
	Approve(ctx context.Context, id, memberType string) error
	// Delete removes the member with the given ID or returns ErrMemberNotFound.
	Delete(ctx context.Context, id string) error
}

// MemberUsecase provides business logic for member operations.
type MemberUsecase struct {
	repo MemberRepository
}

// NewMemberUsecase creates a new MemberUsecase with the given repository.
func NewMemberUsecase(r MemberRepository) *MemberUsecase {
	return &MemberUsecase{repo: r}
}

// List returns members newest first, narrowed by the filter.
func (u *MemberUsecase) List(ctx context.Context, filter ListFilter) ([]entity.Member, error) {
	return u.repo.List(ctx, filter)
}

// ListPending returns applications awaiting review, newest first.
func (u *MemberUsecase) ListPending(ctx context.Context) ([]entity.Member, error) {
	return u.repo.ListPending(ctx)
}

// Apply records a public membership application. Applications always start
// unapproved with the active member type.
func (u *MemberUsecase) Apply(ctx context.Context, app Application) (*entity.Member, error) {
	m := &entity.Member{
		ID:         uuid.NewString(),
		Name:       app.Name,
		Email:      app.Email,
		Phone:      app.Phone,
		Motivation: app.Motivation,
		MemberType: entity.TypeActive,
		Approved:   false,
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Approve accepts a pending application with the given member type.
func (u *MemberUsecase) Approve(ctx context.Context, id, memberType string) error {
	if memberType == "" {
		memberType = entity.TypeActive
	}
	return u.repo.Approve(ctx, id, memberType)
}

// Reject discards a pending application.
func (u *MemberUsecase) Reject(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}

// Delete removes a member.
func (u *MemberUsecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
