// Package adapters provides the repository implementations for the members feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"cms_backend/internal/feature/members/domain/entity"
	"cms_backend/internal/feature/members/usecase"
)

const listLimit = 100

// memberGorm is the GORM implementation of the MemberRepository interface.
type memberGorm struct {
	db *gorm.DB
}

var _ usecase.MemberRepository = (*memberGorm)(nil)

// NewMemberRepository creates a memberGorm backed by the given connection.
func NewMemberRepository(db *gorm.DB) *memberGorm {
	return &memberGorm{db: db}
}

// List returns members newest first, narrowed by the filter.
func (r *memberGorm) List(ctx context.Context, filter usecase.ListFilter) ([]entity.Member, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(listLimit)
	if filter.ApprovedOnly {
		q = q.Where("approved = ?", true)
	}
	if filter.MemberType != "" {
		q = q.Where("member_type = ?", filter.MemberType)
	}
	members := make([]entity.Member, 0)
	if err := q.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListPending returns unapproved applications newest first.
func (r *memberGorm) ListPending(ctx context.Context) ([]entity.Member, error) {
	members := make([]entity.Member, 0)
	if err := r.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("created_at DESC").
		Limit(listLimit).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Create inserts a new member record.
func (r *memberGorm) Create(ctx context.Context, m *entity.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Approve marks a member approved with the given type.
func (r *memberGorm) Approve(ctx context.Context, id, memberType string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Member{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"approved":    true,
			"member_type": memberType,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMemberNotFound
	}
	return nil
}

// Delete removes a member by ID.
func (r *memberGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Member{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMemberNotFound
	}
	return nil
}
