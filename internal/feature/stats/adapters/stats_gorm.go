// Package adapters provides the repository implementations for the stats feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	articleentity "cms_backend/internal/feature/articles/domain/entity"
	contactentity "cms_backend/internal/feature/contact/domain/entity"
	memberentity "cms_backend/internal/feature/members/domain/entity"
	projectentity "cms_backend/internal/feature/projects/domain/entity"
	"cms_backend/internal/feature/stats/domain/entity"
	"cms_backend/internal/feature/stats/usecase"
)

// statsGorm computes aggregate counts across the content tables.
type statsGorm struct {
	db *gorm.DB
}

var _ usecase.StatsRepository = (*statsGorm)(nil)

// NewStatsRepository creates a statsGorm backed by the given connection.
func NewStatsRepository(db *gorm.DB) *statsGorm {
	return &statsGorm{db: db}
}

// PublicStats returns the homepage figures: all projects, published articles,
// approved members and unread messages.
func (r *statsGorm) PublicStats(ctx context.Context) (*entity.PublicStats, error) {
	var s entity.PublicStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&projectentity.Project{}).Count(&s.ProjectsCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&articleentity.Article{}).Where("published = ?", true).Count(&s.ArticlesCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&memberentity.Member{}).Where("approved = ?", true).Count(&s.MembersCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&contactentity.Message{}).Where("read = ?", false).Count(&s.MessagesCount).Error; err != nil {
		return nil, err
	}

	return &s, nil
}

// AdminStats returns the dashboard figures, counting drafts and pending
// applications separately.
func (r *statsGorm) AdminStats(ctx context.Context) (*entity.AdminStats, error) {
	var s entity.AdminStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&projectentity.Project{}).Count(&s.Projects).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&articleentity.Article{}).Count(&s.Articles).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&memberentity.Member{}).Where("approved = ?", true).Count(&s.Members).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&memberentity.Member{}).Where("approved = ?", false).Count(&s.PendingMembers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&contactentity.Message{}).Count(&s.Messages).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&contactentity.Message{}).Where("read = ?", false).Count(&s.UnreadMessages).Error; err != nil {
		return nil, err
	}

	return &s, nil
}
