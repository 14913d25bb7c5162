// Package usecase implements the business logic for the stats feature.
package usecase

import (
	"context"

	"cms_backend/internal/feature/stats/domain/entity"
)

// StatsRepository abstracts the aggregate count queries.
// The caching decorator in platform/cache implements the same interface.
type StatsRepository interface {
	// PublicStats returns the homepage figures.
	PublicStats(ctx context.Context) (*entity.PublicStats, error)
	// AdminStats returns the admin dashboard figures.
	AdminStats(ctx context.Context) (*entity.AdminStats, error)
}

// StatsUsecase provides business logic for aggregate statistics.
type StatsUsecase struct {
	repo StatsRepository
}

// NewStatsUsecase creates a new StatsUsecase with the given repository.
func NewStatsUsecase(r StatsRepository) *StatsUsecase {
	return &StatsUsecase{repo: r}
}

// Public returns the homepage figures.
func (u *StatsUsecase) Public(ctx context.Context) (*entity.PublicStats, error) {
	return u.repo.PublicStats(ctx)
}

// Admin returns the dashboard figures.
func (u *StatsUsecase) Admin(ctx context.Context) (*entity.AdminStats, error) {
	return u.repo.AdminStats(ctx)
}
