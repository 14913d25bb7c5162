// Package usecase implements the demo-data seeding routine.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	articleentity "cms_backend/internal/feature/articles/domain/entity"
	authentity "cms_backend/internal/feature/auth/domain/entity"
	contententity "cms_backend/internal/feature/content/domain/entity"
	memberentity "cms_backend/internal/feature/members/domain/entity"
	projectentity "cms_backend/internal/feature/projects/domain/entity"
)

// Default admin credentials created by seeding. They are demo values and are
// returned in the seed response so the operator can log in once and change them.
const (
	DefaultAdminEmail    = "admin@knowledgegate.org"
	DefaultAdminPassword = "Admin123!"
)

// Result reports what seeding did.
type Result struct {
	// Seeded is false when demo data was already present.
	Seeded bool
	// AdminEmail and AdminPassword echo the demo account when seeding ran.
	AdminEmail    string
	AdminPassword string
}

// SeedUsecase populates the content tables with demo data. It writes through
// gorm directly: seeding spans every collection and has no business rules of
// its own.
type SeedUsecase struct {
	db *gorm.DB
}

// NewSeedUsecase creates a new SeedUsecase.
func NewSeedUsecase(db *gorm.DB) *SeedUsecase {
	return &SeedUsecase{db: db}
}

// Seed inserts demo projects, articles, members, site content and a default
// admin account. It is a no-op when any project already exists.
func (u *SeedUsecase) Seed(ctx context.Context) (*Result, error) {
	db := u.db.WithContext(ctx)

	var projectCount int64
	if err := db.Model(&projectentity.Project{}).Count(&projectCount).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing data: %w", err)
	}
	if projectCount > 0 {
		return &Result{Seeded: false}, nil
	}

	projects := demoProjects()
	if err := db.Create(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to seed projects: %w", err)
	}
	articles := demoArticles()
	if err := db.Create(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to seed articles: %w", err)
	}
	members := demoMembers()
	if err := db.Create(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to seed members: %w", err)
	}
	snippets := demoSnippets()
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&snippets).Error; err != nil {
		return nil, fmt.Errorf("failed to seed site content: %w", err)
	}

	if err := u.createDefaultAdmin(ctx); err != nil {
		return nil, err
	}

	return &Result{
		Seeded:        true,
		AdminEmail:    DefaultAdminEmail,
		AdminPassword: DefaultAdminPassword,
	}, nil
}

// createDefaultAdmin creates the demo admin unless the account already exists.
func (u *SeedUsecase) createDefaultAdmin(ctx context.Context) error {
	db := u.db.WithContext(ctx)

	var existing authentity.User
	err := db.Where("email = ?", DefaultAdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := &authentity.User{
		ID:       uuid.NewString(),
		Email:    DefaultAdminEmail,
		Name:     "Administrator",
		Password: string(hashed),
		Role:     authentity.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	return nil
}

func demoProjects() []projectentity.Project {
	return []projectentity.Project{
		{
			ID:          uuid.NewString(),
			Title:       "Adult Literacy Program",
			Description: "An intensive literacy program for adults, offering free reading and writing classes adapted to each learner's needs.",
			Objectives:  "Teach 500 adults to read and write by the end of next year",
			Status:      projectentity.StatusOngoing,
			ImageURL:    "https://images.unsplash.com/photo-1521493959102-bdd6677fdd81?w=800",
			Date:        "2024-01-15",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Mobile Library",
			Description: "A mobile library serving outlying neighborhoods with free books, school manuals and learning resources.",
			Objectives:  "Reach 1000 readers per month across 10 neighborhoods",
			Status:      projectentity.StatusOngoing,
			ImageURL:    "https://images.unsplash.com/photo-1507842217343-583bb7270b66?w=800",
			Date:        "2024-03-01",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Youth Digital Skills Training",
			Description: "A vocational program introducing young adults to computing, office software and essential digital skills.",
			Objectives:  "Train 200 young people in basic digital skills",
			Status:      projectentity.StatusCompleted,
			ImageURL:    "https://images.unsplash.com/flagged/photo-1579133311477-9121405c78dd?w=800",
			Date:        "2023-09-01",
		},
	}
}

func demoArticles() []articleentity.Article {
	return []articleentity.Article{
		{
			ID:        uuid.NewString(),
			Title:     "Training Center Opens Its Doors",
			Content:   "We are delighted to announce the opening of our new training center. The facility hosts up to 100 learners at a time, with air-conditioned classrooms, a computer lab and a library.",
			Excerpt:   "Our new training center opens with modern facilities.",
			Category:  "Events",
			ImageURL:  "https://images.unsplash.com/photo-1555069855-e580a9adbf43?w=800",
			Published: true,
		},
		{
			ID:        uuid.NewString(),
			Title:     "Summer Program Wraps Up",
			Content:   "This year's summer program closed with remarkable results: over 300 children took part in tutoring, reading workshops, arts activities and cultural outings during the school holidays.",
			Excerpt:   "Over 300 children joined our summer activities.",
			Category:  "News",
			ImageURL:  "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=800",
			Published: true,
		},
	}
}

func demoMembers() []memberentity.Member {
	return []memberentity.Member{
		{
			ID:         uuid.NewString(),
			Name:       "Mohamed Ahmed",
			Email:      "mohamed@example.com",
			Phone:      "+222 22 22 22 22",
			MemberType: memberentity.TypeFounder,
			Bio:        "Founding president, retired teacher with 30 years of classroom experience.",
			Approved:   true,
		},
		{
			ID:         uuid.NewString(),
			Name:       "Fatima Sidi",
			Email:      "fatima@example.com",
			Phone:      "+222 33 33 33 33",
			MemberType: memberentity.TypeFounder,
			Bio:        "General secretary, community development specialist.",
			Approved:   true,
		},
		{
			ID:         uuid.NewString(),
			Name:       "Amadou Ba",
			Email:      "amadou@example.com",
			Phone:      "+222 44 44 44 44",
			MemberType: memberentity.TypeActive,
			Bio:        "Active volunteer, coordinator of the youth programs.",
			Approved:   true,
		},
	}
}

func demoSnippets() []contententity.Snippet {
	return []contententity.Snippet{
		{Key: "mission", Value: "Promote education and access to knowledge for everyone in our community. We believe education is the key to sustainable development."},
		{Key: "vision", Value: "A society where every person has access to quality education regardless of social or economic background."},
		{Key: "about", Value: "Founded in 2020, our organization works to promote education locally. Our team of dedicated volunteers creates learning opportunities for those who need them most."},
		{Key: "address", Value: "Numerowatt District, Nouadhibou, Mauritania"},
		{Key: "email", Value: "contact@knowledgegate.org"},
		{Key: "phone", Value: "+222 45 00 00 00"},
	}
}
