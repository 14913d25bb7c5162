// Package db opens the Postgres connection shared by every repository.
package db

import (
	"fmt"
	"log/slog"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	articleentity "cms_backend/internal/feature/articles/domain/entity"
	authentity "cms_backend/internal/feature/auth/domain/entity"
	contactentity "cms_backend/internal/feature/contact/domain/entity"
	contententity "cms_backend/internal/feature/content/domain/entity"
	documententity "cms_backend/internal/feature/documents/domain/entity"
	memberentity "cms_backend/internal/feature/members/domain/entity"
	projectentity "cms_backend/internal/feature/projects/domain/entity"
	"cms_backend/internal/platform/config"
)

// Open connects to Postgres, retrying for up to a minute while the database
// comes up, and runs migrations when the config asks for them.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError turns driver duplicate-key errors into
		// gorm.ErrDuplicatedKey so adapters can match on one sentinel.
		db, err = gorm.Open(gpostgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after 60s: %w", err)
		}
		slog.Warn("DB connect failed, retrying...", "error", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&projectentity.Project{},
			&articleentity.Article{},
			&memberentity.Member{},
			&documententity.Document{},
			&contactentity.Message{},
			&contententity.Snippet{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
