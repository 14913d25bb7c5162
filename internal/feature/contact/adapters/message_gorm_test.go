package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cms_backend/internal/feature/contact/domain/entity"
	"cms_backend/internal/feature/contact/usecase"
)

// setupTestDB creates an in-memory SQLite database with the message schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Message{}))
	return db
}

func seedMessage(t *testing.T, db *gorm.DB, id, subject string, read bool, createdAt time.Time) {
	t.Helper()
	m := entity.Message{
		ID:        id,
		Name:      "visitor",
		Email:     "visitor@example.com",
		Subject:   subject,
		Body:      "hello",
		Read:      read,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&m).Error)
}

func TestMessageGorm_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedMessage(t, db, "msg1", "first", true, base)
	seedMessage(t, db, "msg2", "second", false, base.Add(time.Hour))

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "msg2", messages[0].ID)
	assert.Equal(t, "msg1", messages[1].ID)
}

func TestMessageGorm_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	m := &entity.Message{
		ID:      "msg1",
		Name:    "visitor",
		Email:   "visitor@example.com",
		Subject: "donation question",
		Body:    "How can I donate?",
	}
	require.NoError(t, repo.Create(ctx, m))
	assert.False(t, m.CreatedAt.IsZero())

	var stored entity.Message
	require.NoError(t, db.First(&stored, "id = ?", "msg1").Error)
	assert.False(t, stored.Read)
}

func TestMessageGorm_MarkRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	seedMessage(t, db, "msg1", "first", false, time.Now())

	t.Run("marks message read", func(t *testing.T) {
		require.NoError(t, repo.MarkRead(ctx, "msg1"))

		var m entity.Message
		require.NoError(t, db.First(&m, "id = ?", "msg1").Error)
		assert.True(t, m.Read)
	})

	t.Run("not found", func(t *testing.T) {
		err := repo.MarkRead(ctx, "missing")
		assert.ErrorIs(t, err, usecase.ErrMessageNotFound)
	})
}

func TestMessageGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	seedMessage(t, db, "msg1", "first", false, time.Now())

	t.Run("deletes existing message", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "msg1"))

		var count int64
		require.NoError(t, db.Model(&entity.Message{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("not found", func(t *testing.T) {
		err := repo.Delete(ctx, "missing")
		assert.ErrorIs(t, err, usecase.ErrMessageNotFound)
	})
}
