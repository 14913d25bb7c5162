package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	articleentity "cms_backend/internal/feature/articles/domain/entity"
	contactentity "cms_backend/internal/feature/contact/domain/entity"
	memberentity "cms_backend/internal/feature/members/domain/entity"
	projectentity "cms_backend/internal/feature/projects/domain/entity"
)

// setupTestDB creates an in-memory SQLite database with every table the
// aggregate queries touch.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&projectentity.Project{},
		&articleentity.Article{},
		&memberentity.Member{},
		&contactentity.Message{},
	))
	return db
}

func seedContent(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&[]projectentity.Project{
		{ID: "p1", Title: "a", Description: "d", Objectives: "o", Status: projectentity.StatusOngoing},
		{ID: "p2", Title: "b", Description: "d", Objectives: "o", Status: projectentity.StatusCompleted},
	}).Error)
	require.NoError(t, db.Create(&[]articleentity.Article{
		{ID: "a1", Title: "published", Content: "c", Excerpt: "e", Category: "news", Published: true},
		{ID: "a2", Title: "draft", Content: "c", Excerpt: "e", Category: "news", Published: false},
		{ID: "a3", Title: "also published", Content: "c", Excerpt: "e", Category: "events", Published: true},
	}).Error)
	require.NoError(t, db.Create(&[]memberentity.Member{
		{ID: "m1", Name: "alice", Email: "a@example.com", Phone: "1", MemberType: memberentity.TypeFounder, Approved: true},
		{ID: "m2", Name: "bob", Email: "b@example.com", Phone: "2", MemberType: memberentity.TypeActive, Approved: false},
	}).Error)
	require.NoError(t, db.Create(&[]contactentity.Message{
		{ID: "msg1", Name: "v", Email: "v@example.com", Subject: "s", Body: "b", Read: true},
		{ID: "msg2", Name: "v", Email: "v@example.com", Subject: "s", Body: "b", Read: false},
		{ID: "msg3", Name: "v", Email: "v@example.com", Subject: "s", Body: "b", Read: false},
	}).Error)
}

func TestStatsGorm_PublicStats(t *testing.T) {
	db := setupTestDB(t)
	seedContent(t, db)
	repo := NewStatsRepository(db)

	stats, err := repo.PublicStats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.ProjectsCount)
	// Published articles only.
	assert.EqualValues(t, 2, stats.ArticlesCount)
	// Approved members only.
	assert.EqualValues(t, 1, stats.MembersCount)
	// Unread messages only.
	assert.EqualValues(t, 2, stats.MessagesCount)
}

func TestStatsGorm_PublicStats_EmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsRepository(db)

	stats, err := repo.PublicStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.ProjectsCount)
	assert.Zero(t, stats.ArticlesCount)
	assert.Zero(t, stats.MembersCount)
	assert.Zero(t, stats.MessagesCount)
}

func TestStatsGorm_AdminStats(t *testing.T) {
	db := setupTestDB(t)
	seedContent(t, db)
	repo := NewStatsRepository(db)

	stats, err := repo.AdminStats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.Projects)
	// Drafts count too.
	assert.EqualValues(t, 3, stats.Articles)
	assert.EqualValues(t, 1, stats.Members)
	assert.EqualValues(t, 1, stats.PendingMembers)
	assert.EqualValues(t, 3, stats.Messages)
	assert.EqualValues(t, 2, stats.UnreadMessages)
}
