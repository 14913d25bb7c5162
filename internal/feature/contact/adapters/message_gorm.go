// Package adapters provides the repository implementations for the contact feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"cms_backend/internal/feature/contact/domain/entity"
	"cms_backend/internal/feature/contact/usecase"
)

const listLimit = 100

// messageGorm is the GORM implementation of the MessageRepository interface.
type messageGorm struct {
	db *gorm.DB
}

var _ usecase.MessageRepository = (*messageGorm)(nil)

// NewMessageRepository creates a messageGorm backed by the given connection.
func NewMessageRepository(db *gorm.DB) *messageGorm {
	return &messageGorm{db: db}
}

// List returns all messages newest first.
func (r *messageGorm) List(ctx context.Context) ([]entity.Message, error) {
	messages := make([]entity.Message, 0)
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(listLimit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Create inserts a new message.
func (r *messageGorm) Create(ctx context.Context, m *entity.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// MarkRead flags a message as read.
func (r *messageGorm) MarkRead(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("id = ?", id).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMessageNotFound
	}
	return nil
}

// Delete removes a message by ID.
func (r *messageGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Message{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMessageNotFound
	}
	return nil
}
