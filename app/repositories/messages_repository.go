package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luxystore/luxy-api/app/models"
	"gorm.io/gorm"
)

// MessageRepositoryImpl replaces the storefront's module-level message store
// singleton with a constructed, injected repository.
type MessageRepositoryImpl interface {
	Add(ctx context.Context, msg *models.Message) error
	GetAll(ctx context.Context) ([]models.Message, error)
	MarkAsRead(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	CountUnread(ctx context.Context) (int, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepositoryImpl {
	return &messageRepository{db}
}

func (r *messageRepository) Add(ctx context.Context, msg *models.Message) error {
	msg.ReceivedAt = time.Now()
	msg.Read = false
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) GetAll(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).Order("received_at DESC").Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetching messages: %v", models.ErrDataUnavailable, err)
	}
	return messages, nil
}

func (r *messageRepository) MarkAsRead(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: message %d", models.ErrNotFound, id)
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Message{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: message %d", models.ErrNotFound, id)
	}
	return nil
}

func (r *messageRepository) CountUnread(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("read = ?", false).
		Count(&count).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	return int(count), nil
}
