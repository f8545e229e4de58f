package repository

import (
	"context"
	"errors"
	"time"

	subdomain "clipstream-backend/internal/subscription/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *subdomain.Subscription) error
	Find(ctx context.Context, subscriberID, channelID string) (*subdomain.Subscription, error)
	Delete(ctx context.Context, subscriberID, channelID string) (bool, error)
	CountSubscribers(ctx context.Context, channelID string) (int64, error)
	CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *subdomain.Subscription) error {
	sub.ID = uuid.New().String()
	sub.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) Find(ctx context.Context, subscriberID, channelID string) (*subdomain.Subscription, error) {
	var sub subdomain.Subscription
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// Delete reports whether a row was actually removed so the caller can tell
// "unsubscribed" from "was never subscribed".
func (r *subscriptionRepository) Delete(ctx context.Context, subscriberID, channelID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&subdomain.Subscription{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *subscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&subdomain.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&subdomain.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error
	return count, err
}
