package repository

import (
	"context"
	"errors"
	"time"

	videodomain "clipstream-backend/internal/video/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{
		db: db,
	}
}

func (r *videoRepository) Create(ctx context.Context, video *videodomain.Video) error {
	video.ID = uuid.New().String()
	video.CreatedAt = time.Now()
	video.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) FindByID(ctx context.Context, id string) (*videodomain.Video, error) {
	var video videodomain.Video
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*videodomain.Video, error) {
	var video videodomain.Video
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) Update(ctx context.Context, video *videodomain.Video) error {
	video.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *videoRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&videodomain.Video{}).Error
}

func (r *videoRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&videodomain.Video{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}

func (r *videoRepository) RecordWatch(ctx context.Context, userID, videoID string) error {
	entry := &videodomain.WatchHistoryEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *videoRepository) WatchHistory(ctx context.Context, userID string, limit int) ([]videodomain.Video, error) {
	var videos []videodomain.Video
	err := r.db.WithContext(ctx).
		Joins("JOIN watch_history_entries ON watch_history_entries.video_id = videos.id").
		Where("watch_history_entries.user_id = ?", userID).
		Order("watch_history_entries.watched_at DESC").
		Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}
