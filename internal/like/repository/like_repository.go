package repository

import (
	"context"
	"errors"
	"time"

	likedomain "clipstream-backend/internal/like/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(ctx context.Context, like *likedomain.Like) error
	FindForVideo(ctx context.Context, userID, videoID string) (*likedomain.Like, error)
	FindForComment(ctx context.Context, userID, commentID string) (*likedomain.Like, error)
	Delete(ctx context.Context, id string) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{
		db: db,
	}
}

func (r *likeRepository) Create(ctx context.Context, like *likedomain.Like) error {
	like.ID = uuid.New().String()
	like.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) FindForVideo(ctx context.Context, userID, videoID string) (*likedomain.Like, error) {
	var like likedomain.Like
	err := r.db.WithContext(ctx).
		Where("liked_by_id = ? AND video_id = ?", userID, videoID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) FindForComment(ctx context.Context, userID, commentID string) (*likedomain.Like, error) {
	var like likedomain.Like
	err := r.db.WithContext(ctx).
		Where("liked_by_id = ? AND comment_id = ?", userID, commentID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&likedomain.Like{}).Error
}
