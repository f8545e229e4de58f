package repository

import (
	"context"
	"errors"
	"time"

	commentdomain "clipstream-backend/internal/comment/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *commentdomain.Comment) error
	FindByVideo(ctx context.Context, videoID string) ([]commentdomain.Comment, error)
	FindByID(ctx context.Context, id string) (*commentdomain.Comment, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*commentdomain.Comment, error)
	Update(ctx context.Context, comment *commentdomain.Comment) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *commentdomain.Comment) error {
	comment.ID = uuid.New().String()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByVideo(ctx context.Context, videoID string) ([]commentdomain.Comment, error) {
	var comments []commentdomain.Comment
	err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindByID(ctx context.Context, id string) (*commentdomain.Comment, error) {
	var comment commentdomain.Comment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*commentdomain.Comment, error) {
	var comment commentdomain.Comment
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *commentdomain.Comment) error {
	comment.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&commentdomain.Comment{}).Error
}
