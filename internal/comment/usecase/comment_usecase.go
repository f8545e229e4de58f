package usecase

import (
	"context"
	"strings"

	commentdomain "clipstream-backend/internal/comment/domain"
	"clipstream-backend/internal/comment/repository"
	videorepo "clipstream-backend/internal/video/repository"
	"clipstream-backend/pkg/apperrors"
)

type CommentUsecase interface {
	Create(ctx context.Context, ownerID, videoID, content string) (*commentdomain.Comment, error)
	ListForVideo(ctx context.Context, videoID string) ([]commentdomain.Comment, error)
	Update(ctx context.Context, ownerID, commentID, content string) (*commentdomain.Comment, error)
	Delete(ctx context.Context, ownerID, commentID string) error
}

type commentUsecase struct {
	commentRepo repository.CommentRepository
	videoRepo   videorepo.VideoRepository
}

func NewCommentUsecase(commentRepo repository.CommentRepository, videoRepo videorepo.VideoRepository) CommentUsecase {
	return &commentUsecase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
	}
}

func (u *commentUsecase) Create(ctx context.Context, ownerID, videoID, content string) (*commentdomain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidation("comment content is required")
	}

	video, err := u.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup video")
	}
	if video == nil {
		return nil, apperrors.ErrNotFound
	}

	comment := &commentdomain.Comment{
		Content: content,
		VideoID: videoID,
		OwnerID: ownerID,
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, apperrors.WrapInternal(err, "persist comment")
	}
	return comment, nil
}

func (u *commentUsecase) ListForVideo(ctx context.Context, videoID string) ([]commentdomain.Comment, error) {
	comments, err := u.commentRepo.FindByVideo(ctx, videoID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "fetch comments")
	}
	return comments, nil
}

func (u *commentUsecase) Update(ctx context.Context, ownerID, commentID, content string) (*commentdomain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidation("comment content is required")
	}

	comment, err := u.commentRepo.FindByIDAndOwner(ctx, commentID, ownerID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup comment")
	}
	if comment == nil {
		return nil, apperrors.ErrNotFound
	}

	comment.Content = content
	if err := u.commentRepo.Update(ctx, comment); err != nil {
		return nil, apperrors.WrapInternal(err, "persist comment")
	}
	return comment, nil
}

func (u *commentUsecase) Delete(ctx context.Context, ownerID, commentID string) error {
	comment, err := u.commentRepo.FindByIDAndOwner(ctx, commentID, ownerID)
	if err != nil {
		return apperrors.WrapInternal(err, "lookup comment")
	}
	if comment == nil {
		return apperrors.ErrNotFound
	}
	if err := u.commentRepo.DeleteByIDAndOwner(ctx, commentID, ownerID); err != nil {
		return apperrors.WrapInternal(err, "delete comment")
	}
	return nil
}
