package usecase

import (
	"context"

	commentrepo "clipstream-backend/internal/comment/repository"
	likedomain "clipstream-backend/internal/like/domain"
	"clipstream-backend/internal/like/repository"
	videorepo "clipstream-backend/internal/video/repository"
	"clipstream-backend/pkg/apperrors"
)

// ToggleResult reports whether the toggle ended with the like present.
type ToggleResult struct {
	Liked bool             `json:"liked"`
	Like  *likedomain.Like `json:"like,omitempty"`
}

type LikeUsecase interface {
	ToggleVideoLike(ctx context.Context, userID, videoID string) (*ToggleResult, error)
	ToggleCommentLike(ctx context.Context, userID, commentID string) (*ToggleResult, error)
}

type likeUsecase struct {
	likeRepo    repository.LikeRepository
	videoRepo   videorepo.VideoRepository
	commentRepo commentrepo.CommentRepository
}

func NewLikeUsecase(likeRepo repository.LikeRepository, videoRepo videorepo.VideoRepository, commentRepo commentrepo.CommentRepository) LikeUsecase {
	return &likeUsecase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
	}
}

// ToggleVideoLike likes on the first call and removes the like on the
// second, so duplicate rows cannot accumulate.
func (u *likeUsecase) ToggleVideoLike(ctx context.Context, userID, videoID string) (*ToggleResult, error) {
	video, err := u.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup video")
	}
	if video == nil {
		return nil, apperrors.ErrNotFound
	}

	existing, err := u.likeRepo.FindForVideo(ctx, userID, videoID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup like")
	}
	if existing != nil {
		if err := u.likeRepo.Delete(ctx, existing.ID); err != nil {
			return nil, apperrors.WrapInternal(err, "remove like")
		}
		return &ToggleResult{Liked: false}, nil
	}

	like := &likedomain.Like{VideoID: videoID, LikedByID: userID}
	if err := u.likeRepo.Create(ctx, like); err != nil {
		return nil, apperrors.WrapInternal(err, "persist like")
	}
	return &ToggleResult{Liked: true, Like: like}, nil
}

func (u *likeUsecase) ToggleCommentLike(ctx context.Context, userID, commentID string) (*ToggleResult, error) {
	comment, err := u.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup comment")
	}
	if comment == nil {
		return nil, apperrors.ErrNotFound
	}

	existing, err := u.likeRepo.FindForComment(ctx, userID, commentID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup like")
	}
	if existing != nil {
		if err := u.likeRepo.Delete(ctx, existing.ID); err != nil {
			return nil, apperrors.WrapInternal(err, "remove like")
		}
		return &ToggleResult{Liked: false}, nil
	}

	like := &likedomain.Like{CommentID: commentID, LikedByID: userID}
	if err := u.likeRepo.Create(ctx, like); err != nil {
		return nil, apperrors.WrapInternal(err, "persist like")
	}
	return &ToggleResult{Liked: true, Like: like}, nil
}
