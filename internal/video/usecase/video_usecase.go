package usecase

import (
	"context"
	"strings"

	videodomain "clipstream-backend/internal/video/domain"
	videodto "clipstream-backend/internal/video/dto"
	"clipstream-backend/internal/video/repository"
	"clipstream-backend/pkg/apperrors"
	"clipstream-backend/pkg/media"
)

const watchHistoryLimit = 50

type VideoUsecase interface {
	Upload(ctx context.Context, ownerID string, req *videodto.UploadVideoRequest, videoPath, thumbnailPath string) (*videodomain.Video, error)
	Get(ctx context.Context, viewerID, videoID string) (*videodomain.Video, error)
	UpdateDetails(ctx context.Context, ownerID, videoID string, req *videodto.UpdateVideoRequest) (*videodomain.Video, error)
	UpdateThumbnail(ctx context.Context, ownerID, videoID, thumbnailPath string) (*videodomain.Video, error)
	Delete(ctx context.Context, ownerID, videoID string) error
	WatchHistory(ctx context.Context, userID string) ([]videodomain.Video, error)
}

type videoUsecase struct {
	videoRepo repository.VideoRepository
	uploader  media.Uploader
}

func NewVideoUsecase(videoRepo repository.VideoRepository, uploader media.Uploader) VideoUsecase {
	return &videoUsecase{
		videoRepo: videoRepo,
		uploader:  uploader,
	}
}

func (u *videoUsecase) Upload(ctx context.Context, ownerID string, req *videodto.UploadVideoRequest, videoPath, thumbnailPath string) (*videodomain.Video, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidation("title and description are required")
	}
	if videoPath == "" || thumbnailPath == "" {
		return nil, apperrors.ErrMissingAsset
	}

	videoAsset, err := u.uploader.Upload(ctx, videoPath)
	if err != nil {
		return nil, apperrors.ErrMissingAsset
	}
	thumbAsset, err := u.uploader.Upload(ctx, thumbnailPath)
	if err != nil {
		return nil, apperrors.ErrMissingAsset
	}

	video := &videodomain.Video{
		VideoFile:   videoAsset.URL,
		Thumbnail:   thumbAsset.URL,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		IsPublished: true,
		OwnerID:     ownerID,
	}
	if err := u.videoRepo.Create(ctx, video); err != nil {
		return nil, apperrors.WrapInternal(err, "persist video")
	}
	return video, nil
}

// Get fetches a video, bumps its view counter and records the viewer's
// watch history.
func (u *videoUsecase) Get(ctx context.Context, viewerID, videoID string) (*videodomain.Video, error) {
	video, err := u.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup video")
	}
	if video == nil || !video.IsPublished {
		return nil, apperrors.ErrNotFound
	}

	if err := u.videoRepo.IncrementViews(ctx, videoID); err != nil {
		return nil, apperrors.WrapInternal(err, "bump views")
	}
	video.Views++

	if err := u.videoRepo.RecordWatch(ctx, viewerID, videoID); err != nil {
		return nil, apperrors.WrapInternal(err, "record watch")
	}
	return video, nil
}

func (u *videoUsecase) UpdateDetails(ctx context.Context, ownerID, videoID string, req *videodto.UpdateVideoRequest) (*videodomain.Video, error) {
	video, err := u.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		video.Title = title
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		video.Description = description
	}
	if err := u.videoRepo.Update(ctx, video); err != nil {
		return nil, apperrors.WrapInternal(err, "persist video")
	}
	return video, nil
}

func (u *videoUsecase) UpdateThumbnail(ctx context.Context, ownerID, videoID, thumbnailPath string) (*videodomain.Video, error) {
	if thumbnailPath == "" {
		return nil, apperrors.ErrMissingAsset
	}

	video, err := u.ownedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	asset, err := u.uploader.Upload(ctx, thumbnailPath)
	if err != nil {
		return nil, apperrors.ErrMissingAsset
	}

	video.Thumbnail = asset.URL
	if err := u.videoRepo.Update(ctx, video); err != nil {
		return nil, apperrors.WrapInternal(err, "persist video")
	}
	return video, nil
}

func (u *videoUsecase) Delete(ctx context.Context, ownerID, videoID string) error {
	if _, err := u.ownedVideo(ctx, ownerID, videoID); err != nil {
		return err
	}
	if err := u.videoRepo.DeleteByIDAndOwner(ctx, videoID, ownerID); err != nil {
		return apperrors.WrapInternal(err, "delete video")
	}
	return nil
}

func (u *videoUsecase) WatchHistory(ctx context.Context, userID string) ([]videodomain.Video, error) {
	videos, err := u.videoRepo.WatchHistory(ctx, userID, watchHistoryLimit)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "fetch watch history")
	}
	return videos, nil
}

func (u *videoUsecase) ownedVideo(ctx context.Context, ownerID, videoID string) (*videodomain.Video, error) {
	video, err := u.videoRepo.FindByIDAndOwner(ctx, videoID, ownerID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup video")
	}
	if video == nil {
		return nil, apperrors.ErrNotFound
	}
	return video, nil
}
