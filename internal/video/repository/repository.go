package repository

import (
	"context"

	videodomain "clipstream-backend/internal/video/domain"
)

// VideoRepository scopes every mutation to the owning user.
type VideoRepository interface {
	Create(ctx context.Context, video *videodomain.Video) error
	FindByID(ctx context.Context, id string) (*videodomain.Video, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*videodomain.Video, error)
	Update(ctx context.Context, video *videodomain.Video) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
	IncrementViews(ctx context.Context, id string) error
	RecordWatch(ctx context.Context, userID, videoID string) error
	WatchHistory(ctx context.Context, userID string, limit int) ([]videodomain.Video, error)
}
