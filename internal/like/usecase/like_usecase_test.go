package usecase_test

import (
	"context"
	"testing"

	commentdomain "clipstream-backend/internal/comment/domain"
	likedomain "clipstream-backend/internal/like/domain"
	"clipstream-backend/internal/like/usecase"
	videodomain "clipstream-backend/internal/video/domain"
	"clipstream-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type likeRepoStub struct {
	likes map[string]*likedomain.Like
}

func newLikeRepoStub() *likeRepoStub {
	return &likeRepoStub{likes: map[string]*likedomain.Like{}}
}

func (s *likeRepoStub) Create(_ context.Context, like *likedomain.Like) error {
	like.ID = uuid.New().String()
	s.likes[like.ID] = like
	return nil
}

func (s *likeRepoStub) FindForVideo(_ context.Context, userID, videoID string) (*likedomain.Like, error) {
	for _, l := range s.likes {
		if l.LikedByID == userID && l.VideoID == videoID && videoID != "" {
			return l, nil
		}
	}
	return nil, nil
}

func (s *likeRepoStub) FindForComment(_ context.Context, userID, commentID string) (*likedomain.Like, error) {
	for _, l := range s.likes {
		if l.LikedByID == userID && l.CommentID == commentID && commentID != "" {
			return l, nil
		}
	}
	return nil, nil
}

func (s *likeRepoStub) Delete(_ context.Context, id string) error {
	delete(s.likes, id)
	return nil
}

type videoRepoStub struct {
	videos map[string]*videodomain.Video
}

func (s *videoRepoStub) Create(context.Context, *videodomain.Video) error { return nil }
func (s *videoRepoStub) FindByID(_ context.Context, id string) (*videodomain.Video, error) {
	return s.videos[id], nil
}
func (s *videoRepoStub) FindByIDAndOwner(context.Context, string, string) (*videodomain.Video, error) {
	return nil, nil
}
func (s *videoRepoStub) Update(context.Context, *videodomain.Video) error { return nil }
func (s *videoRepoStub) DeleteByIDAndOwner(context.Context, string, string) error { return nil }
func (s *videoRepoStub) IncrementViews(context.Context, string) error { return nil }
func (s *videoRepoStub) RecordWatch(context.Context, string, string) error { return nil }
func (s *videoRepoStub) WatchHistory(context.Context, string, int) ([]videodomain.Video, error) {
	return nil, nil
}

type commentRepoStub struct {
	comments map[string]*commentdomain.Comment
}

func (s *commentRepoStub) Create(context.Context, *commentdomain.Comment) error { return nil }
func (s *commentRepoStub) FindByVideo(context.Context, string) ([]commentdomain.Comment, error) {
	return nil, nil
}
func (s *commentRepoStub) FindByID(_ context.Context, id string) (*commentdomain.Comment, error) {
	return s.comments[id], nil
}
func (s *commentRepoStub) FindByIDAndOwner(_ context.Context, id, ownerID string) (*commentdomain.Comment, error) {
	c, ok := s.comments[id]
	if !ok || c.OwnerID != ownerID {
		return nil, nil
	}
	return c, nil
}
func (s *commentRepoStub) Update(context.Context, *commentdomain.Comment) error { return nil }
func (s *commentRepoStub) DeleteByIDAndOwner(context.Context, string, string) error { return nil }

func newLikeUsecase() (usecase.LikeUsecase, *likeRepoStub) {
	likes := newLikeRepoStub()
	videos := &videoRepoStub{videos: map[string]*videodomain.Video{
		"video-1": {ID: "video-1", OwnerID: "owner-1"},
	}}
	comments := &commentRepoStub{comments: map[string]*commentdomain.Comment{
		"comment-1": {ID: "comment-1", OwnerID: "user-1"},
	}}
	return usecase.NewLikeUsecase(likes, videos, comments), likes
}

func TestToggleVideoLike(t *testing.T) {
	uc, likes := newLikeUsecase()

	result, err := uc.ToggleVideoLike(context.Background(), "user-1", "video-1")
	require.NoError(t, err)
	require.True(t, result.Liked)
	require.Len(t, likes.likes, 1)

	// Toggling again removes the like instead of duplicating it.
	result, err = uc.ToggleVideoLike(context.Background(), "user-1", "video-1")
	require.NoError(t, err)
	require.False(t, result.Liked)
	require.Empty(t, likes.likes)
}

func TestToggleVideoLikeUnknownVideo(t *testing.T) {
	uc, _ := newLikeUsecase()

	_, err := uc.ToggleVideoLike(context.Background(), "user-1", "missing")
	require.True(t, apperrors.IsNotFound(err))
}

func TestToggleCommentLike(t *testing.T) {
	uc, likes := newLikeUsecase()

	result, err := uc.ToggleCommentLike(context.Background(), "user-1", "comment-1")
	require.NoError(t, err)
	require.True(t, result.Liked)
	require.Len(t, likes.likes, 1)

	result, err = uc.ToggleCommentLike(context.Background(), "user-1", "comment-1")
	require.NoError(t, err)
	require.False(t, result.Liked)
	require.Empty(t, likes.likes)
}

func TestToggleCommentLikeByOtherUser(t *testing.T) {
	uc, likes := newLikeUsecase()

	// comment-1 belongs to user-1; any authenticated user can like it.
	result, err := uc.ToggleCommentLike(context.Background(), "user-2", "comment-1")
	require.NoError(t, err)
	require.True(t, result.Liked)
	require.Len(t, likes.likes, 1)

	result, err = uc.ToggleCommentLike(context.Background(), "user-2", "comment-1")
	require.NoError(t, err)
	require.False(t, result.Liked)
	require.Empty(t, likes.likes)
}

func TestToggleCommentLikeUnknownComment(t *testing.T) {
	uc, _ := newLikeUsecase()

	_, err := uc.ToggleCommentLike(context.Background(), "user-1", "missing")
	require.True(t, apperrors.IsNotFound(err))
}
