package usecase

import (
	"context"

	authdomain "clipstream-backend/internal/auth/domain"
	authdto "clipstream-backend/internal/auth/dto"
)

// AuthUsecase drives the session lifecycle: register, login, refresh,
// logout, password change, plus the profile operations that hang off the
// same user record.
type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.RegisterRequest, avatarPath, coverPath string) (*authdomain.User, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Refresh(ctx context.Context, presented string) (*authdto.TokenResponse, error)
	Logout(ctx context.Context, userID string) error
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	CurrentUser(ctx context.Context, userID string) (*authdomain.User, error)
	UpdateAccount(ctx context.Context, userID string, req *authdto.UpdateAccountRequest) (*authdomain.User, error)
	UpdateAvatar(ctx context.Context, userID, localPath string) (*authdomain.User, error)
	UpdateCoverImage(ctx context.Context, userID, localPath string) (*authdomain.User, error)
	ChannelProfile(ctx context.Context, viewerID, username string) (*authdto.ChannelProfile, error)

	// ResolveAccessToken backs the authorization middleware: verify the
	// token, then confirm the subject still exists.
	ResolveAccessToken(ctx context.Context, raw string) (*authdomain.User, error)
}

// SubscriptionReader supplies the counts the channel profile aggregates.
// Implemented by the subscription feature and injected at wiring time.
type SubscriptionReader interface {
	CountSubscribers(ctx context.Context, channelID string) (int64, error)
	CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error)
}
