package repository

import (
	"context"

	authdomain "clipstream-backend/internal/auth/domain"
)

// UserRepository is the Credential Store boundary. Lookups return (nil, nil)
// when no record matches so callers can decide the error class.
type UserRepository interface {
	Create(ctx context.Context, user *authdomain.User) error
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
	FindByUsername(ctx context.Context, username string) (*authdomain.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*authdomain.User, error)
	Update(ctx context.Context, user *authdomain.User) error
	SetRefreshToken(ctx context.Context, userID, token string) error
}
