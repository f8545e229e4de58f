package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	authdomain "clipstream-backend/internal/auth/domain"
	authdto "clipstream-backend/internal/auth/dto"
	"clipstream-backend/internal/auth/token"
	"clipstream-backend/internal/auth/usecase"
	"clipstream-backend/pkg/apperrors"
	"clipstream-backend/pkg/config"
	"clipstream-backend/pkg/media"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	users map[string]*authdomain.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[string]*authdomain.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *authdomain.User) error {
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *userRepoStub) FindByID(_ context.Context, id string) (*authdomain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *userRepoStub) FindByUsername(_ context.Context, username string) (*authdomain.User, error) {
	for _, u := range s.users {
		if username != "" && u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *userRepoStub) FindByUsernameOrEmail(_ context.Context, username, email string) (*authdomain.User, error) {
	for _, u := range s.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *userRepoStub) Update(_ context.Context, user *authdomain.User) error {
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *userRepoStub) SetRefreshToken(_ context.Context, userID, tok string) error {
	u, ok := s.users[userID]
	if !ok {
		return nil
	}
	u.RefreshToken = tok
	return nil
}

type uploaderStub struct {
	fail bool
}

func (s *uploaderStub) Upload(_ context.Context, localPath string) (*media.Asset, error) {
	if s.fail {
		return nil, errors.New("media host unavailable")
	}
	return &media.Asset{URL: "https://cdn.test/" + localPath}, nil
}

type subsStub struct {
	subscribers int64
	subscribed  int64
	isSub       bool
}

func (s *subsStub) CountSubscribers(context.Context, string) (int64, error) { return s.subscribers, nil }
func (s *subsStub) CountSubscribedTo(context.Context, string) (int64, error) { return s.subscribed, nil }
func (s *subsStub) IsSubscribed(context.Context, string, string) (bool, error) {
	return s.isSub, nil
}

func testConfig() *config.Config {
	return &config.Config{
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		AccessTokenExpiry:  time.Minute,
		RefreshTokenExpiry: time.Hour,
	}
}

func newTestUsecase(t *testing.T) (usecase.AuthUsecase, *userRepoStub) {
	t.Helper()
	repo := newUserRepoStub()
	uc := usecase.NewAuthUsecase(repo, token.NewService(testConfig()), &uploaderStub{}, &subsStub{})
	return uc, repo
}

func registerAda(t *testing.T, uc usecase.AuthUsecase) *authdomain.User {
	t.Helper()
	user, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		FullName: "Ada Lovelace",
		Username: "ada",
		Email:    "ada@x.com",
		Password: "p@ss1234",
	}, "avatar.png", "")
	require.NoError(t, err)
	return user
}

func TestRegisterSanitizesSecrets(t *testing.T) {
	uc, _ := newTestUsecase(t)

	user := registerAda(t, uc)
	require.Equal(t, "ada", user.Username)
	require.Equal(t, "ada@x.com", user.Email)
	require.NotEmpty(t, user.Avatar)

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	require.NotContains(t, fields, "password")
	require.NotContains(t, fields, "refreshToken")
	require.NotContains(t, fields, "Password")
	require.NotContains(t, fields, "RefreshToken")
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	uc, repo := newTestUsecase(t)
	registerAda(t, uc)

	_, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		FullName: "Other Ada",
		Username: "ada",
		Email:    "other@x.com",
		Password: "p@ss1234",
	}, "avatar.png", "")
	require.True(t, apperrors.IsDuplicateIdentity(err))

	_, err = uc.Register(context.Background(), &authdto.RegisterRequest{
		FullName: "Other Ada",
		Username: "ada2",
		Email:    "ada@x.com",
		Password: "p@ss1234",
	}, "avatar.png", "")
	require.True(t, apperrors.IsDuplicateIdentity(err))

	require.Len(t, repo.users, 1)
}

func TestRegisterBlankFields(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		FullName: "  ",
		Username: "ada",
		Email:    "ada@x.com",
		Password: "p@ss1234",
	}, "avatar.png", "")
	require.True(t, apperrors.IsValidation(err))
}

func TestRegisterRequiresAvatar(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		FullName: "Ada Lovelace",
		Username: "ada",
		Email:    "ada@x.com",
		Password: "p@ss1234",
	}, "", "")
	require.True(t, apperrors.IsMissingAsset(err))
}

func TestRegisterUploadFailure(t *testing.T) {
	repo := newUserRepoStub()
	uc := usecase.NewAuthUsecase(repo, token.NewService(testConfig()), &uploaderStub{fail: true}, &subsStub{})

	_, err := uc.Register(context.Background(), &authdto.RegisterRequest{
		FullName: "Ada Lovelace",
		Username: "ada",
		Email:    "ada@x.com",
		Password: "p@ss1234",
	}, "avatar.png", "")
	require.True(t, apperrors.IsMissingAsset(err))
	require.Empty(t, repo.users)
}

func TestLoginSuccessAndFailure(t *testing.T) {
	uc, repo := newTestUsecase(t)
	user := registerAda(t, uc)

	session, err := uc.Login(context.Background(), &authdto.LoginRequest{Username: "ada", Password: "p@ss1234"})
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken)
	require.NotEmpty(t, session.RefreshToken)
	require.Equal(t, session.RefreshToken, repo.users[user.ID].RefreshToken)

	_, err = uc.Login(context.Background(), &authdto.LoginRequest{Username: "ada", Password: "wrong"})
	require.True(t, apperrors.IsInvalidCredentials(err))

	_, err = uc.Login(context.Background(), &authdto.LoginRequest{Username: "nobody", Password: "p@ss1234"})
	require.True(t, apperrors.IsNotFound(err))
}

func TestLoginByEmail(t *testing.T) {
	uc, _ := newTestUsecase(t)
	registerAda(t, uc)

	session, err := uc.Login(context.Background(), &authdto.LoginRequest{Email: "ada@x.com", Password: "p@ss1234"})
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken)
}

func TestLoginOverwritesPreviousSession(t *testing.T) {
	uc, _ := newTestUsecase(t)
	registerAda(t, uc)

	first, err := uc.Login(context.Background(), &authdto.LoginRequest{Username: "ada", Password: "p@ss1234"})
	require.NoError(t, err)
	_, err = uc.Login(context.Background(), &authdto.LoginRequest{Username: "ada", Password: "p@ss1234"})
	require.NoError(t, err)

	// The first session's refresh token was superseded by the second login.
	_, err = uc.Refresh(context.Background(), first.RefreshToken)
	require.True(t, apperrors.IsTokenReuse(err))
}

func TestRefreshRotationAndReplay(t *testing.T) {
	uc, _ := newTestUsecase(t)
	registerAda(t, uc)

	session, err := uc.Login(context.Background(), &authdto.LoginRequest{Username: "ada", Password: "p@ss1234"})
	require.NoError(t, err)

	rotated, err := uc.Refresh(context.Background(), session.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.AccessToken)
	require.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// Replaying the consumed token is permanently rejected.
	_, err = uc.Refresh(context.Background(), session.RefreshToken)
	require.True(t, apperrors.IsTokenReuse(err))

	// The rotated token still works.
	_, err = uc.Refresh(context.Background(), rotated.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshRejectsEmptyAndGarbage(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Refresh(context.Background(), "")
	require.True(t, apperrors.IsUnauthorized(err))

	_, err = uc.Refresh(context.Background(), "not-a-jwt")
	require.True(t, apperrors.IsUnauthorized(err))
}

func TestLogoutInvalidatesRefresh(t *testing.T) {
	uc, _ := newTestUsecase(t)
	user := registerAda(t, uc)

	session, err := uc.Login(context.Background(), &authdto.LoginRequest{Username: "ada", Password: "p@ss1234"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), user.ID))
	// Idempotent: logging out again is fine.
	require.NoError(t, uc.Logout(context.Background(), user.ID))

	_, err = uc.Refresh(context.Background(), session.RefreshToken)
	require.True(t, apperrors.IsUnauthorized(err))
}

func TestChangePassword(t *testing.T) {
	uc, _ := newTestUsecase(t)
	user := registerAda(t, uc)

	err := uc.ChangePassword(context.Background(), user.ID, "wrong", "n3w-p@ss-9x")
	require.True(t, apperrors.IsInvalidCredentials(err))

	require.NoError(t, uc.ChangePassword(context.Background(), user.ID, "p@ss1234", "n3w-p@ss-9x"))

	_, err = uc.Login(context.Background(), &authdto.LoginRequest{Username: "ada", Password: "p@ss1234"})
	require.True(t, apperrors.IsInvalidCredentials(err))
	_, err = uc.Login(context.Background(), &authdto.LoginRequest{Username: "ada", Password: "n3w-p@ss-9x"})
	require.NoError(t, err)
}

func TestResolveAccessToken(t *testing.T) {
	uc, repo := newTestUsecase(t)
	registerAda(t, uc)

	session, err := uc.Login(context.Background(), &authdto.LoginRequest{Username: "ada", Password: "p@ss1234"})
	require.NoError(t, err)

	resolved, err := uc.ResolveAccessToken(context.Background(), session.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "ada", resolved.Username)

	// Deleted user: valid signature but the subject is gone.
	delete(repo.users, resolved.ID)
	_, err = uc.ResolveAccessToken(context.Background(), session.AccessToken)
	require.True(t, apperrors.IsUnauthorized(err))
}

func TestResolveExpiredAccessToken(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenExpiry = -time.Minute
	repo := newUserRepoStub()
	uc := usecase.NewAuthUsecase(repo, token.NewService(cfg), &uploaderStub{}, &subsStub{})

	user := registerAda(t, uc)
	expired, err := token.NewService(cfg).IssueAccessToken(user.ID, user.Email, user.Username)
	require.NoError(t, err)

	_, err = uc.ResolveAccessToken(context.Background(), expired)
	require.True(t, apperrors.IsUnauthorized(err))
}

func TestChannelProfile(t *testing.T) {
	repo := newUserRepoStub()
	subs := &subsStub{subscribers: 42, subscribed: 7, isSub: true}
	uc := usecase.NewAuthUsecase(repo, token.NewService(testConfig()), &uploaderStub{}, subs)
	registerAda(t, uc)

	profile, err := uc.ChannelProfile(context.Background(), "viewer-id", "ADA")
	require.NoError(t, err)
	require.Equal(t, int64(42), profile.SubscriberCount)
	require.Equal(t, int64(7), profile.SubscribedTo)
	require.True(t, profile.IsSubscribed)

	_, err = uc.ChannelProfile(context.Background(), "viewer-id", "ghost")
	require.True(t, apperrors.IsNotFound(err))

	// A registered email must not resolve a channel, or the endpoint
	// would confirm which addresses exist.
	_, err = uc.ChannelProfile(context.Background(), "viewer-id", "ada@x.com")
	require.True(t, apperrors.IsNotFound(err))
}
