package usecase

import (
	"context"
	"strings"

	authdomain "clipstream-backend/internal/auth/domain"
	authdto "clipstream-backend/internal/auth/dto"
	"clipstream-backend/internal/auth/repository"
	"clipstream-backend/internal/auth/token"
	"clipstream-backend/pkg/apperrors"
	"clipstream-backend/pkg/media"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

// Registration and password changes refuse passwords below this entropy.
const minPasswordEntropyBits = 40

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
	uploader media.Uploader
	subs     SubscriptionReader
}

func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service, uploader media.Uploader, subs SubscriptionReader) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		uploader: uploader,
		subs:     subs,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest, avatarPath, coverPath string) (*authdomain.User, error) {
	fullname := strings.TrimSpace(req.FullName)
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if fullname == "" || username == "" || email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.NewValidation("all fields are required")
	}

	if err := passwordvalidator.Validate(req.Password, minPasswordEntropyBits); err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	existing, err := u.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup existing user")
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateIdentity
	}

	if avatarPath == "" {
		return nil, apperrors.ErrMissingAsset
	}
	avatar, err := u.uploader.Upload(ctx, avatarPath)
	if err != nil {
		return nil, apperrors.ErrMissingAsset
	}

	coverURL := ""
	if coverPath != "" {
		if cover, err := u.uploader.Upload(ctx, coverPath); err == nil {
			coverURL = cover.URL
		}
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "hash password")
	}

	user := &authdomain.User{
		Username:   username,
		Email:      email,
		FullName:   fullname,
		Password:   hashed,
		Avatar:     avatar.URL,
		CoverImage: coverURL,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.ErrDuplicateIdentity
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" && email == "" {
		return nil, apperrors.NewValidation("username or email required")
	}

	user, err := u.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup user")
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return u.issueSession(ctx, user)
}

func (u *authUsecase) Refresh(ctx context.Context, presented string) (*authdto.TokenResponse, error) {
	if presented == "" {
		return nil, apperrors.ErrUnauthorized
	}

	claims, err := u.tokens.VerifyRefresh(presented)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := u.userRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup user")
	}
	if user == nil || user.RefreshToken == "" {
		return nil, apperrors.ErrUnauthorized
	}

	// A signature-valid token that no longer matches the stored value has
	// been superseded: reject it permanently.
	if user.RefreshToken != presented {
		return nil, apperrors.ErrTokenReuse
	}

	return u.issueSession(ctx, user)
}

// Logout clears the stored refresh token. Logging out an already
// logged-out user is not an error.
func (u *authUsecase) Logout(ctx context.Context, userID string) error {
	if err := u.userRepo.SetRefreshToken(ctx, userID, ""); err != nil {
		return apperrors.WrapInternal(err, "clear refresh token")
	}
	return nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return apperrors.WrapInternal(err, "lookup user")
	}
	if user == nil {
		return apperrors.ErrNotFound
	}

	if !repository.CheckPasswordHash(oldPassword, user.Password) {
		return apperrors.ErrInvalidCredentials
	}

	if err := passwordvalidator.Validate(newPassword, minPasswordEntropyBits); err != nil {
		return apperrors.NewValidation(err.Error())
	}

	hashed, err := repository.HashPassword(newPassword)
	if err != nil {
		return apperrors.WrapInternal(err, "hash password")
	}
	user.Password = hashed
	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperrors.WrapInternal(err, "persist password")
	}
	return nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup user")
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (u *authUsecase) UpdateAccount(ctx context.Context, userID string, req *authdto.UpdateAccountRequest) (*authdomain.User, error) {
	user, err := u.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if fullname := strings.TrimSpace(req.FullName); fullname != "" {
		user.FullName = fullname
	}
	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" {
		user.Email = email
	}
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.ErrDuplicateIdentity
	}
	return user, nil
}

func (u *authUsecase) UpdateAvatar(ctx context.Context, userID, localPath string) (*authdomain.User, error) {
	return u.updateImage(ctx, userID, localPath, func(user *authdomain.User, url string) {
		user.Avatar = url
	})
}

func (u *authUsecase) UpdateCoverImage(ctx context.Context, userID, localPath string) (*authdomain.User, error) {
	return u.updateImage(ctx, userID, localPath, func(user *authdomain.User, url string) {
		user.CoverImage = url
	})
}

func (u *authUsecase) updateImage(ctx context.Context, userID, localPath string, assign func(*authdomain.User, string)) (*authdomain.User, error) {
	if localPath == "" {
		return nil, apperrors.ErrMissingAsset
	}

	user, err := u.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	asset, err := u.uploader.Upload(ctx, localPath)
	if err != nil {
		return nil, apperrors.ErrMissingAsset
	}

	assign(user, asset.URL)
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.WrapInternal(err, "persist image")
	}
	return user, nil
}

func (u *authUsecase) ChannelProfile(ctx context.Context, viewerID, username string) (*authdto.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperrors.NewValidation("username required")
	}

	// Lookup is by username only: resolving an email here would reveal
	// whether the address is registered.
	user, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup channel")
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	subscribers, err := u.subs.CountSubscribers(ctx, user.ID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "count subscribers")
	}
	subscribedTo, err := u.subs.CountSubscribedTo(ctx, user.ID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "count subscriptions")
	}
	isSubscribed, err := u.subs.IsSubscribed(ctx, viewerID, user.ID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "check subscription")
	}

	return &authdto.ChannelProfile{
		User:            user,
		SubscriberCount: subscribers,
		SubscribedTo:    subscribedTo,
		IsSubscribed:    isSubscribed,
	}, nil
}

func (u *authUsecase) ResolveAccessToken(ctx context.Context, raw string) (*authdomain.User, error) {
	claims, err := u.tokens.VerifyAccess(raw)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := u.userRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup user")
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (u *authUsecase) issueSession(ctx context.Context, user *authdomain.User) (*authdto.TokenResponse, error) {
	accessToken, err := u.tokens.IssueAccessToken(user.ID, user.Email, user.Username)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	// Overwriting invalidates any previous session: single active refresh
	// token per user.
	if err := u.userRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, apperrors.WrapInternal(err, "persist refresh token")
	}
	user.RefreshToken = refreshToken

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
