package dto

import authdomain "clipstream-backend/internal/auth/domain"

type RegisterRequest struct {
	FullName string `form:"fullname" binding:"required"`
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type TokenResponse struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	User         *authdomain.User `json:"user,omitempty"`
}

// ChannelProfile is the aggregated public view of a user's channel.
type ChannelProfile struct {
	User            *authdomain.User `json:"user"`
	SubscriberCount int64            `json:"subscriberCount"`
	SubscribedTo    int64            `json:"subscribedToCount"`
	IsSubscribed    bool             `json:"isSubscribed"`
}
