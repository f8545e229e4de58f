package token

import (
	"fmt"
	"time"

	"clipstream-backend/pkg/apperrors"
	"clipstream-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims binds a point-in-time identity to a short expiry.
type AccessClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// RefreshClaims carries only the user id and a jti.
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// Service signs and verifies both token classes. Access and refresh use
// independent secrets so compromise of one cannot forge the other.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenExpiry,
		refreshTTL:    cfg.RefreshTokenExpiry,
	}
}

func (s *Service) IssueAccessToken(userID, email, username string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Email:    email,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", apperrors.WrapInternal(err, "sign access token")
	}
	return signed, nil
}

func (s *Service) IssueRefreshToken(userID string) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.refreshSecret)
	if err != nil {
		return "", apperrors.WrapInternal(err, "sign refresh token")
	}
	return signed, nil
}

func (s *Service) VerifyAccess(raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.verify(raw, claims, s.accessSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *Service) VerifyRefresh(raw string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := s.verify(raw, claims, s.refreshSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *Service) verify(raw string, claims jwt.Claims, secret []byte) error {
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return apperrors.ErrUnauthorized
	}
	return nil
}
