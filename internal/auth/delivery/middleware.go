package delivery

import (
	"strings"

	authdomain "clipstream-backend/internal/auth/domain"
	"clipstream-backend/internal/auth/usecase"
	"clipstream-backend/pkg/apperrors"
	"clipstream-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const identityKey = "authenticatedUser"

// AuthMiddleware resolves the access token from the session cookie or the
// bearer header, confirms the subject still exists, and attaches the
// resolved user. Rejections short-circuit the chain; no handler runs.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := extractToken(c)
		if err != nil {
			response.Abort(c, err)
			return
		}

		user, err := authUsecase.ResolveAccessToken(c.Request.Context(), raw)
		if err != nil {
			response.Abort(c, apperrors.ErrUnauthorized)
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie != "" {
		return cookie, nil
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", apperrors.ErrUnauthorized
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", apperrors.ErrUnauthorized
	}
	return parts[1], nil
}

// IdentityFromContext returns the user attached by AuthMiddleware.
func IdentityFromContext(c *gin.Context) (*authdomain.User, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*authdomain.User)
	return user, ok
}
