package delivery

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	authdomain "clipstream-backend/internal/auth/domain"
	authdto "clipstream-backend/internal/auth/dto"
	"clipstream-backend/internal/auth/usecase"
	"clipstream-backend/pkg/apperrors"
	"clipstream-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"

	// Multipart uploads are staged here before the media host takes over.
	stagingDir = "/tmp/clipstream-uploads"
)

type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	cookieMaxAge int
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		cookieMaxAge: cookieMaxAge,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, apperrors.NewValidation(err.Error()))
		return
	}

	avatarPath, err := h.stageFile(c, "avatar")
	if err != nil {
		response.Fail(c, apperrors.ErrMissingAsset)
		return
	}
	coverPath, _ := h.stageFile(c, "coverImage")

	user, err := h.authUsecase.Register(c.Request.Context(), &req, avatarPath, coverPath)
	if err != nil {
		removeStaged(avatarPath, coverPath)
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusCreated, user, "user registered successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperrors.NewValidation(err.Error()))
		return
	}

	session, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	h.setSessionCookies(c, session.AccessToken, session.RefreshToken)
	response.OK(c, http.StatusOK, session, "user logged in successfully")
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	presented, _ := c.Cookie(refreshTokenCookie)
	if presented == "" {
		var req authdto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	session, err := h.authUsecase.Refresh(c.Request.Context(), presented)
	if err != nil {
		response.Fail(c, err)
		return
	}

	h.setSessionCookies(c, session.AccessToken, session.RefreshToken)
	session.User = nil
	response.OK(c, http.StatusOK, session, "tokens refreshed")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.authUsecase.Logout(c.Request.Context(), user.ID); err != nil {
		response.Fail(c, err)
		return
	}

	h.clearSessionCookies(c)
	response.OK(c, http.StatusOK, gin.H{}, "user logged out")
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	var req authdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperrors.NewValidation(err.Error()))
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		response.Fail(c, apperrors.NewValidation("passwords do not match"))
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), user.ID, req.OldPassword, req.NewPassword); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "password changed successfully")
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, ok := IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	response.OK(c, http.StatusOK, user, "current user fetched")
}

func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	user, ok := IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	var req authdto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperrors.NewValidation(err.Error()))
		return
	}

	updated, err := h.authUsecase.UpdateAccount(c.Request.Context(), user.ID, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, updated, "account updated")
}

func (h *AuthHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", h.authUsecase.UpdateAvatar)
}

func (h *AuthHandler) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "coverImage", h.authUsecase.UpdateCoverImage)
}

func (h *AuthHandler) ChannelProfile(c *gin.Context) {
	user, ok := IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	profile, err := h.authUsecase.ChannelProfile(c.Request.Context(), user.ID, c.Param("username"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, profile, "channel profile fetched")
}

func (h *AuthHandler) updateImage(c *gin.Context, field string, apply func(ctx context.Context, userID, localPath string) (*authdomain.User, error)) {
	user, ok := IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	localPath, err := h.stageFile(c, field)
	if err != nil {
		response.Fail(c, apperrors.ErrMissingAsset)
		return
	}

	updated, err := apply(c.Request.Context(), user.ID, localPath)
	if err != nil {
		removeStaged(localPath)
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, updated, field+" updated")
}

// stageFile saves one multipart file to the staging dir and returns its
// path. The uploader removes the file once it has been pushed out.
func (h *AuthHandler) stageFile(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(stagingDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// removeStaged deletes staged files that never reached the uploader. The
// uploader removes its input itself, so a repeat remove is a no-op.
func removeStaged(paths ...string) {
	for _, p := range paths {
		if p != "" {
			os.Remove(p)
		}
	}
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessTokenCookie, accessToken, h.cookieMaxAge, "/", "", true, true)
	c.SetCookie(refreshTokenCookie, refreshToken, h.cookieMaxAge, "/", "", true, true)
}

func (h *AuthHandler) clearSessionCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", true, true)
}
