package delivery

import (
	"net/http"
	"os"
	"path/filepath"

	authdelivery "clipstream-backend/internal/auth/delivery"
	videodto "clipstream-backend/internal/video/dto"
	"clipstream-backend/internal/video/usecase"
	"clipstream-backend/pkg/apperrors"
	"clipstream-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const stagingDir = "/tmp/clipstream-uploads"

type VideoHandler struct {
	videoUsecase usecase.VideoUsecase
}

func NewVideoHandler(videoUsecase usecase.VideoUsecase) *VideoHandler {
	return &VideoHandler{
		videoUsecase: videoUsecase,
	}
}

func (h *VideoHandler) Upload(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	var req videodto.UploadVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, apperrors.NewValidation(err.Error()))
		return
	}

	videoPath, err := stageFile(c, "video")
	if err != nil {
		response.Fail(c, apperrors.ErrMissingAsset)
		return
	}
	thumbnailPath, err := stageFile(c, "thumbnail")
	if err != nil {
		removeStaged(videoPath)
		response.Fail(c, apperrors.ErrMissingAsset)
		return
	}

	video, err := h.videoUsecase.Upload(c.Request.Context(), user.ID, &req, videoPath, thumbnailPath)
	if err != nil {
		removeStaged(videoPath, thumbnailPath)
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusCreated, video, "video uploaded successfully")
}

func (h *VideoHandler) Get(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	video, err := h.videoUsecase.Get(c.Request.Context(), user.ID, c.Param("videoId"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, video, "video fetched successfully")
}

func (h *VideoHandler) UpdateDetails(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	var req videodto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperrors.NewValidation(err.Error()))
		return
	}

	video, err := h.videoUsecase.UpdateDetails(c.Request.Context(), user.ID, c.Param("videoId"), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, video, "video updated successfully")
}

func (h *VideoHandler) UpdateThumbnail(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	thumbnailPath, err := stageFile(c, "thumbnail")
	if err != nil {
		response.Fail(c, apperrors.ErrMissingAsset)
		return
	}

	video, err := h.videoUsecase.UpdateThumbnail(c.Request.Context(), user.ID, c.Param("videoId"), thumbnailPath)
	if err != nil {
		removeStaged(thumbnailPath)
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, video, "thumbnail updated successfully")
}

func (h *VideoHandler) Delete(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.videoUsecase.Delete(c.Request.Context(), user.ID, c.Param("videoId")); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "video deleted successfully")
}

func (h *VideoHandler) WatchHistory(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	videos, err := h.videoUsecase.WatchHistory(c.Request.Context(), user.ID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, videos, "watch history fetched")
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

func stageFile(c *gin.Context, field string) (string, error) {
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
