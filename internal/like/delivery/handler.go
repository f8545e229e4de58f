package delivery

import (
	"net/http"

	authdelivery "clipstream-backend/internal/auth/delivery"
	"clipstream-backend/internal/like/usecase"
	"clipstream-backend/pkg/apperrors"
	"clipstream-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUsecase usecase.LikeUsecase
}

func NewLikeHandler(likeUsecase usecase.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		likeUsecase: likeUsecase,
	}
}

func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	result, err := h.likeUsecase.ToggleVideoLike(c.Request.Context(), user.ID, c.Param("videoId"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, result, "video like toggled")
}

func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	result, err := h.likeUsecase.ToggleCommentLike(c.Request.Context(), user.ID, c.Param("commentId"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, result, "comment like toggled")
}
