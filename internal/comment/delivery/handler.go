package delivery

import (
	"net/http"

	authdelivery "clipstream-backend/internal/auth/delivery"
	"clipstream-backend/internal/comment/usecase"
	"clipstream-backend/pkg/apperrors"
	"clipstream-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type commentBody struct {
	Content string `json:"content" binding:"required"`
}

type CommentHandler struct {
	commentUsecase usecase.CommentUsecase
}

func NewCommentHandler(commentUsecase usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
	}
}

func (h *CommentHandler) Create(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	var body commentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Fail(c, apperrors.NewValidation(err.Error()))
		return
	}

	comment, err := h.commentUsecase.Create(c.Request.Context(), user.ID, c.Param("videoId"), body.Content)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusCreated, comment, "comment added successfully")
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentUsecase.ListForVideo(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, comments, "comments fetched successfully")
}

func (h *CommentHandler) Update(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	var body commentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Fail(c, apperrors.NewValidation(err.Error()))
		return
	}

	comment, err := h.commentUsecase.Update(c.Request.Context(), user.ID, c.Param("commentId"), body.Content)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, comment, "comment updated successfully")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.commentUsecase.Delete(c.Request.Context(), user.ID, c.Param("commentId")); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "comment deleted successfully")
}
