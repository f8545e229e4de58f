package delivery

import (
	"net/http"

	authdelivery "clipstream-backend/internal/auth/delivery"
	"clipstream-backend/internal/subscription/usecase"
	"clipstream-backend/pkg/apperrors"
	"clipstream-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subUsecase usecase.SubscriptionUsecase
}

func NewSubscriptionHandler(subUsecase usecase.SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{
		subUsecase: subUsecase,
	}
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	sub, err := h.subUsecase.Subscribe(c.Request.Context(), user.ID, c.Param("channelId"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, sub, "subscribed to channel successfully")
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.subUsecase.Unsubscribe(c.Request.Context(), user.ID, c.Param("channelId")); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "unsubscribed from channel")
}

func (h *SubscriptionHandler) Status(c *gin.Context) {
	user, ok := authdelivery.IdentityFromContext(c)
	if !ok {
		response.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	isSubscribed, err := h.subUsecase.Status(c.Request.Context(), user.ID, c.Param("channelId"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"isSubscribed": isSubscribed}, "subscription status fetched")
}
