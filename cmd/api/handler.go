package api

import (
	"context"
	"net/http"

	authusecase "clipstream-backend/internal/auth/usecase"
	commentusecase "clipstream-backend/internal/comment/usecase"
	likeusecase "clipstream-backend/internal/like/usecase"
	"clipstream-backend/internal/middleware"
	subusecase "clipstream-backend/internal/subscription/usecase"
	videousecase "clipstream-backend/internal/video/usecase"
	"clipstream-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	engine *gin.Engine
	config *config.Config
}

// subscriptionReaderAdapter exposes the subscription usecase to the auth
// feature for channel-profile aggregation without a package cycle.
type subscriptionReaderAdapter struct {
	subs subusecase.SubscriptionUsecase
}

func NewSubscriptionReader(subs subusecase.SubscriptionUsecase) authusecase.SubscriptionReader {
	return &subscriptionReaderAdapter{subs: subs}
}

func (a *subscriptionReaderAdapter) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	return a.subs.CountSubscribers(ctx, channelID)
}

func (a *subscriptionReaderAdapter) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	return a.subs.CountSubscribedTo(ctx, subscriberID)
}

func (a *subscriptionReaderAdapter) IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error) {
	return a.subs.IsSubscribed(ctx, subscriberID, channelID)
}

func NewHandler(
	cfg *config.Config,
	log *zap.Logger,
	authUc authusecase.AuthUsecase,
	videoUc videousecase.VideoUsecase,
	commentUc commentusecase.CommentUsecase,
	likeUc likeusecase.LikeUsecase,
	subUc subusecase.SubscriptionUsecase,
) *Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(corsMiddleware(cfg.CORSOrigin))

	SetupRoutes(engine, cfg, authUc, videoUc, commentUc, likeUc, subUc)

	return &Handler{
		engine: engine,
		config: cfg,
	}
}

func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}

// Engine is exposed for httptest-driven tests.
func (h *Handler) Engine() *gin.Engine {
	return h.engine
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestOrigin := c.Request.Header.Get("Origin")
		if origin == "*" && requestOrigin != "" {
			c.Header("Access-Control-Allow-Origin", requestOrigin)
		} else {
			c.Header("Access-Control-Allow-Origin", origin)
		}
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
