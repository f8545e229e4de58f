package api

import (
	"net/http"
	"time"

	authdelivery "clipstream-backend/internal/auth/delivery"
	authusecase "clipstream-backend/internal/auth/usecase"
	commentdelivery "clipstream-backend/internal/comment/delivery"
	commentusecase "clipstream-backend/internal/comment/usecase"
	likedelivery "clipstream-backend/internal/like/delivery"
	likeusecase "clipstream-backend/internal/like/usecase"
	"clipstream-backend/internal/middleware"
	subdelivery "clipstream-backend/internal/subscription/delivery"
	subusecase "clipstream-backend/internal/subscription/usecase"
	videodelivery "clipstream-backend/internal/video/delivery"
	videousecase "clipstream-backend/internal/video/usecase"
	"clipstream-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	cfg *config.Config,
	authUsecase authusecase.AuthUsecase,
	videoUsecase videousecase.VideoUsecase,
	commentUsecase commentusecase.CommentUsecase,
	likeUsecase likeusecase.LikeUsecase,
	subUsecase subusecase.SubscriptionUsecase,
) {
	authHandler := authdelivery.NewAuthHandler(authUsecase, int(cfg.RefreshTokenExpiry.Seconds()))
	videoHandler := videodelivery.NewVideoHandler(videoUsecase)
	commentHandler := commentdelivery.NewCommentHandler(commentUsecase)
	likeHandler := likedelivery.NewLikeHandler(likeUsecase)
	subHandler := subdelivery.NewSubscriptionHandler(subUsecase)

	authRequired := authdelivery.AuthMiddleware(authUsecase)
	authLimiter := middleware.RateLimitPerIP(cfg.RateLimitRPS, cfg.RateLimitBurst, 10_000, 10*time.Minute)

	api := r.Group("/api/v1")
	{
		api.GET("/healthcheck", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"statusCode": http.StatusOK, "data": gin.H{"status": "ok"}, "message": "healthy", "success": true})
		})

		users := api.Group("/users")
		{
			users.POST("/register", authLimiter, authHandler.Register)
			users.POST("/login", authLimiter, authHandler.Login)
			users.POST("/refresh-token", authLimiter, authHandler.RefreshToken)

			users.POST("/logout", authRequired, authHandler.Logout)
			users.POST("/change-password", authRequired, authHandler.ChangePassword)
			users.GET("/current-user", authRequired, authHandler.CurrentUser)
			users.PATCH("/update-account", authRequired, authHandler.UpdateAccount)
			users.PATCH("/avatar", authRequired, authHandler.UpdateAvatar)
			users.PATCH("/cover-image", authRequired, authHandler.UpdateCoverImage)
			users.GET("/c/:username", authRequired, authHandler.ChannelProfile)
			users.GET("/history", authRequired, videoHandler.WatchHistory)
		}

		videos := api.Group("/videos")
		videos.Use(authRequired)
		{
			videos.POST("", videoHandler.Upload)
			videos.GET("/:videoId", videoHandler.Get)
			videos.PATCH("/:videoId", videoHandler.UpdateDetails)
			videos.PATCH("/:videoId/thumbnail", videoHandler.UpdateThumbnail)
			videos.DELETE("/:videoId", videoHandler.Delete)
		}

		comments := api.Group("/comments")
		comments.Use(authRequired)
		{
			comments.POST("/video/:videoId", commentHandler.Create)
			comments.GET("/video/:videoId", commentHandler.List)
			comments.PATCH("/c/:commentId", commentHandler.Update)
			comments.DELETE("/c/:commentId", commentHandler.Delete)
		}

		likes := api.Group("/likes")
		likes.Use(authRequired)
		{
			likes.POST("/video/:videoId", likeHandler.ToggleVideoLike)
			likes.POST("/comment/:commentId", likeHandler.ToggleCommentLike)
		}

		subscriptions := api.Group("/subscriptions")
		subscriptions.Use(authRequired)
		{
			subscriptions.POST("/:channelId", subHandler.Subscribe)
			subscriptions.DELETE("/:channelId", subHandler.Unsubscribe)
			subscriptions.GET("/:channelId/status", subHandler.Status)
		}
	}
}
