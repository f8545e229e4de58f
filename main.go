package main

import (
	api "clipstream-backend/cmd/api"
	authdomain "clipstream-backend/internal/auth/domain"
	authrepo "clipstream-backend/internal/auth/repository"
	"clipstream-backend/internal/auth/token"
	authusecase "clipstream-backend/internal/auth/usecase"
	commentdomain "clipstream-backend/internal/comment/domain"
	commentrepo "clipstream-backend/internal/comment/repository"
	commentusecase "clipstream-backend/internal/comment/usecase"
	likedomain "clipstream-backend/internal/like/domain"
	likerepo "clipstream-backend/internal/like/repository"
	likeusecase "clipstream-backend/internal/like/usecase"
	subdomain "clipstream-backend/internal/subscription/domain"
	subrepo "clipstream-backend/internal/subscription/repository"
	subusecase "clipstream-backend/internal/subscription/usecase"
	videodomain "clipstream-backend/internal/video/domain"
	videorepo "clipstream-backend/internal/video/repository"
	videousecase "clipstream-backend/internal/video/usecase"
	"clipstream-backend/pkg/config"
	"clipstream-backend/pkg/database"
	"clipstream-backend/pkg/logger"
	"clipstream-backend/pkg/media"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.Must(cfg.LogLevel)
	defer log.Sync()

	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&authdomain.User{},
		&videodomain.Video{},
		&videodomain.WatchHistoryEntry{},
		&commentdomain.Comment{},
		&likedomain.Like{},
		&subdomain.Subscription{},
	); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	uploader, err := media.NewS3Uploader(cfg)
	if err != nil {
		log.Fatal("failed to initialize media uploader", zap.Error(err))
	}

	// Repositories
	userRepository := authrepo.NewUserRepository(db)
	videoRepository := videorepo.NewVideoRepository(db)
	commentRepository := commentrepo.NewCommentRepository(db)
	likeRepository := likerepo.NewLikeRepository(db)
	subRepository := subrepo.NewSubscriptionRepository(db)

	// Use cases
	tokenService := token.NewService(cfg)
	subUc := subusecase.NewSubscriptionUsecase(subRepository)
	authUc := authusecase.NewAuthUsecase(userRepository, tokenService, uploader, api.NewSubscriptionReader(subUc))
	videoUc := videousecase.NewVideoUsecase(videoRepository, uploader)
	commentUc := commentusecase.NewCommentUsecase(commentRepository, videoRepository)
	likeUc := likeusecase.NewLikeUsecase(likeRepository, videoRepository, commentRepository)

	handler := api.NewHandler(cfg, log, authUc, videoUc, commentUc, likeUc, subUc)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
