package container

import (
	"context"
	"log"
	"time"

	"posterdeck-backend/internal/config"
	infraCache "posterdeck-backend/internal/infrastructure/cache"
	"posterdeck-backend/internal/infrastructure/database"
	"posterdeck-backend/internal/infrastructure/storage"
	"posterdeck-backend/pkg/cache"
	"posterdeck-backend/pkg/logger"

	"posterdeck-backend/internal/domains/comment"
	commentHandler "posterdeck-backend/internal/domains/comment/handler"
	commentRepo "posterdeck-backend/internal/domains/comment/repository"
	commentService "posterdeck-backend/internal/domains/comment/service"
	"posterdeck-backend/internal/domains/poster"
	posterHandler "posterdeck-backend/internal/domains/poster/handler"
	posterRepo "posterdeck-backend/internal/domains/poster/repository"
	posterService "posterdeck-backend/internal/domains/poster/service"
	uploadHandler "posterdeck-backend/internal/domains/upload/handler"
	uploadService "posterdeck-backend/internal/domains/upload/service"
)

// Container is the root of the dependency graph, built once at process
// start in dependency order: config → infrastructure → repositories →
// services → handlers. Both the API and the worker build one.
type Container struct {
	Config  *config.Config
	DB      *database.MongoDB
	Cache   cache.Cache
	Storage *storage.MinIOStorage

	PosterRepo  poster.Repository
	CommentRepo comment.Repository

	PosterService  poster.Service
	CommentService comment.Service
	UploadService  *uploadService.UploadService

	PosterHandler  *posterHandler.PosterHandler
	CommentHandler *commentHandler.CommentHandler
	UploadHandler  *uploadHandler.UploadHandler

	redis *infraCache.RedisCache
}

func NewContainer() (*Container, error) {
	c := &Container{}

	// 1. Config — nothing runs on a half-configured process.
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	// 2. Infrastructure
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewMongoDB(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	c.DB = db

	st, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, err
	}
	c.Storage = st

	// Redis is optional: a dead cache degrades to direct store reads,
	// it never takes the API down.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("⚠️  Redis unavailable, running without cache: %v", err)
	} else {
		c.Cache = redisCache
		c.redis = redisCache
	}

	// 3. Repositories
	c.PosterRepo = posterRepo.NewMongoPosterRepository(db)
	c.CommentRepo = commentRepo.NewMongoCommentRepository(db)

	// 4. Services
	c.PosterService = posterService.NewPosterService(c.PosterRepo, c.Cache)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.PosterRepo)
	c.UploadService = uploadService.NewUploadService(st, cfg.MinIO.PresignExpiry)

	// 5. Handlers
	c.PosterHandler = posterHandler.NewPosterHandler(c.PosterService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)

	return c, nil
}

func (c *Container) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			logger.Error("close mongo", err)
		}
	}
}
