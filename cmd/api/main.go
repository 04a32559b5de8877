package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/collections-service/internal/api/http"
	"github.com/spec-kit/collections-service/internal/api/http/handlers"
	"github.com/spec-kit/collections-service/internal/auth"
	"github.com/spec-kit/collections-service/internal/cache"
	"github.com/spec-kit/collections-service/internal/config"
	"github.com/spec-kit/collections-service/internal/events"
	"github.com/spec-kit/collections-service/internal/observability"
	"github.com/spec-kit/collections-service/internal/persistence"
	"github.com/spec-kit/collections-service/internal/repository"
	"github.com/spec-kit/collections-service/internal/service"
	"github.com/spec-kit/collections-service/internal/storage"
	"github.com/spec-kit/collections-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var uploader storage.Uploader
	if cfg.Storage.AccessKey != "" {
		uploader, err = storage.NewS3Uploader(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("failed to init object storage", zap.Error(err))
		}
	} else {
		logger.Warn("S3_ACCESS_KEY not provided; file uploads disabled")
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	collectionRepo := repository.NewCollectionRepository(pool)
	itemRepo := repository.NewItemRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	collectionCache := cache.NewCollectionCache(redis.Client, logger)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	collectionService := service.NewCollectionService(collectionRepo, categoryRepo, collectionCache, dispatcher)
	itemService := service.NewItemService(itemRepo, collectionRepo, dispatcher)
	categoryService := service.NewCategoryService(categoryRepo)
	userService := service.NewUserService(userRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger)

	worker.StartNotificationWorker(notificationService)

	guard := auth.NewGuard(authService.TokenManager(), userRepo, logger)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:        handlers.NewAuthHandler(authService),
		Collections: handlers.NewCollectionsHandler(collectionService, uploader),
		Items:       handlers.NewItemsHandler(itemService, uploader),
		Categories:  handlers.NewCategoriesHandler(categoryService),
		Users:       handlers.NewUsersHandler(userService),
		Guard:       guard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
