package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/config"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/db"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/handler"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/middleware"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/repository"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/router"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "signval-api")

	ctx := context.Background()
	pool, dbReady, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid database configuration")
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	// Repositories
	handSignRepo := repository.NewHandSignRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)
	resultRepo := repository.NewResultRepo(pool)

	// Services
	authSvc := service.NewAuthService(service.DefaultUsers)
	handSignSvc := service.NewHandSignService(handSignRepo, cache)
	videoSvc := service.NewVideoService(videoRepo)
	submitSvc := service.NewSubmitService(resultRepo, cache)
	progressSvc := service.NewProgressService(resultRepo, videoRepo, cache)

	// Schema and seeding run once, on the connection-ready event. When the
	// database was down at boot, a background poll fires the same path as
	// soon as it answers. Seeding races with serving on purpose: submissions
	// arriving before it finishes are accepted without a referential check.
	bootstrapStore := func() {
		if err := db.CreateSchema(ctx, pool); err != nil {
			log.Error().Err(err).Msg("schema creation failed")
			return
		}
		service.NewSeedService(cfg.DataDir, handSignRepo, videoRepo, cache).Run(ctx)
	}
	if dbReady {
		go bootstrapStore()
	} else {
		go db.AwaitReady(ctx, 10*time.Second, pool.Ping, bootstrapStore)
	}

	handler.InitMetrics(pool)

	app := fiber.New(fiber.Config{
		AppName:      "SignVal API",
		ServerHeader: "SignVal",
	})

	h := &router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc),
		HandSign: handler.NewHandSignHandler(handSignSvc),
		Video:    handler.NewVideoHandler(videoSvc),
		Submit:   handler.NewSubmitHandler(submitSvc),
		Progress: handler.NewProgressHandler(progressSvc),
		Health:   handler.NewHealthHandler(pool, cache.Client()),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	log.Info().Str("port", cfg.Port).Bool("db_ready", dbReady).Msg("signval backend starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
