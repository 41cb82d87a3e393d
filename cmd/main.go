package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	authhttp "estatehub/internal/auth/adapter/http"
	"estatehub/internal/auth/adapter/security"
	"estatehub/internal/auth/config"
	authusecase "estatehub/internal/auth/usecase"
	bohttp "estatehub/internal/backoffice/adapter/http"
	"estatehub/internal/backoffice/usecase"
	"estatehub/internal/integrity"
	"estatehub/internal/notify"
	"estatehub/internal/shared/logger"
	"estatehub/internal/store"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ServerConfig holds the HTTP server and data-directory settings.
type ServerConfig struct {
	Host    string `env:"SERVER_HOST" envDefault:"localhost"`
	Port    string `env:"SERVER_PORT" envDefault:"3000"`
	DataDir string `env:"DATA_DIR" envDefault:"./data"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	serverCfg := &ServerConfig{}
	if err := env.Parse(serverCfg); err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	appLogger := logger.NewLogger()
	appLogger.Info("Application configuration loaded")

	storeLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize store logger: %v", err)
	}
	defer storeLogger.Sync()

	dataStore, err := store.New(serverCfg.DataDir, storeLogger)
	if err != nil {
		log.Fatalf("Failed to open data directory %s: %v", serverCfg.DataDir, err)
	}

	// Split a pre-migration combined database file, if one is present.
	if err := dataStore.ImportLegacy(filepath.Join(serverCfg.DataDir, "db.json")); err != nil {
		log.Fatalf("Failed to import legacy database: %v", err)
	}

	authCfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load auth configuration: %v", err)
	}

	tokenSvc, err := security.NewJWTokenService(authCfg)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}

	codec := store.NewCodec()
	identity := authusecase.NewIdentityUsecase(dataStore, codec, tokenSvc, authCfg, appLogger)
	im := integrity.NewManager(dataStore, storeLogger)

	handler := bohttp.NewHandler(bohttp.Services{
		Identity:   identity,
		Properties: usecase.NewPropertyService(dataStore, codec, appLogger),
		Agents:     usecase.NewAgentService(dataStore, codec, appLogger),
		Reviews:    usecase.NewReviewService(dataStore, codec, appLogger),
		Buyers:     usecase.NewBuyerService(dataStore, codec, im, appLogger),
		Guides:     usecase.NewGuideService(dataStore, codec, im, appLogger),
		Inbox:      usecase.NewInboxService(dataStore, codec, appLogger),
		Content:    usecase.NewContentService(dataStore, codec, appLogger),
		Settings:   usecase.NewSettingsService(dataStore, codec, appLogger),
		Notify:     notify.NewAggregator(dataStore),
		Log:        appLogger,
	})

	app := fiber.New(fiber.Config{
		AppName:      "Estatehub API v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			appLogger.Errorf("HTTP error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal error",
			})
		},
	})

	mw := authhttp.NewAuthMiddleware(identity)
	app.Use(recover.New())
	app.Use(mw.CORS())
	app.Use(mw.RequestID())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "HEALTHY",
			"timestamp": time.Now().UTC(),
		})
	})

	handler.Register(app, mw)
	appLogger.Info("Routes registered")

	serverAddr := fmt.Sprintf("%s:%s", serverCfg.Host, serverCfg.Port)
	appLogger.Infof("Starting HTTP server on %s", serverAddr)

	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			log.Fatalf("Server startup failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Infof("Received shutdown signal: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("Server forced to shutdown: %v", err)
		}
		appLogger.Info("HTTP server stopped")
	}
}
