// cmd/rsa-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/ingver/rsa/internal/api/rest/v1"
	"github.com/ingver/rsa/internal/app"
	"github.com/ingver/rsa/internal/domain/keys"
	"github.com/ingver/rsa/internal/infrastructure/cryptography"
	"github.com/ingver/rsa/internal/infrastructure/persistence"
	"github.com/ingver/rsa/internal/pkg/config"
	"github.com/ingver/rsa/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	keyGeneration keys.KeyGenerationService
	keyDownload   keys.KeyDownloadService
	keyMetadata   keys.KeyMetadataService
	transform     keys.TransformService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	log.Info("Database migrations completed successfully")

	keyRepo, err := persistence.NewGormKeyPairRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair repository: %w", err)
	}

	services, err := initializeApplicationServices(keyRepo, &cfg.KeyGen, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(keyRepo keys.KeyRecordRepository, settings *config.KeyGenSettings, log logger.Logger) (*appServices, error) {
	keyGenerationService, err := app.NewKeyGenerationService(keyRepo, settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generation service: %w", err)
	}

	keyDownloadService, err := app.NewKeyDownloadService(keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key download service: %w", err)
	}

	keyMetadataService, err := app.NewKeyMetadataService(keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key metadata service: %w", err)
	}

	// transforms never draw randomness, so the source only satisfies the constructor
	processor, err := cryptography.NewRSAProcessor(cryptography.NewTimeSeededRandomSource(), settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	transformService, err := app.NewTransformService(keyRepo, processor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transform service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		keyGeneration: keyGenerationService,
		keyDownload:   keyDownloadService,
		keyMetadata:   keyMetadataService,
		transform:     transformService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r,
		deps.services.keyGeneration,
		deps.services.keyDownload,
		deps.services.keyMetadata,
		deps.services.transform,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info(fmt.Sprintf("Received signal %v, initiating graceful shutdown", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
