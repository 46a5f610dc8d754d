package main

import (
	"SkyVault/internal/authclient"
	"SkyVault/internal/config"
	"SkyVault/internal/handlers"
	"SkyVault/internal/middleware"
	"SkyVault/internal/repo"
	"SkyVault/internal/service"
	"SkyVault/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func newLogger(format string) (*zap.Logger, error) {
	if format == "json" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	cfg := config.NewConfig()

	logger, err := newLogger(cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	if cfg.AutoMigrate {
		if err := repo.Migrate(gormDB); err != nil {
			sugar.Fatalw("failed to migrate database", "error", err)
		}
	}

	store, err := storage.NewS3Store(ctx, storage.S3Config{
		Bucket:          cfg.StorageBucket,
		Region:          cfg.StorageRegion,
		Endpoint:        cfg.StorageEndpoint,
		AccessKeyID:     cfg.StorageAccessKeyID,
		SecretAccessKey: cfg.StorageSecretAccessKey,
		PublicURL:       cfg.StoragePublicURL,
	})
	if err != nil {
		sugar.Fatalw("failed to initialize object store", "error", err)
	}

	if cfg.AuthURL == "" {
		sugar.Fatalw("AUTH_URL is required")
	}
	authClient := authclient.NewClient(cfg.AuthURL, cfg.AuthAnonKey, cfg.AuthTimeout)
	var verifier middleware.TokenVerifier = authClient
	if cfg.AuthJWTSecret != "" {
		verifier = authclient.NewJWTVerifier(cfg.AuthJWTSecret)
	}

	folderRepo := repo.NewFolderRepository(gormDB)
	fileRepo := repo.NewFileRepository(gormDB)
	shareRepo := repo.NewShareRepository(gormDB)

	driveService := service.NewDriveService(folderRepo, fileRepo, shareRepo, store, sugar)
	shareService := service.NewShareService(fileRepo, shareRepo, sugar)
	authService := service.NewAuthService(authClient, cfg.FrontendURL)

	h := handlers.NewHandler(driveService, shareService, authService, verifier, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infow("Starting server", "addr", srv.Addr, "url", cfg.ServerURL)
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"AuthURL", cfg.AuthURL,
		"LocalJWT", cfg.AuthJWTSecret != "",
		"StorageBucket", cfg.StorageBucket,
		"StorageEndpoint", cfg.StorageEndpoint,
		"UploadMaxMB", cfg.UploadMaxMB,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		sugar.Infow("Shutting down")
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Graceful shutdown failed", "error", err)
		}
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
