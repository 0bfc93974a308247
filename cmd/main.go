package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/NajatBouz/study-organizer/internal/api/http/router"
	"github.com/NajatBouz/study-organizer/internal/config"
	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/repository/postgres"
	"github.com/NajatBouz/study-organizer/internal/service"
	storage "github.com/NajatBouz/study-organizer/internal/storage/minio"
	"github.com/NajatBouz/study-organizer/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	linkRepo := postgres.NewLinkRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	folderRepo := postgres.NewFolderRepository(db)
	fileRepo := postgres.NewFileRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	authService := service.NewAuth(userRepo, fileRepo, storageClient, tokenManager, logger)
	contactService := service.NewContacts(contactRepo, logger)
	linkService := service.NewLinks(linkRepo, logger)
	eventService := service.NewEvents(eventRepo, logger)
	folderService := service.NewFolders(folderRepo, logger)
	fileService := service.NewFiles(fileRepo, folderRepo, storageClient, logger)
	searchService := service.NewSearch(contactRepo, linkRepo, eventRepo, folderRepo, logger)

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.HTTP.BodyLimit,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutS) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutS) * time.Second,
	})

	r := router.New(
		authService,
		contactService,
		linkService,
		eventService,
		folderService,
		fileService,
		searchService,
		tokenManager,
		logger,
		cfg.DevMode,
		cfg.HTTP.FrontendURL,
	)
	r.Register(app)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		addr := fmt.Sprintf(":%s", cfg.HTTP.Port)
		logger.Info("Starting server on", "address", addr)
		if err := app.Listen(addr); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
