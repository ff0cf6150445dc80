package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gauravfit/coach-app/internal/api"
	"gauravfit/coach-app/internal/coach"
	"gauravfit/coach-app/internal/config"
	"gauravfit/coach-app/internal/repository"
	"gauravfit/coach-app/internal/repository/mongo"
	"gauravfit/coach-app/internal/service"
	"gauravfit/coach-app/internal/session"
	"gauravfit/coach-app/internal/storage"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Starting fitness coach server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.WithError(err).Fatal("Could not load config")
	}
	logrus.Info("Configuration loaded.")

	// --- Session Persistence (optional) ---
	var sessionRepo repository.SessionRepository
	if cfg.Database.URI != "" {
		dbClient, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			logrus.WithError(err).Fatal("Could not connect to MongoDB")
		}
		defer func() {
			logrus.Info("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				logrus.WithError(err).Error("Failed to disconnect MongoDB")
			}
		}()
		sessionRepo = mongo.NewMongoSessionRepository(dbClient.Database(cfg.Database.Name))
		logrus.Info("Session persistence enabled.")
	} else {
		logrus.Info("No database URI configured, running memory-only.")
	}

	// --- File Storage (optional) ---
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to initialize S3 storage")
		}
		logrus.Info("File storage initialized.")
	} else {
		logrus.Info("No S3 bucket configured, export upload disabled.")
	}

	// --- Core Components ---
	sessions := session.NewManager(sessionRepo)
	provider := coach.NewGeminiClient(cfg.Gemini)
	if !provider.Configured() {
		logrus.Warn("No Gemini API key configured, coach endpoints will degrade.")
	}
	authService := service.NewAuthService(cfg.Auth.PasswordHash, cfg.JWT.Secret, cfg.JWT.Expiration)

	// --- Gin Engine and Routes ---
	router := gin.Default()
	api.SetupRoutes(router, cfg.JWT.Secret, authService, sessions, provider, fileStorage)

	// --- HTTP Server ---
	// The write timeout must cover a full streamed coach reply.
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	logrus.WithField("address", cfg.Server.Address).Info("Server starting")

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.WithError(err).Fatal("Server forced to shutdown")
	}

	logrus.Info("Server exiting.")
}
