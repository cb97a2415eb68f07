package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittrack/internal/api"
	"fittrack/internal/config"
	"fittrack/internal/logging"
	"fittrack/internal/repository/mongo"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Local development keeps secrets in a .env file; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Logging.File,
		LogToStdout:   cfg.Logging.ToStdout,
		LogLevel:      cfg.Logging.Level,
		LogFormatJSON: cfg.Logging.FormatJSON,
	})
	logrus.Info("starting fittrack server")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logrus.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() {
		logrus.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logrus.Errorf("failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logrus.Info("database connection established")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureUserIndexes(ctx, appDB.Collection("users")); err != nil {
			logrus.Warnf("failed to create user indexes: %v", err)
		}
		if err := mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts")); err != nil {
			logrus.Warnf("failed to create workout indexes: %v", err)
		}
	}()

	// --- Initialize Repositories & Services ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(userRepo)
	workoutService := service.NewWorkoutService(workoutRepo)
	reportService := service.NewReportService(workoutRepo)

	// --- Initialize Gin Engine ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(api.RequestIDMiddleware(), api.RequestLogMiddleware(), gin.Recovery())

	api.SetupRoutes(router, authService, profileService, workoutService, reportService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen and serve: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}

	logrus.Info("server exited")
}
