package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"inner-story/backend/internal/api"
	"inner-story/backend/internal/config"
	"inner-story/backend/internal/database"
	"inner-story/backend/internal/llm"
	"inner-story/backend/internal/repository"
	"inner-story/backend/internal/service"
)

// App owns the wired dependency graph and the HTTP server. Exactly one of
// DB / Mongo is non-nil depending on which store the configuration selected.
type App struct {
	Server *http.Server
	DB     *sql.DB
	Mongo  *mongo.Client
}

// NewApp builds the full service from configuration: the backing store (Mongo
// when MONGO_URL is set, SQLite otherwise), the provider registry, the
// services, and the router.
func NewApp(cfg *config.Config) (*App, error) {
	a := &App{}

	var storyRepo repository.StoryRepository
	var statusRepo repository.StatusRepository

	if cfg.MongoURL != "" {
		client, db, err := database.InitMongo(context.Background(), cfg.MongoURL, cfg.DBName)
		if err != nil {
			return nil, fmt.Errorf("connect to mongo: %w", err)
		}
		a.Mongo = client
		storyRepo = repository.NewMongoStoryRepository(db)
		statusRepo = repository.NewMongoStatusRepository(db)
		slog.Info("Using MongoDB story store", "database", cfg.DBName)
	} else {
		db, err := database.InitSQLite(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite: %w", err)
		}
		a.DB = db
		storyRepo = repository.NewSQLiteStoryRepository(db)
		statusRepo = repository.NewSQLiteStatusRepository(db)
		slog.Info("Using SQLite story store", "path", cfg.DatabasePath)
	}

	providerClient := &http.Client{Timeout: time.Duration(cfg.ProviderTimeout) * time.Second}
	registry := llm.NewRegistry(providerClient)

	chatService := service.NewChatService(registry, config.NewProviderSnapshot)
	storyService := service.NewStoryService(storyRepo)
	statusService := service.NewStatusService(statusRepo)

	chatHandler := api.NewChatHandler(chatService)
	storyHandler := api.NewStoryHandler(storyService)
	statusHandler := api.NewStatusHandler(statusService)
	router := api.NewRouter(chatHandler, storyHandler, statusHandler)

	a.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // provider calls can run up to PROVIDER_TIMEOUT
		IdleTimeout:       120 * time.Second,
	}

	return a, nil
}

// Close releases whichever store connection the app holds.
func (a *App) Close() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
	if a.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Mongo.Disconnect(ctx); err != nil {
			slog.Error("Failed to disconnect mongo client", "error", err)
		}
	}
}

// Run loads configuration, wires the application, and serves until the
// listener fails. The return value is the process exit code.
func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	a, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}
	defer a.Close()

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
