package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"modelarena/internal/api"
	"modelarena/internal/config"
	"modelarena/internal/database"
	"modelarena/internal/llm"
	"modelarena/internal/repository"
	"modelarena/internal/service"
)

// App bundles the long-lived resources of a running server.
type App struct {
	Config *config.Config
	DB     *sql.DB
	Server *http.Server
}

// NewApp wires every dependency in order: database, repository, upstream
// provider, services, handlers, router, server. Configuration is injected
// here once; nothing reads the environment at request time.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := repository.NewSQLiteRepository(db)
	provider := llm.NewOpenRouterProvider(cfg.UpstreamURL, cfg.UpstreamAPIKey, cfg.UpstreamTimeout())

	chatService := service.NewChatService(provider, cfg)
	compareService := service.NewCompareService(provider, cfg)
	modelService := service.NewModelService(cfg)
	accountService := service.NewAccountService(repo)

	chatHandler := api.NewChatHandler(chatService, compareService)
	modelHandler := api.NewModelHandler(modelService)
	accountHandler := api.NewAccountHandler(accountService)
	router := api.NewRouter(chatHandler, modelHandler, accountHandler, cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      cfg.UpstreamTimeout() + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{Config: cfg, DB: db, Server: server}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	if cfg.UpstreamAPIKey == "" {
		slog.Warn("No upstream API key configured; chat and compare requests will fail with a configuration error.")
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to assemble application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()
	slog.Info("Successfully connected to SQLite database.")

	slog.Info("Starting server", "port", cfg.AppPort, "default_model", cfg.DefaultModel)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
