// Command rbuid is the RBUI scoring service. It serves the scoring and
// platform API, Prometheus metrics, and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rbui/rbui/internal/api"
	"github.com/rbui/rbui/internal/logging"
	"github.com/rbui/rbui/internal/reports"
	"github.com/rbui/rbui/internal/store"
	"github.com/rbui/rbui/pkg/config"
	"github.com/rbui/rbui/pkg/scoring"
)

// loadConfig reads RBUI_CONFIG (or .rbui/config.yaml from the working
// directory up) and applies environment overrides.
func loadConfig() (*config.Config, error) {
	path := os.Getenv("RBUI_CONFIG")
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.FindConfigFile(wd)
		}
	}
	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *config.Config) {
	cfg.Server.Port = envIntOrDefault("PORT", cfg.Server.Port)
	cfg.Server.APIKey = envOrDefault("RBUI_API_KEY", cfg.Server.APIKey)
	cfg.Server.ResultCacheSize = envIntOrDefault("RESULT_CACHE_SIZE", cfg.Server.ResultCacheSize)
	cfg.Server.LogLevel = envOrDefault("LOG_LEVEL", cfg.Server.LogLevel)
	cfg.Database.URL = envOrDefault("DATABASE_URL", cfg.Database.URL)

	cfg.Reports.Backend = envOrDefault("REPORT_BACKEND", cfg.Reports.Backend)
	cfg.Reports.LocalDir = envOrDefault("LOCAL_STORAGE_PATH", cfg.Reports.LocalDir)
	cfg.Reports.Bucket = envOrDefault("S3_BUCKET", cfg.Reports.Bucket)
	cfg.Reports.Bucket = envOrDefault("GCS_BUCKET", cfg.Reports.Bucket)
	cfg.Reports.Region = envOrDefault("S3_REGION", cfg.Reports.Region)
	cfg.Reports.Endpoint = envOrDefault("S3_ENDPOINT", cfg.Reports.Endpoint)
	cfg.Reports.AccessKey = envOrDefault("S3_ACCESS_KEY", cfg.Reports.AccessKey)
	cfg.Reports.SecretKey = envOrDefault("S3_SECRET_KEY", cfg.Reports.SecretKey)
}

func main() {
	logger := logging.Setup("rbuid", os.Getenv("RBUI_ENV"), envOrDefault("LOG_LEVEL", "info"))

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger = logging.Setup("rbuid", os.Getenv("RBUI_ENV"), cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Persistence is optional: without a database only POST /api/v1/score works.
	var db *sql.DB
	var st api.PlatformStore
	if cfg.Database.URL != "" {
		db, err = store.Open(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("connect database", slog.Any("error", err))
			os.Exit(1)
		}
		defer db.Close()
		version, err := store.AutoMigrate(db)
		if err != nil {
			logger.Error("migrate database", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("database schema ready", slog.Uint64("version", uint64(version)))
		st = store.NewService(db)
	} else {
		logger.Warn("DATABASE_URL not set; platform and run routes disabled")
	}

	rep, err := reports.New(ctx, cfg.Reports)
	if err != nil {
		logger.Error("create report store", slog.Any("error", err))
		os.Exit(1)
	}

	weights := scoring.Defaults().WithOverrides(cfg.Scoring.Weights)
	if cfg.Scoring.DefaultInspectionInterval > 0 {
		weights.DefaultInspectionInterval = cfg.Scoring.DefaultInspectionInterval
	}
	engine := scoring.NewEngine(scoring.CalculatorsWithWeights(weights), scoring.WithLogger(logger))

	handler := api.NewHandler(engine, st, rep, api.NewResultCache(cfg.Server.ResultCacheSize), api.NewMetrics(), logger)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, cfg.Server.APIKey)
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           api.CORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting rbuid", slog.Int("port", cfg.Server.Port), slog.String("reports", cfg.Reports.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", slog.Any("error", err))
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				http.Error(w, "database unreachable", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envIntOrDefault(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}
