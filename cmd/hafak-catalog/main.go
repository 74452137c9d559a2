package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Chimelu/hafak-surgicals-backend/internal/api"
	"github.com/Chimelu/hafak-surgicals-backend/internal/api/handlers"
	"github.com/Chimelu/hafak-surgicals-backend/internal/api/middleware"
	"github.com/Chimelu/hafak-surgicals-backend/internal/cache"
	"github.com/Chimelu/hafak-surgicals-backend/internal/config"
	"github.com/Chimelu/hafak-surgicals-backend/internal/health"
	"github.com/Chimelu/hafak-surgicals-backend/internal/keepalive"
	"github.com/Chimelu/hafak-surgicals-backend/internal/media"
	repository "github.com/Chimelu/hafak-surgicals-backend/internal/repositories"
	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
	"github.com/Chimelu/hafak-surgicals-backend/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	if err := cfg.Security.Validate(); err != nil {
		slog.Error("❌ Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repo, err := repository.New(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repo.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup; without it the catalog runs uncached and logins are not rate limited
	catalogCache := cache.NewNoopCache()
	var rateLimiter repository.RateLimitRepository

	if cfg.RedisConnect.Enabled() {
		redisClient, err := repository.NewRedisClient(ctx, cfg)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}

		catalogCache = cache.NewRedisCache(redisClient, &cfg.Cache)
		rateLimiter = repository.NewRateLimitRepo(redisClient, cfg.RateConfig)
	} else {
		slog.Warn("⚠️ REDIS_HOST not set, caching and login rate limiting disabled")
	}

	defer catalogCache.Close()

	// Media host setup
	uploader, err := media.NewUploader(cfg.Cloudinary)
	if err != nil {
		slog.Error("❌ Error configuring the media host", slog.String("error", err.Error()))
		os.Exit(1)
	}

	jwtKey := []byte(cfg.Security.JWTKey)

	userRepo := repository.NewUserRepo(repo.DB)
	categoryRepo := repository.NewCategoryRepo(repo.DB)
	equipmentRepo := repository.NewEquipmentRepo(repo.DB)

	equipmentService := service.NewEquipmentService(equipmentRepo, categoryRepo, uploader, catalogCache, cfg.Cache.DefaultTTL)
	categoryService := service.NewCategoryService(categoryRepo, equipmentRepo, catalogCache, cfg.Cache.DefaultTTL)
	authService := service.NewAuthService(userRepo, rateLimiter, jwtKey, cfg.Security.JWTExpiry())

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	router := api.NewRouter(api.Handlers{
		Equipment: handlers.NewEquipmentHandler(equipmentService),
		Category:  handlers.NewCategoryHandler(categoryService),
		Auth:      handlers.NewAuthHandler(authService),
		Health:    healthHandler.Handler(),
	}, authMiddleware)

	// Middleware chaining
	var handler http.Handler = router
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "hafak-catalog")

	// Setup http server
	server := http.Server{
		Addr:              cfg.HTTPServer.ListenAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", server.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	var keepAlive *keepalive.Job
	if cfg.KeepAlive.Enabled {
		keepAlive, err = keepalive.New(cfg.KeepAlive, cfg.PingURL())
		if err != nil {
			slog.Error("⚠️ Keep-alive disabled", slog.String("error", err.Error()))
		} else {
			keepAlive.Start(ctx)
		}
	}

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if keepAlive != nil {
		keepAlive.Stop()
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
