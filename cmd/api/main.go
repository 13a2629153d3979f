package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"golang.org/x/crypto/bcrypt"

	"blog-api/api/handlers"
	"blog-api/api/router"
	"blog-api/auth"
	"blog-api/config"
	"blog-api/db"
	"blog-api/logger"
	"blog-api/ratelimit"
	"blog-api/repositories"
	"blog-api/services"
)

// @title           Blog API
// @version         1.0
// @description     Users, authentication and blog publishing.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Errorf("failed to load config: %v", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB
	client, database, err := db.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	// Redis is optional
	rdb, err := ratelimit.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Log.Errorf("failed to initialize Redis: %v", err)
		os.Exit(1)
	}

	tokens, err := auth.NewJWTManager(cfg.Auth)
	if err != nil {
		logger.Log.Errorf("failed to initialize JWT: %v", err)
		os.Exit(1)
	}
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)

	blogRepo := repositories.NewBlogRepository(database)
	userRepo := repositories.NewUserRepository(database)

	deps := router.Deps{
		Blogs:   services.NewBlogService(blogRepo, userRepo),
		Users:   services.NewUserService(userRepo, hasher),
		Auth:    services.NewAuthService(userRepo, hasher, tokens),
		Tokens:  tokens,
		DB:      handlers.PingerFunc(func(ctx context.Context) error { return db.Ping(ctx, client) }),
		Contact: cfg.AuthorContact,

		LoginLimiter:  newLimiter(ctx, rdb, "login", cfg.RateLimit.LoginRequests, cfg.RateLimit.Window),
		PublicLimiter: newLimiter(ctx, rdb, "public", cfg.RateLimit.PublicRequests, cfg.RateLimit.Window),
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(router.New(deps)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("starting api server", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("api server error: %v", err)
			cancel()
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Log.Info("received shutdown signal, shutting down api server...")
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 15*time.Second)
	defer stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("api server shutdown: %v", err)
	}
	cancel()
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Log.Errorf("mongo disconnect: %v", err)
	}

	logger.Log.Info("api server stopped")
}

// newLimiter returns nil when budget disables limiting. Redis counters are
// used when a client is configured, otherwise an in-process limiter whose
// cleanup runs until ctx ends.
func newLimiter(ctx context.Context, rdb *redis.Client, prefix string, budget int, window time.Duration) ratelimit.Limiter {
	if budget <= 0 {
		return nil
	}
	if rdb != nil {
		return ratelimit.NewRedisLimiter(rdb, prefix, budget, window)
	}
	l := ratelimit.NewMemoryLimiter(budget, window)
	go l.Run(ctx)
	return l
}
