package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/asset-inventory/internal/auth"
	"github.com/rogerio-castellano/asset-inventory/internal/config"
	"github.com/rogerio-castellano/asset-inventory/internal/db"
	"github.com/rogerio-castellano/asset-inventory/internal/digest"
	api "github.com/rogerio-castellano/asset-inventory/internal/http"
	"github.com/rogerio-castellano/asset-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/asset-inventory/internal/http/rate_limiter"
	"github.com/rogerio-castellano/asset-inventory/internal/logger"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
	"github.com/rogerio-castellano/asset-inventory/internal/redissvc"
	"github.com/rogerio-castellano/asset-inventory/internal/repo"
	"github.com/rogerio-castellano/asset-inventory/internal/telemetry"
	"go.uber.org/zap"
)

type repositories struct {
	assets  repo.AssetRepository
	catalog repo.CatalogRepository
	users   repo.UserRepository
	redis   *redissvc.RedisService
	closers []func() error
}

// @title Asset Inventory API
// @version 1.0
// @description REST API for the IT asset inventory and its dashboards.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range repos.closers {
			_ = c()
		}
	}()

	if err := seedAdmin(repos.users, cfg.Auth, log); err != nil {
		return err
	}

	auth.Configure(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	rl.Configure(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go rl.StartVisitorCleanupLoop(ctx, cfg.RateLimit.SweepInterval, cfg.RateLimit.IdleTimeout)

	handlers.SetAssetRepo(repos.assets)
	handlers.SetCatalogRepo(repos.catalog)
	handlers.SetUserRepo(repos.users)
	handlers.SetLogger(log.Named("handlers"))
	api.SetLogger(log.Named("http"))

	prometheus.MustRegister(telemetry.NewCollector(repos.assets))

	if cfg.Digest.Enabled {
		svc := digest.NewService(repos.assets, digest.NewSMTPMailer(cfg.SMTP), log.Named("digest"))
		if repos.redis != nil {
			svc.WithRedis(repos.redis)
		}
		go svc.Run(ctx, cfg.Digest.Hour)
	}

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: api.NewRouter(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.HTTP.Addr), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openRepositories(ctx context.Context, cfg *config.Config, log *zap.Logger) (*repositories, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		database, err := db.Connect(cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("could not connect to database: %w", err)
		}
		if cfg.Database.Migrate {
			if err := db.Migrate(database); err != nil {
				_ = database.Close()
				return nil, err
			}
		}
		log.Info("using postgres storage")
		return postgresRepositories(database), nil

	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("could not connect to redis: %w", err)
		}
		rs := redissvc.NewRedisService(rdb, context.Background(), cfg.Redis.KeyPrefix)
		log.Info("using redis storage", zap.String("addr", cfg.Redis.Addr))
		return &repositories{
			assets:  repo.NewRedisAssetRepository(rs),
			catalog: repo.NewRedisCatalogRepository(rs),
			users:   repo.NewInMemoryUserRepository(),
			redis:   rs,
			closers: []func() error{rdb.Close},
		}, nil

	default:
		log.Warn("using in-memory storage, data is lost on restart")
		return &repositories{
			assets:  repo.NewInMemoryAssetRepository(),
			catalog: repo.NewInMemoryCatalogRepository(),
			users:   repo.NewInMemoryUserRepository(),
		}, nil
	}
}

func postgresRepositories(database *sql.DB) *repositories {
	return &repositories{
		assets:  repo.NewPostgresAssetRepository(database),
		catalog: repo.NewPostgresCatalogRepository(database),
		users:   repo.NewPostgresUserRepository(database),
		closers: []func() error{database.Close},
	}
}

// seedAdmin creates the configured admin account unless it already exists.
func seedAdmin(users repo.UserRepository, cfg config.AuthConfig, log *zap.Logger) error {
	if cfg.AdminUser == "" || cfg.AdminPassword == "" {
		log.Warn("no admin password configured, skipping admin seed")
		return nil
	}
	if _, err := users.GetByUsername(cfg.AdminUser); err == nil {
		return nil
	} else if !errors.Is(err, repo.ErrUserNotFound) {
		return fmt.Errorf("could not look up admin user: %w", err)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	if _, err := users.CreateUser(models.User{Username: cfg.AdminUser, PasswordHash: hash, Role: "admin"}); err != nil {
		return fmt.Errorf("could not create admin user: %w", err)
	}
	log.Info("admin user created", zap.String("username", cfg.AdminUser))
	return nil
}
