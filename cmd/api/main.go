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

	"golang.org/x/sync/errgroup"

	"github.com/baharkarakas/timebank-backend/internal/api"
	"github.com/baharkarakas/timebank-backend/internal/auth"
	"github.com/baharkarakas/timebank-backend/internal/config"
	"github.com/baharkarakas/timebank-backend/internal/db"
	"github.com/baharkarakas/timebank-backend/internal/logger"
	"github.com/baharkarakas/timebank-backend/internal/metrics"
	"github.com/baharkarakas/timebank-backend/internal/repository/postgres"
	redisrepo "github.com/baharkarakas/timebank-backend/internal/repository/redis"
	"github.com/baharkarakas/timebank-backend/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			return err
		}
		log.Info("migrations applied")
	}

	rdb, err := redisrepo.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()

	repos := postgres.NewRepositories(pool)
	revocations := redisrepo.NewRevocationsRepo(rdb)
	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	authSvc := services.NewAuthService(repos.Users, repos.Balances, revocations, tm)
	healthSvc := services.NewHealthService(map[string]services.Check{
		"postgres": pool.Ping,
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Logger:        log,
		CORSOrigins:   cfg.CORSOrigins,
		Authenticator: authSvc,
		Users:         services.NewUserService(repos.Store),
		Auth:          authSvc,
		Balances:      services.NewBalanceService(repos.Balances, repos.Users),
		Health:        healthSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", slog.String("port", cfg.HTTPPort), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
