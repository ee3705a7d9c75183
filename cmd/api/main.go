package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inmo_crm_backend/internal/completion"
	appdb "inmo_crm_backend/internal/db"
	apphttp "inmo_crm_backend/internal/http"
	"inmo_crm_backend/internal/http/router"
	"inmo_crm_backend/internal/operations"
	"inmo_crm_backend/internal/publishing"
	"inmo_crm_backend/internal/scheduler"
	"inmo_crm_backend/internal/tasks"
	"inmo_crm_backend/platform/config"
	"inmo_crm_backend/platform/db"
	"inmo_crm_backend/platform/httpkit"
	"inmo_crm_backend/platform/logger"
	"inmo_crm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, appdb.Migrations, appdb.MigrationsDir)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	val := validator.New()

	publishScheduler, closeScheduler := initPublishScheduler(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	operationsModule := operations.NewModule(pool, val, log)
	tasksModule := tasks.NewModule(pool, val, log)
	completionModule := completion.NewModule(pool, log)
	publishingModule := publishing.NewModule(pool, completionModule.Service(), publishScheduler, val, log)

	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Health:  pool,
		Metrics: httpkit.NewMetrics(),
		Modules: []apphttp.Module{
			operationsModule,
			tasksModule,
			completionModule,
			publishingModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initPublishScheduler(cfg config.SchedulerConfig, log *logger.Logger) (scheduler.PublishScheduler, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; portal publishing disabled")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize scheduler client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
