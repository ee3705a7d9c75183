package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	completionrepo "inmo_crm_backend/internal/completion/repository"
	completionsvc "inmo_crm_backend/internal/completion/service"
	"inmo_crm_backend/internal/email"
	"inmo_crm_backend/internal/scheduler"
	tasksrepo "inmo_crm_backend/internal/tasks/repository"
	taskssvc "inmo_crm_backend/internal/tasks/service"
	"inmo_crm_backend/platform/config"
	"inmo_crm_backend/platform/db"
	"inmo_crm_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	var sender email.Sender = email.NoopSender{}
	if cfg.GetEmailEnabled() {
		sender = email.NewSMTPSender(cfg)
	} else {
		log.Warn("SMTP not configured; urgent digests will be dropped")
	}

	completionService := completionsvc.New(completionrepo.New(pool), log)
	tasksService := taskssvc.New(tasksrepo.New(pool), log)

	dispatcher, err := scheduler.NewUrgentDigestDispatcher(cfg, pool, log)
	if err != nil {
		log.Error("failed to initialize digest dispatcher", "error", err)
		panic("failed to initialize digest dispatcher: " + err.Error())
	}
	defer func() { _ = dispatcher.Close() }()
	go dispatcher.Run(ctx)

	worker, err := scheduler.NewWorker(cfg, pool, completionService, tasksService, sender, log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	worker.Run(ctx)
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
