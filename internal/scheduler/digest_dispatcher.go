package scheduler

import (
	"context"
	"fmt"
	"time"

	"inmo_crm_backend/platform/config"
	"inmo_crm_backend/platform/logger"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

// digestHour is the local hour at which the urgent-task digest goes out.
const digestHour = 8

// UrgentDigestDispatcher enqueues one digest task per subscribed tenant
// every morning. Tenants subscribe by setting digest_email on their
// organization.
type UrgentDigestDispatcher struct {
	client *asynq.Client
	queue  string
	pool   *pgxpool.Pool
	log    *logger.Logger
}

func NewUrgentDigestDispatcher(cfg config.SchedulerConfig, pool *pgxpool.Pool, log *logger.Logger) (*UrgentDigestDispatcher, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	return &UrgentDigestDispatcher{
		client: asynq.NewClient(opt),
		queue:  queue,
		pool:   pool,
		log:    log,
	}, nil
}

func (d *UrgentDigestDispatcher) Close() error {
	if d == nil || d.client == nil {
		return nil
	}
	return d.client.Close()
}

func (d *UrgentDigestDispatcher) Run(ctx context.Context) {
	if d == nil || d.client == nil || d.pool == nil {
		return
	}

	for {
		wait := untilNextRun(time.Now())
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		if err := d.dispatch(ctx); err != nil {
			d.log.Warn("urgent digest dispatch failed", "error", err)
		}
	}
}

func (d *UrgentDigestDispatcher) dispatch(ctx context.Context) error {
	rows, err := d.pool.Query(ctx, `
		SELECT id, digest_email
		FROM organizations
		WHERE digest_email IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("digest recipients: %w", err)
	}
	defer rows.Close()

	type recipient struct {
		tenantID string
		email    string
	}
	recipients := make([]recipient, 0)
	for rows.Next() {
		var r recipient
		if err := rows.Scan(&r.tenantID, &r.email); err != nil {
			return fmt.Errorf("digest recipients: %w", err)
		}
		recipients = append(recipients, r)
	}
	if rows.Err() != nil {
		return fmt.Errorf("digest recipients: %w", rows.Err())
	}

	for _, r := range recipients {
		task, err := NewUrgentDigestTask(UrgentDigestPayload{
			TenantID:  r.tenantID,
			Recipient: r.email,
		})
		if err != nil {
			d.log.Warn("failed to build digest task", "error", err, "tenant_id", r.tenantID)
			continue
		}
		if _, err := d.client.EnqueueContext(ctx, task, asynq.Queue(d.queue)); err != nil {
			d.log.Warn("failed to enqueue digest task", "error", err, "tenant_id", r.tenantID)
		}
	}

	d.log.Info("urgent digests enqueued", "count", len(recipients))
	return nil
}

// untilNextRun returns the wait until the next digestHour boundary.
func untilNextRun(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), digestHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
