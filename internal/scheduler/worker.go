package scheduler

import (
	"context"
	"fmt"

	completionsvc "inmo_crm_backend/internal/completion/service"
	"inmo_crm_backend/internal/email"
	pubrepo "inmo_crm_backend/internal/publishing/repository"
	taskssvc "inmo_crm_backend/internal/tasks/service"
	"inmo_crm_backend/platform/config"
	"inmo_crm_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Worker struct {
	server       *asynq.Server
	mux          *asynq.ServeMux
	completion   *completionsvc.Service
	publications *pubrepo.Repository
	tasks        *taskssvc.Service
	sender       email.Sender
	log          *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, pool *pgxpool.Pool, completion *completionsvc.Service, tasks *taskssvc.Service, sender email.Sender, log *logger.Logger) (*Worker, error) {
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

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:       server,
		mux:          mux,
		completion:   completion,
		publications: pubrepo.New(pool),
		tasks:        tasks,
		sender:       sender,
		log:          log,
	}

	mux.HandleFunc(TaskPortalPublish, w.handlePortalPublish)
	mux.HandleFunc(TaskUrgentDigest, w.handleUrgentDigest)

	return w, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

// handlePortalPublish re-runs the completion gate before marking the
// publication done. The listing may have changed between enqueue and
// execution; a listing that regressed is marked failed without retry.
func (w *Worker) handlePortalPublish(ctx context.Context, task *asynq.Task) error {
	payload, err := ParsePortalPublishPayload(task)
	if err != nil {
		return err
	}

	publicationID, err := uuid.Parse(payload.PublicationID)
	if err != nil {
		return err
	}
	listingID, err := uuid.Parse(payload.ListingID)
	if err != nil {
		return err
	}
	tenantID, err := uuid.Parse(payload.TenantID)
	if err != nil {
		return err
	}

	result, err := w.completion.Completion(ctx, tenantID, listingID)
	if err != nil {
		return err
	}

	if !result.CanPublishToPortals {
		w.log.Warn("listing regressed below the publish gate",
			"listing_id", payload.ListingID,
			"portal", payload.Portal,
			"pending", result.PendingMandatoryLabels(),
		)
		return w.publications.MarkFailed(ctx, publicationID)
	}

	if err := w.publications.MarkPublished(ctx, publicationID); err != nil {
		return err
	}

	w.log.Info("listing published to portal",
		"listing_id", payload.ListingID,
		"portal", payload.Portal,
	)
	return nil
}

func (w *Worker) handleUrgentDigest(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseUrgentDigestPayload(task)
	if err != nil {
		return err
	}

	tenantID, err := uuid.Parse(payload.TenantID)
	if err != nil {
		return err
	}

	urgent, err := w.tasks.UrgentTasks(ctx, tenantID, 0)
	if err != nil {
		return err
	}
	if len(urgent) == 0 {
		return nil
	}

	return w.sender.SendUrgentDigest(ctx, payload.Recipient, urgent)
}
