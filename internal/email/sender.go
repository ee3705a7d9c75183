// Package email delivers outbound mail for the scheduler jobs.
package email

import (
	"context"

	"inmo_crm_backend/internal/tasks/domain"
)

// Sender delivers the urgent-task digest to an agent.
type Sender interface {
	SendUrgentDigest(ctx context.Context, to string, tasks []domain.UrgentTask) error
}

// NoopSender is used when SMTP is not configured; sends are dropped.
type NoopSender struct{}

func (NoopSender) SendUrgentDigest(context.Context, string, []domain.UrgentTask) error {
	return nil
}
