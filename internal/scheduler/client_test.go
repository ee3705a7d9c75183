package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &Client{client: client, queue: "default"}
}

func TestEnqueuePortalPublish(t *testing.T) {
	client := newTestClient(t)

	payload := PortalPublishPayload{
		PublicationID: "5ad4b3e0-0000-0000-0000-000000000001",
		ListingID:     "5ad4b3e0-0000-0000-0000-000000000002",
		TenantID:      "5ad4b3e0-0000-0000-0000-000000000003",
		Portal:        "idealista",
	}
	if err := client.EnqueuePortalPublish(context.Background(), payload); err != nil {
		t.Fatalf("EnqueuePortalPublish: %v", err)
	}
}

func TestScheduleUrgentDigest(t *testing.T) {
	client := newTestClient(t)

	payload := UrgentDigestPayload{
		TenantID:  "5ad4b3e0-0000-0000-0000-000000000003",
		Recipient: "agente@example.com",
	}
	runAt := time.Now().Add(time.Hour)
	if err := client.ScheduleUrgentDigest(context.Background(), payload, runAt); err != nil {
		t.Fatalf("ScheduleUrgentDigest: %v", err)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	payload := PortalPublishPayload{
		PublicationID: "a",
		ListingID:     "b",
		TenantID:      "c",
		Portal:        "fotocasa",
	}

	task, err := NewPortalPublishTask(payload)
	if err != nil {
		t.Fatalf("NewPortalPublishTask: %v", err)
	}
	if task.Type() != TaskPortalPublish {
		t.Fatalf("task type = %q", task.Type())
	}

	parsed, err := ParsePortalPublishPayload(task)
	if err != nil {
		t.Fatalf("ParsePortalPublishPayload: %v", err)
	}
	if parsed != payload {
		t.Fatalf("parsed = %+v, want %+v", parsed, payload)
	}
}

func TestNilClientIsSafe(t *testing.T) {
	var client *Client
	if err := client.EnqueuePortalPublish(context.Background(), PortalPublishPayload{}); err != nil {
		t.Fatalf("nil client enqueue: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("nil client close: %v", err)
	}
}
