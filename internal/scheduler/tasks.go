package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskPortalPublish = "listings.portal.publish"

const TaskUrgentDigest = "tasks.urgent.digest"

type PortalPublishPayload struct {
	PublicationID string `json:"publicationId"`
	ListingID     string `json:"listingId"`
	TenantID      string `json:"tenantId"`
	Portal        string `json:"portal"`
}

type UrgentDigestPayload struct {
	TenantID  string `json:"tenantId"`
	Recipient string `json:"recipient"`
}

func NewPortalPublishTask(payload PortalPublishPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPortalPublish, data), nil
}

func ParsePortalPublishPayload(task *asynq.Task) (PortalPublishPayload, error) {
	var payload PortalPublishPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return PortalPublishPayload{}, err
	}
	return payload, nil
}

func NewUrgentDigestTask(payload UrgentDigestPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskUrgentDigest, data), nil
}

func ParseUrgentDigestPayload(task *asynq.Task) (UrgentDigestPayload, error) {
	var payload UrgentDigestPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return UrgentDigestPayload{}, err
	}
	return payload, nil
}
