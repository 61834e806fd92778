package events

import (
	"time"

	"attempt-stats/internal/models"
)

// BatchTrigger tells whether a batch was requested over HTTP or by the scheduler.
type BatchTrigger string

const (
	TriggerAPI      BatchTrigger = "api"
	TriggerSchedule BatchTrigger = "schedule"
)

// BatchRequestedEvent asks the pipeline worker to run one batch. The batch id is assigned
// when the request is accepted, so the caller can poll the report before the run starts.
//
// Example JSON:
//
//	{
//	  "batchId": "01HGW1XKZ3R9T8Q2M4V6B7N5PC",
//	  "window": {"start": "2023-04-01 12:46:47.860798", "end": "2023-04-02 12:46:47.860798"},
//	  "requestedAt": "2023-04-02T13:00:00Z",
//	  "trigger": "api"
//	}
type BatchRequestedEvent struct {
	BatchID     string            `json:"batchId"`
	Window      models.TimeWindow `json:"window"`
	RequestedAt time.Time         `json:"requestedAt"`
	Trigger     BatchTrigger      `json:"trigger"`
}
