package models

import "time"

// Batch is the in-memory result of one fetch/normalize/aggregate run, handed to sinks read-only.
type Batch struct {
	BatchID string
	Window  TimeWindow
	Raw     []RawAttemptRecord
	Records []NormalizedRecord
	Skipped int
	Summary AggregateSummary
}

type BatchStatus string

const (
	BatchPending            BatchStatus = "pending"
	BatchSucceeded          BatchStatus = "succeeded"
	BatchPartiallyDelivered BatchStatus = "partially_delivered"
	BatchFailed             BatchStatus = "failed"
)

// DeliveryResult records what happened to one sink (or the notification) during a batch.
type DeliveryResult struct {
	Sink      string `json:"sink"`
	Delivered bool   `json:"delivered"`
	ErrorCode string `json:"errorCode,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BatchReport is the persisted outcome of a batch run.
//
// Example JSON:
//
//	{
//	  "batchId": "01HGW1XKZ3R9T8Q2M4V6B7N5PC",
//	  "window": {"start": "2023-04-01 12:46:47.860798", "end": "2023-04-02 12:46:47.860798"},
//	  "status": "partially_delivered",
//	  "fetched": 4213,
//	  "skipped": 2,
//	  "summary": {"total_attempts": 4211, "successful_attempts": 1533, "unique_users": 361},
//	  "deliveries": [
//	    {"sink": "archive", "delivered": true},
//	    {"sink": "table", "delivered": true},
//	    {"sink": "sheets", "delivered": false, "errorCode": "SINK_9001", "error": "..."}
//	  ],
//	  "notification": {"sink": "email", "delivered": true},
//	  "startedAt": "2023-04-02T13:00:00Z",
//	  "finishedAt": "2023-04-02T13:00:07Z"
//	}
type BatchReport struct {
	BatchID      string            `json:"batchId"`
	Window       TimeWindow        `json:"window"`
	Status       BatchStatus       `json:"status"`
	Fetched      int               `json:"fetched"`
	Skipped      int               `json:"skipped"`
	Summary      *AggregateSummary `json:"summary,omitempty"`
	Deliveries   []DeliveryResult  `json:"deliveries,omitempty"`
	Notification *DeliveryResult   `json:"notification,omitempty"`
	ErrorCode    string            `json:"errorCode,omitempty"`
	Error        string            `json:"error,omitempty"`
	StartedAt    time.Time         `json:"startedAt"`
	FinishedAt   time.Time         `json:"finishedAt,omitzero"`
}

// NewPendingBatchReport returns a report for a batch that has been requested but not run.
func NewPendingBatchReport(batchID string, window TimeWindow, now time.Time) *BatchReport {
	return &BatchReport{
		BatchID:   batchID,
		Window:    window,
		Status:    BatchPending,
		StartedAt: now.UTC(),
	}
}

// ResolveStatus derives the final status from the delivery results.
func (r *BatchReport) ResolveStatus() {
	for _, delivery := range r.Deliveries {
		if !delivery.Delivered {
			r.Status = BatchPartiallyDelivered
			return
		}
	}
	r.Status = BatchSucceeded
}

// FailedDeliveries returns the sinks that did not receive the batch.
func (r *BatchReport) FailedDeliveries() []DeliveryResult {
	var failed []DeliveryResult
	for _, delivery := range r.Deliveries {
		if !delivery.Delivered {
			failed = append(failed, delivery)
		}
	}
	return failed
}
