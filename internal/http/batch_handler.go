package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"attempt-stats/internal/events"
	"attempt-stats/internal/models"
	"attempt-stats/internal/pipelines"
	"attempt-stats/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
)

const (
	maxBatchRequestBytes = 4 * 1024
	paramBatchID         = "batchId"
)

// SubmitBatchRequest is the body of POST /batches. Timestamps use the statistics API
// layout ("2023-04-01 12:46:47.860798") or RFC3339.
type SubmitBatchRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SubmitBatchResponse is returned with 202 Accepted.
type SubmitBatchResponse struct {
	BatchID string            `json:"batchId"`
	Window  models.TimeWindow `json:"window"`
	Status  string            `json:"status"`
}

type submitBatchHandler struct {
	batchService pipelines.BatchService
}

func NewSubmitBatchHandler(batchService pipelines.BatchService) AppHttpHandler {
	return &submitBatchHandler{
		batchService: batchService,
	}
}

// Handle processes POST /batches requests.
func (h *submitBatchHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	request, err := decodeSubmitBatchRequest(r)
	if err != nil {
		return err
	}

	result, err := h.batchService.SubmitBatch(r.Context(), request.Start, request.End, events.TriggerAPI)
	if err != nil {
		return err
	}

	setBatchID(w, result.BatchID)
	w.Header().Set(headerLocation, "/batches/"+result.BatchID)
	writeJSONResponse(w, http.StatusAccepted, SubmitBatchResponse{
		BatchID: result.BatchID,
		Window:  result.Window,
		Status:  string(models.BatchPending),
	})
	return nil
}

func decodeSubmitBatchRequest(r *http.Request) (*SubmitBatchRequest, error) {
	if r.Body == nil {
		return nil, errInvalidRequestBody("empty request body", nil)
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBatchRequestBytes))
	decoder.DisallowUnknownFields()

	var request SubmitBatchRequest
	if err := decoder.Decode(&request); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errInvalidRequestBody("empty request body", err)
		}
		return nil, errInvalidRequestBody("invalid json", err)
	}

	var missing []string
	if strings.TrimSpace(request.Start) == "" {
		missing = append(missing, "start")
	}
	if strings.TrimSpace(request.End) == "" {
		missing = append(missing, "end")
	}
	if len(missing) > 0 {
		return nil, errInvalidRequestBody("missing "+strings.Join(missing, ", "), nil)
	}
	return &request, nil
}

type getBatchReportHandler struct {
	batchService pipelines.BatchService
}

func NewGetBatchReportHandler(batchService pipelines.BatchService) AppHttpHandler {
	return &getBatchReportHandler{
		batchService: batchService,
	}
}

// Handle processes GET /batches/{batchId} requests.
func (h *getBatchReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	batchID := strings.TrimSpace(chi.URLParam(r, paramBatchID))
	if !ulid.IsValid(batchID) {
		return errInvalidBatchID(batchID)
	}
	setBatchID(w, batchID)

	report, err := h.batchService.GetReport(r.Context(), batchID)
	if err != nil {
		return err
	}

	writeJSONResponse(w, http.StatusOK, report)
	return nil
}

type healthHandler struct{}

func NewHealthHandler() AppHttpHandler {
	return healthHandler{}
}

// Handle processes GET /healthz requests.
func (healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	return nil
}
