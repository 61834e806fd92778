package pipelines

import (
	"fmt"

	"attempt-stats/internal/fetchers"
	"attempt-stats/internal/shared/svcerrors"
)

// BatchService errors
const (
	codeInvalidWindow  = "PIPE_1000"
	codeReportNotFound = "PIPE_1001"

	codeFetchTransportFailed = "FETCH_9000"
	codeFetchServerFailed    = "FETCH_9001"
	codeFetchClientRejected  = "FETCH_9002"
	codeFetchRedirected      = "FETCH_9003"
	codeFetchDecodeFailed    = "FETCH_9004"

	codeInternalReportStore   = "PIPE_9000"
	codeInternalPublishFailed = "PIPE_9001"
	codeInternalRunCancelled  = "PIPE_9002"
)

// errInvalidWindow returns an error when the requested window cannot be parsed or is empty.
func errInvalidWindow(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidWindow, "invalid time window", cause)
}

// errReportNotFound returns an error when no batch with the given id was accepted.
func errReportNotFound(batchID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, fmt.Sprintf("batch %s not found", batchID), cause)
}

// errFetchFailed maps a fetch error to an upstream error with a code per failure kind.
func errFetchFailed(cause error) *svcerrors.ServiceError {
	switch fetchers.KindOf(cause) {
	case fetchers.KindServer:
		return svcerrors.NewUpstreamError(codeFetchServerFailed, "statistics api failed after retries", cause)
	case fetchers.KindClient:
		return svcerrors.NewUpstreamError(codeFetchClientRejected, "statistics api rejected the request", cause)
	case fetchers.KindRedirection:
		return svcerrors.NewUpstreamError(codeFetchRedirected, "statistics api answered with a redirect", cause)
	case fetchers.KindDecode:
		return svcerrors.NewUpstreamError(codeFetchDecodeFailed, "statistics api returned an undecodable body", cause)
	default:
		return svcerrors.NewUpstreamError(codeFetchTransportFailed, "statistics api unreachable", cause)
	}
}

// errInternalReportStoreFailed returns an error when a batch report cannot be read or written.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStore, fmt.Errorf("batchReportStoreFailed: %w", cause))
}

// errInternalPublishFailed returns an error when an accepted batch cannot be queued.
func errInternalPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPublishFailed, fmt.Errorf("batchRequestPublisherFailed: %w", cause))
}

// errInternalRunCancelled returns an error when a queued batch is abandoned before it can run.
func errInternalRunCancelled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRunCancelled, fmt.Errorf("batchRunCancelled: %w", cause))
}
