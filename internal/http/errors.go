package http

import (
	"fmt"

	"attempt-stats/internal/shared/svcerrors"
)

// HTTP handler errors
const (
	codeInvalidRequestBody = "HTTP_1000"
	codeInvalidBatchID     = "HTTP_1001"
)

// errInvalidRequestBody returns an error when the request body is not a valid batch request.
func errInvalidRequestBody(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, msg, cause)
}

// errInvalidBatchID returns a not-found error for ids that cannot name a batch.
func errInvalidBatchID(batchID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeInvalidBatchID, fmt.Sprintf("batch %q not found", batchID), nil)
}
