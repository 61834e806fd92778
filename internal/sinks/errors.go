package sinks

import (
	"fmt"

	"attempt-stats/internal/shared/svcerrors"
)

// Sink errors
const (
	codeArchiveAlreadyExists = "SINK_1000"

	codeDeliveryFailed          = "SINK_9000"
	codeSheetsDeliveryFailed    = "SINK_9001"
	codeTablePersistenceFailed  = "SINK_9002"
	codeArchiveDeliveryFailed   = "SINK_9003"
	codeNotificationSendFailed  = "SINK_9004"
	codeNotificationBuildFailed = "SINK_9005"
)

// errArchiveAlreadyExists returns an error when the window was archived by an earlier run.
func errArchiveAlreadyExists(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeArchiveAlreadyExists, fmt.Sprintf("window already archived at %s", key), cause)
}

// errDeliveryFailed wraps a sink error that carries no code of its own.
func errDeliveryFailed(sink string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeDeliveryFailed, fmt.Errorf("%sDeliveryFailed: %w", sink, cause))
}

// errSheetsDeliveryFailed returns an error when the spreadsheet update fails.
func errSheetsDeliveryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeSheetsDeliveryFailed, fmt.Errorf("sheetsDeliveryFailed: %w", cause))
}

// errTablePersistenceFailed returns an error when the table transaction fails; nothing was committed.
func errTablePersistenceFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeTablePersistenceFailed, fmt.Errorf("tablePersistenceFailed: %w", cause))
}

// errArchiveDeliveryFailed returns an error when the raw batch cannot be archived.
func errArchiveDeliveryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeArchiveDeliveryFailed, fmt.Errorf("archiveDeliveryFailed: %w", cause))
}

// errNotificationSendFailed returns an error when the SMTP relay rejects or cannot take the message.
func errNotificationSendFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeNotificationSendFailed, fmt.Errorf("notificationSendFailed: %w", cause))
}

// errNotificationBuildFailed returns an error when the message cannot be composed (bad addresses).
func errNotificationBuildFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeNotificationBuildFailed, fmt.Errorf("notificationBuildFailed: %w", cause))
}

// codeOf returns the service error code carried by err, or the generic delivery code.
func codeOf(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return codeDeliveryFailed
}
