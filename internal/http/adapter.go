package http

import (
	"encoding/json"
	"net/http"

	"attempt-stats/internal/shared/loggers"
	"attempt-stats/internal/shared/svcerrors"
)

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}

		// Log internal errors at error level
		if svcErr.IsInternalError() {
			loggers.Ctx(r.Context()).Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg("internal error in handler")
		}

		writeErrorResponse(w, r, svcErr)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	// set serviceError for middlewares
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetServiceError(svcErr)
	}

	errorResponse := ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	}
	loggers.Ctx(r.Context()).Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Str("errorMessage", svcErr.Message).
		Int("httpStatusCode", svcErr.HttpStatusCode).
		Msg("error response")

	writeJSONResponse(w, svcErr.HttpStatusCode, errorResponse)
}

func writeJSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set(headerContentType, "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
