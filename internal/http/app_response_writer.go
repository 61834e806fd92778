package http

import (
	"net/http"

	"attempt-stats/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter wraps the http.ResponseWriter so middlewares can read what the handler decided:
// the service error behind an error response and the batch the request touched.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
	batchID  string
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

func (w *appResponseWriter) SetBatchID(batchID string) {
	w.batchID = batchID
}

func (w *appResponseWriter) BatchID() string {
	return w.batchID
}

// StatusOrDefault is the written status, or 200 when the handler never wrote a header.
func (w *appResponseWriter) StatusOrDefault() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// setBatchID records the batch id on w when it is the app writer.
func setBatchID(w http.ResponseWriter, batchID string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetBatchID(batchID)
	}
}
