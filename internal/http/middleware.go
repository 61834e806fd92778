package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"attempt-stats/internal/shared/loggers"
	"attempt-stats/internal/shared/svcerrors"
	"attempt-stats/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"github.com/mileusna/useragent"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwPrometheus)
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter initializes the appResponseWriter once and passes it through the middleware chain.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appWriter := newAppResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(appWriter, r)
	})
}

// mwPrometheus records request counts and durations by route pattern, never by raw path,
// so batch ids do not become label values.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		route := routePattern(r)
		status := http.StatusOK
		errorCode := ""
		if appWriter, ok := w.(*appResponseWriter); ok {
			status = appWriter.StatusOrDefault()
			errorCode = appWriter.ErrorCode()
		}
		statusStr := strconv.Itoa(status)

		metricHTTPRequestsTotal.WithLabelValues(r.Method, route, statusStr, errorCode).Inc()
		metricHTTPRequestDuration.WithLabelValues(r.Method, route, statusStr).Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// mwRequestID extracts or generates a request ID and attaches a request-scoped logger to context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := requestID(r)
			if requestID == "" {
				requestID = ulid.NewULID()
				setRequestID(r, requestID)
			}
			w.Header().Set(headerRequestID, requestID)
			ctxWithReqLogger := httpLogger.With().
				Str(loggers.FieldRequestID, requestID).
				Logger().WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctxWithReqLogger))
		})
	}
}

// mwRequestCompletionLog logs one line per request with the caller's user-agent family.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			event := loggers.Ctx(r.Context()).Info().
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Str(loggers.FieldUserAgent, userAgentFamily(userAgent(r))).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds())

			status := http.StatusOK
			if appWriter, ok := w.(*appResponseWriter); ok {
				status = appWriter.StatusOrDefault()
				if batchID := appWriter.BatchID(); batchID != "" {
					event = event.Str(loggers.FieldBatchID, batchID)
				}
				if errorCode := appWriter.ErrorCode(); errorCode != "" {
					event = event.Str(loggers.FieldErrorCode, errorCode)
				}
			}
			event.Int(loggers.FieldHttpStatus, status).Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// userAgentFamily reduces a User-Agent header to its family ("Chrome", "curl"),
// or returns it unchanged when it cannot be parsed.
func userAgentFamily(ua string) string {
	if ua == "" {
		return "unknown"
	}
	if parsed := useragent.Parse(ua); parsed.Name != "" {
		return parsed.Name
	}
	return ua
}

// mwRecoverer provides panic recovery middleware.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				loggers.Ctx(r.Context()).Error().
					Bytes(loggers.FieldErrorStack, debug.Stack()).
					Msgf("http panic recovered: %v", p)

				// Convert panic value to error
				var panicErr error
				if err, ok := p.(error); ok {
					panicErr = err
				} else {
					panicErr = fmt.Errorf("%v", p)
				}

				writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
