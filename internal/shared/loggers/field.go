package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldUserAgent  = "user_agent"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldBatchID     = "batch_id"
	FieldWindowStart = "window_start"
	FieldWindowEnd   = "window_end"
	FieldAttempt     = "attempt"
	FieldURL         = "url"
	FieldUserID      = "user_id"
	FieldSink        = "sink"
	FieldRecordCount = "record_count"
)
