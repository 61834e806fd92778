package fetchers

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed fetch attempt.
type ErrorKind string

const (
	KindTransport   ErrorKind = "transport_error"
	KindServer      ErrorKind = "server_error"
	KindClient      ErrorKind = "client_error"
	KindRedirection ErrorKind = "redirection_error"
	KindDecode      ErrorKind = "decode_error"
)

// FetchError is returned by Fetch for every failed attempt and for the final outcome.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int // zero for transport errors
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	msg := string(e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": HTTP %d", e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt may succeed.
// Only transport failures and 5xx responses are retried.
func (e *FetchError) Retryable() bool {
	return e.Kind == KindTransport || e.Kind == KindServer
}

// IsRetryable is the retry predicate used by the fetcher.
func IsRetryable(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Retryable()
	}
	return false
}

// KindOf returns the kind of a fetch error, or "" when err is not one.
func KindOf(err error) ErrorKind {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}
	return ""
}

// classifyStatus maps a non-2xx status code to an error kind.
func classifyStatus(status int) ErrorKind {
	switch {
	case status >= 500:
		return KindServer
	case status >= 400:
		return KindClient
	default:
		return KindRedirection
	}
}
