package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"
	headerUserAgent   = "user-agent"
	headerLocation    = "location"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func userAgent(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerUserAgent))
}
