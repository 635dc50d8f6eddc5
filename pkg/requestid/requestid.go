// Package requestid derives per-request identifiers for log correlation.
package requestid

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const Header = "X-Request-Id"

// FromRequest returns the caller's X-Request-Id when it is a valid UUID,
// otherwise a fresh UUIDv7 (RFC 9562, time-ordered).
func FromRequest(r *http.Request) string {
	if raw := strings.TrimSpace(r.Header.Get(Header)); raw != "" {
		if u, err := uuid.Parse(raw); err == nil {
			return u.String()
		}
	}
	return NewString()
}

// NewString returns a UUIDv7 string, or the empty string if the random
// source fails.
func NewString() string {
	u, err := uuid.NewV7()
	if err != nil {
		return ""
	}
	return u.String()
}

// TraceIDFromTraceparent extracts the W3C trace-id. Malformed or all-zero
// values yield "".
func TraceIDFromTraceparent(r *http.Request) string {
	traceparent := strings.TrimSpace(r.Header.Get("traceparent"))
	if traceparent == "" {
		return ""
	}
	parts := strings.Split(traceparent, "-")
	if len(parts) != 4 {
		return ""
	}
	traceID := strings.ToLower(parts[1])
	if len(traceID) != 32 || traceID == "00000000000000000000000000000000" {
		return ""
	}
	for _, ch := range traceID {
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return ""
		}
	}
	return traceID
}
