package testutil

import (
	"net/http"
	"time"

	"regform/pkg/requestcontext"
)

// WithRequestTime pins the request-scoped time, as requesttime.Middleware would.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}

// WithRequestID sets the request ID, as the RequestID middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithClientIP sets client metadata, as metadata.ClientMetadata would.
func WithClientIP(req *http.Request, ip string) *http.Request {
	return req.WithContext(requestcontext.WithClientMetadata(req.Context(), ip, req.UserAgent(), "unknown"))
}
