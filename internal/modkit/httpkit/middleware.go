package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"surveyscope/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// CORSOrigins lists allowed browser origins, empty disables CORS headers
	CORSOrigins []string
	// Slow marks requests at or above this duration in the access log
	Slow time.Duration
	// Timeout cancels handlers, 30s when zero
	Timeout time.Duration
}

// CommonStack returns the baseline middleware slice for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	mws := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability, outside recover so panics are logged with their status
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),
	}
	if len(o.CORSOrigins) > 0 {
		mws = append(mws, middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}))
	}
	return append(mws,
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/ping"),
		middleware.Timeout(timeout),
	)
}
