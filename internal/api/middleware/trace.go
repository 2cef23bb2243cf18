package middleware

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/scry-quiz/internal/api/shared"
	"github.com/phrazzld/scry-quiz/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that gives each request a trace ID and
// a request-scoped logger carrying it.
//
// The trace ID is chi's request ID when the RequestID middleware ran first,
// otherwise a fresh one. It is echoed in the X-Trace-ID response header.
// This middleware should be applied early in the chain so that all subsequent
// handlers have access to the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := chimiddleware.GetReqID(r.Context())
			if traceID == "" {
				traceID = shared.NewTraceID()
			}

			log := base.With(slog.String("trace_id", traceID))
			ctx := logger.WithLogger(shared.WithTraceID(r.Context(), traceID), log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(shared.TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
