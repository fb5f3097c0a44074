package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/numera/internal/api/shared"
	"github.com/phrazzld/numera/internal/platform/logger"
)

// Trace adds a trace ID and a request-scoped logger to the request context.
// A valid X-Trace-ID header from the caller is reused; otherwise a new ID is
// generated. The effective ID is echoed in the response header.
// This middleware should be applied early in the middleware chain to ensure
// that all subsequent handlers have access to the trace ID.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if traceID := shared.NormalizeTraceID(r.Header.Get(shared.TraceIDHeader)); traceID != "" {
				ctx = shared.WithTraceID(ctx, traceID)
			} else {
				ctx = shared.SetTraceID(ctx)
			}
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)
			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
