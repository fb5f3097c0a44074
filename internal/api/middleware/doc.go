// Package middleware provides the HTTP middleware of the API: request tracing
// with a request-scoped logger, and Prometheus request metrics.
package middleware
