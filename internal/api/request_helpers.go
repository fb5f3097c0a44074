package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/numera/internal/api/shared"
	"github.com/phrazzld/numera/internal/platform/logger"
)

// decodeAndValidate decodes the JSON body of r into v and validates it.
// It writes a 400 response and returns false when either step fails.
//
// Parameters:
//   - w: The HTTP response writer
//   - r: The HTTP request
//   - v: A pointer to the request struct
//
// Returns:
//   - true: v is populated and valid
//   - false: an error response has been written
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	if err := shared.DecodeJSON(r, v); err != nil {
		log.Debug("malformed request body", slog.String("path", r.URL.Path))
		HandleAPIError(w, r, errors.Join(ErrMalformedRequest, err), "")
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		log.Debug("request validation failed", slog.String("path", r.URL.Path))
		HandleAPIError(w, r, err, "")
		return false
	}

	return true
}
