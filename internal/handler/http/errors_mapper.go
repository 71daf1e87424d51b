package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/store"
)

// statusFromError maps a service failure to the HTTP status sent to the
// client. Every failure collapses to 500; with exposeNotFound a missing
// row is reported as 404 instead.
func statusFromError(err error, exposeNotFound bool) int {
	if exposeNotFound && store.Classify(err) == store.KindNotFound {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// writeError logs err with its classification and answers with an empty
// body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err, h.exposeNotFound)

	log := loggerFrom(r)
	log.Err(err).
		Str("kind", store.Classify(err).String()).
		Int("status", status).
		Msg("request failed")

	w.WriteHeader(status)
}
