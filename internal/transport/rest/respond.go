package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/pkg/ctxutil"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error     string              `json:"error"`
	Fields    []domain.FieldError `json:"fields,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string, fields ...domain.FieldError) {
	writeJSON(w, status, ErrorResponse{
		Error:     msg,
		Fields:    fields,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

// writeServiceError maps a service error onto a status code. Only
// unexpected errors are logged; their text never reaches the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, r, http.StatusBadRequest, "validation failed", verr.Errors...)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, "validation failed")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
