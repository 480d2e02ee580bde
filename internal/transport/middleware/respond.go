package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/bahr-checker/pkg/ctxutil"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError renders the same JSON error envelope the REST handlers use.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:     msg,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}
