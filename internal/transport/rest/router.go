package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Analyze *AnalyzeHandler
	Catalog *CatalogHandler
	Health  *HealthHandler
}

// NewRouter mounts the API and probes. analyzeMW wraps only the analyze
// route, which is the one worth rate limiting.
func NewRouter(h Handlers, analyzeMW func(http.Handler) http.Handler) *http.ServeMux {
	if analyzeMW == nil {
		analyzeMW = func(next http.Handler) http.Handler { return next }
	}

	mux := http.NewServeMux()

	mux.Handle("POST /api/v1/analyze", analyzeMW(http.HandlerFunc(h.Analyze.Analyze)))
	mux.HandleFunc("GET /api/v1/stats", h.Analyze.Stats)

	mux.HandleFunc("GET /api/v1/bahrs", h.Catalog.ListBahrs)
	mux.HandleFunc("GET /api/v1/bahrs/{signature}", h.Catalog.GetBahr)
	mux.HandleFunc("GET /api/v1/feet", h.Catalog.Feet)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
