package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/prosody/foot"
)

type catalogService interface {
	List(ctx context.Context) ([]domain.Bahr, error)
	Lookup(ctx context.Context, signature string) (*domain.Bahr, error)
	Feet() []foot.Entry
}

// CatalogHandler serves the bahr catalog and the foot library.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// BahrList is the body of GET /api/v1/bahrs.
type BahrList struct {
	Bahrs []domain.Bahr `json:"bahrs"`
}

// ListBahrs returns every catalogued bahr.
// GET /api/v1/bahrs
func (h *CatalogHandler) ListBahrs(w http.ResponseWriter, r *http.Request) {
	bahrs, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if bahrs == nil {
		bahrs = []domain.Bahr{}
	}
	writeJSON(w, http.StatusOK, BahrList{Bahrs: bahrs})
}

// GetBahr looks one bahr up by its flat weight signature.
// GET /api/v1/bahrs/{signature}
func (h *CatalogHandler) GetBahr(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Lookup(r.Context(), r.PathValue("signature"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// FootView is one library foot as served over the API.
type FootView struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	NameRoman string `json:"nameRoman"`
	Pattern   string `json:"pattern"`
	Tag       string `json:"tag"`
}

// Feet lists the foot library in declaration order.
// GET /api/v1/feet
func (h *CatalogHandler) Feet(w http.ResponseWriter, r *http.Request) {
	entries := h.svc.Feet()
	out := make([]FootView, len(entries))
	for i, e := range entries {
		out[i] = FootView{
			Key:       e.Key,
			Name:      e.Name,
			NameRoman: e.NameRoman,
			Pattern:   e.Signature(),
			Tag:       e.Tag,
		}
	}
	writeJSON(w, http.StatusOK, map[string][]FootView{"feet": out})
}
