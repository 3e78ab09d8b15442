package pages

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/MercerDigital/MD-Backend/internal/catalog"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Handler serves stored page artifacts and the admin generation endpoint.
type Handler struct {
	Catalog *catalog.Store
	Store   *ArtifactStore

	// SkipList is the operator override applied to admin-triggered runs,
	// mirroring the generator CLI.
	SkipList map[string]struct{}
}

// GetArtifact serves the artifact stored at the canonical path. The
// path-correction middleware has already run, so anything that reaches here
// either matches a stored page or is a genuine 404.
func (h *Handler) GetArtifact(w http.ResponseWriter, r *http.Request) {
	path := Namespace + "/" +
		chi.URLParam(r, "service") + "/" +
		chi.URLParam(r, "state") + "/" +
		chi.URLParam(r, "county") + "/" +
		chi.URLParam(r, "location")

	artifact, err := h.Store.FindByPath(path)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[GetArtifact] lookup failed path=%s err=%v", path, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, artifact)
}

// Generate runs a full synthesis pass against the live catalog and reports the
// aggregate result. Per-pair failures are returned in the body, never a 5xx —
// the batch contract is best effort, report everything.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	synth := &Synthesizer{
		Catalog:      h.Catalog,
		Writer:       h.Store,
		SkipList:     h.SkipList,
		SkipExisting: true,
	}

	res := synth.Run()
	log.Printf("[Generate] created=%d skipped=%d errors=%d", res.Created, res.Skipped, len(res.Errors))
	writeJSON(w, res)
}
