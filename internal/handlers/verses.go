package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/services"
)

// VerseHandler owns the verse endpoints. Generate mirrors the upstream
// proxy contract: generation and body errors answer 200 with an error
// body, a missing API key answers 500.
type VerseHandler struct {
	source services.VerseSource
	cache  *services.VerseCache
}

func NewVerseHandler(source services.VerseSource, cache *services.VerseCache) *VerseHandler {
	return &VerseHandler{source: source, cache: cache}
}

func (handler *VerseHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if handler.source == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "verse generation is not configured"})
		return
	}

	var input struct {
		Religion string `json:"religion"`
	}
	if err := decodeJSON(r, &input); err != nil || input.Religion == "" {
		writeJSON(w, http.StatusOK, map[string]string{"error": "religion is required"})
		return
	}

	verses, err := handler.source.Generate(r.Context(), input.Religion)
	if err != nil {
		slog.Error("generating verses", "religion", input.Religion, "error", err)
		writeJSON(w, http.StatusOK, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"verses": verses})
}

// List serves the cached formatted verses for a religion, refreshing
// through the cache's TTL logic.
func (handler *VerseHandler) List(w http.ResponseWriter, r *http.Request) {
	religion := chi.URLParam(r, "religion")
	verses, err := handler.cache.VersesFor(r.Context(), religion)
	if err != nil {
		slog.Error("loading verses", "religion", religion, "error", err)
		writeError(w, err, "failed to load verses")
		return
	}
	writeJSON(w, http.StatusOK, verses)
}
