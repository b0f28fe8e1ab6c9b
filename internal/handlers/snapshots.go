package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

type SnapshotHandler struct {
	snapshotRepo repository.SnapshotRepository
}

func NewSnapshotHandler(snapshotRepo repository.SnapshotRepository) *SnapshotHandler {
	return &SnapshotHandler{snapshotRepo: snapshotRepo}
}

func (handler *SnapshotHandler) List(w http.ResponseWriter, r *http.Request) {
	snapshots, err := handler.snapshotRepo.FindAll(r.Context())
	if err != nil {
		slog.Error("finding snapshots", "error", err)
		writeError(w, err, "failed to load snapshots")
		return
	}
	writeJSON(w, http.StatusOK, snapshots)
}

// Get serves one date's snapshot; an optional category query selects a
// per-category snapshot instead of the global one.
func (handler *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	categoryID := r.URL.Query().Get("category")
	if categoryID != "" && !models.IsCategoryID(categoryID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}

	snapshot, err := handler.snapshotRepo.FindByDate(r.Context(), date, categoryID)
	if err != nil {
		writeError(w, err, "snapshot not found")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (handler *SnapshotHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if !models.IsCategoryID(categoryID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}
	snapshots, err := handler.snapshotRepo.FindByCategory(r.Context(), categoryID)
	if err != nil {
		slog.Error("finding category snapshots", "error", err)
		writeError(w, err, "failed to load snapshots")
		return
	}
	writeJSON(w, http.StatusOK, snapshots)
}
