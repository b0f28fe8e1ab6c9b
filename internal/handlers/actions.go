package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

type ActionHandler struct {
	actionRepo repository.ActionRepository
}

func NewActionHandler(actionRepo repository.ActionRepository) *ActionHandler {
	return &ActionHandler{actionRepo: actionRepo}
}

func (handler *ActionHandler) List(w http.ResponseWriter, r *http.Request) {
	actions, err := handler.actionRepo.FindByDate(r.Context(), dateParam(r))
	if err != nil {
		slog.Error("finding actions", "error", err)
		writeError(w, err, "failed to load actions")
		return
	}
	writeJSON(w, http.StatusOK, actions)
}

func (handler *ActionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Text string `json:"text"`
		Date string `json:"date"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}

	action, err := handler.actionRepo.Create(r.Context(), models.Action{Text: input.Text, Date: input.Date})
	if err != nil {
		slog.Error("creating action", "error", err)
		writeError(w, err, "failed to create action")
		return
	}
	writeJSON(w, http.StatusCreated, action)
}

func (handler *ActionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if err := handler.actionRepo.Toggle(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "action not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *ActionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.actionRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting action", "error", err)
		writeError(w, err, "failed to delete action")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
