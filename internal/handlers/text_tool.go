package handlers

import (
	"log/slog"
	"net/http"

	"github.com/faithfullife/life-dashboard/internal/repository"
)

type TextToolHandler struct {
	textToolRepo repository.TextToolRepository
}

func NewTextToolHandler(textToolRepo repository.TextToolRepository) *TextToolHandler {
	return &TextToolHandler{textToolRepo: textToolRepo}
}

func (handler *TextToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	tool, err := handler.textToolRepo.Get(r.Context())
	if err != nil {
		slog.Error("getting text tool", "error", err)
		writeError(w, err, "failed to load text tool")
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (handler *TextToolHandler) Set(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := handler.textToolRepo.Set(r.Context(), input.Content); err != nil {
		slog.Error("saving text tool", "error", err)
		writeError(w, err, "failed to save text tool")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
