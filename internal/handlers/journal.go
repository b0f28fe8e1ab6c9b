package handlers

import (
	"log/slog"
	"net/http"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

type JournalHandler struct {
	journalRepo repository.JournalRepository
}

func NewJournalHandler(journalRepo repository.JournalRepository) *JournalHandler {
	return &JournalHandler{journalRepo: journalRepo}
}

// List serves one day's entries when a date is given, otherwise the full
// journal newest first.
func (handler *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var entries []models.JournalEntry
	var err error
	if date := r.URL.Query().Get("date"); date != "" {
		entries, err = handler.journalRepo.FindByDate(ctx, date)
	} else {
		entries, err = handler.journalRepo.FindAll(ctx)
	}
	if err != nil {
		slog.Error("finding journal entries", "error", err)
		writeError(w, err, "failed to load journal")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (handler *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Text     string `json:"text"`
		Category string `json:"category"`
		Date     string `json:"date"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}
	if input.Date == "" {
		input.Date = today()
	}

	entry, err := handler.journalRepo.Create(r.Context(), models.JournalEntry{
		Text:     input.Text,
		Category: input.Category,
		Date:     input.Date,
	})
	if err != nil {
		slog.Error("creating journal entry", "error", err)
		writeError(w, err, "failed to create journal entry")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
