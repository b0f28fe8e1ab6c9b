package handlers

import (
	"log/slog"
	"net/http"

	"github.com/faithfullife/life-dashboard/internal/repository"
)

type SettingsHandler struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsHandler(settingsRepo repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

func (handler *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := handler.settingsRepo.Get(r.Context())
	if err != nil {
		slog.Error("getting settings", "error", err)
		writeError(w, err, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Put merges the submitted fields into the singleton settings row.
func (handler *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	settings, err := handler.settingsRepo.Get(ctx)
	if err != nil {
		slog.Error("getting settings", "error", err)
		writeError(w, err, "failed to load settings")
		return
	}

	var input struct {
		Religion     *string `json:"religion"`
		DarkMode     *bool   `json:"isDarkMode"`
		Email        *string `json:"userEmail"`
		LastEndOfDay *string `json:"lastEndOfDay"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Religion != nil {
		settings.Religion = *input.Religion
	}
	if input.DarkMode != nil {
		settings.DarkMode = *input.DarkMode
	}
	if input.Email != nil {
		settings.Email = *input.Email
	}
	if input.LastEndOfDay != nil {
		settings.LastEndOfDay = *input.LastEndOfDay
	}

	if err := handler.settingsRepo.Put(ctx, settings); err != nil {
		slog.Error("saving settings", "error", err)
		writeError(w, err, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
