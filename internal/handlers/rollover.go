package handlers

import (
	"log/slog"
	"net/http"

	"github.com/faithfullife/life-dashboard/internal/services"
)

type RolloverHandler struct {
	rolloverService *services.RolloverService
}

func NewRolloverHandler(rolloverService *services.RolloverService) *RolloverHandler {
	return &RolloverHandler{rolloverService: rolloverService}
}

// Run triggers the end-of-day rollover for a date, defaulting to today.
func (handler *RolloverHandler) Run(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Date string `json:"date"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeJSON(r, &input); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
	}
	if input.Date == "" {
		input.Date = today()
	}

	if err := handler.rolloverService.Run(r.Context(), input.Date); err != nil {
		slog.Error("running rollover", "date", input.Date, "error", err)
		writeError(w, err, "failed to run rollover")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "date": input.Date})
}
