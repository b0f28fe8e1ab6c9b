package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

type HobbyLinkHandler struct {
	linkRepo repository.HobbyLinkRepository
}

func NewHobbyLinkHandler(linkRepo repository.HobbyLinkRepository) *HobbyLinkHandler {
	return &HobbyLinkHandler{linkRepo: linkRepo}
}

func (handler *HobbyLinkHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var links []models.HobbyLink
	var err error
	if categoryID := r.URL.Query().Get("category"); categoryID != "" {
		links, err = handler.linkRepo.FindByCategory(ctx, categoryID)
	} else {
		links, err = handler.linkRepo.FindAll(ctx)
	}
	if err != nil {
		slog.Error("finding hobby links", "error", err)
		writeError(w, err, "failed to load hobby links")
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (handler *HobbyLinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Label      string `json:"label"`
		URL        string `json:"url"`
		CategoryID string `json:"categoryId"`
		Order      int    `json:"order"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Label == "" || input.URL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "label and url are required"})
		return
	}

	link, err := handler.linkRepo.Create(r.Context(), models.HobbyLink{
		Label:      input.Label,
		URL:        input.URL,
		CategoryID: input.CategoryID,
		Order:      input.Order,
	})
	if err != nil {
		slog.Error("creating hobby link", "error", err)
		writeError(w, err, "failed to create hobby link")
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (handler *HobbyLinkHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	link, err := handler.linkRepo.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "hobby link not found")
		return
	}

	var input struct {
		Label *string `json:"label"`
		URL   *string `json:"url"`
		Order *int    `json:"order"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Label != nil {
		link.Label = *input.Label
	}
	if input.URL != nil {
		link.URL = *input.URL
	}
	if input.Order != nil {
		link.Order = *input.Order
	}

	if err := handler.linkRepo.Update(ctx, link); err != nil {
		writeError(w, err, "failed to update hobby link")
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (handler *HobbyLinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.linkRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting hobby link", "error", err)
		writeError(w, err, "failed to delete hobby link")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
