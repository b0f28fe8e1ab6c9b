package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

type ContactWebsiteHandler struct {
	contactRepo repository.ContactWebsiteRepository
}

func NewContactWebsiteHandler(contactRepo repository.ContactWebsiteRepository) *ContactWebsiteHandler {
	return &ContactWebsiteHandler{contactRepo: contactRepo}
}

func (handler *ContactWebsiteHandler) List(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if !models.IsCategoryID(categoryID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}
	items, err := handler.contactRepo.FindByCategory(r.Context(), categoryID)
	if err != nil {
		slog.Error("finding contacts and websites", "error", err)
		writeError(w, err, "failed to load contacts and websites")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (handler *ContactWebsiteHandler) Create(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if !models.IsCategoryID(categoryID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}

	var input struct {
		Type        string `json:"type"`
		LinkOrPhone string `json:"linkOrPhone"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.LinkOrPhone == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "linkOrPhone is required"})
		return
	}

	item, err := handler.contactRepo.Create(r.Context(), models.ContactWebsite{
		CategoryID:  categoryID,
		Type:        models.ContactType(input.Type),
		LinkOrPhone: input.LinkOrPhone,
	})
	if err != nil {
		writeError(w, err, "failed to create contact or website")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (handler *ContactWebsiteHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	item, err := handler.contactRepo.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "contact or website not found")
		return
	}

	var input struct {
		Type        *string `json:"type"`
		LinkOrPhone *string `json:"linkOrPhone"`
		Order       *int    `json:"order"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Type != nil {
		item.Type = models.ContactType(*input.Type)
	}
	if input.LinkOrPhone != nil {
		item.LinkOrPhone = *input.LinkOrPhone
	}
	if input.Order != nil {
		item.Order = *input.Order
	}

	if err := handler.contactRepo.Update(ctx, item); err != nil {
		writeError(w, err, "failed to update contact or website")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (handler *ContactWebsiteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.contactRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting contact or website", "error", err)
		writeError(w, err, "failed to delete contact or website")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
