package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

type SectionHandler struct {
	sectionRepo repository.CardSectionRepository
	entryRepo   repository.SectionEntryRepository
}

func NewSectionHandler(sectionRepo repository.CardSectionRepository, entryRepo repository.SectionEntryRepository) *SectionHandler {
	return &SectionHandler{sectionRepo: sectionRepo, entryRepo: entryRepo}
}

func (handler *SectionHandler) List(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if !models.IsCategoryID(categoryID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}
	sections, err := handler.sectionRepo.FindByCategory(r.Context(), categoryID)
	if err != nil {
		slog.Error("finding card sections", "error", err)
		writeError(w, err, "failed to load card sections")
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

func (handler *SectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if !models.IsCategoryID(categoryID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}

	var input struct {
		Name  string `json:"name"`
		Kind  string `json:"kind"`
		Group string `json:"group"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if input.Kind == "" {
		input.Kind = string(models.SectionKindCustom)
	}

	section, err := handler.sectionRepo.Create(r.Context(), models.CardSection{
		CategoryID: categoryID,
		Name:       input.Name,
		Removable:  true,
		Kind:       models.SectionKind(input.Kind),
		Group:      models.SectionGroup(input.Group),
	})
	if err != nil {
		writeError(w, err, "failed to create card section")
		return
	}
	writeJSON(w, http.StatusCreated, section)
}

func (handler *SectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	section, err := handler.sectionRepo.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "card section not found")
		return
	}

	var input struct {
		Name  *string `json:"name"`
		Order *int    `json:"order"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Name != nil {
		section.Name = *input.Name
	}
	if input.Order != nil {
		section.Order = *input.Order
	}

	if err := handler.sectionRepo.Update(ctx, section); err != nil {
		writeError(w, err, "failed to update card section")
		return
	}
	writeJSON(w, http.StatusOK, section)
}

// Delete removes a section and its entries. Non-removable sections
// (Goals, Contacts & Websites) are refused.
func (handler *SectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	section, err := handler.sectionRepo.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "card section not found")
		return
	}
	if !section.Removable {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "section is not removable"})
		return
	}

	if err := handler.sectionRepo.Delete(ctx, section.ID); err != nil {
		slog.Error("deleting card section", "error", err)
		writeError(w, err, "failed to delete card section")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *SectionHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := handler.entryRepo.FindBySection(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("finding section entries", "error", err)
		writeError(w, err, "failed to load section entries")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (handler *SectionHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	section, err := handler.sectionRepo.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "card section not found")
		return
	}

	var input struct {
		Name      string   `json:"name"`
		FieldType string   `json:"fieldType"`
		Options   []string `json:"options"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if input.FieldType == "" {
		input.FieldType = string(models.EntryFieldCheckbox)
	}

	entry, err := handler.entryRepo.Create(ctx, models.SectionEntry{
		SectionID: section.ID,
		Name:      input.Name,
		FieldType: models.EntryFieldType(input.FieldType),
		Options:   input.Options,
	})
	if err != nil {
		writeError(w, err, "failed to create section entry")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (handler *SectionHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entry, err := handler.entryRepo.FindByID(ctx, chi.URLParam(r, "entryId"))
	if err != nil {
		writeError(w, err, "section entry not found")
		return
	}

	var input struct {
		Name      *string   `json:"name"`
		FieldType *string   `json:"fieldType"`
		Options   *[]string `json:"options"`
		Order     *int      `json:"order"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Name != nil {
		entry.Name = *input.Name
	}
	if input.FieldType != nil {
		entry.FieldType = models.EntryFieldType(*input.FieldType)
	}
	if input.Options != nil {
		entry.Options = *input.Options
	}
	if input.Order != nil {
		entry.Order = *input.Order
	}

	if err := handler.entryRepo.Update(ctx, entry); err != nil {
		writeError(w, err, "failed to update section entry")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (handler *SectionHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := handler.entryRepo.Delete(r.Context(), chi.URLParam(r, "entryId")); err != nil {
		slog.Error("deleting section entry", "error", err)
		writeError(w, err, "failed to delete section entry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
