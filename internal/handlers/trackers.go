package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

type TrackerHandler struct {
	templateRepo repository.TrackerTemplateRepository
	logRepo      repository.TrackerLogRepository
}

func NewTrackerHandler(templateRepo repository.TrackerTemplateRepository, logRepo repository.TrackerLogRepository) *TrackerHandler {
	return &TrackerHandler{templateRepo: templateRepo, logRepo: logRepo}
}

func (handler *TrackerHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var templates []models.TrackerTemplate
	var err error
	if categoryID := r.URL.Query().Get("category"); categoryID != "" {
		templates, err = handler.templateRepo.FindByCategory(ctx, categoryID)
	} else {
		templates, err = handler.templateRepo.FindAll(ctx)
	}
	if err != nil {
		slog.Error("finding tracker templates", "error", err)
		writeError(w, err, "failed to load tracker templates")
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (handler *TrackerHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CategoryID string   `json:"categoryId"`
		Type       string   `json:"type"`
		Label      string   `json:"label"`
		FieldType  string   `json:"fieldType"`
		Options    []string `json:"options"`
		Order      int      `json:"order"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Label == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "label is required"})
		return
	}

	template, err := handler.templateRepo.Create(r.Context(), models.TrackerTemplate{
		CategoryID: input.CategoryID,
		Type:       input.Type,
		Label:      input.Label,
		FieldType:  models.TrackerFieldType(input.FieldType),
		Options:    input.Options,
		Order:      input.Order,
	})
	if err != nil {
		writeError(w, err, "failed to create tracker template")
		return
	}
	writeJSON(w, http.StatusCreated, template)
}

func (handler *TrackerHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	template, err := handler.templateRepo.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "tracker template not found")
		return
	}

	var input struct {
		Label     *string   `json:"label"`
		FieldType *string   `json:"fieldType"`
		Options   *[]string `json:"options"`
		Order     *int      `json:"order"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Label != nil {
		template.Label = *input.Label
	}
	if input.FieldType != nil {
		template.FieldType = models.TrackerFieldType(*input.FieldType)
	}
	if input.Options != nil {
		template.Options = *input.Options
	}
	if input.Order != nil {
		template.Order = *input.Order
	}

	if err := handler.templateRepo.Update(ctx, template); err != nil {
		writeError(w, err, "failed to update tracker template")
		return
	}
	writeJSON(w, http.StatusOK, template)
}

func (handler *TrackerHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := handler.templateRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting tracker template", "error", err)
		writeError(w, err, "failed to delete tracker template")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *TrackerHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	logs, err := handler.logRepo.FindByDate(r.Context(), dateParam(r))
	if err != nil {
		slog.Error("finding tracker log", "error", err)
		writeError(w, err, "failed to load tracker log")
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// SetLog upserts one day's state for a template.
func (handler *TrackerHandler) SetLog(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Date       string `json:"date"`
		TemplateID string `json:"templateId"`
		Completed  bool   `json:"completed"`
		Value      string `json:"value"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.TemplateID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "templateId is required"})
		return
	}
	if input.Date == "" {
		input.Date = today()
	}

	if err := handler.logRepo.Set(r.Context(), input.Date, input.TemplateID, input.Completed, input.Value); err != nil {
		slog.Error("setting tracker log", "error", err)
		writeError(w, err, "failed to save tracker log")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
