package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

type GoalHandler struct {
	goalRepo       repository.GoalRepository
	dailyGoalsRepo repository.DailyGoalsRepository
}

func NewGoalHandler(goalRepo repository.GoalRepository, dailyGoalsRepo repository.DailyGoalsRepository) *GoalHandler {
	return &GoalHandler{goalRepo: goalRepo, dailyGoalsRepo: dailyGoalsRepo}
}

func (handler *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.GoalFilter{
		Date:       r.URL.Query().Get("date"),
		CategoryID: r.URL.Query().Get("category"),
	}
	goals, err := handler.goalRepo.FindAll(r.Context(), filter)
	if err != nil {
		slog.Error("finding goals", "error", err)
		writeError(w, err, "failed to load goals")
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (handler *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Text       string `json:"text"`
		GoalType   string `json:"goalType"`
		CategoryID string `json:"categoryId"`
		Date       string `json:"date"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}

	goal, err := handler.goalRepo.Create(r.Context(), models.Goal{
		Text:       input.Text,
		GoalType:   models.GoalType(input.GoalType),
		CategoryID: input.CategoryID,
		Date:       input.Date,
	})
	if err != nil {
		writeError(w, err, "failed to create goal")
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

// Update merges the submitted fields into the stored goal.
func (handler *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	goal, err := handler.goalRepo.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "goal not found")
		return
	}

	var input struct {
		Text      *string `json:"text"`
		GoalType  *string `json:"goalType"`
		Date      *string `json:"date"`
		Completed *bool   `json:"completed"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Text != nil {
		goal.Text = *input.Text
	}
	if input.GoalType != nil {
		goal.GoalType = models.GoalType(*input.GoalType)
	}
	if input.Date != nil {
		goal.Date = *input.Date
	}
	if input.Completed != nil {
		goal.Completed = *input.Completed
	}

	if err := handler.goalRepo.Update(ctx, goal); err != nil {
		writeError(w, err, "failed to update goal")
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (handler *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.goalRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting goal", "error", err)
		writeError(w, err, "failed to delete goal")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *GoalHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if !models.IsCategoryID(categoryID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}
	goals, err := handler.dailyGoalsRepo.Get(r.Context(), categoryID, dateParam(r))
	if err != nil {
		slog.Error("getting daily goals", "error", err)
		writeError(w, err, "failed to load daily goals")
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (handler *GoalHandler) SetDaily(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if !models.IsCategoryID(categoryID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}

	var input struct {
		Date  string                 `json:"date"`
		Goals []models.DailyGoalItem `json:"goals"`
	}
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if input.Date == "" {
		input.Date = today()
	}

	if err := handler.dailyGoalsRepo.Set(r.Context(), categoryID, input.Date, input.Goals); err != nil {
		slog.Error("setting daily goals", "error", err)
		writeError(w, err, "failed to save daily goals")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
