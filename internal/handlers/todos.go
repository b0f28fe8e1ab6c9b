package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

// dateParam reads the date query parameter, defaulting to today.
func dateParam(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return today()
}

type TodoHandler struct {
	todoRepo repository.TodoRepository
}

func NewTodoHandler(todoRepo repository.TodoRepository) *TodoHandler {
	return &TodoHandler{todoRepo: todoRepo}
}

func (handler *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := handler.todoRepo.FindByDate(r.Context(), dateParam(r))
	if err != nil {
		slog.Error("finding todos", "error", err)
		writeError(w, err, "failed to load todos")
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

func (handler *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	todo, err := handler.todoRepo.Create(r.Context(), models.Todo{Text: input.Text, Date: input.Date})
	if err != nil {
		slog.Error("creating todo", "error", err)
		writeError(w, err, "failed to create todo")
		return
	}
	writeJSON(w, http.StatusCreated, todo)
}

func (handler *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if err := handler.todoRepo.Toggle(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "todo not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.todoRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting todo", "error", err)
		writeError(w, err, "failed to delete todo")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *TodoHandler) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	if err := handler.todoRepo.DeleteCompletedForDate(r.Context(), dateParam(r)); err != nil {
		slog.Error("clearing completed todos", "error", err)
		writeError(w, err, "failed to clear completed todos")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
