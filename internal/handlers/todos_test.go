package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/testutil"
)

func newTodoRouter(t *testing.T) (chi.Router, repository.TodoRepository) {
	t.Helper()
	database := testutil.NewTestDatabase(t)
	todoRepo := repository.NewTodoRepository(database)
	handler := NewTodoHandler(todoRepo)

	router := chi.NewRouter()
	router.Get("/api/todos", handler.List)
	router.Post("/api/todos", handler.Create)
	router.Post("/api/todos/{id}/toggle", handler.Toggle)
	router.Delete("/api/todos/completed", handler.ClearCompleted)
	router.Delete("/api/todos/{id}", handler.Delete)
	return router, todoRepo
}

func TestTodoHandler_CreateAndList(t *testing.T) {
	router, _ := newTodoRouter(t)

	body := `{"text": "buy milk", "date": "2026-09-01"}`
	request := httptest.NewRequest(http.MethodPost, "/api/todos", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var created models.Todo
	if err := json.Unmarshal(recorder.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created.ID == "" || created.Text != "buy milk" {
		t.Errorf("unexpected created todo: %+v", created)
	}

	request = httptest.NewRequest(http.MethodGet, "/api/todos?date=2026-09-01", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	var todos []models.Todo
	if err := json.Unmarshal(recorder.Body.Bytes(), &todos); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(todos) != 1 || todos[0].ID != created.ID {
		t.Errorf("expected the created todo listed, got %+v", todos)
	}
}

func TestTodoHandler_CreateRequiresText(t *testing.T) {
	router, _ := newTodoRouter(t)

	request := httptest.NewRequest(http.MethodPost, "/api/todos", strings.NewReader(`{"date": "2026-09-01"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for missing text, got %d", recorder.Code)
	}
}

func TestTodoHandler_ToggleMissingReturns404(t *testing.T) {
	router, _ := newTodoRouter(t)

	request := httptest.NewRequest(http.MethodPost, "/api/todos/missing/toggle", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for unknown todo, got %d", recorder.Code)
	}
}

func TestTodoHandler_ClearCompleted(t *testing.T) {
	router, todoRepo := newTodoRouter(t)
	ctx := context.Background()

	done, err := todoRepo.Create(ctx, models.Todo{Text: "done", Date: "2026-09-01"})
	if err != nil {
		t.Fatalf("creating todo: %v", err)
	}
	if err := todoRepo.Toggle(ctx, done.ID); err != nil {
		t.Fatalf("completing todo: %v", err)
	}
	if _, err := todoRepo.Create(ctx, models.Todo{Text: "pending", Date: "2026-09-01"}); err != nil {
		t.Fatalf("creating todo: %v", err)
	}

	request := httptest.NewRequest(http.MethodDelete, "/api/todos/completed?date=2026-09-01", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	todos, err := todoRepo.FindByDate(ctx, "2026-09-01")
	if err != nil {
		t.Fatalf("finding todos: %v", err)
	}
	if len(todos) != 1 || todos[0].Text != "pending" {
		t.Errorf("expected only the pending todo left, got %+v", todos)
	}
}
