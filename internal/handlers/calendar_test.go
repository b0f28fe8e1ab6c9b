package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ical "github.com/arran4/golang-ical"
	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/testutil"
)

func TestCalendarHandler_Feed(t *testing.T) {
	database := testutil.NewTestDatabase(t)
	todoRepo := repository.NewTodoRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	handler := NewCalendarHandler(todoRepo, goalRepo)
	ctx := context.Background()

	todo, err := todoRepo.Create(ctx, models.Todo{Text: "buy milk, eggs", Date: "2026-09-01"})
	if err != nil {
		t.Fatalf("creating todo: %v", err)
	}
	if err := todoRepo.Toggle(ctx, todo.ID); err != nil {
		t.Fatalf("completing todo: %v", err)
	}
	goal, err := goalRepo.Create(ctx, models.Goal{
		Text: "finish the garden", GoalType: models.GoalShort, CategoryID: "hobby", Date: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("creating goal: %v", err)
	}

	router := chi.NewRouter()
	router.Get("/calendar.ics", handler.Feed)

	request := httptest.NewRequest(http.MethodGet, "/calendar.ics?date=2026-09-01", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); !strings.HasPrefix(contentType, "text/calendar") {
		t.Errorf("expected a text/calendar content type, got %q", contentType)
	}

	body := recorder.Body.String()
	if _, err := ical.ParseCalendar(strings.NewReader(body)); err != nil {
		t.Fatalf("feed does not parse as iCalendar: %v", err)
	}

	if !strings.Contains(body, "UID:todo-"+todo.ID+"@life-dashboard") {
		t.Error("expected the todo in the feed")
	}
	if !strings.Contains(body, "SUMMARY:buy milk\\, eggs") {
		t.Error("expected commas escaped in the summary")
	}
	if !strings.Contains(body, "STATUS:COMPLETED") {
		t.Error("expected the completed todo marked COMPLETED")
	}
	if !strings.Contains(body, "UID:goal-"+goal.ID+"@life-dashboard") {
		t.Error("expected the goal in the feed")
	}
	if !strings.Contains(body, "DUE;VALUE=DATE:20260901") {
		t.Error("expected the goal's due date")
	}
	if !strings.Contains(body, "SUMMARY:[short] finish the garden") {
		t.Error("expected the goal type in the summary")
	}
}

func TestEscapeICalText(t *testing.T) {
	got := escapeICalText("a;b,c\nd\\e")
	want := "a\\;b\\,c\\nd\\\\e"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
