package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/faithfullife/life-dashboard/internal/repository"
)

// CalendarHandler exports today's todos and dated goals as an iCal feed
// for external calendar apps.
type CalendarHandler struct {
	todoRepo repository.TodoRepository
	goalRepo repository.GoalRepository
}

func NewCalendarHandler(todoRepo repository.TodoRepository, goalRepo repository.GoalRepository) *CalendarHandler {
	return &CalendarHandler{todoRepo: todoRepo, goalRepo: goalRepo}
}

func (handler *CalendarHandler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	date := dateParam(r)

	todos, err := handler.todoRepo.FindByDate(ctx, date)
	if err != nil {
		slog.Error("finding todos for calendar", "error", err)
		http.Error(w, "Error", http.StatusInternalServerError)
		return
	}

	goals, err := handler.goalRepo.FindAll(ctx, repository.GoalFilter{Date: date})
	if err != nil {
		slog.Error("finding goals for calendar", "error", err)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=life-dashboard.ics")

	var builder strings.Builder
	builder.WriteString("BEGIN:VCALENDAR\r\n")
	builder.WriteString("VERSION:2.0\r\n")
	builder.WriteString("PRODID:-//Life Dashboard//Life Dashboard//EN\r\n")
	builder.WriteString("CALSCALE:GREGORIAN\r\n")
	builder.WriteString("METHOD:PUBLISH\r\n")
	builder.WriteString("X-WR-CALNAME:Life Dashboard\r\n")

	for _, todo := range todos {
		builder.WriteString("BEGIN:VTODO\r\n")
		builder.WriteString(fmt.Sprintf("UID:todo-%s@life-dashboard\r\n", todo.ID))
		builder.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICalText(todo.Text)))
		if todo.Completed {
			builder.WriteString("STATUS:COMPLETED\r\n")
		} else {
			builder.WriteString("STATUS:NEEDS-ACTION\r\n")
		}
		builder.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", todo.CreatedAt.UTC().Format("20060102T150405Z")))
		builder.WriteString("END:VTODO\r\n")
	}

	for _, goal := range goals {
		builder.WriteString("BEGIN:VTODO\r\n")
		builder.WriteString(fmt.Sprintf("UID:goal-%s@life-dashboard\r\n", goal.ID))
		builder.WriteString(fmt.Sprintf("SUMMARY:[%s] %s\r\n", goal.GoalType, escapeICalText(goal.Text)))
		if parsedDate, err := time.Parse("2006-01-02", goal.Date); err == nil {
			builder.WriteString(fmt.Sprintf("DUE;VALUE=DATE:%s\r\n", parsedDate.Format("20060102")))
		}
		if goal.Completed {
			builder.WriteString("STATUS:COMPLETED\r\n")
		} else {
			builder.WriteString("STATUS:NEEDS-ACTION\r\n")
		}
		builder.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", goal.CreatedAt.UTC().Format("20060102T150405Z")))
		builder.WriteString("END:VTODO\r\n")
	}

	builder.WriteString("END:VCALENDAR\r\n")

	w.Write([]byte(builder.String()))
}

func escapeICalText(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, ";", "\\;")
	text = strings.ReplaceAll(text, ",", "\\,")
	text = strings.ReplaceAll(text, "\n", "\\n")
	return text
}
