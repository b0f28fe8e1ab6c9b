package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

// RolloverService archives a day at midnight: one global snapshot, one
// snapshot per category, a journal line per todo, then completed todos are
// removed. Snapshots are keyed by date so running it twice for the same
// date overwrites rather than duplicates.
type RolloverService struct {
	todoRepo       repository.TodoRepository
	trackerLogRepo repository.TrackerLogRepository
	templateRepo   repository.TrackerTemplateRepository
	sectionRepo    repository.CardSectionRepository
	entryRepo      repository.SectionEntryRepository
	dailyGoalsRepo repository.DailyGoalsRepository
	snapshotRepo   repository.SnapshotRepository
}

func NewRolloverService(
	todoRepo repository.TodoRepository,
	trackerLogRepo repository.TrackerLogRepository,
	templateRepo repository.TrackerTemplateRepository,
	sectionRepo repository.CardSectionRepository,
	entryRepo repository.SectionEntryRepository,
	dailyGoalsRepo repository.DailyGoalsRepository,
	snapshotRepo repository.SnapshotRepository,
) *RolloverService {
	return &RolloverService{
		todoRepo:       todoRepo,
		trackerLogRepo: trackerLogRepo,
		templateRepo:   templateRepo,
		sectionRepo:    sectionRepo,
		entryRepo:      entryRepo,
		dailyGoalsRepo: dailyGoalsRepo,
		snapshotRepo:   snapshotRepo,
	}
}

func (service *RolloverService) Run(ctx context.Context, date string) error {
	todos, err := service.todoRepo.FindByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("gathering todos: %w", err)
	}
	trackerLogs, err := service.trackerLogRepo.FindByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("gathering tracker logs: %w", err)
	}

	labels, err := service.labelLookup(ctx)
	if err != nil {
		return err
	}

	goalsByCategory := make(map[string][]models.DailyGoalItem, len(models.CategoryIDs))
	for _, categoryID := range models.CategoryIDs {
		goals, err := service.dailyGoalsRepo.Get(ctx, categoryID, date)
		if err != nil {
			return fmt.Errorf("gathering daily goals: %w", err)
		}
		goalsByCategory[categoryID] = goals
	}

	snapshots := []models.DailySnapshot{service.globalSnapshot(date, todos, trackerLogs, labels, goalsByCategory)}
	for _, categoryID := range models.CategoryIDs {
		snapshot, err := service.categorySnapshot(ctx, date, categoryID, trackerLogs, labels, goalsByCategory[categoryID])
		if err != nil {
			return err
		}
		snapshots = append(snapshots, snapshot)
	}

	entries := make([]models.JournalEntry, 0, len(todos))
	for _, todo := range todos {
		prefix := "[NOT DONE] "
		if todo.Completed {
			prefix = "[DONE] "
		}
		entries = append(entries, models.JournalEntry{
			Text:     prefix + todo.Text,
			Category: "todos",
			Date:     date,
		})
	}

	if err := service.snapshotRepo.ApplyRollover(ctx, date, snapshots, entries); err != nil {
		return fmt.Errorf("applying rollover: %w", err)
	}

	slog.Info("End of day rollover complete",
		"date", date, "todos", len(todos), "snapshots", len(snapshots))
	return nil
}

// labelLookup maps a tracker log's template id to a display label. Logs
// reference either a section entry or a seeded tracker template, so both
// id spaces feed the map.
func (service *RolloverService) labelLookup(ctx context.Context) (map[string]string, error) {
	labels := make(map[string]string)

	templates, err := service.templateRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("gathering tracker templates: %w", err)
	}
	for _, template := range templates {
		labels[template.ID] = template.Label
	}

	entries, err := service.entryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("gathering section entries: %w", err)
	}
	for _, entry := range entries {
		labels[entry.ID] = entry.Name
	}
	return labels, nil
}

func (service *RolloverService) globalSnapshot(
	date string,
	todos []models.Todo,
	trackerLogs []models.DailyTrackerLog,
	labels map[string]string,
	goalsByCategory map[string][]models.DailyGoalItem,
) models.DailySnapshot {
	snapshot := models.DailySnapshot{
		ID:           models.SnapshotID(date, ""),
		Date:         date,
		TodosDone:    []models.SnapshotTodo{},
		TodosNotDone: []models.SnapshotTodo{},
		TrackerLog:   trackerLogLines(trackerLogs, labels),
		GoalsLog:     []models.GoalLogLine{},
		JournalExtra: []string{},
	}

	for _, todo := range todos {
		if todo.Completed {
			snapshot.TodosDone = append(snapshot.TodosDone, models.SnapshotTodo{Text: todo.Text, Completed: true})
		} else {
			snapshot.TodosNotDone = append(snapshot.TodosNotDone, models.SnapshotTodo{Text: todo.Text})
		}
	}

	for _, categoryID := range models.CategoryIDs {
		for _, goal := range goalsByCategory[categoryID] {
			snapshot.GoalsLog = append(snapshot.GoalsLog, models.GoalLogLine{Text: goal.Text, Type: goal.Type})
		}
	}
	return snapshot
}

// categorySnapshot keeps only the tracker lines belonging to the category,
// matched through its card sections' entries and its tracker templates.
func (service *RolloverService) categorySnapshot(
	ctx context.Context,
	date, categoryID string,
	trackerLogs []models.DailyTrackerLog,
	labels map[string]string,
	goals []models.DailyGoalItem,
) (models.DailySnapshot, error) {
	categoryIDs := make(map[string]bool)

	templates, err := service.templateRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return models.DailySnapshot{}, fmt.Errorf("gathering category templates: %w", err)
	}
	for _, template := range templates {
		categoryIDs[template.ID] = true
	}

	sections, err := service.sectionRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return models.DailySnapshot{}, fmt.Errorf("gathering category sections: %w", err)
	}
	for _, section := range sections {
		entries, err := service.entryRepo.FindBySection(ctx, section.ID)
		if err != nil {
			return models.DailySnapshot{}, fmt.Errorf("gathering section entries: %w", err)
		}
		for _, entry := range entries {
			categoryIDs[entry.ID] = true
		}
	}

	var categoryLogs []models.DailyTrackerLog
	for _, log := range trackerLogs {
		if categoryIDs[log.TemplateID] {
			categoryLogs = append(categoryLogs, log)
		}
	}

	goalsLog := []models.GoalLogLine{}
	for _, goal := range goals {
		goalsLog = append(goalsLog, models.GoalLogLine{Text: goal.Text, Type: goal.Type})
	}

	return models.DailySnapshot{
		ID:           models.SnapshotID(date, categoryID),
		Date:         date,
		CategoryID:   categoryID,
		TodosDone:    []models.SnapshotTodo{},
		TodosNotDone: []models.SnapshotTodo{},
		TrackerLog:   trackerLogLines(categoryLogs, labels),
		GoalsLog:     goalsLog,
		JournalExtra: []string{},
	}, nil
}

func trackerLogLines(logs []models.DailyTrackerLog, labels map[string]string) []models.TrackerLogLine {
	lines := []models.TrackerLogLine{}
	for _, log := range logs {
		label := labels[log.TemplateID]
		if label == "" {
			label = log.TemplateID
		}
		lines = append(lines, models.TrackerLogLine{Label: label, Completed: log.Completed, Value: log.Value})
	}
	return lines
}
