package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

// Seeder bootstraps the default templates, card sections and settings on
// first run. Every step checks before inserting so reruns are no-ops.
type Seeder struct {
	settingsRepo repository.SettingsRepository
	templateRepo repository.TrackerTemplateRepository
	sectionRepo  repository.CardSectionRepository
	textToolRepo repository.TextToolRepository
}

func NewSeeder(
	settingsRepo repository.SettingsRepository,
	templateRepo repository.TrackerTemplateRepository,
	sectionRepo repository.CardSectionRepository,
	textToolRepo repository.TextToolRepository,
) *Seeder {
	return &Seeder{
		settingsRepo: settingsRepo,
		templateRepo: templateRepo,
		sectionRepo:  sectionRepo,
		textToolRepo: textToolRepo,
	}
}

var defaultTrackerTemplates = []models.TrackerTemplate{
	{CategoryID: "physical", Type: "meal_plan", Label: "Meal plan", FieldType: models.TrackerFieldText, Order: 0},
	{CategoryID: "physical", Type: "vitamins", Label: "Vitamins & Supplements", FieldType: models.TrackerFieldCheckbox, Order: 1},
	{CategoryID: "physical", Type: "medication", Label: "Medication", FieldType: models.TrackerFieldCheckbox, Order: 2},
	{CategoryID: "physical", Type: "exercise", Label: "Running", FieldType: models.TrackerFieldCheckbox, Order: 3},
	{CategoryID: "physical", Type: "exercise", Label: "Walking", FieldType: models.TrackerFieldCheckbox, Order: 4},
	{CategoryID: "physical", Type: "exercise", Label: "Weights / Gym", FieldType: models.TrackerFieldCheckbox, Order: 5},
}

// customSectionsByCategory holds the category-specific sections inserted
// between the Goals and Contacts & Websites anchors. Only the physical
// category carries grouped sections.
var customSectionsByCategory = map[string][]models.CardSection{
	"physical": {
		{Name: "Diet", Kind: models.SectionKindCustom, Group: models.SectionGroupDiet, Removable: true},
		{Name: "Exercise", Kind: models.SectionKindCustom, Group: models.SectionGroupExercise, Removable: true},
	},
}

func (seeder *Seeder) Run(ctx context.Context) error {
	if err := seeder.seedTrackerTemplates(ctx); err != nil {
		return err
	}
	if err := seeder.seedCardSections(ctx); err != nil {
		return err
	}
	if err := seeder.seedSettings(ctx); err != nil {
		return err
	}
	if err := seeder.seedTextTool(ctx); err != nil {
		return err
	}
	return nil
}

func (seeder *Seeder) seedTrackerTemplates(ctx context.Context) error {
	count, err := seeder.templateRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting tracker templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	slog.Info("Seeding default tracker templates", "count", len(defaultTrackerTemplates))
	for _, template := range defaultTrackerTemplates {
		if _, err := seeder.templateRepo.Create(ctx, template); err != nil {
			return fmt.Errorf("seeding tracker template %q: %w", template.Label, err)
		}
	}
	return nil
}

func (seeder *Seeder) seedCardSections(ctx context.Context) error {
	for _, categoryID := range models.CategoryIDs {
		count, err := seeder.sectionRepo.CountByCategory(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("counting card sections: %w", err)
		}
		if count > 0 {
			continue
		}

		sections := []models.CardSection{
			{Name: "Goals", Kind: models.SectionKindGoals, Removable: false},
		}
		sections = append(sections, customSectionsByCategory[categoryID]...)
		sections = append(sections, models.CardSection{
			Name: "Contacts & Websites", Kind: models.SectionKindContactsWebsites, Removable: false,
		})

		slog.Info("Seeding default card sections", "category", categoryID, "count", len(sections))
		for i, section := range sections {
			section.CategoryID = categoryID
			section.Order = i
			if _, err := seeder.sectionRepo.CreateAt(ctx, section); err != nil {
				return fmt.Errorf("seeding card section %q: %w", section.Name, err)
			}
		}
	}
	return nil
}

func (seeder *Seeder) seedSettings(ctx context.Context) error {
	_, err := seeder.settingsRepo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("checking user settings: %w", err)
	}

	slog.Info("Seeding default user settings")
	return seeder.settingsRepo.Put(ctx, models.UserSettings{
		ID:       models.SettingsID,
		Religion: "christianity",
		DarkMode: false,
		Email:    "your-email@example.com",
	})
}

func (seeder *Seeder) seedTextTool(ctx context.Context) error {
	tool, err := seeder.textToolRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("checking text tool: %w", err)
	}
	if !tool.UpdatedAt.IsZero() {
		return nil
	}
	return seeder.textToolRepo.Set(ctx, "")
}
