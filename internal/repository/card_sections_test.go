package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/testutil"
)

func TestCardSectionRepository_ListOrdersBySortOrder(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewCardSectionRepository(db)
	ctx := context.Background()

	for _, order := range []int{2, 0, 1} {
		_, err := repo.CreateAt(ctx, models.CardSection{
			CategoryID: "hobby",
			Name:       "section",
			Order:      order,
			Removable:  true,
			Kind:       models.SectionKindCustom,
		})
		if err != nil {
			t.Fatalf("creating section: %v", err)
		}
	}

	sections, err := repo.FindByCategory(ctx, "hobby")
	if err != nil {
		t.Fatalf("finding sections: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	for i, section := range sections {
		if section.Order != i {
			t.Errorf("position %d: expected order %d, got %d", i, i, section.Order)
		}
	}
}

func TestCardSectionRepository_CreateAppends(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewCardSectionRepository(db)
	ctx := context.Background()

	first, _ := repo.Create(ctx, models.CardSection{
		CategoryID: "politics", Name: "First", Removable: true, Kind: models.SectionKindCustom,
	})
	second, _ := repo.Create(ctx, models.CardSection{
		CategoryID: "politics", Name: "Second", Removable: true, Kind: models.SectionKindCustom,
	})

	if first.Order != 0 || second.Order != 1 {
		t.Errorf("expected appended orders 0 and 1, got %d and %d", first.Order, second.Order)
	}
}

func TestCardSectionRepository_GroupedInsertShiftsLaterSections(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewCardSectionRepository(db)
	ctx := context.Background()

	repo.CreateAt(ctx, models.CardSection{CategoryID: "physical", Name: "Goals", Order: 0, Kind: models.SectionKindGoals})
	repo.CreateAt(ctx, models.CardSection{CategoryID: "physical", Name: "Diet", Order: 1, Removable: true, Kind: models.SectionKindCustom, Group: models.SectionGroupDiet})
	repo.CreateAt(ctx, models.CardSection{CategoryID: "physical", Name: "Exercise", Order: 2, Removable: true, Kind: models.SectionKindCustom, Group: models.SectionGroupExercise})
	repo.CreateAt(ctx, models.CardSection{CategoryID: "physical", Name: "Contacts & Websites", Order: 3, Kind: models.SectionKindContactsWebsites})

	created, err := repo.Create(ctx, models.CardSection{
		CategoryID: "physical", Name: "Snacks", Removable: true,
		Kind: models.SectionKindCustom, Group: models.SectionGroupDiet,
	})
	if err != nil {
		t.Fatalf("creating grouped section: %v", err)
	}
	if created.Order != 2 {
		t.Errorf("expected insertion after existing diet section at order 2, got %d", created.Order)
	}

	sections, _ := repo.FindByCategory(ctx, "physical")
	if len(sections) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(sections))
	}
	byName := map[string]int{}
	for _, section := range sections {
		byName[section.Name] = section.Order
	}
	if byName["Exercise"] != 3 || byName["Contacts & Websites"] != 4 {
		t.Errorf("expected later sections shifted, got %v", byName)
	}
}

func TestCardSectionRepository_DeleteCascadesEntries(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	sectionRepo := repository.NewCardSectionRepository(db)
	entryRepo := repository.NewSectionEntryRepository(db)
	ctx := context.Background()

	section, err := sectionRepo.Create(ctx, models.CardSection{
		CategoryID: "hobby", Name: "Projects", Removable: true, Kind: models.SectionKindCustom,
	})
	if err != nil {
		t.Fatalf("creating section: %v", err)
	}
	for _, name := range []string{"one", "two", "three"} {
		if _, err := entryRepo.Create(ctx, models.SectionEntry{
			SectionID: section.ID, Name: name, FieldType: models.EntryFieldCheckbox,
		}); err != nil {
			t.Fatalf("creating entry: %v", err)
		}
	}

	if err := sectionRepo.Delete(ctx, section.ID); err != nil {
		t.Fatalf("deleting section: %v", err)
	}

	entries, err := entryRepo.FindBySection(ctx, section.ID)
	if err != nil {
		t.Fatalf("finding entries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no orphaned entries, got %d", len(entries))
	}
	if _, err := sectionRepo.FindByID(ctx, section.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected section gone, got %v", err)
	}
}

func TestCardSectionRepository_RejectsUnknownKind(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewCardSectionRepository(db)

	_, err := repo.Create(context.Background(), models.CardSection{
		CategoryID: "hobby", Name: "bad", Kind: "sidebar",
	})
	if !errors.Is(err, repository.ErrInvalid) {
		t.Errorf("expected ErrInvalid for unknown kind, got %v", err)
	}
}

func TestSectionEntryRepository_RejectsUnknownFieldType(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	sectionRepo := repository.NewCardSectionRepository(db)
	entryRepo := repository.NewSectionEntryRepository(db)
	ctx := context.Background()

	section, _ := sectionRepo.Create(ctx, models.CardSection{
		CategoryID: "hobby", Name: "Projects", Removable: true, Kind: models.SectionKindCustom,
	})

	_, err := entryRepo.Create(ctx, models.SectionEntry{
		SectionID: section.ID, Name: "bad", FieldType: "slider",
	})
	if !errors.Is(err, repository.ErrInvalid) {
		t.Errorf("expected ErrInvalid for unknown field type, got %v", err)
	}
}
