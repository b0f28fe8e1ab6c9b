package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/testutil"
)

func TestContactWebsiteRepository_CreateAppendsPerCategory(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewContactWebsiteRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, models.ContactWebsite{
		CategoryID: "family", Type: models.ContactTypeContact, LinkOrPhone: "07700 900123",
	})
	if err != nil {
		t.Fatalf("creating contact: %v", err)
	}
	second, err := repo.Create(ctx, models.ContactWebsite{
		CategoryID: "family", Type: models.ContactTypeWebsite, LinkOrPhone: "https://example.com",
	})
	if err != nil {
		t.Fatalf("creating website: %v", err)
	}
	other, err := repo.Create(ctx, models.ContactWebsite{
		CategoryID: "hobby", Type: models.ContactTypeWebsite, LinkOrPhone: "https://hobby.example.com",
	})
	if err != nil {
		t.Fatalf("creating website: %v", err)
	}

	if first.Order != 0 || second.Order != 1 {
		t.Errorf("expected orders 0 and 1 within the category, got %d and %d", first.Order, second.Order)
	}
	if other.Order != 0 {
		t.Errorf("expected an independent order per category, got %d", other.Order)
	}

	family, err := repo.FindByCategory(ctx, "family")
	if err != nil {
		t.Fatalf("finding contacts: %v", err)
	}
	if len(family) != 2 {
		t.Errorf("expected 2 family rows, got %d", len(family))
	}
}

func TestContactWebsiteRepository_RejectsUnknownType(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewContactWebsiteRepository(db)

	_, err := repo.Create(context.Background(), models.ContactWebsite{
		CategoryID: "family", Type: "fax", LinkOrPhone: "x",
	})
	if !errors.Is(err, repository.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestContactWebsiteRepository_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := repository.NewContactWebsiteRepository(db)

	err := repo.Update(context.Background(), models.ContactWebsite{
		ID: "missing", CategoryID: "family", Type: models.ContactTypeContact, LinkOrPhone: "x",
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
