package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

// VerseSource produces two verses per category for a religion.
type VerseSource interface {
	Generate(ctx context.Context, religion string) (map[string][]models.VerseText, error)
}

// VerseCache serves formatted verses from the database, refreshing through
// the source when the cached rows for a religion are older than the TTL.
// A failing source falls back to the stale cache so the dashboard keeps
// showing something.
type VerseCache struct {
	verseRepo repository.VerseRepository
	source    VerseSource
	cacheTTL  time.Duration
	now       func() time.Time
}

func NewVerseCache(verseRepo repository.VerseRepository, source VerseSource) *VerseCache {
	return &VerseCache{
		verseRepo: verseRepo,
		source:    source,
		cacheTTL:  time.Hour,
		now:       time.Now,
	}
}

// VersesFor returns the formatted verse strings for every category of a
// religion. Never returns an error for a source failure: stale rows win
// over fresh failures, and an empty map is the last resort.
func (cache *VerseCache) VersesFor(ctx context.Context, religion string) (map[string][]string, error) {
	lastUpdated, err := cache.verseRepo.LastUpdated(ctx, religion)
	if err != nil {
		return nil, fmt.Errorf("checking verse freshness: %w", err)
	}

	fresh := !lastUpdated.IsZero() && cache.now().Sub(lastUpdated) < cache.cacheTTL
	if fresh || cache.source == nil {
		return cache.cached(ctx, religion)
	}

	generated, err := cache.source.Generate(ctx, religion)
	if err != nil {
		slog.Warn("Verse generation failed, serving cached verses", "religion", religion, "error", err)
		return cache.cached(ctx, religion)
	}

	formatted := FormatVerses(generated)
	if err := cache.verseRepo.PutForReligion(ctx, religion, formatted); err != nil {
		return nil, fmt.Errorf("caching verses: %w", err)
	}
	return formatted, nil
}

func (cache *VerseCache) cached(ctx context.Context, religion string) (map[string][]string, error) {
	rows, err := cache.verseRepo.FindByReligion(ctx, religion)
	if err != nil {
		return nil, fmt.Errorf("reading cached verses: %w", err)
	}
	byCategory := map[string][]string{}
	for _, row := range rows {
		byCategory[row.CategoryID] = row.Verses
	}
	return byCategory, nil
}

// FormatVerses flattens {text, reference} pairs into the display strings
// stored in the cache.
func FormatVerses(byCategory map[string][]models.VerseText) map[string][]string {
	formatted := make(map[string][]string, len(byCategory))
	for categoryID, verses := range byCategory {
		lines := make([]string, 0, len(verses))
		for _, verse := range verses {
			lines = append(lines, verse.Text+"\n— "+verse.Reference)
		}
		formatted[categoryID] = lines
	}
	return formatted
}
