package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/services"
	"github.com/faithfullife/life-dashboard/internal/testutil"
)

type stubVerseSource struct {
	result map[string][]models.VerseText
	err    error
}

func (source *stubVerseSource) Generate(ctx context.Context, religion string) (map[string][]models.VerseText, error) {
	return source.result, source.err
}

func newVerseRouter(t *testing.T, source services.VerseSource) (chi.Router, repository.VerseRepository) {
	t.Helper()
	database := testutil.NewTestDatabase(t)
	verseRepo := repository.NewVerseRepository(database)
	handler := NewVerseHandler(source, services.NewVerseCache(verseRepo, source))

	router := chi.NewRouter()
	router.Post("/api/verse", handler.Generate)
	router.Get("/api/verses/{religion}", handler.List)
	return router, verseRepo
}

func TestVerseHandler_GenerateWithoutSource(t *testing.T) {
	router, _ := newVerseRouter(t, nil)

	request := httptest.NewRequest(http.MethodPost, "/api/verse", strings.NewReader(`{"religion": "christianity"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500 when generation is not configured, got %d", recorder.Code)
	}
}

func TestVerseHandler_GenerateFailureAnswers200(t *testing.T) {
	router, _ := newVerseRouter(t, &stubVerseSource{err: errors.New("model unavailable")})

	request := httptest.NewRequest(http.MethodPost, "/api/verse", strings.NewReader(`{"religion": "christianity"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200 for a generation failure, got %d", recorder.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("expected an error body, got %v", body)
	}
}

func TestVerseHandler_GenerateMissingReligion(t *testing.T) {
	router, _ := newVerseRouter(t, &stubVerseSource{})

	request := httptest.NewRequest(http.MethodPost, "/api/verse", strings.NewReader(`{}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200 for a missing religion, got %d", recorder.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["error"] != "religion is required" {
		t.Errorf("expected the religion error, got %v", body)
	}
}

func TestVerseHandler_GenerateSuccess(t *testing.T) {
	router, _ := newVerseRouter(t, &stubVerseSource{result: map[string][]models.VerseText{
		"spiritual": {{Text: "Be still", Reference: "Psalm 46:10"}},
	}})

	request := httptest.NewRequest(http.MethodPost, "/api/verse", strings.NewReader(`{"religion": "christianity"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	var body struct {
		Verses map[string][]models.VerseText `json:"verses"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Verses["spiritual"]) != 1 || body.Verses["spiritual"][0].Reference != "Psalm 46:10" {
		t.Errorf("expected the generated verses, got %v", body.Verses)
	}
}

func TestVerseHandler_ListServesCachedVerses(t *testing.T) {
	router, verseRepo := newVerseRouter(t, nil)

	if err := verseRepo.PutForReligion(context.Background(), "christianity", map[string][]string{
		"spiritual": {"Be still\n— Psalm 46:10"},
	}); err != nil {
		t.Fatalf("priming cache: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/api/verses/christianity", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	var verses map[string][]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &verses); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(verses["spiritual"]) != 1 {
		t.Errorf("expected the cached verse, got %v", verses)
	}
}
