package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/faithfullife/life-dashboard/internal/config"
	"github.com/faithfullife/life-dashboard/internal/handlers"
	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/services"
)

type Server struct {
	router *chi.Mux
	config config.Config
}

func New(database *sql.DB, cfg config.Config, rolloverService *services.RolloverService) *Server {
	settingsRepo := repository.NewSettingsRepository(database)
	verseRepo := repository.NewVerseRepository(database)
	todoRepo := repository.NewTodoRepository(database)
	actionRepo := repository.NewActionRepository(database)
	journalRepo := repository.NewJournalRepository(database)
	snapshotRepo := repository.NewSnapshotRepository(database)
	templateRepo := repository.NewTrackerTemplateRepository(database)
	logRepo := repository.NewTrackerLogRepository(database)
	hobbyLinkRepo := repository.NewHobbyLinkRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	sectionRepo := repository.NewCardSectionRepository(database)
	entryRepo := repository.NewSectionEntryRepository(database)
	dailyGoalsRepo := repository.NewDailyGoalsRepository(database)
	contactRepo := repository.NewContactWebsiteRepository(database)
	dataRepo := repository.NewCategoryDataRepository(database)
	textToolRepo := repository.NewTextToolRepository(database)

	var verseSource services.VerseSource
	if cfg.AnthropicAPIKey != "" {
		verseSource = services.NewAnthropicVerseSource(cfg.AnthropicAPIKey, cfg.VerseModel)
	}
	verseCache := services.NewVerseCache(verseRepo, verseSource)
	financeService := services.NewFinanceService(dataRepo)
	familyService := services.NewFamilyService(dataRepo)

	settingsHandler := handlers.NewSettingsHandler(settingsRepo)
	todoHandler := handlers.NewTodoHandler(todoRepo)
	actionHandler := handlers.NewActionHandler(actionRepo)
	journalHandler := handlers.NewJournalHandler(journalRepo)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotRepo)
	trackerHandler := handlers.NewTrackerHandler(templateRepo, logRepo)
	hobbyLinkHandler := handlers.NewHobbyLinkHandler(hobbyLinkRepo)
	goalHandler := handlers.NewGoalHandler(goalRepo, dailyGoalsRepo)
	sectionHandler := handlers.NewSectionHandler(sectionRepo, entryRepo)
	contactHandler := handlers.NewContactWebsiteHandler(contactRepo)
	dataHandler := handlers.NewCategoryDataHandler(dataRepo, financeService, familyService)
	textToolHandler := handlers.NewTextToolHandler(textToolRepo)
	verseHandler := handlers.NewVerseHandler(verseSource, verseCache)
	rolloverHandler := handlers.NewRolloverHandler(rolloverService)
	calendarHandler := handlers.NewCalendarHandler(todoRepo, goalRepo)

	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Get("/calendar.ics", calendarHandler.Feed)

	router.Route("/api", func(r chi.Router) {
		r.Get("/settings", settingsHandler.Get)
		r.Put("/settings", settingsHandler.Put)

		r.Get("/todos", todoHandler.List)
		r.Post("/todos", todoHandler.Create)
		r.Delete("/todos/completed", todoHandler.ClearCompleted)
		r.Post("/todos/{id}/toggle", todoHandler.Toggle)
		r.Delete("/todos/{id}", todoHandler.Delete)

		r.Get("/actions", actionHandler.List)
		r.Post("/actions", actionHandler.Create)
		r.Post("/actions/{id}/toggle", actionHandler.Toggle)
		r.Delete("/actions/{id}", actionHandler.Delete)

		r.Get("/journal", journalHandler.List)
		r.Post("/journal", journalHandler.Create)

		r.Get("/snapshots", snapshotHandler.List)
		r.Get("/snapshots/{date}", snapshotHandler.Get)
		r.Get("/categories/{categoryId}/snapshots", snapshotHandler.ListByCategory)

		r.Get("/tracker-templates", trackerHandler.ListTemplates)
		r.Post("/tracker-templates", trackerHandler.CreateTemplate)
		r.Put("/tracker-templates/{id}", trackerHandler.UpdateTemplate)
		r.Delete("/tracker-templates/{id}", trackerHandler.DeleteTemplate)
		r.Get("/tracker-log", trackerHandler.GetLog)
		r.Put("/tracker-log", trackerHandler.SetLog)

		r.Get("/hobby-links", hobbyLinkHandler.List)
		r.Post("/hobby-links", hobbyLinkHandler.Create)
		r.Put("/hobby-links/{id}", hobbyLinkHandler.Update)
		r.Delete("/hobby-links/{id}", hobbyLinkHandler.Delete)

		r.Get("/goals", goalHandler.List)
		r.Post("/goals", goalHandler.Create)
		r.Put("/goals/{id}", goalHandler.Update)
		r.Delete("/goals/{id}", goalHandler.Delete)

		r.Get("/categories/{categoryId}/daily-goals", goalHandler.GetDaily)
		r.Put("/categories/{categoryId}/daily-goals", goalHandler.SetDaily)

		r.Get("/categories/{categoryId}/sections", sectionHandler.List)
		r.Post("/categories/{categoryId}/sections", sectionHandler.Create)
		r.Put("/sections/{id}", sectionHandler.Update)
		r.Delete("/sections/{id}", sectionHandler.Delete)
		r.Get("/sections/{id}/entries", sectionHandler.ListEntries)
		r.Post("/sections/{id}/entries", sectionHandler.CreateEntry)
		r.Put("/sections/{id}/entries/{entryId}", sectionHandler.UpdateEntry)
		r.Delete("/sections/{id}/entries/{entryId}", sectionHandler.DeleteEntry)

		r.Get("/categories/{categoryId}/contacts-websites", contactHandler.List)
		r.Post("/categories/{categoryId}/contacts-websites", contactHandler.Create)
		r.Put("/contacts-websites/{id}", contactHandler.Update)
		r.Delete("/contacts-websites/{id}", contactHandler.Delete)

		r.Get("/categories/{categoryId}/data", dataHandler.Get)
		r.Put("/categories/{categoryId}/data", dataHandler.Set)

		r.Get("/assets", dataHandler.ListAssets)
		r.Post("/assets", dataHandler.AddAsset)
		r.Put("/assets/{id}", dataHandler.UpdateAsset)
		r.Delete("/assets/{id}", dataHandler.DeleteAsset)

		r.Get("/liabilities", dataHandler.ListLiabilities)
		r.Post("/liabilities", dataHandler.AddLiability)
		r.Put("/liabilities/{id}", dataHandler.UpdateLiability)
		r.Delete("/liabilities/{id}", dataHandler.DeleteLiability)

		r.Get("/income", dataHandler.ListIncome)
		r.Post("/income", dataHandler.AddIncome)
		r.Put("/income/{id}", dataHandler.UpdateIncome)
		r.Delete("/income/{id}", dataHandler.DeleteIncome)

		r.Get("/expenses", dataHandler.ListExpenses)
		r.Post("/expenses", dataHandler.AddExpense)
		r.Put("/expenses/{id}", dataHandler.UpdateExpense)
		r.Delete("/expenses/{id}", dataHandler.DeleteExpense)

		r.Get("/family", dataHandler.ListFamily)
		r.Post("/family", dataHandler.AddFamilyPerson)
		r.Put("/family/{id}", dataHandler.UpdateFamilyPerson)
		r.Delete("/family/{id}", dataHandler.DeleteFamilyPerson)

		r.Get("/text-tool", textToolHandler.Get)
		r.Put("/text-tool", textToolHandler.Set)

		r.Post("/verse", verseHandler.Generate)
		r.Get("/verses/{religion}", verseHandler.List)

		r.Post("/rollover", rolloverHandler.Run)
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// Router exposes the chi mux for tests.
func (server *Server) Router() http.Handler {
	return server.router
}

func (server *Server) Start() error {
	address := ":" + server.config.Port
	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, server.router)
}
