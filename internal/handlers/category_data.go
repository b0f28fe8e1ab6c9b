package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
	"github.com/faithfullife/life-dashboard/internal/services"
)

// CategoryDataHandler serves the raw per-category blobs plus the typed
// list views layered over them (finance records, family roster).
type CategoryDataHandler struct {
	dataRepo       repository.CategoryDataRepository
	financeService *services.FinanceService
	familyService  *services.FamilyService
}

func NewCategoryDataHandler(
	dataRepo repository.CategoryDataRepository,
	financeService *services.FinanceService,
	familyService *services.FamilyService,
) *CategoryDataHandler {
	return &CategoryDataHandler{
		dataRepo:       dataRepo,
		financeService: financeService,
		familyService:  familyService,
	}
}

func (handler *CategoryDataHandler) Get(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if !models.IsCategoryID(categoryID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}
	data, err := handler.dataRepo.Get(r.Context(), categoryID)
	if err != nil {
		slog.Error("getting category data", "error", err)
		writeError(w, err, "failed to load category data")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (handler *CategoryDataHandler) Set(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if !models.IsCategoryID(categoryID) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}

	var data map[string]any
	if err := decodeJSON(r, &data); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := handler.dataRepo.Set(r.Context(), categoryID, data); err != nil {
		slog.Error("setting category data", "error", err)
		writeError(w, err, "failed to save category data")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *CategoryDataHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := handler.financeService.Assets(r.Context())
	if err != nil {
		slog.Error("listing assets", "error", err)
		writeError(w, err, "failed to load assets")
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

func (handler *CategoryDataHandler) AddAsset(w http.ResponseWriter, r *http.Request) {
	var asset models.Asset
	if err := decodeJSON(r, &asset); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	created, err := handler.financeService.AddAsset(r.Context(), asset)
	if err != nil {
		slog.Error("adding asset", "error", err)
		writeError(w, err, "failed to add asset")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (handler *CategoryDataHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	var asset models.Asset
	if err := decodeJSON(r, &asset); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	asset.ID = chi.URLParam(r, "id")
	if err := handler.financeService.UpdateAsset(r.Context(), asset); err != nil {
		slog.Error("updating asset", "error", err)
		writeError(w, err, "failed to update asset")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *CategoryDataHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := handler.financeService.DeleteAsset(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting asset", "error", err)
		writeError(w, err, "failed to delete asset")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *CategoryDataHandler) ListLiabilities(w http.ResponseWriter, r *http.Request) {
	liabilities, err := handler.financeService.Liabilities(r.Context())
	if err != nil {
		slog.Error("listing liabilities", "error", err)
		writeError(w, err, "failed to load liabilities")
		return
	}
	writeJSON(w, http.StatusOK, liabilities)
}

func (handler *CategoryDataHandler) AddLiability(w http.ResponseWriter, r *http.Request) {
	var liability models.Liability
	if err := decodeJSON(r, &liability); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	created, err := handler.financeService.AddLiability(r.Context(), liability)
	if err != nil {
		slog.Error("adding liability", "error", err)
		writeError(w, err, "failed to add liability")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (handler *CategoryDataHandler) UpdateLiability(w http.ResponseWriter, r *http.Request) {
	var liability models.Liability
	if err := decodeJSON(r, &liability); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	liability.ID = chi.URLParam(r, "id")
	if err := handler.financeService.UpdateLiability(r.Context(), liability); err != nil {
		slog.Error("updating liability", "error", err)
		writeError(w, err, "failed to update liability")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *CategoryDataHandler) DeleteLiability(w http.ResponseWriter, r *http.Request) {
	if err := handler.financeService.DeleteLiability(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting liability", "error", err)
		writeError(w, err, "failed to delete liability")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *CategoryDataHandler) ListIncome(w http.ResponseWriter, r *http.Request) {
	income, err := handler.financeService.Income(r.Context())
	if err != nil {
		slog.Error("listing income", "error", err)
		writeError(w, err, "failed to load income")
		return
	}
	writeJSON(w, http.StatusOK, income)
}

func (handler *CategoryDataHandler) AddIncome(w http.ResponseWriter, r *http.Request) {
	var record models.IncomeRecord
	if err := decodeJSON(r, &record); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	created, err := handler.financeService.AddIncome(r.Context(), record)
	if err != nil {
		slog.Error("adding income", "error", err)
		writeError(w, err, "failed to add income")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (handler *CategoryDataHandler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	var record models.IncomeRecord
	if err := decodeJSON(r, &record); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	record.ID = chi.URLParam(r, "id")
	if err := handler.financeService.UpdateIncome(r.Context(), record); err != nil {
		slog.Error("updating income", "error", err)
		writeError(w, err, "failed to update income")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *CategoryDataHandler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	if err := handler.financeService.DeleteIncome(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting income", "error", err)
		writeError(w, err, "failed to delete income")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *CategoryDataHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := handler.financeService.Expenses(r.Context())
	if err != nil {
		slog.Error("listing expenses", "error", err)
		writeError(w, err, "failed to load expenses")
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (handler *CategoryDataHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var record models.ExpenseRecord
	if err := decodeJSON(r, &record); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	created, err := handler.financeService.AddExpense(r.Context(), record)
	if err != nil {
		slog.Error("adding expense", "error", err)
		writeError(w, err, "failed to add expense")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (handler *CategoryDataHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var record models.ExpenseRecord
	if err := decodeJSON(r, &record); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	record.ID = chi.URLParam(r, "id")
	if err := handler.financeService.UpdateExpense(r.Context(), record); err != nil {
		slog.Error("updating expense", "error", err)
		writeError(w, err, "failed to update expense")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *CategoryDataHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := handler.financeService.DeleteExpense(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting expense", "error", err)
		writeError(w, err, "failed to delete expense")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *CategoryDataHandler) ListFamily(w http.ResponseWriter, r *http.Request) {
	people, err := handler.familyService.People(r.Context())
	if err != nil {
		slog.Error("listing family", "error", err)
		writeError(w, err, "failed to load family")
		return
	}
	writeJSON(w, http.StatusOK, people)
}

func (handler *CategoryDataHandler) AddFamilyPerson(w http.ResponseWriter, r *http.Request) {
	var person models.FamilyPerson
	if err := decodeJSON(r, &person); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if person.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	created, err := handler.familyService.AddPerson(r.Context(), person)
	if err != nil {
		slog.Error("adding family person", "error", err)
		writeError(w, err, "failed to add family person")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (handler *CategoryDataHandler) UpdateFamilyPerson(w http.ResponseWriter, r *http.Request) {
	var person models.FamilyPerson
	if err := decodeJSON(r, &person); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	person.ID = chi.URLParam(r, "id")
	if err := handler.familyService.UpdatePerson(r.Context(), person); err != nil {
		slog.Error("updating family person", "error", err)
		writeError(w, err, "failed to update family person")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *CategoryDataHandler) DeleteFamilyPerson(w http.ResponseWriter, r *http.Request) {
	if err := handler.familyService.DeletePerson(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("deleting family person", "error", err)
		writeError(w, err, "failed to delete family person")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
