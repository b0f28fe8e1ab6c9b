package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

// Finance records live as JSON lists inside the category data blobs:
// assets and liabilities under the "assets" category, income and expenses
// under the "income" category.
const (
	assetsCategory = "assets"
	incomeCategory = "income"
)

type FinanceService struct {
	categoryData repository.CategoryDataRepository
}

func NewFinanceService(categoryData repository.CategoryDataRepository) *FinanceService {
	return &FinanceService{categoryData: categoryData}
}

func (service *FinanceService) Assets(ctx context.Context) ([]models.Asset, error) {
	return blobList[models.Asset](ctx, service.categoryData, assetsCategory, "assets")
}

func (service *FinanceService) AddAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	asset.ID = uuid.NewString()
	return asset, appendToBlobList(ctx, service.categoryData, assetsCategory, "assets", asset)
}

func (service *FinanceService) UpdateAsset(ctx context.Context, asset models.Asset) error {
	return replaceInBlobList(ctx, service.categoryData, assetsCategory, "assets", asset.ID, asset)
}

func (service *FinanceService) DeleteAsset(ctx context.Context, id string) error {
	return removeFromBlobList[models.Asset](ctx, service.categoryData, assetsCategory, "assets", id)
}

func (service *FinanceService) Liabilities(ctx context.Context) ([]models.Liability, error) {
	return blobList[models.Liability](ctx, service.categoryData, assetsCategory, "liabilities")
}

func (service *FinanceService) AddLiability(ctx context.Context, liability models.Liability) (models.Liability, error) {
	liability.ID = uuid.NewString()
	return liability, appendToBlobList(ctx, service.categoryData, assetsCategory, "liabilities", liability)
}

func (service *FinanceService) UpdateLiability(ctx context.Context, liability models.Liability) error {
	return replaceInBlobList(ctx, service.categoryData, assetsCategory, "liabilities", liability.ID, liability)
}

func (service *FinanceService) DeleteLiability(ctx context.Context, id string) error {
	return removeFromBlobList[models.Liability](ctx, service.categoryData, assetsCategory, "liabilities", id)
}

func (service *FinanceService) Income(ctx context.Context) ([]models.IncomeRecord, error) {
	return blobList[models.IncomeRecord](ctx, service.categoryData, incomeCategory, "income")
}

func (service *FinanceService) AddIncome(ctx context.Context, record models.IncomeRecord) (models.IncomeRecord, error) {
	record.ID = uuid.NewString()
	return record, appendToBlobList(ctx, service.categoryData, incomeCategory, "income", record)
}

func (service *FinanceService) UpdateIncome(ctx context.Context, record models.IncomeRecord) error {
	return replaceInBlobList(ctx, service.categoryData, incomeCategory, "income", record.ID, record)
}

func (service *FinanceService) DeleteIncome(ctx context.Context, id string) error {
	return removeFromBlobList[models.IncomeRecord](ctx, service.categoryData, incomeCategory, "income", id)
}

func (service *FinanceService) Expenses(ctx context.Context) ([]models.ExpenseRecord, error) {
	return blobList[models.ExpenseRecord](ctx, service.categoryData, incomeCategory, "expenses")
}

func (service *FinanceService) AddExpense(ctx context.Context, record models.ExpenseRecord) (models.ExpenseRecord, error) {
	record.ID = uuid.NewString()
	return record, appendToBlobList(ctx, service.categoryData, incomeCategory, "expenses", record)
}

func (service *FinanceService) UpdateExpense(ctx context.Context, record models.ExpenseRecord) error {
	return replaceInBlobList(ctx, service.categoryData, incomeCategory, "expenses", record.ID, record)
}

func (service *FinanceService) DeleteExpense(ctx context.Context, id string) error {
	return removeFromBlobList[models.ExpenseRecord](ctx, service.categoryData, incomeCategory, "expenses", id)
}

// blobList decodes one list key out of a category's data blob, defaulting
// to an empty list when the key is absent.
func blobList[T any](ctx context.Context, categoryData repository.CategoryDataRepository, categoryID, key string) ([]T, error) {
	data, err := categoryData.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return decodeBlobList[T](data, key)
}

func decodeBlobList[T any](data map[string]any, key string) ([]T, error) {
	raw, ok := data[key]
	if !ok {
		return []T{}, nil
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding %s list: %w", key, err)
	}
	var items []T
	if err := json.Unmarshal(encoded, &items); err != nil {
		return nil, fmt.Errorf("decoding %s list: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func appendToBlobList[T any](ctx context.Context, categoryData repository.CategoryDataRepository, categoryID, key string, item T) error {
	return categoryData.Mutate(ctx, categoryID, func(data map[string]any) error {
		items, err := decodeBlobList[T](data, key)
		if err != nil {
			return err
		}
		data[key] = append(items, item)
		return nil
	})
}

type identifiable interface {
	RecordID() string
}

// replaceInBlobList swaps the list element with the given embedded id.
// An absent id leaves the list unchanged.
func replaceInBlobList[T identifiable](ctx context.Context, categoryData repository.CategoryDataRepository, categoryID, key, id string, item T) error {
	return categoryData.Mutate(ctx, categoryID, func(data map[string]any) error {
		items, err := decodeBlobList[T](data, key)
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].RecordID() == id {
				items[i] = item
				break
			}
		}
		data[key] = items
		return nil
	})
}

func removeFromBlobList[T identifiable](ctx context.Context, categoryData repository.CategoryDataRepository, categoryID, key, id string) error {
	return categoryData.Mutate(ctx, categoryID, func(data map[string]any) error {
		items, err := decodeBlobList[T](data, key)
		if err != nil {
			return err
		}
		kept := items[:0]
		for _, existing := range items {
			if existing.RecordID() != id {
				kept = append(kept, existing)
			}
		}
		data[key] = kept
		return nil
	})
}
