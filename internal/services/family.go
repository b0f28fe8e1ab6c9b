package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/faithfullife/life-dashboard/internal/models"
	"github.com/faithfullife/life-dashboard/internal/repository"
)

// The family roster is stored as the "people" list inside the family
// category's data blob.
const familyCategory = "family"

type FamilyService struct {
	categoryData repository.CategoryDataRepository
}

func NewFamilyService(categoryData repository.CategoryDataRepository) *FamilyService {
	return &FamilyService{categoryData: categoryData}
}

func (service *FamilyService) People(ctx context.Context) ([]models.FamilyPerson, error) {
	return blobList[models.FamilyPerson](ctx, service.categoryData, familyCategory, "people")
}

func (service *FamilyService) AddPerson(ctx context.Context, person models.FamilyPerson) (models.FamilyPerson, error) {
	person.ID = uuid.NewString()
	return person, appendToBlobList(ctx, service.categoryData, familyCategory, "people", person)
}

func (service *FamilyService) UpdatePerson(ctx context.Context, person models.FamilyPerson) error {
	return replaceInBlobList(ctx, service.categoryData, familyCategory, "people", person.ID, person)
}

func (service *FamilyService) DeletePerson(ctx context.Context, id string) error {
	return removeFromBlobList[models.FamilyPerson](ctx, service.categoryData, familyCategory, "people", id)
}
