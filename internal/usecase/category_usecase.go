package usecase

import (
	"recipebook/internal/entity"
	"recipebook/internal/repo/persistent"
)

type CategoryUseCase interface {
	ListCategories() ([]*entity.Category, error)
	GetCategory(categoryID string) (*entity.Category, error)
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
}

func NewCategoryUseCase(categoryRepo persistent.CategoryRepository) CategoryUseCase {
	return &categoryUseCase{categoryRepo: categoryRepo}
}

func (uc *categoryUseCase) ListCategories() ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}

func (uc *categoryUseCase) GetCategory(categoryID string) (*entity.Category, error) {
	return uc.categoryRepo.GetByID(categoryID)
}
