package persistent

import (
	"errors"

	"recipebook/internal/entity"
	"recipebook/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List() ([]*entity.Category, error)
	GetByID(id string) (*entity.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List() ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(id string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.Where("id = ?", id).First(&categoryModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}
