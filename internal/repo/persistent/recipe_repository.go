package persistent

import (
	"errors"
	"time"

	"recipebook/internal/entity"
	"recipebook/internal/model"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByID(id string) (*entity.Recipe, error)
	List(authorID, categoryID string, limit, offset int) ([]*entity.Recipe, error)
	Update(recipe *entity.Recipe) error
	Delete(id string) error
	Exists(id string) (bool, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// recipeRow carries the recipe columns plus the denormalized read-model
// fields (author username, category name, counters).
type recipeRow struct {
	ID            string
	AuthorID      string
	AuthorName    string
	Title         string
	Description   string
	Ingredients   string
	Instructions  string
	ImageURL      string
	CategoryID    *string
	CategoryName  *string
	LikesCount    int64
	CommentsCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const recipeSelect = `recipes.id, recipes.author_id, users.username AS author_name,
recipes.title, recipes.description, recipes.ingredients, recipes.instructions,
recipes.image_url, recipes.category_id, categories.name AS category_name,
(SELECT COUNT(*) FROM likes WHERE likes.recipe_id = recipes.id) AS likes_count,
(SELECT COUNT(*) FROM comments WHERE comments.recipe_id = recipes.id) AS comments_count,
recipes.created_at, recipes.updated_at`

func (r *recipeRepository) enrichedQuery() *gorm.DB {
	return r.db.Table("recipes").
		Select(recipeSelect).
		Joins("JOIN users ON users.id = recipes.author_id").
		Joins("LEFT JOIN categories ON categories.id = recipes.category_id")
}

func rowToRecipe(row *recipeRow) *entity.Recipe {
	recipe := &entity.Recipe{
		ID:            row.ID,
		AuthorID:      row.AuthorID,
		AuthorName:    row.AuthorName,
		Title:         row.Title,
		Description:   row.Description,
		Ingredients:   row.Ingredients,
		Instructions:  row.Instructions,
		ImageURL:      row.ImageURL,
		CategoryID:    row.CategoryID,
		LikesCount:    row.LikesCount,
		CommentsCount: row.CommentsCount,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.CategoryName != nil {
		recipe.CategoryName = *row.CategoryName
	}
	return recipe
}

func (r *recipeRepository) Create(recipe *entity.Recipe) error {
	recipeModel := ToRecipeModel(recipe)
	if err := r.db.Create(recipeModel).Error; err != nil {
		return err
	}
	recipe.ID = recipeModel.ID
	recipe.CreatedAt = recipeModel.CreatedAt
	recipe.UpdatedAt = recipeModel.UpdatedAt
	return nil
}

func (r *recipeRepository) GetByID(id string) (*entity.Recipe, error) {
	var row recipeRow
	err := r.enrichedQuery().Where("recipes.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return rowToRecipe(&row), nil
}

func (r *recipeRepository) List(authorID, categoryID string, limit, offset int) ([]*entity.Recipe, error) {
	query := r.enrichedQuery().Order("recipes.created_at DESC")

	if authorID != "" {
		query = query.Where("recipes.author_id = ?", authorID)
	}
	if categoryID != "" {
		query = query.Where("recipes.category_id = ?", categoryID)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []recipeRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	recipes := make([]*entity.Recipe, len(rows))
	for i := range rows {
		recipes[i] = rowToRecipe(&rows[i])
	}
	return recipes, nil
}

func (r *recipeRepository) Update(recipe *entity.Recipe) error {
	return r.db.Model(&model.RecipeModel{ID: recipe.ID}).Updates(map[string]interface{}{
		"title":        recipe.Title,
		"description":  recipe.Description,
		"ingredients":  recipe.Ingredients,
		"instructions": recipe.Instructions,
		"image_url":    recipe.ImageURL,
		"category_id":  recipe.CategoryID,
	}).Error
}

func (r *recipeRepository) Delete(id string) error {
	// Comments and likes go with the recipe via ON DELETE CASCADE.
	return r.db.Where("id = ?", id).Delete(&model.RecipeModel{}).Error
}

func (r *recipeRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.RecipeModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
