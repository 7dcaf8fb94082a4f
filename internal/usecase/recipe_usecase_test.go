package usecase

import (
	"errors"
	"testing"

	"recipebook/internal/entity"
	"recipebook/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRecipeUseCase(recipeRepo *MockRecipeRepository, categoryRepo *MockCategoryRepository, uploader *MockMediaUploader) RecipeUseCase {
	return NewRecipeUseCase(recipeRepo, categoryRepo, uploader, logger.New())
}

func TestCreateRecipe_Success(t *testing.T) {
	recipeRepo := new(MockRecipeRepository)
	categoryRepo := new(MockCategoryRepository)
	uploader := new(MockMediaUploader)
	uc := newRecipeUseCase(recipeRepo, categoryRepo, uploader)

	created := &entity.Recipe{ID: "recipe-1", AuthorID: "author-1", Title: "Shakshuka", AuthorName: "alice"}

	recipeRepo.On("Create", mock.AnythingOfType("*entity.Recipe")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Recipe).ID = "recipe-1"
	}).Return(nil)
	recipeRepo.On("GetByID", "recipe-1").Return(created, nil)

	recipe, err := uc.CreateRecipe("author-1", CreateRecipeInput{
		Title:        "Shakshuka",
		Description:  "Eggs in tomato sauce",
		Ingredients:  "eggs, tomatoes",
		Instructions: "Simmer and poach.",
	})

	assert.NoError(t, err)
	assert.Equal(t, "recipe-1", recipe.ID)
	assert.Equal(t, "alice", recipe.AuthorName)
	recipeRepo.AssertExpectations(t)
	uploader.AssertNotCalled(t, "UploadFile")
}

func TestCreateRecipe_UnknownCategory(t *testing.T) {
	recipeRepo := new(MockRecipeRepository)
	categoryRepo := new(MockCategoryRepository)
	uploader := new(MockMediaUploader)
	uc := newRecipeUseCase(recipeRepo, categoryRepo, uploader)

	categoryID := "missing-category"
	categoryRepo.On("GetByID", categoryID).Return(nil, entity.NotFound("category not found"))

	_, err := uc.CreateRecipe("author-1", CreateRecipeInput{
		Title:        "Shakshuka",
		Description:  "Eggs in tomato sauce",
		Ingredients:  "eggs, tomatoes",
		Instructions: "Simmer and poach.",
		CategoryID:   &categoryID,
	})

	assert.True(t, errors.Is(err, entity.ErrValidation))
	recipeRepo.AssertNotCalled(t, "Create")
}

func TestUpdateRecipe_NotAuthor(t *testing.T) {
	recipeRepo := new(MockRecipeRepository)
	categoryRepo := new(MockCategoryRepository)
	uploader := new(MockMediaUploader)
	uc := newRecipeUseCase(recipeRepo, categoryRepo, uploader)

	recipeRepo.On("GetByID", "recipe-1").Return(&entity.Recipe{ID: "recipe-1", AuthorID: "author-1"}, nil)

	title := "Hijacked"
	_, err := uc.UpdateRecipe("recipe-1", "intruder", UpdateRecipeInput{Title: &title})

	assert.True(t, errors.Is(err, entity.ErrForbidden))
	recipeRepo.AssertNotCalled(t, "Update")
}

func TestUpdateRecipe_Success(t *testing.T) {
	recipeRepo := new(MockRecipeRepository)
	categoryRepo := new(MockCategoryRepository)
	uploader := new(MockMediaUploader)
	uc := newRecipeUseCase(recipeRepo, categoryRepo, uploader)

	stored := &entity.Recipe{ID: "recipe-1", AuthorID: "author-1", Title: "Old Title"}
	updated := &entity.Recipe{ID: "recipe-1", AuthorID: "author-1", Title: "New Title"}

	recipeRepo.On("GetByID", "recipe-1").Return(stored, nil).Once()
	recipeRepo.On("Update", mock.AnythingOfType("*entity.Recipe")).Return(nil)
	recipeRepo.On("GetByID", "recipe-1").Return(updated, nil).Once()

	title := "New Title"
	recipe, err := uc.UpdateRecipe("recipe-1", "author-1", UpdateRecipeInput{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "New Title", recipe.Title)
	recipeRepo.AssertExpectations(t)
}

func TestDeleteRecipe_NotAuthor(t *testing.T) {
	recipeRepo := new(MockRecipeRepository)
	categoryRepo := new(MockCategoryRepository)
	uploader := new(MockMediaUploader)
	uc := newRecipeUseCase(recipeRepo, categoryRepo, uploader)

	recipeRepo.On("GetByID", "recipe-1").Return(&entity.Recipe{ID: "recipe-1", AuthorID: "author-1"}, nil)

	err := uc.DeleteRecipe("recipe-1", "intruder")

	assert.True(t, errors.Is(err, entity.ErrForbidden))
	recipeRepo.AssertNotCalled(t, "Delete")
}

func TestDeleteRecipe_Success(t *testing.T) {
	recipeRepo := new(MockRecipeRepository)
	categoryRepo := new(MockCategoryRepository)
	uploader := new(MockMediaUploader)
	uc := newRecipeUseCase(recipeRepo, categoryRepo, uploader)

	recipeRepo.On("GetByID", "recipe-1").Return(&entity.Recipe{ID: "recipe-1", AuthorID: "author-1"}, nil)
	recipeRepo.On("Delete", "recipe-1").Return(nil)

	err := uc.DeleteRecipe("recipe-1", "author-1")

	assert.NoError(t, err)
	recipeRepo.AssertExpectations(t)
}

func TestDeleteRecipe_NotFound(t *testing.T) {
	recipeRepo := new(MockRecipeRepository)
	categoryRepo := new(MockCategoryRepository)
	uploader := new(MockMediaUploader)
	uc := newRecipeUseCase(recipeRepo, categoryRepo, uploader)

	recipeRepo.On("GetByID", "missing").Return(nil, entity.NotFound("recipe not found"))

	err := uc.DeleteRecipe("missing", "author-1")

	assert.True(t, errors.Is(err, entity.ErrNotFound))
}
