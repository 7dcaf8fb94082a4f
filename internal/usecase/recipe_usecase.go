package usecase

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"

	_ "image/jpeg"
	_ "image/png"

	"recipebook/internal/entity"
	"recipebook/internal/repo/persistent"
	"recipebook/pkg/logger"

	"github.com/google/uuid"
)

// Boundary checks performed before handing an image to the media store.
const (
	maxImageBytes     = 2 << 20 // 2 MB
	maxImageDimension = 4096
)

// MediaUploader is the slice of the S3 client the recipe usecase needs.
type MediaUploader interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
}

type CreateRecipeInput struct {
	Title        string
	Description  string
	Ingredients  string
	Instructions string
	CategoryID   *string
	Image        *multipart.FileHeader
}

type UpdateRecipeInput struct {
	Title        *string
	Description  *string
	Ingredients  *string
	Instructions *string
	CategoryID   *string
}

type RecipeUseCase interface {
	CreateRecipe(authorID string, input CreateRecipeInput) (*entity.Recipe, error)
	GetRecipe(recipeID string) (*entity.Recipe, error)
	ListRecipes(authorID, categoryID string, limit, offset int) ([]*entity.Recipe, error)
	UpdateRecipe(recipeID, actorID string, input UpdateRecipeInput) (*entity.Recipe, error)
	DeleteRecipe(recipeID, actorID string) error
}

type recipeUseCase struct {
	recipeRepo   persistent.RecipeRepository
	categoryRepo persistent.CategoryRepository
	uploader     MediaUploader
	logger       *logger.Logger
}

func NewRecipeUseCase(
	recipeRepo persistent.RecipeRepository,
	categoryRepo persistent.CategoryRepository,
	uploader MediaUploader,
	logger *logger.Logger,
) RecipeUseCase {
	return &recipeUseCase{
		recipeRepo:   recipeRepo,
		categoryRepo: categoryRepo,
		uploader:     uploader,
		logger:       logger,
	}
}

func (uc *recipeUseCase) CreateRecipe(authorID string, input CreateRecipeInput) (*entity.Recipe, error) {
	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(*input.CategoryID); err != nil {
			return nil, entity.Validation("category does not exist")
		}
	}

	recipe := &entity.Recipe{
		AuthorID:     authorID,
		Title:        input.Title,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		CategoryID:   input.CategoryID,
	}

	if input.Image != nil {
		imageURL, err := uc.uploadImage(authorID, input.Image)
		if err != nil {
			return nil, err
		}
		recipe.ImageURL = imageURL
	}

	if err := uc.recipeRepo.Create(recipe); err != nil {
		uc.logger.Error("Failed to create recipe: %v", err)
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return uc.recipeRepo.GetByID(recipe.ID)
}

func (uc *recipeUseCase) GetRecipe(recipeID string) (*entity.Recipe, error) {
	return uc.recipeRepo.GetByID(recipeID)
}

func (uc *recipeUseCase) ListRecipes(authorID, categoryID string, limit, offset int) ([]*entity.Recipe, error) {
	return uc.recipeRepo.List(authorID, categoryID, limit, offset)
}

func (uc *recipeUseCase) UpdateRecipe(recipeID, actorID string, input UpdateRecipeInput) (*entity.Recipe, error) {
	recipe, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}

	if recipe.AuthorID != actorID {
		return nil, entity.Forbidden("you can only update your own recipes")
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.Ingredients != nil {
		recipe.Ingredients = *input.Ingredients
	}
	if input.Instructions != nil {
		recipe.Instructions = *input.Instructions
	}
	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(*input.CategoryID); err != nil {
			return nil, entity.Validation("category does not exist")
		}
		recipe.CategoryID = input.CategoryID
	}

	if err := uc.recipeRepo.Update(recipe); err != nil {
		uc.logger.Error("Failed to update recipe %s: %v", recipeID, err)
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return uc.recipeRepo.GetByID(recipeID)
}

func (uc *recipeUseCase) DeleteRecipe(recipeID, actorID string) error {
	recipe, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return err
	}

	if recipe.AuthorID != actorID {
		return entity.Forbidden("you can only delete your own recipes")
	}

	return uc.recipeRepo.Delete(recipeID)
}

func (uc *recipeUseCase) uploadImage(authorID string, header *multipart.FileHeader) (string, error) {
	if header.Size > maxImageBytes {
		return "", entity.Validation("image exceeds the 2 MB limit")
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	// Size from the form header is client-supplied; re-check while reading.
	data, err := io.ReadAll(io.LimitReader(src, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return "", entity.Validation("image exceeds the 2 MB limit")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", entity.Validation("image must be a valid jpeg or png")
	}
	if cfg.Width > maxImageDimension || cfg.Height > maxImageDimension {
		return "", entity.Validation(fmt.Sprintf("image dimensions exceed %dx%d", maxImageDimension, maxImageDimension))
	}

	contentType := "image/" + format
	fileKey := fmt.Sprintf("recipes/%s/%s.%s", authorID, uuid.New().String(), format)

	imageURL, err := uc.uploader.UploadFile(fileKey, bytes.NewReader(data), contentType)
	if err != nil {
		uc.logger.Error("Failed to upload recipe image: %v", err)
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return imageURL, nil
}
