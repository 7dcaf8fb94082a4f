package http

import (
	"net/http"
	"strconv"

	"recipebook/internal/usecase"
	"recipebook/internal/view"
	"recipebook/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipeUseCase usecase.RecipeUseCase
	logger        *logger.Logger
}

func NewRecipeHandler(recipeUseCase usecase.RecipeUseCase, logger *logger.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeUseCase: recipeUseCase,
		logger:        logger,
	}
}

type CreateRecipeRequest struct {
	Title        string  `form:"title" json:"title" binding:"required,max=255"`
	Description  string  `form:"description" json:"description" binding:"required"`
	Ingredients  string  `form:"ingredients" json:"ingredients" binding:"required"`
	Instructions string  `form:"instructions" json:"instructions" binding:"required"`
	Category     *string `form:"category" json:"category"`
}

// CreateRecipe godoc
// @Summary      Create a recipe
// @Description  Accepts JSON or multipart form data; an optional image (jpeg/png, max 2 MB, max 4096x4096) is uploaded to media storage.
// @Tags         recipes
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        description formData string true "Description"
// @Param        ingredients formData string true "Ingredients"
// @Param        instructions formData string true "Instructions"
// @Param        category formData string false "Category ID"
// @Param        image formData file false "Recipe image"
// @Success      201  {object}  view.RecipeView
// @Failure      400  {object}  map[string]string
// @Router       /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateRecipeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.CreateRecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CategoryID:   req.Category,
	}

	// Image only arrives on multipart submissions.
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}

	recipe, err := h.recipeUseCase.CreateRecipe(userID, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, view.Recipe(recipe, userID))
}

// ListRecipes godoc
// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Param        author query string false "Filter by author ID"
// @Param        category query string false "Filter by category ID"
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {array}  view.RecipeView
// @Router       /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	viewerID := c.GetString("user_id")
	limit, offset := pagination(c)

	recipes, err := h.recipeUseCase.ListRecipes(c.Query("author"), c.Query("category"), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views := make([]view.RecipeView, len(recipes))
	for i, r := range recipes {
		views[i] = view.Recipe(r, viewerID)
	}
	c.JSON(http.StatusOK, views)
}

// GetRecipe godoc
// @Summary      Get a recipe by ID
// @Tags         recipes
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Success      200  {object}  view.RecipeView
// @Failure      404  {object}  map[string]string
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	viewerID := c.GetString("user_id")

	recipe, err := h.recipeUseCase.GetRecipe(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, view.Recipe(recipe, viewerID))
}

type UpdateRecipeRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=255"`
	Description  *string `json:"description"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
	Category     *string `json:"category"`
}

// UpdateRecipe godoc
// @Summary      Update a recipe
// @Description  Only the author may update a recipe.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Recipe ID"
// @Param        request body UpdateRecipeRequest true "Fields to update"
// @Success      200  {object}  view.RecipeView
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeUseCase.UpdateRecipe(c.Param("id"), userID, usecase.UpdateRecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CategoryID:   req.Category,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, view.Recipe(recipe, userID))
}

// DeleteRecipe godoc
// @Summary      Delete a recipe
// @Description  Only the author may delete a recipe. Comments and likes are removed with it.
// @Tags         recipes
// @Security     BearerAuth
// @Param        id path string true "Recipe ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.recipeUseCase.DeleteRecipe(c.Param("id"), userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func pagination(c *gin.Context) (int, int) {
	limit := 50
	offset := 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}
	return limit, offset
}
