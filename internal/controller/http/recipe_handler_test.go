package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipebook/internal/entity"
	"recipebook/internal/usecase"
	"recipebook/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRecipeUseCase is a mock implementation of RecipeUseCase
type MockRecipeUseCase struct {
	mock.Mock
}

func (m *MockRecipeUseCase) CreateRecipe(authorID string, input usecase.CreateRecipeInput) (*entity.Recipe, error) {
	args := m.Called(authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Recipe), args.Error(1)
}

func (m *MockRecipeUseCase) GetRecipe(recipeID string) (*entity.Recipe, error) {
	args := m.Called(recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Recipe), args.Error(1)
}

func (m *MockRecipeUseCase) ListRecipes(authorID, categoryID string, limit, offset int) ([]*entity.Recipe, error) {
	args := m.Called(authorID, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Recipe), args.Error(1)
}

func (m *MockRecipeUseCase) UpdateRecipe(recipeID, actorID string, input usecase.UpdateRecipeInput) (*entity.Recipe, error) {
	args := m.Called(recipeID, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Recipe), args.Error(1)
}

func (m *MockRecipeUseCase) DeleteRecipe(recipeID, actorID string) error {
	args := m.Called(recipeID, actorID)
	return args.Error(0)
}

var _ usecase.RecipeUseCase = (*MockRecipeUseCase)(nil)

func TestCreateRecipe_JSON(t *testing.T) {
	mockUseCase := new(MockRecipeUseCase)
	handler := NewRecipeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/recipes", func(c *gin.Context) {
		c.Set("user_id", "author-1")
		handler.CreateRecipe(c)
	})

	created := &entity.Recipe{ID: "recipe-1", AuthorID: "author-1", AuthorName: "alice", Title: "Shakshuka"}
	mockUseCase.On("CreateRecipe", "author-1", usecase.CreateRecipeInput{
		Title:        "Shakshuka",
		Description:  "Eggs in tomato sauce",
		Ingredients:  "eggs, tomatoes",
		Instructions: "Simmer and poach.",
	}).Return(created, nil)

	body := `{"title":"Shakshuka","description":"Eggs in tomato sauce","ingredients":"eggs, tomatoes","instructions":"Simmer and poach."}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/recipes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "recipe-1", response["id"])
	assert.Equal(t, true, response["is_author"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateRecipe_Multipart(t *testing.T) {
	mockUseCase := new(MockRecipeUseCase)
	handler := NewRecipeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/recipes", func(c *gin.Context) {
		c.Set("user_id", "author-1")
		handler.CreateRecipe(c)
	})

	created := &entity.Recipe{ID: "recipe-1", AuthorID: "author-1", Title: "Shakshuka"}
	mockUseCase.On("CreateRecipe", "author-1", mock.MatchedBy(func(input usecase.CreateRecipeInput) bool {
		return input.Title == "Shakshuka" && input.Image != nil
	})).Return(created, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", "Shakshuka")
	mw.WriteField("description", "Eggs in tomato sauce")
	mw.WriteField("ingredients", "eggs, tomatoes")
	mw.WriteField("instructions", "Simmer and poach.")
	fw, _ := mw.CreateFormFile("image", "dish.jpg")
	fw.Write([]byte("not-a-real-jpeg"))
	mw.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/recipes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateRecipe_MissingFields(t *testing.T) {
	mockUseCase := new(MockRecipeUseCase)
	handler := NewRecipeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/recipes", func(c *gin.Context) {
		c.Set("user_id", "author-1")
		handler.CreateRecipe(c)
	})

	body := `{"title":"Shakshuka"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/recipes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateRecipe")
}

func TestUpdateRecipe_Forbidden(t *testing.T) {
	mockUseCase := new(MockRecipeUseCase)
	handler := NewRecipeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/recipes/:id", func(c *gin.Context) {
		c.Set("user_id", "intruder")
		handler.UpdateRecipe(c)
	})

	title := "Hijacked"
	mockUseCase.On("UpdateRecipe", "recipe-1", "intruder", usecase.UpdateRecipeInput{Title: &title}).
		Return(nil, entity.Forbidden("you can only update your own recipes"))

	body := `{"title":"Hijacked"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/recipes/recipe-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "you can only update your own recipes", response["error"])

	mockUseCase.AssertExpectations(t)
}

func TestDeleteRecipe_NoContent(t *testing.T) {
	mockUseCase := new(MockRecipeUseCase)
	handler := NewRecipeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/recipes/:id", func(c *gin.Context) {
		c.Set("user_id", "author-1")
		handler.DeleteRecipe(c)
	})

	mockUseCase.On("DeleteRecipe", "recipe-1", "author-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/recipes/recipe-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListRecipes_Pagination(t *testing.T) {
	mockUseCase := new(MockRecipeUseCase)
	handler := NewRecipeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/recipes", handler.ListRecipes)

	mockUseCase.On("ListRecipes", "", "", 10, 20).Return([]*entity.Recipe{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/recipes?limit=10&offset=20", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListRecipes_LimitCapped(t *testing.T) {
	mockUseCase := new(MockRecipeUseCase)
	handler := NewRecipeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/recipes", handler.ListRecipes)

	// Out-of-range limit falls back to the default.
	mockUseCase.On("ListRecipes", "", "", 50, 0).Return([]*entity.Recipe{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/recipes?limit=5000", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
