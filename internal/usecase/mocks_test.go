package usecase

import (
	"context"
	"io"

	"recipebook/internal/entity"
	"recipebook/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// Repository mocks shared by the usecase tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List() ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List() ([]*entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

var _ persistent.CategoryRepository = (*MockCategoryRepository)(nil)

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(recipe *entity.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetByID(id string) (*entity.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) List(authorID, categoryID string, limit, offset int) ([]*entity.Recipe, error) {
	args := m.Called(authorID, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Update(recipe *entity.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRecipeRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

var _ persistent.RecipeRepository = (*MockRecipeRepository)(nil)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) List(recipeID string, limit, offset int) ([]*entity.Comment, error) {
	args := m.Called(recipeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

type MockSocialRepository struct {
	mock.Mock
}

func (m *MockSocialRepository) CreateFollow(followerID, followingID string) error {
	args := m.Called(followerID, followingID)
	return args.Error(0)
}

func (m *MockSocialRepository) DeleteFollow(followerID, followingID string) error {
	args := m.Called(followerID, followingID)
	return args.Error(0)
}

func (m *MockSocialRepository) IsFollowing(followerID, followingID string) (bool, error) {
	args := m.Called(followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialRepository) FollowedIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSocialRepository) CreateLike(userID, recipeID string) error {
	args := m.Called(userID, recipeID)
	return args.Error(0)
}

func (m *MockSocialRepository) DeleteLike(userID, recipeID string) error {
	args := m.Called(userID, recipeID)
	return args.Error(0)
}

func (m *MockSocialRepository) IsLiked(userID, recipeID string) (bool, error) {
	args := m.Called(userID, recipeID)
	return args.Bool(0), args.Error(1)
}

var _ persistent.SocialRepository = (*MockSocialRepository)(nil)

type MockFeedRepository struct {
	mock.Mock
}

func (m *MockFeedRepository) RecentRecipes(ctx context.Context, authorIDs []string, excludeUserID string, limit int) ([]*entity.Recipe, error) {
	args := m.Called(ctx, authorIDs, excludeUserID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Recipe), args.Error(1)
}

func (m *MockFeedRepository) RecentLikes(ctx context.Context, userIDs []string, excludeUserID string, limit int) ([]*entity.Like, error) {
	args := m.Called(ctx, userIDs, excludeUserID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Like), args.Error(1)
}

func (m *MockFeedRepository) RecentComments(ctx context.Context, authorIDs []string, excludeUserID string, limit int) ([]*entity.Comment, error) {
	args := m.Called(ctx, authorIDs, excludeUserID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockFeedRepository) RecentFollows(ctx context.Context, followerIDs []string, excludeUserID string, limit int) ([]*entity.Follow, error) {
	args := m.Called(ctx, followerIDs, excludeUserID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Follow), args.Error(1)
}

var _ persistent.FeedRepository = (*MockFeedRepository)(nil)

type MockMediaUploader struct {
	mock.Mock
}

func (m *MockMediaUploader) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

var _ MediaUploader = (*MockMediaUploader)(nil)
