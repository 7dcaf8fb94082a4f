package persistent

import (
	"context"
	"time"

	"recipebook/internal/entity"

	"gorm.io/gorm"
)

// FeedRepository serves the aggregator's four per-kind fetches. Every method
// filters by the actor set, excludes the viewer's own activity, and returns
// the newest rows first with an id tiebreak so results are deterministic.
// Queries take a context so an abandoned request cancels in-flight fetches.
type FeedRepository interface {
	RecentRecipes(ctx context.Context, authorIDs []string, excludeUserID string, limit int) ([]*entity.Recipe, error)
	RecentLikes(ctx context.Context, userIDs []string, excludeUserID string, limit int) ([]*entity.Like, error)
	RecentComments(ctx context.Context, authorIDs []string, excludeUserID string, limit int) ([]*entity.Comment, error)
	RecentFollows(ctx context.Context, followerIDs []string, excludeUserID string, limit int) ([]*entity.Follow, error)
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) RecentRecipes(ctx context.Context, authorIDs []string, excludeUserID string, limit int) ([]*entity.Recipe, error) {
	if len(authorIDs) == 0 {
		return []*entity.Recipe{}, nil
	}

	var rows []recipeRow
	err := r.db.WithContext(ctx).Table("recipes").
		Select(recipeSelect).
		Joins("JOIN users ON users.id = recipes.author_id").
		Joins("LEFT JOIN categories ON categories.id = recipes.category_id").
		Where("recipes.author_id IN ? AND recipes.author_id <> ?", authorIDs, excludeUserID).
		Order("recipes.created_at DESC, recipes.id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	recipes := make([]*entity.Recipe, len(rows))
	for i := range rows {
		recipes[i] = rowToRecipe(&rows[i])
	}
	return recipes, nil
}

type likeRow struct {
	ID        string
	RecipeID  string
	UserID    string
	UserName  string
	CreatedAt time.Time
}

func (r *feedRepository) RecentLikes(ctx context.Context, userIDs []string, excludeUserID string, limit int) ([]*entity.Like, error) {
	if len(userIDs) == 0 {
		return []*entity.Like{}, nil
	}

	var rows []likeRow
	err := r.db.WithContext(ctx).Table("likes").
		Select("likes.id, likes.recipe_id, likes.user_id, users.username AS user_name, likes.created_at").
		Joins("JOIN users ON users.id = likes.user_id").
		Where("likes.user_id IN ? AND likes.user_id <> ?", userIDs, excludeUserID).
		Order("likes.created_at DESC, likes.id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	likes := make([]*entity.Like, len(rows))
	for i, row := range rows {
		likes[i] = &entity.Like{
			ID:        row.ID,
			RecipeID:  row.RecipeID,
			UserID:    row.UserID,
			UserName:  row.UserName,
			CreatedAt: row.CreatedAt,
		}
	}
	return likes, nil
}

func (r *feedRepository) RecentComments(ctx context.Context, authorIDs []string, excludeUserID string, limit int) ([]*entity.Comment, error) {
	if len(authorIDs) == 0 {
		return []*entity.Comment{}, nil
	}

	var rows []commentRow
	err := r.db.WithContext(ctx).Table("comments").
		Select(commentSelect).
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.author_id IN ? AND comments.author_id <> ?", authorIDs, excludeUserID).
		Order("comments.created_at DESC, comments.id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(rows))
	for i := range rows {
		comments[i] = rowToComment(&rows[i])
	}
	return comments, nil
}

type followRow struct {
	ID            string
	FollowerID    string
	FollowerName  string
	FollowingID   string
	FollowingName string
	CreatedAt     time.Time
}

func (r *feedRepository) RecentFollows(ctx context.Context, followerIDs []string, excludeUserID string, limit int) ([]*entity.Follow, error) {
	if len(followerIDs) == 0 {
		return []*entity.Follow{}, nil
	}

	var rows []followRow
	err := r.db.WithContext(ctx).Table("follows").
		Select(`follows.id, follows.follower_id, follower.username AS follower_name,
follows.following_id, following.username AS following_name, follows.created_at`).
		Joins("JOIN users AS follower ON follower.id = follows.follower_id").
		Joins("JOIN users AS following ON following.id = follows.following_id").
		Where("follows.follower_id IN ? AND follows.follower_id <> ?", followerIDs, excludeUserID).
		Order("follows.created_at DESC, follows.id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	follows := make([]*entity.Follow, len(rows))
	for i, row := range rows {
		follows[i] = &entity.Follow{
			ID:            row.ID,
			FollowerID:    row.FollowerID,
			FollowerName:  row.FollowerName,
			FollowingID:   row.FollowingID,
			FollowingName: row.FollowingName,
			CreatedAt:     row.CreatedAt,
		}
	}
	return follows, nil
}
