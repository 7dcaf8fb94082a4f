package persistent

import (
	"recipebook/internal/model"

	"gorm.io/gorm"
)

// SocialRepository owns follow edges and likes. Both carry composite unique
// constraints; Create* surfaces gorm.ErrDuplicatedKey on a race, which the
// usecase converts to a domain validation error.
type SocialRepository interface {
	CreateFollow(followerID, followingID string) error
	DeleteFollow(followerID, followingID string) error
	IsFollowing(followerID, followingID string) (bool, error)
	FollowedIDs(userID string) ([]string, error)

	CreateLike(userID, recipeID string) error
	DeleteLike(userID, recipeID string) error
	IsLiked(userID, recipeID string) (bool, error)
}

type socialRepository struct {
	db *gorm.DB
}

func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) CreateFollow(followerID, followingID string) error {
	follow := &model.FollowModel{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	return r.db.Create(follow).Error
}

func (r *socialRepository) DeleteFollow(followerID, followingID string) error {
	return r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.FollowModel{}).Error
}

func (r *socialRepository) IsFollowing(followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.FollowModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *socialRepository) FollowedIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.FollowModel{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *socialRepository) CreateLike(userID, recipeID string) error {
	like := &model.LikeModel{
		UserID:   userID,
		RecipeID: recipeID,
	}
	return r.db.Create(like).Error
}

func (r *socialRepository) DeleteLike(userID, recipeID string) error {
	return r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.LikeModel{}).Error
}

func (r *socialRepository) IsLiked(userID, recipeID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}
