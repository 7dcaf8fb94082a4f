package usecase

import (
	"errors"
	"fmt"

	"recipebook/internal/entity"
	"recipebook/internal/repo/persistent"
	"recipebook/pkg/logger"

	"gorm.io/gorm"
)

// SocialUseCase maintains follow edges and likes. Both toggles are
// check-then-act; the storage layer's composite unique constraints close the
// race window, and a duplicate-key conflict comes back as a validation error
// rather than a raw constraint violation.
type SocialUseCase interface {
	ToggleFollow(followerID, targetID string) (entity.ToggleResult, error)
	IsFollowing(followerID, targetID string) (bool, error)
	FollowedIDs(userID string) ([]string, error)
	ToggleLike(userID, recipeID string) (entity.ToggleResult, error)
}

type socialUseCase struct {
	socialRepo persistent.SocialRepository
	userRepo   persistent.UserRepository
	recipeRepo persistent.RecipeRepository
	logger     *logger.Logger
}

func NewSocialUseCase(
	socialRepo persistent.SocialRepository,
	userRepo persistent.UserRepository,
	recipeRepo persistent.RecipeRepository,
	logger *logger.Logger,
) SocialUseCase {
	return &socialUseCase{
		socialRepo: socialRepo,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

func (uc *socialUseCase) ToggleFollow(followerID, targetID string) (entity.ToggleResult, error) {
	exists, err := uc.userRepo.Exists(targetID)
	if err != nil {
		return 0, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return 0, entity.NotFound("user not found")
	}

	if followerID == targetID {
		return 0, entity.Validation("you cannot follow yourself")
	}

	following, err := uc.socialRepo.IsFollowing(followerID, targetID)
	if err != nil {
		return 0, fmt.Errorf("failed to check follow status: %w", err)
	}

	if following {
		if err := uc.socialRepo.DeleteFollow(followerID, targetID); err != nil {
			uc.logger.Error("Failed to delete follow edge: %v", err)
			return 0, fmt.Errorf("failed to unfollow user: %w", err)
		}
		return entity.ToggleRemoved, nil
	}

	if err := uc.socialRepo.CreateFollow(followerID, targetID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, entity.Validation("possible duplicate follow")
		}
		uc.logger.Error("Failed to create follow edge: %v", err)
		return 0, fmt.Errorf("failed to follow user: %w", err)
	}
	return entity.ToggleCreated, nil
}

func (uc *socialUseCase) IsFollowing(followerID, targetID string) (bool, error) {
	exists, err := uc.userRepo.Exists(targetID)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return false, entity.NotFound("user not found")
	}

	return uc.socialRepo.IsFollowing(followerID, targetID)
}

func (uc *socialUseCase) FollowedIDs(userID string) ([]string, error) {
	return uc.socialRepo.FollowedIDs(userID)
}

func (uc *socialUseCase) ToggleLike(userID, recipeID string) (entity.ToggleResult, error) {
	exists, err := uc.recipeRepo.Exists(recipeID)
	if err != nil {
		return 0, fmt.Errorf("failed to check recipe: %w", err)
	}
	if !exists {
		return 0, entity.NotFound("recipe not found")
	}

	liked, err := uc.socialRepo.IsLiked(userID, recipeID)
	if err != nil {
		return 0, fmt.Errorf("failed to check like status: %w", err)
	}

	if liked {
		if err := uc.socialRepo.DeleteLike(userID, recipeID); err != nil {
			uc.logger.Error("Failed to delete like: %v", err)
			return 0, fmt.Errorf("failed to unlike recipe: %w", err)
		}
		return entity.ToggleRemoved, nil
	}

	if err := uc.socialRepo.CreateLike(userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, entity.Validation("recipe already liked")
		}
		uc.logger.Error("Failed to create like: %v", err)
		return 0, fmt.Errorf("failed to like recipe: %w", err)
	}
	return entity.ToggleCreated, nil
}
