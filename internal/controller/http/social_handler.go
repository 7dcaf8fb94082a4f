package http

import (
	"net/http"

	"recipebook/internal/entity"
	"recipebook/internal/usecase"
	"recipebook/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	socialUseCase usecase.SocialUseCase
	logger        *logger.Logger
}

func NewSocialHandler(socialUseCase usecase.SocialUseCase, logger *logger.Logger) *SocialHandler {
	return &SocialHandler{
		socialUseCase: socialUseCase,
		logger:        logger,
	}
}

// FollowUser godoc
// @Summary      Follow or unfollow a user
// @Description  Toggles the follow edge: creates it if absent (201), removes it if present (204).
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Target user ID"
// @Success      201  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/follow [post]
func (h *SocialHandler) FollowUser(c *gin.Context) {
	followerID := c.GetString("user_id")
	targetID := c.Param("id")

	result, err := h.socialUseCase.ToggleFollow(followerID, targetID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if result == entity.ToggleCreated {
		c.JSON(http.StatusCreated, gin.H{"message": "Followed user"})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Unfollowed user"})
}

// CheckFollowStatus godoc
// @Summary      Check whether the caller follows a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Target user ID"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/is-following [get]
func (h *SocialHandler) CheckFollowStatus(c *gin.Context) {
	followerID := c.GetString("user_id")
	targetID := c.Param("id")

	isFollowing, err := h.socialUseCase.IsFollowing(followerID, targetID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_following": isFollowing})
}

// LikeRecipe godoc
// @Summary      Like or unlike a recipe
// @Description  Toggles the like: creates it if absent (201), removes it if present (204).
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Recipe ID"
// @Success      201  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /recipes/{id}/like [post]
func (h *SocialHandler) LikeRecipe(c *gin.Context) {
	userID := c.GetString("user_id")
	recipeID := c.Param("id")

	result, err := h.socialUseCase.ToggleLike(userID, recipeID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if result == entity.ToggleCreated {
		c.JSON(http.StatusCreated, gin.H{"message": "Recipe liked"})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{"message": "Recipe unliked"})
}
