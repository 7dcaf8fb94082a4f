package http

import (
	"net/http"

	"recipebook/internal/usecase"
	"recipebook/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase usecase.FeedUseCase
	logger      *logger.Logger
}

func NewFeedHandler(feedUseCase usecase.FeedUseCase, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		logger:      logger,
	}
}

// GetFeed godoc
// @Summary      Get the viewer's activity feed
// @Description  Recent recipes, likes, comments and follows from followed users, newest first, at most 20 entries.
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  view.FeedItem
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	viewerID := c.GetString("user_id")

	items, err := h.feedUseCase.GetFeed(c.Request.Context(), viewerID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
