package http

import (
	"net/http"

	"recipebook/internal/usecase"
	"recipebook/internal/view"
	"recipebook/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type CreateCommentRequest struct {
	Recipe  string `json:"recipe" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateComment godoc
// @Summary      Comment on a recipe
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCommentRequest true "Comment data"
// @Success      201  {object}  view.CommentView
// @Failure      404  {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.CreateComment(userID, req.Recipe, req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, view.Comment(comment, userID))
}

// ListComments godoc
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        recipe query string false "Filter by recipe ID"
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {array}  view.CommentView
// @Router       /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	viewerID := c.GetString("user_id")
	limit, offset := pagination(c)

	comments, err := h.commentUseCase.ListComments(c.Query("recipe"), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views := make([]view.CommentView, len(comments))
	for i, cm := range comments {
		views[i] = view.Comment(cm, viewerID)
	}
	c.JSON(http.StatusOK, views)
}

// GetComment godoc
// @Summary      Get a comment by ID
// @Tags         comments
// @Produce      json
// @Param        id path string true "Comment ID"
// @Success      200  {object}  view.CommentView
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	viewerID := c.GetString("user_id")

	comment, err := h.commentUseCase.GetComment(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, view.Comment(comment, viewerID))
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateComment godoc
// @Summary      Update a comment
// @Description  Only the author may update a comment.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Param        request body UpdateCommentRequest true "New content"
// @Success      200  {object}  view.CommentView
// @Failure      403  {object}  map[string]string
// @Router       /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.UpdateComment(c.Param("id"), userID, req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, view.Comment(comment, userID))
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Only the author may delete a comment.
// @Tags         comments
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.commentUseCase.DeleteComment(c.Param("id"), userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
