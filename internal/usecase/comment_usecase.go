package usecase

import (
	"fmt"

	"recipebook/internal/entity"
	"recipebook/internal/repo/persistent"
)

type CommentUseCase interface {
	CreateComment(authorID, recipeID, content string) (*entity.Comment, error)
	GetComment(commentID string) (*entity.Comment, error)
	ListComments(recipeID string, limit, offset int) ([]*entity.Comment, error)
	UpdateComment(commentID, actorID, content string) (*entity.Comment, error)
	DeleteComment(commentID, actorID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	recipeRepo  persistent.RecipeRepository
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, recipeRepo persistent.RecipeRepository) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		recipeRepo:  recipeRepo,
	}
}

func (uc *commentUseCase) CreateComment(authorID, recipeID, content string) (*entity.Comment, error) {
	exists, err := uc.recipeRepo.Exists(recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe: %w", err)
	}
	if !exists {
		return nil, entity.NotFound("recipe not found")
	}

	comment := &entity.Comment{
		RecipeID: recipeID,
		AuthorID: authorID,
		Content:  content,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return uc.commentRepo.GetByID(comment.ID)
}

func (uc *commentUseCase) GetComment(commentID string) (*entity.Comment, error) {
	return uc.commentRepo.GetByID(commentID)
}

func (uc *commentUseCase) ListComments(recipeID string, limit, offset int) ([]*entity.Comment, error) {
	return uc.commentRepo.List(recipeID, limit, offset)
}

func (uc *commentUseCase) UpdateComment(commentID, actorID, content string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != actorID {
		return nil, entity.Forbidden("you can only update your own comments")
	}

	comment.Content = content
	if err := uc.commentRepo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return uc.commentRepo.GetByID(commentID)
}

func (uc *commentUseCase) DeleteComment(commentID, actorID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != actorID {
		return entity.Forbidden("you can only delete your own comments")
	}

	return uc.commentRepo.Delete(commentID)
}
