package persistent

import (
	"errors"
	"time"

	"recipebook/internal/entity"
	"recipebook/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	List(recipeID string, limit, offset int) ([]*entity.Comment, error)
	Update(comment *entity.Comment) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

type commentRow struct {
	ID         string
	RecipeID   string
	AuthorID   string
	AuthorName string
	Content    string
	CreatedAt  time.Time
}

const commentSelect = `comments.id, comments.recipe_id, comments.author_id,
users.username AS author_name, comments.content, comments.created_at`

func (r *commentRepository) enrichedQuery() *gorm.DB {
	return r.db.Table("comments").
		Select(commentSelect).
		Joins("JOIN users ON users.id = comments.author_id")
}

func rowToComment(row *commentRow) *entity.Comment {
	return &entity.Comment{
		ID:         row.ID,
		RecipeID:   row.RecipeID,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		Content:    row.Content,
		CreatedAt:  row.CreatedAt,
	}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var row commentRow
	err := r.enrichedQuery().Where("comments.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return rowToComment(&row), nil
}

func (r *commentRepository) List(recipeID string, limit, offset int) ([]*entity.Comment, error) {
	query := r.enrichedQuery().Order("comments.created_at DESC")

	if recipeID != "" {
		query = query.Where("comments.recipe_id = ?", recipeID)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []commentRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(rows))
	for i := range rows {
		comments[i] = rowToComment(&rows[i])
	}
	return comments, nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Model(&model.CommentModel{ID: comment.ID}).
		Update("content", comment.Content).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.CommentModel{}).Error
}
