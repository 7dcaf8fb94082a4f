package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID  string    `gorm:"type:uuid;not null;index" json:"recipe_id"`
	AuthorID  string    `gorm:"type:uuid;not null;index" json:"author_id"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Recipe RecipeModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Author UserModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
