package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category deletion nulls the reference rather than cascading; recipe deletion
// cascades to comments and likes (see migrations).
type RecipeModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID     string    `gorm:"type:uuid;not null;index" json:"author_id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"not null" json:"description"`
	Ingredients  string    `gorm:"not null" json:"ingredients"`
	Instructions string    `gorm:"not null" json:"instructions"`
	ImageURL     string    `gorm:"type:varchar(500)" json:"image_url"`
	CategoryID   *string   `gorm:"type:uuid;index" json:"category_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Author   UserModel      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
