package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unique (user_id, recipe_id) guards the toggle's check-then-act race: a
// concurrent duplicate insert fails at the constraint and is converted to a
// domain validation error.
type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_like_user_recipe" json:"user_id"`
	RecipeID  string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_like_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`

	User   UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe RecipeModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
