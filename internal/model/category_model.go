package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	ID          string `gorm:"type:uuid;primary_key" json:"id"`
	Name        string `gorm:"type:varchar(50);not null" json:"name"`
	Description string `json:"description"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (c *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
