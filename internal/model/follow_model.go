package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	FollowerID  string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FollowingID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_follow_edge" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  UserModel `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Following UserModel `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FollowModel) TableName() string {
	return "follows"
}

func (f *FollowModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
