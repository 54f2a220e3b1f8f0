package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowModel is an explicit join row of the directed follow graph. The
// composite unique index keeps one edge per (follower, followee) pair; rows
// are hard-deleted on unfollow.
type FollowModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	FollowerID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_pair" json:"follower_id"`
	FolloweeID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_pair" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower UserModel `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followee UserModel `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE" json:"-"`
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
