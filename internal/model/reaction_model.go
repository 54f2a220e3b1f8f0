package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReactionModel rows are hard-deleted when a reaction is toggled off; the
// composite unique index rejects a racing second insert for the same pair.
type ReactionModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_reactions_pair" json:"user_id"`
	PostID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_reactions_pair" json:"post_id"`
	Kind      string    `gorm:"type:varchar(10);not null" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ReactionModel) TableName() string {
	return "reactions"
}

func (r *ReactionModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
