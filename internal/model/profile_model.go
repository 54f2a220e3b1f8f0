package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileModel is one-to-one with UserModel; the unique index on UserID backs
// the one-profile-per-user invariant.
type ProfileModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FirstName string         `gorm:"type:varchar(63)" json:"first_name"`
	LastName  string         `gorm:"type:varchar(63)" json:"last_name"`
	Bio       string         `gorm:"type:text" json:"bio"`
	Phone     string         `gorm:"type:varchar(16)" json:"phone"`
	City      string         `gorm:"type:varchar(63)" json:"city"`
	Country   string         `gorm:"type:varchar(63)" json:"country"`
	AvatarURL string         `gorm:"type:varchar(500)" json:"avatar_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (p *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
