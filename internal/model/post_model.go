package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HashtagModel names are deliberately not unique; post creation reuses an
// existing row by name when one is present.
type HashtagModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"type:varchar(63);not null;index" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (HashtagModel) TableName() string {
	return "hashtags"
}

func (h *HashtagModel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}

type PostModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"type:varchar(63);uniqueIndex;not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	ImageURL  string         `gorm:"type:varchar(500)" json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User     UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Hashtags []HashtagModel `gorm:"many2many:post_hashtags;joinForeignKey:PostID;joinReferences:HashtagID" json:"hashtags"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
