package persistent

import (
	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/model"

	"gorm.io/gorm"
)

type HashtagRepository interface {
	Create(hashtag *entity.Hashtag) error
	GetByID(id string) (*entity.Hashtag, error)
	List() ([]*entity.Hashtag, error)
	Update(hashtag *entity.Hashtag) error
}

type hashtagRepository struct {
	db *gorm.DB
}

func NewHashtagRepository(db *gorm.DB) HashtagRepository {
	return &hashtagRepository{db: db}
}

func (r *hashtagRepository) Create(hashtag *entity.Hashtag) error {
	hashtagModel := &model.HashtagModel{Name: hashtag.Name}
	if err := r.db.Create(hashtagModel).Error; err != nil {
		return err
	}
	*hashtag = *ToHashtagEntity(hashtagModel)
	return nil
}

func (r *hashtagRepository) GetByID(id string) (*entity.Hashtag, error) {
	var hashtagModel model.HashtagModel
	if err := r.db.Where("id = ?", id).First(&hashtagModel).Error; err != nil {
		return nil, err
	}
	return ToHashtagEntity(&hashtagModel), nil
}

func (r *hashtagRepository) List() ([]*entity.Hashtag, error) {
	var hashtagModels []model.HashtagModel
	if err := r.db.Order("name ASC").Find(&hashtagModels).Error; err != nil {
		return nil, err
	}

	hashtags := make([]*entity.Hashtag, len(hashtagModels))
	for i := range hashtagModels {
		hashtags[i] = ToHashtagEntity(&hashtagModels[i])
	}
	return hashtags, nil
}

func (r *hashtagRepository) Update(hashtag *entity.Hashtag) error {
	return r.db.Model(&model.HashtagModel{}).Where("id = ?", hashtag.ID).
		Update("name", hashtag.Name).Error
}
