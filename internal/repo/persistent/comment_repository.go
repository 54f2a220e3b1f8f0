package persistent

import (
	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByUser(userID string) ([]*entity.Comment, error)
	ListByPost(postID string) ([]*entity.Comment, error)
	Update(comment *entity.Comment) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := &model.CommentModel{
		PostID:  comment.PostID,
		UserID:  comment.UserID,
		Content: comment.Content,
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByUser(userID string) ([]*entity.Comment, error) {
	return r.list("user_id = ?", userID)
}

func (r *commentRepository) ListByPost(postID string) ([]*entity.Comment, error) {
	return r.list("post_id = ?", postID)
}

func (r *commentRepository) list(where string, arg interface{}) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	err := r.db.Where(where, arg).Order("created_at DESC").Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Model(&model.CommentModel{}).Where("id = ?", comment.ID).
		Update("content", comment.Content).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Delete(&model.CommentModel{}, "id = ?", id).Error
}
