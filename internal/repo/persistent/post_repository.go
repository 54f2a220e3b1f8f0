package persistent

import (
	"errors"
	"time"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post, hashtagNames []string) error
	GetByID(id string) (*entity.Post, error)
	Exists(id string) (bool, error)
	OwnerID(id string) (string, error)
	Update(post *entity.Post, hashtagNames []string) error
	Delete(id string) error
	Feed(authorIDs []string, filter entity.FeedFilter) ([]*entity.Post, error)
	LikedBy(userID string) ([]*entity.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create stores the post and resolves hashtags by name inside one
// transaction: an existing row with the same name is reused, otherwise one
// is created. Duplicate names in the input collapse to a single association.
func (r *postRepository) Create(post *entity.Post, hashtagNames []string) error {
	postModel := &model.PostModel{
		UserID:   post.UserID,
		Title:    post.Title,
		Content:  post.Content,
		ImageURL: post.ImageURL,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		hashtags, err := getOrCreateHashtags(tx, hashtagNames)
		if err != nil {
			return err
		}
		postModel.Hashtags = hashtags
		return tx.Create(postModel).Error
	})
	if err != nil {
		return err
	}

	*post = *ToPostEntity(postModel)
	return nil
}

// dedupeHashtagNames drops empty names and collapses duplicates, keeping
// first-seen order.
func dedupeHashtagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	deduped := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		deduped = append(deduped, name)
	}
	return deduped
}

func getOrCreateHashtags(tx *gorm.DB, names []string) ([]model.HashtagModel, error) {
	names = dedupeHashtagNames(names)
	hashtags := make([]model.HashtagModel, 0, len(names))

	for _, name := range names {
		var hashtag model.HashtagModel
		err := tx.Where("name = ?", name).First(&hashtag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hashtag = model.HashtagModel{Name: name}
			err = tx.Create(&hashtag).Error
		}
		if err != nil {
			return nil, err
		}
		hashtags = append(hashtags, hashtag)
	}

	return hashtags, nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Preload("Hashtags").Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *postRepository) OwnerID(id string) (string, error) {
	var ownerID string
	err := r.db.Model(&model.PostModel{}).Select("user_id").Where("id = ?", id).
		Scan(&ownerID).Error
	if err != nil {
		return "", err
	}
	if ownerID == "" {
		return "", gorm.ErrRecordNotFound
	}
	return ownerID, nil
}

// Update rewrites title, content and image; created_at is never touched.
// A nil hashtagNames leaves associations alone, a non-nil slice replaces them.
func (r *postRepository) Update(post *entity.Post, hashtagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.PostModel{}).Where("id = ?", post.ID).
			Updates(map[string]interface{}{
				"title":     post.Title,
				"content":   post.Content,
				"image_url": post.ImageURL,
			}).Error
		if err != nil {
			return err
		}

		if hashtagNames == nil {
			return nil
		}

		hashtags, err := getOrCreateHashtags(tx, hashtagNames)
		if err != nil {
			return err
		}
		return tx.Model(&model.PostModel{ID: post.ID}).Association("Hashtags").Replace(hashtags)
	})
}

// Delete removes the post together with its comments, reactions and hashtag
// associations, mirroring the owner-cascade of the schema.
func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.ReactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.PostModel{ID: id}).Association("Hashtags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.PostModel{}, "id = ?", id).Error
	})
}

// Feed returns the posts of the given authors, newest first, narrowed by the
// optional filters. Hashtag matching goes through a subquery so a post with
// several matching tags still appears once.
func (r *postRepository) Feed(authorIDs []string, filter entity.FeedFilter) ([]*entity.Post, error) {
	if len(authorIDs) == 0 {
		return []*entity.Post{}, nil
	}

	query := r.db.Model(&model.PostModel{}).Preload("Hashtags").
		Where("posts.user_id IN ?", authorIDs)
	if !filter.Empty() {
		query = r.applyFeedFilter(query, filter)
	}

	var postModels []model.PostModel
	if err := query.Order("posts.created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	return toPostEntities(postModels), nil
}

func (r *postRepository) applyFeedFilter(query *gorm.DB, filter entity.FeedFilter) *gorm.DB {
	if filter.Title != "" {
		query = query.Where("posts.title ILIKE ?", "%"+filter.Title+"%")
	}

	if filter.Hashtag != "" {
		tagged := r.db.Table("post_hashtags").
			Select("post_hashtags.post_id").
			Joins("JOIN hashtags ON hashtags.id = post_hashtags.hashtag_id").
			Where("hashtags.name ILIKE ?", "%"+filter.Hashtag+"%")
		query = query.Where("posts.id IN (?)", tagged)
	}

	if filter.Date != nil {
		dayStart := time.Date(
			filter.Date.Year(), filter.Date.Month(), filter.Date.Day(),
			0, 0, 0, 0, filter.Date.Location(),
		)
		query = query.Where("posts.created_at >= ? AND posts.created_at < ?",
			dayStart, dayStart.AddDate(0, 0, 1))
	}

	return query
}

func (r *postRepository) LikedBy(userID string) ([]*entity.Post, error) {
	liked := r.db.Model(&model.ReactionModel{}).
		Select("reactions.post_id").
		Where("reactions.user_id = ? AND reactions.kind = ?", userID, string(entity.ReactionLike))

	var postModels []model.PostModel
	err := r.db.Model(&model.PostModel{}).Preload("Hashtags").
		Where("posts.id IN (?)", liked).
		Order("posts.created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	return toPostEntities(postModels), nil
}

func toPostEntities(postModels []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts
}
