package persistent

import (
	"errors"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/model"

	"gorm.io/gorm"
)

type FollowRepository interface {
	Create(followerID, followeeID string) (*entity.Follow, error)
	Delete(followerID, followeeID string) error
	Exists(followerID, followeeID string) (bool, error)
	FollowingIDs(followerID string) ([]string, error)
	Followers(userID string) ([]*entity.User, error)
	Following(userID string) ([]*entity.User, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create is idempotent: a duplicate edge is absorbed by the pair index and
// the existing edge is returned instead.
func (r *followRepository) Create(followerID, followeeID string) (*entity.Follow, error) {
	followModel := &model.FollowModel{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	err := r.db.Create(followModel).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			First(followModel).Error
	}
	if err != nil {
		return nil, err
	}
	return ToFollowEntity(followModel), nil
}

func (r *followRepository) Delete(followerID, followeeID string) error {
	return r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.FollowModel{}).Error
}

func (r *followRepository) Exists(followerID, followeeID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.FollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

// FollowingIDs returns the identity keys the feed composer unions with the
// viewer's own.
func (r *followRepository) FollowingIDs(followerID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.FollowModel{}).
		Where("follower_id = ?", followerID).
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *followRepository) Followers(userID string) ([]*entity.User, error) {
	return r.usersJoinedOn(userID, "follows.followee_id = ?", "follows.follower_id")
}

func (r *followRepository) Following(userID string) ([]*entity.User, error) {
	return r.usersJoinedOn(userID, "follows.follower_id = ?", "follows.followee_id")
}

func (r *followRepository) usersJoinedOn(userID, where, joinColumn string) ([]*entity.User, error) {
	var userModels []model.UserModel
	err := r.db.Model(&model.UserModel{}).Preload("Profile").
		Joins("JOIN follows ON "+joinColumn+" = users.id").
		Where(where, userID).
		Order("follows.created_at DESC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}
