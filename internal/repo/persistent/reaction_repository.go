package persistent

import (
	"errors"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReactionRepository interface {
	Toggle(userID, postID string, kind entity.ReactionKind) (entity.ReactionOutcome, error)
	Get(userID, postID string) (*entity.Reaction, error)
	CountByKind(postID string, kind entity.ReactionKind) (int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Toggle runs the read-modify-write for one (user, post) pair as a single
// transaction. The row lock serializes concurrent toggles for the same pair;
// the pair's unique index catches the remaining insert race, which is retried
// once so the loser lands on the update/remove path instead of failing.
func (r *reactionRepository) Toggle(userID, postID string, kind entity.ReactionKind) (entity.ReactionOutcome, error) {
	outcome, err := r.toggleOnce(userID, postID, kind)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.toggleOnce(userID, postID, kind)
	}
	return outcome, err
}

func (r *reactionRepository) toggleOnce(userID, postID string, kind entity.ReactionKind) (entity.ReactionOutcome, error) {
	var outcome entity.ReactionOutcome

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.ReactionModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND post_id = ?", userID, postID).
			First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		current := entity.ReactionKind(existing.Kind)
		outcome = entity.NextReactionOutcome(current, kind)

		switch outcome {
		case entity.ReactionAdded:
			return tx.Create(&model.ReactionModel{
				UserID: userID,
				PostID: postID,
				Kind:   string(kind),
			}).Error
		case entity.ReactionRemoved:
			return tx.Delete(&existing).Error
		default:
			return tx.Model(&existing).Update("kind", string(kind)).Error
		}
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

func (r *reactionRepository) Get(userID, postID string) (*entity.Reaction, error) {
	var reactionModel model.ReactionModel
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		First(&reactionModel).Error
	if err != nil {
		return nil, err
	}
	return ToReactionEntity(&reactionModel), nil
}

func (r *reactionRepository) CountByKind(postID string, kind entity.ReactionKind) (int64, error) {
	var count int64
	err := r.db.Model(&model.ReactionModel{}).
		Where("post_id = ? AND kind = ?", postID, string(kind)).
		Count(&count).Error
	return count, err
}
