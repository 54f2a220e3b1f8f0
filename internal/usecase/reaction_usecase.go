package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/repo/persistent"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"
	"github.com/AndreiVed/Social-Media-API/pkg/queue"

	"github.com/redis/go-redis/v9"
)

type ReactionUseCase interface {
	React(userID, postID string, kind entity.ReactionKind) (entity.ReactionOutcome, error)
	CountReactions(postID string, kind entity.ReactionKind) (int64, error)
}

type reactionUseCase struct {
	reactionRepo persistent.ReactionRepository
	postRepo     persistent.PostRepository
	redisClient  *redis.Client
	queueClient  *queue.Client
	logger       *logger.Logger
}

func NewReactionUseCase(
	reactionRepo persistent.ReactionRepository,
	postRepo persistent.PostRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) ReactionUseCase {
	return &reactionUseCase{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
		redisClient:  redisClient,
		queueClient:  queueClient,
		logger:       logger,
	}
}

// React applies the three-state toggle for the (user, post) pair: absent
// becomes the requested kind, the same kind clears, the other kind flips.
func (uc *reactionUseCase) React(userID, postID string, kind entity.ReactionKind) (entity.ReactionOutcome, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown reaction kind %q: %w", kind, ErrValidation)
	}

	exists, err := uc.postRepo.Exists(postID)
	if err != nil || !exists {
		return "", fmt.Errorf("post %w", ErrNotFound)
	}

	outcome, err := uc.reactionRepo.Toggle(userID, postID, kind)
	if err != nil {
		uc.logger.Error("Failed to toggle reaction: %v", err)
		return "", fmt.Errorf("failed to apply reaction: %w", err)
	}

	uc.adjustCounters(postID, kind, outcome)

	if outcome == entity.ReactionAdded && kind == entity.ReactionLike {
		uc.notifyOwner(userID, postID)
	}

	return outcome, nil
}

func (uc *reactionUseCase) CountReactions(postID string, kind entity.ReactionKind) (int64, error) {
	ctx := context.Background()
	redisKey := counterKey(postID, kind)

	if uc.redisClient != nil {
		if countStr, err := uc.redisClient.Get(ctx, redisKey).Result(); err == nil {
			count, _ := strconv.ParseInt(countStr, 10, 64)
			return count, nil
		}
	}

	count, err := uc.reactionRepo.CountByKind(postID, kind)
	if err != nil {
		return 0, fmt.Errorf("post %w", ErrNotFound)
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(ctx, redisKey, count, 0)
	}
	return count, nil
}

// adjustCounters keeps the cached per-kind counters in step with the toggle;
// a stale cache is repaired lazily by CountReactions.
func (uc *reactionUseCase) adjustCounters(postID string, kind entity.ReactionKind, outcome entity.ReactionOutcome) {
	if uc.redisClient == nil {
		return
	}

	ctx := context.Background()
	other := entity.ReactionLike
	if kind == entity.ReactionLike {
		other = entity.ReactionDislike
	}

	switch outcome {
	case entity.ReactionAdded:
		uc.redisClient.Incr(ctx, counterKey(postID, kind))
	case entity.ReactionRemoved:
		uc.redisClient.Decr(ctx, counterKey(postID, kind))
	case entity.ReactionChanged:
		uc.redisClient.Incr(ctx, counterKey(postID, kind))
		uc.redisClient.Decr(ctx, counterKey(postID, other))
	}
}

func (uc *reactionUseCase) notifyOwner(userID, postID string) {
	ownerID, err := uc.postRepo.OwnerID(postID)
	if err != nil || ownerID == userID || uc.queueClient == nil {
		return
	}

	go func() {
		task := map[string]interface{}{
			"type":     "like",
			"user_id":  ownerID,
			"liker_id": userID,
			"post_id":  postID,
			"priority": 3,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish like notification task: %v", err)
		}
	}()
}

func counterKey(postID string, kind entity.ReactionKind) string {
	return fmt.Sprintf("post:reactions:%s:%s", postID, kind)
}
