package usecase

import (
	"fmt"
	"time"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/repo/persistent"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"
)

// FeedQuery is the raw filter input taken from the request; Date is an
// unparsed YYYY-MM-DD string.
type FeedQuery struct {
	Title   string
	Hashtag string
	Date    string
}

type FeedUseCase interface {
	ComposeFeed(viewerID string, query FeedQuery) ([]*entity.Post, error)
	LikedPosts(viewerID string) ([]*entity.Post, error)
}

type feedUseCase struct {
	postRepo   persistent.PostRepository
	followRepo persistent.FollowRepository
	logger     *logger.Logger
}

func NewFeedUseCase(postRepo persistent.PostRepository, followRepo persistent.FollowRepository, logger *logger.Logger) FeedUseCase {
	return &feedUseCase{
		postRepo:   postRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

// ComposeFeed returns the union of the viewer's posts and the posts of every
// followed user, newest first. A viewer who follows nobody sees only their
// own posts. Filters are validated before any query runs.
func (uc *feedUseCase) ComposeFeed(viewerID string, query FeedQuery) ([]*entity.Post, error) {
	filter := entity.FeedFilter{
		Title:   query.Title,
		Hashtag: query.Hashtag,
	}

	if query.Date != "" {
		day, err := time.Parse("2006-01-02", query.Date)
		if err != nil {
			return nil, fmt.Errorf("date must be in YYYY-MM-DD format: %w", ErrValidation)
		}
		filter.Date = &day
	}

	followingIDs, err := uc.followRepo.FollowingIDs(viewerID)
	if err != nil {
		uc.logger.Error("Failed to resolve following set: %v", err)
		return nil, fmt.Errorf("failed to fetch feed")
	}

	authorIDs := make([]string, 0, len(followingIDs)+1)
	authorIDs = append(authorIDs, viewerID)
	for _, id := range followingIDs {
		if id != viewerID {
			authorIDs = append(authorIDs, id)
		}
	}

	posts, err := uc.postRepo.Feed(authorIDs, filter)
	if err != nil {
		uc.logger.Error("Failed to fetch feed: %v", err)
		return nil, fmt.Errorf("failed to fetch feed")
	}

	return posts, nil
}

func (uc *feedUseCase) LikedPosts(viewerID string) ([]*entity.Post, error) {
	posts, err := uc.postRepo.LikedBy(viewerID)
	if err != nil {
		uc.logger.Error("Failed to fetch liked posts: %v", err)
		return nil, fmt.Errorf("failed to fetch liked posts")
	}
	return posts, nil
}
