package usecase

import (
	"errors"
	"fmt"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/repo/persistent"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"

	"gorm.io/gorm"
)

type CommentUseCase interface {
	CreateComment(userID, postID, content string) (*entity.Comment, error)
	GetComment(id string) (*entity.Comment, error)
	ListUserComments(userID string) ([]*entity.Comment, error)
	ListPostComments(postID string) ([]*entity.Comment, error)
	UpdateComment(commentID, userID, content string) (*entity.Comment, error)
	DeleteComment(commentID, userID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	logger      *logger.Logger
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, postRepo persistent.PostRepository, logger *logger.Logger) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) CreateComment(userID, postID, content string) (*entity.Comment, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil || !exists {
		return nil, fmt.Errorf("post %w", ErrNotFound)
	}

	comment := &entity.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, fmt.Errorf("failed to create comment")
	}

	return comment, nil
}

func (uc *commentUseCase) GetComment(id string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment %w", ErrNotFound)
		}
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) ListUserComments(userID string) ([]*entity.Comment, error) {
	return uc.commentRepo.ListByUser(userID)
}

func (uc *commentUseCase) ListPostComments(postID string) ([]*entity.Comment, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil || !exists {
		return nil, fmt.Errorf("post %w", ErrNotFound)
	}
	return uc.commentRepo.ListByPost(postID)
}

func (uc *commentUseCase) UpdateComment(commentID, userID, content string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, fmt.Errorf("comment %w", ErrNotFound)
	}

	if !isOwner(userID, comment.UserID) {
		return nil, fmt.Errorf("you can only update your own comments: %w", ErrForbidden)
	}

	comment.Content = content
	if err := uc.commentRepo.Update(comment); err != nil {
		uc.logger.Error("Failed to update comment: %v", err)
		return nil, fmt.Errorf("failed to update comment")
	}

	return comment, nil
}

func (uc *commentUseCase) DeleteComment(commentID, userID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return fmt.Errorf("comment %w", ErrNotFound)
	}

	if !isOwner(userID, comment.UserID) {
		return fmt.Errorf("you can only delete your own comments: %w", ErrForbidden)
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		uc.logger.Error("Failed to delete comment: %v", err)
		return fmt.Errorf("failed to delete comment")
	}

	return nil
}
