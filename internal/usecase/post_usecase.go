package usecase

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/repo/persistent"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"
	"github.com/AndreiVed/Social-Media-API/pkg/s3"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostUseCase interface {
	CreatePost(userID, title, content string, hashtags []string) (*entity.Post, error)
	GetPost(id string) (*entity.Post, error)
	UpdatePost(postID, userID string, title, content *string, hashtags []string) (*entity.Post, error)
	DeletePost(postID, userID string) error
	UploadImage(postID, userID string, file io.Reader, filename, contentType string) (*entity.Post, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, s3Client *s3.Client, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		s3Client: s3Client,
		logger:   logger,
	}
}

func (uc *postUseCase) CreatePost(userID, title, content string, hashtags []string) (*entity.Post, error) {
	post := &entity.Post{
		UserID:  userID,
		Title:   title,
		Content: content,
	}

	if err := uc.postRepo.Create(post, hashtags); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("post with this title %w", ErrAlreadyExists)
		}
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post")
	}

	return post, nil
}

func (uc *postUseCase) GetPost(id string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %w", ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

func (uc *postUseCase) UpdatePost(postID, userID string, title, content *string, hashtags []string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("post %w", ErrNotFound)
	}

	if !isOwner(userID, post.UserID) {
		return nil, fmt.Errorf("you can only update your own posts: %w", ErrForbidden)
	}

	if title != nil {
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}

	if err := uc.postRepo.Update(post, hashtags); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("post with this title %w", ErrAlreadyExists)
		}
		uc.logger.Error("Failed to update post: %v", err)
		return nil, fmt.Errorf("failed to update post")
	}

	return uc.postRepo.GetByID(postID)
}

func (uc *postUseCase) DeletePost(postID, userID string) error {
	ownerID, err := uc.postRepo.OwnerID(postID)
	if err != nil {
		return fmt.Errorf("post %w", ErrNotFound)
	}

	if !isOwner(userID, ownerID) {
		return fmt.Errorf("you can only delete your own posts: %w", ErrForbidden)
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		uc.logger.Error("Failed to delete post: %v", err)
		return fmt.Errorf("failed to delete post")
	}

	return nil
}

func (uc *postUseCase) UploadImage(postID, userID string, file io.Reader, filename, contentType string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("post %w", ErrNotFound)
	}

	if !isOwner(userID, post.UserID) {
		return nil, fmt.Errorf("you can only update your own posts: %w", ErrForbidden)
	}

	key := fmt.Sprintf("uploads/post/%s%s", uuid.New().String(), filepath.Ext(filename))
	imageURL, err := uc.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload post image: %v", err)
		return nil, fmt.Errorf("failed to upload image")
	}

	post.ImageURL = imageURL
	if err := uc.postRepo.Update(post, nil); err != nil {
		uc.logger.Error("Failed to save image URL: %v", err)
		return nil, fmt.Errorf("failed to update post")
	}

	return post, nil
}
