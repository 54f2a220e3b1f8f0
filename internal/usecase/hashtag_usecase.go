package usecase

import (
	"fmt"
	"strings"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/repo/persistent"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"
)

type HashtagUseCase interface {
	CreateHashtag(name string) (*entity.Hashtag, error)
	GetHashtag(id string) (*entity.Hashtag, error)
	ListHashtags() ([]*entity.Hashtag, error)
	UpdateHashtag(id, name string) (*entity.Hashtag, error)
}

type hashtagUseCase struct {
	hashtagRepo persistent.HashtagRepository
	logger      *logger.Logger
}

func NewHashtagUseCase(hashtagRepo persistent.HashtagRepository, logger *logger.Logger) HashtagUseCase {
	return &hashtagUseCase{
		hashtagRepo: hashtagRepo,
		logger:      logger,
	}
}

func (uc *hashtagUseCase) CreateHashtag(name string) (*entity.Hashtag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("hashtag name is required: %w", ErrValidation)
	}

	hashtag := &entity.Hashtag{Name: name}
	if err := uc.hashtagRepo.Create(hashtag); err != nil {
		uc.logger.Error("Failed to create hashtag: %v", err)
		return nil, fmt.Errorf("failed to create hashtag")
	}
	return hashtag, nil
}

func (uc *hashtagUseCase) GetHashtag(id string) (*entity.Hashtag, error) {
	hashtag, err := uc.hashtagRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("hashtag %w", ErrNotFound)
	}
	return hashtag, nil
}

func (uc *hashtagUseCase) ListHashtags() ([]*entity.Hashtag, error) {
	return uc.hashtagRepo.List()
}

func (uc *hashtagUseCase) UpdateHashtag(id, name string) (*entity.Hashtag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("hashtag name is required: %w", ErrValidation)
	}

	hashtag, err := uc.hashtagRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("hashtag %w", ErrNotFound)
	}

	hashtag.Name = name
	if err := uc.hashtagRepo.Update(hashtag); err != nil {
		uc.logger.Error("Failed to update hashtag: %v", err)
		return nil, fmt.Errorf("failed to update hashtag")
	}
	return hashtag, nil
}
