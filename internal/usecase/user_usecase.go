package usecase

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/repo/persistent"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"
	"github.com/AndreiVed/Social-Media-API/pkg/queue"
	"github.com/AndreiVed/Social-Media-API/pkg/s3"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ProfileUpdate carries the mutable profile attributes; nil fields are left
// unchanged.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Bio       *string
	Phone     *string
	City      *string
	Country   *string
}

type UserUseCase interface {
	ListUsers(filter entity.UserFilter) ([]*entity.User, error)
	GetUser(id string) (*entity.User, error)
	UpdateUser(userID string, email, password *string) (*entity.User, error)
	GetProfile(userID string) (*entity.Profile, error)
	UpdateProfile(userID string, update ProfileUpdate) (*entity.Profile, error)
	UploadAvatar(userID string, file io.Reader, filename, contentType string) (*entity.Profile, error)
	Follow(followerID, followeeID string) error
	Unfollow(followerID, followeeID string) error
	Followers(userID string) ([]*entity.User, error)
	Following(userID string) ([]*entity.User, error)
}

type userUseCase struct {
	userRepo    persistent.UserRepository
	followRepo  persistent.FollowRepository
	s3Client    *s3.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	followRepo persistent.FollowRepository,
	s3Client *s3.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:    userRepo,
		followRepo:  followRepo,
		s3Client:    s3Client,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *userUseCase) ListUsers(filter entity.UserFilter) ([]*entity.User, error) {
	users, err := uc.userRepo.List(filter)
	if err != nil {
		uc.logger.Error("Failed to list users: %v", err)
		return nil, fmt.Errorf("failed to list users")
	}
	for _, user := range users {
		user.Password = ""
	}
	return users, nil
}

func (uc *userUseCase) GetUser(id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *userUseCase) UpdateUser(userID string, email, password *string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	if email != nil {
		user.Email = *email
	}
	if password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			uc.logger.Error("Failed to hash password: %v", err)
			return nil, fmt.Errorf("failed to update user")
		}
		user.Password = string(hashed)
	}

	if err := uc.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("user with this email %w", ErrAlreadyExists)
		}
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}

	user.Password = ""
	return user, nil
}

func (uc *userUseCase) GetProfile(userID string) (*entity.Profile, error) {
	profile, err := uc.userRepo.GetProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile %w", ErrNotFound)
		}
		return nil, err
	}
	return profile, nil
}

func (uc *userUseCase) UpdateProfile(userID string, update ProfileUpdate) (*entity.Profile, error) {
	profile, err := uc.userRepo.GetProfileByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("profile %w", ErrNotFound)
	}

	if update.FirstName != nil {
		profile.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		profile.LastName = *update.LastName
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.Phone != nil {
		profile.Phone = *update.Phone
	}
	if update.City != nil {
		profile.City = *update.City
	}
	if update.Country != nil {
		profile.Country = *update.Country
	}

	if err := uc.userRepo.UpdateProfile(profile); err != nil {
		uc.logger.Error("Failed to update profile: %v", err)
		return nil, fmt.Errorf("failed to update profile")
	}

	return profile, nil
}

func (uc *userUseCase) UploadAvatar(userID string, file io.Reader, filename, contentType string) (*entity.Profile, error) {
	profile, err := uc.userRepo.GetProfileByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("profile %w", ErrNotFound)
	}

	key := fmt.Sprintf("uploads/profile/%s%s", uuid.New().String(), filepath.Ext(filename))
	avatarURL, err := uc.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	profile.AvatarURL = avatarURL
	if err := uc.userRepo.UpdateProfile(profile); err != nil {
		uc.logger.Error("Failed to save avatar URL: %v", err)
		return nil, fmt.Errorf("failed to update profile")
	}

	return profile, nil
}

func (uc *userUseCase) Follow(followerID, followeeID string) error {
	if followerID == followeeID {
		return fmt.Errorf("you cannot follow yourself: %w", ErrValidation)
	}

	if _, err := uc.userRepo.GetByID(followeeID); err != nil {
		return fmt.Errorf("user %w", ErrNotFound)
	}

	edge, err := uc.followRepo.Create(followerID, followeeID)
	if err != nil {
		uc.logger.Error("Failed to create follow: %v", err)
		return fmt.Errorf("failed to follow")
	}

	if uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":        "follow",
				"user_id":     edge.FolloweeID,
				"follower_id": edge.FollowerID,
				"followed_at": edge.CreatedAt,
				"priority":    4,
			}
			if err := uc.queueClient.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish follow notification task: %v", err)
			}
		}()
	}

	return nil
}

func (uc *userUseCase) Unfollow(followerID, followeeID string) error {
	if followerID == followeeID {
		return fmt.Errorf("you cannot unfollow yourself: %w", ErrValidation)
	}

	if _, err := uc.userRepo.GetByID(followeeID); err != nil {
		return fmt.Errorf("user %w", ErrNotFound)
	}

	if err := uc.followRepo.Delete(followerID, followeeID); err != nil {
		uc.logger.Error("Failed to delete follow: %v", err)
		return fmt.Errorf("failed to unfollow")
	}

	return nil
}

func (uc *userUseCase) Followers(userID string) ([]*entity.User, error) {
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}
	return uc.followRepo.Followers(userID)
}

func (uc *userUseCase) Following(userID string) ([]*entity.User, error) {
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}
	return uc.followRepo.Following(userID)
}
