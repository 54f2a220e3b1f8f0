package persistent

import (
	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateWithProfile(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	List(filter entity.UserFilter) ([]*entity.User, error)
	Update(user *entity.User) error
	GetProfileByUserID(userID string) (*entity.Profile, error)
	UpdateProfile(profile *entity.Profile) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithProfile persists the user and an empty profile in one
// transaction, so a user without a profile is never observable.
func (r *userRepository) CreateWithProfile(user *entity.User) error {
	userModel := ToUserModel(user)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			return err
		}

		profileModel := &model.ProfileModel{UserID: userModel.ID}
		if err := tx.Create(profileModel).Error; err != nil {
			return err
		}

		userModel.Profile = profileModel
		return nil
	})
	if err != nil {
		return err
	}

	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Preload("Profile").Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Preload("Profile").Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) List(filter entity.UserFilter) ([]*entity.User, error) {
	query := r.db.Model(&model.UserModel{}).Preload("Profile")

	if filter.Email != "" {
		query = query.Where("users.email ILIKE ?", "%"+filter.Email+"%")
	}

	needsProfile := filter.FirstName != "" || filter.LastName != "" ||
		filter.City != "" || filter.Country != ""
	if needsProfile {
		query = query.Joins("JOIN profiles ON profiles.user_id = users.id AND profiles.deleted_at IS NULL")
		if filter.FirstName != "" {
			query = query.Where("profiles.first_name ILIKE ?", "%"+filter.FirstName+"%")
		}
		if filter.LastName != "" {
			query = query.Where("profiles.last_name ILIKE ?", "%"+filter.LastName+"%")
		}
		if filter.City != "" {
			query = query.Where("profiles.city ILIKE ?", "%"+filter.City+"%")
		}
		if filter.Country != "" {
			query = query.Where("profiles.country ILIKE ?", "%"+filter.Country+"%")
		}
	}

	var userModels []model.UserModel
	if err := query.Order("users.created_at DESC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) Update(user *entity.User) error {
	userModel := ToUserModel(user)
	return r.db.Model(&model.UserModel{}).Where("id = ?", userModel.ID).
		Updates(map[string]interface{}{
			"email":    userModel.Email,
			"password": userModel.Password,
		}).Error
}

func (r *userRepository) GetProfileByUserID(userID string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	if err := r.db.Where("user_id = ?", userID).First(&profileModel).Error; err != nil {
		return nil, err
	}
	return ToProfileEntity(&profileModel), nil
}

func (r *userRepository) UpdateProfile(profile *entity.Profile) error {
	profileModel := ToProfileModel(profile)
	return r.db.Model(&model.ProfileModel{}).Where("id = ?", profileModel.ID).
		Updates(map[string]interface{}{
			"first_name": profileModel.FirstName,
			"last_name":  profileModel.LastName,
			"bio":        profileModel.Bio,
			"phone":      profileModel.Phone,
			"city":       profileModel.City,
			"country":    profileModel.Country,
			"avatar_url": profileModel.AvatarURL,
		}).Error
}
