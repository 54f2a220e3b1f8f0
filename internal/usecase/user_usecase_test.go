package usecase

import (
	"errors"
	"testing"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users    map[string]*entity.User
	profiles map[string]*entity.Profile
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{
		users:    make(map[string]*entity.User),
		profiles: make(map[string]*entity.Profile),
	}
	for _, u := range users {
		f.users[u.ID] = u
		f.profiles[u.ID] = &entity.Profile{ID: "profile-" + u.ID, UserID: u.ID}
	}
	return f
}

func (f *fakeUserRepo) CreateWithProfile(user *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[user.ID] = user
	f.profiles[user.ID] = &entity.Profile{ID: "profile-" + user.ID, UserID: user.ID}
	user.Profile = f.profiles[user.ID]
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) List(filter entity.UserFilter) ([]*entity.User, error) {
	var users []*entity.User
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetProfileByUserID(userID string) (*entity.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (f *fakeUserRepo) UpdateProfile(profile *entity.Profile) error {
	if _, ok := f.profiles[profile.UserID]; !ok {
		return errors.New("record not found")
	}
	f.profiles[profile.UserID] = profile
	return nil
}

func TestFollow_SelfRejected(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "user-1"})
	followRepo := newFakeFollowRepo()
	uc := NewUserUseCase(userRepo, followRepo, nil, nil, logger.New())

	err := uc.Follow("user-1", "user-1")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, followRepo.edges)
}

func TestFollow_MissingTarget(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "user-1"})
	uc := NewUserUseCase(userRepo, newFakeFollowRepo(), nil, nil, logger.New())

	err := uc.Follow("user-1", "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollow_Idempotent(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "user-1"}, &entity.User{ID: "user-2"})
	followRepo := newFakeFollowRepo()
	uc := NewUserUseCase(userRepo, followRepo, nil, nil, logger.New())

	assert.NoError(t, uc.Follow("user-1", "user-2"))
	assert.NoError(t, uc.Follow("user-1", "user-2"))

	ids, err := followRepo.FollowingIDs("user-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"user-2"}, ids)
}

func TestUnfollow_RemovesEdge(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "user-1"}, &entity.User{ID: "user-2"})
	followRepo := newFakeFollowRepo()
	uc := NewUserUseCase(userRepo, followRepo, nil, nil, logger.New())

	assert.NoError(t, uc.Follow("user-1", "user-2"))
	assert.NoError(t, uc.Unfollow("user-1", "user-2"))

	exists, err := followRepo.Exists("user-1", "user-2")
	assert.NoError(t, err)
	assert.False(t, exists)

	// Unfollowing again is a no-op
	assert.NoError(t, uc.Unfollow("user-1", "user-2"))
}

func TestGetUser_PasswordStripped(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "user-1", Email: "alice@test.com", Password: "hashed"})
	uc := NewUserUseCase(userRepo, newFakeFollowRepo(), nil, nil, logger.New())

	user, err := uc.GetUser("user-1")
	assert.NoError(t, err)
	assert.Empty(t, user.Password)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "user-1"})
	userRepo.profiles["user-1"].FirstName = "Alice"
	userRepo.profiles["user-1"].City = "Berlin"

	uc := NewUserUseCase(userRepo, newFakeFollowRepo(), nil, nil, logger.New())

	newCity := "Hamburg"
	profile, err := uc.UpdateProfile("user-1", ProfileUpdate{City: &newCity})
	assert.NoError(t, err)
	assert.Equal(t, "Alice", profile.FirstName)
	assert.Equal(t, "Hamburg", profile.City)
}

func TestUpdateProfile_MissingProfile(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), newFakeFollowRepo(), nil, nil, logger.New())

	bio := "hello"
	_, err := uc.UpdateProfile("ghost", ProfileUpdate{Bio: &bio})
	assert.ErrorIs(t, err, ErrNotFound)
}
