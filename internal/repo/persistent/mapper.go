package persistent

import (
	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Password:  m.Password,
		IsStaff:   m.IsStaff,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Profile:   ToProfileEntity(m.Profile),
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Password:  e.Password,
		IsStaff:   e.IsStaff,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToProfileEntity(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:        m.ID,
		UserID:    m.UserID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Bio:       m.Bio,
		Phone:     m.Phone,
		City:      m.City,
		Country:   m.Country,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToProfileModel(e *entity.Profile) *model.ProfileModel {
	if e == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:        e.ID,
		UserID:    e.UserID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Bio:       e.Bio,
		Phone:     e.Phone,
		City:      e.City,
		Country:   e.Country,
		AvatarURL: e.AvatarURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToFollowEntity(m *model.FollowModel) *entity.Follow {
	if m == nil {
		return nil
	}

	return &entity.Follow{
		ID:         m.ID,
		FollowerID: m.FollowerID,
		FolloweeID: m.FolloweeID,
		CreatedAt:  m.CreatedAt,
	}
}

func ToHashtagEntity(m *model.HashtagModel) *entity.Hashtag {
	if m == nil {
		return nil
	}

	return &entity.Hashtag{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	hashtags := make([]entity.Hashtag, len(m.Hashtags))
	for i := range m.Hashtags {
		hashtags[i] = *ToHashtagEntity(&m.Hashtags[i])
	}

	return &entity.Post{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		Hashtags:  hashtags,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToReactionEntity(m *model.ReactionModel) *entity.Reaction {
	if m == nil {
		return nil
	}

	return &entity.Reaction{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		Kind:      entity.ReactionKind(m.Kind),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
