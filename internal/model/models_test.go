package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserModel_BeforeCreate(t *testing.T) {
	user := &UserModel{
		Email:    "test@example.com",
		Password: "password",
	}

	// BeforeCreate should set ID if empty
	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestUserModel_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	user := &UserModel{
		ID:       existingID,
		Email:    "test@example.com",
		Password: "password",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, user.ID)
}

func TestProfileModel_BeforeCreate(t *testing.T) {
	profile := &ProfileModel{
		UserID: "user-123",
	}

	err := profile.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
}

func TestFollowModel_BeforeCreate(t *testing.T) {
	follow := &FollowModel{
		FollowerID: "user-123",
		FolloweeID: "user-456",
	}

	err := follow.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, follow.ID)
}

func TestPostModel_BeforeCreate(t *testing.T) {
	post := &PostModel{
		UserID:  "user-123",
		Title:   "Test Post",
		Content: "Some content",
	}

	err := post.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, post.ID)
}

func TestHashtagModel_BeforeCreate(t *testing.T) {
	hashtag := &HashtagModel{
		Name: "golang",
	}

	err := hashtag.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, hashtag.ID)
}

func TestCommentModel_BeforeCreate(t *testing.T) {
	comment := &CommentModel{
		PostID:  "post-123",
		UserID:  "user-123",
		Content: "Nice post",
	}

	err := comment.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
}

func TestReactionModel_BeforeCreate(t *testing.T) {
	reaction := &ReactionModel{
		UserID: "user-123",
		PostID: "post-123",
		Kind:   "LIKE",
	}

	err := reaction.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, reaction.ID)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", UserModel{}.TableName())
	assert.Equal(t, "profiles", ProfileModel{}.TableName())
	assert.Equal(t, "follows", FollowModel{}.TableName())
	assert.Equal(t, "posts", PostModel{}.TableName())
	assert.Equal(t, "hashtags", HashtagModel{}.TableName())
	assert.Equal(t, "comments", CommentModel{}.TableName())
	assert.Equal(t, "reactions", ReactionModel{}.TableName())
}
