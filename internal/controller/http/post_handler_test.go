package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/usecase"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(userID, title, content string, hashtags []string) (*entity.Post, error) {
	args := m.Called(userID, title, content, hashtags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(postID, userID string, title, content *string, hashtags []string) (*entity.Post, error) {
	args := m.Called(postID, userID, title, content, hashtags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(postID, userID string) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

func (m *MockPostUseCase) UploadImage(postID, userID string, file io.Reader, filename, contentType string) (*entity.Post, error) {
	args := m.Called(postID, userID, file, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

// MockFeedUseCase is a mock implementation of FeedUseCase
type MockFeedUseCase struct {
	mock.Mock
}

func (m *MockFeedUseCase) ComposeFeed(viewerID string, query usecase.FeedQuery) ([]*entity.Post, error) {
	args := m.Called(viewerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockFeedUseCase) LikedPosts(viewerID string) ([]*entity.Post, error) {
	args := m.Called(viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

var _ usecase.FeedUseCase = (*MockFeedUseCase)(nil)

// MockReactionUseCase is a mock implementation of ReactionUseCase
type MockReactionUseCase struct {
	mock.Mock
}

func (m *MockReactionUseCase) React(userID, postID string, kind entity.ReactionKind) (entity.ReactionOutcome, error) {
	args := m.Called(userID, postID, kind)
	return args.Get(0).(entity.ReactionOutcome), args.Error(1)
}

func (m *MockReactionUseCase) CountReactions(postID string, kind entity.ReactionKind) (int64, error) {
	args := m.Called(postID, kind)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.ReactionUseCase = (*MockReactionUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newTestPostHandler(postUC *MockPostUseCase, feedUC *MockFeedUseCase, reactionUC *MockReactionUseCase) *PostHandler {
	return NewPostHandler(postUC, feedUC, reactionUC, logger.New())
}

func asUser(userID string, next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		next(c)
	}
}

func TestLike_Added(t *testing.T) {
	reactionUC := new(MockReactionUseCase)
	handler := newTestPostHandler(new(MockPostUseCase), new(MockFeedUseCase), reactionUC)

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser("user-1", handler.Like))

	reactionUC.On("React", "user-1", "post-1", entity.ReactionLike).
		Return(entity.ReactionAdded, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/posts/post-1/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "LIKE added.", body["like"])
	reactionUC.AssertExpectations(t)
}

func TestLike_Removed(t *testing.T) {
	reactionUC := new(MockReactionUseCase)
	handler := newTestPostHandler(new(MockPostUseCase), new(MockFeedUseCase), reactionUC)

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser("user-1", handler.Like))

	reactionUC.On("React", "user-1", "post-1", entity.ReactionLike).
		Return(entity.ReactionRemoved, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/posts/post-1/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "LIKE removed.", body["like"])
}

func TestDislike_Changed(t *testing.T) {
	reactionUC := new(MockReactionUseCase)
	handler := newTestPostHandler(new(MockPostUseCase), new(MockFeedUseCase), reactionUC)

	router := setupTestRouter()
	router.POST("/posts/:id/dislike", asUser("user-1", handler.Dislike))

	reactionUC.On("React", "user-1", "post-1", entity.ReactionDislike).
		Return(entity.ReactionChanged, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/posts/post-1/dislike", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Changed to DISLIKE.", body["dislike"])
}

func TestLike_PostNotFound(t *testing.T) {
	reactionUC := new(MockReactionUseCase)
	handler := newTestPostHandler(new(MockPostUseCase), new(MockFeedUseCase), reactionUC)

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser("user-1", handler.Like))

	reactionUC.On("React", "user-1", "missing", entity.ReactionLike).
		Return(entity.ReactionOutcome(""), fmt.Errorf("post %w", usecase.ErrNotFound))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/posts/missing/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReactionResponse(t *testing.T) {
	status, body := reactionResponse(entity.ReactionLike, entity.ReactionAdded)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "LIKE added.", body["like"])

	status, body = reactionResponse(entity.ReactionDislike, entity.ReactionAdded)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "DISLIKE added.", body["dislike"])

	status, body = reactionResponse(entity.ReactionLike, entity.ReactionRemoved)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "LIKE removed.", body["like"])

	status, body = reactionResponse(entity.ReactionDislike, entity.ReactionChanged)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Changed to DISLIKE.", body["dislike"])
}

func TestFeed_BadDate(t *testing.T) {
	feedUC := new(MockFeedUseCase)
	handler := newTestPostHandler(new(MockPostUseCase), feedUC, new(MockReactionUseCase))

	router := setupTestRouter()
	router.GET("/posts", asUser("user-1", handler.Feed))

	feedUC.On("ComposeFeed", "user-1", usecase.FeedQuery{Date: "bad"}).
		Return(nil, fmt.Errorf("date must be in YYYY-MM-DD format: %w", usecase.ErrValidation))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/posts?date=bad", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeed_PassesFilters(t *testing.T) {
	feedUC := new(MockFeedUseCase)
	reactionUC := new(MockReactionUseCase)
	handler := newTestPostHandler(new(MockPostUseCase), feedUC, reactionUC)

	router := setupTestRouter()
	router.GET("/posts", asUser("user-1", handler.Feed))

	query := usecase.FeedQuery{Title: "morning", Hashtag: "travel", Date: "2024-06-15"}
	posts := []*entity.Post{{ID: "p1", UserID: "user-1", Title: "Morning run"}}
	feedUC.On("ComposeFeed", "user-1", query).Return(posts, nil)
	reactionUC.On("CountReactions", "p1", entity.ReactionLike).Return(int64(3), nil)
	reactionUC.On("CountReactions", "p1", entity.ReactionDislike).Return(int64(1), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/posts?title=morning&hashtag=travel&date=2024-06-15", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["count"])
	feedUC.AssertExpectations(t)
}

func TestDeletePost_Forbidden(t *testing.T) {
	postUC := new(MockPostUseCase)
	handler := newTestPostHandler(postUC, new(MockFeedUseCase), new(MockReactionUseCase))

	router := setupTestRouter()
	router.DELETE("/posts/:id", asUser("intruder", handler.DeletePost))

	postUC.On("DeletePost", "post-1", "intruder").
		Return(fmt.Errorf("you can only delete your own posts: %w", usecase.ErrForbidden))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/posts/post-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeletePost_Success(t *testing.T) {
	postUC := new(MockPostUseCase)
	handler := newTestPostHandler(postUC, new(MockFeedUseCase), new(MockReactionUseCase))

	router := setupTestRouter()
	router.DELETE("/posts/:id", asUser("author", handler.DeletePost))

	postUC.On("DeletePost", "post-1", "author").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/posts/post-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
