package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/AndreiVed/Social-Media-API/internal/entity"
	"github.com/AndreiVed/Social-Media-API/internal/usecase"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase     usecase.PostUseCase
	feedUseCase     usecase.FeedUseCase
	reactionUseCase usecase.ReactionUseCase
	logger          *logger.Logger
}

func NewPostHandler(
	postUseCase usecase.PostUseCase,
	feedUseCase usecase.FeedUseCase,
	reactionUseCase usecase.ReactionUseCase,
	logger *logger.Logger,
) *PostHandler {
	return &PostHandler{
		postUseCase:     postUseCase,
		feedUseCase:     feedUseCase,
		reactionUseCase: reactionUseCase,
		logger:          logger,
	}
}

type CreatePostRequest struct {
	Title    string   `json:"title" binding:"required,max=255"`
	Content  string   `json:"content" binding:"required"`
	Hashtags []string `json:"hashtags"`
}

type UpdatePostRequest struct {
	Title    *string  `json:"title" binding:"omitempty,max=255"`
	Content  *string  `json:"content"`
	Hashtags []string `json:"hashtags"`
}

// reactionResponse maps a toggle outcome onto the response body and status
// code. The body keys off the requested kind, lowercased.
func reactionResponse(kind entity.ReactionKind, outcome entity.ReactionOutcome) (int, gin.H) {
	field := strings.ToLower(string(kind))
	switch outcome {
	case entity.ReactionAdded:
		return http.StatusCreated, gin.H{field: fmt.Sprintf("%s added.", kind)}
	case entity.ReactionRemoved:
		return http.StatusOK, gin.H{field: fmt.Sprintf("%s removed.", kind)}
	default:
		return http.StatusOK, gin.H{field: fmt.Sprintf("Changed to %s.", kind)}
	}
}

func (h *PostHandler) formatPostResponse(post *entity.Post) map[string]interface{} {
	likes, _ := h.reactionUseCase.CountReactions(post.ID, entity.ReactionLike)
	dislikes, _ := h.reactionUseCase.CountReactions(post.ID, entity.ReactionDislike)

	return map[string]interface{}{
		"id":         post.ID,
		"user_id":    post.UserID,
		"title":      post.Title,
		"content":    post.Content,
		"image_url":  post.ImageURL,
		"hashtags":   post.Hashtags,
		"likes":      likes,
		"dislikes":   dislikes,
		"created_at": post.CreatedAt,
		"updated_at": post.UpdatedAt,
	}
}

// CreatePost godoc
// @Summary      Create a new post
// @Description  Create a post with a title, content and optional hashtags. Unknown hashtags are created on the fly.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post data"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.postUseCase.CreatePost(c.GetString("user_id"), req.Title, req.Content, req.Hashtags)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Feed godoc
// @Summary      Get the feed
// @Description  Posts by the authenticated user and everyone they follow, newest first, with optional title, hashtag and date filters.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title query string false "Filter by title substring"
// @Param        hashtag query string false "Filter by hashtag name"
// @Param        date query string false "Filter by creation date (YYYY-MM-DD)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) Feed(c *gin.Context) {
	query := usecase.FeedQuery{
		Title:   c.Query("title"),
		Hashtag: c.Query("hashtag"),
		Date:    c.Query("date"),
	}

	posts, err := h.feedUseCase.ComposeFeed(c.GetString("user_id"), query)
	if err != nil {
		respondError(c, err)
		return
	}

	formatted := make([]map[string]interface{}, len(posts))
	for i, post := range posts {
		formatted[i] = h.formatPostResponse(post)
	}

	c.JSON(http.StatusOK, gin.H{"posts": formatted, "count": len(formatted)})
}

// LikedPosts godoc
// @Summary      Get liked posts
// @Description  All posts the authenticated user currently has a LIKE reaction on
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts/liked-posts [get]
func (h *PostHandler) LikedPosts(c *gin.Context) {
	posts, err := h.feedUseCase.LikedPosts(c.GetString("user_id"))
	if err != nil {
		h.logger.Error("Failed to get liked posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch liked posts"})
		return
	}

	formatted := make([]map[string]interface{}, len(posts))
	for i, post := range posts {
		formatted[i] = h.formatPostResponse(post)
	}

	c.JSON(http.StatusOK, gin.H{"posts": formatted, "count": len(formatted)})
}

// GetPost godoc
// @Summary      Get post by ID
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.formatPostResponse(post))
}

// UpdatePost godoc
// @Summary      Update post
// @Description  Update a post. Only the author can update their own posts. Supplying hashtags replaces the set.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body UpdatePostRequest true "Fields to update"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.postUseCase.UpdatePost(c.Param("id"), c.GetString("user_id"), req.Title, req.Content, req.Hashtags)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete post
// @Description  Delete a post together with its comments and reactions. Only the author can delete their own posts.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUseCase.DeletePost(c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage godoc
// @Summary      Upload post image
// @Description  Attach an image to a post. Only the author can upload images to their own posts.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        image formData file true "Image file (jpg/jpeg/png/gif)"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/upload-image [post]
func (h *PostHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".gif" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format. Only jpg, jpeg, png, gif are allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	post, err := h.postUseCase.UploadImage(c.Param("id"), c.GetString("user_id"), src, file.Filename, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Like godoc
// @Summary      Toggle a like
// @Description  Like a post. Liking again removes the like, liking a disliked post flips the reaction.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Success      201  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *PostHandler) Like(c *gin.Context) {
	h.react(c, entity.ReactionLike)
}

// Dislike godoc
// @Summary      Toggle a dislike
// @Description  Dislike a post. Disliking again removes the dislike, disliking a liked post flips the reaction.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Success      201  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/dislike [post]
func (h *PostHandler) Dislike(c *gin.Context) {
	h.react(c, entity.ReactionDislike)
}

func (h *PostHandler) react(c *gin.Context, kind entity.ReactionKind) {
	outcome, err := h.reactionUseCase.React(c.GetString("user_id"), c.Param("id"), kind)
	if err != nil {
		respondError(c, err)
		return
	}

	status, body := reactionResponse(kind, outcome)
	c.JSON(status, body)
}
