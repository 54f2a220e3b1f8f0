package http

import (
	"net/http"

	"github.com/AndreiVed/Social-Media-API/internal/usecase"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"

	"github.com/gin-gonic/gin"
)

type HashtagHandler struct {
	hashtagUseCase usecase.HashtagUseCase
	logger         *logger.Logger
}

func NewHashtagHandler(hashtagUseCase usecase.HashtagUseCase, logger *logger.Logger) *HashtagHandler {
	return &HashtagHandler{
		hashtagUseCase: hashtagUseCase,
		logger:         logger,
	}
}

type HashtagRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// CreateHashtag godoc
// @Summary      Create a hashtag
// @Tags         hashtags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body HashtagRequest true "Hashtag name"
// @Success      201  {object}  entity.Hashtag
// @Failure      400  {object}  map[string]string
// @Router       /hashtags [post]
func (h *HashtagHandler) CreateHashtag(c *gin.Context) {
	var req HashtagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	hashtag, err := h.hashtagUseCase.CreateHashtag(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hashtag)
}

// ListHashtags godoc
// @Summary      List hashtags
// @Tags         hashtags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /hashtags [get]
func (h *HashtagHandler) ListHashtags(c *gin.Context) {
	hashtags, err := h.hashtagUseCase.ListHashtags()
	if err != nil {
		h.logger.Error("Failed to list hashtags: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hashtags"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hashtags": hashtags, "count": len(hashtags)})
}

// GetHashtag godoc
// @Summary      Get hashtag by ID
// @Tags         hashtags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Hashtag ID"
// @Success      200  {object}  entity.Hashtag
// @Failure      404  {object}  map[string]string
// @Router       /hashtags/{id} [get]
func (h *HashtagHandler) GetHashtag(c *gin.Context) {
	hashtag, err := h.hashtagUseCase.GetHashtag(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hashtag)
}

// UpdateHashtag godoc
// @Summary      Rename a hashtag
// @Tags         hashtags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Hashtag ID"
// @Param        request body HashtagRequest true "New name"
// @Success      200  {object}  entity.Hashtag
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /hashtags/{id} [put]
func (h *HashtagHandler) UpdateHashtag(c *gin.Context) {
	var req HashtagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	hashtag, err := h.hashtagUseCase.UpdateHashtag(c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hashtag)
}
