package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/senaitabera/wellspring/internal/handler/http/dto"
	"github.com/senaitabera/wellspring/internal/usecase"
)

type CommunityHandler struct {
	communityUsecase usecase.ICommunityUseCase
}

func NewCommunityHandler(communityUsecase usecase.ICommunityUseCase) *CommunityHandler {
	return &CommunityHandler{
		communityUsecase: communityUsecase,
	}
}

// CreatePostHandler
func (h *CommunityHandler) CreatePostHandler(c *gin.Context) {
	var req dto.CreateCommunityPostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.communityUsecase.CreatePost(c.Request.Context(), usecase.CreateCommunityPostInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		Author:  dto.ToAuthorEntity(req.Author),
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCommunityPostResponse(post))
}

// GetPostHandler
func (h *CommunityHandler) GetPostHandler(c *gin.Context) {
	post, err := h.communityUsecase.GetPost(c.Request.Context(), c.Param("postID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommunityPostResponse(post))
}

// ListPostsHandler
func (h *CommunityHandler) ListPostsHandler(c *gin.Context) {
	var limit int64
	if v := c.Query("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			ErrorHandler(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	posts, err := h.communityUsecase.ListPosts(c.Request.Context(), limit)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommunityPostListResponse(posts))
}

// UpdatePostHandler
func (h *CommunityHandler) UpdatePostHandler(c *gin.Context) {
	var req dto.UpdateCommunityPostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.communityUsecase.UpdatePost(c.Request.Context(), c.Param("postID"), usecase.UpdateCommunityPostInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommunityPostResponse(post))
}

// DeletePostHandler
func (h *CommunityHandler) DeletePostHandler(c *gin.Context) {
	if err := h.communityUsecase.DeletePost(c.Request.Context(), c.Param("postID")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Community post deleted successfully")
}
