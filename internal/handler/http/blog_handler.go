package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/senaitabera/wellspring/internal/domain/entity"
	"github.com/senaitabera/wellspring/internal/handler/http/dto"
	"github.com/senaitabera/wellspring/internal/usecase"
)

// BlogHandlerInterface defines the methods for Blog handler to allow interface-based dependency injection (for testing/mocking)
type BlogHandlerInterface interface {
	GetBlogPostHandler(*gin.Context)
	GetPublicBlogPostsHandler(*gin.Context)
	GetAllBlogPostsHandler(*gin.Context)
	CreateBlogPostHandler(*gin.Context)
	UpdateBlogPostHandler(*gin.Context)
	DeleteBlogPostHandler(*gin.Context)
	SetTrendingHandler(*gin.Context)
}

// Ensure BlogHandler implements BlogHandlerInterface
var _ BlogHandlerInterface = (*BlogHandler)(nil)

type BlogHandler struct {
	blogUsecase usecase.IBlogUseCase
}

func NewBlogHandler(blogUsecase usecase.IBlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
	}
}

// GetBlogPostHandler resolves a slug-or-id key to a single post.
func (h *BlogHandler) GetBlogPostHandler(c *gin.Context) {
	key := c.Param("postID")
	post, err := h.blogUsecase.GetBlogPost(c.Request.Context(), key)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogPostResponse(post))
}

// GetPublicBlogPostsHandler lists published posts for the site.
func (h *BlogHandler) GetPublicBlogPostsHandler(c *gin.Context) {
	var limit int64
	if v := c.Query("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			ErrorHandler(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	opts := usecase.PublicListOptions{
		Limit:    limit,
		Category: c.Query("category"),
		Trending: c.Query("trending") == "true",
		Tag:      c.Query("tag"),
	}

	posts, err := h.blogUsecase.GetPublicBlogPosts(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogPostListResponse(posts))
}

// GetAllBlogPostsHandler lists every post for the admin dashboard.
func (h *BlogHandler) GetAllBlogPostsHandler(c *gin.Context) {
	posts, err := h.blogUsecase.GetAllBlogPosts(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogPostListResponse(posts))
}

// CreateBlogPostHandler
func (h *BlogHandler) CreateBlogPostHandler(c *gin.Context) {
	var req dto.CreateBlogPostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	input := usecase.CreateBlogPostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		CoverImage:    req.CoverImage,
		Category:      req.Category,
		Tags:          req.Tags,
		Status:        entity.BlogStatus(req.Status),
		Layout:        entity.BlogLayout(req.Layout),
		Author:        dto.ToAuthorEntity(req.Author),
		IsTrending:    req.IsTrending,
		TrendingOrder: req.TrendingOrder,
	}

	post, err := h.blogUsecase.CreateBlogPost(c.Request.Context(), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToBlogPostResponse(post))
}

// UpdateBlogPostHandler
func (h *BlogHandler) UpdateBlogPostHandler(c *gin.Context) {
	postID := c.Param("postID")

	var req dto.UpdateBlogPostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	input := usecase.UpdateBlogPostInput{
		Title:           req.Title,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		FeaturedImage:   req.FeaturedImage,
		CoverImage:      req.CoverImage,
		Category:        req.Category,
		Tags:            req.Tags,
		ExpectedVersion: req.ExpectedVersion,
	}
	if req.Status != nil {
		s := entity.BlogStatus(*req.Status)
		input.Status = &s
	}
	if req.Layout != nil {
		l := entity.BlogLayout(*req.Layout)
		input.Layout = &l
	}

	post, err := h.blogUsecase.UpdateBlogPost(c.Request.Context(), postID, input)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogPostResponse(post))
}

// DeleteBlogPostHandler
func (h *BlogHandler) DeleteBlogPostHandler(c *gin.Context) {
	postID := c.Param("postID")
	if err := h.blogUsecase.DeleteBlogPost(c.Request.Context(), postID); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Blog post deleted successfully")
}

// SetTrendingHandler curates a post's trending placement.
func (h *BlogHandler) SetTrendingHandler(c *gin.Context) {
	postID := c.Param("postID")

	var req dto.SetTrendingRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.blogUsecase.SetTrending(c.Request.Context(), postID, req.IsTrending, req.TrendingOrder)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogPostResponse(post))
}
