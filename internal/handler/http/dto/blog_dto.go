package dto

import (
	"time"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// Request DTOs for Blog Handlers

// AuthorPayload carries optional display-only author data on writes.
type AuthorPayload struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Email  string `json:"email" binding:"omitempty,email"`
	UID    string `json:"uid"`
}

// CreateBlogPostRequest defines the structure for creating a new blog post.
// The slug is derived from the title server-side and cannot be supplied.
type CreateBlogPostRequest struct {
	Title         string         `json:"title" binding:"required"`
	Content       string         `json:"content" binding:"required"`
	Excerpt       string         `json:"excerpt"`
	FeaturedImage string         `json:"featured_image"`
	CoverImage    string         `json:"cover_image"`
	Category      []string       `json:"category"`
	Tags          []string       `json:"tags"`
	Status        string         `json:"status" binding:"omitempty,oneof=draft published"`
	Layout        string         `json:"layout" binding:"omitempty,oneof=classic modern minimal magazine"`
	Author        *AuthorPayload `json:"author"`
	IsTrending    *bool          `json:"is_trending"`
	TrendingOrder *int           `json:"trending_order"`
}

// UpdateBlogPostRequest defines the structure for updating an existing post.
type UpdateBlogPostRequest struct {
	Title           *string  `json:"title"`
	Content         *string  `json:"content"`
	Excerpt         *string  `json:"excerpt"`
	FeaturedImage   *string  `json:"featured_image"`
	CoverImage      *string  `json:"cover_image"`
	Category        []string `json:"category"`
	Tags            []string `json:"tags"`
	Status          *string  `json:"status" binding:"omitempty,oneof=draft published"`
	Layout          *string  `json:"layout" binding:"omitempty,oneof=classic modern minimal magazine"`
	ExpectedVersion *int64   `json:"expected_version"`
}

// SetTrendingRequest curates a post's placement in the trending rail.
type SetTrendingRequest struct {
	IsTrending    bool `json:"is_trending"`
	TrendingOrder int  `json:"trending_order"`
}

// Response DTOs

// AuthorResponse is the display-only author sub-record on responses.
type AuthorResponse struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
	UID    string `json:"uid"`
}

// BlogPostResponse defines the standard JSON response for a single blog post.
type BlogPostResponse struct {
	ID            string         `json:"id"`
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	Excerpt       string         `json:"excerpt"`
	FeaturedImage string         `json:"featured_image"`
	CoverImage    string         `json:"cover_image"`
	Category      []string       `json:"category"`
	Tags          []string       `json:"tags"`
	Status        string         `json:"status"`
	Layout        string         `json:"layout"`
	Author        AuthorResponse `json:"author"`
	IsTrending    bool           `json:"is_trending"`
	TrendingOrder int            `json:"trending_order"`
	Version       int64          `json:"version"`
	PublishedAt   time.Time      `json:"published_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// BlogPostListResponse wraps a listing so the count travels with it.
type BlogPostListResponse struct {
	Posts []BlogPostResponse `json:"posts"`
	Count int                `json:"count"`
}

// DTO Mappers

// ToBlogPostResponse converts an *entity.BlogPost to a BlogPostResponse.
func ToBlogPostResponse(post *entity.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:            post.ID,
		Slug:          post.Slug,
		Title:         post.Title,
		Content:       post.Content,
		Excerpt:       post.Excerpt,
		FeaturedImage: post.FeaturedImage,
		CoverImage:    post.CoverImage,
		Category:      post.Category,
		Tags:          post.Tags,
		Status:        string(post.Status),
		Layout:        string(post.Layout),
		Author:        ToAuthorResponse(post.Author),
		IsTrending:    post.IsTrending,
		TrendingOrder: post.TrendingOrder,
		Version:       post.Version,
		PublishedAt:   post.PublishedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}

// ToBlogPostListResponse converts a slice of posts to a listing response.
// The posts slice in the result is never nil.
func ToBlogPostListResponse(posts []*entity.BlogPost) BlogPostListResponse {
	responses := make([]BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, ToBlogPostResponse(post))
	}
	return BlogPostListResponse{Posts: responses, Count: len(responses)}
}

// ToAuthorResponse converts an entity.Author to an AuthorResponse.
func ToAuthorResponse(author entity.Author) AuthorResponse {
	return AuthorResponse{
		Name:   author.Name,
		Avatar: author.Avatar,
		Email:  author.Email,
		UID:    author.UID,
	}
}

// ToAuthorEntity converts an optional AuthorPayload to an entity author.
func ToAuthorEntity(payload *AuthorPayload) *entity.Author {
	if payload == nil {
		return nil
	}
	return &entity.Author{
		Name:   payload.Name,
		Avatar: payload.Avatar,
		Email:  payload.Email,
		UID:    payload.UID,
	}
}
