package dto

import (
	"time"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// CreateCommunityPostRequest defines the structure for a new board post.
type CreateCommunityPostRequest struct {
	Title   string         `json:"title" binding:"required"`
	Content string         `json:"content" binding:"required"`
	Tags    []string       `json:"tags"`
	Author  *AuthorPayload `json:"author"`
}

// UpdateCommunityPostRequest defines the structure for updating a board post.
type UpdateCommunityPostRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
}

// CommunityPostResponse defines the JSON response for a single board post.
type CommunityPostResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Tags      []string       `json:"tags"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ToCommunityPostResponse converts an *entity.CommunityPost to its DTO.
func ToCommunityPostResponse(post *entity.CommunityPost) CommunityPostResponse {
	return CommunityPostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Tags:      post.Tags,
		Author:    ToAuthorResponse(post.Author),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// ToCommunityPostListResponse converts a slice of board posts; never nil.
func ToCommunityPostListResponse(posts []*entity.CommunityPost) []CommunityPostResponse {
	responses := make([]CommunityPostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, ToCommunityPostResponse(post))
	}
	return responses
}
