package dto

import (
	"time"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// AddCommentRequest is a reader comment submission.
type AddCommentRequest struct {
	Content string         `json:"content" binding:"required"`
	Author  *AuthorPayload `json:"author"`
}

// ModerateCommentRequest moves a comment through the moderation flow.
type ModerateCommentRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// CommentResponse defines the JSON response for a single comment.
type CommentResponse struct {
	ID        string         `json:"id"`
	PostID    string         `json:"post_id"`
	Author    AuthorResponse `json:"author"`
	Content   string         `json:"content"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ToCommentResponse converts an *entity.Comment to its DTO.
func ToCommentResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Author:    ToAuthorResponse(comment.Author),
		Content:   comment.Content,
		Status:    string(comment.Status),
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// ToCommentListResponse converts a slice of comments; never nil.
func ToCommentListResponse(comments []*entity.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, ToCommentResponse(comment))
	}
	return responses
}
