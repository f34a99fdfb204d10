package entity

import "time"

// CommentStatus tracks moderation state. New comments start pending and only
// approved ones are shown publicly.
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusRejected CommentStatus = "rejected"
)

// ValidCommentStatus reports whether s is a recognized moderation state.
func ValidCommentStatus(s CommentStatus) bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusRejected:
		return true
	}
	return false
}

// Comment is a reader comment attached to a blog post.
type Comment struct {
	ID        string        `bson:"_id" json:"id"`
	PostID    string        `bson:"post_id" json:"post_id"`
	Author    Author        `bson:"author" json:"author"`
	Content   string        `bson:"content" json:"content"`
	Status    CommentStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}
