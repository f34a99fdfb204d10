package entity

import "time"

// CommunityPost is a discussion board entry. Unlike blog posts, community
// posts are soft-deleted so threads referencing them keep resolving.
type CommunityPost struct {
	ID        string    `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Tags      []string  `bson:"tags" json:"tags"`
	Author    Author    `bson:"author" json:"author"`
	IsDeleted bool      `bson:"is_deleted" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
