package entity

import (
	"time"
)

// BlogStatus represents the publication state of a blog post
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// BlogLayout selects the template a post is rendered with on the site
type BlogLayout string

const (
	BlogLayoutClassic  BlogLayout = "classic"
	BlogLayoutModern   BlogLayout = "modern"
	BlogLayoutMinimal  BlogLayout = "minimal"
	BlogLayoutMagazine BlogLayout = "magazine"
)

// DefaultTrendingOrder sorts untouched posts after every curated one.
const DefaultTrendingOrder = 999

const (
	DefaultAuthorName   = "Anonymous"
	DefaultAuthorAvatar = "/images/default-avatar.png"
)

// Author is the denormalized author sub-record stored on each post.
// Identity lives with the external auth provider; only display data is kept here.
type Author struct {
	Name   string `bson:"name" json:"name"`
	Avatar string `bson:"avatar" json:"avatar"`
	Email  string `bson:"email" json:"email"`
	UID    string `bson:"uid" json:"uid"`
}

// BlogPost is the canonical, fully populated representation of a stored post.
// Values handed out by the access layer always have every field set; defaulting
// for incomplete legacy documents happens in the repository's formatter.
type BlogPost struct {
	ID            string     `bson:"_id" json:"id"`
	Slug          string     `bson:"slug" json:"slug"`
	Title         string     `bson:"title" json:"title"`
	Content       string     `bson:"content" json:"content"`
	Excerpt       string     `bson:"excerpt" json:"excerpt"`
	FeaturedImage string     `bson:"featured_image" json:"featured_image"`
	CoverImage    string     `bson:"cover_image" json:"cover_image"`
	Category      []string   `bson:"category" json:"category"`
	Tags          []string   `bson:"tags" json:"tags"`
	Status        BlogStatus `bson:"status" json:"status"`
	Layout        BlogLayout `bson:"layout" json:"layout"`
	Author        Author     `bson:"author" json:"author"`
	IsTrending    bool       `bson:"is_trending" json:"is_trending"`
	TrendingOrder int        `bson:"trending_order" json:"trending_order"`
	Version       int64      `bson:"version" json:"version"`
	PublishedAt   time.Time  `bson:"published_at" json:"published_at"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
}

// HasTag reports whether the post carries the exact tag (case-sensitive).
func (p *BlogPost) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DefaultAuthor returns the placeholder identity used when a post is created
// without author data.
func DefaultAuthor() Author {
	return Author{
		Name:   DefaultAuthorName,
		Avatar: DefaultAuthorAvatar,
	}
}

// ValidBlogStatus reports whether s is a recognized publication state.
func ValidBlogStatus(s BlogStatus) bool {
	return s == BlogStatusDraft || s == BlogStatusPublished
}

// ValidBlogLayout reports whether l is a recognized layout.
func ValidBlogLayout(l BlogLayout) bool {
	switch l {
	case BlogLayoutClassic, BlogLayoutModern, BlogLayoutMinimal, BlogLayoutMagazine:
		return true
	}
	return false
}
