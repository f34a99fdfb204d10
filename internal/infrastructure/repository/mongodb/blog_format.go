package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// FormatBlogPost converts a raw stored document into a fully populated
// BlogPost. Legacy documents written by earlier versions of the site miss
// fields or hold the wrong shape (a bare string where an array belongs, a
// half-filled author record); every such case falls back to a documented
// default here, never anywhere else. The returned post always has every
// field set.
func FormatBlogPost(doc bson.M) *entity.BlogPost {
	post := &entity.BlogPost{
		ID:            asString(doc["_id"], ""),
		Title:         asString(doc["title"], "Untitled Post"),
		Content:       asString(doc["content"], ""),
		Excerpt:       asString(doc["excerpt"], ""),
		FeaturedImage: asString(doc["featured_image"], ""),
		CoverImage:    asString(doc["cover_image"], ""),
		Category:      asStringSlice(doc["category"]),
		Tags:          asStringSlice(doc["tags"]),
		Status:        entity.BlogStatus(asString(doc["status"], string(entity.BlogStatusDraft))),
		Layout:        entity.BlogLayout(asString(doc["layout"], string(entity.BlogLayoutClassic))),
		Author:        asAuthor(doc["author"]),
		IsTrending:    asBool(doc["is_trending"]),
		TrendingOrder: asInt(doc["trending_order"], entity.DefaultTrendingOrder),
		Version:       int64(asInt(doc["version"], 1)),
		PublishedAt:   asTime(doc["published_at"], time.Now()),
		UpdatedAt:     asTime(doc["updated_at"], time.Time{}),
	}

	post.Slug = asString(doc["slug"], "")

	if !entity.ValidBlogStatus(post.Status) {
		post.Status = entity.BlogStatusDraft
	}
	if !entity.ValidBlogLayout(post.Layout) {
		post.Layout = entity.BlogLayoutClassic
	}

	return post
}

func asString(v interface{}, def string) string {
	switch s := v.(type) {
	case string:
		if s == "" {
			return def
		}
		return s
	case primitive.ObjectID:
		return s.Hex()
	}
	return def
}

// asStringSlice never returns nil: a malformed category/tag field must not
// propagate as a non-sequence.
func asStringSlice(v interface{}) []string {
	out := []string{}
	switch vals := v.(type) {
	case primitive.A:
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case []interface{}:
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, vals...)
	}
	return out
}

func asTime(v interface{}, def time.Time) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case primitive.DateTime:
		return t.Time()
	}
	return def
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asInt(v interface{}, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return def
}

// asAuthor defaults each author field independently so partial author data
// never causes a read failure.
func asAuthor(v interface{}) entity.Author {
	author := entity.DefaultAuthor()

	var m bson.M
	switch doc := v.(type) {
	case bson.M:
		m = doc
	case map[string]interface{}:
		m = doc
	default:
		return author
	}

	author.Name = asString(m["name"], entity.DefaultAuthorName)
	author.Avatar = asString(m["avatar"], entity.DefaultAuthorAvatar)
	author.Email = asString(m["email"], "")
	author.UID = asString(m["uid"], "")
	return author
}
