package entity

import "time"

// Resource is a downloadable asset (guide, worksheet, recording) managed from
// the admin dashboard. The file itself lives with the external media host;
// only the URL is stored.
type Resource struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	FileURL     string    `bson:"file_url" json:"file_url"`
	Category    string    `bson:"category" json:"category"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
