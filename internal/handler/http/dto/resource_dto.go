package dto

import (
	"time"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// CreateResourceRequest defines the structure for a new resource record.
type CreateResourceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	FileURL     string `json:"file_url" binding:"required,url"`
	Category    string `json:"category"`
}

// UpdateResourceRequest defines the structure for updating a resource record.
type UpdateResourceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	FileURL     *string `json:"file_url" binding:"omitempty,url"`
	Category    *string `json:"category"`
}

// ResourceResponse defines the JSON response for a single resource.
type ResourceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileURL     string    `json:"file_url"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToResourceResponse converts an *entity.Resource to its DTO.
func ToResourceResponse(resource *entity.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          resource.ID,
		Title:       resource.Title,
		Description: resource.Description,
		FileURL:     resource.FileURL,
		Category:    resource.Category,
		CreatedAt:   resource.CreatedAt,
		UpdatedAt:   resource.UpdatedAt,
	}
}

// ToResourceListResponse converts a slice of resources; never nil.
func ToResourceListResponse(items []*entity.Resource) []ResourceResponse {
	responses := make([]ResourceResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToResourceResponse(item))
	}
	return responses
}
