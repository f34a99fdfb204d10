package dto

import (
	"time"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// SubmitConsultationRequest is the public contact/consultation form payload.
type SubmitConsultationRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Topic   string `json:"topic"`
	Message string `json:"message" binding:"required"`
}

// UpdateConsultationStatusRequest moves a request through the triage flow.
type UpdateConsultationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending responded archived"`
	Note   string `json:"note"`
}

// ConsultationResponse defines the JSON response for a consultation request.
type ConsultationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Topic     string    `json:"topic"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToConsultationResponse converts an *entity.Consultation to its DTO.
func ToConsultationResponse(consultation *entity.Consultation) ConsultationResponse {
	return ConsultationResponse{
		ID:        consultation.ID,
		Name:      consultation.Name,
		Email:     consultation.Email,
		Phone:     consultation.Phone,
		Topic:     consultation.Topic,
		Message:   consultation.Message,
		Status:    string(consultation.Status),
		Note:      consultation.Note,
		CreatedAt: consultation.CreatedAt,
		UpdatedAt: consultation.UpdatedAt,
	}
}

// ToConsultationListResponse converts a slice of requests; never nil.
func ToConsultationListResponse(items []*entity.Consultation) []ConsultationResponse {
	responses := make([]ConsultationResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToConsultationResponse(item))
	}
	return responses
}
