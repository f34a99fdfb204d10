package entity

import "time"

// ConsultationStatus tracks triage progress on an office dashboard message.
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusResponded ConsultationStatus = "responded"
	ConsultationStatusArchived  ConsultationStatus = "archived"
)

// ValidConsultationStatus reports whether s is a recognized triage state.
func ValidConsultationStatus(s ConsultationStatus) bool {
	switch s {
	case ConsultationStatusPending, ConsultationStatusResponded, ConsultationStatusArchived:
		return true
	}
	return false
}

// Consultation is a contact/consultation request submitted from the site.
type Consultation struct {
	ID        string             `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Topic     string             `bson:"topic" json:"topic"`
	Message   string             `bson:"message" json:"message"`
	Status    ConsultationStatus `bson:"status" json:"status"`
	Note      string             `bson:"note" json:"note"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
