package contract

import (
	"context"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// IConsultationRepository manages consultation/contact requests for the
// office dashboard.
type IConsultationRepository interface {
	Create(ctx context.Context, c *entity.Consultation) error
	GetByID(ctx context.Context, id string) (*entity.Consultation, error)
	// List returns requests newest first, optionally restricted to one status.
	List(ctx context.Context, status entity.ConsultationStatus) ([]*entity.Consultation, error)
	UpdateStatus(ctx context.Context, id string, status entity.ConsultationStatus, note string) error
}
