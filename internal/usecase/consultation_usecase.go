package usecase

import (
	"context"
	"fmt"

	"github.com/senaitabera/wellspring/internal/domain/contract"
	"github.com/senaitabera/wellspring/internal/domain/entity"
	usecasecontract "github.com/senaitabera/wellspring/internal/usecase/contract"
)

// SubmitConsultationInput is a consultation/contact request from the site.
type SubmitConsultationInput struct {
	Name    string
	Email   string
	Phone   string
	Topic   string
	Message string
}

// IConsultationUseCase defines consultation triage business logic.
type IConsultationUseCase interface {
	Submit(ctx context.Context, input SubmitConsultationInput) (*entity.Consultation, error)
	List(ctx context.Context, status entity.ConsultationStatus) ([]*entity.Consultation, error)
	UpdateStatus(ctx context.Context, id string, status entity.ConsultationStatus, note string) (*entity.Consultation, error)
}

// ConsultationUseCaseImpl implements the IConsultationUseCase interface.
type ConsultationUseCaseImpl struct {
	repo        contract.IConsultationRepository
	mailService contract.IEmailService
	validator   usecasecontract.IValidator
	uuidgen     usecasecontract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
	officeEmail string
}

// NewConsultationUseCase creates a new instance of ConsultationUseCase.
func NewConsultationUseCase(repo contract.IConsultationRepository, mailService contract.IEmailService, validator usecasecontract.IValidator, uuidgen usecasecontract.IUUIDGenerator, logger usecasecontract.IAppLogger, officeEmail string) *ConsultationUseCaseImpl {
	return &ConsultationUseCaseImpl{
		repo:        repo,
		mailService: mailService,
		validator:   validator,
		uuidgen:     uuidgen,
		logger:      logger,
		officeEmail: officeEmail,
	}
}

var _ IConsultationUseCase = (*ConsultationUseCaseImpl)(nil)

// Submit stores a new consultation request and notifies the office inbox.
// The notification is best-effort: a mail failure is logged, not surfaced,
// because the request itself is already safely stored.
func (uc *ConsultationUseCaseImpl) Submit(ctx context.Context, input SubmitConsultationInput) (*entity.Consultation, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("name is required: %w", entity.ErrInvalidArgument)
	}
	if input.Message == "" {
		return nil, fmt.Errorf("message is required: %w", entity.ErrInvalidArgument)
	}
	if err := uc.validator.ValidateEmail(input.Email); err != nil {
		return nil, fmt.Errorf("invalid email address: %w", entity.ErrInvalidArgument)
	}

	consultation := &entity.Consultation{
		ID:      uc.uuidgen.NewUUID(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Topic:   input.Topic,
		Message: input.Message,
		Status:  entity.ConsultationStatusPending,
	}

	if err := uc.repo.Create(ctx, consultation); err != nil {
		uc.logger.Errorf("failed to create consultation request: %v", err)
		return nil, err
	}

	if uc.mailService != nil && uc.officeEmail != "" {
		subject := fmt.Sprintf("New consultation request from %s", input.Name)
		body := fmt.Sprintf("Topic: %s\nFrom: %s <%s>\nPhone: %s\n\n%s", input.Topic, input.Name, input.Email, input.Phone, input.Message)
		if err := uc.mailService.SendEmail(ctx, uc.officeEmail, subject, body); err != nil {
			uc.logger.Warningf("failed to send consultation notification: %v", err)
		}
	}

	return consultation, nil
}

// List retrieves requests for the office dashboard, optionally by status.
func (uc *ConsultationUseCaseImpl) List(ctx context.Context, status entity.ConsultationStatus) ([]*entity.Consultation, error) {
	if status != "" && !entity.ValidConsultationStatus(status) {
		return nil, fmt.Errorf("invalid status %q: %w", status, entity.ErrInvalidArgument)
	}
	items, err := uc.repo.List(ctx, status)
	if err != nil {
		uc.logger.Errorf("failed to list consultations: %v", err)
		return nil, err
	}
	return items, nil
}

// UpdateStatus moves a request through the triage flow.
func (uc *ConsultationUseCaseImpl) UpdateStatus(ctx context.Context, id string, status entity.ConsultationStatus, note string) (*entity.Consultation, error) {
	if id == "" {
		return nil, fmt.Errorf("consultation id is required: %w", entity.ErrInvalidArgument)
	}
	if !entity.ValidConsultationStatus(status) {
		return nil, fmt.Errorf("invalid status %q: %w", status, entity.ErrInvalidArgument)
	}

	if err := uc.repo.UpdateStatus(ctx, id, status, note); err != nil {
		uc.logger.Errorf("failed to update consultation %s: %v", id, err)
		return nil, err
	}
	return uc.repo.GetByID(ctx, id)
}
