package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senaitabera/wellspring/internal/domain/entity"
	"github.com/senaitabera/wellspring/internal/handler/http/dto"
	"github.com/senaitabera/wellspring/internal/usecase"
)

type ConsultationHandler struct {
	consultationUsecase usecase.IConsultationUseCase
}

func NewConsultationHandler(consultationUsecase usecase.IConsultationUseCase) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
	}
}

// SubmitHandler accepts the public consultation form.
func (h *ConsultationHandler) SubmitHandler(c *gin.Context) {
	var req dto.SubmitConsultationRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	consultation, err := h.consultationUsecase.Submit(c.Request.Context(), usecase.SubmitConsultationInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Topic:   req.Topic,
		Message: req.Message,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToConsultationResponse(consultation))
}

// ListHandler shows requests on the office dashboard, optionally by status.
func (h *ConsultationHandler) ListHandler(c *gin.Context) {
	status := entity.ConsultationStatus(c.Query("status"))
	items, err := h.consultationUsecase.List(c.Request.Context(), status)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToConsultationListResponse(items))
}

// UpdateStatusHandler moves a request through the triage flow.
func (h *ConsultationHandler) UpdateStatusHandler(c *gin.Context) {
	var req dto.UpdateConsultationStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	consultation, err := h.consultationUsecase.UpdateStatus(c.Request.Context(), c.Param("consultationID"), entity.ConsultationStatus(req.Status), req.Note)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToConsultationResponse(consultation))
}
