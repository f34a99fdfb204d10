package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senaitabera/wellspring/internal/handler/http/dto"
	"github.com/senaitabera/wellspring/internal/usecase"
)

type ResourceHandler struct {
	resourceUsecase usecase.IResourceUseCase
}

func NewResourceHandler(resourceUsecase usecase.IResourceUseCase) *ResourceHandler {
	return &ResourceHandler{
		resourceUsecase: resourceUsecase,
	}
}

// CreateHandler
func (h *ResourceHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateResourceRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	resource, err := h.resourceUsecase.Create(c.Request.Context(), usecase.CreateResourceInput{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		Category:    req.Category,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToResourceResponse(resource))
}

// GetHandler
func (h *ResourceHandler) GetHandler(c *gin.Context) {
	resource, err := h.resourceUsecase.Get(c.Request.Context(), c.Param("resourceID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToResourceResponse(resource))
}

// ListHandler
func (h *ResourceHandler) ListHandler(c *gin.Context) {
	items, err := h.resourceUsecase.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToResourceListResponse(items))
}

// UpdateHandler
func (h *ResourceHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateResourceRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	resource, err := h.resourceUsecase.Update(c.Request.Context(), c.Param("resourceID"), usecase.UpdateResourceInput{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		Category:    req.Category,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToResourceResponse(resource))
}

// DeleteHandler
func (h *ResourceHandler) DeleteHandler(c *gin.Context) {
	if err := h.resourceUsecase.Delete(c.Request.Context(), c.Param("resourceID")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Resource deleted successfully")
}
