package handler

import (
	"strconv"

	"github.com/condo/backend/internal/application/communication"
	"github.com/gin-gonic/gin"
)

// AvisoHandler handles notice board HTTP requests
type AvisoHandler struct {
	BaseHandler
	service *communication.AvisoService
}

// NewAvisoHandler creates a new aviso handler
func NewAvisoHandler(service *communication.AvisoService) *AvisoHandler {
	return &AvisoHandler{service: service}
}

// Create godoc
// @Summary      Create notice
// @Description  Draft a notice for the condominium board
// @Tags         communication
// @Accept       json
// @Produce      json
// @Param        request body communication.CreateAvisoRequest true "Notice data"
// @Success      201 {object} dto.Response{data=communication.AvisoResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /avisos [post]
func (h *AvisoHandler) Create(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req communication.CreateAvisoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	aviso, err := h.service.Create(c.Request.Context(), condominiumID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, aviso)
}

// Publish godoc
// @Summary      Publish notice
// @Description  Make a draft notice visible to residents
// @Tags         communication
// @Accept       json
// @Produce      json
// @Param        id path string true "Aviso ID"
// @Param        request body communication.PublishAvisoRequest false "Expiry"
// @Success      200 {object} dto.Response{data=communication.AvisoResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /avisos/{id}/publish [post]
func (h *AvisoHandler) Publish(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req communication.PublishAvisoRequest
	_ = c.ShouldBindJSON(&req)

	aviso, err := h.service.Publish(c.Request.Context(), condominiumID, c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, aviso)
}

// Archive godoc
// @Summary      Archive notice
// @Tags         communication
// @Produce      json
// @Param        id path string true "Aviso ID"
// @Success      200 {object} dto.Response{data=communication.AvisoResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /avisos/{id}/archive [post]
func (h *AvisoHandler) Archive(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	aviso, err := h.service.Archive(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, aviso)
}

// Get godoc
// @Summary      Get notice
// @Tags         communication
// @Produce      json
// @Param        id path string true "Aviso ID"
// @Success      200 {object} dto.Response{data=communication.AvisoResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /avisos/{id} [get]
func (h *AvisoHandler) Get(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	aviso, err := h.service.GetByID(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, aviso)
}

// List godoc
// @Summary      List notices
// @Tags         communication
// @Produce      json
// @Param        status    query string false "Filter by status"
// @Param        visible   query bool   false "Only currently visible notices"
// @Param        page      query int    false "Page number"
// @Param        page_size query int    false "Page size"
// @Success      200 {object} dto.Response{data=[]communication.AvisoResponse}
// @Security     BearerAuth
// @Router       /avisos [get]
func (h *AvisoHandler) List(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	avisos, err := h.service.List(c.Request.Context(), condominiumID, communication.AvisoListFilter{
		Status:      c.Query("status"),
		VisibleOnly: c.Query("visible") == "true",
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, avisos)
}
