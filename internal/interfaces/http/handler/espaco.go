package handler

import (
	"github.com/condo/backend/internal/application/reservation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EspacoHandler handles common area HTTP requests
type EspacoHandler struct {
	BaseHandler
	service *reservation.EspacoService
}

// NewEspacoHandler creates a new espaco handler
func NewEspacoHandler(service *reservation.EspacoService) *EspacoHandler {
	return &EspacoHandler{service: service}
}

// SetEspacoActiveRequest toggles a common area's availability
type SetEspacoActiveRequest struct {
	Active bool `json:"active"`
}

// Create godoc
// @Summary      Create common area
// @Description  Register a reservable common area
// @Tags         reservation
// @Accept       json
// @Produce      json
// @Param        request body reservation.CreateEspacoRequest true "Common area data"
// @Success      201 {object} dto.Response{data=reservation.EspacoResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /espacos [post]
func (h *EspacoHandler) Create(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req reservation.CreateEspacoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	espaco, err := h.service.Create(c.Request.Context(), condominiumID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, espaco)
}

// ConfigureRules godoc
// @Summary      Configure reservation rules
// @Description  Replace the eligibility rules of a common area
// @Tags         reservation
// @Accept       json
// @Produce      json
// @Param        id path string true "Espaco ID"
// @Param        request body reservation.ConfigureEspacoRequest true "Rule set"
// @Success      200 {object} dto.Response{data=reservation.EspacoResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /espacos/{id}/rules [put]
func (h *EspacoHandler) ConfigureRules(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	espacoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid espaco ID")
		return
	}

	var req reservation.ConfigureEspacoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	espaco, err := h.service.ConfigureRules(c.Request.Context(), condominiumID, espacoID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, espaco)
}

// Get godoc
// @Summary      Get common area
// @Tags         reservation
// @Produce      json
// @Param        id path string true "Espaco ID"
// @Success      200 {object} dto.Response{data=reservation.EspacoResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /espacos/{id} [get]
func (h *EspacoHandler) Get(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	espacoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid espaco ID")
		return
	}

	espaco, err := h.service.GetByID(c.Request.Context(), condominiumID, espacoID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, espaco)
}

// List godoc
// @Summary      List common areas
// @Tags         reservation
// @Produce      json
// @Param        active query bool false "Only active areas"
// @Success      200 {object} dto.Response{data=[]reservation.EspacoResponse}
// @Security     BearerAuth
// @Router       /espacos [get]
func (h *EspacoHandler) List(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	activeOnly := c.Query("active") == "true"

	espacos, err := h.service.List(c.Request.Context(), condominiumID, activeOnly)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, espacos)
}

// SetActive godoc
// @Summary      Activate or deactivate common area
// @Tags         reservation
// @Accept       json
// @Produce      json
// @Param        id path string true "Espaco ID"
// @Param        request body SetEspacoActiveRequest true "Active flag"
// @Success      200 {object} dto.Response{data=reservation.EspacoResponse}
// @Security     BearerAuth
// @Router       /espacos/{id}/active [put]
func (h *EspacoHandler) SetActive(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	espacoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid espaco ID")
		return
	}

	var req SetEspacoActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	espaco, err := h.service.SetActive(c.Request.Context(), condominiumID, espacoID, req.Active)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, espaco)
}
