package handler

import (
	"github.com/condo/backend/internal/application/reservation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReservaHandler handles reservation HTTP requests
type ReservaHandler struct {
	BaseHandler
	service *reservation.ReservaService
	units   unitGuard
}

// NewReservaHandler creates a new reserva handler
func NewReservaHandler(service *reservation.ReservaService) *ReservaHandler {
	return &ReservaHandler{service: service}
}

// SetUnitResolver enables the resident unit check on reservation requests
func (h *ReservaHandler) SetUnitResolver(resolver UnitBindingResolver) {
	h.units.resolver = resolver
}

// Request godoc
// @Summary      Request reservation
// @Description  Request a reservation of a common area for a unit
// @Tags         reservation
// @Accept       json
// @Produce      json
// @Param        request body reservation.RequestReservaRequest true "Reservation request"
// @Success      201 {object} dto.Response{data=reservation.ReservaResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reservas [post]
func (h *ReservaHandler) Request(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	requestedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User context required")
		return
	}

	var req reservation.RequestReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.units.authorize(c, "reserva", condominiumID, req.UnitID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	reserva, err := h.service.Request(c.Request.Context(), condominiumID, requestedBy, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, reserva)
}

// Get godoc
// @Summary      Get reservation
// @Tags         reservation
// @Produce      json
// @Param        id path string true "Reserva ID"
// @Success      200 {object} dto.Response{data=reservation.ReservaResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reservas/{id} [get]
func (h *ReservaHandler) Get(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	reservaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid reserva ID")
		return
	}

	reserva, err := h.service.GetByID(c.Request.Context(), condominiumID, reservaID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reserva)
}

// List godoc
// @Summary      List reservations
// @Tags         reservation
// @Produce      json
// @Param        espaco_id query string false "Filter by common area"
// @Param        unit_id   query string false "Filter by unit"
// @Param        status    query string false "Filter by status"
// @Param        page      query int    false "Page number"
// @Param        limit     query int    false "Page size"
// @Success      200 {object} dto.Response{data=[]reservation.ReservaResponse}
// @Security     BearerAuth
// @Router       /reservas [get]
func (h *ReservaHandler) List(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var filter reservation.ReservaListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	reservas, total, err := h.service.List(c.Request.Context(), condominiumID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, reservas, total, filter.Page, filter.Limit)
}

// Approve godoc
// @Summary      Approve reservation
// @Description  Approve a pending reservation
// @Tags         reservation
// @Produce      json
// @Param        id path string true "Reserva ID"
// @Success      200 {object} dto.Response{data=reservation.ReservaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reservas/{id}/approve [post]
func (h *ReservaHandler) Approve(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	decidedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User context required")
		return
	}

	reservaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid reserva ID")
		return
	}

	reserva, err := h.service.Approve(c.Request.Context(), condominiumID, reservaID, decidedBy)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reserva)
}

// Reject godoc
// @Summary      Reject reservation
// @Description  Reject a pending reservation with a reason
// @Tags         reservation
// @Accept       json
// @Produce      json
// @Param        id path string true "Reserva ID"
// @Param        request body reservation.RejectReservaRequest false "Rejection reason"
// @Success      200 {object} dto.Response{data=reservation.ReservaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reservas/{id}/reject [post]
func (h *ReservaHandler) Reject(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	decidedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User context required")
		return
	}

	reservaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid reserva ID")
		return
	}

	var req reservation.RejectReservaRequest
	_ = c.ShouldBindJSON(&req)

	reserva, err := h.service.Reject(c.Request.Context(), condominiumID, reservaID, decidedBy, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reserva)
}

// Cancel godoc
// @Summary      Cancel reservation
// @Description  Cancel a reservation, honoring the cancellation notice rule
// @Tags         reservation
// @Produce      json
// @Param        id path string true "Reserva ID"
// @Success      200 {object} dto.Response{data=reservation.ReservaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reservas/{id}/cancel [post]
func (h *ReservaHandler) Cancel(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	reservaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid reserva ID")
		return
	}

	cancelledBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User context required")
		return
	}

	reserva, err := h.service.Cancel(c.Request.Context(), condominiumID, reservaID, cancelledBy)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reserva)
}

// CancelByAdmin godoc
// @Summary      Cancel reservation as staff
// @Description  Cancel a reservation bypassing the notice rule
// @Tags         reservation
// @Produce      json
// @Param        id path string true "Reserva ID"
// @Success      200 {object} dto.Response{data=reservation.ReservaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reservas/{id}/admin-cancel [post]
func (h *ReservaHandler) CancelByAdmin(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	decidedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User context required")
		return
	}

	reservaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid reserva ID")
		return
	}

	reserva, err := h.service.CancelByAdmin(c.Request.Context(), condominiumID, reservaID, decidedBy)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reserva)
}
