package handler

import (
	"strconv"
	"time"

	"github.com/condo/backend/internal/application/frontdesk"
	"github.com/gin-gonic/gin"
)

// VisitaHandler handles visitor log HTTP requests
type VisitaHandler struct {
	BaseHandler
	service *frontdesk.VisitaService
	units   unitGuard
}

// NewVisitaHandler creates a new visita handler
func NewVisitaHandler(service *frontdesk.VisitaService) *VisitaHandler {
	return &VisitaHandler{service: service}
}

// SetUnitResolver enables the resident unit check on visit pre-authorizations
func (h *VisitaHandler) SetUnitResolver(resolver UnitBindingResolver) {
	h.units.resolver = resolver
}

// Expect godoc
// @Summary      Pre-authorize visitor
// @Description  Register an expected visitor on behalf of a unit
// @Tags         frontdesk
// @Accept       json
// @Produce      json
// @Param        request body frontdesk.ExpectVisitaRequest true "Expected visit"
// @Success      201 {object} dto.Response{data=frontdesk.VisitaResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /visitas/expect [post]
func (h *VisitaHandler) Expect(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req frontdesk.ExpectVisitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.units.authorize(c, "visita", condominiumID, req.UnitID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	visita, err := h.service.Expect(c.Request.Context(), condominiumID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, visita)
}

// WalkIn godoc
// @Summary      Register walk-in visitor
// @Description  Register an unannounced visitor at the gate
// @Tags         frontdesk
// @Accept       json
// @Produce      json
// @Param        request body frontdesk.WalkInVisitaRequest true "Walk-in visit"
// @Success      201 {object} dto.Response{data=frontdesk.VisitaResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /visitas/walk-in [post]
func (h *VisitaHandler) WalkIn(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req frontdesk.WalkInVisitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	visita, err := h.service.WalkIn(c.Request.Context(), condominiumID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, visita)
}

// CheckIn godoc
// @Summary      Check in visitor
// @Tags         frontdesk
// @Produce      json
// @Param        id path string true "Visita ID"
// @Success      200 {object} dto.Response{data=frontdesk.VisitaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /visitas/{id}/check-in [post]
func (h *VisitaHandler) CheckIn(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	registeredBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User context required")
		return
	}

	visita, err := h.service.CheckIn(c.Request.Context(), condominiumID, c.Param("id"), registeredBy.String())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, visita)
}

// CheckOut godoc
// @Summary      Check out visitor
// @Tags         frontdesk
// @Produce      json
// @Param        id path string true "Visita ID"
// @Success      200 {object} dto.Response{data=frontdesk.VisitaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /visitas/{id}/check-out [post]
func (h *VisitaHandler) CheckOut(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	visita, err := h.service.CheckOut(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, visita)
}

// Cancel godoc
// @Summary      Cancel expected visit
// @Tags         frontdesk
// @Produce      json
// @Param        id path string true "Visita ID"
// @Success      200 {object} dto.Response{data=frontdesk.VisitaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /visitas/{id}/cancel [post]
func (h *VisitaHandler) Cancel(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	visita, err := h.service.Cancel(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, visita)
}

// Get godoc
// @Summary      Get visit
// @Tags         frontdesk
// @Produce      json
// @Param        id path string true "Visita ID"
// @Success      200 {object} dto.Response{data=frontdesk.VisitaResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /visitas/{id} [get]
func (h *VisitaHandler) Get(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	visita, err := h.service.GetByID(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, visita)
}

// List godoc
// @Summary      List visits
// @Tags         frontdesk
// @Produce      json
// @Param        unit_id   query string false "Filter by unit"
// @Param        status    query string false "Filter by status"
// @Param        from      query string false "Window start (RFC3339)"
// @Param        to        query string false "Window end (RFC3339)"
// @Param        page      query int    false "Page number"
// @Param        page_size query int    false "Page size"
// @Success      200 {object} dto.Response{data=[]frontdesk.VisitaResponse}
// @Security     BearerAuth
// @Router       /visitas [get]
func (h *VisitaHandler) List(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := frontdesk.VisitaListFilter{
		UnitID:   c.Query("unit_id"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			h.BadRequest(c, "Invalid from timestamp")
			return
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			h.BadRequest(c, "Invalid to timestamp")
			return
		}
		filter.To = &t
	}

	visitas, err := h.service.List(c.Request.Context(), condominiumID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, visitas)
}
