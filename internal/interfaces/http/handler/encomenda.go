package handler

import (
	"strconv"

	"github.com/condo/backend/internal/application/frontdesk"
	"github.com/gin-gonic/gin"
)

// EncomendaHandler handles package tracking HTTP requests
type EncomendaHandler struct {
	BaseHandler
	service *frontdesk.EncomendaService
}

// NewEncomendaHandler creates a new encomenda handler
func NewEncomendaHandler(service *frontdesk.EncomendaService) *EncomendaHandler {
	return &EncomendaHandler{service: service}
}

// Receive godoc
// @Summary      Receive package
// @Description  Register a package received at the front desk
// @Tags         frontdesk
// @Accept       json
// @Produce      json
// @Param        request body frontdesk.ReceiveEncomendaRequest true "Package data"
// @Success      201 {object} dto.Response{data=frontdesk.EncomendaResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /encomendas [post]
func (h *EncomendaHandler) Receive(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req frontdesk.ReceiveEncomendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	encomenda, err := h.service.Receive(c.Request.Context(), condominiumID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, encomenda)
}

// Deliver godoc
// @Summary      Deliver package
// @Description  Hand a package to a resident
// @Tags         frontdesk
// @Accept       json
// @Produce      json
// @Param        id path string true "Encomenda ID"
// @Param        request body frontdesk.DeliverEncomendaRequest true "Recipient"
// @Success      200 {object} dto.Response{data=frontdesk.EncomendaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /encomendas/{id}/deliver [post]
func (h *EncomendaHandler) Deliver(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req frontdesk.DeliverEncomendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	encomenda, err := h.service.Deliver(c.Request.Context(), condominiumID, c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, encomenda)
}

// Return godoc
// @Summary      Return package
// @Description  Send an unclaimed package back to the carrier
// @Tags         frontdesk
// @Accept       json
// @Produce      json
// @Param        id path string true "Encomenda ID"
// @Param        request body frontdesk.ReturnEncomendaRequest false "Return reason"
// @Success      200 {object} dto.Response{data=frontdesk.EncomendaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /encomendas/{id}/return [post]
func (h *EncomendaHandler) Return(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req frontdesk.ReturnEncomendaRequest
	_ = c.ShouldBindJSON(&req)

	encomenda, err := h.service.Return(c.Request.Context(), condominiumID, c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, encomenda)
}

// Get godoc
// @Summary      Get package
// @Tags         frontdesk
// @Produce      json
// @Param        id path string true "Encomenda ID"
// @Success      200 {object} dto.Response{data=frontdesk.EncomendaResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /encomendas/{id} [get]
func (h *EncomendaHandler) Get(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	encomenda, err := h.service.GetByID(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, encomenda)
}

// List godoc
// @Summary      List packages
// @Tags         frontdesk
// @Produce      json
// @Param        unit_id   query string false "Filter by unit"
// @Param        status    query string false "Filter by status"
// @Param        page      query int    false "Page number"
// @Param        page_size query int    false "Page size"
// @Success      200 {object} dto.Response{data=[]frontdesk.EncomendaResponse}
// @Security     BearerAuth
// @Router       /encomendas [get]
func (h *EncomendaHandler) List(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	encomendas, err := h.service.List(c.Request.Context(), condominiumID, frontdesk.EncomendaListFilter{
		UnitID:   c.Query("unit_id"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, encomendas)
}

// ListPendingPickup godoc
// @Summary      List unclaimed packages
// @Description  List packages awaiting pickup, optionally older than N days
// @Tags         frontdesk
// @Produce      json
// @Param        older_than_days query int false "Minimum days held"
// @Success      200 {object} dto.Response{data=[]frontdesk.EncomendaResponse}
// @Security     BearerAuth
// @Router       /encomendas/pending [get]
func (h *EncomendaHandler) ListPendingPickup(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	olderThanDays, _ := strconv.Atoi(c.DefaultQuery("older_than_days", "0"))

	encomendas, err := h.service.ListPendingPickup(c.Request.Context(), condominiumID, olderThanDays)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, encomendas)
}
