package handler

import (
	"github.com/condo/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoletoHandler handles boleto billing HTTP requests
type BoletoHandler struct {
	BaseHandler
	service *billing.BoletoService
}

// NewBoletoHandler creates a new boleto handler
func NewBoletoHandler(service *billing.BoletoService) *BoletoHandler {
	return &BoletoHandler{service: service}
}

// Create godoc
// @Summary      Create boleto
// @Description  Generate a new boleto charge for a unit
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        request body billing.CreateBoletoRequest true "Boleto data"
// @Success      201 {object} dto.Response{data=billing.BoletoResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /boletos [post]
func (h *BoletoHandler) Create(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req billing.CreateBoletoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	boleto, err := h.service.Create(c.Request.Context(), condominiumID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, boleto)
}

// Get godoc
// @Summary      Get boleto
// @Description  Get a boleto by ID
// @Tags         billing
// @Produce      json
// @Param        id path string true "Boleto ID"
// @Success      200 {object} dto.Response{data=billing.BoletoResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /boletos/{id} [get]
func (h *BoletoHandler) Get(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	boletoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid boleto ID")
		return
	}

	boleto, err := h.service.GetByID(c.Request.Context(), condominiumID, boletoID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, boleto)
}

// List godoc
// @Summary      List boletos
// @Description  List boletos with optional unit and status filters
// @Tags         billing
// @Produce      json
// @Param        unit_id query string false "Filter by unit"
// @Param        status  query string false "Filter by status"
// @Param        page    query int    false "Page number"
// @Param        limit   query int    false "Page size"
// @Success      200 {object} dto.Response{data=[]billing.BoletoResponse}
// @Security     BearerAuth
// @Router       /boletos [get]
func (h *BoletoHandler) List(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var filter billing.BoletoListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	boletos, total, err := h.service.List(c.Request.Context(), condominiumID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, boletos, total, filter.Page, filter.Limit)
}

// Register godoc
// @Summary      Register boleto
// @Description  Record the bank registration data for a generated boleto
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id path string true "Boleto ID"
// @Param        request body billing.RegisterBoletoRequest true "Bank registration data"
// @Success      200 {object} dto.Response{data=billing.BoletoResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /boletos/{id}/register [post]
func (h *BoletoHandler) Register(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	boletoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid boleto ID")
		return
	}

	var req billing.RegisterBoletoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	boleto, err := h.service.Register(c.Request.Context(), condominiumID, boletoID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, boleto)
}

// Send godoc
// @Summary      Send boleto
// @Description  Mark a registered boleto as sent to the resident
// @Tags         billing
// @Produce      json
// @Param        id path string true "Boleto ID"
// @Success      200 {object} dto.Response{data=billing.BoletoResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /boletos/{id}/send [post]
func (h *BoletoHandler) Send(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	boletoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid boleto ID")
		return
	}

	boleto, err := h.service.Send(c.Request.Context(), condominiumID, boletoID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, boleto)
}

// Pay godoc
// @Summary      Register boleto payment
// @Description  Record a payment against a boleto
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id path string true "Boleto ID"
// @Param        request body billing.PayBoletoRequest true "Payment data"
// @Success      200 {object} dto.Response{data=billing.BoletoResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /boletos/{id}/pay [post]
func (h *BoletoHandler) Pay(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	boletoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid boleto ID")
		return
	}

	var req billing.PayBoletoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	boleto, err := h.service.RegisterPayment(c.Request.Context(), condominiumID, boletoID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, boleto)
}

// Cancel godoc
// @Summary      Cancel boleto
// @Description  Cancel an unpaid boleto
// @Tags         billing
// @Produce      json
// @Param        id path string true "Boleto ID"
// @Success      200 {object} dto.Response{data=billing.BoletoResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /boletos/{id}/cancel [post]
func (h *BoletoHandler) Cancel(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	boletoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid boleto ID")
		return
	}

	boleto, err := h.service.Cancel(c.Request.Context(), condominiumID, boletoID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, boleto)
}

// MarkOverdue godoc
// @Summary      Run overdue sweep
// @Description  Mark every sent boleto past its due date as overdue
// @Tags         billing
// @Produce      json
// @Success      200 {object} dto.Response{data=billing.OverdueSweepResult}
// @Security     BearerAuth
// @Router       /boletos/mark-overdue [post]
func (h *BoletoHandler) MarkOverdue(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	result, err := h.service.MarkOverdueSweep(c.Request.Context(), condominiumID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
