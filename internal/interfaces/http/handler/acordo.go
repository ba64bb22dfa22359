package handler

import (
	"strconv"

	"github.com/condo/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AcordoHandler handles installment agreement HTTP requests
type AcordoHandler struct {
	BaseHandler
	service *billing.AcordoService
}

// NewAcordoHandler creates a new acordo handler
func NewAcordoHandler(service *billing.AcordoService) *AcordoHandler {
	return &AcordoHandler{service: service}
}

// IssueParcelaRequest carries the optional description for a parcela boleto
type IssueParcelaRequest struct {
	Description string `json:"description" binding:"max=500"`
}

// Create godoc
// @Summary      Create acordo
// @Description  Create an installment agreement for a unit's outstanding debt
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        request body billing.CreateAcordoRequest true "Agreement data"
// @Success      201 {object} dto.Response{data=billing.AcordoResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /acordos [post]
func (h *AcordoHandler) Create(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req billing.CreateAcordoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	acordo, err := h.service.Create(c.Request.Context(), condominiumID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, acordo)
}

// Get godoc
// @Summary      Get acordo
// @Description  Get an installment agreement by ID
// @Tags         billing
// @Produce      json
// @Param        id path string true "Acordo ID"
// @Success      200 {object} dto.Response{data=billing.AcordoResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /acordos/{id} [get]
func (h *AcordoHandler) Get(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	acordoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid acordo ID")
		return
	}

	acordo, err := h.service.GetByID(c.Request.Context(), condominiumID, acordoID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, acordo)
}

// ListByUnit godoc
// @Summary      List acordos by unit
// @Description  List the installment agreements of a unit
// @Tags         billing
// @Produce      json
// @Param        unit_id query string true "Unit ID"
// @Success      200 {object} dto.Response{data=[]billing.AcordoResponse}
// @Security     BearerAuth
// @Router       /acordos [get]
func (h *AcordoHandler) ListByUnit(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	unitID, err := uuid.Parse(c.Query("unit_id"))
	if err != nil {
		h.BadRequest(c, "Invalid or missing unit_id")
		return
	}

	acordos, err := h.service.ListByUnit(c.Request.Context(), condominiumID, unitID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, acordos)
}

// IssueParcela godoc
// @Summary      Issue parcela boleto
// @Description  Generate the boleto for one installment of an agreement
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id path string true "Acordo ID"
// @Param        seq path int true "Installment sequence"
// @Param        request body IssueParcelaRequest false "Boleto description"
// @Success      201 {object} dto.Response{data=billing.BoletoResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /acordos/{id}/parcelas/{seq}/boleto [post]
func (h *AcordoHandler) IssueParcela(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	acordoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid acordo ID")
		return
	}

	sequence, err := strconv.Atoi(c.Param("seq"))
	if err != nil {
		h.BadRequest(c, "Invalid installment sequence")
		return
	}

	var req IssueParcelaRequest
	_ = c.ShouldBindJSON(&req)

	boleto, err := h.service.IssueParcelaBoleto(c.Request.Context(), condominiumID, acordoID, sequence, req.Description)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, boleto)
}

// PayParcela godoc
// @Summary      Pay parcela
// @Description  Record the payment of one installment of an agreement
// @Tags         billing
// @Produce      json
// @Param        id path string true "Acordo ID"
// @Param        seq path int true "Installment sequence"
// @Success      200 {object} dto.Response{data=billing.AcordoResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /acordos/{id}/parcelas/{seq}/pay [post]
func (h *AcordoHandler) PayParcela(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	acordoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid acordo ID")
		return
	}

	sequence, err := strconv.Atoi(c.Param("seq"))
	if err != nil {
		h.BadRequest(c, "Invalid installment sequence")
		return
	}

	acordo, err := h.service.PayParcela(c.Request.Context(), condominiumID, acordoID, sequence)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, acordo)
}

// Cancel godoc
// @Summary      Cancel acordo
// @Description  Cancel an active installment agreement
// @Tags         billing
// @Produce      json
// @Param        id path string true "Acordo ID"
// @Success      200 {object} dto.Response{data=billing.AcordoResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /acordos/{id}/cancel [post]
func (h *AcordoHandler) Cancel(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	acordoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid acordo ID")
		return
	}

	acordo, err := h.service.Cancel(c.Request.Context(), condominiumID, acordoID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, acordo)
}
