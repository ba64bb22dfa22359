package handler

import (
	"strconv"

	"github.com/condo/backend/internal/application/condominium"
	domaincondo "github.com/condo/backend/internal/domain/condominium"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CondominiumHandler handles condominium administration HTTP requests
type CondominiumHandler struct {
	BaseHandler
	service *condominium.CondominiumService
}

// NewCondominiumHandler creates a new condominium handler
func NewCondominiumHandler(service *condominium.CondominiumService) *CondominiumHandler {
	return &CondominiumHandler{service: service}
}

// SetCondominiumActiveRequest toggles a condominium's status
type SetCondominiumActiveRequest struct {
	Active bool `json:"active"`
}

// AssignOwnerRequest links a unit to its owner account
type AssignOwnerRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// Create godoc
// @Summary      Create condominium
// @Description  Register a new condominium on the platform
// @Tags         condominium
// @Accept       json
// @Produce      json
// @Param        request body condominium.CreateCondominiumRequest true "Condominium data"
// @Success      201 {object} dto.Response{data=condominium.CondominiumResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /condominiums [post]
func (h *CondominiumHandler) Create(c *gin.Context) {
	var req condominium.CreateCondominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	condo, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, condo)
}

// Get godoc
// @Summary      Get condominium
// @Tags         condominium
// @Produce      json
// @Param        id path string true "Condominium ID"
// @Success      200 {object} dto.Response{data=condominium.CondominiumResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /condominiums/{id} [get]
func (h *CondominiumHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid condominium ID")
		return
	}

	condo, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, condo)
}

// List godoc
// @Summary      List condominiums
// @Tags         condominium
// @Produce      json
// @Param        page  query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200 {object} dto.Response{data=[]condominium.CondominiumResponse}
// @Security     BearerAuth
// @Router       /condominiums [get]
func (h *CondominiumHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	condos, total, err := h.service.List(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, condos, total, page, limit)
}

// UpdateContact godoc
// @Summary      Update condominium contact
// @Tags         condominium
// @Accept       json
// @Produce      json
// @Param        id path string true "Condominium ID"
// @Param        request body condominium.UpdateContactRequest true "Contact data"
// @Success      200 {object} dto.Response{data=condominium.CondominiumResponse}
// @Security     BearerAuth
// @Router       /condominiums/{id}/contact [put]
func (h *CondominiumHandler) UpdateContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid condominium ID")
		return
	}

	var req condominium.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	condo, err := h.service.UpdateContact(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, condo)
}

// UpdateSettings godoc
// @Summary      Update condominium settings
// @Description  Replace billing and operational settings
// @Tags         condominium
// @Accept       json
// @Produce      json
// @Param        id path string true "Condominium ID"
// @Param        request body condominium.UpdateSettingsRequest true "Settings"
// @Success      200 {object} dto.Response{data=condominium.CondominiumResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /condominiums/{id}/settings [put]
func (h *CondominiumHandler) UpdateSettings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid condominium ID")
		return
	}

	var req condominium.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	condo, err := h.service.UpdateSettings(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, condo)
}

// SetActive godoc
// @Summary      Activate or suspend condominium
// @Tags         condominium
// @Accept       json
// @Produce      json
// @Param        id path string true "Condominium ID"
// @Param        request body SetCondominiumActiveRequest true "Active flag"
// @Success      200 {object} dto.Response{data=condominium.CondominiumResponse}
// @Security     BearerAuth
// @Router       /condominiums/{id}/active [put]
func (h *CondominiumHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid condominium ID")
		return
	}

	var req SetCondominiumActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	condo, err := h.service.SetActive(c.Request.Context(), id, req.Active)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, condo)
}

// CreateUnidade godoc
// @Summary      Create unit
// @Description  Register a unit inside the current condominium
// @Tags         condominium
// @Accept       json
// @Produce      json
// @Param        request body condominium.CreateUnidadeRequest true "Unit data"
// @Success      201 {object} dto.Response{data=condominium.UnidadeResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /unidades [post]
func (h *CondominiumHandler) CreateUnidade(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req condominium.CreateUnidadeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	unidade, err := h.service.CreateUnidade(c.Request.Context(), condominiumID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, unidade)
}

// ListUnidades godoc
// @Summary      List units
// @Tags         condominium
// @Produce      json
// @Param        bloco  query string false "Filter by block"
// @Param        active query bool   false "Only active units"
// @Param        page   query int    false "Page number"
// @Param        limit  query int    false "Page size"
// @Success      200 {object} dto.Response{data=[]condominium.UnidadeResponse}
// @Security     BearerAuth
// @Router       /unidades [get]
func (h *CondominiumHandler) ListUnidades(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	filter := domaincondo.UnidadeFilter{
		ActiveOnly: c.Query("active") == "true",
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}
	if bloco := c.Query("bloco"); bloco != "" {
		filter.Bloco = &bloco
	}

	unidades, err := h.service.ListUnidades(c.Request.Context(), condominiumID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unidades)
}

// AssignOwner godoc
// @Summary      Assign unit owner
// @Description  Link a unit to the resident account that owns it
// @Tags         condominium
// @Accept       json
// @Produce      json
// @Param        id path string true "Unidade ID"
// @Param        request body AssignOwnerRequest true "Owner user"
// @Success      200 {object} dto.Response{data=condominium.UnidadeResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /unidades/{id}/owner [put]
func (h *CondominiumHandler) AssignOwner(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	unidadeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unidade ID")
		return
	}

	var req AssignOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	unidade, err := h.service.AssignOwner(c.Request.Context(), condominiumID, unidadeID, userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unidade)
}

// AssignTenant godoc
// @Summary      Assign unit tenant
// @Description  Link a unit to the resident account renting it
// @Tags         condominium
// @Accept       json
// @Produce      json
// @Param        id path string true "Unidade ID"
// @Param        request body AssignOwnerRequest true "Tenant user"
// @Success      200 {object} dto.Response{data=condominium.UnidadeResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /unidades/{id}/tenant [put]
func (h *CondominiumHandler) AssignTenant(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	unidadeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unidade ID")
		return
	}

	var req AssignOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	unidade, err := h.service.AssignTenant(c.Request.Context(), condominiumID, unidadeID, userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unidade)
}
