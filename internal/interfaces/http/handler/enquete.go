package handler

import (
	"strconv"

	"github.com/condo/backend/internal/application/communication"
	"github.com/gin-gonic/gin"
)

// EnqueteHandler handles resident poll HTTP requests
type EnqueteHandler struct {
	BaseHandler
	service *communication.EnqueteService
	units   unitGuard
}

// NewEnqueteHandler creates a new enquete handler
func NewEnqueteHandler(service *communication.EnqueteService) *EnqueteHandler {
	return &EnqueteHandler{service: service}
}

// SetUnitResolver enables the resident unit check on votes
func (h *EnqueteHandler) SetUnitResolver(resolver UnitBindingResolver) {
	h.units.resolver = resolver
}

// Create godoc
// @Summary      Create poll
// @Description  Create a resident poll with its options
// @Tags         communication
// @Accept       json
// @Produce      json
// @Param        request body communication.CreateEnqueteRequest true "Poll data"
// @Success      201 {object} dto.Response{data=communication.EnqueteResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /enquetes [post]
func (h *EnqueteHandler) Create(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req communication.CreateEnqueteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	enquete, err := h.service.Create(c.Request.Context(), condominiumID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, enquete)
}

// CastVote godoc
// @Summary      Cast vote
// @Description  Record one vote per unit on an open poll
// @Tags         communication
// @Accept       json
// @Produce      json
// @Param        id path string true "Enquete ID"
// @Param        request body communication.CastVoteRequest true "Vote"
// @Success      200 {object} dto.Response{data=communication.EnqueteResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /enquetes/{id}/votes [post]
func (h *EnqueteHandler) CastVote(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req communication.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.units.authorize(c, "voto", condominiumID, req.UnitID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	enquete, err := h.service.CastVote(c.Request.Context(), condominiumID, c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enquete)
}

// Close godoc
// @Summary      Close poll
// @Tags         communication
// @Produce      json
// @Param        id path string true "Enquete ID"
// @Success      200 {object} dto.Response{data=communication.EnqueteResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /enquetes/{id}/close [post]
func (h *EnqueteHandler) Close(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	enquete, err := h.service.Close(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enquete)
}

// Get godoc
// @Summary      Get poll
// @Tags         communication
// @Produce      json
// @Param        id path string true "Enquete ID"
// @Success      200 {object} dto.Response{data=communication.EnqueteResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /enquetes/{id} [get]
func (h *EnqueteHandler) Get(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	enquete, err := h.service.GetByID(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enquete)
}

// List godoc
// @Summary      List polls
// @Tags         communication
// @Produce      json
// @Param        status    query string false "Filter by status"
// @Param        page      query int    false "Page number"
// @Param        page_size query int    false "Page size"
// @Success      200 {object} dto.Response{data=[]communication.EnqueteResponse}
// @Security     BearerAuth
// @Router       /enquetes [get]
func (h *EnqueteHandler) List(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	enquetes, err := h.service.List(c.Request.Context(), condominiumID, communication.EnqueteListFilter{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enquetes)
}
