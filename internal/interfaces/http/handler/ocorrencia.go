package handler

import (
	"strconv"

	"github.com/condo/backend/internal/application/ticket"
	"github.com/condo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// OcorrenciaHandler handles occurrence ticket HTTP requests
type OcorrenciaHandler struct {
	BaseHandler
	service *ticket.OcorrenciaService
}

// NewOcorrenciaHandler creates a new ocorrencia handler
func NewOcorrenciaHandler(service *ticket.OcorrenciaService) *OcorrenciaHandler {
	return &OcorrenciaHandler{service: service}
}

// AssignOcorrenciaRequest names the staff member taking the ticket
type AssignOcorrenciaRequest struct {
	AssigneeID string `json:"assignee_id" binding:"required,uuid"`
}

// staffView reports whether the caller may see internal comments
func staffView(c *gin.Context) bool {
	for _, role := range middleware.GetJWTRoles(c) {
		if role == "ADMIN" || role == "SINDICO" || role == "PORTEIRO" {
			return true
		}
	}
	return false
}

// Open godoc
// @Summary      Open ticket
// @Description  Open a new occurrence ticket
// @Tags         ticket
// @Accept       json
// @Produce      json
// @Param        request body ticket.OpenOcorrenciaRequest true "Ticket data"
// @Success      201 {object} dto.Response{data=ticket.OcorrenciaResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ocorrencias [post]
func (h *OcorrenciaHandler) Open(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req ticket.OpenOcorrenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ocorrencia, err := h.service.Open(c.Request.Context(), condominiumID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, ocorrencia)
}

// Assign godoc
// @Summary      Assign ticket
// @Tags         ticket
// @Accept       json
// @Produce      json
// @Param        id path string true "Ocorrencia ID"
// @Param        request body AssignOcorrenciaRequest true "Assignee"
// @Success      200 {object} dto.Response{data=ticket.OcorrenciaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ocorrencias/{id}/assign [post]
func (h *OcorrenciaHandler) Assign(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req AssignOcorrenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ocorrencia, err := h.service.Assign(c.Request.Context(), condominiumID, c.Param("id"), req.AssigneeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ocorrencia)
}

// Resolve godoc
// @Summary      Resolve ticket
// @Tags         ticket
// @Accept       json
// @Produce      json
// @Param        id path string true "Ocorrencia ID"
// @Param        request body ticket.ResolveOcorrenciaRequest true "Resolution"
// @Success      200 {object} dto.Response{data=ticket.OcorrenciaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ocorrencias/{id}/resolve [post]
func (h *OcorrenciaHandler) Resolve(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req ticket.ResolveOcorrenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ocorrencia, err := h.service.Resolve(c.Request.Context(), condominiumID, c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ocorrencia)
}

// Close godoc
// @Summary      Close ticket
// @Tags         ticket
// @Produce      json
// @Param        id path string true "Ocorrencia ID"
// @Success      200 {object} dto.Response{data=ticket.OcorrenciaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ocorrencias/{id}/close [post]
func (h *OcorrenciaHandler) Close(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	ocorrencia, err := h.service.Close(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ocorrencia)
}

// Reopen godoc
// @Summary      Reopen ticket
// @Tags         ticket
// @Produce      json
// @Param        id path string true "Ocorrencia ID"
// @Success      200 {object} dto.Response{data=ticket.OcorrenciaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ocorrencias/{id}/reopen [post]
func (h *OcorrenciaHandler) Reopen(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	ocorrencia, err := h.service.Reopen(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ocorrencia)
}

// AddComment godoc
// @Summary      Comment on ticket
// @Tags         ticket
// @Accept       json
// @Produce      json
// @Param        id path string true "Ocorrencia ID"
// @Param        request body ticket.AddCommentRequest true "Comment"
// @Success      200 {object} dto.Response{data=ticket.OcorrenciaResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ocorrencias/{id}/comments [post]
func (h *OcorrenciaHandler) AddComment(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req ticket.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ocorrencia, err := h.service.AddComment(c.Request.Context(), condominiumID, c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ocorrencia)
}

// Get godoc
// @Summary      Get ticket
// @Description  Get a ticket; internal comments are hidden from residents
// @Tags         ticket
// @Produce      json
// @Param        id path string true "Ocorrencia ID"
// @Success      200 {object} dto.Response{data=ticket.OcorrenciaResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /ocorrencias/{id} [get]
func (h *OcorrenciaHandler) Get(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	ocorrencia, err := h.service.GetByID(c.Request.Context(), condominiumID, c.Param("id"), staffView(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ocorrencia)
}

// List godoc
// @Summary      List tickets
// @Tags         ticket
// @Produce      json
// @Param        unit_id     query string false "Filter by unit"
// @Param        status      query string false "Filter by status"
// @Param        category    query string false "Filter by category"
// @Param        assigned_to query string false "Filter by assignee"
// @Param        page        query int    false "Page number"
// @Param        page_size   query int    false "Page size"
// @Success      200 {object} dto.Response{data=[]ticket.OcorrenciaResponse}
// @Security     BearerAuth
// @Router       /ocorrencias [get]
func (h *OcorrenciaHandler) List(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	ocorrencias, err := h.service.List(c.Request.Context(), condominiumID, ticket.OcorrenciaListFilter{
		UnitID:     c.Query("unit_id"),
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		AssignedTo: c.Query("assigned_to"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ocorrencias)
}

// StatusSummary godoc
// @Summary      Ticket status summary
// @Description  Count open tickets per status
// @Tags         ticket
// @Produce      json
// @Success      200 {object} dto.Response{data=map[string]int64}
// @Security     BearerAuth
// @Router       /ocorrencias/summary [get]
func (h *OcorrenciaHandler) StatusSummary(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	summary, err := h.service.StatusSummary(c.Request.Context(), condominiumID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}
