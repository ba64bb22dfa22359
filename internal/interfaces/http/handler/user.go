package handler

import (
	"strconv"

	"github.com/condo/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user administration HTTP requests
type UserHandler struct {
	BaseHandler
	service *identity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *identity.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RoleRequest names a fixed role to grant or revoke
type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// AssignUnitRequest links a user to their primary unit
type AssignUnitRequest struct {
	UnitID string `json:"unit_id" binding:"required,uuid"`
}

// ResetPasswordRequest carries the replacement password
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// Register godoc
// @Summary      Register user
// @Description  Create a resident or staff account in the current condominium
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        request body identity.RegisterUserRequest true "User data"
// @Success      201 {object} dto.Response{data=identity.UserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req identity.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), condominiumID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, user)
}

// Get godoc
// @Summary      Get user
// @Tags         identity
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response{data=identity.UserResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// List godoc
// @Summary      List users
// @Tags         identity
// @Produce      json
// @Param        role      query string false "Filter by role"
// @Param        status    query string false "Filter by status"
// @Param        search    query string false "Search email or display name"
// @Param        page      query int    false "Page number"
// @Param        page_size query int    false "Page size"
// @Success      200 {object} dto.Response{data=[]identity.UserResponse}
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	users, err := h.service.List(c.Request.Context(), condominiumID, identity.UserListFilter{
		Role:     c.Query("role"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, users)
}

// Activate godoc
// @Summary      Activate user
// @Tags         identity
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response{data=identity.UserResponse}
// @Security     BearerAuth
// @Router       /users/{id}/activate [post]
func (h *UserHandler) Activate(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	user, err := h.service.Activate(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// Deactivate godoc
// @Summary      Deactivate user
// @Tags         identity
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response{data=identity.UserResponse}
// @Security     BearerAuth
// @Router       /users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	user, err := h.service.Deactivate(c.Request.Context(), condominiumID, c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// AssignRole godoc
// @Summary      Grant role
// @Description  Grant one of the fixed roles to a user
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body RoleRequest true "Role name"
// @Success      200 {object} dto.Response{data=identity.UserResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id}/roles [post]
func (h *UserHandler) AssignRole(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.service.AssignRole(c.Request.Context(), condominiumID, c.Param("id"), req.Role)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// RemoveRole godoc
// @Summary      Revoke role
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body RoleRequest true "Role name"
// @Success      200 {object} dto.Response{data=identity.UserResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id}/roles [delete]
func (h *UserHandler) RemoveRole(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.service.RemoveRole(c.Request.Context(), condominiumID, c.Param("id"), req.Role)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// AssignUnit godoc
// @Summary      Assign unit
// @Description  Set the primary unit of a resident
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body AssignUnitRequest true "Unit"
// @Success      200 {object} dto.Response{data=identity.UserResponse}
// @Security     BearerAuth
// @Router       /users/{id}/unit [put]
func (h *UserHandler) AssignUnit(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req AssignUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.service.AssignUnit(c.Request.Context(), condominiumID, c.Param("id"), req.UnitID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// ResetPassword godoc
// @Summary      Reset password
// @Description  Replace a user's password without knowing the old one
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body ResetPasswordRequest true "New password"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /users/{id}/password [put]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), condominiumID, c.Param("id"), req.NewPassword); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password reset successfully"})
}
