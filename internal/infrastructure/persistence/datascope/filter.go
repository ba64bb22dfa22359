// Package datascope provides role-based row filtering for GORM queries.
//
// Residents should only see their own unit's boletos, reservations and
// tickets, while managers and platform admins see everything inside the
// condominium. This package turns a user's roles into the WHERE clauses
// that enforce that at the repository layer.
//
// Usage:
//
//	filter := datascope.NewFilter(ctx, user.Roles, unitIDs)
//	scopedDB := filter.Apply(db, "boleto")
//	scopedDB.Find(&boletos) // WHERE unit_id IN (?) is auto-added for residents
package datascope

import (
	"context"
	"slices"

	"github.com/condo/backend/internal/domain/identity"
	"github.com/condo/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter applies role-based row filtering to GORM queries
type Filter struct {
	ctx     context.Context
	userID  uuid.UUID
	roles   []identity.Role
	unitIDs []uuid.UUID
}

// NewFilter creates a Filter for the given roles. unitIDs are the units
// the user owns or rents; they are only consulted for resident-scoped
// resources.
func NewFilter(ctx context.Context, roles []identity.Role, unitIDs []uuid.UUID) *Filter {
	userIDStr := logger.GetUserID(ctx)
	var userID uuid.UUID
	if userIDStr != "" {
		userID, _ = uuid.Parse(userIDStr)
	}

	return &Filter{
		ctx:     ctx,
		userID:  userID,
		roles:   roles,
		unitIDs: unitIDs,
	}
}

// Apply applies row filtering for a specific resource
func (f *Filter) Apply(db *gorm.DB, resource string) *gorm.DB {
	if f.CanAccessAll(resource) {
		return db
	}

	column, ok := unitScopedResources[resource]
	if ok {
		if len(f.unitIDs) == 0 {
			// Resident without a unit sees nothing
			return db.Where("1 = 0")
		}
		return db.Where(column+" IN ?", f.unitIDs)
	}

	// Resources without a unit column fall back to creator scoping
	if f.userID == uuid.Nil {
		return db.Where("1 = 0")
	}
	return db.Where("created_by = ?", f.userID)
}

// ApplyToQuery applies row filtering and returns a GORM scope function
func (f *Filter) ApplyToQuery(resource string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return f.Apply(db, resource)
	}
}

// CanAccessAll returns true if the user sees every row of the resource
// inside the condominium.
func (f *Filter) CanAccessAll(resource string) bool {
	if f.hasRole(identity.RoleAdmin) || f.hasRole(identity.RoleSindico) {
		return true
	}
	if f.hasRole(identity.RolePorteiro) && frontDeskResources[resource] {
		return true
	}
	return false
}

// GetUserID returns the current user ID
func (f *Filter) GetUserID() uuid.UUID {
	return f.userID
}

// GetUnitIDs returns the units the filter user is bound to
func (f *Filter) GetUnitIDs() []uuid.UUID {
	return f.unitIDs
}

// HasUnitAccess checks if the user can act on a specific unit.
// Managers and admins can act on any unit.
func (f *Filter) HasUnitAccess(unitID uuid.UUID) bool {
	if f.hasRole(identity.RoleAdmin) || f.hasRole(identity.RoleSindico) {
		return true
	}
	return slices.Contains(f.unitIDs, unitID)
}

// IsOwner checks if the current user is the creator of a record
func (f *Filter) IsOwner(createdBy *uuid.UUID) bool {
	if createdBy == nil || f.userID == uuid.Nil {
		return false
	}
	return *createdBy == f.userID
}

func (f *Filter) hasRole(role identity.Role) bool {
	return slices.Contains(f.roles, role)
}

// ScopeFunc is a GORM scope function type
type ScopeFunc func(*gorm.DB) *gorm.DB

// ResidentScope creates a GORM scope restricting a resource to the
// caller's own units (or own records when the resource has no unit).
func ResidentScope(ctx context.Context, resource string, roles []identity.Role, unitIDs []uuid.UUID) ScopeFunc {
	filter := NewFilter(ctx, roles, unitIDs)
	return filter.ApplyToQuery(resource)
}

// unitScopedResources maps resources that carry a unit column to the
// column name residents are filtered on. This is the single source of
// truth for resident scoping.
var unitScopedResources = map[string]string{
	"boleto":    "unit_id",
	"acordo":    "unit_id",
	"reserva":   "unit_id",
	"visita":    "unit_id",
	"encomenda": "unit_id",
	"voto":      "unit_id",
}

// frontDeskResources lists the resources a PORTEIRO works across every
// unit: the front desk log and package handling.
var frontDeskResources = map[string]bool{
	"visita":    true,
	"encomenda": true,
}

// IsResourceUnitScoped returns true if the resource carries a unit column
func IsResourceUnitScoped(resource string) bool {
	_, exists := unitScopedResources[resource]
	return exists
}
