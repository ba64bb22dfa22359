package handler

import (
	"context"

	"github.com/condo/backend/internal/domain/identity"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/infrastructure/persistence/datascope"
	"github.com/condo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UnitBindingResolver resolves the units a user owns or rents inside a
// condominium.
type UnitBindingResolver interface {
	ListResidentUnitIDs(ctx context.Context, condominiumID, userID uuid.UUID) ([]uuid.UUID, error)
}

// unitGuard rejects residents acting on behalf of units they are not
// bound to. Staff access follows the datascope rules, so a sindico can
// act on any unit and a porteiro on front desk resources. The guard is
// inactive until a resolver is set, which keeps handler construction
// independent of the condominium context.
type unitGuard struct {
	resolver UnitBindingResolver
}

// authorize parses the unit ID from the request body and checks the
// caller's binding to it. A guard without a resolver allows everything.
func (g *unitGuard) authorize(c *gin.Context, resource string, condominiumID uuid.UUID, unitIDStr string) error {
	if g.resolver == nil {
		return nil
	}
	unitID, err := uuid.Parse(unitIDStr)
	if err != nil {
		return shared.NewDomainError("INVALID_UNIT", "Unit ID is not a valid UUID")
	}
	userID, err := getUserID(c)
	if err != nil {
		return shared.NewDomainError("UNAUTHORIZED", "User context required")
	}
	return g.authorizeUnit(c, resource, condominiumID, userID, unitID)
}

func (g *unitGuard) authorizeUnit(c *gin.Context, resource string, condominiumID, userID, unitID uuid.UUID) error {
	if g.resolver == nil {
		return nil
	}

	jwtRoles := middleware.GetJWTRoles(c)
	roles := make([]identity.Role, 0, len(jwtRoles))
	for _, r := range jwtRoles {
		roles = append(roles, identity.Role(r))
	}

	ctx := c.Request.Context()
	if datascope.NewFilter(ctx, roles, nil).CanAccessAll(resource) {
		return nil
	}

	unitIDs, err := g.resolver.ListResidentUnitIDs(ctx, condominiumID, userID)
	if err != nil {
		return err
	}
	if !datascope.NewFilter(ctx, roles, unitIDs).HasUnitAccess(unitID) {
		return shared.NewDomainError("FORBIDDEN", "User is not a resident of the unit")
	}
	return nil
}
