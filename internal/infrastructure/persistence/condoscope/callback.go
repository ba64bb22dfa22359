package condoscope

import (
	"strings"

	"github.com/condo/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CondoCallback provides GORM callback hooks for automatic condominium filtering
type CondoCallback struct {
	condoColumn string
	required    bool
}

// NewCondoCallback creates a new condoscope callback handler
func NewCondoCallback(condoColumn string, required bool) *CondoCallback {
	if condoColumn == "" {
		condoColumn = "condominium_id"
	}
	return &CondoCallback{
		condoColumn: condoColumn,
		required:    required,
	}
}

// RegisterCallbacks registers condoscope callbacks with GORM
func (tc *CondoCallback) RegisterCallbacks(db *gorm.DB) {
	// Register query callback - add condominium filter
	_ = db.Callback().Query().Before("gorm:query").Register("condoscope:before_query", tc.beforeQuery)

	// Register update callback - ensure condominium filter
	_ = db.Callback().Update().Before("gorm:update").Register("condoscope:before_update", tc.beforeUpdate)

	// Register delete callback - ensure condominium filter
	_ = db.Callback().Delete().Before("gorm:delete").Register("condoscope:before_delete", tc.beforeDelete)

	// Register row query callback - add condominium filter
	_ = db.Callback().Row().Before("gorm:row").Register("condoscope:before_row", tc.beforeQuery)

	// Note: Create callback is not registered because condominium_id should be set
	// explicitly by the application when creating entities
}

// beforeQuery adds condominium filter to SELECT queries
func (tc *CondoCallback) beforeQuery(db *gorm.DB) {
	tc.addCondoFilter(db)
}

// beforeUpdate adds condominium filter to UPDATE queries
func (tc *CondoCallback) beforeUpdate(db *gorm.DB) {
	tc.addCondoFilter(db)
}

// beforeDelete adds condominium filter to DELETE queries
func (tc *CondoCallback) beforeDelete(db *gorm.DB) {
	tc.addCondoFilter(db)
}

// addCondoFilter adds condominium filtering to the query
func (tc *CondoCallback) addCondoFilter(db *gorm.DB) {
	if db.Statement.Context == nil {
		return
	}

	// Skip if unscoped
	if db.Statement.Unscoped {
		return
	}

	// Skip if already has condominium condition
	if tc.hasCondoCondition(db) {
		return
	}

	// Skip models without a condominium column (condominiums itself,
	// scheduler bookkeeping). Raw queries manage their own scoping.
	if db.Statement.Schema == nil || db.Statement.Schema.LookUpField(tc.condoColumn) == nil {
		return
	}

	// Get condominium ID from context
	condominiumID := logger.GetCondominiumID(db.Statement.Context)
	if condominiumID == "" {
		if tc.required {
			_ = db.AddError(ErrCondominiumIDRequired)
		}
		return
	}

	// Validate UUID format
	if _, err := uuid.Parse(condominiumID); err != nil {
		_ = db.AddError(ErrInvalidCondominiumID)
		return
	}

	// Add condominium filter using GORM's clause
	db.Statement.AddClause(clause.Where{
		Exprs: []clause.Expression{
			clause.Eq{
				Column: clause.Column{Table: clause.CurrentTable, Name: tc.condoColumn},
				Value:  condominiumID,
			},
		},
	})
}

// hasCondoCondition checks if condominium_id condition is already present
func (tc *CondoCallback) hasCondoCondition(db *gorm.DB) bool {
	// Check if there's a manual scope applied via Unscoped
	if db.Statement.Unscoped {
		return true
	}

	// Check existing where clauses for condominium_id
	if whereClause, ok := db.Statement.Clauses["WHERE"]; ok {
		if where, ok := whereClause.Expression.(clause.Where); ok {
			for _, expr := range where.Exprs {
				if tc.exprContainsCondo(expr) {
					return true
				}
			}
		}
	}

	// Also check the built SQL if available
	sql := db.Statement.SQL.String()
	if sql != "" && strings.Contains(sql, tc.condoColumn) {
		return true
	}

	return false
}

// exprContainsCondo checks if an expression contains condominium_id column
func (tc *CondoCallback) exprContainsCondo(expr clause.Expression) bool {
	switch e := expr.(type) {
	case clause.Eq:
		if col, ok := e.Column.(clause.Column); ok {
			return col.Name == tc.condoColumn
		}
	case clause.IN:
		if col, ok := e.Column.(clause.Column); ok {
			return col.Name == tc.condoColumn
		}
	case clause.AndConditions:
		for _, cond := range e.Exprs {
			if tc.exprContainsCondo(cond) {
				return true
			}
		}
	case clause.OrConditions:
		for _, cond := range e.Exprs {
			if tc.exprContainsCondo(cond) {
				return true
			}
		}
	}
	return false
}

// EnableAutoCondoFilter enables automatic condominium filtering on a GORM DB instance
// This registers callbacks that automatically add condominium_id filtering to all queries
func EnableAutoCondoFilter(db *gorm.DB, required bool) {
	tc := NewCondoCallback("condominium_id", required)
	tc.RegisterCallbacks(db)
}

// DisableAutoCondoFilter removes the condoscope callbacks (not recommended in production)
func DisableAutoCondoFilter(db *gorm.DB) {
	// Note: GORM doesn't provide a clean way to remove callbacks
	// This is mainly for testing purposes
	_ = db.Callback().Query().Remove("condoscope:before_query")
	_ = db.Callback().Update().Remove("condoscope:before_update")
	_ = db.Callback().Delete().Remove("condoscope:before_delete")
	_ = db.Callback().Row().Remove("condoscope:before_row")
}
