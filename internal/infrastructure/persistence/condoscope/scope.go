// Package condoscope provides per-condominium database scoping for GORM.
//
// This package implements automatic condominium_id filtering to prevent cross-condominium
// data access at the repository layer. It extracts the condominium ID from the request
// context and automatically applies WHERE condominium_id = ? conditions to all queries.
//
// Usage:
//
//	db := condoscope.NewCondoDB(gormDB)
//	scopedDB := db.WithContext(ctx) // automatically applies condominium filtering
//	scopedDB.Find(&reservas) // WHERE condominium_id = 'xxx' is auto-added
package condoscope

import (
	"context"
	"errors"

	"github.com/condo/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrCondominiumIDRequired is returned when condominium_id is required but not found
var ErrCondominiumIDRequired = errors.New("condominium_id is required but not found in context")

// ErrInvalidCondominiumID is returned when condominium_id format is invalid
var ErrInvalidCondominiumID = errors.New("invalid condominium_id format")

// CondoScope applies condominium filtering to GORM queries
func CondoScope(condominiumID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("condominium_id = ?", condominiumID)
	}
}

// CondoScopeString applies condominium filtering using string condominium ID
func CondoScopeString(condominiumID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("condominium_id = ?", condominiumID)
	}
}

// CondoCreateScope sets condominium_id on create operations
func CondoCreateScope(condominiumID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Set("condominium_id", condominiumID)
	}
}

// CondoDB wraps GORM DB with automatic condominium scoping
type CondoDB struct {
	db          *gorm.DB
	condoColumn string
	required    bool
}

// Config holds configuration for CondoDB
type Config struct {
	// CondoColumn is the name of the condominium ID column (default: "condominium_id")
	CondoColumn string
	// Required determines if condominium_id is mandatory (default: true)
	Required bool
}

// DefaultConfig returns default CondoDB configuration
func DefaultConfig() Config {
	return Config{
		CondoColumn: "condominium_id",
		Required:     true,
	}
}

// NewCondoDB creates a new CondoDB with default configuration
func NewCondoDB(db *gorm.DB) *CondoDB {
	return NewCondoDBWithConfig(db, DefaultConfig())
}

// NewCondoDBWithConfig creates a new CondoDB with custom configuration
func NewCondoDBWithConfig(db *gorm.DB, cfg Config) *CondoDB {
	if cfg.CondoColumn == "" {
		cfg.CondoColumn = "condominium_id"
	}
	return &CondoDB{
		db:          db,
		condoColumn: cfg.CondoColumn,
		required:    cfg.Required,
	}
}

// DB returns the underlying GORM DB without condominium scoping
// Use with caution - this bypasses condominium isolation
func (t *CondoDB) DB() *gorm.DB {
	return t.db
}

// WithContext returns a GORM DB scoped to the condominium from context.
// It extracts condominium_id from the context (set by condominium middleware)
// and automatically applies the condominium filter to all queries.
//
// If condominium_id is not found in context and Required is true, it returns
// a DB that will error on any operation.
func (t *CondoDB) WithContext(ctx context.Context) *gorm.DB {
	condominiumID := logger.GetCondominiumID(ctx)

	if condominiumID == "" {
		if t.required {
			// Return a DB that will error on execution
			db := t.db.WithContext(ctx)
			_ = db.AddError(ErrCondominiumIDRequired)
			return db
		}
		// If not required, return DB without condominium scope
		return t.db.WithContext(ctx)
	}

	// Validate UUID format
	if _, err := uuid.Parse(condominiumID); err != nil {
		db := t.db.WithContext(ctx)
		_ = db.AddError(ErrInvalidCondominiumID)
		return db
	}

	// Apply condominium scope
	return t.db.WithContext(ctx).Scopes(CondoScopeString(condominiumID))
}

// WithCondominium returns a GORM DB scoped to a specific condominium ID.
// Use this when you have the condominium ID directly rather than from context.
func (t *CondoDB) WithCondominium(condominiumID uuid.UUID) *gorm.DB {
	if condominiumID == uuid.Nil {
		if t.required {
			db := t.db
			_ = db.AddError(ErrCondominiumIDRequired)
			return db
		}
		return t.db
	}
	return t.db.Scopes(CondoScope(condominiumID))
}

// WithCondominiumString returns a GORM DB scoped to a specific condominium ID string.
func (t *CondoDB) WithCondominiumString(condominiumID string) *gorm.DB {
	if condominiumID == "" {
		if t.required {
			db := t.db
			_ = db.AddError(ErrCondominiumIDRequired)
			return db
		}
		return t.db
	}

	// Validate UUID format
	if _, err := uuid.Parse(condominiumID); err != nil {
		db := t.db
		_ = db.AddError(ErrInvalidCondominiumID)
		return db
	}

	return t.db.Scopes(CondoScopeString(condominiumID))
}

// ForCondominium creates a new CondoDB instance scoped to a specific context.
// This is useful for creating a scoped DB that can be passed around.
func (t *CondoDB) ForCondominium(ctx context.Context, condominiumID uuid.UUID) *gorm.DB {
	return t.db.WithContext(ctx).Scopes(CondoScope(condominiumID))
}

// Transaction executes a function within a database transaction with condominium scope
func (t *CondoDB) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	condominiumID := logger.GetCondominiumID(ctx)

	if condominiumID == "" && t.required {
		return ErrCondominiumIDRequired
	}

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if condominiumID != "" {
			tx = tx.Scopes(CondoScopeString(condominiumID))
		}
		return fn(tx)
	})
}

// Unscoped returns the underlying DB without any condominium scoping.
// WARNING: Use this with extreme caution as it bypasses condominium isolation.
// This should only be used for system-level operations or migrations.
func (t *CondoDB) Unscoped() *gorm.DB {
	return t.db
}

// SetRequired changes whether condominium_id is required
func (t *CondoDB) SetRequired(required bool) *CondoDB {
	return &CondoDB{
		db:          t.db,
		condoColumn: t.condoColumn,
		required:    required,
	}
}
