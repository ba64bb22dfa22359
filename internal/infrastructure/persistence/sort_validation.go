package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// Common allowed sort fields for entities with base fields

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// BoletoSortFields contains allowed sort fields for boletos
var BoletoSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"boleto_number": true,
	"unit_id":       true,
	"amount":        true,
	"due_date":      true,
	"status":        true,
	"paid_at":       true,
}

// AcordoSortFields contains allowed sort fields for installment agreements
var AcordoSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"acordo_number": true,
	"unit_id":       true,
	"total_amount":  true,
	"down_payment":  true,
	"installments":  true,
	"status":        true,
}

// ReservaSortFields contains allowed sort fields for reservations
var ReservaSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"espaco_id":  true,
	"unit_id":    true,
	"starts_at":  true,
	"ends_at":    true,
	"status":     true,
	"fee":        true,
}

// UnidadeSortFields contains allowed sort fields for units
var UnidadeSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"bloco":        true,
	"numero":       true,
	"fracao_ideal": true,
	"area_m2":      true,
	"occupancy":    true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"email":         true,
	"display_name":  true,
	"status":        true,
	"last_login_at": true,
}

// OcorrenciaSortFields contains allowed sort fields for occurrence tickets
var OcorrenciaSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"category":    true,
	"status":      true,
	"resolved_at": true,
	"closed_at":   true,
}
