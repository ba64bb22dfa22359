// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities should be free of GORM tags and infrastructure concerns
// 2. Persistence models contain all GORM annotations and table mappings
// 3. Mappers convert between domain entities and persistence models
// 4. Repositories use persistence models for database operations
//
// Structure:
// - base.go: Base persistence models (BaseModel, CondoAggregateModel, etc.)
// - condominium.go: Condominium and unit models
// - identity.go: User model
// - billing.go: Boleto and installment agreement models
// - reservation.go: Common area and reservation models
// - frontdesk.go: Visit and package models
// - ticket.go: Occurrence ticket models
// - communication.go: Notice and poll models
// - outbox.go: Outbox pattern model for event delivery
package models
