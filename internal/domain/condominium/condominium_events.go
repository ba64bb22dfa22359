package condominium

import "github.com/condo/backend/internal/domain/shared"

// Condominium domain event types
const (
	EventTypeCondominiumCreated     = "condominium.created"
	EventTypeCondominiumDeactivated = "condominium.deactivated"
)

// CondominiumEvent carries condominium lifecycle changes
type CondominiumEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewCondominiumCreatedEvent fires when a condominium is registered
func NewCondominiumCreatedEvent(c *Condominium) *CondominiumEvent {
	return &CondominiumEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCondominiumCreated, "Condominium", c.ID, c.ID),
		Code:            c.Code,
		Name:            c.Name,
	}
}

// NewCondominiumDeactivatedEvent fires when a condominium is deactivated
func NewCondominiumDeactivatedEvent(c *Condominium) *CondominiumEvent {
	return &CondominiumEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCondominiumDeactivated, "Condominium", c.ID, c.ID),
		Code:            c.Code,
		Name:            c.Name,
	}
}
