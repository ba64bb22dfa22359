package frontdesk

import "github.com/condo/backend/internal/domain/shared"

// Front desk domain event types
const (
	EventTypeEncomendaReceived = "frontdesk.encomenda.received"
)

// EncomendaEvent notifies residents that a package arrived for their unit
type EncomendaEvent struct {
	shared.BaseDomainEvent
	UnitID      string `json:"unit_id"`
	Description string `json:"description"`
	Carrier     string `json:"carrier"`
}

// NewEncomendaReceivedEvent fires when a package is logged at the front desk
func NewEncomendaReceivedEvent(e *Encomenda) *EncomendaEvent {
	return &EncomendaEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEncomendaReceived, "Encomenda", e.ID, e.CondominiumID),
		UnitID:          e.UnitID.String(),
		Description:     e.Description,
		Carrier:         e.Carrier,
	}
}
