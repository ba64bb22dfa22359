package ticket

import "github.com/condo/backend/internal/domain/shared"

// Ticket domain event types
const (
	EventTypeOcorrenciaOpened   = "ticket.ocorrencia.opened"
	EventTypeOcorrenciaResolved = "ticket.ocorrencia.resolved"
)

// OcorrenciaEvent carries occurrence lifecycle changes
type OcorrenciaEvent struct {
	shared.BaseDomainEvent
	Category string `json:"category"`
	Title    string `json:"title"`
	Status   string `json:"status"`
}

func newOcorrenciaEvent(eventType string, o *Ocorrencia) *OcorrenciaEvent {
	return &OcorrenciaEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Ocorrencia", o.ID, o.CondominiumID),
		Category:        string(o.Category),
		Title:           o.Title,
		Status:          string(o.Status),
	}
}

// NewOcorrenciaOpenedEvent fires when a ticket is opened
func NewOcorrenciaOpenedEvent(o *Ocorrencia) *OcorrenciaEvent {
	return newOcorrenciaEvent(EventTypeOcorrenciaOpened, o)
}

// NewOcorrenciaResolvedEvent fires when a ticket is resolved
func NewOcorrenciaResolvedEvent(o *Ocorrencia) *OcorrenciaEvent {
	return newOcorrenciaEvent(EventTypeOcorrenciaResolved, o)
}
