package communication

import "github.com/condo/backend/internal/domain/shared"

// Communication domain event types
const (
	EventTypeAvisoPublished = "communication.aviso.published"
)

// AvisoEvent notifies residents that a notice went up on the board
type AvisoEvent struct {
	shared.BaseDomainEvent
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

// NewAvisoPublishedEvent fires when a notice is published
func NewAvisoPublishedEvent(a *Aviso) *AvisoEvent {
	return &AvisoEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAvisoPublished, "Aviso", a.ID, a.CondominiumID),
		Title:           a.Title,
		Priority:        string(a.Priority),
	}
}
