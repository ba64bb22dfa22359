package billing

import (
	"github.com/condo/backend/internal/domain/shared"
)

// Boleto event types
const (
	EventTypeBoletoGenerated  = "billing.boleto.generated"
	EventTypeBoletoRegistered = "billing.boleto.registered"
	EventTypeBoletoSent       = "billing.boleto.sent"
	EventTypeBoletoOverdue    = "billing.boleto.overdue"
	EventTypeBoletoPaid       = "billing.boleto.paid"
	EventTypeBoletoCancelled  = "billing.boleto.cancelled"
)

const boletoAggregateType = "Boleto"

// BoletoEvent carries the boleto snapshot shared by all boleto events
type BoletoEvent struct {
	shared.BaseDomainEvent
	BoletoNumber string       `json:"boleto_number"`
	UnitID       string       `json:"unit_id"`
	Status       BoletoStatus `json:"status"`
	Amount       string       `json:"amount"`
}

func newBoletoEvent(eventType string, b *Boleto) *BoletoEvent {
	return &BoletoEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, boletoAggregateType, b.ID, b.CondominiumID),
		BoletoNumber:    b.BoletoNumber,
		UnitID:          b.UnitID.String(),
		Status:          b.Status,
		Amount:          b.Amount.String(),
	}
}

// NewBoletoGeneratedEvent creates the event emitted when a boleto is issued
func NewBoletoGeneratedEvent(b *Boleto) *BoletoEvent {
	return newBoletoEvent(EventTypeBoletoGenerated, b)
}

// NewBoletoRegisteredEvent creates the event emitted on bank registration
func NewBoletoRegisteredEvent(b *Boleto) *BoletoEvent {
	return newBoletoEvent(EventTypeBoletoRegistered, b)
}

// NewBoletoSentEvent creates the event emitted when the boleto is delivered
func NewBoletoSentEvent(b *Boleto) *BoletoEvent {
	return newBoletoEvent(EventTypeBoletoSent, b)
}

// NewBoletoOverdueEvent creates the event emitted when the boleto goes overdue
func NewBoletoOverdueEvent(b *Boleto) *BoletoEvent {
	return newBoletoEvent(EventTypeBoletoOverdue, b)
}

// NewBoletoPaidEvent creates the event emitted when a payment is recorded
func NewBoletoPaidEvent(b *Boleto) *BoletoEvent {
	return newBoletoEvent(EventTypeBoletoPaid, b)
}

// NewBoletoCancelledEvent creates the event emitted when the boleto is voided
func NewBoletoCancelledEvent(b *Boleto) *BoletoEvent {
	return newBoletoEvent(EventTypeBoletoCancelled, b)
}
