package event

import (
	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/communication"
	"github.com/condo/backend/internal/domain/condominium"
	"github.com/condo/backend/internal/domain/frontdesk"
	"github.com/condo/backend/internal/domain/identity"
	"github.com/condo/backend/internal/domain/reservation"
	"github.com/condo/backend/internal/domain/ticket"
)

// RegisterAllEvents registers all domain event types with the serializer
// This is required for the OutboxProcessor to deserialize events from the outbox table
func RegisterAllEvents(serializer *EventSerializer) {
	// Billing domain - Boleto events
	serializer.Register(billing.EventTypeBoletoGenerated, &billing.BoletoEvent{})
	serializer.Register(billing.EventTypeBoletoRegistered, &billing.BoletoEvent{})
	serializer.Register(billing.EventTypeBoletoSent, &billing.BoletoEvent{})
	serializer.Register(billing.EventTypeBoletoOverdue, &billing.BoletoEvent{})
	serializer.Register(billing.EventTypeBoletoPaid, &billing.BoletoEvent{})
	serializer.Register(billing.EventTypeBoletoCancelled, &billing.BoletoEvent{})

	// Billing domain - Acordo events
	serializer.Register(billing.EventTypeAcordoCreated, &billing.AcordoEvent{})
	serializer.Register(billing.EventTypeAcordoCompleted, &billing.AcordoEvent{})

	// Reservation domain events
	serializer.Register(reservation.EventTypeReservaRequested, &reservation.ReservaEvent{})
	serializer.Register(reservation.EventTypeReservaConfirmed, &reservation.ReservaEvent{})
	serializer.Register(reservation.EventTypeReservaRejected, &reservation.ReservaEvent{})
	serializer.Register(reservation.EventTypeReservaCancelled, &reservation.ReservaEvent{})

	// Condominium domain events
	serializer.Register(condominium.EventTypeCondominiumCreated, &condominium.CondominiumEvent{})
	serializer.Register(condominium.EventTypeCondominiumDeactivated, &condominium.CondominiumEvent{})

	// Identity domain events
	serializer.Register(identity.EventTypeUserCreated, &identity.UserEvent{})
	serializer.Register(identity.EventTypeUserPasswordChanged, &identity.UserEvent{})
	serializer.Register(identity.EventTypeUserLocked, &identity.UserEvent{})
	serializer.Register(identity.EventTypeUserDeactivated, &identity.UserEvent{})

	// Front desk domain events
	serializer.Register(frontdesk.EventTypeEncomendaReceived, &frontdesk.EncomendaEvent{})

	// Ticket domain events
	serializer.Register(ticket.EventTypeOcorrenciaOpened, &ticket.OcorrenciaEvent{})
	serializer.Register(ticket.EventTypeOcorrenciaResolved, &ticket.OcorrenciaEvent{})

	// Communication domain events
	serializer.Register(communication.EventTypeAvisoPublished, &communication.AvisoEvent{})
}
