package frontdesk

import (
	"context"
	"fmt"

	"github.com/condo/backend/internal/domain/frontdesk"
	"github.com/condo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PackageArrivalNotifier is the interface for notifying residents about
// packages logged at the front desk. Implementations can support different
// channels (push, e-mail, portaria display).
type PackageArrivalNotifier interface {
	NotifyPackageArrival(ctx context.Context, notification PackageArrivalNotification) error
}

// PackageArrivalNotification carries the data a resident needs to pick up a package
type PackageArrivalNotification struct {
	CondominiumID string `json:"condominium_id"`
	EncomendaID   string `json:"encomenda_id"`
	UnitID        string `json:"unit_id"`
	Description   string `json:"description"`
	Carrier       string `json:"carrier,omitempty"`
}

// EncomendaReceivedHandler reacts to packages registered at the front desk
// and notifies the residents of the destination unit
type EncomendaReceivedHandler struct {
	logger   *zap.Logger
	notifier PackageArrivalNotifier
}

// NewEncomendaReceivedHandler creates a new handler for received-package events
func NewEncomendaReceivedHandler(logger *zap.Logger) *EncomendaReceivedHandler {
	return &EncomendaReceivedHandler{
		logger: logger,
	}
}

// WithNotifier sets the notifier for sending arrival notifications
func (h *EncomendaReceivedHandler) WithNotifier(notifier PackageArrivalNotifier) *EncomendaReceivedHandler {
	h.notifier = notifier
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *EncomendaReceivedHandler) EventTypes() []string {
	return []string{frontdesk.EventTypeEncomendaReceived}
}

// Handle processes an EncomendaEvent
func (h *EncomendaReceivedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	receivedEvent, ok := event.(*frontdesk.EncomendaEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", frontdesk.EventTypeEncomendaReceived),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			frontdesk.EventTypeEncomendaReceived, event.EventType())
	}

	h.logger.Info("package received at front desk",
		zap.String("condominium_id", event.CondominiumID().String()),
		zap.String("encomenda_id", event.AggregateID().String()),
		zap.String("unit_id", receivedEvent.UnitID),
		zap.String("carrier", receivedEvent.Carrier),
	)

	if h.notifier == nil {
		return nil
	}

	notification := PackageArrivalNotification{
		CondominiumID: event.CondominiumID().String(),
		EncomendaID:   event.AggregateID().String(),
		UnitID:        receivedEvent.UnitID,
		Description:   receivedEvent.Description,
		Carrier:       receivedEvent.Carrier,
	}
	if err := h.notifier.NotifyPackageArrival(ctx, notification); err != nil {
		// Notification failures must not fail event processing; the package
		// is already registered and visible at the front desk.
		h.logger.Warn("failed to send package arrival notification",
			zap.String("encomenda_id", notification.EncomendaID),
			zap.Error(err),
		)
	}
	return nil
}
