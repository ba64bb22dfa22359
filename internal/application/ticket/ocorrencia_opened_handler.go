package ticket

import (
	"context"
	"fmt"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/ticket"
	"go.uber.org/zap"
)

// StaffNotifier is the interface for alerting building staff about new occurrences
type StaffNotifier interface {
	NotifyOcorrenciaOpened(ctx context.Context, notification OcorrenciaOpenedNotification) error
}

// OcorrenciaOpenedNotification summarizes a freshly opened occurrence for the staff
type OcorrenciaOpenedNotification struct {
	CondominiumID string `json:"condominium_id"`
	OcorrenciaID  string `json:"ocorrencia_id"`
	Category      string `json:"category"`
	Title         string `json:"title"`
}

// OcorrenciaOpenedHandler reacts to newly opened occurrences and alerts the
// sindico so triage does not depend on someone polling the list
type OcorrenciaOpenedHandler struct {
	logger   *zap.Logger
	notifier StaffNotifier
}

// NewOcorrenciaOpenedHandler creates a new handler for opened-occurrence events
func NewOcorrenciaOpenedHandler(logger *zap.Logger) *OcorrenciaOpenedHandler {
	return &OcorrenciaOpenedHandler{
		logger: logger,
	}
}

// WithNotifier sets the notifier for staff alerts
func (h *OcorrenciaOpenedHandler) WithNotifier(notifier StaffNotifier) *OcorrenciaOpenedHandler {
	h.notifier = notifier
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *OcorrenciaOpenedHandler) EventTypes() []string {
	return []string{ticket.EventTypeOcorrenciaOpened}
}

// Handle processes an OcorrenciaEvent
func (h *OcorrenciaOpenedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	openedEvent, ok := event.(*ticket.OcorrenciaEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", ticket.EventTypeOcorrenciaOpened),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			ticket.EventTypeOcorrenciaOpened, event.EventType())
	}

	h.logger.Info("occurrence opened",
		zap.String("condominium_id", event.CondominiumID().String()),
		zap.String("ocorrencia_id", event.AggregateID().String()),
		zap.String("category", openedEvent.Category),
		zap.String("title", openedEvent.Title),
	)

	if h.notifier == nil {
		return nil
	}

	notification := OcorrenciaOpenedNotification{
		CondominiumID: event.CondominiumID().String(),
		OcorrenciaID:  event.AggregateID().String(),
		Category:      openedEvent.Category,
		Title:         openedEvent.Title,
	}
	if err := h.notifier.NotifyOcorrenciaOpened(ctx, notification); err != nil {
		h.logger.Warn("failed to notify staff about new occurrence",
			zap.String("ocorrencia_id", notification.OcorrenciaID),
			zap.Error(err),
		)
	}
	return nil
}
