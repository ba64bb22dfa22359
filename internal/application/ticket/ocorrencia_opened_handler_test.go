package ticket

import (
	"context"
	"errors"
	"testing"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/ticket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockStaffNotifier is a mock implementation of StaffNotifier
type mockStaffNotifier struct {
	notifications []OcorrenciaOpenedNotification
	returnError   error
}

func (m *mockStaffNotifier) NotifyOcorrenciaOpened(ctx context.Context, notification OcorrenciaOpenedNotification) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.notifications = append(m.notifications, notification)
	return nil
}

func openedEvent(condominiumID, ocorrenciaID uuid.UUID) *ticket.OcorrenciaEvent {
	return &ticket.OcorrenciaEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			ticket.EventTypeOcorrenciaOpened,
			"Ocorrencia",
			ocorrenciaID,
			condominiumID,
		),
		Category: string(ticket.CategoryMaintenance),
		Title:    "Vazamento na garagem",
		Status:   string(ticket.OcorrenciaStatusOpen),
	}
}

func TestOcorrenciaOpenedHandler_EventTypes(t *testing.T) {
	handler := NewOcorrenciaOpenedHandler(zap.NewNop())

	eventTypes := handler.EventTypes()
	require.Len(t, eventTypes, 1)
	assert.Equal(t, ticket.EventTypeOcorrenciaOpened, eventTypes[0])
}

func TestOcorrenciaOpenedHandler_Handle(t *testing.T) {
	logger := zap.NewNop()

	t.Run("notifies the staff", func(t *testing.T) {
		notifier := &mockStaffNotifier{}
		handler := NewOcorrenciaOpenedHandler(logger).WithNotifier(notifier)

		condominiumID := uuid.New()
		ocorrenciaID := uuid.New()

		err := handler.Handle(context.Background(), openedEvent(condominiumID, ocorrenciaID))
		require.NoError(t, err)

		require.Len(t, notifier.notifications, 1)
		notification := notifier.notifications[0]
		assert.Equal(t, condominiumID.String(), notification.CondominiumID)
		assert.Equal(t, ocorrenciaID.String(), notification.OcorrenciaID)
		assert.Equal(t, string(ticket.CategoryMaintenance), notification.Category)
		assert.Equal(t, "Vazamento na garagem", notification.Title)
	})

	t.Run("works without a notifier", func(t *testing.T) {
		handler := NewOcorrenciaOpenedHandler(logger)

		err := handler.Handle(context.Background(), openedEvent(uuid.New(), uuid.New()))
		assert.NoError(t, err)
	})

	t.Run("notifier failure does not fail event processing", func(t *testing.T) {
		notifier := &mockStaffNotifier{returnError: errors.New("mailer down")}
		handler := NewOcorrenciaOpenedHandler(logger).WithNotifier(notifier)

		err := handler.Handle(context.Background(), openedEvent(uuid.New(), uuid.New()))
		assert.NoError(t, err)
	})

	t.Run("rejects unexpected event types", func(t *testing.T) {
		handler := NewOcorrenciaOpenedHandler(logger)

		err := handler.Handle(context.Background(), &shared.BaseDomainEvent{})
		assert.Error(t, err)
	})
}
