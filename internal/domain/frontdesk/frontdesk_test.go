package frontdesk

import (
	"testing"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestVisita_Lifecycle(t *testing.T) {
	condoID := uuid.New()
	unitID := uuid.New()
	resident := uuid.New()
	porteiro := uuid.New()
	now := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)

	t.Run("expected visit checks in and out", func(t *testing.T) {
		expected := now.Add(2 * time.Hour)
		visita, err := NewExpectedVisita(condoID, unitID, resident, "Carlos Pereira", "123.456.789-00", &expected)
		require.NoError(t, err)
		assert.Equal(t, VisitaStatusExpected, visita.Status)
		assert.Equal(t, resident, *visita.AuthorizedBy)

		require.NoError(t, visita.CheckIn(porteiro, now))
		assert.Equal(t, VisitaStatusCheckedIn, visita.Status)
		assert.Equal(t, porteiro, *visita.RegisteredBy)

		require.NoError(t, visita.CheckOut(now.Add(3*time.Hour)))
		assert.Equal(t, VisitaStatusCheckedOut, visita.Status)
	})

	t.Run("walk-in is checked in immediately", func(t *testing.T) {
		visita, err := NewWalkInVisita(condoID, unitID, porteiro, "Ana Costa", "", now)
		require.NoError(t, err)
		assert.Equal(t, VisitaStatusCheckedIn, visita.Status)
		assert.Nil(t, visita.AuthorizedBy)
	})

	t.Run("guards", func(t *testing.T) {
		visita, err := NewExpectedVisita(condoID, unitID, resident, "Carlos", "", nil)
		require.NoError(t, err)

		assertCode(t, visita.CheckOut(now), "INVALID_STATE")
		require.NoError(t, visita.Cancel())
		assertCode(t, visita.CheckIn(porteiro, now), "INVALID_STATE")
		assertCode(t, visita.Cancel(), "INVALID_STATE")
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewExpectedVisita(condoID, unitID, resident, "  ", "", nil)
		assertCode(t, err, "INVALID_VISITOR")

		_, err = NewExpectedVisita(condoID, uuid.Nil, resident, "Carlos", "", nil)
		assertCode(t, err, "INVALID_UNIT")
	})
}

func TestEncomenda_Lifecycle(t *testing.T) {
	condoID := uuid.New()
	unitID := uuid.New()
	porteiro := uuid.New()
	receivedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("receive and deliver", func(t *testing.T) {
		encomenda, err := NewEncomenda(condoID, unitID, porteiro, "Caixa media", "Correios", "BR123456789", receivedAt)
		require.NoError(t, err)
		assert.Equal(t, EncomendaStatusReceived, encomenda.Status)

		events := encomenda.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeEncomendaReceived, events[0].EventType())

		require.NoError(t, encomenda.Deliver("Maria Silva", receivedAt.Add(26*time.Hour)))
		assert.Equal(t, EncomendaStatusDelivered, encomenda.Status)
		assert.Equal(t, "Maria Silva", encomenda.DeliveredTo)
	})

	t.Run("deliver requires recipient name", func(t *testing.T) {
		encomenda, err := NewEncomenda(condoID, unitID, porteiro, "Envelope", "", "", receivedAt)
		require.NoError(t, err)
		assertCode(t, encomenda.Deliver("  ", receivedAt), "INVALID_RECIPIENT")
	})

	t.Run("return to sender", func(t *testing.T) {
		encomenda, err := NewEncomenda(condoID, unitID, porteiro, "Envelope", "", "", receivedAt)
		require.NoError(t, err)

		require.NoError(t, encomenda.Return(receivedAt.AddDate(0, 0, 30), "nunca retirada"))
		assert.Equal(t, EncomendaStatusReturned, encomenda.Status)
		assert.Equal(t, "nunca retirada", encomenda.Notes)

		assertCode(t, encomenda.Deliver("Maria", receivedAt), "INVALID_STATE")
	})

	t.Run("days held", func(t *testing.T) {
		encomenda, err := NewEncomenda(condoID, unitID, porteiro, "Caixa", "", "", receivedAt)
		require.NoError(t, err)

		assert.Equal(t, 0, encomenda.DaysHeld(receivedAt.Add(23*time.Hour)))
		assert.Equal(t, 3, encomenda.DaysHeld(receivedAt.AddDate(0, 0, 3)))

		require.NoError(t, encomenda.Deliver("Maria", receivedAt.Add(time.Hour)))
		assert.Equal(t, 0, encomenda.DaysHeld(receivedAt.AddDate(0, 0, 3)))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewEncomenda(condoID, uuid.Nil, porteiro, "Caixa", "", "", receivedAt)
		assertCode(t, err, "INVALID_UNIT")

		_, err = NewEncomenda(condoID, unitID, porteiro, " ", "", "", receivedAt)
		assertCode(t, err, "INVALID_DESCRIPTION")
	})
}
