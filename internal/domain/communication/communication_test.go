package communication

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

func TestAviso_Lifecycle(t *testing.T) {
	condoID := uuid.New()
	sindico := uuid.New()
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("publish and archive", func(t *testing.T) {
		aviso, err := NewAviso(condoID, sindico, "Manutencao do elevador", "Elevador social parado dia 5", PriorityUrgent)
		require.NoError(t, err)
		assert.Equal(t, AvisoStatusDraft, aviso.Status)
		assert.False(t, aviso.IsVisible(now))

		require.NoError(t, aviso.Publish(now, nil))
		assert.True(t, aviso.IsVisible(now))

		events := aviso.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeAvisoPublished, events[0].EventType())

		require.NoError(t, aviso.Archive(now.AddDate(0, 0, 7)))
		assert.False(t, aviso.IsVisible(now.AddDate(0, 0, 7)))
		assertCode(t, aviso.Publish(now, nil), "INVALID_STATE")
	})

	t.Run("expiry hides the notice", func(t *testing.T) {
		aviso, err := NewAviso(condoID, sindico, "Dedetizacao", "Sexta-feira", PriorityNormal)
		require.NoError(t, err)

		expires := now.AddDate(0, 0, 3)
		require.NoError(t, aviso.Publish(now, &expires))
		assert.True(t, aviso.IsVisible(now.AddDate(0, 0, 2)))
		assert.False(t, aviso.IsVisible(now.AddDate(0, 0, 4)))
	})

	t.Run("expiry must be in the future", func(t *testing.T) {
		aviso, err := NewAviso(condoID, sindico, "Titulo", "Corpo", "")
		require.NoError(t, err)
		past := now.AddDate(0, 0, -1)
		assertCode(t, aviso.Publish(now, &past), "INVALID_EXPIRY")
	})

	t.Run("defaults to normal priority", func(t *testing.T) {
		aviso, err := NewAviso(condoID, sindico, "Titulo", "Corpo", "")
		require.NoError(t, err)
		assert.Equal(t, PriorityNormal, aviso.Priority)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewAviso(condoID, sindico, " ", "Corpo", "")
		assertCode(t, err, "INVALID_TITLE")
		_, err = NewAviso(condoID, sindico, "Titulo", "", "")
		assertCode(t, err, "INVALID_BODY")
		_, err = NewAviso(condoID, sindico, "Titulo", "Corpo", AvisoPriority("CRITICAL"))
		assertCode(t, err, "INVALID_PRIORITY")
	})
}

func newTestEnquete(t *testing.T, opens, closes time.Time) *Enquete {
	t.Helper()
	enquete, err := NewEnquete(uuid.New(), uuid.New(),
		"Trocar a empresa de limpeza?", []string{"Sim", "Nao", "Abstencao"}, opens, closes)
	require.NoError(t, err)
	return enquete
}

func TestNewEnquete(t *testing.T) {
	opens := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	closes := opens.AddDate(0, 0, 7)

	t.Run("valid poll", func(t *testing.T) {
		enquete := newTestEnquete(t, opens, closes)
		assert.Equal(t, EnqueteStatusOpen, enquete.Status)
		require.Len(t, enquete.Options, 3)
		assert.Equal(t, 1, enquete.Options[0].ID)
	})

	t.Run("needs two options", func(t *testing.T) {
		_, err := NewEnquete(uuid.New(), uuid.New(), "Pergunta?", []string{"Sim"}, opens, closes)
		assertCode(t, err, "INVALID_OPTIONS")
	})

	t.Run("duplicate options", func(t *testing.T) {
		_, err := NewEnquete(uuid.New(), uuid.New(), "Pergunta?", []string{"Sim", "Sim"}, opens, closes)
		assertCode(t, err, "INVALID_OPTIONS")
	})

	t.Run("inverted window", func(t *testing.T) {
		_, err := NewEnquete(uuid.New(), uuid.New(), "Pergunta?", []string{"Sim", "Nao"}, closes, opens)
		assertCode(t, err, "INVALID_WINDOW")
	})
}

func TestEnquete_Voting(t *testing.T) {
	opens := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	closes := opens.AddDate(0, 0, 7)
	during := opens.AddDate(0, 0, 2)

	t.Run("one vote per unit", func(t *testing.T) {
		enquete := newTestEnquete(t, opens, closes)
		unitID := uuid.New()
		owner := uuid.New()
		renter := uuid.New()

		require.NoError(t, enquete.CastVote(unitID, owner, 1, during))

		// a different resident of the same unit still cannot vote again
		assertCode(t, enquete.CastVote(unitID, renter, 2, during), "ALREADY_VOTED")

		require.NoError(t, enquete.CastVote(uuid.New(), uuid.New(), 2, during))
		assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 0}, enquete.Results())
	})

	t.Run("unknown option", func(t *testing.T) {
		enquete := newTestEnquete(t, opens, closes)
		assertCode(t, enquete.CastVote(uuid.New(), uuid.New(), 9, during), "INVALID_OPTION")
	})

	t.Run("outside the window", func(t *testing.T) {
		enquete := newTestEnquete(t, opens, closes)
		assertCode(t, enquete.CastVote(uuid.New(), uuid.New(), 1, opens.AddDate(0, 0, -1)), "POLL_CLOSED")
		assertCode(t, enquete.CastVote(uuid.New(), uuid.New(), 1, closes.AddDate(0, 0, 1)), "POLL_CLOSED")
	})

	t.Run("closed poll rejects votes", func(t *testing.T) {
		enquete := newTestEnquete(t, opens, closes)
		require.NoError(t, enquete.Close(during))
		assertCode(t, enquete.CastVote(uuid.New(), uuid.New(), 1, during), "POLL_CLOSED")
		assertCode(t, enquete.Close(during), "INVALID_STATE")
	})
}
