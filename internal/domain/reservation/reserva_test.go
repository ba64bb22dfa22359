package reservation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReserva(t *testing.T, cfg RuleConfig, start, end time.Time) *Reserva {
	t.Helper()
	espaco := newTestEspaco(t, cfg)
	reserva, err := NewReserva(espaco, uuid.New(), uuid.New(), start, end, "")
	require.NoError(t, err)
	return reserva
}

func TestNewReserva(t *testing.T) {
	start := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	t.Run("auto-confirmed without approval requirement", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{}, start, end)

		assert.Equal(t, ReservaStatusConfirmed, reserva.Status)
		assert.True(t, reserva.Fee.IsZero())

		events := reserva.GetDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, EventTypeReservaRequested, events[0].EventType())
		assert.Equal(t, EventTypeReservaConfirmed, events[1].EventType())
	})

	t.Run("pending when approval required", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{RequiresApproval: true}, start, end)

		assert.Equal(t, ReservaStatusPending, reserva.Status)
		events := reserva.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeReservaRequested, events[0].EventType())
	})

	t.Run("fee and notice are snapshotted", func(t *testing.T) {
		espaco := newTestEspaco(t, RuleConfig{
			Fee:                  decPtr("150.00"),
			MinCancelNoticeHours: intPtr(48),
		})
		reserva, err := NewReserva(espaco, uuid.New(), uuid.New(), start, end, "aniversario")
		require.NoError(t, err)

		assert.True(t, reserva.Fee.Equal(decimal.RequireFromString("150.00")))
		require.NotNil(t, reserva.CancelNoticeHours)
		assert.Equal(t, 48, *reserva.CancelNoticeHours)

		// changing the espaco afterwards must not touch the reservation
		require.NoError(t, espaco.ConfigureRules(RuleConfig{
			Fee:                  decPtr("300.00"),
			MinCancelNoticeHours: intPtr(96),
		}))
		assert.True(t, reserva.Fee.Equal(decimal.RequireFromString("150.00")))
		assert.Equal(t, 48, *reserva.CancelNoticeHours)
	})

	t.Run("inactive espaco", func(t *testing.T) {
		espaco := newTestEspaco(t, RuleConfig{})
		espaco.Deactivate()
		_, err := NewReserva(espaco, uuid.New(), uuid.New(), start, end, "")
		assertRuleCode(t, err, "ESPACO_INACTIVE")
	})

	t.Run("invalid window", func(t *testing.T) {
		espaco := newTestEspaco(t, RuleConfig{})
		_, err := NewReserva(espaco, uuid.New(), uuid.New(), end, start, "")
		assertRuleCode(t, err, RuleCodeInvalidWindow)
	})
}

func TestReserva_ApproveReject(t *testing.T) {
	start := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	sindico := uuid.New()

	t.Run("approve pending", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{RequiresApproval: true}, start, end)

		require.NoError(t, reserva.Approve(sindico))
		assert.Equal(t, ReservaStatusConfirmed, reserva.Status)
		assert.Equal(t, sindico, *reserva.DecidedBy)
		assert.NotNil(t, reserva.DecidedAt)
	})

	t.Run("reject pending", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{RequiresApproval: true}, start, end)

		require.NoError(t, reserva.Reject(sindico, "espaco em manutencao"))
		assert.Equal(t, ReservaStatusRejected, reserva.Status)
		assert.Equal(t, "espaco em manutencao", reserva.RejectionReason)
	})

	t.Run("cannot approve confirmed", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{}, start, end)
		assertRuleCode(t, reserva.Approve(sindico), "INVALID_STATE")
	})

	t.Run("cannot reject after approval", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{RequiresApproval: true}, start, end)
		require.NoError(t, reserva.Approve(sindico))
		assertRuleCode(t, reserva.Reject(sindico, "tarde demais"), "INVALID_STATE")
	})
}

func TestReserva_Cancel(t *testing.T) {
	start := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	t.Run("cancel without notice rule", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{}, start, end)

		now := start.Add(-time.Hour)
		require.NoError(t, reserva.Cancel(now))
		assert.Equal(t, ReservaStatusCancelled, reserva.Status)
		assert.Equal(t, now, *reserva.CancelledAt)
	})

	t.Run("cancel with enough notice", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{MinCancelNoticeHours: intPtr(48)}, start, end)
		assert.NoError(t, reserva.Cancel(start.Add(-49*time.Hour)))
	})

	t.Run("cancel exactly at the notice deadline", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{MinCancelNoticeHours: intPtr(48)}, start, end)
		assert.NoError(t, reserva.Cancel(start.Add(-48*time.Hour)))
	})

	t.Run("cancel too late", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{MinCancelNoticeHours: intPtr(48)}, start, end)
		err := reserva.Cancel(start.Add(-47 * time.Hour))
		assertRuleCode(t, err, RuleCodeCancellationNotice)
		assert.Equal(t, ReservaStatusConfirmed, reserva.Status)
	})

	t.Run("admin cancel bypasses notice", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{MinCancelNoticeHours: intPtr(48)}, start, end)
		require.NoError(t, reserva.CancelByAdmin(uuid.New(), start.Add(-time.Hour)))
		assert.Equal(t, ReservaStatusCancelled, reserva.Status)
	})

	t.Run("cannot cancel twice", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{}, start, end)
		require.NoError(t, reserva.Cancel(start.Add(-time.Hour)))
		assertRuleCode(t, reserva.Cancel(start.Add(-time.Hour)), "INVALID_STATE")
	})

	t.Run("cannot cancel rejected", func(t *testing.T) {
		reserva := newTestReserva(t, RuleConfig{RequiresApproval: true}, start, end)
		require.NoError(t, reserva.Reject(uuid.New(), "nao"))
		assertRuleCode(t, reserva.Cancel(start.Add(-time.Hour)), "INVALID_STATE")
	})
}

func TestReserva_Overlaps(t *testing.T) {
	start := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	reserva := newTestReserva(t, RuleConfig{}, start, end)

	assert.True(t, reserva.Overlaps(start.Add(time.Hour), end.Add(time.Hour)))
	assert.True(t, reserva.Overlaps(start.Add(-time.Hour), start.Add(time.Minute)))
	assert.False(t, reserva.Overlaps(end, end.Add(time.Hour)))
	assert.False(t, reserva.Overlaps(start.Add(-2*time.Hour), start))
}

func TestReserva_BlocksSlot(t *testing.T) {
	start := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	pending := newTestReserva(t, RuleConfig{RequiresApproval: true}, start, end)
	assert.True(t, pending.BlocksSlot())

	confirmed := newTestReserva(t, RuleConfig{}, start, end)
	assert.True(t, confirmed.BlocksSlot())

	cancelled := newTestReserva(t, RuleConfig{}, start, end)
	require.NoError(t, cancelled.Cancel(start.Add(-time.Hour)))
	assert.False(t, cancelled.BlocksSlot())
}
