package reservation

import (
	"testing"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func newTestEspaco(t *testing.T, cfg RuleConfig) *EspacoComum {
	t.Helper()
	espaco, err := NewEspacoComum(uuid.New(), "Salao de Festas", "Salao principal", 80)
	require.NoError(t, err)
	require.NoError(t, espaco.ConfigureRules(cfg))
	return espaco
}

func assertRuleCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestNewEspacoComum(t *testing.T) {
	t.Run("valid espaco", func(t *testing.T) {
		condoID := uuid.New()
		espaco, err := NewEspacoComum(condoID, "Churrasqueira", "Area gourmet", 20)

		require.NoError(t, err)
		assert.Equal(t, condoID, espaco.CondominiumID)
		assert.True(t, espaco.Active)
		assert.False(t, espaco.RequiresApproval)
		assert.Nil(t, espaco.MaxAdvanceDays)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewEspacoComum(uuid.New(), "", "", 10)
		assertRuleCode(t, err, "INVALID_NAME")
	})

	t.Run("negative capacity", func(t *testing.T) {
		_, err := NewEspacoComum(uuid.New(), "Quadra", "", -1)
		assertRuleCode(t, err, "INVALID_CAPACITY")
	})
}

func TestEspacoComum_ConfigureRules(t *testing.T) {
	espaco, err := NewEspacoComum(uuid.New(), "Salao", "", 50)
	require.NoError(t, err)

	tests := []struct {
		name string
		cfg  RuleConfig
	}{
		{"min above max", RuleConfig{MinReservationMinutes: intPtr(240), MaxReservationMinutes: intPtr(60)}},
		{"start without end", RuleConfig{OperatingStartMinute: intPtr(8 * 60)}},
		{"inverted hours", RuleConfig{OperatingStartMinute: intPtr(22 * 60), OperatingEndMinute: intPtr(8 * 60)}},
		{"zero advance days", RuleConfig{MaxAdvanceDays: intPtr(0)}},
		{"negative notice", RuleConfig{MinCancelNoticeHours: intPtr(-1)}},
		{"zero monthly limit", RuleConfig{MaxMonthlyPerUnit: intPtr(0)}},
		{"negative fee", RuleConfig{Fee: decPtr("-10")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRuleCode(t, espaco.ConfigureRules(tt.cfg), "INVALID_RULE")
		})
	}

	t.Run("full valid config", func(t *testing.T) {
		err := espaco.ConfigureRules(RuleConfig{
			MinReservationMinutes: intPtr(60),
			MaxReservationMinutes: intPtr(240),
			OperatingStartMinute:  intPtr(8 * 60),
			OperatingEndMinute:    intPtr(22 * 60),
			MaxAdvanceDays:        intPtr(60),
			MinCancelNoticeHours:  intPtr(48),
			MaxMonthlyPerUnit:     intPtr(2),
			RequiresApproval:      true,
			Fee:                   decPtr("150.00"),
		})
		require.NoError(t, err)
		assert.True(t, espaco.RequiresApproval)
		assert.Equal(t, 48, *espaco.MinCancelNoticeHours)
	})
}

func TestEspacoComum_CheckWindow(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	espaco := newTestEspaco(t, RuleConfig{
		MinReservationMinutes: intPtr(60),
		MaxReservationMinutes: intPtr(240),
		OperatingStartMinute:  intPtr(8 * 60),
		OperatingEndMinute:    intPtr(22 * 60),
		MaxAdvanceDays:        intPtr(30),
		MaxMonthlyPerUnit:     intPtr(2),
	})

	day := func(d, h, m int) time.Time {
		return time.Date(2024, 3, d, h, m, 0, 0, time.UTC)
	}

	t.Run("valid window passes", func(t *testing.T) {
		assert.NoError(t, espaco.CheckWindow(day(10, 14, 0), day(10, 17, 0), now, 0))
	})

	t.Run("end before start", func(t *testing.T) {
		err := espaco.CheckWindow(day(10, 17, 0), day(10, 14, 0), now, 0)
		assertRuleCode(t, err, RuleCodeInvalidWindow)
	})

	t.Run("start in the past", func(t *testing.T) {
		err := espaco.CheckWindow(day(1, 9, 0), day(1, 11, 0), now, 0)
		assertRuleCode(t, err, RuleCodeInvalidWindow)
	})

	t.Run("too short", func(t *testing.T) {
		err := espaco.CheckWindow(day(10, 14, 0), day(10, 14, 30), now, 0)
		assertRuleCode(t, err, RuleCodeTooShort)
	})

	t.Run("too long", func(t *testing.T) {
		err := espaco.CheckWindow(day(10, 14, 0), day(10, 18, 30), now, 0)
		assertRuleCode(t, err, RuleCodeTooLong)
	})

	t.Run("starts before opening", func(t *testing.T) {
		err := espaco.CheckWindow(day(10, 7, 0), day(10, 9, 0), now, 0)
		assertRuleCode(t, err, RuleCodeOutsideHours)
	})

	t.Run("ends after closing", func(t *testing.T) {
		err := espaco.CheckWindow(day(10, 20, 0), day(10, 23, 0), now, 0)
		assertRuleCode(t, err, RuleCodeOutsideHours)
	})

	t.Run("boundary exactly on operating hours passes", func(t *testing.T) {
		assert.NoError(t, espaco.CheckWindow(day(10, 8, 0), day(10, 12, 0), now, 0))
		assert.NoError(t, espaco.CheckWindow(day(10, 18, 0), day(10, 22, 0), now, 0))
	})

	t.Run("crosses midnight", func(t *testing.T) {
		err := espaco.CheckWindow(day(10, 21, 0), day(11, 1, 0), now, 0)
		assertRuleCode(t, err, RuleCodeOutsideHours)
	})

	t.Run("too far in advance", func(t *testing.T) {
		start := now.AddDate(0, 0, 31)
		err := espaco.CheckWindow(start, start.Add(2*time.Hour), now, 0)
		assertRuleCode(t, err, RuleCodeTooFarInAdvance)
	})

	t.Run("exactly at advance limit passes", func(t *testing.T) {
		start := now.AddDate(0, 0, 30).Add(-2 * time.Hour)
		assert.NoError(t, espaco.CheckWindow(start, start.Add(2*time.Hour), now, 0))
	})

	t.Run("monthly limit reached", func(t *testing.T) {
		err := espaco.CheckWindow(day(10, 14, 0), day(10, 17, 0), now, 2)
		assertRuleCode(t, err, RuleCodeMonthlyLimit)
	})

	t.Run("below monthly limit passes", func(t *testing.T) {
		assert.NoError(t, espaco.CheckWindow(day(10, 14, 0), day(10, 17, 0), now, 1))
	})
}

func TestEspacoComum_CheckWindow_NoRules(t *testing.T) {
	// with no optional rules configured, any future window is accepted
	espaco, err := NewEspacoComum(uuid.New(), "Quadra", "", 10)
	require.NoError(t, err)

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 6, 0)
	assert.NoError(t, espaco.CheckWindow(start, start.Add(30*time.Hour), now, 99))
}

func TestEspacoComum_InitialStatus(t *testing.T) {
	espaco := newTestEspaco(t, RuleConfig{RequiresApproval: true})
	assert.Equal(t, ReservaStatusPending, espaco.InitialStatus())

	espaco2 := newTestEspaco(t, RuleConfig{})
	assert.Equal(t, ReservaStatusConfirmed, espaco2.InitialStatus())
}
