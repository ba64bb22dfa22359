package billing

import (
	"testing"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createTestBoleto(t *testing.T, dueDate time.Time) *Boleto {
	b, err := NewBoleto(
		uuid.New(),
		"BOL-2024-0001",
		uuid.New(),
		"Taxa condominial",
		valueobject.NewMoneyBRLFromFloat(450.00),
		dueDate,
	)
	require.NoError(t, err)
	return b
}

func registerTestBoleto(t *testing.T, b *Boleto, registrationDate time.Time) {
	require.NoError(t, b.Register("34191.79001 01043.510047 91020.150008 6 94420000045000", "10430001", "341", registrationDate))
}

func TestBoletoStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  BoletoStatus
		isValid bool
	}{
		{BoletoStatusGenerated, true},
		{BoletoStatusRegistered, true},
		{BoletoStatusSent, true},
		{BoletoStatusOverdue, true},
		{BoletoStatusPaid, true},
		{BoletoStatusCancelled, true},
		{BoletoStatus("INVALID"), false},
		{BoletoStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestBoletoStatus_IsTerminal(t *testing.T) {
	assert.True(t, BoletoStatusPaid.IsTerminal())
	assert.True(t, BoletoStatusCancelled.IsTerminal())
	assert.False(t, BoletoStatusGenerated.IsTerminal())
	assert.False(t, BoletoStatusSent.IsTerminal())
	assert.False(t, BoletoStatusOverdue.IsTerminal())
}

func TestNewBoleto(t *testing.T) {
	b := createTestBoleto(t, date(2024, 1, 10))

	assert.Equal(t, BoletoStatusGenerated, b.Status)
	assert.Empty(t, b.NossoNumero)
	assert.Empty(t, b.LinhaDigitavel)
	assert.Empty(t, b.CodigoBanco)
	assert.Nil(t, b.RegisteredAt)
	assert.Nil(t, b.AmountPaid)
	assert.Len(t, b.GetDomainEvents(), 1)
	assert.Equal(t, EventTypeBoletoGenerated, b.GetDomainEvents()[0].EventType())
}

func TestNewBoleto_Validation(t *testing.T) {
	amount := valueobject.NewMoneyBRLFromFloat(100)
	due := date(2024, 1, 10)

	_, err := NewBoleto(uuid.New(), "", uuid.New(), "", amount, due)
	assert.Error(t, err)

	_, err = NewBoleto(uuid.New(), "B-1", uuid.Nil, "", amount, due)
	assert.Error(t, err)

	_, err = NewBoleto(uuid.New(), "B-1", uuid.New(), "", valueobject.ZeroBRL(), due)
	assert.Error(t, err)

	_, err = NewBoleto(uuid.New(), "B-1", uuid.New(), "", amount, time.Time{})
	assert.Error(t, err)
}

func TestBoleto_Register(t *testing.T) {
	t.Run("succeeds with enough float time", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		registerTestBoleto(t, b, date(2024, 1, 5))

		assert.Equal(t, BoletoStatusRegistered, b.Status)
		assert.Equal(t, "10430001", b.NossoNumero)
		assert.Equal(t, "341", b.CodigoBanco)
		require.NotNil(t, b.RegisteredAt)
		assert.Equal(t, date(2024, 1, 5), *b.RegisteredAt)
	})

	t.Run("succeeds at exactly the 3-day boundary", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		err := b.Register("linha", "nn", "001", date(2024, 1, 7))
		assert.NoError(t, err)
		assert.Equal(t, BoletoStatusRegistered, b.Status)
	})

	t.Run("fails one day inside the boundary", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		err := b.Register("linha", "nn", "001", date(2024, 1, 8))
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DUE_DATE", domainErr.Code)
		assert.Equal(t, BoletoStatusGenerated, b.Status)
		assert.Empty(t, b.NossoNumero)
	})

	t.Run("ignores time-of-day on both dates", func(t *testing.T) {
		b := createTestBoleto(t, time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC))
		err := b.Register("linha", "nn", "001", time.Date(2024, 1, 7, 18, 30, 0, 0, time.UTC))
		assert.NoError(t, err)
	})

	t.Run("fails from non-Generated status", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		registerTestBoleto(t, b, date(2024, 1, 5))

		err := b.Register("other", "other", "237", date(2024, 1, 5))
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		// bank identifiers remain untouched
		assert.Equal(t, "10430001", b.NossoNumero)
	})

	t.Run("fails with empty bank identifiers", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		err := b.Register("", "nn", "001", date(2024, 1, 5))
		assert.Error(t, err)
	})
}

func TestBoleto_Send(t *testing.T) {
	b := createTestBoleto(t, date(2024, 1, 10))

	err := b.Send(date(2024, 1, 6))
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)

	registerTestBoleto(t, b, date(2024, 1, 5))
	require.NoError(t, b.Send(date(2024, 1, 6)))
	assert.Equal(t, BoletoStatusSent, b.Status)
	require.NotNil(t, b.SentAt)

	err = b.Send(date(2024, 1, 7))
	assert.Error(t, err)
}

func TestBoleto_MarkOverdue(t *testing.T) {
	t.Run("no-op on or before due date", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		registerTestBoleto(t, b, date(2024, 1, 5))
		require.NoError(t, b.Send(date(2024, 1, 6)))

		assert.False(t, b.MarkOverdue(date(2024, 1, 9)))
		assert.False(t, b.MarkOverdue(date(2024, 1, 10)))
		assert.Equal(t, BoletoStatusSent, b.Status)
	})

	t.Run("transitions after due date", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		registerTestBoleto(t, b, date(2024, 1, 5))
		require.NoError(t, b.Send(date(2024, 1, 6)))

		assert.True(t, b.MarkOverdue(date(2024, 1, 11)))
		assert.Equal(t, BoletoStatusOverdue, b.Status)

		// idempotent: second call is a no-op
		assert.False(t, b.MarkOverdue(date(2024, 1, 12)))
		assert.Equal(t, BoletoStatusOverdue, b.Status)
	})

	t.Run("no-op from non-Sent status", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		assert.False(t, b.MarkOverdue(date(2024, 2, 1)))
		assert.Equal(t, BoletoStatusGenerated, b.Status)
	})
}

func TestBoleto_RegisterPayment(t *testing.T) {
	payment := valueobject.NewMoneyBRLFromFloat(450.00)

	t.Run("from every non-cancelled status", func(t *testing.T) {
		for _, setup := range []func(*testing.T) *Boleto{
			func(t *testing.T) *Boleto { // Generated
				return createTestBoleto(t, date(2024, 1, 10))
			},
			func(t *testing.T) *Boleto { // Registered
				b := createTestBoleto(t, date(2024, 1, 10))
				registerTestBoleto(t, b, date(2024, 1, 5))
				return b
			},
			func(t *testing.T) *Boleto { // Sent
				b := createTestBoleto(t, date(2024, 1, 10))
				registerTestBoleto(t, b, date(2024, 1, 5))
				require.NoError(t, b.Send(date(2024, 1, 6)))
				return b
			},
			func(t *testing.T) *Boleto { // Overdue
				b := createTestBoleto(t, date(2024, 1, 10))
				registerTestBoleto(t, b, date(2024, 1, 5))
				require.NoError(t, b.Send(date(2024, 1, 6)))
				require.True(t, b.MarkOverdue(date(2024, 1, 11)))
				return b
			},
		} {
			b := setup(t)
			require.NoError(t, b.RegisterPayment(payment, date(2024, 1, 12)))
			assert.Equal(t, BoletoStatusPaid, b.Status)
			require.NotNil(t, b.AmountPaid)
			assert.True(t, b.AmountPaid.Equal(payment.Amount()))
			require.NotNil(t, b.PaidAt)
		}
	})

	t.Run("fails on cancelled boleto", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		require.NoError(t, b.Cancel())

		err := b.RegisterPayment(payment, date(2024, 1, 12))
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		assert.Nil(t, b.AmountPaid)
	})

	t.Run("fails with non-positive amount", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		err := b.RegisterPayment(valueobject.ZeroBRL(), date(2024, 1, 12))
		assert.Error(t, err)
	})
}

func TestBoleto_Cancel(t *testing.T) {
	t.Run("succeeds from non-paid statuses", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		registerTestBoleto(t, b, date(2024, 1, 5))
		require.NoError(t, b.Send(date(2024, 1, 6)))
		require.True(t, b.MarkOverdue(date(2024, 1, 11)))

		require.NoError(t, b.Cancel())
		assert.Equal(t, BoletoStatusCancelled, b.Status)
		require.NotNil(t, b.CancelledAt)
	})

	t.Run("fails on paid boleto", func(t *testing.T) {
		b := createTestBoleto(t, date(2024, 1, 10))
		require.NoError(t, b.RegisterPayment(valueobject.NewMoneyBRLFromFloat(450), date(2024, 1, 3)))

		err := b.Cancel()
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		assert.Equal(t, BoletoStatusPaid, b.Status)
	})
}

func TestBoleto_FullLifecycle(t *testing.T) {
	// Register -> Send -> (MarkOverdue) -> RegisterPayment always ends Paid.
	b := createTestBoleto(t, date(2024, 1, 10))
	registerTestBoleto(t, b, date(2024, 1, 5))
	require.NoError(t, b.Send(date(2024, 1, 6)))
	require.True(t, b.MarkOverdue(date(2024, 1, 15)))
	require.NoError(t, b.RegisterPayment(valueobject.NewMoneyBRLFromFloat(465.90), date(2024, 1, 20)))

	assert.Equal(t, BoletoStatusPaid, b.Status)
	require.NotNil(t, b.AmountPaid)
	assert.Equal(t, "465.9", b.AmountPaid.String())
	require.NotNil(t, b.PaidAt)
	assert.Greater(t, b.Version, 1)
}

func TestBoleto_SpecScenario(t *testing.T) {
	// Due date 2024-01-10: registering on the 8th leaves only 2 days
	// of float, registering on the 6th leaves 4 and succeeds.
	b := createTestBoleto(t, date(2024, 1, 10))
	err := b.Register("linha", "nn", "001", date(2024, 1, 8))
	require.Error(t, err)

	require.NoError(t, b.Register("linha", "nn", "001", date(2024, 1, 6)))
	assert.Equal(t, BoletoStatusRegistered, b.Status)
}
