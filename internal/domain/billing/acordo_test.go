package billing

import (
	"testing"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAcordo(t *testing.T, total, down float64, installments int) *Acordo {
	a, err := NewAcordo(
		uuid.New(),
		"ACD-2024-0001",
		uuid.New(),
		valueobject.NewMoneyBRLFromFloat(total),
		valueobject.NewMoneyBRLFromFloat(down),
		installments,
		date(2024, 2, 10),
	)
	require.NoError(t, err)
	return a
}

func TestNewAcordo_EvenSplit(t *testing.T) {
	a := createTestAcordo(t, 1000.00, 100.00, 3)

	assert.Equal(t, AcordoStatusActive, a.Status)
	require.Len(t, a.Parcelas, 3)
	for i, p := range a.Parcelas {
		assert.Equal(t, i+1, p.Sequence)
		assert.Equal(t, "300.00", p.Amount.StringFixed(2))
		assert.False(t, p.Paid)
		assert.Nil(t, p.BoletoID)
	}
	assert.True(t, a.ParcelasTotal().Equal(decimal.NewFromInt(900)))
}

func TestNewAcordo_RemainderOnLastInstallment(t *testing.T) {
	a := createTestAcordo(t, 1000.00, 0, 3)

	require.Len(t, a.Parcelas, 3)
	assert.Equal(t, "333.33", a.Parcelas[0].Amount.StringFixed(2))
	assert.Equal(t, "333.33", a.Parcelas[1].Amount.StringFixed(2))
	assert.Equal(t, "333.34", a.Parcelas[2].Amount.StringFixed(2))

	// down payment plus installments equals the total exactly
	assert.True(t, a.ParcelasTotal().Add(a.DownPayment).Equal(a.TotalAmount))
}

func TestNewAcordo_MonthlyDueDates(t *testing.T) {
	a := createTestAcordo(t, 900.00, 0, 3)

	assert.Equal(t, date(2024, 2, 10), a.Parcelas[0].DueDate)
	assert.Equal(t, date(2024, 3, 10), a.Parcelas[1].DueDate)
	assert.Equal(t, date(2024, 4, 10), a.Parcelas[2].DueDate)
}

func TestNewAcordo_Validation(t *testing.T) {
	total := valueobject.NewMoneyBRLFromFloat(1000)
	down := valueobject.NewMoneyBRLFromFloat(100)
	due := date(2024, 2, 10)

	tests := []struct {
		name string
		fn   func() (*Acordo, error)
	}{
		{"empty number", func() (*Acordo, error) {
			return NewAcordo(uuid.New(), "", uuid.New(), total, down, 3, due)
		}},
		{"nil unit", func() (*Acordo, error) {
			return NewAcordo(uuid.New(), "A-1", uuid.Nil, total, down, 3, due)
		}},
		{"zero total", func() (*Acordo, error) {
			return NewAcordo(uuid.New(), "A-1", uuid.New(), valueobject.ZeroBRL(), down, 3, due)
		}},
		{"negative down payment", func() (*Acordo, error) {
			return NewAcordo(uuid.New(), "A-1", uuid.New(), total, valueobject.NewMoneyBRLFromFloat(-1), 3, due)
		}},
		{"down payment exceeds total", func() (*Acordo, error) {
			return NewAcordo(uuid.New(), "A-1", uuid.New(), down, total, 3, due)
		}},
		{"zero installments", func() (*Acordo, error) {
			return NewAcordo(uuid.New(), "A-1", uuid.New(), total, down, 0, due)
		}},
		{"zero due date", func() (*Acordo, error) {
			return NewAcordo(uuid.New(), "A-1", uuid.New(), total, down, 3, time.Time{})
		}},
		{"sub-cent total", func() (*Acordo, error) {
			subCent := valueobject.NewMoneyBRL(decimal.RequireFromString("100.005"))
			return NewAcordo(uuid.New(), "A-1", uuid.New(), subCent, valueobject.ZeroBRL(), 1, due)
		}},
		{"sub-cent down payment", func() (*Acordo, error) {
			subCent := valueobject.NewMoneyBRL(decimal.RequireFromString("10.001"))
			return NewAcordo(uuid.New(), "A-1", uuid.New(), total, subCent, 3, due)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			assert.Error(t, err)
		})
	}
}

func TestAcordo_DownPaymentEqualsTotal(t *testing.T) {
	a, err := NewAcordo(
		uuid.New(), "A-1", uuid.New(),
		valueobject.NewMoneyBRLFromFloat(500),
		valueobject.NewMoneyBRLFromFloat(500),
		2, date(2024, 2, 10),
	)
	require.NoError(t, err)
	assert.True(t, a.ParcelasTotal().IsZero())
}

func TestAcordo_LinkBoleto(t *testing.T) {
	a := createTestAcordo(t, 900, 0, 3)
	boletoID := uuid.New()

	require.NoError(t, a.LinkBoleto(2, boletoID))
	require.NotNil(t, a.Parcelas[1].BoletoID)
	assert.Equal(t, boletoID, *a.Parcelas[1].BoletoID)

	err := a.LinkBoleto(2, uuid.New())
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_LINKED", domainErr.Code)

	err = a.LinkBoleto(9, uuid.New())
	assert.Error(t, err)

	require.NoError(t, a.PayParcela(1, date(2024, 2, 9)))
	err = a.LinkBoleto(1, uuid.New())
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PARCELA_ALREADY_PAID", domainErr.Code)
}

func TestAcordo_PayParcela(t *testing.T) {
	a := createTestAcordo(t, 900, 0, 3)
	payDate := date(2024, 2, 9)

	require.NoError(t, a.PayParcela(1, payDate))
	assert.True(t, a.Parcelas[0].Paid)
	require.NotNil(t, a.Parcelas[0].PaidAt)
	assert.Equal(t, AcordoStatusActive, a.Status)
	assert.Equal(t, 1, a.PaidCount())

	err := a.PayParcela(1, payDate)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_PAID", domainErr.Code)

	require.NoError(t, a.PayParcela(2, payDate))
	require.NoError(t, a.PayParcela(3, payDate))
	assert.Equal(t, AcordoStatusCompleted, a.Status)

	err = a.PayParcela(3, payDate)
	assert.Error(t, err)
}

func TestAcordo_Cancel(t *testing.T) {
	a := createTestAcordo(t, 900, 0, 3)
	require.NoError(t, a.Cancel())
	assert.Equal(t, AcordoStatusCancelled, a.Status)

	assert.Error(t, a.Cancel())
	assert.Error(t, a.PayParcela(1, date(2024, 2, 9)))
}
