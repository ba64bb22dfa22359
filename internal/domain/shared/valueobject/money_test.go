package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromFloat(100.50), BRL)
	require.NoError(t, err)
	assert.Equal(t, BRL, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))

	_, err = NewMoney(decimal.Zero, "")
	assert.Error(t, err)
}

func TestMoney_AddSubtract(t *testing.T) {
	a := NewMoneyBRLFromFloat(100.00)
	b := NewMoneyBRLFromFloat(50.25)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "150.25", sum.StringFixed(2))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "49.75", diff.StringFixed(2))

	usd := Zero(USD)
	_, err = a.Add(usd)
	assert.Error(t, err)
	_, err = a.Subtract(usd)
	assert.Error(t, err)
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoneyBRLFromFloat(10)
	b := NewMoneyBRLFromFloat(20)

	lt, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, lt)

	gt, err := b.GreaterThan(a)
	require.NoError(t, err)
	assert.True(t, gt)

	assert.True(t, a.Equals(NewMoneyBRLFromFloat(10)))
	assert.False(t, a.Equals(b))
}

func TestMoney_SplitInstallments(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		parts    int
		expected []string
	}{
		{"even split", 900.00, 3, []string{"300.00", "300.00", "300.00"}},
		{"remainder on last", 100.00, 3, []string{"33.33", "33.33", "33.34"}},
		{"single part", 55.55, 1, []string{"55.55"}},
		{"two parts uneven", 100.01, 2, []string{"50.00", "50.01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMoneyBRLFromFloat(tt.total)
			parts, err := m.SplitInstallments(tt.parts)
			require.NoError(t, err)
			require.Len(t, parts, tt.parts)

			sum := ZeroBRL()
			for i, p := range parts {
				assert.Equal(t, tt.expected[i], p.StringFixed(2))
				sum = sum.MustAdd(p)
			}
			assert.True(t, sum.Equals(m), "parts must sum to the original amount")
		})
	}

	_, err := NewMoneyBRLFromFloat(10).SplitInstallments(0)
	assert.Error(t, err)
}

func TestMoney_SplitInstallments_SubCentAmount(t *testing.T) {
	// A single part returns the amount untouched so the sum stays exact
	// even when the input carries sub-cent precision.
	m := NewMoneyBRL(decimal.RequireFromString("100.005"))

	parts, err := m.SplitInstallments(1)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.True(t, parts[0].Equals(m), "single part must equal the original amount")

	parts, err = m.SplitInstallments(3)
	require.NoError(t, err)
	sum := ZeroBRL()
	for _, p := range parts {
		sum = sum.MustAdd(p)
	}
	assert.True(t, sum.Equals(m), "parts must sum to the original amount")
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := NewMoneyBRLFromFloat(123.45)
	data, err := m.MarshalJSON()
	require.NoError(t, err)

	var got Money
	require.NoError(t, got.UnmarshalJSON(data))
	assert.True(t, m.Equals(got))
}
