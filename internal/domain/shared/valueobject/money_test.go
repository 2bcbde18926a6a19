package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency Currency
		wantErr  bool
	}{
		{
			name:     "valid PKR amount",
			amount:   decimal.NewFromFloat(1500.50),
			currency: PKR,
			wantErr:  false,
		},
		{
			name:     "zero amount is valid",
			amount:   decimal.Zero,
			currency: PKR,
			wantErr:  false,
		},
		{
			name:     "negative amount is valid",
			amount:   decimal.NewFromFloat(-200),
			currency: USD,
			wantErr:  false,
		},
		{
			name:     "empty currency",
			amount:   decimal.NewFromFloat(100),
			currency: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoney(tt.amount, tt.currency)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, m.Amount().Equal(tt.amount))
				assert.Equal(t, tt.currency, m.Currency())
			}
		})
	}
}

func TestMoney_Add(t *testing.T) {
	a := NewMoneyPKRFromFloat(1000.25)
	b := NewMoneyPKRFromFloat(499.75)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(1500)))

	usd, err := NewMoney(decimal.NewFromFloat(10), USD)
	require.NoError(t, err)
	_, err = a.Add(usd)
	assert.Error(t, err)
}

func TestMoney_Subtract(t *testing.T) {
	income := NewMoneyPKRFromFloat(5000)
	expenses := NewMoneyPKRFromFloat(6200.50)

	diff, err := income.Subtract(expenses)
	require.NoError(t, err)
	assert.True(t, diff.IsNegative())
	assert.True(t, diff.Amount().Equal(decimal.NewFromFloat(-1200.50)))
}

func TestMoney_DisplayAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   float64
	}{
		{name: "rounds half up", amount: "10.005", want: 10.01},
		{name: "rounds down below half", amount: "10.004", want: 10.00},
		{name: "already two places", amount: "99.99", want: 99.99},
		{name: "negative rounds half up in magnitude", amount: "-10.005", want: -10.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoneyPKRFromString(tt.amount)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, m.DisplayAmount(), 0.0001)
		})
	}
}

func TestMoney_Comparisons(t *testing.T) {
	small := NewMoneyPKRFromFloat(100)
	big := NewMoneyPKRFromFloat(200)

	less, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, greater)

	assert.True(t, small.Equals(NewMoneyPKRFromFloat(100)))
	assert.False(t, small.Equals(big))
}

func TestMoney_ZeroAndSigns(t *testing.T) {
	z := ZeroPKR()
	assert.True(t, z.IsZero())
	assert.False(t, z.IsPositive())
	assert.False(t, z.IsNegative())

	neg := NewMoneyPKRFromFloat(50).Negate()
	assert.True(t, neg.IsNegative())
	assert.True(t, neg.Negate().IsPositive())
}
