package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking/internal/core/domain/model/kernel"
)

func mustCurrency(t *testing.T, code kernel.CurrencyCode) kernel.Currency {
	t.Helper()
	currency, err := kernel.CurrencyFromCode(code)
	require.NoError(t, err)
	return currency
}

func mustPrice(t *testing.T, amount float64, code kernel.CurrencyCode) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(amount, mustCurrency(t, code))
	require.NoError(t, err)
	return price
}

func TestNewPrice(t *testing.T) {
	usd := mustCurrency(t, kernel.USD)
	irr := mustCurrency(t, kernel.IRR)

	t.Run("creates valid price", func(t *testing.T) {
		price, err := kernel.NewPrice(49.99, usd)

		require.NoError(t, err)
		require.NoError(t, price.Validate())
		assert.InDelta(t, 49.99, price.Amount(), 1e-9)
		assert.True(t, price.Currency().IsEqual(usd))
	})

	t.Run("zero amount is valid", func(t *testing.T) {
		price, err := kernel.NewPrice(0, usd)

		require.NoError(t, err)
		assert.True(t, price.IsZero())
	})

	t.Run("rounds to currency decimal precision", func(t *testing.T) {
		price, err := kernel.NewPrice(10.999, usd)

		require.NoError(t, err)
		assert.InDelta(t, 11.00, price.Amount(), 1e-9)
	})

	t.Run("rounds to whole units for zero-decimal currency", func(t *testing.T) {
		price, err := kernel.NewPrice(42000.49, irr)

		require.NoError(t, err)
		assert.InDelta(t, 42000, price.Amount(), 1e-9)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := kernel.NewPrice(-1, usd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
	})

	t.Run("rejects NaN", func(t *testing.T) {
		_, err := kernel.NewPrice(math.NaN(), usd)

		require.Error(t, err)
	})

	t.Run("rejects infinity", func(t *testing.T) {
		_, err := kernel.NewPrice(math.Inf(1), usd)

		require.Error(t, err)
	})

	t.Run("rejects zero value currency", func(t *testing.T) {
		var invalid kernel.Currency

		_, err := kernel.NewPrice(10, invalid)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency must be created")
	})
}

func TestPrice_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var price kernel.Price

		require.Error(t, price.Validate())
	})
}

func TestPrice_Add(t *testing.T) {
	t.Run("adds amounts with matching currencies", func(t *testing.T) {
		a := mustPrice(t, 50.00, kernel.USD)
		b := mustPrice(t, 25.50, kernel.USD)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.InDelta(t, a.Amount()+b.Amount(), sum.Amount(), 1e-9)
	})

	t.Run("fails with mismatched currencies", func(t *testing.T) {
		a := mustPrice(t, 50.00, kernel.USD)
		b := mustPrice(t, 25.50, kernel.EUR)

		_, err := a.Add(b)

		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})

	t.Run("fails with zero value operand", func(t *testing.T) {
		a := mustPrice(t, 50.00, kernel.USD)
		var invalid kernel.Price

		_, err := a.Add(invalid)

		require.Error(t, err)
	})
}

func TestPrice_Subtract(t *testing.T) {
	t.Run("subtracts amounts", func(t *testing.T) {
		a := mustPrice(t, 50.00, kernel.USD)
		b := mustPrice(t, 20.00, kernel.USD)

		diff, err := a.Subtract(b)

		require.NoError(t, err)
		assert.InDelta(t, 30.00, diff.Amount(), 1e-9)
	})

	t.Run("fails when result would be negative", func(t *testing.T) {
		a := mustPrice(t, 20.00, kernel.USD)
		b := mustPrice(t, 50.00, kernel.USD)

		_, err := a.Subtract(b)

		require.ErrorIs(t, err, kernel.ErrNegativeResult)
	})

	t.Run("fails with mismatched currencies", func(t *testing.T) {
		a := mustPrice(t, 50.00, kernel.USD)
		b := mustPrice(t, 20.00, kernel.TRY)

		_, err := a.Subtract(b)

		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})

	t.Run("subtracting equal amounts yields zero", func(t *testing.T) {
		a := mustPrice(t, 50.00, kernel.USD)

		diff, err := a.Subtract(a)

		require.NoError(t, err)
		assert.True(t, diff.IsZero())
	})
}

func TestPrice_MultiplyBy(t *testing.T) {
	t.Run("multiplies by quantity", func(t *testing.T) {
		price := mustPrice(t, 50.00, kernel.USD)

		total, err := price.MultiplyBy(3)

		require.NoError(t, err)
		assert.InDelta(t, 150.00, total.Amount(), 1e-9)
	})

	t.Run("multiplying by zero yields zero", func(t *testing.T) {
		price := mustPrice(t, 50.00, kernel.USD)

		total, err := price.MultiplyBy(0)

		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("rejects negative factor", func(t *testing.T) {
		price := mustPrice(t, 50.00, kernel.USD)

		_, err := price.MultiplyBy(-1)

		require.Error(t, err)
	})
}

func TestPrice_ApplyDiscount(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    float64
		wantErr bool
	}{
		{name: "25 percent off", percent: 25, want: 75.00},
		{name: "zero percent keeps amount", percent: 0, want: 100.00},
		{name: "full discount", percent: 100, want: 0},
		{name: "negative percent rejected", percent: -5, wantErr: true},
		{name: "over 100 percent rejected", percent: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := mustPrice(t, 100.00, kernel.USD)

			discounted, err := price.ApplyDiscount(tt.percent)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, discounted.Amount(), 1e-9)
		})
	}
}

func TestPrice_ApplyMarkup(t *testing.T) {
	t.Run("adds markup percentage", func(t *testing.T) {
		price := mustPrice(t, 100.00, kernel.USD)

		marked, err := price.ApplyMarkup(15)

		require.NoError(t, err)
		assert.InDelta(t, 115.00, marked.Amount(), 1e-9)
	})

	t.Run("rejects negative markup", func(t *testing.T) {
		price := mustPrice(t, 100.00, kernel.USD)

		_, err := price.ApplyMarkup(-10)

		require.Error(t, err)
	})
}

func TestPrice_ConvertTo(t *testing.T) {
	t.Run("same currency is a pass-through", func(t *testing.T) {
		price := mustPrice(t, 100.00, kernel.USD)

		converted, err := price.ConvertTo(mustCurrency(t, kernel.USD))

		require.NoError(t, err)
		assert.True(t, price.IsEqual(converted))
	})

	t.Run("converts via static rate table", func(t *testing.T) {
		price := mustPrice(t, 100.00, kernel.USD)

		converted, err := price.ConvertTo(mustCurrency(t, kernel.EUR))

		require.NoError(t, err)
		assert.True(t, converted.Currency().IsEqual(mustCurrency(t, kernel.EUR)))
		assert.InDelta(t, 92.00, converted.Amount(), 1e-9)
	})

	t.Run("conversion rounds to target precision", func(t *testing.T) {
		price := mustPrice(t, 1.00, kernel.USD)

		converted, err := price.ConvertTo(mustCurrency(t, kernel.IRR))

		require.NoError(t, err)
		assert.InDelta(t, 42000, converted.Amount(), 1e-9)
		assert.InDelta(t, converted.Amount(), math.Round(converted.Amount()), 1e-9)
	})

	t.Run("fails for zero value target currency", func(t *testing.T) {
		price := mustPrice(t, 100.00, kernel.USD)
		var invalid kernel.Currency

		_, err := price.ConvertTo(invalid)

		require.Error(t, err)
	})
}

func TestPrice_IsEqual(t *testing.T) {
	t.Run("equal within tolerance", func(t *testing.T) {
		a := mustPrice(t, 10.00, kernel.USD)
		b := mustPrice(t, 10.00, kernel.USD)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("different amounts are not equal", func(t *testing.T) {
		a := mustPrice(t, 10.00, kernel.USD)
		b := mustPrice(t, 10.01, kernel.USD)

		assert.False(t, a.IsEqual(b))
	})

	t.Run("same amount different currency is not equal", func(t *testing.T) {
		a := mustPrice(t, 10.00, kernel.USD)
		b := mustPrice(t, 10.00, kernel.EUR)

		assert.False(t, a.IsEqual(b))
	})
}

func TestPrice_String(t *testing.T) {
	assert.Equal(t, "$49.99", mustPrice(t, 49.99, kernel.USD).String())
	assert.Equal(t, "﷼42000", mustPrice(t, 42000, kernel.IRR).String())
}
