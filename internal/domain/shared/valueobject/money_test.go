package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), USD)
		require.NoError(t, err)
		assert.Equal(t, "100.50", m.StringFixed(2))
		assert.Equal(t, USD, m.Currency())
	})

	t.Run("empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(1), "")
		assert.Error(t, err)
	})

	t.Run("from string", func(t *testing.T) {
		m, err := NewMoneyFromString("42.75", USD)
		require.NoError(t, err)
		assert.Equal(t, "42.75", m.StringFixed(2))
	})

	t.Run("from invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", USD)
		assert.Error(t, err)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromFloat(100.00))
	b := NewMoneyUSD(decimal.NewFromFloat(25.50))

	t.Run("add", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "125.50", sum.StringFixed(2))
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "74.50", diff.StringFixed(2))
	})

	t.Run("multiply", func(t *testing.T) {
		m := b.Multiply(decimal.NewFromInt(3))
		assert.Equal(t, "76.50", m.StringFixed(2))
	})

	t.Run("divide", func(t *testing.T) {
		m, err := a.Divide(decimal.NewFromInt(4))
		require.NoError(t, err)
		assert.Equal(t, "25.00", m.StringFixed(2))
	})

	t.Run("divide by zero", func(t *testing.T) {
		_, err := a.Divide(decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("currency mismatch", func(t *testing.T) {
		eur, _ := NewMoney(decimal.NewFromInt(10), EUR)
		_, err := a.Add(eur)
		assert.Error(t, err)
	})

	t.Run("immutability", func(t *testing.T) {
		original := NewMoneyUSD(decimal.NewFromInt(10))
		_ = original.Multiply(decimal.NewFromInt(5))
		assert.Equal(t, "10.00", original.StringFixed(2))
	})
}

func TestMoneyComparison(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromInt(100))
	b := NewMoneyUSD(decimal.NewFromInt(50))

	assert.True(t, a.Equals(NewMoneyUSD(decimal.NewFromInt(100))))
	assert.False(t, a.Equals(b))

	gt, err := a.GreaterThan(b)
	require.NoError(t, err)
	assert.True(t, gt)

	assert.True(t, ZeroUSD().IsZero())
	assert.True(t, a.IsPositive())

	diff, err := b.Subtract(a)
	require.NoError(t, err)
	assert.True(t, diff.IsNegative())
}

func TestMoneyJSON(t *testing.T) {
	m := NewMoneyUSD(decimal.NewFromFloat(99.99))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"99.99","currency":"USD"}`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoneyScan(t *testing.T) {
	t.Run("string value", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("12.34"))
		assert.Equal(t, "12.34", m.StringFixed(2))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("nil value", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(42))
	})
}
