package kernel_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("rounds to centavos", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("12.345"))

		require.NoError(t, err)
		assert.Equal(t, "12.35", m.String())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price, err := kernel.MoneyFromString("49.50")
	require.NoError(t, err)
	fee, err := kernel.MoneyFromString("50")
	require.NoError(t, err)

	total := price.Times(3).Add(fee)

	assert.Equal(t, "198.50", total.String())
	assert.True(t, total.IsEqual(kernel.Zero.Add(total)))
}

func TestMoneyFromString_Invalid(t *testing.T) {
	_, err := kernel.MoneyFromString("fifty")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
