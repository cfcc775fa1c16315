package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferFixedAmount(t *testing.T) {
	t.Run("moves 300", func(t *testing.T) {
		src := NewAccount("A1", "Alice", d("1000"))
		dst := NewAccount("A2", "Bob", d("0"))

		got, err := TransferFixedAmount(dst, src)
		require.NoError(t, err)
		assert.Same(t, src, got)
		assert.True(t, src.Balance().Equal(d("700")))
		assert.True(t, dst.Balance().Equal(d("300")))
	})

	t.Run("blocked below 300", func(t *testing.T) {
		src := NewCurrentAccount("C1", "Alice", d("299.99"), d("1000"))
		dst := NewAccount("A2", "Bob", d("5"))

		got, err := TransferFixedAmount(dst, src)
		require.ErrorIs(t, err, ErrTransferBlocked)
		assert.Same(t, src, got)
		assert.True(t, src.Balance().Equal(d("299.99")))
		assert.True(t, dst.Balance().Equal(d("5")))
	})

	t.Run("guard passes but savings rule rejects", func(t *testing.T) {
		src := NewSavingsAccount("S1", "Alice", d("350"), d("0.01"))
		dst := NewAccount("A2", "Bob", d("0"))

		got, err := TransferFixedAmount(dst, src)
		require.ErrorIs(t, err, ErrMinimumBalanceViolation)
		assert.Same(t, src, got)
		assert.True(t, src.Balance().Equal(d("350")))
		assert.True(t, dst.Balance().Equal(d("0")))
	})

	t.Run("exactly 300", func(t *testing.T) {
		src := NewAccount("A1", "Alice", d("300"))
		dst := NewAccount("A2", "Bob", d("0"))

		_, err := TransferFixedAmount(dst, src)
		require.NoError(t, err)
		assert.True(t, src.Balance().IsZero())
		assert.True(t, dst.Balance().Equal(d("300")))
	})
}

func TestReferenceScenario(t *testing.T) {
	savings := NewSavingsAccount("S123", "John Doe", d("1000"), d("0.02"))
	current := NewCurrentAccount("C456", "Jane Doe", d("2000"), d("500"))

	savings.Deposit(d("500"))
	assert.True(t, savings.Balance().Equal(d("1500")))

	require.NoError(t, current.Withdraw(d("1000")))
	assert.True(t, current.Balance().Equal(d("1000")))

	got, err := TransferFixedAmount(current, savings)
	require.NoError(t, err)
	assert.Equal(t, "S123", got.ID())
	assert.True(t, savings.Balance().Equal(d("1200")))
	assert.True(t, current.Balance().Equal(d("1300")))
}
