package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCore(t *testing.T, logger log.Logger) *usecase.CoreUseCase {
	t.Helper()
	ledger, err := memory.NewMutexLedger(nil)
	require.NoError(t, err)
	core := usecase.NewCoreUseCase(ledger, logger)

	ctx := context.Background()
	require.NoError(t, core.OpenAccount(ctx, domain.NewSavingsAccount("S123", "John Doe", d("1000"), d("0.02"))))
	require.NoError(t, core.OpenAccount(ctx, domain.NewCurrentAccount("C456", "Jane Doe", d("2000"), d("500"))))
	return core
}

func TestCoreUseCase_Scenario(t *testing.T) {
	core := newCore(t, nil)
	ctx := context.Background()

	snap, err := core.Deposit(ctx, "S123", d("500"))
	require.NoError(t, err)
	assert.True(t, snap.Balance.Equal(d("1500")))

	snap, err = core.Withdraw(ctx, "C456", d("1000"))
	require.NoError(t, err)
	assert.True(t, snap.Balance.Equal(d("1000")))

	snap, err = core.Transfer(ctx, "C456", "S123")
	require.NoError(t, err)
	assert.Equal(t, "S123", snap.ID, "transfer returns the debited account")
	assert.True(t, snap.Balance.Equal(d("1200")))

	current, err := core.Account(ctx, "C456")
	require.NoError(t, err)
	assert.True(t, current.Balance.Equal(d("1300")))

	all, err := core.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCoreUseCase_Errors(t *testing.T) {
	core := newCore(t, nil)
	ctx := context.Background()

	_, err := core.Withdraw(ctx, "S123", d("1000"))
	require.ErrorIs(t, err, domain.ErrMinimumBalanceViolation)

	_, err = core.Deposit(ctx, "missing", d("1"))
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	err = core.OpenAccount(ctx, domain.NewAccount("S123", "Dup", d("0")))
	require.ErrorIs(t, err, domain.ErrAccountAlreadyExists)
	assert.Contains(t, err.Error(), "open account S123")
}

func TestCoreUseCase_PostTransactionReplay(t *testing.T) {
	core := newCore(t, nil)
	ctx := context.Background()

	tran := domain.NewTransfer(uuid.New(), "C456", "S123", 0)
	require.NoError(t, core.PostTransaction(ctx, tran))
	require.NoError(t, core.PostTransaction(ctx, tran))

	snap, err := core.Account(ctx, "S123")
	require.NoError(t, err)
	assert.True(t, snap.Balance.Equal(d("700")))
}

func TestCoreUseCase_Logging(t *testing.T) {
	var buf bytes.Buffer
	core := newCore(t, log.NewLogfmtLogger(&buf))
	ctx := context.Background()

	_, err := core.Withdraw(ctx, "C456", d("5000"))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=\"account opened\"")
	assert.Contains(t, out, "msg=\"transaction rejected\"")
	assert.Contains(t, out, "type=withdraw")
	assert.Contains(t, out, "reason=\"overdraft limit exceeded\"")
}
