package console

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReporter_Report(t *testing.T) {
	r := NewReporter(DefaultOptions())

	cases := []struct {
		name string
		acc  domain.Account
		want string
	}{
		{
			name: "savings",
			acc:  domain.NewSavingsAccount("S123", "John Doe", d("1000"), d("0.02")),
			want: "Account Details for Savings Account (ID: S123):\n" +
				"   Holder: John Doe\n" +
				"   Balance: $1000.00\n" +
				"   Interest Rate: 2.00%\n" +
				"\n",
		},
		{
			name: "current overdrawn",
			acc:  domain.NewCurrentAccount("C456", "Jane Doe", d("-250.5"), d("500")),
			want: "Account Details for Current Account (ID: C456):\n" +
				"   Holder: Jane Doe\n" +
				"   Balance: $-250.50\n" +
				"   Overdraft Limit: $500.00\n" +
				"\n",
		},
		{
			name: "basic",
			acc:  domain.NewAccount("A1", "Ann", d("12.345")),
			want: "Account Details for Account (ID: A1):\n" +
				"   Holder: Ann\n" +
				"   Balance: $12.35\n" +
				"\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.ReportAccount(&buf, tc.acc))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestReporter_DoesNotMutate(t *testing.T) {
	r := NewReporter(DefaultOptions())
	acc := domain.NewSavingsAccount("S123", "John Doe", d("1000"), d("0.02"))

	var first, second bytes.Buffer
	require.NoError(t, r.ReportAccount(&first, acc))
	require.NoError(t, r.ReportAccount(&second, acc))

	assert.Equal(t, first.String(), second.String())
	assert.True(t, acc.Balance().Equal(d("1000")))
}

func TestReporter_Options(t *testing.T) {
	r := NewReporter(Options{Symbol: "€", Precision: 0})
	var buf bytes.Buffer
	require.NoError(t, r.ReportAccount(&buf, domain.NewCurrentAccount("C1", "Eve", d("10.4"), d("99.6"))))
	assert.Contains(t, buf.String(), "   Balance: €10\n")
	assert.Contains(t, buf.String(), "   Overdraft Limit: €100\n")

	// 超過兩位小數會被限制
	r = NewReporter(Options{Symbol: "$", Precision: 4})
	buf.Reset()
	require.NoError(t, r.ReportAccount(&buf, domain.NewAccount("A1", "Ann", d("1.23456"))))
	assert.Contains(t, buf.String(), "   Balance: $1.23\n")
}

func TestOptionsForCurrency(t *testing.T) {
	opts, err := OptionsForCurrency("USD", "$")
	require.NoError(t, err)
	assert.Equal(t, Options{Symbol: "$", Precision: 2}, opts)

	opts, err = OptionsForCurrency("JPY", "¥")
	require.NoError(t, err)
	assert.Equal(t, int32(0), opts.Precision)

	_, err = OptionsForCurrency("XX", "$")
	require.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestReporter_WriteError(t *testing.T) {
	r := NewReporter(DefaultOptions())
	err := r.ReportAccount(failingWriter{}, domain.NewAccount("A1", "Ann", d("1")))
	require.EqualError(t, err, "closed")
}

func TestFailureMessage(t *testing.T) {
	cases := map[error]string{
		domain.ErrInsufficientFunds:                          "Insufficient funds for withdrawal.",
		domain.ErrMinimumBalanceViolation:                    "Withdrawal failed. Minimum balance requirement not met.",
		domain.ErrOverdraftExceeded:                          "Withdrawal failed. Overdraft limit exceeded.",
		domain.ErrTransferBlocked:                            "Unable to complete transfer. Balance too low.",
		fmt.Errorf("wrapped: %w", domain.ErrTransferBlocked): "Unable to complete transfer. Balance too low.",
		domain.ErrAccountNotFound:                            "account not found",
	}
	for err, want := range cases {
		assert.Equal(t, want, FailureMessage(err))
	}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(DefaultOptions()).Failure(&buf, domain.ErrOverdraftExceeded))
	assert.Equal(t, "Withdrawal failed. Overdraft limit exceeded.\n", buf.String())
}

func TestReporter_InterestRateKeepsTwoDecimals(t *testing.T) {
	opts, err := OptionsForCurrency("JPY", "¥")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(opts).ReportAccount(&buf, domain.NewSavingsAccount("S9", "Ken", d("5000"), d("0.025"))))
	assert.Contains(t, buf.String(), "   Balance: ¥5000\n")
	assert.Contains(t, buf.String(), "   Interest Rate: 2.50%\n")
}
