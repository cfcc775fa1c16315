package domain

import "github.com/shopspring/decimal"

// MinimumBalance 儲蓄帳戶提款後必須保留的最低餘額
var MinimumBalance = decimal.RequireFromString("100.00")

// SavingsAccount 儲蓄帳戶
type SavingsAccount struct {
	BasicAccount
	// 利率只用於顯示，不會計息
	interestRate decimal.Decimal
}

// NewSavingsAccount 建立儲蓄帳戶
//
// 參數:
//
//	rate: 利率 (0.02 = 2%)
func NewSavingsAccount(id, holder string, balance, rate decimal.Decimal) *SavingsAccount {
	return &SavingsAccount{
		BasicAccount: BasicAccount{id: id, holder: holder, balance: balance},
		interestRate: rate,
	}
}

func (a *SavingsAccount) Type() AccountType { return AccountTypeSavings }

// InterestRate 回傳利率
func (a *SavingsAccount) InterestRate() decimal.Decimal { return a.interestRate }

// Withdraw 提款後餘額必須 >= MinimumBalance
// 不沿用一般帳戶的 amount <= balance 規則
func (a *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	if a.balance.Sub(amount).LessThan(MinimumBalance) {
		return ErrMinimumBalanceViolation
	}
	a.debit(amount)
	return nil
}

func (a *SavingsAccount) ExtraDetail() (Detail, bool) {
	return Detail{Label: "Interest Rate", Value: a.interestRate, Kind: DetailPercent}, true
}

func (a *SavingsAccount) Snapshot() Snapshot {
	return snapshotOf(a)
}
