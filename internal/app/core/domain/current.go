package domain

import "github.com/shopspring/decimal"

// CurrentAccount 活存帳戶，允許透支到 -overdraftLimit
type CurrentAccount struct {
	BasicAccount
	overdraftLimit decimal.Decimal
}

// NewCurrentAccount 建立活存帳戶
func NewCurrentAccount(id, holder string, balance, overdraftLimit decimal.Decimal) *CurrentAccount {
	return &CurrentAccount{
		BasicAccount:   BasicAccount{id: id, holder: holder, balance: balance},
		overdraftLimit: overdraftLimit,
	}
}

func (a *CurrentAccount) Type() AccountType { return AccountTypeCurrent }

// OverdraftLimit 回傳透支額度
func (a *CurrentAccount) OverdraftLimit() decimal.Decimal { return a.overdraftLimit }

// Withdraw 提款條件: balance + overdraftLimit >= amount
func (a *CurrentAccount) Withdraw(amount decimal.Decimal) error {
	if a.balance.Add(a.overdraftLimit).LessThan(amount) {
		return ErrOverdraftExceeded
	}
	a.debit(amount)
	return nil
}

func (a *CurrentAccount) ExtraDetail() (Detail, bool) {
	return Detail{Label: "Overdraft Limit", Value: a.overdraftLimit, Kind: DetailMoney}, true
}

func (a *CurrentAccount) Snapshot() Snapshot {
	return snapshotOf(a)
}
