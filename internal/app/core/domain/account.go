package domain

import "github.com/shopspring/decimal"

// AccountType 帳戶類型，只用於顯示
type AccountType uint8

const (
	AccountTypeBasic AccountType = iota
	AccountTypeSavings
	AccountTypeCurrent
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeSavings:
		return "Savings Account"
	case AccountTypeCurrent:
		return "Current Account"
	default:
		return "Account"
	}
}

// DetailKind 決定額外欄位的顯示方式
type DetailKind uint8

const (
	// DetailPercent 以百分比顯示 (0.02 -> 2.00%)
	DetailPercent DetailKind = iota + 1
	// DetailMoney 以金額顯示 ($500.00)
	DetailMoney
)

// Detail 帳戶類型專屬的額外顯示欄位 (利率或透支額度)
type Detail struct {
	Label string
	Value decimal.Decimal
	Kind  DetailKind
}

// Snapshot 帳戶的唯讀快照，供報表使用
type Snapshot struct {
	Type    AccountType
	ID      string
	Holder  string
	Balance decimal.Decimal
	Extra   *Detail
}

// Account 帳戶能力集合
//
// 只有本 package 內的 BasicAccount、SavingsAccount、CurrentAccount 會實作此介面
type Account interface {
	ID() string
	Holder() string
	Balance() decimal.Decimal
	Type() AccountType
	// Deposit 存款，沒有失敗情況
	Deposit(amount decimal.Decimal)
	// Withdraw 提款，依帳戶類型套用不同規則；拒絕時餘額不變
	Withdraw(amount decimal.Decimal) error
	// ExtraDetail 回傳類型專屬的額外欄位，一般帳戶沒有
	ExtraDetail() (Detail, bool)
	Snapshot() Snapshot

	sealed()
}

// BasicAccount 一般帳戶，也是其他帳戶類型的共用部分
type BasicAccount struct {
	id      string
	holder  string
	balance decimal.Decimal
}

// NewAccount 建立一般帳戶
func NewAccount(id, holder string, balance decimal.Decimal) *BasicAccount {
	return &BasicAccount{
		id:      id,
		holder:  holder,
		balance: balance,
	}
}

func (a *BasicAccount) ID() string               { return a.id }
func (a *BasicAccount) Holder() string           { return a.holder }
func (a *BasicAccount) Balance() decimal.Decimal { return a.balance }
func (a *BasicAccount) Type() AccountType        { return AccountTypeBasic }
func (a *BasicAccount) sealed()                  {}

// Deposit 存款
func (a *BasicAccount) Deposit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// Withdraw 提款，金額不得超過餘額
func (a *BasicAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.debit(amount)
	return nil
}

func (a *BasicAccount) ExtraDetail() (Detail, bool) {
	return Detail{}, false
}

func (a *BasicAccount) Snapshot() Snapshot {
	return snapshotOf(a)
}

// debit 扣款，規則檢查由呼叫端負責
func (a *BasicAccount) debit(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
}

func snapshotOf(acc Account) Snapshot {
	snap := Snapshot{
		Type:    acc.Type(),
		ID:      acc.ID(),
		Holder:  acc.Holder(),
		Balance: acc.Balance(),
	}
	if d, ok := acc.ExtraDetail(); ok {
		snap.Extra = &d
	}
	return snap
}
