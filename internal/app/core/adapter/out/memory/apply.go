package memory

import (
	"sort"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// book 帳戶資料，兩種 Ledger 共用的交易分發邏輯
// 呼叫端負責同步 (Mutex 或單一 goroutine)
type book struct {
	accounts map[string]domain.Account
	sequence uint64
}

func newBook(accounts []domain.Account) (*book, error) {
	b := &book{accounts: make(map[string]domain.Account, len(accounts))}
	for _, acc := range accounts {
		if err := b.open(acc); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *book) open(acc domain.Account) error {
	if _, ok := b.accounts[acc.ID()]; ok {
		return domain.ErrAccountAlreadyExists
	}
	b.accounts[acc.ID()] = acc
	return nil
}

func (b *book) snapshot(accountID string) (domain.Snapshot, error) {
	acc, ok := b.accounts[accountID]
	if !ok {
		return domain.Snapshot{}, domain.ErrAccountNotFound
	}
	return acc.Snapshot(), nil
}

func (b *book) snapshots() []domain.Snapshot {
	out := make([]domain.Snapshot, 0, len(b.accounts))
	for _, acc := range b.accounts {
		out = append(out, acc.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// apply 依 Type 執行交易並分配 Sequence
func (b *book) apply(tran *domain.Transaction) error {
	var err error
	switch tran.Type {
	case domain.TransactionTypeDeposit:
		err = b.handleDeposit(tran)
	case domain.TransactionTypeWithdraw:
		err = b.handleWithdraw(tran)
	case domain.TransactionTypeTransfer:
		err = b.handleTransfer(tran)
	default:
		return domain.ErrUnknownTransactionType
	}
	if err == nil {
		b.sequence++
		tran.Sequence = b.sequence
	}
	return err
}

func (b *book) handleDeposit(tran *domain.Transaction) error {
	toAccount, ok := b.accounts[tran.To]
	if !ok {
		return domain.ErrAccountNotFound
	}
	toAccount.Deposit(tran.Amount)
	return nil
}

func (b *book) handleWithdraw(tran *domain.Transaction) error {
	fromAccount, ok := b.accounts[tran.From]
	if !ok {
		return domain.ErrAccountNotFound
	}
	return fromAccount.Withdraw(tran.Amount)
}

// handleTransfer 金額固定，忽略 tran.Amount
func (b *book) handleTransfer(tran *domain.Transaction) error {
	fromAccount, ok := b.accounts[tran.From]
	if !ok {
		return domain.ErrAccountNotFound
	}
	toAccount, ok := b.accounts[tran.To]
	if !ok {
		return domain.ErrAccountNotFound
	}
	_, err := domain.TransferFixedAmount(toAccount, fromAccount)
	return err
}
