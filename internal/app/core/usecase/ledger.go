package usecase

import (
	"context"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// Ledger 是帳務系統的介面
type Ledger interface {
	// OpenAccount 開戶，帳號重複時回傳 domain.ErrAccountAlreadyExists
	OpenAccount(ctx context.Context, account domain.Account) error
	// 不分 Deposit/Withdraw/Transfer，直接看 tran.Type 決定
	PostTransaction(ctx context.Context, tran *domain.Transaction) error
	// GetAccount 取得帳戶快照
	GetAccount(ctx context.Context, accountID string) (domain.Snapshot, error)
	// LoadAllAccounts 取得所有帳戶快照 (依帳號排序)
	LoadAllAccounts(ctx context.Context) ([]domain.Snapshot, error)
}
