package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// MutexLedger 是一個使用 Mutex 實現的帳本
//
// 結構:
//
//	book: 帳戶資料
//	mu: Mutex 用於保護帳戶資料
//	processedTransactions: 已處理過的交易 Map
type MutexLedger struct {
	book *book
	mu   sync.RWMutex
	// 已處理過的交易
	processedTransactions map[uuid.UUID]time.Time
}

// NewMutexLedger 建立一個新的 MutexLedger 實例
//
// 參數:
//
//	accounts: 初始帳戶
//
// 回傳:
//
//	*MutexLedger: MutexLedger 實例
//	error: 初始化錯誤 (如帳號重複)
func NewMutexLedger(accounts []domain.Account) (*MutexLedger, error) {
	b, err := newBook(accounts)
	if err != nil {
		return nil, err
	}
	return &MutexLedger{
		book:                  b,
		processedTransactions: make(map[uuid.UUID]time.Time),
	}, nil
}

// OpenAccount 開戶
func (m *MutexLedger) OpenAccount(ctx context.Context, account domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.open(account)
}

// GetAccount 取得指定帳戶的快照
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳戶 ID
//
// 回傳:
//
//	domain.Snapshot: 帳戶快照
//	error: 查詢錯誤 (如帳戶不存在)
func (m *MutexLedger) GetAccount(ctx context.Context, accountID string) (domain.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.snapshot(accountID)
}

// LoadAllAccounts 取得所有帳戶快照
func (m *MutexLedger) LoadAllAccounts(ctx context.Context) ([]domain.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.snapshots(), nil
}

// PostTransaction 處理交易請求 (Mutex Lock)
//
// 參數:
//
//	ctx: 上下文
//	tran: 交易請求物件
//
// 回傳:
//
//	error: 處理錯誤
func (m *MutexLedger) PostTransaction(ctx context.Context, tran *domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.postTransactionInternal(tran)
}

func (m *MutexLedger) postTransactionInternal(tran *domain.Transaction) error {
	if tran.TransactionID == uuid.Nil {
		return domain.ErrMissingTransactionID
	}
	if _, ok := m.processedTransactions[tran.TransactionID]; ok {
		return nil
	}
	err := m.book.apply(tran)
	if err == nil {
		m.processedTransactions[tran.TransactionID] = time.Now()
	}
	return err
}

var _ usecase.Ledger = (*MutexLedger)(nil)
