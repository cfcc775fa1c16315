package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// ledgerRequest 請求包裝 channel，讓呼叫端可以等待結果
// Tx 與 Query 二擇一：Tx 是交易，Query 是在核心 goroutine 上執行的讀取/開戶
type ledgerRequest struct {
	Tx     *domain.Transaction
	Query  func(b *book) error
	Result chan error // 讓呼叫端等這個 channel
}

// LMAXLedger 單一 goroutine 處理所有請求的帳本，不需要 Lock
type LMAXLedger struct {
	book *book
	// 已處理過的交易 (只有核心 goroutine 存取)
	processedTransactions map[uuid.UUID]bool
	// 輸送帶 負責接收請求
	requestChan chan *ledgerRequest
	// 核心 goroutine 結束後關閉
	done chan struct{}
	// Pool 減少 GC 壓力
	requestPool sync.Pool
}

// NewLMAXLedger 建立一個新的 LMAXLedger 實例，需呼叫 Start 後才會處理請求
//
// 參數:
//
//	accounts: 初始帳戶
//	bufferSize: 輸送帶大小
//
// 回傳:
//
//	*LMAXLedger: LMAXLedger 實例
//	error: 初始化錯誤
func NewLMAXLedger(accounts []domain.Account, bufferSize int) (*LMAXLedger, error) {
	b, err := newBook(accounts)
	if err != nil {
		return nil, err
	}
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	return &LMAXLedger{
		book:                  b,
		processedTransactions: make(map[uuid.UUID]bool),
		requestChan:           make(chan *ledgerRequest, bufferSize),
		done:                  make(chan struct{}),
		requestPool: sync.Pool{
			New: func() interface{} {
				return &ledgerRequest{
					Result: make(chan error, 1),
				}
			},
		},
	}, nil
}

// Start 啟動核心引擎 (非同步)，ctx 取消後處理完剩下的請求就停止
func (l *LMAXLedger) Start(ctx context.Context) {
	go l.run(ctx)
}

// Done 核心引擎停止後關閉
func (l *LMAXLedger) Done() <-chan struct{} {
	return l.done
}

func (l *LMAXLedger) run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			// 收到關閉信號，把剩下的請求處理完
			l.drain()
			return
		case req := <-l.requestChan:
			l.process(req)
		}
	}
}

func (l *LMAXLedger) drain() {
	for {
		select {
		case req := <-l.requestChan:
			l.process(req)
		default:
			return
		}
	}
}

func (l *LMAXLedger) process(req *ledgerRequest) {
	if req.Query != nil {
		req.Result <- req.Query(l.book)
		return
	}
	req.Result <- l.processTransaction(req.Tx)
}

// processTransaction 處理單筆交易
func (l *LMAXLedger) processTransaction(tran *domain.Transaction) error {
	if tran.TransactionID == uuid.Nil {
		return domain.ErrMissingTransactionID
	}
	// Idempotency Check (Thread Safe in Loop)
	if l.processedTransactions[tran.TransactionID] {
		return nil
	}
	err := l.book.apply(tran)
	if err == nil {
		l.processedTransactions[tran.TransactionID] = true
	}
	return err
}

// submit 放入輸送帶並等待結果
//
// PostTransaction(等待) -> Channel -> Run Loop (核心) -> Map Update -> Result Channel -> PostTransaction(收到結果)
func (l *LMAXLedger) submit(ctx context.Context, tran *domain.Transaction, query func(b *book) error) error {
	req := l.requestPool.Get().(*ledgerRequest)
	req.Tx = tran
	req.Query = query

	select {
	case l.requestChan <- req:
	case <-ctx.Done():
		l.release(req)
		return ctx.Err()
	case <-l.done:
		l.release(req)
		return domain.ErrLedgerStopped
	}

	select {
	case err := <-req.Result:
		l.release(req)
		return err
	case <-ctx.Done():
		// 核心 goroutine 之後仍可能處理並寫入 req，不放回 Pool
		return ctx.Err()
	case <-l.done:
		// 停止前可能已經處理完
		select {
		case err := <-req.Result:
			l.release(req)
			return err
		default:
			// req 還在輸送帶裡，不放回 Pool
			return domain.ErrLedgerStopped
		}
	}
}

func (l *LMAXLedger) release(req *ledgerRequest) {
	req.Tx = nil
	req.Query = nil
	l.requestPool.Put(req)
}

// OpenAccount 開戶
func (l *LMAXLedger) OpenAccount(ctx context.Context, account domain.Account) error {
	return l.submit(ctx, nil, func(b *book) error {
		return b.open(account)
	})
}

// PostTransaction 接收交易請求
func (l *LMAXLedger) PostTransaction(ctx context.Context, tran *domain.Transaction) error {
	return l.submit(ctx, tran, nil)
}

// GetAccount 取得指定帳戶的快照 (在核心 goroutine 上讀取)
func (l *LMAXLedger) GetAccount(ctx context.Context, accountID string) (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := l.submit(ctx, nil, func(b *book) error {
		var err error
		snap, err = b.snapshot(accountID)
		return err
	})
	return snap, err
}

// LoadAllAccounts implements usecase.Ledger.
func (l *LMAXLedger) LoadAllAccounts(ctx context.Context) ([]domain.Snapshot, error) {
	var snaps []domain.Snapshot
	err := l.submit(ctx, nil, func(b *book) error {
		snaps = b.snapshots()
		return nil
	})
	return snaps, err
}

var _ usecase.Ledger = (*LMAXLedger)(nil)
