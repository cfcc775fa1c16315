package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層
type CoreUseCase struct {
	ledger Ledger
	logger log.Logger
	now    func() time.Time
}

func NewCoreUseCase(ledger Ledger, logger log.Logger) *CoreUseCase {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &CoreUseCase{
		ledger: ledger,
		logger: logger,
		now:    time.Now,
	}
}

// OpenAccount 開戶
func (c *CoreUseCase) OpenAccount(ctx context.Context, account domain.Account) error {
	if err := c.ledger.OpenAccount(ctx, account); err != nil {
		return fmt.Errorf("open account %s: %w", account.ID(), err)
	}
	c.logger.Log("account", account.ID(), "type", account.Type(), "msg", "account opened")
	return nil
}

// PostTransaction 處理交易 (呼叫端自帶 TransactionID，可安全重送)
func (c *CoreUseCase) PostTransaction(ctx context.Context, tran *domain.Transaction) error {
	err := c.ledger.PostTransaction(ctx, tran)
	c.logOutcome(tran, err)
	return err
}

// Deposit 存款，回傳存款後的帳戶快照
func (c *CoreUseCase) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (domain.Snapshot, error) {
	tran := &domain.Transaction{
		To:            accountID,
		Amount:        amount,
		CreatedAt:     c.now().UnixNano(),
		TransactionID: uuid.New(),
		Type:          domain.TransactionTypeDeposit,
	}
	if err := c.PostTransaction(ctx, tran); err != nil {
		return domain.Snapshot{}, err
	}
	return c.ledger.GetAccount(ctx, accountID)
}

// Withdraw 提款，回傳提款後的帳戶快照
//
// 回傳:
//
//	domain.Snapshot: 帳戶快照 (失敗時為零值)
//	error: 業務拒絕 (domain.IsRejection) 或系統錯誤
func (c *CoreUseCase) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (domain.Snapshot, error) {
	tran := &domain.Transaction{
		From:          accountID,
		Amount:        amount,
		CreatedAt:     c.now().UnixNano(),
		TransactionID: uuid.New(),
		Type:          domain.TransactionTypeWithdraw,
	}
	if err := c.PostTransaction(ctx, tran); err != nil {
		return domain.Snapshot{}, err
	}
	return c.ledger.GetAccount(ctx, accountID)
}

// Transfer 從 sourceID 轉固定金額到 destinationID，回傳 source 的快照
func (c *CoreUseCase) Transfer(ctx context.Context, destinationID, sourceID string) (domain.Snapshot, error) {
	tran := domain.NewTransfer(uuid.New(), destinationID, sourceID, c.now().UnixNano())
	if err := c.PostTransaction(ctx, tran); err != nil {
		return domain.Snapshot{}, err
	}
	return c.ledger.GetAccount(ctx, sourceID)
}

// Account 取得帳戶快照
func (c *CoreUseCase) Account(ctx context.Context, accountID string) (domain.Snapshot, error) {
	return c.ledger.GetAccount(ctx, accountID)
}

// Accounts 取得所有帳戶快照
func (c *CoreUseCase) Accounts(ctx context.Context) ([]domain.Snapshot, error) {
	return c.ledger.LoadAllAccounts(ctx)
}

func (c *CoreUseCase) logOutcome(tran *domain.Transaction, err error) {
	kv := []interface{}{
		"txn", tran.TransactionID.String(),
		"type", tran.Type.String(),
		"from", tran.From,
		"to", tran.To,
		"amount", tran.Amount.String(),
	}
	switch {
	case err == nil:
		c.logger.Log(append(kv, "msg", "transaction posted")...)
	case domain.IsRejection(err):
		c.logger.Log(append(kv, "msg", "transaction rejected", "reason", err.Error())...)
	default:
		c.logger.Log(append(kv, "msg", "transaction failed", "error", err.Error())...)
	}
}
