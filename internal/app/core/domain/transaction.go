package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
	// 轉帳 (固定金額)
	TransactionTypeTransfer TransactionType = 3
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	case TransactionTypeWithdraw:
		return "withdraw"
	case TransactionTypeTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Transaction 交易
type Transaction struct {
	// Sequence: 由帳本分配的順序號 (1, 2, 3...)
	Sequence uint64
	// From: 扣款帳戶 (提款、轉帳)
	From string
	// To: 入帳帳戶 (存款、轉帳)
	To string
	// Amount: 金額，轉帳一律是 FixedTransferAmount
	Amount decimal.Decimal
	// CreatedAt: 交易時間 (UnixNano)
	CreatedAt int64
	// TransactionID: 外部追蹤號，用於冪等
	TransactionID uuid.UUID
	Type          TransactionType
}

// NewTransfer 建立固定金額的轉帳交易
func NewTransfer(id uuid.UUID, destination, source string, createdAt int64) *Transaction {
	return &Transaction{
		From:          source,
		To:            destination,
		Amount:        FixedTransferAmount,
		CreatedAt:     createdAt,
		TransactionID: id,
		Type:          TransactionTypeTransfer,
	}
}
