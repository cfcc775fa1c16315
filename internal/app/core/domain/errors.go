package domain

import "errors"

var (
	// ErrInsufficientFunds 一般帳戶餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds for withdrawal")

	// ErrMinimumBalanceViolation 儲蓄帳戶提款後低於最低餘額
	ErrMinimumBalanceViolation = errors.New("minimum balance requirement not met")

	// ErrOverdraftExceeded 活存帳戶超過透支額度
	ErrOverdraftExceeded = errors.New("overdraft limit exceeded")

	// ErrTransferBlocked 轉出帳戶餘額低於固定轉帳金額
	ErrTransferBlocked = errors.New("unable to complete transfer, balance too low")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists 帳戶已存在
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrUnknownTransactionType 無法識別的交易類型
	ErrUnknownTransactionType = errors.New("unknown transaction type")

	// ErrLedgerStopped 帳本已停止接收交易
	ErrLedgerStopped = errors.New("ledger stopped")

	// ErrMissingTransactionID 交易沒有 TransactionID，無法做冪等檢查
	ErrMissingTransactionID = errors.New("missing transaction id")
)

// IsRejection 判斷 err 是否為業務規則拒絕 (非系統錯誤)
// 業務拒絕發生時帳戶狀態不會改變
func IsRejection(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrMinimumBalanceViolation) ||
		errors.Is(err, ErrOverdraftExceeded) ||
		errors.Is(err, ErrTransferBlocked)
}
