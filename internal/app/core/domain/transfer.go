package domain

import "github.com/shopspring/decimal"

// FixedTransferAmount 每次轉帳固定的金額
var FixedTransferAmount = decimal.RequireFromString("300.00")

// TransferFixedAmount 從 source 轉 FixedTransferAmount 到 destination，回傳 source
//
// 前置檢查只比較 source 的原始餘額，不考慮帳戶類型的提款規則。
// 通過檢查後實際扣款仍由 source.Withdraw 決定，所以儲蓄帳戶可能通過檢查但扣款被拒；
// 這種情況 destination 不會入帳，並回傳 Withdraw 的錯誤。
//
// 回傳:
//
//	Account: 被扣款的 source 帳戶 (任何情況都回傳)
//	error: ErrTransferBlocked 或 source.Withdraw 的拒絕原因
func TransferFixedAmount(destination, source Account) (Account, error) {
	if FixedTransferAmount.GreaterThan(source.Balance()) {
		return source, ErrTransferBlocked
	}
	if err := source.Withdraw(FixedTransferAmount); err != nil {
		return source, err
	}
	destination.Deposit(FixedTransferAmount)
	return source, nil
}
