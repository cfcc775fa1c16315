package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// MaxPrecision 金額最多顯示到小數點後兩位
const MaxPrecision = 2

// percentPrecision 利率固定顯示兩位小數，與幣別無關
const percentPrecision = 2

var hundred = decimal.NewFromInt(100)

// Options 報表格式參數
type Options struct {
	// Symbol 金額前綴，例如 "$"
	Symbol string
	// Precision 小數位數 (0 ~ MaxPrecision)
	Precision int32
}

// DefaultOptions 美元格式
func DefaultOptions() Options {
	return Options{Symbol: "$", Precision: MaxPrecision}
}

// OptionsForCurrency 依 ISO 4217 幣別決定小數位數
//
// 參數:
//
//	code: 幣別代碼 (USD, JPY...)
//	symbol: 金額前綴
//
// 回傳:
//
//	Options: 報表格式
//	error: 幣別代碼不合法
func OptionsForCurrency(code, symbol string) (Options, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Options{}, fmt.Errorf("currency %q: %w", code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	if scale > MaxPrecision {
		scale = MaxPrecision
	}
	return Options{Symbol: symbol, Precision: int32(scale)}, nil
}

// Reporter 把帳戶狀態格式化輸出，不會修改帳戶
type Reporter struct {
	opts Options
}

func NewReporter(opts Options) *Reporter {
	if opts.Precision < 0 {
		opts.Precision = 0
	}
	if opts.Precision > MaxPrecision {
		opts.Precision = MaxPrecision
	}
	return &Reporter{opts: opts}
}

// Report 輸出單一帳戶的明細，最後多一行空白
func (r *Reporter) Report(w io.Writer, snap domain.Snapshot) error {
	ew := &errWriter{w: w}
	ew.printf("Account Details for %s (ID: %s):\n", snap.Type, snap.ID)
	ew.printf("   Holder: %s\n", snap.Holder)
	ew.printf("   Balance: %s\n", r.money(snap.Balance))
	if snap.Extra != nil {
		ew.printf("   %s: %s\n", snap.Extra.Label, r.detail(*snap.Extra))
	}
	ew.printf("\n")
	return ew.err
}

// ReportAccount 輸出 Account 目前的狀態
func (r *Reporter) ReportAccount(w io.Writer, acc domain.Account) error {
	return r.Report(w, acc.Snapshot())
}

// Failure 輸出業務拒絕的單行訊息，其他錯誤輸出 err.Error()
func (r *Reporter) Failure(w io.Writer, err error) error {
	_, werr := fmt.Fprintln(w, FailureMessage(err))
	return werr
}

// Line 輸出一行文字
func (r *Reporter) Line(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}

// FailureMessage 業務拒絕對應的顯示文字
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient funds for withdrawal."
	case errors.Is(err, domain.ErrMinimumBalanceViolation):
		return "Withdrawal failed. Minimum balance requirement not met."
	case errors.Is(err, domain.ErrOverdraftExceeded):
		return "Withdrawal failed. Overdraft limit exceeded."
	case errors.Is(err, domain.ErrTransferBlocked):
		return "Unable to complete transfer. Balance too low."
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}

func (r *Reporter) money(v decimal.Decimal) string {
	return r.opts.Symbol + v.StringFixed(r.opts.Precision)
}

func (r *Reporter) detail(d domain.Detail) string {
	switch d.Kind {
	case domain.DetailPercent:
		return d.Value.Mul(hundred).StringFixed(percentPrecision) + "%"
	default:
		return r.money(d.Value)
	}
}

// errWriter 記住第一個寫入錯誤，之後的寫入直接略過
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
