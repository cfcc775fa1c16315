package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// 腳本支援的操作
const (
	OpDisplay  = "display"
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpTransfer = "transfer"
)

// Step 腳本中的一個步驟
type Step struct {
	Op string `yaml:"op"`
	// Account: display / deposit / withdraw 的目標帳戶
	Account string `yaml:"account,omitempty"`
	// Source, Destination: transfer 的扣款與入帳帳戶 (金額固定)
	Source      string `yaml:"source,omitempty"`
	Destination string `yaml:"destination,omitempty"`
	Amount      string `yaml:"amount,omitempty"`
}

// Validate 檢查步驟欄位
func (s Step) Validate() error {
	switch strings.ToLower(s.Op) {
	case OpDisplay:
		if s.Account == "" {
			return fmt.Errorf("%s: missing account", s.Op)
		}
	case OpDeposit, OpWithdraw:
		if s.Account == "" {
			return fmt.Errorf("%s: missing account", s.Op)
		}
		if _, err := s.amount(); err != nil {
			return fmt.Errorf("%s: %w", s.Op, err)
		}
	case OpTransfer:
		if s.Source == "" || s.Destination == "" {
			return fmt.Errorf("%s: missing source or destination", s.Op)
		}
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

func (s Step) amount() (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(s.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s.Amount, err)
	}
	return amt, nil
}

// Runner 依腳本呼叫 CoreUseCase，把報表與失敗訊息寫到同一個輸出
type Runner struct {
	core     *usecase.CoreUseCase
	reporter *Reporter
	out      io.Writer
	logger   log.Logger
}

func NewRunner(core *usecase.CoreUseCase, reporter *Reporter, out io.Writer, logger log.Logger) *Runner {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Runner{
		core:     core,
		reporter: reporter,
		out:      out,
		logger:   logger,
	}
}

// Run 依序執行所有步驟
// 業務拒絕只輸出訊息並繼續，系統錯誤 (帳戶不存在、操作不明) 直接中止
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	for i, step := range steps {
		if err := r.runStep(ctx, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	var err error
	switch strings.ToLower(step.Op) {
	case OpDisplay:
		var snap domain.Snapshot
		if snap, err = r.core.Account(ctx, step.Account); err == nil {
			return r.reporter.Report(r.out, snap)
		}
	case OpDeposit:
		amt, _ := step.amount()
		_, err = r.core.Deposit(ctx, step.Account, amt)
	case OpWithdraw:
		amt, _ := step.amount()
		_, err = r.core.Withdraw(ctx, step.Account, amt)
	case OpTransfer:
		if _, err = r.core.Transfer(ctx, step.Destination, step.Source); err == nil {
			return r.reporter.Line(r.out, "Details after transfer:")
		}
	}

	if domain.IsRejection(err) {
		r.logger.Log("op", step.Op, "msg", "rejected", "reason", err.Error())
		return r.reporter.Failure(r.out, err)
	}
	return err
}

// ReferenceScenario 預設腳本：顯示、存款、提款、轉帳，每次變動後顯示兩個帳戶
func ReferenceScenario(savingsID, currentID string) []Step {
	displayBoth := []Step{
		{Op: OpDisplay, Account: savingsID},
		{Op: OpDisplay, Account: currentID},
	}
	steps := append([]Step{}, displayBoth...)
	steps = append(steps,
		Step{Op: OpDeposit, Account: savingsID, Amount: "500"},
		Step{Op: OpWithdraw, Account: currentID, Amount: "1000"},
	)
	steps = append(steps, displayBoth...)
	steps = append(steps, Step{Op: OpTransfer, Source: savingsID, Destination: currentID})
	steps = append(steps, displayBoth...)
	return steps
}
