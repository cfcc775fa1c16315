package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/logging"
)

var (
	flagLedger      = flag.String("ledger", "mutex", "Ledger to benchmark (mutex, lmax)")
	flagTotal       = flag.Int("total", 1000000, "Number of transactions")
	flagConcurrency = flag.Int("concurrency", 1000, "Concurrent callers")
)

func main() {
	flag.Parse()
	logger := logging.New("logfmt", os.Stderr)

	accounts := []domain.Account{
		domain.NewCurrentAccount("C0", "Bench Source", decimal.NewFromInt(1_000_000_000), decimal.Zero),
		domain.NewCurrentAccount("C1", "Bench Target", decimal.Zero, decimal.Zero),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	var ledger usecase.Ledger
	switch *flagLedger {
	case "mutex":
		l, err := memory_adapter.NewMutexLedger(accounts)
		if err != nil {
			logger.Log("msg", "init ledger", "error", err)
			os.Exit(1)
		}
		ledger = l
	case "lmax":
		l, err := memory_adapter.NewLMAXLedger(accounts, *flagConcurrency)
		if err != nil {
			logger.Log("msg", "init ledger", "error", err)
			os.Exit(1)
		}
		l.Start(ctx)
		ledger = l
	default:
		logger.Log("msg", "unknown ledger", "ledger", *flagLedger)
		os.Exit(1)
	}

	totalCount := *flagTotal
	var wg sync.WaitGroup
	wg.Add(totalCount)

	sem := make(chan struct{}, *flagConcurrency)
	amount := decimal.RequireFromString("0.01")

	startTime := time.Now()

	for i := 0; i < totalCount; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			// 每 10 筆有一筆固定金額轉帳，其餘是提款
			tran := &domain.Transaction{
				TransactionID: uuid.New(),
				From:          "C0",
				Amount:        amount,
				CreatedAt:     time.Now().UnixNano(),
				Type:          domain.TransactionTypeWithdraw,
			}
			if idx%10 == 0 {
				tran = domain.NewTransfer(uuid.New(), "C1", "C0", time.Now().UnixNano())
			}

			if err := ledger.PostTransaction(ctx, tran); err != nil && idx%10000 == 0 {
				logger.Log("msg", "transaction failed", "idx", idx, "error", err)
			}
		}(i)
	}

	wg.Wait()

	elapsed := time.Since(startTime)
	fmt.Printf("Completed %d transactions in %v\n", totalCount, elapsed)
	fmt.Printf("TPS: %.2f\n", float64(totalCount)/elapsed.Seconds())

	if snaps, err := ledger.LoadAllAccounts(ctx); err == nil {
		for _, snap := range snaps {
			fmt.Printf("%s balance: %s\n", snap.ID, snap.Balance.StringFixed(2))
		}
	}
}
