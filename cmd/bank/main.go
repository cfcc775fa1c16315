package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/kit/log"

	console_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/console"
	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/internal/config"
	"github.com/JoeShih716/go-mem-bank/pkg/logging"
)

var flagConfig = flag.String("config", "config/config.yaml", "Path to yaml config")

func main() {
	flag.Parse()

	// 1. 載入設定
	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Logging.Format, os.Stderr)

	if err := run(cfg, logger); err != nil {
		logger.Log("msg", "exit", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. 建立帳戶
	accounts, err := cfg.BuildAccounts()
	if err != nil {
		return err
	}
	logger.Log("msg", "loaded accounts", "count", len(accounts))

	// 3. 初始化 Ledger
	var usedLedger usecase.Ledger
	switch cfg.Ledger.Type {
	case config.LedgerTypeMutex:
		mutexLedger, err := memory_adapter.NewMutexLedger(accounts)
		if err != nil {
			return fmt.Errorf("init MutexLedger: %w", err)
		}
		usedLedger = mutexLedger
	case config.LedgerTypeLMAX:
		lmaxLedger, err := memory_adapter.NewLMAXLedger(accounts, cfg.Ledger.BufferSize)
		if err != nil {
			return fmt.Errorf("init LMAXLedger: %w", err)
		}
		lmaxCtx, cancel := context.WithCancel(context.Background())
		lmaxLedger.Start(lmaxCtx)
		defer func() {
			cancel()
			<-lmaxLedger.Done()
		}()
		usedLedger = lmaxLedger
	default:
		return fmt.Errorf("invalid ledger type: %s", cfg.Ledger.Type)
	}
	logger.Log("msg", "ledger ready", "type", cfg.Ledger.Type)

	// 4. 初始化 UseCase
	coreUseCase := usecase.NewCoreUseCase(usedLedger, log.With(logger, "component", "core"))

	// 5. 初始化 Console Adapter (Driving Adapter)
	opts, err := cfg.Report.Options()
	if err != nil {
		return err
	}
	runner := console_adapter.NewRunner(
		coreUseCase,
		console_adapter.NewReporter(opts),
		os.Stdout,
		log.With(logger, "component", "console"),
	)

	// 6. 執行腳本
	return runner.Run(ctx, cfg.Scenario)
}
