package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/console"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// LedgerType 設定使用哪種 Ledger
type LedgerType string

const (
	LedgerTypeMutex LedgerType = "mutex"
	LedgerTypeLMAX  LedgerType = "lmax"
)

// Config 程式設定
type Config struct {
	Logging  Logging        `yaml:"logging"`
	Ledger   Ledger         `yaml:"ledger"`
	Report   Report         `yaml:"report"`
	Accounts []Account      `yaml:"accounts"`
	Scenario []console.Step `yaml:"scenario"`
}

type Logging struct {
	Format string `yaml:"format"` // logfmt 或 json
}

type Ledger struct {
	Type       LedgerType `yaml:"type"`
	BufferSize int        `yaml:"buffer_size"` // 只有 lmax 使用
}

type Report struct {
	Currency string `yaml:"currency"` // ISO 4217
	Symbol   string `yaml:"symbol"`
}

// Account 初始帳戶設定，金額以字串表示避免浮點誤差
type Account struct {
	Type           string `yaml:"type"` // basic / savings / current
	ID             string `yaml:"id"`
	Holder         string `yaml:"holder"`
	Balance        string `yaml:"balance"`
	InterestRate   string `yaml:"interest_rate,omitempty"`
	OverdraftLimit string `yaml:"overdraft_limit,omitempty"`
}

// Default 沒有設定檔時使用的設定 (John Doe 儲蓄帳戶 + Jane Doe 活存帳戶)
func Default() *Config {
	cfg := &Config{
		Accounts: []Account{
			{Type: "savings", ID: "S123", Holder: "John Doe", Balance: "1000", InterestRate: "0.02"},
			{Type: "current", ID: "C456", Holder: "Jane Doe", Balance: "2000", OverdraftLimit: "500"},
		},
		Scenario: console.ReferenceScenario("S123", "C456"),
	}
	cfg.setDefaults()
	return cfg
}

// Load 讀取設定檔，path 不存在時回傳 Default()
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Read(data)
}

// Read 解析 yaml 設定並檢查
func Read(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// 補全預設配置 (如果 yaml 沒寫)
func (cfg *Config) setDefaults() {
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "logfmt"
	}
	if cfg.Ledger.Type == "" {
		cfg.Ledger.Type = LedgerTypeMutex
	}
	if cfg.Ledger.BufferSize == 0 {
		cfg.Ledger.BufferSize = 1000
	}
	if cfg.Report.Currency == "" {
		cfg.Report.Currency = "USD"
	}
	if cfg.Report.Symbol == "" {
		cfg.Report.Symbol = "$"
	}
}

// Validate 檢查設定內容
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.New("missing Config")
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "logfmt", "json":
	default:
		return fmt.Errorf("logging: unknown format %q", cfg.Logging.Format)
	}
	switch cfg.Ledger.Type {
	case LedgerTypeMutex, LedgerTypeLMAX:
	default:
		return fmt.Errorf("ledger: unknown type %q", cfg.Ledger.Type)
	}
	if cfg.Ledger.BufferSize < 0 {
		return fmt.Errorf("ledger: negative buffer_size %d", cfg.Ledger.BufferSize)
	}
	if _, err := cfg.Report.Options(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	seen := make(map[string]bool, len(cfg.Accounts))
	for i, acc := range cfg.Accounts {
		if _, err := acc.Build(); err != nil {
			return fmt.Errorf("accounts[%d]: %w", i, err)
		}
		if seen[acc.ID] {
			return fmt.Errorf("accounts[%d]: duplicate id %s", i, acc.ID)
		}
		seen[acc.ID] = true
	}
	for i, step := range cfg.Scenario {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("scenario[%d]: %w", i, err)
		}
	}
	return nil
}

// Options 報表格式
func (r Report) Options() (console.Options, error) {
	return console.OptionsForCurrency(r.Currency, r.Symbol)
}

// BuildAccounts 建立所有初始帳戶
func (cfg *Config) BuildAccounts() ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(cfg.Accounts))
	for i, acc := range cfg.Accounts {
		a, err := acc.Build()
		if err != nil {
			return nil, fmt.Errorf("accounts[%d]: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Build 依類型建立 domain.Account
func (a Account) Build() (domain.Account, error) {
	if a.ID == "" {
		return nil, errors.New("missing id")
	}
	balance, err := parseDecimal("balance", a.Balance)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(a.Type) {
	case "", "basic":
		return domain.NewAccount(a.ID, a.Holder, balance), nil
	case "savings":
		rate, err := parseNonNegative("interest_rate", a.InterestRate)
		if err != nil {
			return nil, err
		}
		return domain.NewSavingsAccount(a.ID, a.Holder, balance, rate), nil
	case "current":
		limit, err := parseNonNegative("overdraft_limit", a.OverdraftLimit)
		if err != nil {
			return nil, err
		}
		return domain.NewCurrentAccount(a.ID, a.Holder, balance, limit), nil
	default:
		return nil, fmt.Errorf("unknown account type %q", a.Type)
	}
}

func parseDecimal(field, v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	out, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", field, err)
	}
	return out, nil
}

func parseNonNegative(field, v string) (decimal.Decimal, error) {
	out, err := parseDecimal(field, v)
	if err != nil {
		return out, err
	}
	if out.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s: must not be negative", field)
	}
	return out, nil
}
