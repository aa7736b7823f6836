package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/auditlens-dev/auditlens/internal/model"
)

// Config is the top-level auditlens.yaml configuration: the keyword lexicons
// driving header location and classification, plus reconciliation thresholds.
// Lexicons are plain configuration data passed into the classifiers; the
// engine holds no built-in vocabulary of its own.
type Config struct {
	Header     HeaderConfig    `yaml:"header"`
	Roles      []RoleRule      `yaml:"roles"`
	Categories []CategoryRule  `yaml:"categories"`
	Reconcile  ReconcileConfig `yaml:"reconcile"`
}

// HeaderStrategy selects how the header row is chosen within the scan window.
type HeaderStrategy string

const (
	// StrategyFirstThreshold returns the first row reaching min_matches.
	StrategyFirstThreshold HeaderStrategy = "first-threshold"
	// StrategyBestOfWindow scans the whole window and returns the best row,
	// ties broken by smallest index.
	StrategyBestOfWindow HeaderStrategy = "best-of-window"
)

// HeaderConfig controls the header locator.
type HeaderConfig struct {
	Keywords   []string       `yaml:"keywords"`
	Window     int            `yaml:"window"`
	MinMatches int            `yaml:"min_matches"`
	Strategy   HeaderStrategy `yaml:"strategy"`
}

// RoleRule assigns a column role when a label contains any listed substring
// or ends with any listed suffix. Rule order is the match order and is part
// of the classification contract: a label matching both "debit" and "desc"
// is Debit because the debit rule runs first.
type RoleRule struct {
	Role     model.ColumnRole `yaml:"role"`
	Contains []string         `yaml:"contains,omitempty"`
	Suffixes []string         `yaml:"suffixes,omitempty"`
}

// CategoryRule maps description keywords to an accounting category. Rules
// are tested in order; the first matching set wins.
type CategoryRule struct {
	Category model.Category `yaml:"category"`
	Keywords []string       `yaml:"keywords"`
}

// ReconcileConfig holds reconciliation and forensic thresholds.
type ReconcileConfig struct {
	// Tolerance is absolute currency units, not a percentage.
	Tolerance float64 `yaml:"tolerance"`
	// ZScoreThreshold flags statistical outliers beyond this many sigmas.
	ZScoreThreshold float64 `yaml:"zscore_threshold"`
	// CheckMissingHeight enables the optional geo completeness check.
	CheckMissingHeight bool `yaml:"check_missing_height"`
}

// Load reads an auditlens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// applyDefaults fills zero-valued thresholds so a partial config file still
// yields a working engine.
func (c *Config) applyDefaults() {
	d := Default()
	if len(c.Header.Keywords) == 0 {
		c.Header.Keywords = d.Header.Keywords
	}
	if c.Header.Window <= 0 {
		c.Header.Window = d.Header.Window
	}
	if c.Header.MinMatches <= 0 {
		c.Header.MinMatches = d.Header.MinMatches
	}
	if c.Header.Strategy == "" {
		c.Header.Strategy = d.Header.Strategy
	}
	if len(c.Roles) == 0 {
		c.Roles = d.Roles
	}
	if len(c.Categories) == 0 {
		c.Categories = d.Categories
	}
	if c.Reconcile.Tolerance <= 0 {
		c.Reconcile.Tolerance = d.Reconcile.Tolerance
	}
	if c.Reconcile.ZScoreThreshold <= 0 {
		c.Reconcile.ZScoreThreshold = d.Reconcile.ZScoreThreshold
	}
}

// Default returns the built-in lexicons and thresholds.
func Default() *Config {
	return &Config{
		Header: HeaderConfig{
			Keywords: []string{
				"particulars", "description", "account", "ledger",
				"debit", "credit", "amount", "balance", "date",
				"opening", "closing",
			},
			Window:     20,
			MinMatches: 2,
			Strategy:   StrategyFirstThreshold,
		},
		Roles: []RoleRule{
			{Role: model.RoleDebit, Contains: []string{"debit"}, Suffixes: []string{"dr"}},
			{Role: model.RoleCredit, Contains: []string{"credit"}, Suffixes: []string{"cr"}},
			{Role: model.RoleDescription, Contains: []string{"desc", "particulars", "account", "ledger"}},
			{Role: model.RoleDate, Contains: []string{"date"}},
			{Role: model.RoleLatitude, Contains: []string{"lat"}},
			{Role: model.RoleLongitude, Contains: []string{"lon"}},
			{Role: model.RoleHeight, Contains: []string{"height", "elev", "floor"}},
			{Role: model.RoleAmount, Contains: []string{"amount", "value"}},
		},
		Categories: []CategoryRule{
			// Liability terms are tested before asset terms: words like
			// "loan" co-occur with asset-adjacent text, and liability
			// framing must dominate.
			{Category: model.CategoryLiability, Keywords: []string{
				"capital", "reserve", "loan", "creditor", "payable",
				"provision", "borrowing",
			}},
			{Category: model.CategoryAsset, Keywords: []string{
				"asset", "plant", "machinery", "building", "cash", "bank",
				"receivable", "debtor", "stock", "inventory",
			}},
			{Category: model.CategoryExpense, Keywords: []string{
				"salary", "wage", "expense", "consumption", "purchase",
				"rent", "tax", "interest paid",
			}},
			{Category: model.CategoryIncome, Keywords: []string{
				"sales", "turnover", "income", "revenue", "gain",
				"interest received",
			}},
		},
		Reconcile: ReconcileConfig{
			Tolerance:       0.01,
			ZScoreThreshold: 2.0,
		},
	}
}
