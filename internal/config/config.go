// Package config reads and writes myfi.yaml.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/myfi-dev/myfi/internal/budget"
	"github.com/myfi-dev/myfi/internal/recur"
)

// Config represents the top-level myfi.yaml configuration. Monetary rates
// and amounts are decimal strings so nothing passes through binary floats.
type Config struct {
	Household HouseholdConfig  `yaml:"household"`
	Fiscal    FiscalConfig     `yaml:"fiscal"`
	Rates     RatesConfig      `yaml:"rates"`
	Budget    BudgetConfig     `yaml:"budget"`
	Paychecks []PaycheckConfig `yaml:"paychecks,omitempty"`
	Missions  []MissionConfig  `yaml:"missions,omitempty"`
	Savings   []SavingsConfig  `yaml:"savings,omitempty"`
}

// HouseholdConfig identifies the household.
type HouseholdConfig struct {
	Name string `yaml:"name"`
}

// FiscalConfig defines the fiscal year boundary.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// RatesConfig holds the paycheck withholding and tithe rates.
type RatesConfig struct {
	Federal  string `yaml:"federal"`
	FICA     string `yaml:"fica"`
	Medicare string `yaml:"medicare"`
	Tithe    string `yaml:"tithe"`
}

// BudgetConfig holds the cash-sweep targets.
type BudgetConfig struct {
	EmergencyTarget string `yaml:"emergency_target"`
	GivingRate      string `yaml:"giving_rate"`
	LivingRate      string `yaml:"living_rate"`
}

// PaycheckConfig describes one recurring paycheck.
type PaycheckConfig struct {
	Source  string `yaml:"source"`
	Hours   string `yaml:"hours"`
	Rate    string `yaml:"rate"`
	Weekday string `yaml:"weekday"` // e.g. "TH"
	Start   string `yaml:"start"`   // "2006-01-02"
	Until   string `yaml:"until,omitempty"`
}

// MissionConfig describes one recurring pledge payment.
type MissionConfig struct {
	Amount string `yaml:"amount"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Start  string `yaml:"start"`
	Months int    `yaml:"months"` // occurrence count
}

// SavingsConfig describes one monthly interest accrual.
type SavingsConfig struct {
	Source     string `yaml:"source"` // interest income account
	Dest       string `yaml:"dest"`
	AnnualRate string `yaml:"annual_rate"`
}

// Load reads a myfi.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
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

// Default returns a Config with the standard household policy.
func Default(name string) *Config {
	return &Config{
		Household: HouseholdConfig{Name: name},
		Fiscal:    FiscalConfig{YearStart: "01-01"},
		Rates: RatesConfig{
			Federal:  "0.1",
			FICA:     "0.062",
			Medicare: "0.0145",
			Tithe:    "0.1",
		},
		Budget: BudgetConfig{
			EmergencyTarget: "1000.00",
			GivingRate:      "0.1",
			LivingRate:      "0.3",
		},
	}
}

// PayRates converts the configured rates.
func (r RatesConfig) PayRates() (recur.PayRates, error) {
	var (
		rates recur.PayRates
		err   error
	)
	if rates.Federal, err = parseRate("federal", r.Federal); err != nil {
		return recur.PayRates{}, err
	}
	if rates.FICA, err = parseRate("fica", r.FICA); err != nil {
		return recur.PayRates{}, err
	}
	if rates.Medicare, err = parseRate("medicare", r.Medicare); err != nil {
		return recur.PayRates{}, err
	}
	if rates.Tithe, err = parseRate("tithe", r.Tithe); err != nil {
		return recur.PayRates{}, err
	}
	return rates, nil
}

// SweepConfig converts the configured budget targets.
func (b BudgetConfig) SweepConfig() (budget.SweepConfig, error) {
	var (
		cfg budget.SweepConfig
		err error
	)
	if cfg.EmergencyTarget, err = parseRate("emergency_target", b.EmergencyTarget); err != nil {
		return budget.SweepConfig{}, err
	}
	if cfg.GivingRate, err = parseRate("giving_rate", b.GivingRate); err != nil {
		return budget.SweepConfig{}, err
	}
	if cfg.LivingRate, err = parseRate("living_rate", b.LivingRate); err != nil {
		return budget.SweepConfig{}, err
	}
	return cfg, nil
}

func parseRate(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, value, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative, got %s", field, value)
	}
	return d, nil
}
