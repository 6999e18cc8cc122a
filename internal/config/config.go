package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"
)

// Options is the immutable tracker configuration. It is built once at startup
// and passed by value into the store and presentation layers; nothing mutates
// it afterwards.
type Options struct {
	StoragePath  string   `yaml:"storage_path"`
	Categories   []string `yaml:"categories"`
	ExpenseTypes []string `yaml:"expense_types"`
	Currencies   []string `yaml:"currencies"`
	Limits       Limits   `yaml:"limits"`
	Backup       bool     `yaml:"backup"`
	AuditLog     bool     `yaml:"audit_log"`
}

// Limits bounds the freeform transaction fields.
type Limits struct {
	Category     int `yaml:"category"`
	Title        int `yaml:"title"`
	AmountDigits int `yaml:"amount_digits"`
	Description  int `yaml:"description"`
}

// Default returns the stock configuration.
func Default() Options {
	return Options{
		StoragePath: "finances.csv",
		Categories:  []string{"Income", "Expense", "Liability"},
		ExpenseTypes: []string{
			"Housing", "Transportation", "Food", "Utilities", "Insurance",
			"Healthcare", "Financial Operations", "Personal Spending", "Other",
		},
		Currencies: []string{"USD", "EUR", "CNY", "JPY", "RUB", "HKD"},
		Limits: Limits{
			Category:     20,
			Title:        30,
			AmountDigits: 10,
			Description:  200,
		},
		Backup:   true,
		AuditLog: true,
	}
}

// Load reads an optional fintrack.yaml, overlaying it onto the defaults.
// A missing file yields the defaults unchanged.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return Options{}, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return opts, nil
}

// Save writes Options to a YAML file.
func Save(path string, opts Options) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate rejects empty enum sets, over-long category names and currency
// codes unknown to go-money.
func (o Options) Validate() error {
	if o.StoragePath == "" {
		return errors.New("storage_path must not be empty")
	}
	if len(o.Categories) == 0 {
		return errors.New("categories must not be empty")
	}
	for _, c := range o.Categories {
		if len(c) > o.Limits.Category {
			return fmt.Errorf("category %q longer than %d characters", c, o.Limits.Category)
		}
	}
	if len(o.ExpenseTypes) == 0 {
		return errors.New("expense_types must not be empty")
	}
	if len(o.Currencies) == 0 {
		return errors.New("currencies must not be empty")
	}
	for _, code := range o.Currencies {
		if money.GetCurrency(code) == nil {
			return fmt.Errorf("unknown currency code %q", code)
		}
	}
	return nil
}
