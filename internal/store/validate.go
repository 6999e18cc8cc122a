package store

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/model"
)

// FieldError describes a single constraint violation on a transaction field.
type FieldError struct {
	Field       model.Field
	Description string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// ValidateTransaction checks a newly created transaction against the
// configured enums and limits. Edited transactions are exempt: editing the
// category away from Expense leaves a stale expense type behind, which this
// would reject.
func ValidateTransaction(tx model.Transaction, opts config.Options) []FieldError {
	var errs []FieldError

	if _, err := time.Parse(model.DateFormat, tx.Date); err != nil {
		errs = append(errs, FieldError{model.FieldDate, fmt.Sprintf("%q is not a YYYY-MM-DD date", tx.Date)})
	}

	if !slices.Contains(opts.Categories, string(tx.Category)) {
		errs = append(errs, FieldError{model.FieldCategory, fmt.Sprintf("unknown category %q", tx.Category)})
	}

	if tx.Category == model.CategoryExpense {
		if !slices.Contains(opts.ExpenseTypes, tx.ExpenseType) {
			errs = append(errs, FieldError{model.FieldExpenseType, fmt.Sprintf("unknown expense type %q", tx.ExpenseType)})
		}
	} else if tx.ExpenseType != "" {
		errs = append(errs, FieldError{model.FieldExpenseType, "set on a non-expense transaction"})
	}

	if len(tx.Title) > opts.Limits.Title {
		errs = append(errs, FieldError{model.FieldTitle, fmt.Sprintf("longer than %d characters", opts.Limits.Title)})
	}

	if tx.Amount < 0 {
		errs = append(errs, FieldError{model.FieldAmount, "must not be negative"})
	} else if len(strconv.FormatInt(tx.Amount, 10)) > opts.Limits.AmountDigits {
		errs = append(errs, FieldError{model.FieldAmount, fmt.Sprintf("longer than %d digits", opts.Limits.AmountDigits)})
	}

	if !slices.Contains(opts.Currencies, tx.Currency) {
		errs = append(errs, FieldError{model.FieldCurrency, fmt.Sprintf("unknown currency %q", tx.Currency)})
	}

	if len(tx.Description) > opts.Limits.Description {
		errs = append(errs, FieldError{model.FieldDescription, fmt.Sprintf("longer than %d characters", opts.Limits.Description)})
	}

	return errs
}
