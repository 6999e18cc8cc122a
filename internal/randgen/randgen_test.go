package randgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func TestTransaction_AlwaysValid(t *testing.T) {
	opts := config.Default()
	gen := New(opts, time.Date(2025, time.August, 26, 12, 0, 0, 0, time.UTC))

	for range 100 {
		tx := gen.Transaction()
		assert.Empty(t, store.ValidateTransaction(tx, opts), "generated transaction failed validation: %s", tx)
		assert.GreaterOrEqual(t, tx.Amount, int64(100))
		assert.LessOrEqual(t, tx.Amount, int64(10000))
	}
}

func TestTransaction_ExpenseTypeOnlyForExpenses(t *testing.T) {
	gen := New(config.Default(), time.Date(2025, time.August, 26, 12, 0, 0, 0, time.UTC))

	for range 100 {
		tx := gen.Transaction()
		if tx.Category == model.CategoryExpense {
			assert.NotEmpty(t, tx.ExpenseType)
		} else {
			assert.Empty(t, tx.ExpenseType)
		}
	}
}
