package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/backup"
	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	opts := config.Default()
	opts.StoragePath = filepath.Join(t.TempDir(), "finances.csv")
	opts.Backup = false

	log := logrus.New()
	log.SetOutput(io.Discard)

	s, err := Open(opts, log)
	require.NoError(t, err)
	return s
}

func seed(t *testing.T, s *Store, txs ...model.Transaction) {
	t.Helper()
	for _, tx := range txs {
		require.NoError(t, s.Append(tx))
	}
}

func TestOpen_CreatesFileWithHeader(t *testing.T) {
	s := newTestStore(t)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))
}

func TestLoad_TotalsByType(t *testing.T) {
	s := newTestStore(t)
	seed(t, s,
		model.Transaction{Date: "2025-01-10", Category: model.CategoryIncome, Title: "salary", Amount: 100, Currency: "USD"},
		model.Transaction{Date: "2025-01-03", Category: model.CategoryExpense, ExpenseType: "Food", Title: "groceries", Amount: 40, Currency: "USD"},
		model.Transaction{Date: "2025-01-12", Category: model.CategoryLiability, Title: "loan", Amount: 10, Currency: "USD"},
	)

	// All: signed aggregate, income positive, everything else negative.
	all, total, count, err := s.Load(model.TypeAll, OrderNone)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, int64(50), total)
	assert.Equal(t, 3, count)

	// Specific type: plain sum.
	expenses, total, count, err := s.Load("Expense", OrderNone)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "groceries", expenses[0].Title)
	assert.Equal(t, int64(40), total)
	assert.Equal(t, 1, count)
}

func TestLoad_AppliesSortOrder(t *testing.T) {
	s := newTestStore(t)
	seed(t, s,
		model.Transaction{Date: "2025-01-10", Category: model.CategoryIncome, Title: "late", Amount: 1, Currency: "USD"},
		model.Transaction{Date: "2024-01-10", Category: model.CategoryIncome, Title: "early", Amount: 1, Currency: "USD"},
	)

	got, _, _, err := s.Load(model.TypeAll, OrderOldest)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].Title)
}

func appendRaw(t *testing.T, s *Store, line string) {
	t.Helper()
	f, err := os.OpenFile(s.Path(), os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(line + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestLoad_SkipsMalformedAmountRow(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, model.Transaction{Date: "2025-01-10", Category: model.CategoryIncome, Title: "ok", Amount: 10, Currency: "USD"})
	appendRaw(t, s, "2025-01-11|Income||broken|oops|USD|")

	got, total, count, err := s.Load(model.TypeAll, OrderNone)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(10), total)
	assert.Equal(t, 1, count)
}

func TestDelete_RemovesFirstMatchOnly(t *testing.T) {
	s := newTestStore(t)
	dup := model.Transaction{Date: "2025-01-10", Category: model.CategoryIncome, Title: "dup", Amount: 5, Currency: "USD"}
	seed(t, s, dup, dup)

	require.NoError(t, s.Delete(dup))

	got, _, _, err := s.Load(model.TypeAll, OrderNone)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDelete_MissingLeavesStorageUnchanged(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, model.Transaction{Date: "2025-01-10", Category: model.CategoryIncome, Title: "keep", Amount: 5, Currency: "USD"})

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	missing := model.Transaction{Date: "1999-01-01", Category: model.CategoryExpense, ExpenseType: "Food", Title: "ghost", Amount: 1, Currency: "USD"}
	require.NoError(t, s.Delete(missing))

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestDelete_MissingPreservesMalformedRow(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, model.Transaction{Date: "2025-01-10", Category: model.CategoryIncome, Title: "ok", Amount: 10, Currency: "USD"})
	appendRaw(t, s, "2025-01-11|Income||broken|oops|USD|note")

	missing := model.Transaction{Date: "1999-01-01", Category: model.CategoryExpense, ExpenseType: "Food", Title: "ghost", Amount: 1, Currency: "USD"}
	require.NoError(t, s.Delete(missing))

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(after), "2025-01-10|Income||ok|10|USD|")
	assert.Contains(t, string(after), "2025-01-11|Income||broken|oops|USD|note",
		"malformed row survives an unrelated rewrite")
}

func TestEdit_PreservesMalformedRow(t *testing.T) {
	s := newTestStore(t)
	orig := model.Transaction{Date: "2025-01-10", Category: model.CategoryIncome, Title: "pay", Amount: 5, Currency: "USD"}
	seed(t, s, orig)
	appendRaw(t, s, "2025-01-11|Income||broken|oops|USD|note")

	ok, err := s.Edit(orig, func(tx *model.Transaction) bool {
		tx.Amount = 500
		return true
	})
	require.NoError(t, err)
	assert.True(t, ok)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(after), "2025-01-10|Income||pay|500|USD|")
	assert.Contains(t, string(after), "2025-01-11|Income||broken|oops|USD|note",
		"malformed row survives a committed edit")
}

func TestEdit_CommitRewrites(t *testing.T) {
	s := newTestStore(t)
	orig := model.Transaction{Date: "2025-01-10", Category: model.CategoryIncome, Title: "pay", Amount: 5, Currency: "USD"}
	seed(t, s, orig)

	ok, err := s.Edit(orig, func(tx *model.Transaction) bool {
		tx.Amount = 500
		return true
	})
	require.NoError(t, err)
	assert.True(t, ok)

	got, _, _, err := s.Load(model.TypeAll, OrderNone)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(500), got[0].Amount)
}

func TestEdit_CancelledMutationLeavesFileUntouched(t *testing.T) {
	s := newTestStore(t)
	orig := model.Transaction{Date: "2025-01-10", Category: model.CategoryIncome, Title: "pay", Amount: 5, Currency: "USD"}
	seed(t, s, orig)

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	ok, err := s.Edit(orig, func(tx *model.Transaction) bool {
		tx.Amount = 999 // discarded: mutation reports no commit
		return false
	})
	require.NoError(t, err)
	assert.False(t, ok)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestEdit_CategoryChangeKeepsExpenseType(t *testing.T) {
	s := newTestStore(t)
	orig := model.Transaction{Date: "2025-01-10", Category: model.CategoryExpense, ExpenseType: "Food", Title: "lunch", Amount: 12, Currency: "USD"}
	seed(t, s, orig)

	ok, err := s.Edit(orig, func(tx *model.Transaction) bool {
		tx.Category = model.CategoryIncome
		return true
	})
	require.NoError(t, err)
	assert.True(t, ok)

	got, _, _, err := s.Load(model.TypeAll, OrderNone)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.CategoryIncome, got[0].Category)
	assert.Equal(t, "Food", got[0].ExpenseType, "stale expense type survives a category edit")
}

func TestRewrite_BackupSnapshot(t *testing.T) {
	opts := config.Default()
	opts.StoragePath = filepath.Join(t.TempDir(), "finances.csv")
	opts.Backup = true

	log := logrus.New()
	log.SetOutput(io.Discard)

	s, err := Open(opts, log)
	require.NoError(t, err)

	txn := model.Transaction{Date: "2025-01-10", Category: model.CategoryIncome, Title: "pay", Amount: 5, Currency: "USD"}
	seed(t, s, txn)

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	require.NoError(t, s.Delete(txn))

	snap, err := os.ReadFile(s.Path() + backup.Suffix)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(snap), "snapshot holds the pre-delete contents")
}
