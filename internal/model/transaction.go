package model

import (
	"fmt"
)

// Category is the top-level classification of a transaction.
type Category string

const (
	CategoryIncome    Category = "Income"
	CategoryExpense   Category = "Expense"
	CategoryLiability Category = "Liability"
)

// TypeAll is the pseudo-category that matches every transaction when listing.
const TypeAll = "All"

// DateFormat is the storage layout for transaction dates.
const DateFormat = "2006-01-02"

// Display column widths, mirroring the storage field limits.
const (
	categoryWidth = 27 // category plus " - <expense type>" suffix
	titleWidth    = 30
	amountWidth   = 10
)

// Transaction is one recorded financial event (a row in the storage file).
type Transaction struct {
	Date        string // YYYY-MM-DD
	Category    Category
	ExpenseType string // only set when Category is Expense
	Title       string
	Amount      int64 // non-negative, whole currency units
	Currency    string
	Description string
}

// Equal reports full-field structural equality. Transactions carry no
// synthetic identifier, so this is also how delete/edit locate a row;
// duplicate rows are indistinguishable and the first match wins.
func (t Transaction) Equal(other Transaction) bool {
	return t == other
}

// String renders a transaction as a fixed-width console line.
func (t Transaction) String() string {
	category := string(t.Category)
	if t.Category == CategoryExpense && t.ExpenseType != "" {
		category += " - " + t.ExpenseType
	}
	return fmt.Sprintf("%-10s | %-*s | Title: %-*s | %*d %s | Description: %s",
		t.Date, categoryWidth, category, titleWidth, t.Title, amountWidth, t.Amount, t.Currency, t.Description)
}
