package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_ExpenseIncludesType(t *testing.T) {
	tx := Transaction{
		Date:        "2025-03-14",
		Category:    CategoryExpense,
		ExpenseType: "Food",
		Title:       "groceries",
		Amount:      120,
		Currency:    "USD",
		Description: "weekly shop",
	}
	s := tx.String()
	assert.Contains(t, s, "Expense - Food")
	assert.Contains(t, s, "Title: groceries")
	assert.Contains(t, s, "120 USD")
	assert.Contains(t, s, "Description: weekly shop")
}

func TestString_NonExpenseOmitsType(t *testing.T) {
	tx := Transaction{
		Date:        "2025-03-14",
		Category:    CategoryIncome,
		ExpenseType: "Food", // stale, should not render
		Title:       "salary",
		Amount:      5000,
		Currency:    "EUR",
	}
	assert.NotContains(t, tx.String(), " - Food")
}

func TestEqual(t *testing.T) {
	a := Transaction{Date: "2025-01-01", Category: CategoryIncome, Title: "pay", Amount: 10, Currency: "USD"}
	b := a
	assert.True(t, a.Equal(b))

	b.Amount = 11
	assert.False(t, a.Equal(b))
}
