// Package report aggregates a transaction list into the totals shown after
// browsing and in the summary view.
package report

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Report summarizes one loaded transaction list.
type Report struct {
	TypeFilter    string
	Count         int
	Total         int64 // signed aggregate for TypeAll, plain sum otherwise
	ByCategory    map[model.Category]int64
	ByExpenseType map[string]int64
	Average       decimal.Decimal // mean transaction amount, 2 decimal places
}

// Build computes a Report over txs. The total follows the same rule as the
// store: plain sum for a specific type filter, income-minus-everything-else
// for TypeAll.
func Build(txs []model.Transaction, typeFilter string) Report {
	r := Report{
		TypeFilter:    typeFilter,
		Count:         len(txs),
		ByCategory:    make(map[model.Category]int64),
		ByExpenseType: make(map[string]int64),
	}

	var sum int64
	for _, tx := range txs {
		sum += tx.Amount
		r.ByCategory[tx.Category] += tx.Amount
		if tx.Category == model.CategoryExpense {
			r.ByExpenseType[tx.ExpenseType] += tx.Amount
		}

		switch {
		case typeFilter != model.TypeAll:
			r.Total += tx.Amount
		case tx.Category == model.CategoryIncome:
			r.Total += tx.Amount
		default:
			r.Total -= tx.Amount
		}
	}

	if r.Count > 0 {
		r.Average = decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(r.Count))).Round(2)
	}
	return r
}

// Share returns the fraction of total expense volume carried by one expense
// type, as a percentage with 1 decimal place.
func (r Report) Share(expenseType string) decimal.Decimal {
	expenses := r.ByCategory[model.CategoryExpense]
	if expenses == 0 {
		return decimal.Zero
	}
	part := decimal.NewFromInt(r.ByExpenseType[expenseType])
	return part.Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(expenses)).Round(1)
}

// FormatAmount renders a whole-unit amount in its currency's display format,
// falling back to "<amount> <code>" for codes go-money does not know.
func FormatAmount(amount int64, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%d %s", amount, code)
	}
	factor := int64(1)
	for range cur.Fraction {
		factor *= 10
	}
	return money.New(amount*factor, code).Display()
}
