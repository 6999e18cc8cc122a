package store

import (
	"slices"
	"sort"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Order names a sort applied to a filtered transaction list.
type Order string

const (
	OrderNone            Order = "None"
	OrderNewest          Order = "Newest"
	OrderOldest          Order = "Oldest"
	OrderAmountIncreases Order = "Amount Increases"
	OrderAmountDecreases Order = "Amount Decreases"
	OrderExpenseType     Order = "Expense Type"
)

// Orders lists the selectable sort orders, OrderNone excluded.
var Orders = []Order{
	OrderNewest,
	OrderOldest,
	OrderAmountIncreases,
	OrderAmountDecreases,
	OrderExpenseType,
}

// Sort returns a sorted copy of txs. OrderNone and unrecognized orders return
// the input in file order. Sorts are stable, so file order is always the
// tie-break of last resort. Dates compare lexically, which for the YYYY-MM-DD
// storage layout is chronological order.
func Sort(txs []model.Transaction, order Order) []model.Transaction {
	out := slices.Clone(txs)

	switch order {
	case OrderNewest:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Date != out[j].Date {
				return out[i].Date > out[j].Date
			}
			return out[i].Amount > out[j].Amount
		})
	case OrderOldest:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Date != out[j].Date {
				return out[i].Date < out[j].Date
			}
			return out[i].Amount < out[j].Amount
		})
	case OrderAmountIncreases:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Amount != out[j].Amount {
				return out[i].Amount < out[j].Amount
			}
			return out[i].Date < out[j].Date
		})
	case OrderAmountDecreases:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Amount != out[j].Amount {
				return out[i].Amount > out[j].Amount
			}
			return out[i].Date > out[j].Date
		})
	case OrderExpenseType:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].ExpenseType != out[j].ExpenseType {
				return out[i].ExpenseType < out[j].ExpenseType
			}
			if out[i].Date != out[j].Date {
				return out[i].Date < out[j].Date
			}
			return out[i].Amount < out[j].Amount
		})
	}
	return out
}
