// Package randgen fills transactions with random values, backing the
// debug-only "Add Random Transaction" menu entry.
package randgen

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/model"
)

var titles = []string{"apple", "banana", "cherry"}

// Generator produces random transactions valid under a given configuration.
type Generator struct {
	opts config.Options
	now  time.Time
	rand *rand.Rand
}

// New creates a Generator seeded from now.
func New(opts config.Options, now time.Time) *Generator {
	return &Generator{
		opts: opts,
		now:  now,
		rand: rand.New(rand.NewPCG(uint64(now.UnixNano()), 0)),
	}
}

// Transaction returns one random transaction: a date within the last five
// years, a random category (with expense type when the category is Expense),
// and an amount between 100 and 10000 USD.
func (g *Generator) Transaction() model.Transaction {
	tx := model.Transaction{
		Date:        g.date(),
		Category:    model.Category(pick(g.rand, g.opts.Categories)),
		Title:       pick(g.rand, titles),
		Amount:      int64(100 + g.rand.IntN(9901)),
		Currency:    "USD",
		Description: "some description",
	}
	if tx.Category == model.CategoryExpense {
		tx.ExpenseType = pick(g.rand, g.opts.ExpenseTypes)
	}
	return tx
}

func (g *Generator) date() string {
	year := g.now.Year() - 5 + g.rand.IntN(5)
	month := 1 + g.rand.IntN(9)
	day := 10 + g.rand.IntN(19)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func pick(r *rand.Rand, options []string) string {
	return options[r.IntN(len(options))]
}
