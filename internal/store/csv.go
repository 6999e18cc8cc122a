package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Header is the header row of the storage file.
const Header = "date|category|expense_type|title|amount|currency|description"

// Delimiter separates fields within a storage row.
const Delimiter = '|'

const (
	numFields   = 7
	colDate     = 0
	colCategory = 1
	colExpType  = 2
	colTitle    = 3
	colAmount   = 4
	colCurrency = 5
	colDesc     = 6
)

// ErrBadAmount marks a row whose amount field is not an integer. Rows failing
// this way are recoverable: the load skips them instead of aborting.
var ErrBadAmount = errors.New("malformed amount")

// RowError reports a recoverable parse failure on one storage row. Record
// holds the raw fields so rewrites can carry the row through unchanged.
type RowError struct {
	Line   int
	Record []string
	Err    error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// ReadTransactions reads all rows from a storage reader. Rows with a
// malformed amount are returned as RowErrors and excluded from the result;
// structurally broken rows (wrong field count, unreadable input) abort the
// read.
func ReadTransactions(r io.Reader) ([]model.Transaction, []RowError, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading storage file: %w", err)
	}

	if len(records) == 0 {
		return nil, nil, nil
	}

	// Skip header row.
	var txs []model.Transaction
	var skipped []RowError
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if errors.Is(err, ErrBadAmount) {
			skipped = append(skipped, RowError{Line: i + 2, Record: rec, Err: err})
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, skipped, nil
}

// WriteTransactions writes the header and all rows to a storage writer.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, "|")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions writes rows without a header, for appending to an
// existing storage file.
func AppendTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	defer cw.Flush()

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// AppendRecords writes the raw records of skipped rows without
// re-marshalling, so a rewrite does not drop rows the codec could not type.
func AppendRecords(w io.Writer, rows []RowError) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	defer cw.Flush()

	for _, row := range rows {
		if err := cw.Write(row.Record); err != nil {
			return fmt.Errorf("writing row %d: %w", row.Line, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a storage row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date
	row[colCategory] = string(tx.Category)
	row[colExpType] = tx.ExpenseType
	row[colTitle] = tx.Title
	row[colAmount] = strconv.FormatInt(tx.Amount, 10)
	row[colCurrency] = tx.Currency
	row[colDesc] = tx.Description
	return row
}

// UnmarshalTransaction converts a storage row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := strconv.ParseInt(record[colAmount], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrBadAmount, record[colAmount])
	}

	return model.Transaction{
		Date:        record[colDate],
		Category:    model.Category(record[colCategory]),
		ExpenseType: record[colExpType],
		Title:       record[colTitle],
		Amount:      amount,
		Currency:    record[colCurrency],
		Description: record[colDesc],
	}, nil
}
