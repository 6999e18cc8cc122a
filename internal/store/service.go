package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/fintrack-dev/fintrack/internal/backup"
	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/model"
)

// Store manages the flat pipe-delimited storage file. Every read opens and
// closes the file immediately; every mutation rewrites it whole.
type Store struct {
	opts config.Options
	log  *logrus.Logger
}

// Open creates a Store, writing a fresh storage file with only the header row
// if none exists yet.
func Open(opts config.Options, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Store{opts: opts, log: log}

	if _, err := os.Stat(opts.StoragePath); errors.Is(err, fs.ErrNotExist) {
		if err := s.rewrite(nil, nil); err != nil {
			return nil, fmt.Errorf("creating storage file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking storage file: %w", err)
	}
	return s, nil
}

// Path returns the storage file location.
func (s *Store) Path() string { return s.opts.StoragePath }

// Load reads the whole storage file and returns the transactions whose
// category matches typeFilter (or all of them for model.TypeAll), sorted by
// order, together with the aggregate total and the match count.
//
// For a specific category the total is the plain sum of amounts. For TypeAll
// it is the signed aggregate: income counts positive, everything else
// negative.
func (s *Store) Load(typeFilter string, order Order) ([]model.Transaction, int64, int, error) {
	all, _, err := s.readAll()
	if err != nil {
		return nil, 0, 0, err
	}

	var matches []model.Transaction
	var total int64
	for _, tx := range all {
		if typeFilter != model.TypeAll && string(tx.Category) != typeFilter {
			continue
		}
		matches = append(matches, tx)
		switch {
		case typeFilter != model.TypeAll:
			total += tx.Amount
		case tx.Category == model.CategoryIncome:
			total += tx.Amount
		default:
			total -= tx.Amount
		}
	}

	matches = Sort(matches, order)
	return matches, total, len(matches), nil
}

// Append adds one transaction to the end of the storage file.
func (s *Store) Append(tx model.Transaction) error {
	f, err := os.OpenFile(s.opts.StoragePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening storage file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("checking storage file: %w", err)
	}
	if info.Size() == 0 {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, []model.Transaction{tx}); err != nil {
		return fmt.Errorf("appending transaction: %w", err)
	}
	return nil
}

// Delete removes the first transaction structurally equal to tx and rewrites
// the storage file. A transaction not present in storage still rewrites the
// unchanged set and reports success; duplicate rows are indistinguishable and
// only the first is removed.
func (s *Store) Delete(tx model.Transaction) error {
	all, skipped, err := s.readAll()
	if err != nil {
		return err
	}

	for i, candidate := range all {
		if candidate.Equal(tx) {
			all = append(all[:i], all[i+1:]...)
			break
		}
	}

	if err := s.rewrite(all, skipped); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	return nil
}

// Edit locates the first transaction structurally equal to tx and applies
// mutate to it. If mutate reports that the change committed, the storage file
// is rewritten and Edit returns true; otherwise the file is left untouched.
func (s *Store) Edit(tx model.Transaction, mutate func(*model.Transaction) bool) (bool, error) {
	all, skipped, err := s.readAll()
	if err != nil {
		return false, err
	}

	edited := false
	for i := range all {
		if all[i].Equal(tx) {
			edited = mutate(&all[i])
			break
		}
	}
	if !edited {
		return false, nil
	}

	if err := s.rewrite(all, skipped); err != nil {
		return false, fmt.Errorf("editing transaction: %w", err)
	}
	return true, nil
}

// readAll loads the full transaction set. Rows with a malformed amount are
// logged and returned separately so rewrites can carry them through
// unchanged.
func (s *Store) readAll() ([]model.Transaction, []RowError, error) {
	f, err := os.Open(s.opts.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening storage file: %w", err)
	}
	defer f.Close()

	txs, skipped, err := ReadTransactions(f)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", s.opts.StoragePath, err)
	}
	for _, re := range skipped {
		s.log.WithError(re.Err).WithField("line", re.Line).Warn("skipping malformed storage row")
	}
	return txs, skipped, nil
}

// rewrite serializes the full set back over the storage file, snapshotting
// the previous contents first when backups are enabled. Skipped rows are
// re-emitted verbatim after the valid set.
func (s *Store) rewrite(txs []model.Transaction, skipped []RowError) error {
	if s.opts.Backup {
		if err := backup.Snapshot(s.opts.StoragePath); err != nil {
			return fmt.Errorf("backing up storage file: %w", err)
		}
	}

	f, err := os.Create(s.opts.StoragePath)
	if err != nil {
		return fmt.Errorf("creating storage file: %w", err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txs); err != nil {
		return fmt.Errorf("rewriting storage file: %w", err)
	}
	if err := AppendRecords(f, skipped); err != nil {
		return fmt.Errorf("rewriting skipped rows: %w", err)
	}
	return nil
}
