package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fintrack-dev/fintrack/internal/auditlog"
	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/datepick"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/randgen"
	"github.com/fintrack-dev/fintrack/internal/report"
	"github.com/fintrack-dev/fintrack/internal/store"
)

// AppParams holds the collaborators for an App.
type AppParams struct {
	Options config.Options
	Store   *store.Store
	Prompt  Prompter
	Log     *logrus.Logger
	Debug   bool
	Out     io.Writer        // defaults to os.Stdout
	Now     func() time.Time // defaults to time.Now
}

// App drives the interactive menu loop. Navigation is decided by the pure
// Transition function; App owns all prompting, printing and storage calls.
type App struct {
	opts   config.Options
	store  *store.Store
	prompt Prompter
	gen    *randgen.Generator
	log    *logrus.Logger
	out    io.Writer
	now    func() time.Time
	debug  bool
}

// NewApp creates an App.
func NewApp(p AppParams) *App {
	if p.Out == nil {
		p.Out = os.Stdout
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.Log == nil {
		p.Log = logrus.StandardLogger()
	}
	return &App{
		opts:   p.Options,
		store:  p.Store,
		prompt: p.Prompt,
		gen:    randgen.New(p.Options, p.Now()),
		log:    p.Log,
		out:    p.Out,
		now:    p.Now,
		debug:  p.Debug,
	}
}

// Run loops through the menu graph until the user exits. Only prompt
// failures and storage load errors abort the loop; mutation failures are
// reported on the console and the loop continues.
func (a *App) Run() error {
	state := State{Screen: ScreenMain}
	for state.Screen != ScreenExit {
		next, err := a.step(state)
		if err != nil {
			return err
		}
		state = next
	}
	fmt.Fprintln(a.out, "Goodbye!")
	return nil
}

// step performs the I/O for the current screen and returns the next state.
func (a *App) step(s State) (State, error) {
	switch s.Screen {
	case ScreenMain:
		choice, ok, err := a.prompt.Select("What do you want to do?", MainOptions(a.debug), "")
		if err != nil {
			return s, err
		}
		if !ok {
			return s, nil
		}
		return Transition(s, choice), nil

	case ScreenAdd:
		return Transition(s, ""), a.addTransaction()

	case ScreenRandom:
		return Transition(s, ""), a.addRandom()

	case ScreenSummary:
		return Transition(s, ""), a.showSummary()

	case ScreenAbout:
		fmt.Fprintln(a.out, aboutText)
		a.pause()
		return Transition(s, ""), nil

	case ScreenCategory:
		title := fmt.Sprintf("What category of transactions do you want to %s?", s.Mode)
		choice, ok, err := a.prompt.Select(title, CategoryOptions(a.opts.Categories), "")
		if err != nil {
			return s, err
		}
		if !ok {
			choice = ""
		}
		return Transition(s, choice), nil

	case ScreenFilter:
		choice, ok, err := a.prompt.Select("Choose a filter for your transactions:", FilterOptions(s.Type), string(store.OrderNone))
		if err != nil {
			return s, err
		}
		if !ok {
			choice = ""
		}
		return Transition(s, choice), nil

	case ScreenList:
		return Transition(s, ""), a.browse(s)
	}
	return s, nil
}

// addTransaction runs the interactive add flow. Cancelling the date pick or
// any field prompt leaves storage untouched.
func (a *App) addTransaction() error {
	date, ok, err := datepick.Select(a.now(), a.prompt)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Not saved")
		return nil
	}
	fmt.Fprintf(a.out, "Adding a transaction of %s\n", date)

	tx, ok, err := a.fill(date)
	if errors.Is(err, ErrCancelled) {
		fmt.Fprintln(a.out, "Not saved")
		return nil
	}
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Not saved")
		return nil
	}

	if errs := store.ValidateTransaction(tx, a.opts); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(a.out, "Invalid transaction:", e)
		}
		fmt.Fprintln(a.out, "Not saved")
		return nil
	}

	confirm, err := a.prompt.Confirm("Confirm saving the transaction?", true)
	if err != nil {
		return err
	}
	if !confirm {
		fmt.Fprintln(a.out, "Not saved")
		return nil
	}
	a.save(tx)
	return nil
}

// addRandom generates and optionally saves a random transaction (debug menu).
func (a *App) addRandom() error {
	fmt.Fprintln(a.out, "Adding a random transaction")
	tx := a.gen.Transaction()
	fmt.Fprintln(a.out, tx)

	confirm, err := a.prompt.Confirm("Confirm saving the transaction?", true)
	if err != nil {
		return err
	}
	if !confirm {
		fmt.Fprintln(a.out, "Not saved")
		return nil
	}
	a.save(tx)
	return nil
}

// fill prompts for every transaction field after the date. ok=false means
// the user backed out of an enum selection.
func (a *App) fill(date string) (model.Transaction, bool, error) {
	tx := model.Transaction{Date: date}

	category, ok, err := a.selectConfirmed("Choose a category of the transaction:", a.opts.Categories, "")
	if err != nil || !ok {
		return model.Transaction{}, false, err
	}
	tx.Category = model.Category(category)

	if tx.Category == model.CategoryExpense {
		expenseType, ok, err := a.selectConfirmed("Choose a type of expense:", a.opts.ExpenseTypes, "")
		if err != nil || !ok {
			return model.Transaction{}, false, err
		}
		tx.ExpenseType = expenseType
	}

	title, err := a.inputConfirmed("Enter a title for the transaction:")
	if err != nil {
		return model.Transaction{}, false, err
	}
	tx.Title = title

	amount, err := a.intConfirmed("Enter amount of money:", 0)
	if err != nil {
		return model.Transaction{}, false, err
	}
	tx.Amount = amount

	currency, ok, err := a.selectConfirmed("Choose currency of the transaction:", a.opts.Currencies, "USD")
	if err != nil || !ok {
		return model.Transaction{}, false, err
	}
	tx.Currency = currency

	description, err := a.inputConfirmed("Enter a description:")
	if err != nil {
		return model.Transaction{}, false, err
	}
	tx.Description = description

	return tx, true, nil
}

// browse loads, renders and dispatches the mode-specific list action.
func (a *App) browse(s State) error {
	fmt.Fprintf(a.out, "Getting %s transactions...\n", strings.ToLower(s.Type))

	txs, total, count, err := a.store.Load(s.Type, s.Order)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Fprintln(a.out, noticeStyle.Render("No transactions added yet"))
		a.pause()
		return nil
	}

	fmt.Fprintln(a.out, renderTotal(report.Report{TypeFilter: s.Type, Count: count, Total: total}))

	switch s.Mode {
	case ModeSee:
		fmt.Fprintln(a.out, renderList(txs))
		a.pause()
		return nil
	case ModeDelete:
		return a.deleteFlow(txs)
	case ModeEdit:
		return a.editFlow(txs)
	}
	return nil
}

func (a *App) deleteFlow(txs []model.Transaction) error {
	tx, ok, err := a.selectTransaction(txs, "Choose a transaction to delete:")
	if err != nil || !ok {
		return err
	}
	fmt.Fprintln(a.out, tx)

	confirm, err := a.prompt.Confirm("Do you really want to delete the transaction?", true)
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := a.store.Delete(tx); err != nil {
		a.log.WithError(err).Error("deleting transaction")
		fmt.Fprintln(a.out, "Error deleting a transaction:", err)
		a.audit(auditlog.ActionDelete, "delete failed", tx)
	} else {
		fmt.Fprintln(a.out, "Changed successfully")
		a.audit(auditlog.ActionDelete, "ok", tx)
	}
	a.pause()
	return nil
}

func (a *App) editFlow(txs []model.Transaction) error {
	tx, ok, err := a.selectTransaction(txs, "Choose a transaction to edit:")
	if err != nil || !ok {
		return err
	}
	fmt.Fprintln(a.out, tx)

	confirm, err := a.prompt.Confirm("Do you really want to edit the transaction?", true)
	if err != nil || !confirm {
		return err
	}

	fieldName, ok, err := a.prompt.Select("Select field to be changed:", FieldOptions(), "")
	if err != nil || !ok {
		return err
	}
	field := model.Field(fieldName)

	var promptErr error
	edited, err := a.store.Edit(tx, func(target *model.Transaction) bool {
		committed, err := a.editField(target, field)
		if err != nil {
			promptErr = err
			return false
		}
		return committed
	})

	switch {
	case errors.Is(promptErr, ErrCancelled):
		fmt.Fprintln(a.out, "No changes applied")
		a.audit(auditlog.ActionEdit, "cancelled", tx)
	case promptErr != nil:
		return promptErr
	case err != nil:
		a.log.WithError(err).Error("editing transaction")
		fmt.Fprintln(a.out, "Error editing a transaction:", err)
		a.audit(auditlog.ActionEdit, "edit failed", tx)
	case edited:
		fmt.Fprintln(a.out, "Changed successfully")
		a.audit(auditlog.ActionEdit, "ok", tx)
	default:
		fmt.Fprintln(a.out, "No changes applied")
		a.audit(auditlog.ActionEdit, "cancelled", tx)
	}
	a.pause()
	return nil
}

// editField applies one field mutation, prompting for the new value. It
// reports whether the edit committed; an enum selection the user backs out
// of does not commit.
func (a *App) editField(tx *model.Transaction, field model.Field) (bool, error) {
	switch field {
	case model.FieldDate:
		// A cancelled date pick keeps the old date but still counts as a
		// committed edit.
		date, ok, err := datepick.Select(a.now(), a.prompt)
		if err != nil {
			return false, err
		}
		if ok {
			tx.Date = date
		}
		return true, nil

	case model.FieldCategory:
		// Moving the category away from Expense keeps the old expense type.
		choice, ok, err := a.selectConfirmed("Change category of the transaction:", a.opts.Categories, string(tx.Category))
		if err != nil || !ok {
			return false, err
		}
		tx.Category = model.Category(choice)
		return true, nil

	case model.FieldExpenseType:
		choice, ok, err := a.selectConfirmed("Change expense type of the transaction:", a.opts.ExpenseTypes, tx.ExpenseType)
		if err != nil || !ok {
			return false, err
		}
		tx.ExpenseType = choice
		return true, nil

	case model.FieldTitle:
		title, err := a.inputConfirmed("Enter a title for the transaction:")
		if err != nil {
			return false, err
		}
		tx.Title = title
		return true, nil

	case model.FieldAmount:
		amount, err := a.intConfirmed("Enter amount of money:", 0)
		if err != nil {
			return false, err
		}
		tx.Amount = amount
		return true, nil

	case model.FieldCurrency:
		choice, ok, err := a.selectConfirmed("Choose currency of the transaction:", a.opts.Currencies, tx.Currency)
		if err != nil || !ok {
			return false, err
		}
		tx.Currency = choice
		return true, nil

	case model.FieldDescription:
		description, err := a.inputConfirmed("Enter a description:")
		if err != nil {
			return false, err
		}
		tx.Description = description
		return true, nil
	}
	return false, nil
}

func (a *App) showSummary() error {
	txs, _, _, err := a.store.Load(model.TypeAll, store.OrderNone)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderSummary(report.Build(txs, model.TypeAll), a.opts.Categories, a.opts.ExpenseTypes))
	a.pause()
	return nil
}

// save appends tx, reporting failures without aborting the app.
func (a *App) save(tx model.Transaction) {
	if err := a.store.Append(tx); err != nil {
		a.log.WithError(err).Error("appending transaction")
		fmt.Fprintln(a.out, "Error writing to storage:", err)
		a.audit(auditlog.ActionAdd, "write failed", tx)
		return
	}
	fmt.Fprintln(a.out, "Saved successfully!")
	a.audit(auditlog.ActionAdd, "ok", tx)
}

// selectTransaction offers txs as menu entries and maps the choice back to
// the transaction. Identical rows render identically; the first one wins,
// consistent with structural-equality matching in the store.
func (a *App) selectTransaction(txs []model.Transaction, title string) (model.Transaction, bool, error) {
	options := make([]string, len(txs))
	for i, tx := range txs {
		options[i] = tx.String()
	}

	choice, ok, err := a.prompt.Select(title, options, "")
	if err != nil || !ok {
		return model.Transaction{}, false, err
	}
	for _, tx := range txs {
		if tx.String() == choice {
			return tx, true, nil
		}
	}
	return model.Transaction{}, false, nil
}

// selectConfirmed wraps a selection with a "Proceed?" confirmation,
// re-prompting until the user confirms or backs out.
func (a *App) selectConfirmed(title string, options []string, defaultOption string) (string, bool, error) {
	for {
		choice, ok, err := a.prompt.Select(title, options, defaultOption)
		if err != nil || !ok {
			return "", false, err
		}
		proceed, err := a.prompt.Confirm("Proceed?", true)
		if err != nil {
			return "", false, err
		}
		if proceed {
			return choice, true, nil
		}
	}
}

func (a *App) inputConfirmed(title string) (string, error) {
	for {
		value, err := a.prompt.Input(title)
		if err != nil {
			return "", err
		}
		proceed, err := a.prompt.Confirm("Proceed?", true)
		if err != nil {
			return "", err
		}
		if proceed {
			return value, nil
		}
	}
}

func (a *App) intConfirmed(title string, minAllowed int64) (int64, error) {
	for {
		value, err := a.prompt.Int(title, minAllowed)
		if err != nil {
			return 0, err
		}
		proceed, err := a.prompt.Confirm("Proceed?", true)
		if err != nil {
			return 0, err
		}
		if proceed {
			return value, nil
		}
	}
}

// pause keeps the previous output on screen until the user acknowledges it.
func (a *App) pause() {
	if _, err := a.prompt.Confirm("Press Enter to go back", true); err != nil {
		a.log.WithError(err).Debug("pause prompt")
	}
}

// audit records a storage mutation in the audit log when enabled.
func (a *App) audit(action auditlog.Action, outcome string, tx model.Transaction) {
	if !a.opts.AuditLog {
		return
	}
	entry := auditlog.Entry{
		Timestamp:   a.now(),
		Action:      action,
		Outcome:     outcome,
		Transaction: tx.String(),
	}
	path := filepath.Join(filepath.Dir(a.opts.StoragePath), "audit-log.csv")
	if err := auditlog.Append(path, []auditlog.Entry{entry}); err != nil {
		a.log.WithError(err).Warn("appending audit log")
	}
}
