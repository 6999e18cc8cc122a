package ui

import (
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/store"
)

// Mode is what the user intends to do with the browsed transactions.
type Mode string

const (
	ModeSee    Mode = "see"
	ModeDelete Mode = "delete"
	ModeEdit   Mode = "edit"
)

// Screen identifies one menu of the interactive app.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenAdd
	ScreenRandom
	ScreenSummary
	ScreenAbout
	ScreenCategory
	ScreenFilter
	ScreenList
	ScreenExit
)

// State is the current position in the menu graph. Transitions are pure
// functions of (state, choice); all I/O lives in the App runner.
type State struct {
	Screen Screen
	Mode   Mode
	Type   string      // category filter, set from ScreenFilter on
	Order  store.Order // sort order, set on ScreenList
}

// Main menu entries.
const (
	ChoiceShow    = "Show Transactions"
	ChoiceAdd     = "Add Transaction"
	ChoiceDelete  = "Delete Transaction"
	ChoiceEdit    = "Edit Transaction"
	ChoiceSummary = "Summary"
	ChoiceAbout   = "About"
	ChoiceExit    = "Exit"
	ChoiceRandom  = "Add Random Transaction"
	ChoiceBack    = "Back to menu"
)

// Transition computes the next state from a menu choice. An empty choice
// means the user backed out of the current menu.
func Transition(s State, choice string) State {
	switch s.Screen {
	case ScreenMain:
		switch choice {
		case ChoiceShow:
			return State{Screen: ScreenCategory, Mode: ModeSee}
		case ChoiceDelete:
			return State{Screen: ScreenCategory, Mode: ModeDelete}
		case ChoiceEdit:
			return State{Screen: ScreenCategory, Mode: ModeEdit}
		case ChoiceAdd:
			return State{Screen: ScreenAdd}
		case ChoiceRandom:
			return State{Screen: ScreenRandom}
		case ChoiceSummary:
			return State{Screen: ScreenSummary}
		case ChoiceAbout:
			return State{Screen: ScreenAbout}
		case ChoiceExit:
			return State{Screen: ScreenExit}
		}
		return s

	case ScreenCategory:
		if choice == "" || choice == ChoiceBack {
			return State{Screen: ScreenMain}
		}
		return State{Screen: ScreenFilter, Mode: s.Mode, Type: choice}

	case ScreenFilter:
		if choice == "" {
			// Backing out of the filter menu re-opens the category menu.
			return State{Screen: ScreenCategory, Mode: s.Mode}
		}
		if choice == ChoiceBack {
			return State{Screen: ScreenMain}
		}
		return State{Screen: ScreenList, Mode: s.Mode, Type: s.Type, Order: store.Order(choice)}

	case ScreenList:
		// A finished list action always returns to the category menu.
		return State{Screen: ScreenCategory, Mode: s.Mode}

	case ScreenAdd, ScreenRandom, ScreenSummary, ScreenAbout:
		return State{Screen: ScreenMain}
	}
	return s
}

// MainOptions returns the main menu entries; debug adds the random entry.
func MainOptions(debug bool) []string {
	options := []string{ChoiceShow, ChoiceAdd, ChoiceDelete, ChoiceEdit, ChoiceSummary, ChoiceAbout, ChoiceExit}
	if debug {
		options = append(options, ChoiceRandom)
	}
	return options
}

// CategoryOptions returns the browsable category filters.
func CategoryOptions(categories []string) []string {
	options := make([]string, 0, len(categories)+2)
	options = append(options, model.TypeAll)
	options = append(options, categories...)
	options = append(options, ChoiceBack)
	return options
}

// FilterOptions returns the sort orders offered for a category filter. The
// expense-type order only makes sense when browsing expenses.
func FilterOptions(typeFilter string) []string {
	options := []string{string(store.OrderNone)}
	for _, order := range store.Orders {
		if order == store.OrderExpenseType && typeFilter != string(model.CategoryExpense) {
			continue
		}
		options = append(options, string(order))
	}
	return append(options, ChoiceBack)
}

// FieldOptions returns the editable field names in storage order.
func FieldOptions() []string {
	fields := make([]string, len(model.Fields))
	for i, f := range model.Fields {
		fields[i] = string(f)
	}
	return fields
}
