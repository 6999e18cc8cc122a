// Package datepick implements the cascading year/month/day picker used when
// dating a transaction.
package datepick

import (
	"strconv"
	"time"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// BackOption is the menu entry that abandons the pick at any step.
const BackOption = "Back to menu"

// YearSpan is how many years the year menu offers, ending at the current year.
const YearSpan = 10

// Selector presents a list of options and returns the chosen one. ok=false
// means the user backed out without choosing.
type Selector interface {
	Select(title string, options []string, defaultOption string) (choice string, ok bool, err error)
}

// Years returns the selectable years: the last YearSpan years up to and
// including the year of now.
func Years(now time.Time) []int {
	years := make([]int, YearSpan)
	for i := range years {
		years[i] = now.Year() - YearSpan + 1 + i
	}
	return years
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Select walks the user through year, month and day menus and returns a
// normalized YYYY-MM-DD date. Backing out of any step abandons the whole
// pick (ok=false).
func Select(now time.Time, p Selector) (string, bool, error) {
	year, ok, err := selectYear(now, p)
	if err != nil || !ok {
		return "", false, err
	}
	month, ok, err := selectMonth(now, p)
	if err != nil || !ok {
		return "", false, err
	}
	day, ok, err := selectDay(now, year, month, p)
	if err != nil || !ok {
		return "", false, err
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return date.Format(model.DateFormat), true, nil
}

func selectYear(now time.Time, p Selector) (int, bool, error) {
	options := make([]string, 0, YearSpan+1)
	for _, y := range Years(now) {
		options = append(options, strconv.Itoa(y))
	}
	options = append(options, BackOption)

	choice, ok, err := p.Select("Choose year of the transaction:", options, strconv.Itoa(now.Year()))
	if err != nil || !ok || choice == BackOption {
		return 0, false, err
	}
	year, err := strconv.Atoi(choice)
	if err != nil {
		return 0, false, err
	}
	return year, true, nil
}

func selectMonth(now time.Time, p Selector) (time.Month, bool, error) {
	options := make([]string, 0, 13)
	for m := time.January; m <= time.December; m++ {
		options = append(options, m.String())
	}
	options = append(options, BackOption)

	choice, ok, err := p.Select("Choose a month of the transaction:", options, now.Month().String())
	if err != nil || !ok || choice == BackOption {
		return 0, false, err
	}
	for m := time.January; m <= time.December; m++ {
		if m.String() == choice {
			return m, true, nil
		}
	}
	return 0, false, nil
}

func selectDay(now time.Time, year int, month time.Month, p Selector) (int, bool, error) {
	days := DaysIn(year, month)
	options := make([]string, 0, days+1)
	for d := 1; d <= days; d++ {
		options = append(options, strconv.Itoa(d))
	}
	options = append(options, BackOption)

	defaultDay := min(now.Day(), days)
	choice, ok, err := p.Select("Choose a day of the transaction:", options, strconv.Itoa(defaultDay))
	if err != nil || !ok || choice == BackOption {
		return 0, false, err
	}
	day, err := strconv.Atoi(choice)
	if err != nil {
		return 0, false, err
	}
	return day, true, nil
}
