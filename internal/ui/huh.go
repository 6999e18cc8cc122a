package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhPrompter renders prompts with charmbracelet/huh. Esc or Ctrl+C map to
// the Prompter cancellation semantics.
type HuhPrompter struct{}

func (HuhPrompter) Select(title string, options []string, defaultOption string) (string, bool, error) {
	choice := defaultOption
	err := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&choice).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select prompt: %w", err)
	}
	return choice, true, nil
}

func (HuhPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	answer := defaultYes
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&answer).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return answer, nil
}

func (HuhPrompter) Input(title string) (string, error) {
	var value string
	err := huh.NewInput().
		Title(title).
		Value(&value).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("input prompt: %w", err)
	}
	return value, nil
}

func (HuhPrompter) Int(title string, minAllowed int64) (int64, error) {
	var raw string
	err := huh.NewInput().
		Title(title).
		Validate(func(s string) error {
			n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return errors.New("enter a whole number")
			}
			if n < minAllowed {
				return fmt.Errorf("must be at least %d", minAllowed)
			}
			return nil
		}).
		Value(&raw).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return 0, ErrCancelled
	}
	if err != nil {
		return 0, fmt.Errorf("number prompt: %w", err)
	}
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}
