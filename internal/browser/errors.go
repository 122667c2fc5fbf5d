package browser

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

var (
	ErrNotLaunched     = errors.New("browser is not launched")
	ErrInvalidSelector = errors.New("invalid selector")
	ErrElementAbsent   = errors.New("element not found")
	ErrTimeout         = errors.New("timeout")
)

// wrapDriverError maps playwright timeouts onto ErrTimeout while keeping the original cause.
func wrapDriverError(op, selector string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%s %s: %w: %w", op, selector, ErrTimeout, err)
	}
	return fmt.Errorf("%s %s: %w", op, selector, err)
}
