package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// await runs a blocking driver call and returns as soon as ctx ends.
// An abandoned call stops on its own driver timeout.
func await(ctx context.Context, op, selector string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return contextError(op, selector, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case <-ctx.Done():
		return contextError(op, selector, ctx.Err())
	case err := <-done:
		return wrapDriverError(op, selector, err)
	}
}

func contextError(op, selector string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w: %w", op, selector, ErrTimeout, err)
	}
	return fmt.Errorf("%s %s: %w", op, selector, err)
}

// boundTimeout shortens d to what is left of the ctx deadline.
func boundTimeout(ctx context.Context, d time.Duration) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < d {
			if left < 0 {
				return 0
			}
			return left
		}
	}
	return d
}

// driverTimeout is boundTimeout in the milliseconds playwright expects.
// It never returns 0, which playwright reads as no timeout.
func driverTimeout(ctx context.Context, d time.Duration) *float64 {
	ms := boundTimeout(ctx, d).Milliseconds()
	if ms < 1 {
		ms = 1
	}
	return playwright.Float(float64(ms))
}
