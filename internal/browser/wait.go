package browser

import (
	"context"
	"errors"
	"time"

	"github.com/playwright-community/playwright-go"
)

// locator resolves a prepared selector to the first matching element on the current page.
func (b *PlaywrightBrowser) locator(selector string) (playwright.Locator, string, error) {
	page, err := b.getPage()
	if err != nil {
		return nil, selector, err
	}
	prepared, err := prepareSelector(selector)
	if err != nil {
		return nil, selector, err
	}
	return page.Locator(prepared).First(), prepared, nil
}

func (b *PlaywrightBrowser) WaitForVisibleSelector(ctx context.Context, selector string) error {
	loc, prepared, err := b.locator(selector)
	if err != nil {
		return err
	}

	return await(ctx, "wait visible", prepared, func() error {
		return loc.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: driverTimeout(ctx, b.cfg.Timeout),
		})
	})
}

// ElementNotVisible reports whether the element is hidden or detached within timeout.
// An element that stays visible yields false without an error; an ended ctx is an error.
func (b *PlaywrightBrowser) ElementNotVisible(ctx context.Context, selector string, timeout time.Duration) (bool, error) {
	loc, prepared, err := b.locator(selector)
	if err != nil {
		return false, err
	}

	err = await(ctx, "wait hidden", prepared, func() error {
		return loc.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateHidden,
			Timeout: driverTimeout(ctx, timeout),
		})
	})
	if err == nil {
		return true, nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return false, nil
	}
	return false, err
}
