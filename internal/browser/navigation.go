package browser

import (
	"context"
	"time"

	"github.com/playwright-community/playwright-go"
)

type WaitNavigationOptions struct {
	Timeout   time.Duration
	WaitUntil string
}

type WaitNavigationOption func(*WaitNavigationOptions)

func WithNavigationTimeout(timeout time.Duration) WaitNavigationOption {
	return func(opts *WaitNavigationOptions) {
		if timeout > 0 {
			opts.Timeout = timeout
		}
	}
}

func WithNavigationWaitUntil(waitUntil string) WaitNavigationOption {
	return func(opts *WaitNavigationOptions) {
		if waitUntil != "" {
			opts.WaitUntil = waitUntil
		}
	}
}

func waitUntilState(waitUntil string) *playwright.WaitUntilState {
	switch waitUntil {
	case "domcontentloaded":
		return playwright.WaitUntilStateDomcontentloaded
	case "networkidle":
		return playwright.WaitUntilStateNetworkidle
	default:
		return playwright.WaitUntilStateLoad
	}
}

// navigationOptions starts from the configured navigation timeout and load event.
func (b *PlaywrightBrowser) navigationOptions(options ...WaitNavigationOption) WaitNavigationOptions {
	opts := WaitNavigationOptions{
		Timeout:   b.cfg.NavigateTimeout,
		WaitUntil: b.cfg.WaitUntil,
	}
	for _, opt := range options {
		opt(&opts)
	}
	return opts
}

// ClickAndWaitForNavigation clicks selector and returns once the navigation it triggers
// reaches the configured load event. The wait never outlives ctx.
func (b *PlaywrightBrowser) ClickAndWaitForNavigation(ctx context.Context, selector string) error {
	return b.ClickAndWaitForLoad(ctx, selector,
		WithNavigationTimeout(boundTimeout(ctx, b.cfg.NavigateTimeout)),
	)
}

func (b *PlaywrightBrowser) ClickAndWaitForLoad(ctx context.Context, selector string, options ...WaitNavigationOption) error {
	loc, prepared, err := b.locator(selector)
	if err != nil {
		return err
	}
	page, err := b.getPage()
	if err != nil {
		return err
	}

	opts := b.navigationOptions(options...)
	return await(ctx, "click and wait for navigation", prepared, func() error {
		_, err := page.ExpectNavigation(func() error {
			return loc.Click()
		}, playwright.PageExpectNavigationOptions{
			WaitUntil: waitUntilState(opts.WaitUntil),
			Timeout:   driverTimeout(ctx, opts.Timeout),
		})
		return err
	})
}
