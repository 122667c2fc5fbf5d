package browser

import (
	"github.com/playwright-community/playwright-go"
)

// scrollIntoView brings a hidden-by-scroll element into the viewport.
// Elements that are already visible are left alone.
func (b *PlaywrightBrowser) scrollIntoView(loc playwright.Locator) error {
	visible, err := loc.IsVisible()
	if err == nil && visible {
		return nil
	}

	err = loc.ScrollIntoViewIfNeeded(playwright.LocatorScrollIntoViewIfNeededOptions{
		Timeout: playwright.Float(5000),
	})
	if err != nil {
		// fall back to a plain scrollIntoView
		_, err = loc.Evaluate(`el => el.scrollIntoView({block: 'center', inline: 'center'})`, nil)
	}
	return err
}
