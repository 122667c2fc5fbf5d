package browser

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"
)

var (
	nonDigits     = regexp.MustCompile(`\D`)
	whitespace    = regexp.MustCompile(`\s+`)
	trailingCount = regexp.MustCompile(`\(([^()]*\d[^()]*)\)\s*$`)
)

func (b *PlaywrightBrowser) Click(ctx context.Context, selector string) error {
	loc, prepared, err := b.locator(selector)
	if err != nil {
		return err
	}

	return await(ctx, "click", prepared, func() error {
		if err := b.scrollIntoView(loc); err != nil {
			return fmt.Errorf("scroll: %w", err)
		}
		return loc.Click(playwright.LocatorClickOptions{
			Timeout: driverTimeout(ctx, b.cfg.Timeout),
		})
	})
}

// SetValue replaces the content of an input; Fill clears it first.
func (b *PlaywrightBrowser) SetValue(ctx context.Context, selector, value string) error {
	loc, prepared, err := b.locator(selector)
	if err != nil {
		return err
	}

	return await(ctx, "fill", prepared, func() error {
		return loc.Fill(value, playwright.LocatorFillOptions{
			Timeout: driverTimeout(ctx, b.cfg.Timeout),
		})
	})
}

func (b *PlaywrightBrowser) SelectByVisibleText(ctx context.Context, selector, label string) error {
	loc, prepared, err := b.locator(selector)
	if err != nil {
		return err
	}

	return await(ctx, "select "+label, prepared, func() error {
		_, err := loc.SelectOption(playwright.SelectOptionValues{Labels: &[]string{label}},
			playwright.LocatorSelectOptionOptions{Timeout: driverTimeout(ctx, b.cfg.Timeout)})
		return err
	})
}

func (b *PlaywrightBrowser) GetTextContent(ctx context.Context, selector string) (string, error) {
	loc, prepared, err := b.locator(selector)
	if err != nil {
		return "", err
	}

	var text string
	err = await(ctx, "text content", prepared, func() error {
		var err error
		text, err = loc.TextContent(playwright.LocatorTextContentOptions{
			Timeout: driverTimeout(ctx, b.cfg.Timeout),
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrElementAbsent, err)
	}
	return CleanText(text), nil
}

func (b *PlaywrightBrowser) GetNumberFromText(ctx context.Context, selector string) (int, error) {
	text, err := b.GetTextContent(ctx, selector)
	if err != nil {
		return 0, err
	}
	return ParseNumber(text)
}

func (b *PlaywrightBrowser) GetAttribute(ctx context.Context, selector, name string) (string, error) {
	loc, prepared, err := b.locator(selector)
	if err != nil {
		return "", err
	}

	var value string
	err = await(ctx, "attribute "+name, prepared, func() error {
		var err error
		value, err = loc.GetAttribute(name, playwright.LocatorGetAttributeOptions{
			Timeout: driverTimeout(ctx, b.cfg.Timeout),
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrElementAbsent, err)
	}
	return value, nil
}

// CleanText collapses runs of whitespace and trims the result.
func CleanText(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// ParseNumber reads the count of a grid header. A trailing parenthesized number wins,
// so "Top 10 products (5)" gives 5; otherwise all digits are kept, so "1 024" gives 1024.
func ParseNumber(text string) (int, error) {
	src := text
	if m := trailingCount.FindStringSubmatch(text); m != nil {
		src = m[1]
	}
	digits := nonDigits.ReplaceAllString(src, "")
	if digits == "" {
		return 0, fmt.Errorf("no number in %q", text)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("parse number from %q: %w", text, err)
	}
	return n, nil
}
