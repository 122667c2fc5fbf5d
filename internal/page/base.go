// Package page holds what every back-office page object shares.
package page

import (
	"context"
	"fmt"
	"strings"

	"boTester/internal/browser"
)

// AlertSuccessBlockParagraph is the paragraph of the green banner shown after a successful action.
const AlertSuccessBlockParagraph = ".alert-success p.alert-text"

type BasePage struct {
	Page      browser.Page
	PageTitle string
}

func NewBasePage(p browser.Page, title string) BasePage {
	return BasePage{Page: p, PageTitle: title}
}

func (b BasePage) GoTo(ctx context.Context, url string) error {
	return b.Page.Goto(ctx, url)
}

func (b BasePage) GetPageTitle(ctx context.Context) (string, error) {
	return b.Page.Title(ctx)
}

// IsOpen reports whether the current document title starts with the page title.
func (b BasePage) IsOpen(ctx context.Context) (bool, error) {
	title, err := b.GetPageTitle(ctx)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(title, b.PageTitle), nil
}

// SuccessMessage returns the text of the success banner.
func (b BasePage) SuccessMessage(ctx context.Context) (string, error) {
	text, err := b.Page.GetTextContent(ctx, AlertSuccessBlockParagraph)
	if err != nil {
		return "", fmt.Errorf("read success message: %w", err)
	}
	return text, nil
}
