package commands

import (
	"context"
	"fmt"
	"io"

	"boTester/internal/browser"
	"boTester/internal/cli/ui"
)

// BrowserHandler opens a browser for manual setup of a persistent profile.
type BrowserHandler struct {
	browser  browser.Browser
	readLine func() (string, error)
	out      io.Writer
}

func NewBrowserHandler(br browser.Browser, readLine func() (string, error), out io.Writer) *BrowserHandler {
	return &BrowserHandler{
		browser:  br,
		readLine: readLine,
		out:      out,
	}
}

// Login opens the back office so the user can sign in by hand; the session
// stays in the browser profile for the next commands.
func (h *BrowserHandler) Login(ctx context.Context, url string) error {
	ui.Info(h.out, ui.IconGlobe, "starting browser...")
	if err := h.browser.Launch(ctx); err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	defer h.browser.Close()

	ui.Info(h.out, ui.IconArrow, "opening %s", url)
	if err := h.browser.Goto(ctx, url); err != nil {
		return fmt.Errorf("open back office: %w", err)
	}

	fmt.Fprintln(h.out, ui.ColorGray+"Sign in, then press Enter to close the browser and keep the session."+ui.ColorReset)
	if _, err := h.readLine(); err != nil && err != io.EOF {
		return err
	}
	ui.Success(h.out, "session saved")
	return nil
}
