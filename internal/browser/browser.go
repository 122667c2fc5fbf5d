package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/playwright-community/playwright-go"
)

func New(cfg Config) *PlaywrightBrowser {
	if cfg.Engine == "" {
		cfg.Engine = EngineChromium
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.NavigateTimeout == 0 {
		cfg.NavigateTimeout = 60 * time.Second
	}
	if cfg.WaitUntil == "" {
		cfg.WaitUntil = "load"
	}

	return &PlaywrightBrowser{
		cfg:     cfg,
		dialogs: NewDialogGate(cfg.Logger),
	}
}

// getPage returns the current page under the read lock.
func (b *PlaywrightBrowser) getPage() (playwright.Page, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.page == nil {
		return nil, ErrNotLaunched
	}
	return b.page, nil
}

func (b *PlaywrightBrowser) setPage(page playwright.Page) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.page = page
}

func (b *PlaywrightBrowser) getBrowserArgs() []string {
	if b.cfg.Engine != EngineChromium {
		return nil
	}
	return []string{
		"--no-sandbox",
	}
}

func (b *PlaywrightBrowser) getEnvMap() map[string]string {
	if b.cfg.Display != "" {
		return map[string]string{
			"DISPLAY": b.cfg.Display,
		}
	}
	return nil
}

func (b *PlaywrightBrowser) browserType(pw *playwright.Playwright) (playwright.BrowserType, error) {
	switch b.cfg.Engine {
	case EngineChromium:
		return pw.Chromium, nil
	case EngineFirefox:
		return pw.Firefox, nil
	case EngineWebKit:
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unknown browser engine %q", b.cfg.Engine)
	}
}

func (b *PlaywrightBrowser) launchPersistent(bt playwright.BrowserType) error {
	opts := playwright.BrowserTypeLaunchPersistentContextOptions{
		Headless: playwright.Bool(b.cfg.Headless),
		Args:     b.getBrowserArgs(),
	}
	if b.cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(float64(b.cfg.SlowMo.Milliseconds()))
	}
	if env := b.getEnvMap(); env != nil {
		opts.Env = env
	}

	browserContext, err := bt.LaunchPersistentContext(b.cfg.UserDataDir, opts)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.context = browserContext
	b.mu.Unlock()

	pages := browserContext.Pages()
	var page playwright.Page
	if len(pages) == 0 {
		page, err = browserContext.NewPage()
		if err != nil {
			return err
		}
	} else {
		page = pages[0]
	}

	b.preparePage(page)
	return nil
}

func (b *PlaywrightBrowser) launchStandard(bt playwright.BrowserType) error {
	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.cfg.Headless),
		Args:     b.getBrowserArgs(),
	}
	if b.cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(float64(b.cfg.SlowMo.Milliseconds()))
	}
	if env := b.getEnvMap(); env != nil {
		opts.Env = env
	}

	browser, err := bt.Launch(opts)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.browser = browser
	b.mu.Unlock()

	page, err := browser.NewPage()
	if err != nil {
		return err
	}

	b.preparePage(page)
	return nil
}

func (b *PlaywrightBrowser) preparePage(page playwright.Page) {
	page.SetDefaultTimeout(float64(b.cfg.Timeout.Milliseconds()))
	page.SetDefaultNavigationTimeout(float64(b.cfg.NavigateTimeout.Milliseconds()))
	page.OnDialog(b.dialogs.handle)
	b.setPage(page)
}

func (b *PlaywrightBrowser) Launch(ctx context.Context) error {
	if b.cfg.BrowsersPath != "" {
		if err := os.Setenv("PLAYWRIGHT_BROWSERS_PATH", b.cfg.BrowsersPath); err != nil {
			return fmt.Errorf("set browsers path: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("start playwright: %w", err)
	}
	b.pw = pw

	bt, err := b.browserType(pw)
	if err != nil {
		return err
	}

	if b.cfg.UserDataDir != "" {
		return b.launchPersistent(bt)
	}

	return b.launchStandard(bt)
}

func (b *PlaywrightBrowser) Goto(ctx context.Context, url string) error {
	page, err := b.getPage()
	if err != nil {
		return err
	}

	navCtx, cancel := context.WithTimeout(ctx, b.cfg.NavigateTimeout)
	defer cancel()

	return await(navCtx, "goto", url, func() error {
		_, err := page.Goto(url, playwright.PageGotoOptions{
			WaitUntil: waitUntilState(b.cfg.WaitUntil),
			Timeout:   driverTimeout(navCtx, b.cfg.NavigateTimeout),
		})
		return err
	})
}

func (b *PlaywrightBrowser) Title(ctx context.Context) (string, error) {
	page, err := b.getPage()
	if err != nil {
		return "", err
	}
	return page.Title()
}

func (b *PlaywrightBrowser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.context != nil {
		if err := b.context.Close(); err != nil {
			return err
		}
	}
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			return err
		}
	}
	b.page = nil
	if b.pw != nil {
		return b.pw.Stop()
	}
	return nil
}
