// Package cdp drives Chrome over the DevTools protocol with chromedp.
// It satisfies browser.Page so page objects run unchanged on either driver.
package cdp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	cdppage "github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"boTester/internal/browser"
)

type Browser struct {
	cfg     browser.Config
	dialogs *browser.DialogGate
	log     *zap.Logger

	mu          sync.RWMutex
	ctx         context.Context
	cancelAlloc context.CancelFunc
	cancelTab   context.CancelFunc
}

func New(cfg browser.Config) *Browser {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.NavigateTimeout == 0 {
		cfg.NavigateTimeout = 60 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Browser{
		cfg:     cfg,
		dialogs: browser.NewDialogGate(cfg.Logger),
		log:     cfg.Logger,
	}
}

func (b *Browser) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", b.cfg.Headless),
		chromedp.NoSandbox,
	)
	if b.cfg.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(b.cfg.UserDataDir))
	}
	if b.cfg.Display != "" {
		opts = append(opts, chromedp.Env("DISPLAY="+b.cfg.Display))
	}
	return opts
}

func (b *Browser) Launch(ctx context.Context) error {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), b.allocatorOptions()...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		if ev, ok := ev.(*cdppage.EventJavascriptDialogOpening); ok {
			accept, _ := b.dialogs.Take()
			go b.answerDialog(tabCtx, ev.Type.String(), accept)
		}
	})

	// first Run starts the browser process
	if err := chromedp.Run(tabCtx); err != nil {
		cancelTab()
		cancelAlloc()
		return fmt.Errorf("start chrome: %w", err)
	}

	b.mu.Lock()
	b.ctx = tabCtx
	b.cancelAlloc = cancelAlloc
	b.cancelTab = cancelTab
	b.mu.Unlock()
	return nil
}

// answerDialog must run outside the event listener, which chromedp calls synchronously.
func (b *Browser) answerDialog(ctx context.Context, kind string, accept bool) {
	if err := chromedp.Run(ctx, cdppage.HandleJavaScriptDialog(accept)); err != nil {
		b.log.Warn("answer dialog", zap.String("type", kind), zap.Bool("accept", accept), zap.Error(err))
	}
}

func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancelTab != nil {
		b.cancelTab()
	}
	if b.cancelAlloc != nil {
		b.cancelAlloc()
	}
	b.ctx = nil
	return nil
}

// runCtx derives an action context from the tab that also ends when the caller's ctx does.
func (b *Browser) runCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc, error) {
	b.mu.RLock()
	tab := b.ctx
	b.mu.RUnlock()
	if tab == nil {
		return nil, nil, browser.ErrNotLaunched
	}

	runCtx, cancel := context.WithTimeout(tab, timeout)
	stop := context.AfterFunc(ctx, cancel)
	return runCtx, func() {
		stop()
		cancel()
	}, nil
}

func (b *Browser) run(ctx context.Context, op, selector string, actions ...chromedp.Action) error {
	runCtx, cancel, err := b.runCtx(ctx, b.cfg.Timeout)
	if err != nil {
		return err
	}
	defer cancel()
	return wrapError(op, selector, chromedp.Run(runCtx, actions...))
}

func wrapError(op, selector string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w: %w", op, selector, browser.ErrTimeout, err)
	}
	return fmt.Errorf("%s %s: %w", op, selector, err)
}

func (b *Browser) Goto(ctx context.Context, url string) error {
	runCtx, cancel, err := b.runCtx(ctx, b.cfg.NavigateTimeout)
	if err != nil {
		return err
	}
	defer cancel()
	return wrapError("goto", url, chromedp.Run(runCtx, chromedp.Navigate(url)))
}

func (b *Browser) Title(ctx context.Context) (string, error) {
	var title string
	err := b.run(ctx, "title", "", chromedp.Title(&title))
	return title, err
}

func (b *Browser) Click(ctx context.Context, selector string) error {
	if err := browser.ValidateSelector(selector); err != nil {
		return err
	}
	return b.run(ctx, "click", selector, chromedp.Click(selector, chromedp.ByQuery))
}

func (b *Browser) ClickAndWaitForNavigation(ctx context.Context, selector string) error {
	if err := browser.ValidateSelector(selector); err != nil {
		return err
	}
	runCtx, cancel, err := b.runCtx(ctx, b.cfg.NavigateTimeout)
	if err != nil {
		return err
	}
	defer cancel()

	_, err = chromedp.RunResponse(runCtx, chromedp.Click(selector, chromedp.ByQuery))
	return wrapError("click and wait for navigation", selector, err)
}

func (b *Browser) SetValue(ctx context.Context, selector, value string) error {
	if err := browser.ValidateSelector(selector); err != nil {
		return err
	}
	return b.run(ctx, "set value", selector, chromedp.SetValue(selector, value, chromedp.ByQuery))
}

func (b *Browser) SelectByVisibleText(ctx context.Context, selector, label string) error {
	if err := browser.ValidateSelector(selector); err != nil {
		return err
	}
	script, err := selectByLabelScript(selector, label)
	if err != nil {
		return err
	}

	var found bool
	err = b.run(ctx, "select "+label, selector,
		chromedp.WaitReady(selector, chromedp.ByQuery),
		chromedp.Evaluate(script, &found),
	)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("select %s %s: %w: no option labelled %q", label, selector, browser.ErrElementAbsent, label)
	}
	return nil
}

func selectByLabelScript(selector, label string) (string, error) {
	sel, err := json.Marshal(selector)
	if err != nil {
		return "", err
	}
	lbl, err := json.Marshal(label)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`(() => {
	const select = document.querySelector(%s);
	if (!select) return false;
	const option = Array.from(select.options).find(o => o.text.trim() === %s);
	if (!option) return false;
	select.value = option.value;
	select.dispatchEvent(new Event('change', {bubbles: true}));
	return true;
})()`, sel, lbl), nil
}

func (b *Browser) GetTextContent(ctx context.Context, selector string) (string, error) {
	if err := browser.ValidateSelector(selector); err != nil {
		return "", err
	}
	var text string
	if err := b.run(ctx, "text content", selector, chromedp.TextContent(selector, &text, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("%w: %w", browser.ErrElementAbsent, err)
	}
	return browser.CleanText(text), nil
}

func (b *Browser) GetNumberFromText(ctx context.Context, selector string) (int, error) {
	text, err := b.GetTextContent(ctx, selector)
	if err != nil {
		return 0, err
	}
	return browser.ParseNumber(text)
}

func (b *Browser) GetAttribute(ctx context.Context, selector, name string) (string, error) {
	if err := browser.ValidateSelector(selector); err != nil {
		return "", err
	}
	var (
		value string
		ok    bool
	)
	if err := b.run(ctx, "attribute "+name, selector, chromedp.AttributeValue(selector, name, &value, &ok, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("%w: %w", browser.ErrElementAbsent, err)
	}
	return value, nil
}

func (b *Browser) WaitForVisibleSelector(ctx context.Context, selector string) error {
	if err := browser.ValidateSelector(selector); err != nil {
		return err
	}
	return b.run(ctx, "wait visible", selector, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func hiddenScript(selector string) (string, error) {
	sel, err := json.Marshal(selector)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%s);
	if (!el) return true;
	const style = window.getComputedStyle(el);
	const rect = el.getBoundingClientRect();
	return style.display === 'none' || style.visibility === 'hidden' || (rect.width === 0 && rect.height === 0);
})()`, sel), nil
}

// ElementNotVisible polls until the element is hidden or absent, giving up after timeout.
func (b *Browser) ElementNotVisible(ctx context.Context, selector string, timeout time.Duration) (bool, error) {
	if err := browser.ValidateSelector(selector); err != nil {
		return false, err
	}
	script, err := hiddenScript(selector)
	if err != nil {
		return false, err
	}

	runCtx, cancel, err := b.runCtx(ctx, timeout)
	if err != nil {
		return false, err
	}
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		var hidden bool
		if err := chromedp.Run(runCtx, chromedp.Evaluate(script, &hidden)); err != nil {
			if runCtx.Err() != nil && ctx.Err() == nil {
				return false, nil
			}
			return false, wrapError("wait hidden", selector, err)
		}
		if hidden {
			return true, nil
		}

		select {
		case <-ticker.C:
		case <-runCtx.Done():
			if ctx.Err() != nil {
				return false, wrapError("wait hidden", selector, ctx.Err())
			}
			return false, nil
		}
	}
}

func (b *Browser) ArmDialog(accept bool) func() {
	return b.dialogs.Arm(accept)
}

var _ browser.Browser = (*Browser)(nil)
