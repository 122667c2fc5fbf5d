package grid

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"boTester/internal/browser"
)

type call struct {
	Method   string
	Selector string
	Arg      string
}

// fakePage is a scripted browser.Page that records every call.
type fakePage struct {
	mu    sync.Mutex
	calls []call

	errs   map[string]error
	texts  map[string]string
	attrs  map[string]string
	hidden map[string]bool

	clickHook func(ctx context.Context, selector string) error
	waitHook  func(ctx context.Context, selector string) error
}

func newFakePage() *fakePage {
	return &fakePage{
		errs:   map[string]error{},
		texts:  map[string]string{},
		attrs:  map[string]string{},
		hidden: map[string]bool{},
	}
}

func (f *fakePage) record(method, selector, arg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{Method: method, Selector: selector, Arg: arg})
	return f.errs[method+" "+selector]
}

func (f *fakePage) failOn(method, selector string, err error) {
	f.errs[method+" "+selector] = err
}

func (f *fakePage) recorded() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakePage) methods() []string {
	var out []string
	for _, c := range f.recorded() {
		out = append(out, c.Method)
	}
	return out
}

func (f *fakePage) Goto(ctx context.Context, url string) error {
	return f.record("Goto", url, "")
}

func (f *fakePage) Title(ctx context.Context) (string, error) {
	return f.texts["title"], f.record("Title", "", "")
}

func (f *fakePage) Click(ctx context.Context, selector string) error {
	if err := f.record("Click", selector, ""); err != nil {
		return err
	}
	if f.clickHook != nil {
		return f.clickHook(ctx, selector)
	}
	return nil
}

func (f *fakePage) ClickAndWaitForNavigation(ctx context.Context, selector string) error {
	return f.record("ClickAndWaitForNavigation", selector, "")
}

func (f *fakePage) SetValue(ctx context.Context, selector, value string) error {
	return f.record("SetValue", selector, value)
}

func (f *fakePage) SelectByVisibleText(ctx context.Context, selector, label string) error {
	return f.record("SelectByVisibleText", selector, label)
}

func (f *fakePage) GetTextContent(ctx context.Context, selector string) (string, error) {
	if err := f.record("GetTextContent", selector, ""); err != nil {
		return "", err
	}
	text, ok := f.texts[selector]
	if !ok {
		return "", fmt.Errorf("%w: %s", browser.ErrElementAbsent, selector)
	}
	return text, nil
}

func (f *fakePage) GetNumberFromText(ctx context.Context, selector string) (int, error) {
	text, err := f.GetTextContent(ctx, selector)
	if err != nil {
		return 0, err
	}
	return browser.ParseNumber(text)
}

func (f *fakePage) GetAttribute(ctx context.Context, selector, name string) (string, error) {
	if err := f.record("GetAttribute", selector, name); err != nil {
		return "", err
	}
	return f.attrs[selector+"@"+name], nil
}

func (f *fakePage) ElementNotVisible(ctx context.Context, selector string, timeout time.Duration) (bool, error) {
	if err := f.record("ElementNotVisible", selector, timeout.String()); err != nil {
		return false, err
	}
	return f.hidden[selector], nil
}

func (f *fakePage) WaitForVisibleSelector(ctx context.Context, selector string) error {
	if err := f.record("WaitForVisibleSelector", selector, ""); err != nil {
		return err
	}
	if f.waitHook != nil {
		return f.waitHook(ctx, selector)
	}
	return nil
}

func (f *fakePage) ArmDialog(accept bool) func() {
	f.record("ArmDialog", "", strconv.FormatBool(accept))
	return func() {
		f.record("ReleaseDialog", "", "")
	}
}

var _ browser.Page = (*fakePage)(nil)
