package browser

import (
	"context"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Page is the set of driver primitives a page object is built on.
// Both the playwright and the chromedp drivers implement it.
type Page interface {
	Goto(ctx context.Context, url string) error
	Title(ctx context.Context) (string, error)
	Click(ctx context.Context, selector string) error
	ClickAndWaitForNavigation(ctx context.Context, selector string) error
	SetValue(ctx context.Context, selector, value string) error
	SelectByVisibleText(ctx context.Context, selector, label string) error
	GetTextContent(ctx context.Context, selector string) (string, error)
	GetNumberFromText(ctx context.Context, selector string) (int, error)
	GetAttribute(ctx context.Context, selector, name string) (string, error)
	ElementNotVisible(ctx context.Context, selector string, timeout time.Duration) (bool, error)
	WaitForVisibleSelector(ctx context.Context, selector string) error
	// ArmDialog answers the next native dialog with accept.
	// The returned func disarms the handler if no dialog fired.
	ArmDialog(accept bool) (release func())
}

type Browser interface {
	Page
	Launch(ctx context.Context) error
	Close() error
}

type Engine string

const (
	EngineChromium Engine = "chromium"
	EngineFirefox  Engine = "firefox"
	EngineWebKit   Engine = "webkit"
)

type Config struct {
	Engine          Engine
	Headless        bool
	UserDataDir     string
	BrowsersPath    string
	Display         string
	SlowMo          time.Duration
	Timeout         time.Duration
	NavigateTimeout time.Duration
	// WaitUntil is the load event navigations wait for: load, domcontentloaded or networkidle.
	WaitUntil string
	Logger    *zap.Logger
}

type PlaywrightBrowser struct {
	mu      sync.RWMutex
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	cfg     Config
	dialogs *DialogGate
}
var _ Browser = (*PlaywrightBrowser)(nil)
