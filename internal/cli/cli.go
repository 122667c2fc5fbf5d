// Package cli wires configuration, the browser driver, the action journal and
// the grid page object into the gridcheck commands.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"boTester/internal/browser"
	"boTester/internal/browser/cdp"
	"boTester/internal/cli/commands"
	"boTester/internal/config"
	"boTester/internal/database"
	"boTester/internal/grid"
	"boTester/internal/logger"
	"boTester/internal/monitoring"
)

// RunRepository is the journal storage used by a session.
type RunRepository interface {
	commands.RunStore
	database.ActionStore
	CreateRun(run *database.Run) error
	FinishRun(id uint, status, summary string) error
}

var (
	// ErrNoJournal is returned by journal commands when no database is configured.
	ErrNoJournal = errors.New("journal database is not configured")
	// ErrUnknownTable is returned when --table names no grid of the monitoring page.
	ErrUnknownTable = errors.New("unknown monitoring grid")
	// ErrNotMonitoringPage is returned by commands that only make sense on the monitoring page.
	ErrNotMonitoringPage = errors.New("command needs the monitoring page")
)

type CLI struct {
	cfg        *config.Cfg
	log        *logger.Zap
	repo       RunRepository
	newBrowser func(config.Browser, *zap.Logger) browser.Browser
	in         *bufio.Reader
	out        io.Writer
}

type Option func(*CLI)

// WithRepository enables the action journal.
func WithRepository(repo RunRepository) Option {
	return func(c *CLI) {
		c.repo = repo
	}
}

func WithBrowserFactory(f func(config.Browser, *zap.Logger) browser.Browser) Option {
	return func(c *CLI) {
		c.newBrowser = f
	}
}

func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *CLI) {
		c.in = bufio.NewReader(in)
		c.out = out
	}
}

func New(cfg *config.Cfg, log *logger.Zap, opts ...Option) *CLI {
	c := &CLI{
		cfg:        cfg,
		log:        log,
		newBrowser: NewBrowser,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.in == nil {
		c.in = bufio.NewReader(strings.NewReader(""))
	}
	if c.out == nil {
		c.out = io.Discard
	}
	return c
}

// NewBrowser picks the driver named in the configuration.
func NewBrowser(cfg config.Browser, log *zap.Logger) browser.Browser {
	bc := browser.Config{
		Engine:          browser.Engine(cfg.Engine),
		Headless:        cfg.Headless,
		UserDataDir:     cfg.UserDataDir,
		BrowsersPath:    cfg.BrowsersPath,
		Display:         cfg.Display,
		SlowMo:          cfg.SlowMo,
		Timeout:         cfg.Timeout,
		NavigateTimeout: cfg.NavigateTimeout,
		WaitUntil:       cfg.WaitUntil,
		Logger:          log,
	}
	if cfg.Driver == "chromedp" {
		return cdp.New(bc)
	}
	return browser.New(bc)
}

func (c *CLI) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	return strings.TrimSpace(line), err
}

// runGrid launches a browser, opens the grid page at path and runs fn against it
// inside a journal run named after command.
func (c *CLI) runGrid(ctx context.Context, command, path string, fn func(context.Context, *commands.GridHandler) error) (err error) {
	br := c.newBrowser(c.cfg.Browser, c.log.Logger)
	if err := br.Launch(ctx); err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	defer func() {
		if cerr := br.Close(); cerr != nil {
			c.log.Warn("close browser", zap.Error(cerr))
		}
	}()

	opts := []grid.Option{grid.WithLogger(c.log.Logger)}
	if run := c.startRun(command); run != nil {
		opts = append(opts, grid.WithRecorder(database.NewJournal(c.repo, run.ID)))
		defer func() { c.finishRun(run, err) }()
	}

	mon := monitoring.New(br, c.cfg.BackOffice.URL, path, opts...)
	if c.isMonitoringPath(path) {
		err = mon.Open(ctx)
	} else {
		err = mon.GoTo(ctx, mon.URL())
	}
	if err != nil {
		return err
	}

	return fn(ctx, commands.NewGridHandler(mon, c.out))
}

// checkTable rejects grid keys the monitoring page does not have. Other pages are not checked.
func (c *CLI) checkTable(table, path string) error {
	if c.isMonitoringPath(path) && !monitoring.IsKnownTable(table) {
		return fmt.Errorf("%w %q, want one of %s", ErrUnknownTable, table, strings.Join(monitoring.Tables, ", "))
	}
	return nil
}

func (c *CLI) isMonitoringPath(path string) bool {
	return path == c.cfg.BackOffice.MonitoringPath
}

func (c *CLI) startRun(command string) *database.Run {
	if c.repo == nil {
		return nil
	}
	run := &database.Run{Command: command, Status: database.RunRunning}
	if err := c.repo.CreateRun(run); err != nil {
		c.log.Warn("journal run not created, continuing without journal", zap.Error(err))
		return nil
	}
	c.log.Debug("journal run started", zap.Uint("run_id", run.ID), zap.String("command", command))
	return run
}

func (c *CLI) finishRun(run *database.Run, err error) {
	status, summary := database.RunPassed, ""
	if err != nil {
		status, summary = database.RunFailed, err.Error()
	}
	if ferr := c.repo.FinishRun(run.ID, status, summary); ferr != nil {
		c.log.Warn("journal run not finished", zap.Uint("run_id", run.ID), zap.Error(ferr))
	}
}

func (c *CLI) runsHandler() (*commands.RunsHandler, error) {
	if c.repo == nil {
		return nil, ErrNoJournal
	}
	return commands.NewRunsHandler(c.repo, c.out), nil
}
