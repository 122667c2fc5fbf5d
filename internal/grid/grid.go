// Package grid models the filterable, row-actionable data tables of the back office.
//
// A GridPage is bound to one browser page and is not safe for concurrent use.
// Each operation runs its browser actions in order and returns the first failure;
// nothing is retried.
package grid

import (
	"context"
	"time"

	"go.uber.org/zap"

	"boTester/internal/browser"
	"boTester/internal/page"
)

// DefaultResetTimeout bounds how long ResetFilter looks for the reset button.
const DefaultResetTimeout = 2 * time.Second

type GridPage struct {
	page.BasePage

	log          *zap.Logger
	recorder     Recorder
	resetTimeout time.Duration
}

type Option func(*GridPage)

func WithLogger(log *zap.Logger) Option {
	return func(g *GridPage) {
		if log != nil {
			g.log = log
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(g *GridPage) {
		g.recorder = r
	}
}

func WithResetTimeout(d time.Duration) Option {
	return func(g *GridPage) {
		if d > 0 {
			g.resetTimeout = d
		}
	}
}

func New(p browser.Page, title string, opts ...Option) *GridPage {
	g := &GridPage{
		BasePage:     page.NewBasePage(p, title),
		log:          zap.NewNop(),
		resetTimeout: DefaultResetTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ActionOptions configure a single row action.
type ActionOptions struct {
	AcceptDialog bool
}

type ActionOption func(*ActionOptions)

// WithDialogResponse sets how the native confirmation dialog fired by the action is answered.
// Actions accept it by default.
func WithDialogResponse(accept bool) ActionOption {
	return func(o *ActionOptions) {
		o.AcceptDialog = accept
	}
}

func actionOptions(opts []ActionOption) ActionOptions {
	o := ActionOptions{AcceptDialog: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// track runs fn as one named grid operation, logging and recording its outcome.
// fn may fill a.Detail.
func (g *GridPage) track(ctx context.Context, a *Action, fn func() error) error {
	start := time.Now()
	fields := []zap.Field{
		zap.String("op", a.Operation),
		zap.String("table", a.Table),
	}
	if a.Row > 0 {
		fields = append(fields, zap.Int("row", a.Row))
	}
	if a.Column != "" {
		fields = append(fields, zap.String("column", a.Column))
	}

	g.log.Debug("grid action", fields...)
	err := fn()
	a.Duration = time.Since(start)
	a.Err = err

	if err != nil {
		g.log.Warn("grid action failed", append(fields, zap.Error(err))...)
	}

	if g.recorder != nil {
		if rerr := g.recorder.RecordAction(ctx, *a); rerr != nil {
			g.log.Warn("record grid action", append(fields, zap.Error(rerr))...)
		}
	}
	return err
}
