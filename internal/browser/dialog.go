package browser

import (
	"sync"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

type dialogAnswerer interface {
	Accept(promptText ...string) error
	Dismiss() error
}

// DialogGate holds at most one pending answer for the next native dialog.
// Dialogs that arrive while nothing is armed are dismissed.
type DialogGate struct {
	mu     sync.Mutex
	armed  bool
	accept bool
	gen    uint64
	log    *zap.Logger
}

func NewDialogGate(log *zap.Logger) *DialogGate {
	if log == nil {
		log = zap.NewNop()
	}
	return &DialogGate{log: log}
}

// Arm sets the answer for the next dialog. The returned func disarms it
// unless a later Arm already replaced it.
func (g *DialogGate) Arm(accept bool) func() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.gen++
	gen := g.gen
	g.armed = true
	g.accept = accept

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.gen == gen {
			g.armed = false
		}
	}
}

// Take consumes the pending answer.
func (g *DialogGate) Take() (accept, armed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.armed {
		return false, false
	}
	g.armed = false
	return g.accept, true
}

func (g *DialogGate) handle(dialog playwright.Dialog) {
	g.respond(dialog, dialog.Type())
}

// respond answers dialog and logs a driver failure to do so.
func (g *DialogGate) respond(dialog dialogAnswerer, kind string) {
	if err := g.answer(dialog); err != nil {
		g.log.Warn("answer dialog", zap.String("type", kind), zap.Error(err))
	}
}

func (g *DialogGate) answer(dialog dialogAnswerer) error {
	accept, armed := g.Take()
	if armed && accept {
		return dialog.Accept()
	}
	return dialog.Dismiss()
}

func (b *PlaywrightBrowser) ArmDialog(accept bool) func() {
	return b.dialogs.Arm(accept)
}
