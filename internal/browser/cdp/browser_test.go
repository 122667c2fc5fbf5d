package cdp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"boTester/internal/browser"
)

func TestNotLaunched(t *testing.T) {
	ctx := context.Background()
	b := New(browser.Config{})

	err := b.Click(ctx, "#empty_category_grid_table")
	assert.ErrorIs(t, err, browser.ErrNotLaunched)

	_, err = b.GetTextContent(ctx, "#x")
	assert.ErrorIs(t, err, browser.ErrNotLaunched)

	_, err = b.ElementNotVisible(ctx, "#x", 0)
	assert.ErrorIs(t, err, browser.ErrNotLaunched)
}

func TestInvalidSelectorRejectedBeforeDriver(t *testing.T) {
	b := New(browser.Config{})
	err := b.Click(context.Background(), "https://shop.local")
	assert.ErrorIs(t, err, browser.ErrInvalidSelector)
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError("click", "#a", nil))

	err := wrapError("click", "#a", context.DeadlineExceeded)
	assert.ErrorIs(t, err, browser.ErrTimeout)

	other := errors.New("node not found")
	err = wrapError("click", "#a", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, browser.ErrTimeout)
}

func TestScriptsQuoteInput(t *testing.T) {
	script, err := selectByLabelScript(`#product_active`, `Yes "really"`)
	require.NoError(t, err)
	assert.Contains(t, script, `document.querySelector("#product_active")`)
	assert.Contains(t, script, `"Yes \"really\""`)

	script, err = hiddenScript(`button[name='product[actions][reset]']`)
	require.NoError(t, err)
	assert.Contains(t, script, `"button[name='product[actions][reset]']"`)
}

func TestDefaults(t *testing.T) {
	b := New(browser.Config{Headless: true})
	assert.NotZero(t, b.cfg.Timeout)
	assert.NotZero(t, b.cfg.NavigateTimeout)
	assert.NotEmpty(t, b.allocatorOptions())
}

func TestAnswerDialogFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	b := New(browser.Config{Logger: zap.New(core)})

	// a plain context has no chromedp target, so the answer fails
	b.answerDialog(context.Background(), "confirm", true)

	entries := logs.FilterMessage("answer dialog").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "confirm", entries[0].ContextMap()["type"])
	assert.Equal(t, true, entries[0].ContextMap()["accept"])
}
