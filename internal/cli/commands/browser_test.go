package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginBrowser struct {
	launchErr error
	visited   string
	closed    bool
}

func (b *loginBrowser) Launch(ctx context.Context) error { return b.launchErr }
func (b *loginBrowser) Close() error                     { b.closed = true; return nil }
func (b *loginBrowser) Goto(ctx context.Context, url string) error {
	b.visited = url
	return nil
}
func (b *loginBrowser) Title(ctx context.Context) (string, error)        { return "", nil }
func (b *loginBrowser) Click(ctx context.Context, selector string) error { return nil }
func (b *loginBrowser) ClickAndWaitForNavigation(ctx context.Context, selector string) error {
	return nil
}
func (b *loginBrowser) SetValue(ctx context.Context, selector, value string) error { return nil }
func (b *loginBrowser) SelectByVisibleText(ctx context.Context, selector, label string) error {
	return nil
}
func (b *loginBrowser) GetTextContent(ctx context.Context, selector string) (string, error) {
	return "", nil
}
func (b *loginBrowser) GetNumberFromText(ctx context.Context, selector string) (int, error) {
	return 0, nil
}
func (b *loginBrowser) GetAttribute(ctx context.Context, selector, name string) (string, error) {
	return "", nil
}
func (b *loginBrowser) ElementNotVisible(ctx context.Context, selector string, timeout time.Duration) (bool, error) {
	return true, nil
}
func (b *loginBrowser) WaitForVisibleSelector(ctx context.Context, selector string) error { return nil }
func (b *loginBrowser) ArmDialog(accept bool) func()                                   { return func() {} }

func TestBrowserHandlerLogin(t *testing.T) {
	var out bytes.Buffer
	br := &loginBrowser{}
	h := NewBrowserHandler(br, func() (string, error) { return "", io.EOF }, &out)

	require.NoError(t, h.Login(context.Background(), "http://shop.local/admin-dev/"))
	assert.Equal(t, "http://shop.local/admin-dev/", br.visited)
	assert.True(t, br.closed)
	assert.Contains(t, out.String(), "session saved")
}

func TestBrowserHandlerLoginLaunchFailure(t *testing.T) {
	br := &loginBrowser{launchErr: errors.New("no chromium")}
	h := NewBrowserHandler(br, func() (string, error) { return "", nil }, &bytes.Buffer{})

	err := h.Login(context.Background(), "http://shop.local/")
	require.Error(t, err)
	assert.Empty(t, br.visited)
	assert.False(t, br.closed)
}
