package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeDialog struct {
	accepted  int
	dismissed int
	err       error
}

func (d *fakeDialog) Accept(promptText ...string) error {
	d.accepted++
	return d.err
}

func (d *fakeDialog) Dismiss() error {
	d.dismissed++
	return d.err
}

func TestDialogGateUnarmedDismisses(t *testing.T) {
	g := NewDialogGate(nil)
	d := &fakeDialog{}

	assert.NoError(t, g.answer(d))
	assert.Equal(t, 0, d.accepted)
	assert.Equal(t, 1, d.dismissed)
}

func TestDialogGateIsOneShot(t *testing.T) {
	g := NewDialogGate(nil)
	release := g.Arm(true)
	defer release()

	first, second := &fakeDialog{}, &fakeDialog{}
	assert.NoError(t, g.answer(first))
	assert.NoError(t, g.answer(second))

	assert.Equal(t, 1, first.accepted)
	assert.Equal(t, 1, second.dismissed)
}

func TestDialogGateArmDismiss(t *testing.T) {
	g := NewDialogGate(nil)
	release := g.Arm(false)
	defer release()

	d := &fakeDialog{}
	assert.NoError(t, g.answer(d))
	assert.Equal(t, 1, d.dismissed)
}

func TestDialogGateRelease(t *testing.T) {
	g := NewDialogGate(nil)
	release := g.Arm(true)
	release()

	d := &fakeDialog{}
	assert.NoError(t, g.answer(d))
	assert.Equal(t, 0, d.accepted)
}

func TestDialogGateStaleReleaseKeepsNewerArm(t *testing.T) {
	g := NewDialogGate(nil)
	stale := g.Arm(true)
	current := g.Arm(true)
	defer current()

	stale()

	d := &fakeDialog{}
	assert.NoError(t, g.answer(d))
	assert.Equal(t, 1, d.accepted)
}

func TestDialogGateLogsAnswerFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	g := NewDialogGate(zap.New(core))
	release := g.Arm(true)
	defer release()

	g.respond(&fakeDialog{err: errors.New("target closed")}, "confirm")

	entries := logs.FilterMessage("answer dialog").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "confirm", entries[0].ContextMap()["type"])
	assert.Equal(t, "target closed", entries[0].ContextMap()["error"])
}

func TestDialogGateAnswerSuccessIsQuiet(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	g := NewDialogGate(zap.New(core))

	g.respond(&fakeDialog{}, "alert")
	assert.Zero(t, logs.Len())
}
