// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of running a tea.Program, the Driver calls Update directly and
// follows every returned Cmd to completion on the calling goroutine, so
// assertions see the final model state with no sleeps or polling.
//
// Cursor blink Cmds from bubbles/textinput block on timer channels; the
// driver runs every Cmd under a short timeout and drops the ones that
// do not return promptly.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds Cmd chasing so a model that keeps emitting commands
// fails the drain loudly instead of hanging the test.
const maxDepth = 100

// cmdTimeout separates real Cmds (service calls against the in-memory
// database, message factories) from blink timers: the former return in
// microseconds, the latter block for around half a second.
const cmdTimeout = 10 * time.Millisecond

// Driver holds the model under test. Model is exported so tests can
// type-assert into it and inspect state directly.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting records that tea.Quit was produced during a drain. The
	// real runtime intercepts tea.QuitMsg before models see it, so the
	// driver tracks it here.
	Quitting bool
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize delivers an initial WindowSizeMsg so views depending on
// terminal dimensions render fully.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// New wraps a model. Follow with DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and follows everything it produces.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send feeds one message through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// SendKey sends a raw key message.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a single printable character.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.SendKey(tea.KeyMsg{Type: tea.KeyEnter}) }
func (d *Driver) PressEsc()   { d.T.Helper(); d.SendKey(tea.KeyMsg{Type: tea.KeyEsc}) }
func (d *Driver) PressCtrlC() { d.T.Helper(); d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlC}) }
func (d *Driver) PressUp()    { d.T.Helper(); d.SendKey(tea.KeyMsg{Type: tea.KeyUp}) }
func (d *Driver) PressDown()  { d.T.Helper(); d.SendKey(tea.KeyMsg{Type: tea.KeyDown}) }

// Type sends a string one character at a time, as a user would.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

// drain executes cmd and feeds its message back through Update,
// recursing on any command that produces.
func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.T.Fatalf("teatest: command chain exceeded %d steps", maxDepth)
		return
	}

	msg := runWithTimeout(cmd)
	if msg == nil || isBlinkMsg(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}

	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated

	default:
		updated, next := d.Model.Update(msg)
		d.Model = updated
		d.drain(next, depth+1)
	}
}

// runWithTimeout executes cmd on its own goroutine and gives up after
// cmdTimeout, returning nil for commands that block on timers.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlinkMsg matches the unexported blink messages from bubbles/cursor,
// which chain into further blocking timer commands when processed.
func isBlinkMsg(msg tea.Msg) bool {
	name := fmt.Sprintf("%T", msg)
	return strings.Contains(name, "Blink") || strings.Contains(name, "blink")
}
