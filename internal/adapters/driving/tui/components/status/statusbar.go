// Package status provides the status bar for the snippet browser.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/tui/styles"
)

// State represents what the browser is doing.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
	StateWarning State = "warning"
)

// Hints selects which keybindings the bar advertises.
type Hints int

const (
	HintsList Hints = iota
	HintsSnippet
	HintsInput
)

// Bar displays status and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	hints   Hints
	message string
	count   int
	width   int
}

// NewBar creates a new status bar.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := max(b.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (b *Bar) renderLeft() string {
	switch b.state {
	case StateLoading:
		return b.styles.Muted.Render("Loading...")
	case StateError:
		return b.styles.Error.Render("Error: " + b.message)
	case StateWarning:
		return b.styles.Warning.Render("Warning - " + b.message)
	case StateReady:
	}
	if b.count > 0 {
		return b.styles.Normal.Render(fmt.Sprintf("%d snippets", b.count))
	}
	return b.styles.Muted.Render("Ready")
}

func (b *Bar) renderRight() string {
	var bindings []key.Binding
	switch b.hints {
	case HintsSnippet:
		bindings = b.keymap.SnippetHelp()
	case HintsInput:
		bindings = b.keymap.InputHelp()
	default:
		bindings = b.keymap.ListHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return b.styles.Muted.Render(strings.Join(parts, " | "))
}

// SetReady clears any message and shows count.
func (b *Bar) SetReady(count int) {
	b.state = StateReady
	b.message = ""
	b.count = count
}

// SetLoading marks an outstanding request.
func (b *Bar) SetLoading() {
	b.state = StateLoading
}

// SetError shows err until the next state change.
func (b *Bar) SetError(err error) {
	b.state = StateError
	b.message = err.Error()
}

// SetWarning shows a warning message.
func (b *Bar) SetWarning(msg string) {
	b.state = StateWarning
	b.message = msg
}

// SetHints selects the advertised keybindings.
func (b *Bar) SetHints(h Hints) {
	b.hints = h
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}
