// Package keymap defines keybindings for the snippet browser.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the browser.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back leaves the snippet view or the search box.
	Back key.Binding

	// Search focuses the search box.
	Search key.Binding

	// Up navigates up in the list.
	Up key.Binding

	// Down navigates down in the list.
	Down key.Binding

	// Select opens the highlighted snippet, or runs the search from the search box.
	Select key.Binding

	// Reload shows the full catalog again.
	Reload key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "catalog"),
		),
	}
}

// ListHelp returns keybindings shown under the snippet list.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Search, k.Select, k.Reload, k.Quit}
}

// SnippetHelp returns keybindings shown while viewing one snippet.
func (k *KeyMap) SnippetHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// InputHelp returns keybindings shown while the search box has focus.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		k.Back,
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
