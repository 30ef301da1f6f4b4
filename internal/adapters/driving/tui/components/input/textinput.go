// Package input provides the search box for the snippet browser.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/tui/styles"
)

// SearchInput is the fragment box used to search snippet text.
// It starts blurred; the browser focuses it on demand.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewSearchInput creates a new search box.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "text fragment"
	ti.Prompt = "/ "
	ti.CharLimit = 512
	ti.Width = 50

	return &SearchInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Update forwards key input to the text box.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the search box.
func (s *SearchInput) View() string {
	label := s.styles.Title.Render("Find: ")
	box := s.styles.InputField.Render(s.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box)
}

// Value returns the current fragment.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue replaces the fragment.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Focus gives the box keyboard focus and starts the cursor blinking.
func (s *SearchInput) Focus() tea.Cmd {
	return tea.Batch(s.textinput.Focus(), textinput.Blink)
}

// Blur removes keyboard focus.
func (s *SearchInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the box has keyboard focus.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the rendered width, leaving room for the label.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.textinput.Width = max(width-12, 20)
}

// Width returns the current width.
func (s *SearchInput) Width() int {
	return s.width
}

// Reset clears the fragment.
func (s *SearchInput) Reset() {
	s.textinput.Reset()
}
