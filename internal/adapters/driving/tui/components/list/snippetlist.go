// Package list provides list display components for the snippet browser.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

// Item is one row: a keyword and, when known, a preview of its message.
type Item struct {
	Keyword string
	Preview string
}

// FromKeywords builds rows for catalog entries.
func FromKeywords(keywords []string) []Item {
	items := make([]Item, 0, len(keywords))
	for _, k := range keywords {
		items = append(items, Item{Keyword: k})
	}
	return items
}

// FromSnippets builds rows for search results.
func FromSnippets(snippets []domain.Snippet) []Item {
	items := make([]Item, 0, len(snippets))
	for _, s := range snippets {
		items = append(items, Item{Keyword: s.Keyword, Preview: s.Message})
	}
	return items
}

// SnippetList displays snippets in a navigable list.
type SnippetList struct {
	title    string
	items    []Item
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewSnippetList creates a new snippet list component.
func NewSnippetList(s *styles.Styles) *SnippetList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &SnippetList{
		title:  "Catalog",
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *SnippetList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *SnippetList) Update(msg tea.Msg) (*SnippetList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *SnippetList) View() string {
	header := l.styles.Title.Render(fmt.Sprintf("%s (%d)", l.title, len(l.items)))
	if len(l.items) == 0 {
		return header + "\n\n" + l.styles.Muted.Render(domain.NotAvailable)
	}

	lines := make([]string, 0, len(l.items)+2)
	lines = append(lines, header, "")

	visible := max(l.height-4, 1)
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.items))

	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i, l.items[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *SnippetList) renderItem(index int, item Item) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	keyword := truncate(item.Keyword, max(l.width/3, 10))
	line := indicator + keyword
	if index == l.selected {
		line = l.styles.Selected.Render(line)
	} else {
		line = l.styles.Keyword.Render(line)
	}

	if item.Preview == "" {
		return line
	}
	preview := truncate(strings.ReplaceAll(item.Preview, "\n", " "), max(l.width-len(keyword)-6, 10))
	return line + "  " + l.styles.Muted.Render(preview)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// SetItems replaces the rows and resets the selection.
func (l *SnippetList) SetItems(title string, items []Item) {
	l.title = title
	l.items = items
	l.selected = 0
}

// Items returns the current rows.
func (l *SnippetList) Items() []Item {
	return l.items
}

// Title returns the list heading.
func (l *SnippetList) Title() string {
	return l.title
}

// Selected returns the index of the selected row.
func (l *SnippetList) Selected() int {
	return l.selected
}

// SelectedItem returns the selected row, or false when the list is empty.
func (l *SnippetList) SelectedItem() (Item, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return Item{}, false
	}
	return l.items[l.selected], true
}

// MoveUp moves selection up.
func (l *SnippetList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *SnippetList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *SnippetList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of rows.
func (l *SnippetList) Count() int {
	return len(l.items)
}
