package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

// App is the snippet browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	list   *list.SnippetList
	search *input.SearchInput
	bar    *status.Bar

	currentView messages.ViewType

	// lookup is the snippet shown in ViewSnippet.
	lookup domain.Lookup

	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a browser over the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keys:        km,
		list:        list.NewSnippetList(s),
		search:      input.NewSearchInput(s),
		bar:         status.NewBar(s, km),
		currentView: messages.ViewList,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. It loads the catalog.
func (a *App) Init() tea.Cmd {
	a.bar.SetLoading()
	return tea.Batch(
		tea.SetWindowTitle("snippets"),
		a.loadCatalog(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.CatalogLoaded:
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, nil
		}
		a.err = nil
		a.list.SetItems("Catalog", list.FromKeywords(msg.Keywords))
		a.bar.SetReady(len(msg.Keywords))
		return a, nil

	case messages.SearchCompleted:
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, nil
		}
		a.err = nil
		a.list.SetItems(fmt.Sprintf("Search: %q", msg.Query), list.FromSnippets(msg.Results))
		if len(msg.Results) == 0 {
			a.bar.SetWarning("no snippets found")
		} else {
			a.bar.SetReady(len(msg.Results))
		}
		return a, nil

	case messages.SnippetLoaded:
		if msg.Err != nil {
			a.fail(msg.Err)
			return a, nil
		}
		a.err = nil
		a.lookup = msg.Lookup
		a.currentView = messages.ViewSnippet
		a.bar.SetHints(status.HintsSnippet)
		if msg.Lookup.Found {
			a.bar.SetReady(0)
		} else {
			a.bar.SetWarning(msg.Lookup.Keyword + " has no snippet stored against it")
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return a, tea.Quit
	}

	if a.search.Focused() {
		return a.handleInputKey(msg)
	}

	switch {
	case keymap.Matches(k, a.keys.Quit):
		return a, tea.Quit

	case a.currentView == messages.ViewSnippet:
		if keymap.Matches(k, a.keys.Back) {
			a.currentView = messages.ViewList
			a.bar.SetHints(status.HintsList)
			a.bar.SetReady(a.list.Count())
		}
		return a, nil

	case keymap.Matches(k, a.keys.Search):
		a.bar.SetHints(status.HintsInput)
		return a, a.search.Focus()

	case keymap.Matches(k, a.keys.Reload):
		a.search.Reset()
		a.bar.SetLoading()
		return a, a.loadCatalog()

	case keymap.Matches(k, a.keys.Select):
		item, ok := a.list.SelectedItem()
		if !ok {
			return a, nil
		}
		a.bar.SetLoading()
		return a, a.loadSnippet(item.Keyword)
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), a.keys.Back):
		a.search.Blur()
		a.bar.SetHints(status.HintsList)
		return a, nil

	case msg.Type == tea.KeyEnter:
		a.search.Blur()
		a.bar.SetHints(status.HintsList)
		a.bar.SetLoading()
		if a.search.Value() == "" {
			return a, a.loadCatalog()
		}
		return a, a.runSearch(a.search.Value())
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	return a, cmd
}

func (a *App) fail(err error) {
	a.err = err
	a.bar.SetError(err)
}

func (a *App) loadCatalog() tea.Cmd {
	svc, ctx := a.ports.Snippets, a.ctx
	return func() tea.Msg {
		keywords, err := svc.Catalog(ctx)
		return messages.CatalogLoaded{Keywords: keywords, Err: err}
	}
}

func (a *App) runSearch(fragment string) tea.Cmd {
	svc, ctx := a.ports.Snippets, a.ctx
	return func() tea.Msg {
		results, err := svc.Search(ctx, fragment)
		return messages.SearchCompleted{Query: fragment, Results: results, Err: err}
	}
}

func (a *App) loadSnippet(keyword string) tea.Cmd {
	svc, ctx := a.ports.Snippets, a.ctx
	return func() tea.Msg {
		lookup, err := svc.Get(ctx, keyword)
		return messages.SnippetLoaded{Lookup: lookup, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewSnippet:
		body = a.viewSnippet()
	default:
		body = a.search.View() + "\n\n" + a.list.View()
	}

	// Pin the status bar to the bottom row.
	gap := max(a.height-lipgloss.Height(body)-1, 0)
	return body + strings.Repeat("\n", gap) + "\n" + a.bar.View()
}

func (a *App) viewSnippet() string {
	title := a.styles.Keyword.Render(a.lookup.Keyword)
	text := a.lookup.Display()
	if !a.lookup.Found {
		text = a.styles.Muted.Render(text)
	}
	return title + "\n\n" + a.styles.Message.Width(max(a.width-4, 20)).Render(text)
}

// Run starts the browser in the alternate screen.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Lookup returns the snippet shown in the snippet view.
func (a *App) Lookup() domain.Lookup {
	return a.lookup
}

// Items returns the rows currently listed.
func (a *App) Items() []list.Item {
	return a.list.Items()
}

// Searching reports whether the search box has focus.
func (a *App) Searching() bool {
	return a.search.Focused()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.list.SetDimensions(width, height-5)
	a.search.SetWidth(width)
	a.bar.SetWidth(width)
}
