package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bookdex-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bookdex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bookdex-cli/internal/adapters/driving/tui/views/bookdetails"
	"github.com/custodia-labs/bookdex-cli/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// searchView is the styled search view component.
	searchView *search.View

	// detailsView is the book details view component.
	detailsView *bookdetails.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// query is the current search query (kept for accessor compatibility).
	query string

	// results holds the current search results (kept for accessor compatibility).
	results []domain.Book

	// selectedIndex is the currently selected result (kept for accessor compatibility).
	selectedIndex int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	searchView := search.NewView(s, nil, ports.Search, ports.Lookup)
	detailsView := bookdetails.NewView(s)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		searchView:  searchView,
		detailsView: detailsView,
		currentView: messages.ViewSearch, // Start at the search prompt
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("bookdex - Catalog Search"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.detailsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			// Sync state from searchView for accessor compatibility
			a.query = a.searchView.Query()
			a.results = a.searchView.Results()
			a.selectedIndex = a.searchView.SelectedIndex()
			a.err = a.searchView.Err()
			return a, cmd

		case messages.ViewBookDetails:
			a.detailsView, cmd = a.detailsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc or ? from help goes back to search
			if msg.Type == tea.KeyEsc || msg.String() == "?" {
				a.currentView = messages.ViewSearch
				return a, nil
			}
			if msg.String() == "q" {
				return a, tea.Quit
			}
			return a, nil
		}
		return a, nil

	case messages.SearchCompleted:
		// Forward to searchView
		a.searchView, cmd = a.searchView.Update(msg)
		// Sync state
		a.results = a.searchView.Results()
		a.err = a.searchView.Err()
		a.selectedIndex = 0
		return a, cmd

	case messages.BookSelected:
		// Navigate to book details
		a.detailsView.SetBook(&msg.Book)
		a.currentView = messages.ViewBookDetails
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewSearch:
			// Returning to search keeps any existing results on screen
			return a, a.searchView.Init()
		case messages.ViewBookDetails, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewBookDetails:
			a.detailsView, cmd = a.detailsView.Update(msg)
		case messages.ViewHelp:
			// Help view doesn't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewBookDetails:
		a.detailsView, cmd = a.detailsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewBookDetails:
		return a.detailsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.searchView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back / cancel
  ctrl+c      Quit

Search:
  (type)      Enter search query
  enter       Submit search
  esc         Quit from the prompt

Results:
  j/k, ↑/↓    Navigate results
  enter       Open book details
  n           New search
  q           Quit

Details:
  j/k, ↑/↓    Scroll
  esc         Back to results

[esc] back to search`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.query
}

// Results returns the current search results.
func (a *App) Results() []domain.Book {
	return a.results
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.selectedIndex
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Also set view dimensions so they render properly
	a.searchView.SetDimensions(width, height)
	a.detailsView.SetDimensions(width, height)
}
