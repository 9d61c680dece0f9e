// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bookdex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// BookList displays search results in a navigable list.
type BookList struct {
	books    []domain.Book
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewBookList creates a new book list component.
func NewBookList(s *styles.Styles) *BookList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &BookList{
		books:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the book list.
func (r *BookList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *BookList) Update(msg tea.Msg) (*BookList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the book list.
func (r *BookList) View() string {
	if len(r.books) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.books)*2+2)

	// Header
	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.books)))
	lines = append(lines, header, "")

	// Calculate visible range based on height
	// Each book takes 2-3 lines (title + optional author + detail), so divide by 3 for safety
	visibleCount := (r.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.books) {
		end = len(r.books)
	}

	for i := start; i < end; i++ {
		line := r.renderBook(i, &r.books[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderBook formats a single book with its author and identifier lines.
func (r *BookList) renderBook(index int, book *domain.Book) string {
	// Indicator for selected item
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := book.Title
	if title == "" {
		title = "(Untitled)"
	}

	// Truncate title if too long
	maxTitleLen := r.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	published := book.PublishedDate

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, published))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			r.styles.Muted.Render(published)
	}

	// Detail line (format and identifier)
	details := make([]string, 0, 2)
	if book.Format != domain.FormatUnknown {
		details = append(details, book.Format.String())
	}
	if book.ISBN13 != "" {
		details = append(details, book.ISBN13)
	}
	detailLine := r.styles.Muted.Render("    " + strings.Join(details, "  "))

	// Author line (if available)
	var authorLine string
	if by := byline(book); by != "" {
		authorLine = "\n" + r.styles.Subtitle.Render("    "+by)
	}

	return titleLine + authorLine + "\n" + detailLine
}

// byline joins the author names for display.
func byline(book *domain.Book) string {
	if len(book.Authors) == 0 {
		return ""
	}
	names := make([]string, 0, len(book.Authors))
	for _, a := range book.Authors {
		names = append(names, a.Name)
	}
	return "by " + strings.Join(names, ", ")
}

// SetBooks updates the book list.
func (r *BookList) SetBooks(books []domain.Book) {
	r.books = books
	r.selected = 0
}

// Books returns the current books.
func (r *BookList) Books() []domain.Book {
	return r.books
}

// Selected returns the index of the selected book.
func (r *BookList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *BookList) SetSelected(index int) {
	if index >= 0 && index < len(r.books) {
		r.selected = index
	}
}

// SelectedBook returns the currently selected book, or nil if none.
func (r *BookList) SelectedBook() *domain.Book {
	if len(r.books) == 0 || r.selected < 0 || r.selected >= len(r.books) {
		return nil
	}
	return &r.books[r.selected]
}

// MoveUp moves selection up.
func (r *BookList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *BookList) MoveDown() {
	if r.selected < len(r.books)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *BookList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *BookList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *BookList) Height() int {
	return r.height
}

// Count returns the number of books.
func (r *BookList) Count() int {
	return len(r.books)
}

// IsEmpty returns whether the list is empty.
func (r *BookList) IsEmpty() bool {
	return len(r.books) == 0
}
