// Package bookdetails provides the full record view for a single book.
package bookdetails

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bookdex-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bookdex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// View is the book details view.
type View struct {
	styles *styles.Styles

	book         *domain.Book
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
}

// NewView creates a new book details view.
func NewView(s *styles.Styles) *View {
	return &View{
		styles: s,
	}
}

// SetBook sets the book to display.
func (v *View) SetBook(book *domain.Book) {
	v.book = book
	v.scrollOffset = 0
	v.err = nil
}

// SetError sets an error to display.
func (v *View) SetError(err error) {
	v.err = err
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the book details view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		maxOffset := v.maxScrollOffset()
		if v.scrollOffset < maxOffset {
			v.scrollOffset++
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	}

	return v, nil
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 6
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	lines := v.buildContent()
	maxOffset := len(lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	if v.book == nil {
		return nil
	}

	var lines []string

	lines = append(lines, v.formatField("Title", v.book.Title))
	if v.book.Subtitle != "" {
		lines = append(lines, v.formatField("Subtitle", v.book.Subtitle))
	}
	if by := authorNames(v.book); by != "" {
		lines = append(lines, v.formatField("Authors", by))
	}
	if v.book.ISBN13 != "" {
		lines = append(lines, v.formatField("ISBN-13", v.book.ISBN13))
	}
	if v.book.ISBN10 != "" {
		lines = append(lines, v.formatField("ISBN-10", v.book.ISBN10))
	}
	if v.book.Publisher != "" {
		lines = append(lines, v.formatField("Publisher", v.book.Publisher))
	}
	if v.book.PublishedDate != "" {
		lines = append(lines, v.formatField("Published", v.book.PublishedDate))
	}
	if v.book.PageCount > 0 {
		lines = append(lines, v.formatField("Pages", fmt.Sprintf("%d", v.book.PageCount)))
	}
	lines = append(lines, v.formatField("Format", v.book.Format.String()))
	if v.book.Series != nil {
		series := v.book.Series.Name
		if v.book.Series.Order != nil {
			series = fmt.Sprintf("%s #%d", series, *v.book.Series.Order)
		}
		lines = append(lines, v.formatField("Series", series))
	}
	if v.book.Rating > 0 {
		rating := fmt.Sprintf("%.1f (%d ratings)", v.book.Rating, v.book.RatingCount)
		lines = append(lines, v.formatField("Rating", rating))
	}
	if flag := v.book.ContentFlag.String(); flag != "" {
		lines = append(lines, v.formatField("Content", flag))
	}
	if len(v.book.Subjects) > 0 {
		lines = append(lines, v.formatField("Subjects", strings.Join(v.book.Subjects, ", ")))
	}
	if len(v.book.DataSources) > 0 {
		sources := make([]string, 0, len(v.book.DataSources))
		for _, p := range v.book.DataSources {
			sources = append(sources, p.String())
		}
		lines = append(lines, v.formatField("Sources", strings.Join(sources, ", ")))
	}

	// Description section
	if v.book.Description != "" {
		lines = append(lines, "", "Description:")
		for _, line := range v.wrapText(v.book.Description) {
			lines = append(lines, "  "+line)
		}
	}

	return lines
}

// authorNames joins the author names for display.
func authorNames(book *domain.Book) string {
	if len(book.Authors) == 0 {
		return ""
	}
	names := make([]string, 0, len(book.Authors))
	for _, a := range book.Authors {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// formatField formats a field for display.
func (v *View) formatField(label, value string) string {
	return fmt.Sprintf("%-12s %s", label+":", value)
}

// wrapText wraps text to fit the view width.
func (v *View) wrapText(text string) []string {
	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if len(line) <= contentWidth {
			lines = append(lines, line)
			continue
		}
		// Hard wrap long lines
		for len(line) > contentWidth {
			lines = append(lines, line[:contentWidth])
			line = line[contentWidth:]
		}
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}

// View renders the book details view.
func (v *View) View() string {
	var b strings.Builder

	// Title
	b.WriteString(v.styles.Title.Render("Book Details"))
	b.WriteString("\n")

	// Separator
	sepWidth := minInt(v.width-4, 60)
	if sepWidth < 1 {
		sepWidth = 1
	}
	b.WriteString(strings.Repeat("─", sepWidth))
	b.WriteString("\n\n")

	// Error state
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// No book
	if v.book == nil {
		b.WriteString(v.styles.Muted.Render("No book selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Content
	lines := v.buildContent()
	visibleLines := v.visibleLines()
	for i := v.scrollOffset; i < len(lines) && i < v.scrollOffset+visibleLines; i++ {
		line := lines[i]

		// Style based on content
		switch {
		case line == "Description:":
			b.WriteString(v.styles.Subtitle.Render(line))
		case strings.HasPrefix(line, "  "):
			// Description body
			b.WriteString(v.styles.Normal.Render(line))
		case strings.Contains(line, ":"):
			// Field label-value
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				b.WriteString(v.styles.Subtitle.Render(parts[0] + ":"))
				b.WriteString(v.styles.Normal.Render(parts[1]))
			} else {
				b.WriteString(v.styles.Normal.Render(line))
			}
		default:
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(lines) > visibleLines {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1,
			minInt(v.scrollOffset+visibleLines, len(lines)),
			len(lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Book returns the current book.
func (v *View) Book() *domain.Book {
	return v.book
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
