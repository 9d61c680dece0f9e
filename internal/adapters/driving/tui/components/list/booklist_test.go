package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bookdex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

func sampleBooks() []domain.Book {
	return []domain.Book{
		{
			Title:         "A Wizard of Earthsea",
			Authors:       []domain.Author{{Name: "Ursula K. Le Guin"}},
			ISBN13:        "9780547773742",
			PublishedDate: "2012-09-11",
			Format:        domain.FormatNovel,
		},
		{
			Title:         "The Tombs of Atuan",
			Authors:       []domain.Author{{Name: "Ursula K. Le Guin"}},
			PublishedDate: "2012-09-11",
			Format:        domain.FormatNovel,
		},
		{
			Title:         "The Farthest Shore",
			Authors:       []domain.Author{{Name: "Ursula K. Le Guin"}},
			PublishedDate: "2012-09-11",
			Format:        domain.FormatNovel,
		},
	}
}

func TestNewBookList(t *testing.T) {
	s := styles.DefaultStyles()
	list := NewBookList(s)

	require.NotNil(t, list)
	assert.Equal(t, 0, list.Selected())
	assert.True(t, list.IsEmpty())
}

func TestNewBookList_NilStyles(t *testing.T) {
	list := NewBookList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
}

func TestBookList_Init(t *testing.T) {
	list := NewBookList(nil)

	cmd := list.Init()

	assert.Nil(t, cmd)
}

func TestBookList_SetBooks(t *testing.T) {
	list := NewBookList(nil)
	books := sampleBooks()

	list.SetBooks(books)

	assert.Equal(t, 3, list.Count())
	assert.False(t, list.IsEmpty())
	assert.Equal(t, 0, list.Selected())
}

func TestBookList_Books(t *testing.T) {
	list := NewBookList(nil)
	books := sampleBooks()
	list.SetBooks(books)

	got := list.Books()

	assert.Equal(t, books, got)
}

func TestBookList_Selected(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())

	assert.Equal(t, 0, list.Selected())

	list.SetSelected(1)
	assert.Equal(t, 1, list.Selected())
}

func TestBookList_SetSelected_Valid(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())

	list.SetSelected(2)

	assert.Equal(t, 2, list.Selected())
}

func TestBookList_SetSelected_OutOfBounds(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())

	list.SetSelected(99)

	assert.Equal(t, 0, list.Selected()) // Unchanged
}

func TestBookList_SetSelected_Negative(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())

	list.SetSelected(-1)

	assert.Equal(t, 0, list.Selected()) // Unchanged
}

func TestBookList_SelectedBook(t *testing.T) {
	list := NewBookList(nil)
	books := sampleBooks()
	list.SetBooks(books)

	book := list.SelectedBook()

	require.NotNil(t, book)
	assert.Equal(t, "A Wizard of Earthsea", book.Title)
}

func TestBookList_SelectedBook_Empty(t *testing.T) {
	list := NewBookList(nil)

	book := list.SelectedBook()

	assert.Nil(t, book)
}

func TestBookList_MoveUp(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())
	list.SetSelected(1)

	list.MoveUp()

	assert.Equal(t, 0, list.Selected())
}

func TestBookList_MoveUp_AtTop(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())

	list.MoveUp()

	assert.Equal(t, 0, list.Selected()) // Stays at 0
}

func TestBookList_MoveDown(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())

	list.MoveDown()

	assert.Equal(t, 1, list.Selected())
}

func TestBookList_MoveDown_AtBottom(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())
	list.SetSelected(2)

	list.MoveDown()

	assert.Equal(t, 2, list.Selected()) // Stays at 2
}

func TestBookList_Update_KeyUp(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())
	list.SetSelected(1)

	msg := tea.KeyMsg{Type: tea.KeyUp}
	updated, cmd := list.Update(msg)

	assert.Equal(t, list, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, list.Selected())
}

func TestBookList_Update_KeyDown(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())

	msg := tea.KeyMsg{Type: tea.KeyDown}
	updated, cmd := list.Update(msg)

	assert.Equal(t, list, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, list.Selected())
}

func TestBookList_Update_KeyK(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())
	list.SetSelected(1)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	list.Update(msg)

	assert.Equal(t, 0, list.Selected())
}

func TestBookList_Update_KeyJ(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	list.Update(msg)

	assert.Equal(t, 1, list.Selected())
}

func TestBookList_View_Empty(t *testing.T) {
	list := NewBookList(nil)

	view := list.View()

	assert.Contains(t, view, "No results")
}

func TestBookList_View_WithBooks(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())

	view := list.View()

	assert.Contains(t, view, "Results (3)")
	assert.Contains(t, view, "A Wizard of Earthsea")
	assert.Contains(t, view, "by Ursula K. Le Guin")
	assert.Contains(t, view, "2012-09-11")
}

func TestBookList_View_ShowsFormatAndISBN(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())

	view := list.View()

	assert.Contains(t, view, "Novel")
	assert.Contains(t, view, "9780547773742")
}

func TestBookList_View_SelectedIndicator(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks(sampleBooks())

	view := list.View()

	assert.Contains(t, view, ">") // Selected indicator
}

func TestBookList_SetDimensions(t *testing.T) {
	list := NewBookList(nil)

	list.SetDimensions(100, 20)

	assert.Equal(t, 100, list.Width())
	assert.Equal(t, 20, list.Height())
}

func TestBookList_Width(t *testing.T) {
	list := NewBookList(nil)

	assert.Equal(t, 80, list.Width()) // Default
}

func TestBookList_Height(t *testing.T) {
	list := NewBookList(nil)

	assert.Equal(t, 10, list.Height()) // Default
}

func TestBookList_Count(t *testing.T) {
	list := NewBookList(nil)

	assert.Equal(t, 0, list.Count())

	list.SetBooks(sampleBooks())
	assert.Equal(t, 3, list.Count())
}

func TestBookList_IsEmpty(t *testing.T) {
	list := NewBookList(nil)

	assert.True(t, list.IsEmpty())

	list.SetBooks(sampleBooks())
	assert.False(t, list.IsEmpty())
}

func TestBookList_View_UntitledBook(t *testing.T) {
	list := NewBookList(nil)
	list.SetBooks([]domain.Book{
		{Title: ""},
	})

	view := list.View()

	assert.Contains(t, view, "(Untitled)")
}

func TestBookList_View_LongTitle(t *testing.T) {
	list := NewBookList(nil)
	longTitle := "This is a very long book title that should be truncated when displayed in the list view"
	list.SetBooks([]domain.Book{
		{Title: longTitle},
	})

	view := list.View()

	// Should be truncated with ellipsis
	assert.Contains(t, view, "...")
}
