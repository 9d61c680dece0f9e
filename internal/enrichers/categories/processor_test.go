package categories

import (
	"reflect"
	"testing"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

var testStopWords = []string{"general", "electronic books", "books", "juvenile fiction", "young adult fiction"}

func TestProcessor_Name(t *testing.T) {
	p := New(testStopWords)
	if p.Name() != "categories" {
		t.Errorf("expected name 'categories', got %q", p.Name())
	}
}

func TestProcessor_Enrich_SplitsHierarchicalSubjects(t *testing.T) {
	p := New(testStopWords)
	book := &domain.Book{
		Subjects: []string{"Fiction / Fantasy / Epic"},
	}

	if err := p.Enrich(book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"Epic", "Fantasy", "Fiction"}
	if !reflect.DeepEqual(book.Subjects, expected) {
		t.Errorf("expected %v, got %v", expected, book.Subjects)
	}
}

func TestProcessor_Enrich_SplitsDoubleDashSubjects(t *testing.T) {
	p := New(testStopWords)
	book := &domain.Book{
		Subjects: []string{"Science fiction--History and criticism"},
	}

	if err := p.Enrich(book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"History and criticism", "Science fiction"}
	if !reflect.DeepEqual(book.Subjects, expected) {
		t.Errorf("expected %v, got %v", expected, book.Subjects)
	}
}

func TestProcessor_Enrich_DropsStopWords(t *testing.T) {
	p := New(testStopWords)
	book := &domain.Book{
		Subjects: []string{"Fiction / General", "Juvenile Fiction / Dragons"},
	}

	if err := p.Enrich(book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"Dragons", "Fiction"}
	if !reflect.DeepEqual(book.Subjects, expected) {
		t.Errorf("expected %v, got %v", expected, book.Subjects)
	}
}

func TestProcessor_Enrich_DropsEmptyParts(t *testing.T) {
	p := New(testStopWords)
	book := &domain.Book{
		Subjects: []string{"  / Fantasy /  ", "   "},
	}

	if err := p.Enrich(book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"Fantasy"}
	if !reflect.DeepEqual(book.Subjects, expected) {
		t.Errorf("expected %v, got %v", expected, book.Subjects)
	}
}

func TestProcessor_Enrich_DeduplicatesCaseInsensitively(t *testing.T) {
	p := New(testStopWords)
	book := &domain.Book{
		Subjects: []string{"Fantasy", "FANTASY / Magic", "fantasy"},
	}

	if err := p.Enrich(book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"Fantasy", "Magic"}
	if !reflect.DeepEqual(book.Subjects, expected) {
		t.Errorf("expected %v, got %v", expected, book.Subjects)
	}
}

func TestProcessor_Enrich_Idempotent(t *testing.T) {
	p := New(testStopWords)
	book := &domain.Book{
		Subjects: []string{"Fiction / Fantasy", "General", "Dragons -- Folklore"},
	}

	if err := p.Enrich(book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	once := append([]string(nil), book.Subjects...)

	if err := p.Enrich(book); err != nil {
		t.Fatalf("unexpected error on second pass: %v", err)
	}

	if !reflect.DeepEqual(book.Subjects, once) {
		t.Errorf("normalisation not idempotent: first %v, second %v", once, book.Subjects)
	}
}

func TestProcessor_Enrich_EmptySubjects(t *testing.T) {
	p := New(testStopWords)
	book := &domain.Book{}

	if err := p.Enrich(book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if book.Subjects != nil {
		t.Errorf("expected nil subjects, got %v", book.Subjects)
	}
}

func TestProcessor_Enrich_AllStopWords(t *testing.T) {
	p := New(testStopWords)
	book := &domain.Book{
		Subjects: []string{"General", "Books / Electronic Books"},
	}

	if err := p.Enrich(book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if book.Subjects != nil {
		t.Errorf("expected nil subjects when all parts are stop words, got %v", book.Subjects)
	}
}
