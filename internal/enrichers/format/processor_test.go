package format

import (
	"testing"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

func TestProcessor_Name(t *testing.T) {
	p := New()
	if p.Name() != "format" {
		t.Errorf("expected name 'format', got %q", p.Name())
	}
}

func TestProcessor_Enrich_DecisionTable(t *testing.T) {
	tests := []struct {
		name      string
		pageCount int
		isEbook   bool
		primary   bool
		expected  domain.FormatTag
	}{
		{"no page count", 0, false, false, domain.FormatUnknown},
		{"no page count ebook", 0, true, false, domain.FormatUnknown},
		{"short story", 30, false, false, domain.FormatShortStory},
		{"short story upper bound", 49, false, false, domain.FormatShortStory},
		{"novella lower bound", 50, false, false, domain.FormatNovella},
		{"novella", 120, false, false, domain.FormatNovella},
		{"novella upper bound", 149, false, false, domain.FormatNovella},
		{"ebook at novel length", 150, true, false, domain.FormatEbook},
		{"ebook long", 400, true, false, domain.FormatEbook},
		{"novel lower bound", 150, false, false, domain.FormatNovel},
		{"novel", 350, false, false, domain.FormatNovel},
		{"short ebook still short story", 30, true, false, domain.FormatShortStory},
		{"primary source wins", 350, false, true, domain.FormatPrimarySource},
		{"primary source without pages", 0, false, true, domain.FormatPrimarySource},
	}

	p := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := &domain.Book{
				PageCount:     tt.pageCount,
				IsEbook:       tt.isEbook,
				PrimarySource: tt.primary,
			}

			if err := p.Enrich(book); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if book.Format != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, book.Format)
			}
		})
	}
}

func TestProcessor_Enrich_CustomBounds(t *testing.T) {
	p := New(WithShortStoryMax(100), WithNovellaMax(300))

	book := &domain.Book{PageCount: 99}
	if err := p.Enrich(book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Format != domain.FormatShortStory {
		t.Errorf("expected ShortStory under raised bound, got %s", book.Format)
	}

	book = &domain.Book{PageCount: 250}
	if err := p.Enrich(book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Format != domain.FormatNovella {
		t.Errorf("expected Novella under raised bound, got %s", book.Format)
	}
}
