package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

var bookJSON bool

var bookCmd = &cobra.Command{
	Use:   "book [identifier]",
	Short: "Look up one book by identifier",
	Long: `Looks up a single book by ISBN-10, ISBN-13, or control number and
prints the merged record.

ISBNs are checksum-validated and ISBN-10s converted to ISBN-13 before
the lookup. Control numbers (8 to 12 digits) are resolved against the
Library of Congress catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runBook,
}

func init() {
	bookCmd.Flags().BoolVar(&bookJSON, "json", false, "output record as JSON")
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	ctx := context.Background()

	book, err := lookupService.Lookup(ctx, args[0])
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidIdentifier):
			return fmt.Errorf("%q is not a valid ISBN or control number", args[0])
		case errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("no catalog has a record for %q", args[0])
		}
		return fmt.Errorf("lookup failed: %w", err)
	}

	if bookJSON {
		data, err := json.MarshalIndent(book, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	outputBookDetail(cmd, book)
	return nil
}

func outputBookDetail(cmd *cobra.Command, book *domain.Book) {
	cmd.Printf("%s\n", book.Title)
	if book.Subtitle != "" {
		cmd.Printf("%s\n", book.Subtitle)
	}
	cmd.Println()

	if len(book.Authors) > 0 {
		names := make([]string, 0, len(book.Authors))
		for _, a := range book.Authors {
			names = append(names, a.Name)
		}
		cmd.Printf("  Authors:    %s\n", strings.Join(names, ", "))
	}
	if book.ISBN13 != "" {
		cmd.Printf("  ISBN-13:    %s\n", book.ISBN13)
	}
	if book.ISBN10 != "" {
		cmd.Printf("  ISBN-10:    %s\n", book.ISBN10)
	}
	if book.Publisher != "" {
		cmd.Printf("  Publisher:  %s\n", book.Publisher)
	}
	if book.PublishedDate != "" {
		cmd.Printf("  Published:  %s\n", book.PublishedDate)
	}
	if book.PageCount > 0 {
		cmd.Printf("  Pages:      %d\n", book.PageCount)
	}
	cmd.Printf("  Format:     %s\n", book.Format)
	if book.Rating > 0 {
		cmd.Printf("  Rating:     %.1f (%d ratings)\n", book.Rating, book.RatingCount)
	}
	if book.Series != nil {
		if book.Series.Order != nil {
			cmd.Printf("  Series:     %s, book %d\n", book.Series.Name, *book.Series.Order)
		} else {
			cmd.Printf("  Series:     %s\n", book.Series.Name)
		}
	}
	if flag := book.ContentFlag.String(); flag != "" {
		cmd.Printf("  Content:    %s\n", flag)
	}
	if book.PrimarySource {
		cmd.Printf("  Archival:   primary source\n")
	}

	if len(book.Subjects) > 0 {
		cmd.Printf("  Subjects:   %s\n", strings.Join(book.Subjects, ", "))
	}

	if book.Description != "" {
		cmd.Println()
		cmd.Println(book.Description)
	}

	cmd.Println()
	sources := make([]string, 0, len(book.DataSources))
	for _, p := range book.DataSources {
		sources = append(sources, p.String())
	}
	cmd.Printf("  Sources:    %s\n", strings.Join(sources, ", "))
	if len(book.RelatedISBNs) > 0 {
		cmd.Printf("  Related:    %s\n", strings.Join(book.RelatedISBNs, ", "))
	}
}
