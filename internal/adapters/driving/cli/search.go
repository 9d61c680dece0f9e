package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

var (
	searchLimit   int
	searchOffset  int
	searchSubject string
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the book catalogs",
	Long: `Searches every enabled catalog for the query and merges the raw
records into canonical results, ranked by relevance to the query.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "number of results to skip")
	searchCmd.Flags().StringVarP(&searchSubject, "subject", "s", "", "restrict to one subject heading")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := context.Background()
	opts := domain.SearchOptions{
		Limit:   searchLimit,
		Offset:  searchOffset,
		Subject: searchSubject,
	}

	resp, err := searchService.Search(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, resp)
	}

	return outputSearchTable(cmd, resp)
}

func outputSearchJSON(cmd *cobra.Command, resp *domain.SearchResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, resp *domain.SearchResponse) error {
	if resp.NumFound == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results for %q:\n\n", resp.Query)
	for i := range resp.Results {
		printBookLine(cmd, i+1, &resp.Results[i])
	}

	cmd.Printf("Total: %d", resp.NumFound)
	if len(resp.SourceCounts) > 0 {
		cmd.Printf("  (raw records:")
		for _, p := range []domain.Provenance{
			domain.ProvenanceGoogle,
			domain.ProvenanceOpenLibrary,
			domain.ProvenanceLOC,
		} {
			if n, ok := resp.SourceCounts[p]; ok {
				cmd.Printf(" %s=%d", p, n)
			}
		}
		cmd.Printf(")")
	}
	cmd.Println()

	return nil
}

// printBookLine prints the compact list entry shared by the search,
// releases, and author tables.
func printBookLine(cmd *cobra.Command, n int, book *domain.Book) {
	title := book.Title
	if book.Subtitle != "" {
		title += ": " + book.Subtitle
	}

	cmd.Printf("  [%d] %s\n", n, title)
	if author := book.FirstAuthor(); author != "" {
		cmd.Printf("      by %s", author)
		if book.PublishedDate != "" {
			cmd.Printf(" (%s)", book.PublishedDate)
		}
		cmd.Println()
	} else if book.PublishedDate != "" {
		cmd.Printf("      (%s)\n", book.PublishedDate)
	}
	if book.ISBN13 != "" {
		cmd.Printf("      ISBN %s\n", book.ISBN13)
	}
	if flag := book.ContentFlag.String(); flag != "" {
		cmd.Printf("      [%s]\n", flag)
	}
	cmd.Println()
}
